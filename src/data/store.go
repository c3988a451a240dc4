package data

import (
	"encoding/json"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/stake-plus/stakeboard/src/forum"
)

// Store journals committed engine transactions into MySQL and rebuilds the
// engine state at boot. The in-memory state is authoritative; rows are its
// durable projection.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store { return &Store{db: db} }

// LoadState rebuilds full engine state from the tables.
func (s *Store) LoadState(cfg forum.Config) (*forum.State, error) {
	st := forum.NewState(cfg)

	var threads []Thread
	if err := s.db.Find(&threads).Error; err != nil {
		return nil, fmt.Errorf("load threads: %w", err)
	}
	for _, row := range threads {
		st.RestoreThread(threadFromRow(row))
	}

	var replies []Reply
	if err := s.db.Find(&replies).Error; err != nil {
		return nil, fmt.Errorf("load replies: %w", err)
	}
	for _, row := range replies {
		st.RestoreReply(replyFromRow(row))
	}

	var reps []Reputation
	if err := s.db.Find(&reps).Error; err != nil {
		return nil, fmt.Errorf("load reputation: %w", err)
	}
	for _, row := range reps {
		st.RestoreReputation(forum.UserReputation{
			Address:        row.Address,
			TotalUpvotes:   row.TotalUpvotes,
			TotalDownvotes: row.TotalDownvotes,
			ThreadsCreated: row.ThreadsCreated,
			RepliesCreated: row.RepliesCreated,
			TipsSent:       row.TipsSent,
			TipsReceived:   row.TipsReceived,
			StakedAmount:   row.StakedAmount,
			Score:          row.Score,
		})
	}

	var stakes []Stake
	if err := s.db.Find(&stakes).Error; err != nil {
		return nil, fmt.Errorf("load stakes: %w", err)
	}
	for _, row := range stakes {
		st.RestoreStake(forum.Stake{Address: row.Address, Amount: row.Amount, LockedUntil: row.LockedUntil})
	}

	var grants []PremiumGrant
	if err := s.db.Find(&grants).Error; err != nil {
		return nil, fmt.Errorf("load grants: %w", err)
	}
	for _, row := range grants {
		st.RestoreGrant(forum.PremiumGrant{ThreadID: row.ThreadID, Address: row.Address, PurchasedAt: row.PurchasedAt})
	}

	var votes []Vote
	if err := s.db.Find(&votes).Error; err != nil {
		return nil, fmt.Errorf("load votes: %w", err)
	}
	for _, row := range votes {
		st.RestoreVote(forum.VoteRecord{
			Kind:     forum.TargetKind(row.TargetKind),
			TargetID: row.TargetID,
			Voter:    row.Voter,
			Upvote:   row.Upvote,
			CastAt:   row.CastAt,
		})
	}

	var boosts []Boost
	if err := s.db.Find(&boosts).Error; err != nil {
		return nil, fmt.Errorf("load boosts: %w", err)
	}
	for _, row := range boosts {
		b := forum.ThreadBoost{ThreadID: row.ThreadID, Amount: row.Amount}
		if row.Contributors != "" {
			if err := json.Unmarshal([]byte(row.Contributors), &b.Contributors); err != nil {
				log.Printf("boost %d: bad contributor list: %v", row.ThreadID, err)
			}
		}
		st.RestoreBoost(b)
	}

	var counters Counters
	if err := s.db.First(&counters, "id = ?", 1).Error; err == nil {
		st.RestoreCounters(counters.LastThreadID, counters.LastReplyID)
	} else if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("load counters: %w", err)
	}

	return st, nil
}

// Record persists one committed engine event. All rows an event carries go
// down in a single DB transaction; on error the projection lags and is
// caught up from the authoritative state on next restart.
func (s *Store) Record(ev forum.Event) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		switch e := ev.(type) {
		case forum.ThreadCreated:
			if err := tx.Save(rowFromThread(e.Thread)).Error; err != nil {
				return err
			}
			if err := tx.Save(rowFromReputation(e.Author)).Error; err != nil {
				return err
			}
			return saveCounters(tx, e.Thread.ID, 0)
		case forum.ReplyCreated:
			if err := tx.Save(rowFromReply(e.Reply)).Error; err != nil {
				return err
			}
			if err := tx.Save(rowFromThread(e.Thread)).Error; err != nil {
				return err
			}
			if err := tx.Save(rowFromReputation(e.Author)).Error; err != nil {
				return err
			}
			return saveCounters(tx, 0, e.Reply.ID)
		case forum.AccessPurchased:
			g := e.Grant
			return tx.Create(&PremiumGrant{ThreadID: g.ThreadID, Address: g.Address, PurchasedAt: g.PurchasedAt}).Error
		case forum.VoteCast:
			v := e.Vote
			row := Vote{TargetKind: uint8(v.Kind), TargetID: v.TargetID, Voter: v.Voter, Upvote: v.Upvote, CastAt: v.CastAt}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			if err := saveTarget(tx, e.Thread, e.Reply); err != nil {
				return err
			}
			return tx.Save(rowFromReputation(e.Author)).Error
		case forum.TipSent:
			if err := saveTarget(tx, e.Thread, e.Reply); err != nil {
				return err
			}
			if err := tx.Save(rowFromReputation(e.Sender)).Error; err != nil {
				return err
			}
			return tx.Save(rowFromReputation(e.Recipient)).Error
		case forum.StakeChanged:
			st := e.Stake
			if err := tx.Save(&Stake{Address: st.Address, Amount: st.Amount, LockedUntil: st.LockedUntil}).Error; err != nil {
				return err
			}
			return tx.Save(rowFromReputation(e.Owner)).Error
		case forum.ThreadLockSet:
			return tx.Save(rowFromThread(e.Thread)).Error
		case forum.ConfigChanged:
			return SaveSetting(tx, e.Name, e.Value)
		}
		return nil
	})
	if err != nil {
		log.Printf("journal: persist %T: %v", ev, err)
	}
}

func saveTarget(tx *gorm.DB, t *forum.Thread, r *forum.Reply) error {
	if t != nil {
		return tx.Save(rowFromThread(*t)).Error
	}
	if r != nil {
		return tx.Save(rowFromReply(*r)).Error
	}
	return nil
}

// saveCounters bumps the single counters row; a zero means leave as is.
func saveCounters(tx *gorm.DB, lastThread, lastReply uint64) error {
	var c Counters
	if err := tx.First(&c, "id = ?", 1).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return err
		}
		c = Counters{ID: 1}
	}
	if lastThread > c.LastThreadID {
		c.LastThreadID = lastThread
	}
	if lastReply > c.LastReplyID {
		c.LastReplyID = lastReply
	}
	return tx.Save(&c).Error
}

func rowFromThread(t forum.Thread) *Thread {
	return &Thread{
		ID: t.ID, Author: t.Author, Title: t.Title, Content: t.Content,
		IsPremium: t.IsPremium, PremiumPrice: t.PremiumPrice, CreatedAt: t.CreatedAt,
		Upvotes: t.Upvotes, Downvotes: t.Downvotes, TipsReceived: t.TipsReceived,
		IsLocked: t.IsLocked, ReplyCount: t.ReplyCount,
	}
}

func threadFromRow(row Thread) forum.Thread {
	return forum.Thread{
		ID: row.ID, Author: row.Author, Title: row.Title, Content: row.Content,
		IsPremium: row.IsPremium, PremiumPrice: row.PremiumPrice, CreatedAt: row.CreatedAt,
		Upvotes: row.Upvotes, Downvotes: row.Downvotes, TipsReceived: row.TipsReceived,
		IsLocked: row.IsLocked, ReplyCount: row.ReplyCount,
	}
}

func rowFromReply(r forum.Reply) *Reply {
	return &Reply{
		ID: r.ID, ThreadID: r.ThreadID, Author: r.Author, Content: r.Content,
		CreatedAt: r.CreatedAt, Upvotes: r.Upvotes, Downvotes: r.Downvotes,
		TipsReceived: r.TipsReceived, ParentReplyID: r.ParentReplyID,
	}
}

func replyFromRow(row Reply) forum.Reply {
	return forum.Reply{
		ID: row.ID, ThreadID: row.ThreadID, Author: row.Author, Content: row.Content,
		CreatedAt: row.CreatedAt, Upvotes: row.Upvotes, Downvotes: row.Downvotes,
		TipsReceived: row.TipsReceived, ParentReplyID: row.ParentReplyID,
	}
}

func rowFromReputation(r forum.UserReputation) *Reputation {
	return &Reputation{
		Address:        r.Address,
		TotalUpvotes:   r.TotalUpvotes,
		TotalDownvotes: r.TotalDownvotes,
		ThreadsCreated: r.ThreadsCreated,
		RepliesCreated: r.RepliesCreated,
		TipsSent:       r.TipsSent,
		TipsReceived:   r.TipsReceived,
		StakedAmount:   r.StakedAmount,
		Score:          r.Score,
	}
}
