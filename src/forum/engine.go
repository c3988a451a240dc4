// Package forum is the deterministic state-transition engine of the
// stake-gated discussion protocol. Every exported operation is one atomic
// ledger transaction: all validations run before the first mutation, and a
// rejected operation leaves no trace. The engine owns the authoritative
// in-memory state; persistence and transports hang off the Journal.
package forum

import (
	"sync"
	"unicode/utf8"
)

// Engine executes protocol transactions strictly one at a time. Handlers
// may call in from concurrent requests; the mutex imposes the total order
// the protocol assumes.
type Engine struct {
	mu      sync.Mutex
	st      *State
	ledger  Ledger
	clock   Clock
	journal Journal
}

func NewEngine(st *State, ledger Ledger, clock Clock, journal Journal) *Engine {
	return &Engine{st: st, ledger: ledger, clock: clock, journal: journal}
}

func (e *Engine) emit(ev Event) {
	if e.journal != nil {
		e.journal(ev)
	}
}

// IsStaked reports whether addr passes the staking gate: a stake record
// exists, its amount meets the minimum, and the lock height has been
// reached. An expired lock counts as staked; that is the protocol's literal
// behavior and is pinned by tests, not an oversight to fix here.
func (e *Engine) IsStaked(addr string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.isStaked(addr, e.clock.Now())
}

func (e *Engine) isStaked(addr string, now uint64) bool {
	s, ok := e.st.Stakes[addr]
	return ok && s.Amount >= e.st.Config.MinStakeAmount && now >= s.LockedUntil
}

// Stake escrows amount from caller into the stake pool and (re)sets the
// lock to now+lockPeriod. Amounts accumulate across calls.
func (e *Engine) Stake(caller string, amount, lockPeriod uint64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	if amount == 0 {
		return errf(CodeInvalidAmount, "stake amount must be positive")
	}
	if e.ledger.BalanceOf(caller) < amount {
		return errf(CodeInsufficientBalance, "balance below stake amount %d", amount)
	}
	if err := e.ledger.Transfer(caller, StakePool, amount); err != nil {
		return errf(CodeInsufficientBalance, "stake transfer: %v", err)
	}

	s, ok := e.st.Stakes[caller]
	if !ok {
		s = &Stake{Address: caller}
		e.st.Stakes[caller] = s
	}
	s.Amount += amount
	s.LockedUntil = now + lockPeriod
	rep := e.st.rep(caller)
	rep.StakedAmount = s.Amount

	e.emit(StakeChanged{Stake: *s, Owner: *rep})
	return nil
}

// Unstake returns the full escrowed amount once the lock has expired.
func (e *Engine) Unstake(caller string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	s, ok := e.st.Stakes[caller]
	if !ok || s.Amount == 0 {
		return errf(CodeNotFound, "no stake for %s", caller)
	}
	if now < s.LockedUntil {
		return errf(CodeUnauthorized, "stake locked until %d", s.LockedUntil)
	}
	amount := s.Amount
	if err := e.ledger.Transfer(StakePool, caller, amount); err != nil {
		return errf(CodeInsufficientBalance, "unstake transfer: %v", err)
	}

	s.Amount = 0
	rep := e.st.rep(caller)
	rep.StakedAmount = 0

	e.emit(StakeChanged{Stake: *s, Owner: *rep})
	return nil
}

// CreateThread allocates the next thread ID for a staked caller.
func (e *Engine) CreateThread(caller, title, content string, isPremium bool, premiumPrice uint64) (uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	if !e.isStaked(caller, now) {
		return 0, errf(CodeInsufficientStake, "caller %s fails staking gate", caller)
	}
	if title == "" || utf8.RuneCountInString(title) > MaxTitleLen {
		return 0, errf(CodeInvalidAmount, "title must be 1..%d code points", MaxTitleLen)
	}
	if content == "" || utf8.RuneCountInString(content) > MaxThreadContentLen {
		return 0, errf(CodeInvalidAmount, "content must be 1..%d code points", MaxThreadContentLen)
	}
	// premiumPrice > 0 iff isPremium
	if isPremium && premiumPrice == 0 {
		return 0, errf(CodeInvalidAmount, "premium thread needs a positive price")
	}
	if !isPremium && premiumPrice != 0 {
		return 0, errf(CodeInvalidAmount, "non-premium thread cannot carry a price")
	}

	id := e.st.LastThreadID + 1
	t := &Thread{
		ID:           id,
		Author:       caller,
		Title:        title,
		Content:      content,
		IsPremium:    isPremium,
		PremiumPrice: premiumPrice,
		CreatedAt:    now,
	}
	e.st.Threads[id] = t
	e.st.LastThreadID = id

	rep := e.st.rep(caller)
	rep.ThreadsCreated++
	recomputeScore(rep)

	e.emit(ThreadCreated{Thread: *t, Author: *rep})
	return id, nil
}

// CreateReply appends a reply to a thread, optionally under a parent reply.
// Check order is part of the contract: gate, existence, lock, content,
// parent, premium access.
func (e *Engine) CreateReply(caller string, threadID uint64, content string, parentReplyID *uint64) (uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	if !e.isStaked(caller, now) {
		return 0, errf(CodeInsufficientStake, "caller %s fails staking gate", caller)
	}
	t, ok := e.st.Threads[threadID]
	if !ok {
		return 0, errf(CodeNotFound, "thread %d", threadID)
	}
	if t.IsLocked {
		return 0, errf(CodeThreadLocked, "thread %d is locked", threadID)
	}
	if content == "" || utf8.RuneCountInString(content) > MaxReplyContentLen {
		return 0, errf(CodeInvalidAmount, "content must be 1..%d code points", MaxReplyContentLen)
	}
	if parentReplyID != nil {
		parent, ok := e.st.Replies[*parentReplyID]
		if !ok || parent.ThreadID != threadID {
			return 0, errf(CodeInvalidParentReply, "parent reply %d", *parentReplyID)
		}
	}
	// The thread author holds no implicit grant on their own premium
	// thread; they fail here like anyone else unless they purchased one.
	if t.IsPremium && !e.st.hasGrant(threadID, caller) {
		return 0, errf(CodeThreadNotPremium, "no premium access to thread %d", threadID)
	}

	id := e.st.LastReplyID + 1
	r := &Reply{
		ID:            id,
		ThreadID:      threadID,
		Author:        caller,
		Content:       content,
		CreatedAt:     now,
		ParentReplyID: parentReplyID,
	}
	e.st.Replies[id] = r
	e.st.LastReplyID = id
	t.ReplyCount++

	rep := e.st.rep(caller)
	rep.RepliesCreated++
	recomputeScore(rep)

	e.emit(ReplyCreated{Reply: *r, Thread: *t, Author: *rep})
	return id, nil
}

// PurchasePremiumAccess pays the thread's premium price, split between the
// author and the platform treasury, and records a permanent grant. The two
// transfers and the grant commit as a unit.
func (e *Engine) PurchasePremiumAccess(caller string, threadID uint64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	t, ok := e.st.Threads[threadID]
	if !ok {
		return errf(CodeNotFound, "thread %d", threadID)
	}
	if !t.IsPremium {
		return errf(CodeThreadNotPremium, "thread %d is not premium", threadID)
	}
	if e.st.hasGrant(threadID, caller) {
		return errf(CodeUnauthorized, "access to thread %d already purchased", threadID)
	}

	authorPayment, platformFee := SplitFee(t.PremiumPrice, e.st.Config.PlatformFeeRate)
	if e.ledger.BalanceOf(caller) < t.PremiumPrice {
		return errf(CodeInsufficientBalance, "balance below price %d", t.PremiumPrice)
	}
	if err := e.ledger.Transfer(caller, t.Author, authorPayment); err != nil {
		return errf(CodeInsufficientBalance, "author payment: %v", err)
	}
	if err := e.ledger.Transfer(caller, e.st.Config.PlatformTreasury, platformFee); err != nil {
		// Unwind the author payment; the purchase never happened.
		_ = e.ledger.Transfer(t.Author, caller, authorPayment)
		return errf(CodeInsufficientBalance, "platform fee: %v", err)
	}

	g := &PremiumGrant{ThreadID: threadID, Address: caller, PurchasedAt: now}
	e.st.Grants[grantKey{threadID: threadID, address: caller}] = g

	e.emit(AccessPurchased{Grant: *g, AuthorPayment: authorPayment, PlatformFee: platformFee})
	return nil
}

// Vote records caller's single up/down vote on a thread or reply and
// credits the target author's totals. A second vote on the same target is
// rejected, never overwritten.
func (e *Engine) Vote(caller string, kind TargetKind, targetID uint64, upvote bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	t, r, author, err := e.target(kind, targetID)
	if err != nil {
		return err
	}
	key := voteKey{kind: kind, targetID: targetID, voter: caller}
	if _, ok := e.st.Votes[key]; ok {
		return errf(CodeAlreadyVoted, "%s %d", kind, targetID)
	}

	v := &VoteRecord{Kind: kind, TargetID: targetID, Voter: caller, Upvote: upvote, CastAt: now}
	e.st.Votes[key] = v

	rep := e.st.rep(author)
	if upvote {
		if t != nil {
			t.Upvotes++
		} else {
			r.Upvotes++
		}
		rep.TotalUpvotes++
	} else {
		if t != nil {
			t.Downvotes++
		} else {
			r.Downvotes++
		}
		rep.TotalDownvotes++
	}
	recomputeScore(rep)

	e.emit(VoteCast{Vote: *v, Thread: copyThread(t), Reply: copyReply(r), Author: *rep})
	return nil
}

// Tip transfers amount from caller to the target's author and records the
// totals on both reputations and on the target itself.
func (e *Engine) Tip(caller string, kind TargetKind, targetID uint64, amount uint64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if amount == 0 {
		return errf(CodeInvalidTip, "tip amount must be positive")
	}
	t, r, author, err := e.target(kind, targetID)
	if err != nil {
		return err
	}
	if author == caller {
		return errf(CodeSelfTip, "cannot tip yourself")
	}
	if e.ledger.BalanceOf(caller) < amount {
		return errf(CodeInsufficientBalance, "balance below tip %d", amount)
	}
	if err := e.ledger.Transfer(caller, author, amount); err != nil {
		return errf(CodeInsufficientBalance, "tip transfer: %v", err)
	}

	if t != nil {
		t.TipsReceived += amount
	} else {
		r.TipsReceived += amount
	}
	sender := e.st.rep(caller)
	sender.TipsSent += amount
	recipient := e.st.rep(author)
	recipient.TipsReceived += amount

	e.emit(TipSent{
		Kind: kind, TargetID: targetID, Amount: amount,
		Thread: copyThread(t), Reply: copyReply(r),
		Sender: *sender, Recipient: *recipient,
	})
	return nil
}

// LockThread bars further replies. Thread-author-only; locking is one-way.
func (e *Engine) LockThread(caller string, threadID uint64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	t, ok := e.st.Threads[threadID]
	if !ok {
		return errf(CodeNotFound, "thread %d", threadID)
	}
	if t.Author != caller {
		return errf(CodeUnauthorized, "only the author can lock thread %d", threadID)
	}
	t.IsLocked = true

	e.emit(ThreadLockSet{Thread: *t})
	return nil
}

// target resolves a vote/tip target. Exactly one of the returned thread and
// reply pointers is non-nil on success.
func (e *Engine) target(kind TargetKind, id uint64) (*Thread, *Reply, string, error) {
	switch kind {
	case TargetThread:
		if t, ok := e.st.Threads[id]; ok {
			return t, nil, t.Author, nil
		}
	case TargetReply:
		if r, ok := e.st.Replies[id]; ok {
			return nil, r, r.Author, nil
		}
	}
	return nil, nil, "", errf(CodeNotFound, "%s %d", kind, id)
}

func copyThread(t *Thread) *Thread {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func copyReply(r *Reply) *Reply {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}
