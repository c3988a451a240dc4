package forum

// Restore hooks for rebuilding state from persistence at boot. They bypass
// all validation and must only be fed rows a previous run committed.

func (s *State) RestoreThread(t Thread) {
	c := t
	s.Threads[t.ID] = &c
}

func (s *State) RestoreReply(r Reply) {
	c := r
	s.Replies[r.ID] = &c
}

func (s *State) RestoreReputation(r UserReputation) {
	c := r
	s.Reputation[r.Address] = &c
}

func (s *State) RestoreStake(st Stake) {
	c := st
	s.Stakes[st.Address] = &c
}

func (s *State) RestoreGrant(g PremiumGrant) {
	c := g
	s.Grants[grantKey{threadID: g.ThreadID, address: g.Address}] = &c
}

func (s *State) RestoreVote(v VoteRecord) {
	c := v
	s.Votes[voteKey{kind: v.Kind, targetID: v.TargetID, voter: v.Voter}] = &c
}

func (s *State) RestoreBoost(b ThreadBoost) {
	c := b
	s.Boosts[b.ThreadID] = &c
}

func (s *State) RestoreCounters(lastThreadID, lastReplyID uint64) {
	s.LastThreadID = lastThreadID
	s.LastReplyID = lastReplyID
}
