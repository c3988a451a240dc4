package forum

// Read-only surface. Lookups return copies; an absent record is a plain
// false/zero, not an error.

func (e *Engine) GetThread(id uint64) (Thread, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	t, ok := e.st.Threads[id]
	if !ok {
		return Thread{}, false
	}
	return *t, true
}

func (e *Engine) GetReply(id uint64) (Reply, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	r, ok := e.st.Replies[id]
	if !ok {
		return Reply{}, false
	}
	return *r, true
}

// GetUserReputation returns the all-zero record for an identity that never
// acted.
func (e *Engine) GetUserReputation(addr string) UserReputation {
	e.mu.Lock()
	defer e.mu.Unlock()

	if r, ok := e.st.Reputation[addr]; ok {
		return *r
	}
	return UserReputation{Address: addr}
}

func (e *Engine) GetStake(addr string) (Stake, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.st.Stakes[addr]
	if !ok {
		return Stake{}, false
	}
	return *s, true
}

// GetThreadCount is the high-water thread ID; IDs are dense so it doubles
// as the total.
func (e *Engine) GetThreadCount() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.st.LastThreadID
}

func (e *Engine) GetReplyCount() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.st.LastReplyID
}

// HasPremiumAccess is the premium gate: non-premium threads are open to
// everyone, premium threads only to grant holders. Absent threads are open
// at this layer; existence is the caller's concern.
func (e *Engine) HasPremiumAccess(threadID uint64, addr string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	t, ok := e.st.Threads[threadID]
	if !ok || !t.IsPremium {
		return true
	}
	return e.st.hasGrant(threadID, addr)
}

func (e *Engine) GetUserVoteOnThread(threadID uint64, addr string) (VoteRecord, bool) {
	return e.getVote(voteKey{kind: TargetThread, targetID: threadID, voter: addr})
}

func (e *Engine) GetUserVoteOnReply(replyID uint64, addr string) (VoteRecord, bool) {
	return e.getVote(voteKey{kind: TargetReply, targetID: replyID, voter: addr})
}

func (e *Engine) getVote(key voteKey) (VoteRecord, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	v, ok := e.st.Votes[key]
	if !ok {
		return VoteRecord{}, false
	}
	return *v, true
}

// GetThreadBoost returns the stored boost record, or the empty record when
// the thread was never boosted.
func (e *Engine) GetThreadBoost(threadID uint64) ThreadBoost {
	e.mu.Lock()
	defer e.mu.Unlock()

	b, ok := e.st.Boosts[threadID]
	if !ok {
		return ThreadBoost{ThreadID: threadID}
	}
	out := ThreadBoost{ThreadID: b.ThreadID, Amount: b.Amount}
	out.Contributors = append(out.Contributors, b.Contributors...)
	return out
}

// GetConfig returns the current protocol parameters.
func (e *Engine) GetConfig() Config {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.st.Config
}
