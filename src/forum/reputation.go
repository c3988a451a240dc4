package forum

// ReputationScore derives the score from the four input counters. Pure
// integer arithmetic with floor division; the exact truncation matters for
// deterministic re-execution, do not float this.
func ReputationScore(upvotes, downvotes, threads, replies uint64) uint64 {
	base := upvotes*10 + threads*5 + replies*2
	if downvotes == 0 {
		return base
	}
	return base * 100 / (100 + downvotes*5)
}

// recomputeScore refreshes r.Score from its own counters. Called after every
// mutation of an input counter on the acting identity.
func recomputeScore(r *UserReputation) {
	r.Score = ReputationScore(r.TotalUpvotes, r.TotalDownvotes, r.ThreadsCreated, r.RepliesCreated)
}
