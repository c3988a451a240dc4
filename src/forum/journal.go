package forum

// Event is emitted after an operation commits, carrying copies of every
// record the operation touched. Sinks persist rows or fan out
// notifications; they cannot fail a committed transaction.
type Event interface{ eventKind() string }

// Journal receives committed events. A nil journal is allowed.
type Journal func(Event)

type ThreadCreated struct {
	Thread Thread
	Author UserReputation
}

type ReplyCreated struct {
	Reply  Reply
	Thread Thread
	Author UserReputation
}

type AccessPurchased struct {
	Grant         PremiumGrant
	AuthorPayment uint64
	PlatformFee   uint64
}

type VoteCast struct {
	Vote   VoteRecord
	Thread *Thread
	Reply  *Reply
	Author UserReputation
}

type TipSent struct {
	Kind      TargetKind
	TargetID  uint64
	Amount    uint64
	Thread    *Thread
	Reply     *Reply
	Sender    UserReputation
	Recipient UserReputation
}

type StakeChanged struct {
	Stake Stake
	Owner UserReputation
}

type ThreadLockSet struct {
	Thread Thread
}

type ConfigChanged struct {
	Name  string
	Value string
}

func (ThreadCreated) eventKind() string   { return "thread_created" }
func (ReplyCreated) eventKind() string    { return "reply_created" }
func (AccessPurchased) eventKind() string { return "access_purchased" }
func (VoteCast) eventKind() string        { return "vote_cast" }
func (TipSent) eventKind() string         { return "tip_sent" }
func (StakeChanged) eventKind() string    { return "stake_changed" }
func (ThreadLockSet) eventKind() string   { return "thread_locked" }
func (ConfigChanged) eventKind() string   { return "config_changed" }
