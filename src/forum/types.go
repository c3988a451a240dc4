package forum

// Identities are wallet addresses (SS58 or 0x-hex), same convention as the
// rest of the platform. Timestamps are ledger block heights, not wall time.

// Text limits, in UTF-8 code points.
const (
	MaxTitleLen         = 256
	MaxThreadContentLen = 2048
	MaxReplyContentLen  = 1024
)

// MaxBoostContributors bounds the contributor list on a thread boost.
const MaxBoostContributors = 20

// FeeRateBase is the basis-point denominator for the platform fee.
const FeeRateBase = 10000

// StakePool is the escrow identity holding all locked stake.
const StakePool = "stake-pool"

// Defaults applied when the settings table carries no override.
const (
	DefaultMinStakeAmount  = 1_000_000
	DefaultPlatformFeeRate = 250 // 2.5%
)

// Thread is a top-level discussion post, optionally premium.
type Thread struct {
	ID           uint64
	Author       string
	Title        string
	Content      string
	IsPremium    bool
	PremiumPrice uint64
	CreatedAt    uint64
	Upvotes      uint64
	Downvotes    uint64
	TipsReceived uint64
	IsLocked     bool
	ReplyCount   uint64
}

// Reply belongs to exactly one thread; ParentReplyID, when set, points at
// another reply of the same thread. Reply IDs are global across threads.
type Reply struct {
	ID            uint64
	ThreadID      uint64
	Author        string
	Content       string
	CreatedAt     uint64
	Upvotes       uint64
	Downvotes     uint64
	TipsReceived  uint64
	ParentReplyID *uint64
}

// UserReputation is the per-identity activity record. The zero value is the
// record of an identity that never acted.
type UserReputation struct {
	Address        string
	TotalUpvotes   uint64
	TotalDownvotes uint64
	ThreadsCreated uint64
	RepliesCreated uint64
	TipsSent       uint64
	TipsReceived   uint64
	StakedAmount   uint64
	Score          uint64
}

// Stake is an identity's escrowed deposit. The staking gate reads it as:
// staked iff Amount >= min-stake AND now >= LockedUntil.
type Stake struct {
	Address     string
	Amount      uint64
	LockedUntil uint64
}

// PremiumGrant is a permanent unlock of one premium thread for one identity.
type PremiumGrant struct {
	ThreadID    uint64
	Address     string
	PurchasedAt uint64
}

// TargetKind selects between the two votable/tippable entities.
type TargetKind uint8

const (
	TargetThread TargetKind = iota + 1
	TargetReply
)

func (k TargetKind) String() string {
	switch k {
	case TargetThread:
		return "thread"
	case TargetReply:
		return "reply"
	}
	return "unknown"
}

// VoteRecord is one identity's vote on one target. At most one per
// (kind, target, voter); duplicates are rejected, never overwritten.
type VoteRecord struct {
	Kind     TargetKind
	TargetID uint64
	Voter    string
	Upvote   bool
	CastAt   uint64
}

// ThreadBoost is stored shape only; no boosting operation exists yet in the
// public surface, reads return whatever an external migration seeded.
type ThreadBoost struct {
	ThreadID     uint64
	Amount       uint64
	Contributors []string
}

type grantKey struct {
	threadID uint64
	address  string
}

type voteKey struct {
	kind     TargetKind
	targetID uint64
	voter    string
}
