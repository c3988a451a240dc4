package data

// One gorm model per persisted ledger table. Rows mirror engine state 1:1;
// the engine never sees these types. All heights are block heights.

// Threads
type Thread struct {
	ID           uint64 `gorm:"primaryKey"`
	Author       string `gorm:"size:128;not null;index"`
	Title        string `gorm:"size:256;not null"`
	Content      string `gorm:"type:text;not null"`
	IsPremium    bool   `gorm:"default:false"`
	PremiumPrice uint64 `gorm:"default:0"`
	CreatedAt    uint64 `gorm:"not null"`
	Upvotes      uint64 `gorm:"default:0"`
	Downvotes    uint64 `gorm:"default:0"`
	TipsReceived uint64 `gorm:"default:0"`
	IsLocked     bool   `gorm:"default:false"`
	ReplyCount   uint64 `gorm:"default:0"`
}

// Replies; IDs are global across threads
type Reply struct {
	ID            uint64 `gorm:"primaryKey"`
	ThreadID      uint64 `gorm:"index;not null"`
	Author        string `gorm:"size:128;not null;index"`
	Content       string `gorm:"type:text;not null"`
	CreatedAt     uint64 `gorm:"not null"`
	Upvotes       uint64 `gorm:"default:0"`
	Downvotes     uint64 `gorm:"default:0"`
	TipsReceived  uint64 `gorm:"default:0"`
	ParentReplyID *uint64
}

// Per-identity reputation counters
type Reputation struct {
	Address        string `gorm:"primaryKey;size:128"`
	TotalUpvotes   uint64 `gorm:"default:0"`
	TotalDownvotes uint64 `gorm:"default:0"`
	ThreadsCreated uint64 `gorm:"default:0"`
	RepliesCreated uint64 `gorm:"default:0"`
	TipsSent       uint64 `gorm:"default:0"`
	TipsReceived   uint64 `gorm:"default:0"`
	StakedAmount   uint64 `gorm:"default:0"`
	Score          uint64 `gorm:"default:0"`
}

// Escrowed stakes
type Stake struct {
	Address     string `gorm:"primaryKey;size:128"`
	Amount      uint64 `gorm:"default:0"`
	LockedUntil uint64 `gorm:"default:0"`
}

// Premium unlocks, permanent once recorded
type PremiumGrant struct {
	ThreadID    uint64 `gorm:"primaryKey"`
	Address     string `gorm:"primaryKey;size:128"`
	PurchasedAt uint64 `gorm:"not null"`
}

// Votes, one per (kind, target, voter)
type Vote struct {
	TargetKind uint8  `gorm:"primaryKey"`
	TargetID   uint64 `gorm:"primaryKey"`
	Voter      string `gorm:"primaryKey;size:128"`
	Upvote     bool   `gorm:"not null"`
	CastAt     uint64 `gorm:"default:0"`
}

// Thread boosts; contributors stored as a JSON array (<=20 entries)
type Boost struct {
	ThreadID     uint64 `gorm:"primaryKey"`
	Amount       uint64 `gorm:"default:0"`
	Contributors string `gorm:"type:text"`
}

// Native balances backing the SQL ledger
type Account struct {
	Address string `gorm:"primaryKey;size:128"`
	Balance uint64 `gorm:"default:0"`
}

// Counters persists the two ID high-water marks as a single row.
type Counters struct {
	ID           uint8  `gorm:"primaryKey"`
	LastThreadID uint64 `gorm:"default:0"`
	LastReplyID  uint64 `gorm:"default:0"`
}

// Settings
type Setting struct {
	ID    uint8  `gorm:"primaryKey"`
	Name  string `gorm:"size:32;not null;uniqueIndex"`
	Value string `gorm:"size:256;not null"`
}
