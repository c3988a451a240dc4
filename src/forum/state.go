package forum

// Config holds the owner-mutable protocol parameters. Owner is fixed at
// initialization (the deploying identity).
type Config struct {
	Owner            string
	MinStakeAmount   uint64
	PlatformFeeRate  uint64 // basis points out of FeeRateBase
	PlatformTreasury string
}

// State is the authoritative ledger state: every keyed table plus the two
// ID counters. It is mutated only by the engine, one transaction at a time.
type State struct {
	Threads    map[uint64]*Thread
	Replies    map[uint64]*Reply
	Reputation map[string]*UserReputation
	Stakes     map[string]*Stake
	Grants     map[grantKey]*PremiumGrant
	Votes      map[voteKey]*VoteRecord
	Boosts     map[uint64]*ThreadBoost

	LastThreadID uint64
	LastReplyID  uint64

	Config Config
}

func NewState(cfg Config) *State {
	if cfg.MinStakeAmount == 0 {
		cfg.MinStakeAmount = DefaultMinStakeAmount
	}
	if cfg.PlatformFeeRate == 0 || cfg.PlatformFeeRate > FeeRateBase {
		cfg.PlatformFeeRate = DefaultPlatformFeeRate
	}
	if cfg.PlatformTreasury == "" {
		cfg.PlatformTreasury = cfg.Owner
	}
	return &State{
		Threads:    make(map[uint64]*Thread),
		Replies:    make(map[uint64]*Reply),
		Reputation: make(map[string]*UserReputation),
		Stakes:     make(map[string]*Stake),
		Grants:     make(map[grantKey]*PremiumGrant),
		Votes:      make(map[voteKey]*VoteRecord),
		Boosts:     make(map[uint64]*ThreadBoost),
		Config:     cfg,
	}
}

// rep returns the live reputation record for addr, creating the all-zero
// default on first touch.
func (s *State) rep(addr string) *UserReputation {
	r, ok := s.Reputation[addr]
	if !ok {
		r = &UserReputation{Address: addr}
		s.Reputation[addr] = r
	}
	return r
}

func (s *State) hasGrant(threadID uint64, addr string) bool {
	_, ok := s.Grants[grantKey{threadID: threadID, address: addr}]
	return ok
}
