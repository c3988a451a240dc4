package forum

import "fmt"

// Ledger is the external native-value primitive. A Transfer either moves the
// full amount or fails; the engine orders its checks so that a transfer is
// the last thing an operation attempts.
type Ledger interface {
	BalanceOf(addr string) uint64
	Transfer(from, to string, amount uint64) error
}

// Clock supplies the current ledger time (block height). Read once per
// operation; monotonic, non-decreasing.
type Clock interface {
	Now() uint64
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() uint64

func (f ClockFunc) Now() uint64 { return f() }

// MemoryLedger is an in-process Ledger used in tests and as a stand-in when
// no chain-backed ledger is wired.
type MemoryLedger struct {
	balances map[string]uint64
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{balances: make(map[string]uint64)}
}

// Credit mints amount to addr. Test/genesis helper, not part of Ledger.
func (l *MemoryLedger) Credit(addr string, amount uint64) {
	l.balances[addr] += amount
}

func (l *MemoryLedger) BalanceOf(addr string) uint64 {
	return l.balances[addr]
}

func (l *MemoryLedger) Transfer(from, to string, amount uint64) error {
	if l.balances[from] < amount {
		return fmt.Errorf("transfer %d from %s: balance %d", amount, from, l.balances[from])
	}
	l.balances[from] -= amount
	l.balances[to] += amount
	return nil
}
