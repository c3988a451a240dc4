package data

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/stake-plus/stakeboard/src/forum"
)

// SQLLedger backs the engine's value-transfer primitive with the accounts
// table. Each Transfer is one row-locked DB transaction: it moves the full
// amount or nothing.
type SQLLedger struct {
	db *gorm.DB
}

var _ forum.Ledger = (*SQLLedger)(nil)

func NewSQLLedger(db *gorm.DB) *SQLLedger { return &SQLLedger{db: db} }

func (l *SQLLedger) BalanceOf(addr string) uint64 {
	var acct Account
	if err := l.db.First(&acct, "address = ?", addr).Error; err != nil {
		return 0
	}
	return acct.Balance
}

func (l *SQLLedger) Transfer(from, to string, amount uint64) error {
	if amount == 0 {
		return nil
	}
	return l.db.Transaction(func(tx *gorm.DB) error {
		var src Account
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&src, "address = ?", from).Error
		if err != nil {
			return fmt.Errorf("account %s: %w", from, err)
		}
		if src.Balance < amount {
			return fmt.Errorf("account %s: balance %d below %d", from, src.Balance, amount)
		}

		dst := Account{Address: to}
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("address = ?", to).FirstOrCreate(&dst).Error
		if err != nil {
			return fmt.Errorf("account %s: %w", to, err)
		}

		src.Balance -= amount
		dst.Balance += amount
		if err := tx.Save(&src).Error; err != nil {
			return err
		}
		return tx.Save(&dst).Error
	})
}

// Credit mints amount to addr. Genesis/faucet helper for deployments that
// seed balances out of band.
func (l *SQLLedger) Credit(addr string, amount uint64) error {
	return l.db.Transaction(func(tx *gorm.DB) error {
		acct := Account{Address: addr}
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("address = ?", addr).FirstOrCreate(&acct).Error
		if err != nil {
			return err
		}
		acct.Balance += amount
		return tx.Save(&acct).Error
	})
}
