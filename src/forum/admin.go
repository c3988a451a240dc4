package forum

import "strconv"

// Owner-only protocol parameter mutations. Owner is the deploying identity
// and never changes.

func (e *Engine) SetMinStakeAmount(caller string, amount uint64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if caller != e.st.Config.Owner {
		return errf(CodeOwnerOnly, "caller %s is not the owner", caller)
	}
	if amount == 0 {
		return errf(CodeInvalidAmount, "minimum stake must be positive")
	}
	e.st.Config.MinStakeAmount = amount

	e.emit(ConfigChanged{Name: "min_stake_amount", Value: strconv.FormatUint(amount, 10)})
	return nil
}

func (e *Engine) SetPlatformFeeRate(caller string, rateBps uint64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if caller != e.st.Config.Owner {
		return errf(CodeOwnerOnly, "caller %s is not the owner", caller)
	}
	if rateBps > FeeRateBase {
		return errf(CodeInvalidAmount, "fee rate %d exceeds %d bps", rateBps, FeeRateBase)
	}
	e.st.Config.PlatformFeeRate = rateBps

	e.emit(ConfigChanged{Name: "platform_fee_bps", Value: strconv.FormatUint(rateBps, 10)})
	return nil
}

func (e *Engine) SetPlatformTreasury(caller, treasury string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if caller != e.st.Config.Owner {
		return errf(CodeOwnerOnly, "caller %s is not the owner", caller)
	}
	if treasury == "" {
		return errf(CodeInvalidAmount, "treasury address required")
	}
	e.st.Config.PlatformTreasury = treasury

	e.emit(ConfigChanged{Name: "platform_treasury", Value: treasury})
	return nil
}
