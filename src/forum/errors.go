package forum

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error code. Every way an operation can be
// rejected has exactly one code; handlers map codes to HTTP statuses.
type Code string

const (
	CodeUnknown Code = "UNKNOWN"

	// Config errors
	CodeOwnerOnly Code = "OWNER_ONLY"

	// Lookup errors
	CodeNotFound Code = "NOT_FOUND"

	// Entitlement errors
	CodeUnauthorized      Code = "UNAUTHORIZED"
	CodeThreadNotPremium  Code = "THREAD_NOT_PREMIUM"
	CodeInsufficientStake Code = "INSUFFICIENT_STAKE"

	// Value errors
	CodeInsufficientBalance Code = "INSUFFICIENT_BALANCE"
	CodeInvalidAmount       Code = "INVALID_AMOUNT"
	CodeInvalidTip          Code = "INVALID_TIP"
	CodeSelfTip             Code = "SELF_TIP"

	// Content errors
	CodeThreadLocked       Code = "THREAD_LOCKED"
	CodeAlreadyVoted       Code = "ALREADY_VOTED"
	CodeInvalidParentReply Code = "INVALID_PARENT_REPLY"
)

// Error is a rejected operation. The engine returns nothing else.
type Error struct {
	Code Code
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

func errf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the engine code from err, or CodeUnknown for foreign errors.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}
