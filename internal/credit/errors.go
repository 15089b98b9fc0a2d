package credit

import "errors"

var (
	ErrNotFound          = errors.New("credit not found")
	ErrExceedsBalance    = errors.New("principal exceeds remaining balance")
	ErrNonPositive       = errors.New("total payout must be positive")
	ErrConflict          = errors.New("credit was modified concurrently")
	ErrInactive          = errors.New("credit does not accept payouts")
	ErrInvalidPayoutType = errors.New("invalid payout type")
)
