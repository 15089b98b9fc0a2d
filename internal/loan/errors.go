package loan

import "errors"

var (
	ErrNotFound    = errors.New("loan not found")
	ErrExceedsDue  = errors.New("principal tendered exceeds principal due")
	ErrNonPositive = errors.New("total tendered must be positive")
	ErrConflict    = errors.New("loan was modified concurrently")
	ErrArchived    = errors.New("loan is archived")
)
