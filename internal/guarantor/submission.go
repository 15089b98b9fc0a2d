package guarantor

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound          = errors.New("guarantor submission not found")
	ErrInvalidTransition = errors.New("invalid guarantor status transition")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusSubmitted Status = "submitted"
	StatusVerified  Status = "verified"
	StatusRejected  Status = "rejected"
)

// Submission is one guarantor invited for a loan. AccessToken is the
// single-use link identifier handed to the guarantor.
type Submission struct {
	ID          uuid.UUID
	LoanID      uuid.UUID
	Name        string
	Email       string
	Phone       string
	Status      Status
	AccessToken string
	SubmittedAt *time.Time
	ReviewedAt  *time.Time
	ReviewedBy  string
	CreatedAt   time.Time
}

var transitions = map[Status][]Status{
	StatusPending:   {StatusSubmitted},
	StatusSubmitted: {StatusVerified, StatusRejected},
}

// Transition returns ErrInvalidTransition unless from may move to to.
func Transition(from, to Status) error {
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}

	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}
