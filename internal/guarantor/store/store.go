package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/lendbook/internal/guarantor"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectSubmissionColumns = `
	id, loan_id, name, email, phone, status, access_token,
	submitted_at, reviewed_at, reviewed_by, created_at
`

func scanSubmission(s scanner) (*guarantor.Submission, error) {
	var sub guarantor.Submission

	var statusStr string

	var reviewedBy sql.NullString

	if err := s.Scan(
		&sub.ID, &sub.LoanID, &sub.Name, &sub.Email, &sub.Phone, &statusStr, &sub.AccessToken,
		&sub.SubmittedAt, &sub.ReviewedAt, &reviewedBy, &sub.CreatedAt,
	); err != nil {
		return nil, err
	}

	sub.Status = guarantor.Status(statusStr)
	sub.ReviewedBy = reviewedBy.String

	return &sub, nil
}

func (s *Store) CreateSubmission(ctx context.Context, sub *guarantor.Submission) error {
	query := `
		INSERT INTO guarantor_submissions (id, loan_id, name, email, phone, status, access_token, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		sub.ID,
		sub.LoanID,
		sub.Name,
		sub.Email,
		sub.Phone,
		sub.Status,
		sub.AccessToken,
	).Scan(&sub.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating guarantor submission: %w", err)
	}

	return nil
}

func (s *Store) getBy(ctx context.Context, column string, arg any) (*guarantor.Submission, error) {
	query := `SELECT ` + selectSubmissionColumns + ` FROM guarantor_submissions WHERE ` + column + ` = $1`

	sub, err := scanSubmission(s.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, guarantor.ErrNotFound
		}

		return nil, fmt.Errorf("getting guarantor submission: %w", err)
	}

	return sub, nil
}

func (s *Store) GetSubmission(ctx context.Context, id uuid.UUID) (*guarantor.Submission, error) {
	return s.getBy(ctx, "id", id)
}

func (s *Store) GetSubmissionByToken(ctx context.Context, token string) (*guarantor.Submission, error) {
	return s.getBy(ctx, "access_token", token)
}

func (s *Store) ListSubmissions(ctx context.Context, loanID uuid.UUID) ([]*guarantor.Submission, error) {
	query := `SELECT ` + selectSubmissionColumns + `
		FROM guarantor_submissions
		WHERE loan_id = $1
		ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, loanID)
	if err != nil {
		return nil, fmt.Errorf("listing guarantor submissions: %w", err)
	}
	defer rows.Close()

	var subs []*guarantor.Submission

	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning guarantor submission: %w", err)
		}

		subs = append(subs, sub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating guarantor submission rows: %w", err)
	}

	return subs, nil
}

// UpdateSubmission only matches the row while it is still in status from, so
// two concurrent uses of one token cannot both succeed.
func (s *Store) UpdateSubmission(ctx context.Context, sub *guarantor.Submission, from guarantor.Status) error {
	query := `
		UPDATE guarantor_submissions
		SET name = $1, email = $2, phone = $3, status = $4, submitted_at = $5, reviewed_at = $6, reviewed_by = $7
		WHERE id = $8 AND status = $9
	`

	res, err := s.db.ExecContext(ctx, query,
		sub.Name,
		sub.Email,
		sub.Phone,
		sub.Status,
		sub.SubmittedAt,
		sub.ReviewedAt,
		sql.NullString{String: sub.ReviewedBy, Valid: sub.ReviewedBy != ""},
		sub.ID,
		from,
	)
	if err != nil {
		return fmt.Errorf("updating guarantor submission: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}

	if n == 0 {
		return fmt.Errorf("%w: submission %s is no longer %s", guarantor.ErrInvalidTransition, sub.ID, from)
	}

	return nil
}
