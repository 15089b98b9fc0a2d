package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/lendbook/internal/credit"
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

const selectCreditColumns = `
	id, reference, principal, interest_rate, tenure_months, start_date,
	remaining_principal, total_paid_out, status, previous_status, version,
	created_at, updated_at, archived_at
`

func scanCredit(s scanner) (*credit.Credit, error) {
	var c credit.Credit

	var statusStr string

	var prevStatus sql.NullString

	if err := s.Scan(
		&c.ID, &c.Reference, &c.Principal, &c.InterestRate, &c.TenureMonths, &c.StartDate,
		&c.RemainingPrincipal, &c.TotalPaidOut, &statusStr, &prevStatus, &c.Version,
		&c.CreatedAt, &c.UpdatedAt, &c.ArchivedAt,
	); err != nil {
		return nil, err
	}

	c.Status = credit.Status(statusStr)
	c.PreviousStatus = credit.Status(prevStatus.String)

	return &c, nil
}

func (s *Store) CreateCredit(ctx context.Context, c *credit.Credit) error {
	query := `
		INSERT INTO credits (id, reference, principal, interest_rate, tenure_months, start_date,
			remaining_principal, total_paid_out, status, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 1, NOW(), NOW())
		RETURNING version, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		c.ID,
		c.Reference,
		c.Principal,
		c.InterestRate,
		c.TenureMonths,
		c.StartDate,
		c.RemainingPrincipal,
		c.TotalPaidOut,
		c.Status,
	).Scan(&c.Version, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating credit: %w", err)
	}

	return nil
}

func (s *Store) GetCredit(ctx context.Context, id uuid.UUID) (*credit.Credit, error) {
	query := `SELECT ` + selectCreditColumns + ` FROM credits WHERE id = $1`

	c, err := scanCredit(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, credit.ErrNotFound
		}

		return nil, fmt.Errorf("getting credit: %w", err)
	}

	return c, nil
}

func (s *Store) ListCredits(ctx context.Context, filter credit.ListFilter) ([]*credit.Credit, error) {
	query := `SELECT ` + selectCreditColumns + ` FROM credits WHERE 1 = 1`

	var args []any

	if filter.Status != nil {
		query += " AND status = $1"

		args = append(args, *filter.Status)
	}

	// Asking for archived rows by status implies including them.
	if !filter.IncludeArchived && (filter.Status == nil || *filter.Status != credit.StatusArchived) {
		query += " AND archived_at IS NULL"
	}

	query += " ORDER BY start_date ASC, created_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing credits: %w", err)
	}
	defer rows.Close()

	var credits []*credit.Credit

	for rows.Next() {
		c, err := scanCredit(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning credit: %w", err)
		}

		credits = append(credits, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating credit rows: %w", err)
	}

	return credits, nil
}

func (s *Store) UpdateStatus(ctx context.Context, c *credit.Credit) error {
	query := `
		UPDATE credits
		SET status = $1, previous_status = $2, archived_at = $3, version = version + 1, updated_at = NOW()
		WHERE id = $4 AND version = $5
	`

	prev := sql.NullString{String: string(c.PreviousStatus), Valid: c.PreviousStatus != ""}

	res, err := s.db.ExecContext(ctx, query, c.Status, prev, c.ArchivedAt, c.ID, c.Version)
	if err != nil {
		return fmt.Errorf("updating credit status: %w", err)
	}

	if err := checkVersion(res); err != nil {
		return err
	}

	c.Version++

	return nil
}

func (s *Store) ListPayouts(ctx context.Context, creditID uuid.UUID) ([]*credit.Payout, error) {
	query := `
		SELECT id, credit_id, amount_principal, amount_interest, payout_type, notes, recorded_by, created_at
		FROM credit_payouts
		WHERE credit_id = $1
		ORDER BY created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, creditID)
	if err != nil {
		return nil, fmt.Errorf("listing payouts: %w", err)
	}
	defer rows.Close()

	var payouts []*credit.Payout

	for rows.Next() {
		var p credit.Payout

		var typeStr string

		if err := rows.Scan(
			&p.ID, &p.CreditID, &p.AmountPrincipal, &p.AmountInterest, &typeStr, &p.Notes, &p.RecordedBy, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning payout: %w", err)
		}

		p.PayoutType = credit.PayoutType(typeStr)
		payouts = append(payouts, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating payout rows: %w", err)
	}

	return payouts, nil
}

func checkVersion(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}

	if n == 0 {
		return credit.ErrConflict
	}

	return nil
}

type payoutTx struct {
	tx *sql.Tx
}

func (s *Store) BeginPayout(ctx context.Context) (credit.PayoutTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning payout tx: %w", err)
	}

	return &payoutTx{tx: dbTx}, nil
}

func (ptx *payoutTx) Commit() error   { return ptx.tx.Commit() }
func (ptx *payoutTx) Rollback() error { return ptx.tx.Rollback() }

func (ptx *payoutTx) GetCredit(ctx context.Context, id uuid.UUID) (*credit.Credit, error) {
	query := `SELECT ` + selectCreditColumns + ` FROM credits WHERE id = $1`

	c, err := scanCredit(ptx.tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, credit.ErrNotFound
		}

		return nil, fmt.Errorf("getting credit: %w", err)
	}

	return c, nil
}

func (ptx *payoutTx) CreatePayout(ctx context.Context, p *credit.Payout) error {
	query := `
		INSERT INTO credit_payouts (credit_id, amount_principal, amount_interest, payout_type, notes, recorded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	err := ptx.tx.QueryRowContext(ctx, query,
		p.CreditID,
		p.AmountPrincipal,
		p.AmountInterest,
		p.PayoutType,
		p.Notes,
		p.RecordedBy,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating payout: %w", err)
	}

	return nil
}

func (ptx *payoutTx) UpdateBalances(ctx context.Context, c *credit.Credit) error {
	query := `
		UPDATE credits
		SET remaining_principal = $1, total_paid_out = $2, status = $3, version = version + 1, updated_at = NOW()
		WHERE id = $4 AND version = $5
	`

	res, err := ptx.tx.ExecContext(ctx, query, c.RemainingPrincipal, c.TotalPaidOut, c.Status, c.ID, c.Version)
	if err != nil {
		return fmt.Errorf("updating credit balances: %w", err)
	}

	if err := checkVersion(res); err != nil {
		return err
	}

	c.Version++

	return nil
}
