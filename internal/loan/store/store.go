package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/lendbook/internal/loan"
	"github.com/MrJamesThe3rd/lendbook/internal/schedule"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectLoanColumns = `
	id, reference, principal, interest_rate, tenure_months, start_date, end_date,
	amount_repaid, interest_repaid, status, previous_status, version,
	created_at, updated_at, archived_at
`

// scanLoan expects the column order of selectLoanColumns.
func scanLoan(s scanner) (*loan.Loan, error) {
	var l loan.Loan

	var statusStr string

	var prevStatus sql.NullString

	if err := s.Scan(
		&l.ID, &l.Reference, &l.Principal, &l.InterestRate, &l.TenureMonths, &l.StartDate, &l.EndDate,
		&l.AmountRepaid, &l.InterestRepaid, &statusStr, &prevStatus, &l.Version,
		&l.CreatedAt, &l.UpdatedAt, &l.ArchivedAt,
	); err != nil {
		return nil, err
	}

	l.Status = loan.Status(statusStr)
	l.PreviousStatus = loan.Status(prevStatus.String)

	return &l, nil
}

const selectRepaymentColumns = `
	id, loan_id, amount_principal, amount_interest, payment_type, notes, recorded_by, created_at
`

func scanRepayment(s scanner) (*loan.Repayment, error) {
	var r loan.Repayment

	var typeStr string

	if err := s.Scan(
		&r.ID, &r.LoanID, &r.AmountPrincipal, &r.AmountInterest, &typeStr, &r.Notes, &r.RecordedBy, &r.CreatedAt,
	); err != nil {
		return nil, err
	}

	r.PaymentType = loan.PaymentType(typeStr)

	return &r, nil
}

const selectInstallmentColumns = `
	id, loan_id, installment_no, due_date, principal_amount, interest_amount, total_amount, status
`

func scanInstallment(s scanner) (schedule.Installment, error) {
	var in schedule.Installment

	var statusStr string

	if err := s.Scan(
		&in.ID, &in.LoanID, &in.No, &in.DueDate, &in.PrincipalAmount, &in.InterestAmount, &in.TotalAmount, &statusStr,
	); err != nil {
		return schedule.Installment{}, err
	}

	in.Status = schedule.Status(statusStr)

	return in, nil
}

func nullStatus(s loan.Status) sql.NullString {
	return sql.NullString{String: string(s), Valid: s != ""}
}

// CreateLoan inserts the loan and its installments in one transaction.
func (s *Store) CreateLoan(ctx context.Context, l *loan.Loan, installments []schedule.Installment) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		INSERT INTO loans (id, reference, principal, interest_rate, tenure_months, start_date, end_date,
			amount_repaid, interest_repaid, status, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 1, NOW(), NOW())
		RETURNING version, created_at
	`

	err = dbTx.QueryRowContext(ctx, query,
		l.ID,
		l.Reference,
		l.Principal,
		l.InterestRate,
		l.TenureMonths,
		l.StartDate,
		l.EndDate,
		l.AmountRepaid,
		l.InterestRepaid,
		l.Status,
	).Scan(&l.Version, &l.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating loan: %w", err)
	}

	installmentQuery := `
		INSERT INTO loan_installments (id, loan_id, installment_no, due_date, principal_amount, interest_amount, total_amount, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	for _, in := range installments {
		if _, err := dbTx.ExecContext(ctx, installmentQuery,
			in.ID,
			in.LoanID,
			in.No,
			in.DueDate,
			in.PrincipalAmount,
			in.InterestAmount,
			in.TotalAmount,
			in.Status,
		); err != nil {
			return fmt.Errorf("creating installment %d: %w", in.No, err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) GetLoan(ctx context.Context, id uuid.UUID) (*loan.Loan, error) {
	return getLoan(ctx, s.db, id)
}

func (s *Store) GetLoanByReference(ctx context.Context, reference string) (*loan.Loan, error) {
	query := `SELECT ` + selectLoanColumns + ` FROM loans WHERE reference = $1`

	l, err := scanLoan(s.db.QueryRowContext(ctx, query, reference))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, loan.ErrNotFound
		}

		return nil, fmt.Errorf("getting loan by reference: %w", err)
	}

	return l, nil
}

func getLoan(ctx context.Context, q querier, id uuid.UUID) (*loan.Loan, error) {
	query := `SELECT ` + selectLoanColumns + ` FROM loans WHERE id = $1`

	l, err := scanLoan(q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, loan.ErrNotFound
		}

		return nil, fmt.Errorf("getting loan: %w", err)
	}

	return l, nil
}

func (s *Store) ListLoans(ctx context.Context, filter loan.ListFilter) ([]*loan.Loan, error) {
	query := `SELECT ` + selectLoanColumns + ` FROM loans WHERE 1 = 1`

	var args []any

	argIdx := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	// Asking for archived rows by status implies including them.
	if !filter.IncludeArchived && (filter.Status == nil || *filter.Status != loan.StatusArchived) {
		query += " AND archived_at IS NULL"
	}

	query += " ORDER BY start_date ASC, created_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing loans: %w", err)
	}
	defer rows.Close()

	var loans []*loan.Loan

	for rows.Next() {
		l, err := scanLoan(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning loan: %w", err)
		}

		loans = append(loans, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating loan rows: %w", err)
	}

	return loans, nil
}

// UpdateStatus writes status and archive fields guarded by the version.
func (s *Store) UpdateStatus(ctx context.Context, l *loan.Loan) error {
	query := `
		UPDATE loans
		SET status = $1, previous_status = $2, archived_at = $3, version = version + 1, updated_at = NOW()
		WHERE id = $4 AND version = $5
	`

	res, err := s.db.ExecContext(ctx, query, l.Status, nullStatus(l.PreviousStatus), l.ArchivedAt, l.ID, l.Version)
	if err != nil {
		return fmt.Errorf("updating loan status: %w", err)
	}

	if err := checkVersion(res); err != nil {
		return err
	}

	l.Version++

	return nil
}

// DeleteLoan removes the loan; repayments and installments cascade.
func (s *Store) DeleteLoan(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM loans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting loan: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting loan: %w", err)
	}

	if n == 0 {
		return loan.ErrNotFound
	}

	return nil
}

func (s *Store) ListRepayments(ctx context.Context, loanID uuid.UUID) ([]*loan.Repayment, error) {
	query := `SELECT ` + selectRepaymentColumns + `
		FROM loan_repayments
		WHERE loan_id = $1
		ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, loanID)
	if err != nil {
		return nil, fmt.Errorf("listing repayments: %w", err)
	}
	defer rows.Close()

	var reps []*loan.Repayment

	for rows.Next() {
		r, err := scanRepayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning repayment: %w", err)
		}

		reps = append(reps, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating repayment rows: %w", err)
	}

	return reps, nil
}

func (s *Store) ListInstallments(ctx context.Context, loanID uuid.UUID) ([]schedule.Installment, error) {
	return listInstallments(ctx, s.db, loanID)
}

func listInstallments(ctx context.Context, q querier, loanID uuid.UUID) ([]schedule.Installment, error) {
	query := `SELECT ` + selectInstallmentColumns + `
		FROM loan_installments
		WHERE loan_id = $1
		ORDER BY installment_no ASC`

	rows, err := q.QueryContext(ctx, query, loanID)
	if err != nil {
		return nil, fmt.Errorf("listing installments: %w", err)
	}
	defer rows.Close()

	var installments []schedule.Installment

	for rows.Next() {
		in, err := scanInstallment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning installment: %w", err)
		}

		installments = append(installments, in)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating installment rows: %w", err)
	}

	return installments, nil
}

func (s *Store) UpdateInstallments(ctx context.Context, updates []schedule.Update) error {
	return updateInstallments(ctx, s.db, updates)
}

func updateInstallments(ctx context.Context, q querier, updates []schedule.Update) error {
	query := `UPDATE loan_installments SET status = $1 WHERE id = $2`

	for _, u := range updates {
		if _, err := q.ExecContext(ctx, query, u.Status, u.InstallmentID); err != nil {
			return fmt.Errorf("updating installment %d: %w", u.No, err)
		}
	}

	return nil
}

func checkVersion(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}

	if n == 0 {
		return loan.ErrConflict
	}

	return nil
}

type repaymentTx struct {
	tx *sql.Tx
}

func (s *Store) BeginRepayment(ctx context.Context) (loan.RepaymentTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning repayment tx: %w", err)
	}

	return &repaymentTx{tx: dbTx}, nil
}

func (rtx *repaymentTx) Commit() error   { return rtx.tx.Commit() }
func (rtx *repaymentTx) Rollback() error { return rtx.tx.Rollback() }

func (rtx *repaymentTx) GetLoan(ctx context.Context, id uuid.UUID) (*loan.Loan, error) {
	return getLoan(ctx, rtx.tx, id)
}

func (rtx *repaymentTx) ListInstallments(ctx context.Context, loanID uuid.UUID) ([]schedule.Installment, error) {
	return listInstallments(ctx, rtx.tx, loanID)
}

func (rtx *repaymentTx) UpdateInstallments(ctx context.Context, updates []schedule.Update) error {
	return updateInstallments(ctx, rtx.tx, updates)
}

func (rtx *repaymentTx) CreateRepayment(ctx context.Context, r *loan.Repayment) error {
	query := `
		INSERT INTO loan_repayments (loan_id, amount_principal, amount_interest, payment_type, notes, recorded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	err := rtx.tx.QueryRowContext(ctx, query,
		r.LoanID,
		r.AmountPrincipal,
		r.AmountInterest,
		r.PaymentType,
		r.Notes,
		r.RecordedBy,
	).Scan(&r.ID, &r.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating repayment: %w", err)
	}

	return nil
}

func (rtx *repaymentTx) UpdateBalances(ctx context.Context, l *loan.Loan) error {
	query := `
		UPDATE loans
		SET amount_repaid = $1, interest_repaid = $2, status = $3, version = version + 1, updated_at = NOW()
		WHERE id = $4 AND version = $5
	`

	res, err := rtx.tx.ExecContext(ctx, query, l.AmountRepaid, l.InterestRepaid, l.Status, l.ID, l.Version)
	if err != nil {
		return fmt.Errorf("updating loan balances: %w", err)
	}

	if err := checkVersion(res); err != nil {
		return err
	}

	l.Version++

	return nil
}
