package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// aggregationRepository implements the AggregationReader interface
type aggregationRepository struct {
	BaseRepository
}

func newAggregationRepository(db *pgxpool.Pool) portsrepo.AggregationReader {
	return &aggregationRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.AggregationReader = (*aggregationRepository)(nil)

// SumConfirmed sums confirmed income and expense in an optional date range.
func (r *aggregationRepository) SumConfirmed(ctx context.Context, tenantID string, from, to *time.Time) (domain.IncomeExpense, error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = 'INCOME'), 0)  AS income,
			COALESCE(SUM(amount) FILTER (WHERE type = 'EXPENSE'), 0) AS expense
		FROM transactions
		WHERE tenant_id = $1
			AND status = 'CONFIRMED'
			AND ($2::date IS NULL OR date >= $2::date)
			AND ($3::date IS NULL OR date <= $3::date)
	`
	var res domain.IncomeExpense
	if err := r.Pool.QueryRow(ctx, query, tenantID, normalizeOptionalDate(from), normalizeOptionalDate(to)).Scan(&res.Income, &res.Expense); err != nil {
		return domain.IncomeExpense{}, fmt.Errorf("error summing confirmed transactions: %w", err)
	}
	return res, nil
}

// ListConfirmedAmounts returns the minimal projection used for monthly bucketing.
func (r *aggregationRepository) ListConfirmedAmounts(ctx context.Context, tenantID string, from, to time.Time) ([]domain.AmountPoint, error) {
	query := `
		SELECT date, type, amount
		FROM transactions
		WHERE tenant_id = $1
			AND status = 'CONFIRMED'
			AND date >= $2
			AND date <= $3
		ORDER BY date
	`
	rows, err := r.Pool.Query(ctx, query, tenantID, domain.NormalizeDate(from), domain.NormalizeDate(to))
	if err != nil {
		return nil, fmt.Errorf("error querying confirmed amounts: %w", err)
	}
	defer rows.Close()

	var result []domain.AmountPoint
	for rows.Next() {
		var p domain.AmountPoint
		var txnType string
		if err := rows.Scan(&p.Date, &txnType, &p.Amount); err != nil {
			return nil, fmt.Errorf("error scanning confirmed amount: %w", err)
		}
		p.Type = domain.TransactionType(txnType)
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating confirmed amounts: %w", err)
	}
	return result, nil
}

// ListAccountBalances derives every account's balance from its confirmed transactions.
func (r *aggregationRepository) ListAccountBalances(ctx context.Context, tenantID string) ([]domain.AccountBalance, error) {
	query := `
		SELECT
			a.account_id,
			a.name,
			a.account_type,
			COALESCE(SUM(CASE WHEN t.type = 'INCOME' THEN t.amount WHEN t.type = 'EXPENSE' THEN -t.amount END), 0) AS balance
		FROM accounts a
		LEFT JOIN transactions t
			ON t.account_id = a.account_id
			AND t.tenant_id = a.tenant_id
			AND t.status = 'CONFIRMED'
		WHERE a.tenant_id = $1
		GROUP BY a.account_id, a.name, a.account_type
		ORDER BY lower(a.name), a.name, a.account_id
	`
	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("error querying account balances: %w", err)
	}
	defer rows.Close()

	result := []domain.AccountBalance{}
	for rows.Next() {
		var b domain.AccountBalance
		var accountType string
		if err := rows.Scan(&b.AccountID, &b.Name, &accountType, &b.Balance); err != nil {
			return nil, fmt.Errorf("error scanning account balance: %w", err)
		}
		b.AccountType = domain.AccountType(accountType)
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account balances: %w", err)
	}
	return result, nil
}

func normalizeOptionalDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := domain.NormalizeDate(*t)
	return &d
}
