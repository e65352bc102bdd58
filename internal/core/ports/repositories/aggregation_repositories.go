package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// AggregationReader computes read-side sums over CONFIRMED transactions only.
type AggregationReader interface {
	// SumConfirmed sums income and expense with date in [from, to]; nil bounds are open.
	SumConfirmed(ctx context.Context, tenantID string, from, to *time.Time) (domain.IncomeExpense, error)

	// ListConfirmedAmounts returns (date, type, amount) for confirmed rows with date in [from, to].
	ListConfirmedAmounts(ctx context.Context, tenantID string, from, to time.Time) ([]domain.AmountPoint, error)

	// ListAccountBalances derives a balance for every account of the tenant, zero when unused.
	ListAccountBalances(ctx context.Context, tenantID string) ([]domain.AccountBalance, error)
}
