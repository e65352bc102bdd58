package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"golang.org/x/sync/errgroup"
)

type dashboardServiceImpl struct {
	BaseService
	aggregationRepo portsrepo.AggregationReader
	location        *time.Location
	now             func() time.Time
	seriesMonths    int
}

// DashboardServiceOption is a functional option for configuring the dashboard service
type DashboardServiceOption func(*dashboardServiceImpl)

// WithLocation sets the zone used to decide which month "now" falls in.
func WithLocation(loc *time.Location) DashboardServiceOption {
	return func(s *dashboardServiceImpl) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) DashboardServiceOption {
	return func(s *dashboardServiceImpl) {
		s.now = now
	}
}

func NewDashboardService(repo portsrepo.AggregationReader, options ...DashboardServiceOption) portssvc.DashboardSvcFacade {
	svc := &dashboardServiceImpl{
		aggregationRepo: repo,
		location:        time.Local,
		now:             time.Now,
		seriesMonths:    domain.DefaultSeriesMonths,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.DashboardSvcFacade = (*dashboardServiceImpl)(nil)

// GetSummary computes all figures from confirmed transactions on every call.
func (s *dashboardServiceImpl) GetSummary(ctx context.Context, tenantID string) (*domain.DashboardSummary, error) {
	generatedAt := s.now()
	now := generatedAt.In(s.location)
	monthStart, monthEnd := domain.MonthRange(now)
	seriesStart := domain.SeriesStart(now, s.seriesMonths)

	var (
		allTime domain.IncomeExpense
		month   domain.IncomeExpense
		points  []domain.AmountPoint
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		allTime, err = s.aggregationRepo.SumConfirmed(gctx, tenantID, nil, nil)
		if err != nil {
			return fmt.Errorf("failed to sum balance: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		month, err = s.aggregationRepo.SumConfirmed(gctx, tenantID, &monthStart, &monthEnd)
		if err != nil {
			return fmt.Errorf("failed to sum current month: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		points, err = s.aggregationRepo.ListConfirmedAmounts(gctx, tenantID, seriesStart, monthEnd)
		if err != nil {
			return fmt.Errorf("failed to load monthly series: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to build dashboard summary", slog.String("tenant_id", tenantID))
		return nil, err
	}

	return &domain.DashboardSummary{
		TotalBalance:   allTime.Net(),
		MonthlyIncome:  month.Income,
		MonthlyExpense: month.Expense,
		Series:         domain.BuildMonthlySeries(now, s.seriesMonths, points),
		GeneratedAt:    generatedAt,
	}, nil
}

func (s *dashboardServiceImpl) ListAccountBalances(ctx context.Context, tenantID string) ([]domain.AccountBalance, error) {
	balances, err := s.aggregationRepo.ListAccountBalances(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list account balances", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to list account balances: %w", err)
	}
	if balances == nil {
		balances = []domain.AccountBalance{}
	}
	for i := range balances {
		// NUMERIC scans may carry any exponent; present two decimals.
		balances[i].Balance = balances[i].Balance.Round(2)
	}
	return balances, nil
}
