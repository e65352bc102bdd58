package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultSeriesMonths is the length of the dashboard's trailing monthly series.
const DefaultSeriesMonths = 6

// IncomeExpense holds the confirmed income and expense sums for some period.
type IncomeExpense struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// Net is income minus expense.
func (ie IncomeExpense) Net() decimal.Decimal {
	return ie.Income.Sub(ie.Expense)
}

// AmountPoint is the minimal projection of a confirmed transaction used for bucketing.
type AmountPoint struct {
	Date   time.Time
	Type   TransactionType
	Amount decimal.Decimal
}

// MonthlyPoint is one bucket of the monthly series.
type MonthlyPoint struct {
	Month   string          `json:"month"` // YYYY-MM
	Label   string          `json:"label"` // Jan, Feb, ...
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// DashboardSummary is the read-side projection served by the dashboard.
type DashboardSummary struct {
	TotalBalance   decimal.Decimal `json:"totalBalance"`
	MonthlyIncome  decimal.Decimal `json:"monthlyIncome"`
	MonthlyExpense decimal.Decimal `json:"monthlyExpense"`
	Series         []MonthlyPoint  `json:"series"`
	GeneratedAt    time.Time       `json:"generatedAt"`
}

// MonthRange returns the first and last calendar day of the month containing now,
// as DATE values. now should already be in the bucketing location.
func MonthRange(now time.Time) (time.Time, time.Time) {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}

// SeriesStart is the first day of the oldest month in a trailing series of n months ending at now.
func SeriesStart(now time.Time, months int) time.Time {
	first, _ := MonthRange(now)
	return first.AddDate(0, -(months - 1), 0)
}

func monthKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// BuildMonthlySeries buckets points into the trailing months ending at now, oldest first.
// Points outside the window are ignored. Callers pass confirmed transactions only.
func BuildMonthlySeries(now time.Time, months int, points []AmountPoint) []MonthlyPoint {
	if months <= 0 {
		return []MonthlyPoint{}
	}
	start := SeriesStart(now, months)
	series := make([]MonthlyPoint, months)
	index := make(map[string]int, months)
	for i := 0; i < months; i++ {
		m := start.AddDate(0, i, 0)
		key := monthKey(m.Year(), m.Month())
		series[i] = MonthlyPoint{
			Month:   key,
			Label:   m.Month().String()[:3],
			Income:  decimal.Zero,
			Expense: decimal.Zero,
		}
		index[key] = i
	}

	for _, p := range points {
		i, ok := index[monthKey(p.Date.Year(), p.Date.Month())]
		if !ok {
			continue
		}
		switch p.Type {
		case Income:
			series[i].Income = series[i].Income.Add(p.Amount)
		case Expense:
			series[i].Expense = series[i].Expense.Add(p.Amount)
		}
	}
	return series
}
