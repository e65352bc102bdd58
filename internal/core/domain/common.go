package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// NewAuditFields stamps creation and update fields with the same user and time.
func NewAuditFields(userID string, now time.Time) AuditFields {
	return AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
}

// MutationResult reports how many tenant-scoped rows an update or delete touched.
// Zero is a valid outcome: the target did not exist for that tenant.
type MutationResult struct {
	Affected int64 `json:"affected"`
}

// Found reports whether the mutation touched at least one row.
func (r MutationResult) Found() bool {
	return r.Affected > 0
}

// NormalizeDate truncates t to a calendar date at UTC midnight, matching how
// DATE columns round-trip through the driver.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// MoneyScale is the number of decimal places stored for every amount (NUMERIC(18,2)).
const MoneyScale = 2

// HasMoneyScale reports whether d is representable without rounding at MoneyScale.
func HasMoneyScale(d decimal.Decimal) bool {
	return d.Equal(d.Round(MoneyScale))
}
