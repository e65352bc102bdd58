package repositories

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// CostCenterReader defines read operations for cost centers
type CostCenterReader interface {
	FindCostCenterByID(ctx context.Context, costCenterID string) (*domain.CostCenter, error)
	ListCostCenters(ctx context.Context, tenantID string) ([]domain.CostCenter, error)
}

// CostCenterWriter defines write operations for cost centers
type CostCenterWriter interface {
	SaveCostCenter(ctx context.Context, costCenter domain.CostCenter) error
	UpdateCostCenter(ctx context.Context, costCenter domain.CostCenter) (int64, error)
	DeleteCostCenter(ctx context.Context, tenantID, costCenterID string) (int64, error)
}

type CostCenterRepositoryFacade interface {
	CostCenterReader
	CostCenterWriter
}
