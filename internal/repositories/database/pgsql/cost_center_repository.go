package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/finance_tracker/internal/models"
	"github.com/SscSPs/finance_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCostCenterRepository struct {
	BaseRepository
}

func newPgxCostCenterRepository(pool *pgxpool.Pool) portsrepo.CostCenterRepositoryFacade {
	return &PgxCostCenterRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CostCenterRepositoryFacade = (*PgxCostCenterRepository)(nil)

const costCenterColumns = `cost_center_id, tenant_id, name, created_at, created_by, last_updated_at, last_updated_by`

func scanCostCenter(row rowScanner) (*domain.CostCenter, error) {
	var m models.CostCenter
	if err := row.Scan(
		&m.CostCenterID,
		&m.TenantID,
		&m.Name,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	); err != nil {
		return nil, err
	}
	cc := mapping.ToDomainCostCenter(m)
	return &cc, nil
}

func (r *PgxCostCenterRepository) SaveCostCenter(ctx context.Context, costCenter domain.CostCenter) error {
	m := mapping.ToModelCostCenter(costCenter)
	query := `
		INSERT INTO cost_centers (` + costCenterColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CostCenterID, m.TenantID, m.Name,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: cost center with ID %s already exists", apperrors.ErrDuplicate, m.CostCenterID)
		}
		return fmt.Errorf("failed to save cost center %s: %w", m.CostCenterID, err)
	}
	return nil
}

func (r *PgxCostCenterRepository) FindCostCenterByID(ctx context.Context, costCenterID string) (*domain.CostCenter, error) {
	query := `SELECT ` + costCenterColumns + ` FROM cost_centers WHERE cost_center_id = $1;`
	cc, err := scanCostCenter(r.Pool.QueryRow(ctx, query, costCenterID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cost center by ID %s: %w", costCenterID, err)
	}
	return cc, nil
}

func (r *PgxCostCenterRepository) ListCostCenters(ctx context.Context, tenantID string) ([]domain.CostCenter, error) {
	query := `SELECT ` + costCenterColumns + ` FROM cost_centers WHERE tenant_id = $1 ORDER BY lower(name), name, cost_center_id;`
	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cost centers for tenant %s: %w", tenantID, err)
	}
	defer rows.Close()

	costCenters := []domain.CostCenter{}
	for rows.Next() {
		cc, err := scanCostCenter(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cost center row: %w", err)
		}
		costCenters = append(costCenters, *cc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cost center rows: %w", err)
	}
	return costCenters, nil
}

func (r *PgxCostCenterRepository) UpdateCostCenter(ctx context.Context, costCenter domain.CostCenter) (int64, error) {
	query := `
		UPDATE cost_centers
		SET name = $3, last_updated_at = $4, last_updated_by = $5
		WHERE tenant_id = $1 AND cost_center_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		costCenter.TenantID,
		costCenter.CostCenterID,
		costCenter.Name,
		costCenter.LastUpdatedAt,
		costCenter.LastUpdatedBy,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update cost center %s: %w", costCenter.CostCenterID, err)
	}
	return tag.RowsAffected(), nil
}

// DeleteCostCenter removes the cost center. The foreign key clears cost_center_id on its transactions.
func (r *PgxCostCenterRepository) DeleteCostCenter(ctx context.Context, tenantID, costCenterID string) (int64, error) {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM cost_centers WHERE tenant_id = $1 AND cost_center_id = $2;`, tenantID, costCenterID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete cost center %s: %w", costCenterID, err)
	}
	return tag.RowsAffected(), nil
}
