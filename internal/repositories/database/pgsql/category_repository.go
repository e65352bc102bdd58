package pgsql

import (
	"context"
	"database/sql"
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

type PgxCategoryRepository struct {
	BaseRepository
}

func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

const categoryColumns = `category_id, tenant_id, name, type, parent_id, created_at, created_by, last_updated_at, last_updated_by`

func scanCategory(row rowScanner) (*domain.Category, error) {
	var m models.Category
	var parentID sql.NullString
	if err := row.Scan(
		&m.CategoryID,
		&m.TenantID,
		&m.Name,
		&m.Type,
		&parentID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	); err != nil {
		return nil, err
	}
	m.ParentID = mapping.FromNullString(parentID)
	c := mapping.ToDomainCategory(m)
	return &c, nil
}

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)
	query := `
		INSERT INTO categories (` + categoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CategoryID,
		m.TenantID,
		m.Name,
		m.Type,
		mapping.ToNullString(m.ParentID),
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return fmt.Errorf("%w: category with ID %s already exists", apperrors.ErrDuplicate, m.CategoryID)
		case isForeignKeyViolation(err):
			// parent removed between the service check and the insert
			return fmt.Errorf("%w: parent category %s", apperrors.ErrNotFound, m.ParentID)
		}
		return fmt.Errorf("failed to save category %s: %w", m.CategoryID, err)
	}
	return nil
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE category_id = $1;`
	c, err := scanCategory(r.Pool.QueryRow(ctx, query, categoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category by ID %s: %w", categoryID, err)
	}
	return c, nil
}

func (r *PgxCategoryRepository) ListCategories(ctx context.Context, tenantID string) ([]domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE tenant_id = $1 ORDER BY lower(name), name, category_id;`
	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories for tenant %s: %w", tenantID, err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}
	return categories, nil
}

func (r *PgxCategoryRepository) CountCategoryChildren(ctx context.Context, tenantID, categoryID string) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM categories WHERE tenant_id = $1 AND parent_id = $2;`
	if err := r.Pool.QueryRow(ctx, query, tenantID, categoryID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count children of category %s: %w", categoryID, err)
	}
	return count, nil
}

func (r *PgxCategoryRepository) CountCategoryTransactions(ctx context.Context, tenantID, categoryID string) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM transactions WHERE tenant_id = $1 AND category_id = $2;`
	if err := r.Pool.QueryRow(ctx, query, tenantID, categoryID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count transactions of category %s: %w", categoryID, err)
	}
	return count, nil
}

func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, tenantID, categoryID string) (int64, error) {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM categories WHERE tenant_id = $1 AND category_id = $2;`, tenantID, categoryID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, fmt.Errorf("%w: category %s is still referenced", apperrors.ErrConflict, categoryID)
		}
		return 0, fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}
	return tag.RowsAffected(), nil
}
