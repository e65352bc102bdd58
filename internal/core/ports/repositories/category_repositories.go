package repositories

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// CategoryReader defines read operations for category data
type CategoryReader interface {
	// FindCategoryByID retrieves a category by ID regardless of tenant.
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// ListCategories retrieves all categories of a tenant ordered by name.
	ListCategories(ctx context.Context, tenantID string) ([]domain.Category, error)

	CountCategoryChildren(ctx context.Context, tenantID, categoryID string) (int64, error)
	CountCategoryTransactions(ctx context.Context, tenantID, categoryID string) (int64, error)
}

// CategoryWriter defines write operations for category data
type CategoryWriter interface {
	SaveCategory(ctx context.Context, category domain.Category) error
	DeleteCategory(ctx context.Context, tenantID, categoryID string) (int64, error)
}

// CategoryRepositoryFacade combines all category-related repository interfaces
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
