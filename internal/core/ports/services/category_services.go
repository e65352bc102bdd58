package services

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/dto"
)

// CategorySvcFacade manages the per-tenant category forest.
type CategorySvcFacade interface {
	// CreateCategory validates the parent (same tenant, existing) before saving.
	CreateCategory(ctx context.Context, tenantID string, req dto.CreateCategoryRequest, userID string) (*domain.Category, error)

	// ListCategories returns the flat list ordered by name.
	ListCategories(ctx context.Context, tenantID string) ([]domain.Category, error)

	// ListCategoryTree returns root categories with nested children, siblings ordered by name.
	ListCategoryTree(ctx context.Context, tenantID string) ([]*domain.CategoryNode, error)

	// DeleteCategory refuses with ErrConflict while children or transactions reference it.
	DeleteCategory(ctx context.Context, tenantID string, categoryID string) (domain.MutationResult, error)
}
