package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/google/uuid"
)

type categoryServiceImpl struct {
	BaseService
	categoryRepo     portsrepo.CategoryRepositoryFacade
	strictParentType bool
}

// CategoryServiceOption is a functional option for configuring the category service
type CategoryServiceOption func(*categoryServiceImpl)

// WithStrictParentType rejects children whose type differs from their parent.
func WithStrictParentType(strict bool) CategoryServiceOption {
	return func(s *categoryServiceImpl) {
		s.strictParentType = strict
	}
}

func NewCategoryService(repo portsrepo.CategoryRepositoryFacade, options ...CategoryServiceOption) portssvc.CategorySvcFacade {
	svc := &categoryServiceImpl{categoryRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CategorySvcFacade = (*categoryServiceImpl)(nil)

func (s *categoryServiceImpl) CreateCategory(ctx context.Context, tenantID string, req dto.CreateCategoryRequest, userID string) (*domain.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", apperrors.ErrValidation)
	}
	if !req.Type.IsValid() {
		return nil, fmt.Errorf("%w: invalid category type %q", apperrors.ErrValidation, req.Type)
	}

	parentID := trimmedOrNil(req.ParentID)
	if parentID != nil {
		if err := s.checkParent(ctx, tenantID, *parentID, req.Type); err != nil {
			return nil, err
		}
	}

	category := domain.Category{
		CategoryID:  uuid.NewString(),
		TenantID:    tenantID,
		Name:        name,
		Type:        req.Type,
		ParentID:    parentID,
		AuditFields: domain.NewAuditFields(userID, time.Now()),
	}
	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category",
			slog.String("tenant_id", tenantID),
			slog.String("category_name", name))
		return nil, fmt.Errorf("failed to save category: %w", err)
	}
	return &category, nil
}

// checkParent requires the parent to exist in the same tenant. A type mismatch is
// rejected only in strict mode.
func (s *categoryServiceImpl) checkParent(ctx context.Context, tenantID, parentID string, childType domain.TransactionType) error {
	parent, err := s.categoryRepo.FindCategoryByID(ctx, parentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find parent category", slog.String("parent_id", parentID))
		return notFoundRef("parent category", parentID, err)
	}
	if parent.TenantID != tenantID {
		return mismatchRef("parent category", parentID)
	}
	if parent.Type != childType {
		if s.strictParentType {
			return fmt.Errorf("%w: category type %s does not match parent type %s", apperrors.ErrValidation, childType, parent.Type)
		}
		s.LogWarn(ctx, "Category type differs from parent type",
			slog.String("parent_id", parentID),
			slog.String("parent_type", string(parent.Type)),
			slog.String("child_type", string(childType)))
	}
	return nil
}

func (s *categoryServiceImpl) ListCategories(ctx context.Context, tenantID string) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	// Storage collation may differ from ours; keep sibling order deterministic.
	domain.SortCategories(categories)
	return categories, nil
}

func (s *categoryServiceImpl) ListCategoryTree(ctx context.Context, tenantID string) ([]*domain.CategoryNode, error) {
	categories, err := s.ListCategories(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return domain.BuildCategoryTree(categories), nil
}

func (s *categoryServiceImpl) DeleteCategory(ctx context.Context, tenantID string, categoryID string) (domain.MutationResult, error) {
	children, err := s.categoryRepo.CountCategoryChildren(ctx, tenantID, categoryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count category children", slog.String("category_id", categoryID))
		return domain.MutationResult{}, fmt.Errorf("failed to check category usage: %w", err)
	}
	if children > 0 {
		return domain.MutationResult{}, fmt.Errorf("%w: category has %d subcategories", apperrors.ErrConflict, children)
	}

	txns, err := s.categoryRepo.CountCategoryTransactions(ctx, tenantID, categoryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count category transactions", slog.String("category_id", categoryID))
		return domain.MutationResult{}, fmt.Errorf("failed to check category usage: %w", err)
	}
	if txns > 0 {
		return domain.MutationResult{}, fmt.Errorf("%w: category has %d transactions", apperrors.ErrConflict, txns)
	}

	affected, err := s.categoryRepo.DeleteCategory(ctx, tenantID, categoryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete category", slog.String("category_id", categoryID))
		return domain.MutationResult{}, fmt.Errorf("failed to delete category: %w", err)
	}
	return domain.MutationResult{Affected: affected}, nil
}
