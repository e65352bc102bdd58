package dto

import "github.com/SscSPs/finance_tracker/internal/core/domain"

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	Name     string                 `json:"name" binding:"required"`
	Type     domain.TransactionType `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	ParentID *string                `json:"parentID"` // Optional, nil for a root category
}

// CategoryTreeResponse wraps the root categories of a tenant.
type CategoryTreeResponse struct {
	Categories []*domain.CategoryNode `json:"categories"`
}
