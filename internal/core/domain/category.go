package domain

import (
	"slices"
	"strings"
)

// Category groups transactions of one type. Categories form a forest per tenant.
type Category struct {
	CategoryID string          `json:"categoryID"`
	TenantID   string          `json:"tenantID"`
	Name       string          `json:"name"`
	Type       TransactionType `json:"type"`
	ParentID   *string         `json:"parentID,omitempty"`
	AuditFields
}

// IsRoot reports whether the category has no parent.
func (c Category) IsRoot() bool {
	return c.ParentID == nil || *c.ParentID == ""
}

// CategoryNode is a category together with its materialized children.
type CategoryNode struct {
	Category
	Children []*CategoryNode `json:"children"`
}

// CompareCategoryNames orders categories case-insensitively, falling back to
// a byte comparison so the order is total. Storage sorts with the same key.
func CompareCategoryNames(a, b Category) int {
	if c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
		return c
	}
	return strings.Compare(a.Name, b.Name)
}

// SortCategories sorts in place by name, keeping equal names in input order.
func SortCategories(categories []Category) {
	slices.SortStableFunc(categories, CompareCategoryNames)
}

// BuildCategoryTree assembles a forest from a flat list in a single pass.
// Sibling order follows input order, so callers pass categories already sorted by name.
// A category whose parent is not in the list is returned as a root.
func BuildCategoryTree(categories []Category) []*CategoryNode {
	nodes := make(map[string]*CategoryNode, len(categories))
	for _, c := range categories {
		nodes[c.CategoryID] = &CategoryNode{Category: c, Children: []*CategoryNode{}}
	}

	roots := make([]*CategoryNode, 0)
	for _, c := range categories {
		node := nodes[c.CategoryID]
		if !c.IsRoot() {
			if parent, ok := nodes[*c.ParentID]; ok && parent != node {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}
	return roots
}
