package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
)

// referenceResolver loads entities referenced by a write and checks that they
// belong to the writing tenant.
type referenceResolver struct {
	accounts    portsrepo.AccountReader
	categories  portsrepo.CategoryReader
	people      portsrepo.PersonReader
	costCenters portsrepo.CostCenterReader
}

func notFoundRef(kind, id string, err error) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("%s %s: %w", kind, id, apperrors.ErrNotFound)
	}
	return fmt.Errorf("failed to load %s %s: %w", kind, id, err)
}

func mismatchRef(kind, id string) error {
	return fmt.Errorf("%w: %s %s belongs to another tenant", apperrors.ErrTenantMismatch, kind, id)
}

func (r referenceResolver) account(ctx context.Context, tenantID, accountID string) (*domain.Account, error) {
	acc, err := r.accounts.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, notFoundRef("account", accountID, err)
	}
	if acc.TenantID != tenantID {
		return nil, mismatchRef("account", accountID)
	}
	return acc, nil
}

func (r referenceResolver) category(ctx context.Context, tenantID, categoryID string) (*domain.Category, error) {
	cat, err := r.categories.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, notFoundRef("category", categoryID, err)
	}
	if cat.TenantID != tenantID {
		return nil, mismatchRef("category", categoryID)
	}
	return cat, nil
}

func (r referenceResolver) person(ctx context.Context, tenantID, personID string) (*domain.Person, error) {
	p, err := r.people.FindPersonByID(ctx, personID)
	if err != nil {
		return nil, notFoundRef("person", personID, err)
	}
	if p.TenantID != tenantID {
		return nil, mismatchRef("person", personID)
	}
	return p, nil
}

func (r referenceResolver) costCenter(ctx context.Context, tenantID, costCenterID string) (*domain.CostCenter, error) {
	cc, err := r.costCenters.FindCostCenterByID(ctx, costCenterID)
	if err != nil {
		return nil, notFoundRef("cost center", costCenterID, err)
	}
	if cc.TenantID != tenantID {
		return nil, mismatchRef("cost center", costCenterID)
	}
	return cc, nil
}

// ownedOrNotFound hides entities of other tenants behind ErrNotFound.
func ownedOrNotFound(entityTenantID, tenantID string) error {
	if entityTenantID != tenantID {
		return apperrors.ErrNotFound
	}
	return nil
}
