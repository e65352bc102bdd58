package repositories

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// PersonReader defines read operations for people
type PersonReader interface {
	// FindPersonByID retrieves a person by ID regardless of tenant.
	FindPersonByID(ctx context.Context, personID string) (*domain.Person, error)
	ListPeople(ctx context.Context, tenantID string) ([]domain.Person, error)
}

// PersonWriter defines write operations for people
type PersonWriter interface {
	SavePerson(ctx context.Context, person domain.Person) error
	UpdatePerson(ctx context.Context, person domain.Person) (int64, error)
	// DeletePerson removes the person and clears the reference on its transactions.
	DeletePerson(ctx context.Context, tenantID, personID string) (int64, error)
}

type PersonRepositoryFacade interface {
	PersonReader
	PersonWriter
}
