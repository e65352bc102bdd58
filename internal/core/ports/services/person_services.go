package services

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/dto"
)

type PersonSvcFacade interface {
	CreatePerson(ctx context.Context, tenantID string, req dto.PersonRequest, userID string) (*domain.Person, error)
	GetPersonByID(ctx context.Context, tenantID string, personID string) (*domain.Person, error)
	ListPeople(ctx context.Context, tenantID string) ([]domain.Person, error)
	UpdatePerson(ctx context.Context, tenantID string, personID string, req dto.PersonRequest, userID string) (domain.MutationResult, error)
	DeletePerson(ctx context.Context, tenantID string, personID string) (domain.MutationResult, error)
}

type CostCenterSvcFacade interface {
	CreateCostCenter(ctx context.Context, tenantID string, req dto.CostCenterRequest, userID string) (*domain.CostCenter, error)
	ListCostCenters(ctx context.Context, tenantID string) ([]domain.CostCenter, error)
	UpdateCostCenter(ctx context.Context, tenantID string, costCenterID string, req dto.CostCenterRequest, userID string) (domain.MutationResult, error)
	DeleteCostCenter(ctx context.Context, tenantID string, costCenterID string) (domain.MutationResult, error)
}
