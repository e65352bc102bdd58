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

type personServiceImpl struct {
	BaseService
	personRepo portsrepo.PersonRepositoryFacade
}

func NewPersonService(repo portsrepo.PersonRepositoryFacade) portssvc.PersonSvcFacade {
	return &personServiceImpl{personRepo: repo}
}

var _ portssvc.PersonSvcFacade = (*personServiceImpl)(nil)

func (s *personServiceImpl) buildPerson(req dto.PersonRequest) (domain.Person, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Person{}, fmt.Errorf("%w: person name is required", apperrors.ErrValidation)
	}
	return domain.Person{
		Name:     name,
		Document: trimmedOrNil(req.Document),
		Email:    trimmedOrNil(req.Email),
		Phone:    trimmedOrNil(req.Phone),
	}, nil
}

func (s *personServiceImpl) CreatePerson(ctx context.Context, tenantID string, req dto.PersonRequest, userID string) (*domain.Person, error) {
	person, err := s.buildPerson(req)
	if err != nil {
		return nil, err
	}
	person.PersonID = uuid.NewString()
	person.TenantID = tenantID
	person.AuditFields = domain.NewAuditFields(userID, time.Now())

	if err := s.personRepo.SavePerson(ctx, person); err != nil {
		s.LogError(ctx, err, "Failed to save person", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to save person: %w", err)
	}
	return &person, nil
}

func (s *personServiceImpl) GetPersonByID(ctx context.Context, tenantID string, personID string) (*domain.Person, error) {
	person, err := s.personRepo.FindPersonByID(ctx, personID)
	if err != nil {
		return nil, err
	}
	if err := ownedOrNotFound(person.TenantID, tenantID); err != nil {
		return nil, err
	}
	return person, nil
}

func (s *personServiceImpl) ListPeople(ctx context.Context, tenantID string) ([]domain.Person, error) {
	people, err := s.personRepo.ListPeople(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list people", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	if people == nil {
		people = []domain.Person{}
	}
	return people, nil
}

func (s *personServiceImpl) UpdatePerson(ctx context.Context, tenantID string, personID string, req dto.PersonRequest, userID string) (domain.MutationResult, error) {
	person, err := s.buildPerson(req)
	if err != nil {
		return domain.MutationResult{}, err
	}
	person.PersonID = personID
	person.TenantID = tenantID
	person.LastUpdatedAt = time.Now()
	person.LastUpdatedBy = userID

	affected, err := s.personRepo.UpdatePerson(ctx, person)
	if err != nil {
		s.LogError(ctx, err, "Failed to update person", slog.String("person_id", personID))
		return domain.MutationResult{}, fmt.Errorf("failed to update person: %w", err)
	}
	return domain.MutationResult{Affected: affected}, nil
}

func (s *personServiceImpl) DeletePerson(ctx context.Context, tenantID string, personID string) (domain.MutationResult, error) {
	affected, err := s.personRepo.DeletePerson(ctx, tenantID, personID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete person", slog.String("person_id", personID))
		return domain.MutationResult{}, fmt.Errorf("failed to delete person: %w", err)
	}
	s.LogInfo(ctx, "Person deleted",
		slog.String("person_id", personID),
		slog.Int64("affected", affected))
	return domain.MutationResult{Affected: affected}, nil
}
