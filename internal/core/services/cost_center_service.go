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

type costCenterServiceImpl struct {
	BaseService
	costCenterRepo portsrepo.CostCenterRepositoryFacade
}

func NewCostCenterService(repo portsrepo.CostCenterRepositoryFacade) portssvc.CostCenterSvcFacade {
	return &costCenterServiceImpl{costCenterRepo: repo}
}

var _ portssvc.CostCenterSvcFacade = (*costCenterServiceImpl)(nil)

func costCenterName(req dto.CostCenterRequest) (string, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return "", fmt.Errorf("%w: cost center name is required", apperrors.ErrValidation)
	}
	return name, nil
}

func (s *costCenterServiceImpl) CreateCostCenter(ctx context.Context, tenantID string, req dto.CostCenterRequest, userID string) (*domain.CostCenter, error) {
	name, err := costCenterName(req)
	if err != nil {
		return nil, err
	}
	cc := domain.CostCenter{
		CostCenterID: uuid.NewString(),
		TenantID:     tenantID,
		Name:         name,
		AuditFields:  domain.NewAuditFields(userID, time.Now()),
	}
	if err := s.costCenterRepo.SaveCostCenter(ctx, cc); err != nil {
		s.LogError(ctx, err, "Failed to save cost center", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to save cost center: %w", err)
	}
	return &cc, nil
}

func (s *costCenterServiceImpl) ListCostCenters(ctx context.Context, tenantID string) ([]domain.CostCenter, error) {
	centers, err := s.costCenterRepo.ListCostCenters(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cost centers", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to list cost centers: %w", err)
	}
	if centers == nil {
		centers = []domain.CostCenter{}
	}
	return centers, nil
}

func (s *costCenterServiceImpl) UpdateCostCenter(ctx context.Context, tenantID string, costCenterID string, req dto.CostCenterRequest, userID string) (domain.MutationResult, error) {
	name, err := costCenterName(req)
	if err != nil {
		return domain.MutationResult{}, err
	}
	cc := domain.CostCenter{
		CostCenterID: costCenterID,
		TenantID:     tenantID,
		Name:         name,
		AuditFields: domain.AuditFields{
			LastUpdatedAt: time.Now(),
			LastUpdatedBy: userID,
		},
	}
	affected, err := s.costCenterRepo.UpdateCostCenter(ctx, cc)
	if err != nil {
		s.LogError(ctx, err, "Failed to update cost center", slog.String("cost_center_id", costCenterID))
		return domain.MutationResult{}, fmt.Errorf("failed to update cost center: %w", err)
	}
	return domain.MutationResult{Affected: affected}, nil
}

func (s *costCenterServiceImpl) DeleteCostCenter(ctx context.Context, tenantID string, costCenterID string) (domain.MutationResult, error) {
	affected, err := s.costCenterRepo.DeleteCostCenter(ctx, tenantID, costCenterID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete cost center", slog.String("cost_center_id", costCenterID))
		return domain.MutationResult{}, fmt.Errorf("failed to delete cost center: %w", err)
	}
	return domain.MutationResult{Affected: affected}, nil
}
