package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/events"
	"github.com/google/uuid"
)

type transactionServiceImpl struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	refs            referenceResolver
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionServiceImpl)

// WithTransactionEventPublisher sets the publisher notified after each committed write.
func WithTransactionEventPublisher(p events.Publisher) TransactionServiceOption {
	return func(s *transactionServiceImpl) {
		s.Events = p
	}
}

// WithPersonReader enables person references on transactions.
func WithPersonReader(repo portsrepo.PersonReader) TransactionServiceOption {
	return func(s *transactionServiceImpl) {
		s.refs.people = repo
	}
}

// WithCostCenterReader enables cost center references on transactions.
func WithCostCenterReader(repo portsrepo.CostCenterReader) TransactionServiceOption {
	return func(s *transactionServiceImpl) {
		s.refs.costCenters = repo
	}
}

func NewTransactionService(
	transactionRepo portsrepo.TransactionRepositoryFacade,
	accountRepo portsrepo.AccountReader,
	categoryRepo portsrepo.CategoryReader,
	options ...TransactionServiceOption,
) portssvc.TransactionSvcFacade {
	svc := &transactionServiceImpl{
		transactionRepo: transactionRepo,
		refs: referenceResolver{
			accounts:   accountRepo,
			categories: categoryRepo,
		},
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionServiceImpl)(nil)

func (s *transactionServiceImpl) CreateTransaction(ctx context.Context, tenantID string, req dto.CreateTransactionRequest, userID string) (*domain.TransactionDetail, error) {
	status := req.Status
	if status == "" {
		status = domain.StatusPending
	}
	date := domain.NormalizeDate(req.Date.Time)
	competence := date
	if req.CompetenceDate != nil && !req.CompetenceDate.IsZero() {
		competence = domain.NormalizeDate(req.CompetenceDate.Time)
	}

	txn := domain.Transaction{
		TransactionID:  uuid.NewString(),
		TenantID:       tenantID,
		Description:    strings.TrimSpace(req.Description),
		Amount:         req.Amount,
		Date:           date,
		CompetenceDate: competence,
		Type:           req.Type,
		Status:         status,
		AccountID:      req.AccountID,
		CategoryID:     req.CategoryID,
		CostCenterID:   trimmedOrNil(req.CostCenterID),
		PersonID:       trimmedOrNil(req.PersonID),
		AuditFields:    domain.NewAuditFields(userID, time.Now()),
	}
	if err := txn.Validate(); err != nil {
		return nil, err
	}

	detail, err := s.resolveReferences(ctx, txn)
	if err != nil {
		s.LogError(ctx, err, "Transaction references rejected",
			slog.String("tenant_id", tenantID),
			slog.String("account_id", txn.AccountID),
			slog.String("category_id", txn.CategoryID))
		return nil, err
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("tenant_id", tenantID),
		slog.String("type", string(txn.Type)),
		slog.String("status", string(txn.Status)))
	s.PublishEvent(ctx, events.NewTransactionCreated(txn, userID, time.Now()))
	return detail, nil
}

// resolveReferences checks every referenced entity against the tenant and builds
// the joined projection returned to the caller.
func (s *transactionServiceImpl) resolveReferences(ctx context.Context, txn domain.Transaction) (*domain.TransactionDetail, error) {
	account, err := s.refs.account(ctx, txn.TenantID, txn.AccountID)
	if err != nil {
		return nil, err
	}
	category, err := s.refs.category(ctx, txn.TenantID, txn.CategoryID)
	if err != nil {
		return nil, err
	}

	detail := &domain.TransactionDetail{
		Transaction: txn,
		Account: domain.AccountRef{
			AccountID:   account.AccountID,
			Name:        account.Name,
			BankName:    account.BankName,
			AccountType: account.AccountType,
		},
		Category: domain.CategoryRef{
			CategoryID: category.CategoryID,
			Name:       category.Name,
			Type:       category.Type,
		},
	}

	if txn.PersonID != nil {
		if s.refs.people == nil {
			return nil, fmt.Errorf("%w: person references are not supported", apperrors.ErrValidation)
		}
		person, err := s.refs.person(ctx, txn.TenantID, *txn.PersonID)
		if err != nil {
			return nil, err
		}
		detail.Person = &domain.PersonRef{PersonID: person.PersonID, Name: person.Name}
	}
	if txn.CostCenterID != nil {
		if s.refs.costCenters == nil {
			return nil, fmt.Errorf("%w: cost center references are not supported", apperrors.ErrValidation)
		}
		cc, err := s.refs.costCenter(ctx, txn.TenantID, *txn.CostCenterID)
		if err != nil {
			return nil, err
		}
		detail.CostCenter = &domain.CostCenterRef{CostCenterID: cc.CostCenterID, Name: cc.Name}
	}
	return detail, nil
}

func (s *transactionServiceImpl) ListTransactions(ctx context.Context, tenantID string, filter domain.TransactionFilter) (*domain.TransactionPage, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	limit := filter.Limit
	if limit > 0 {
		// One extra row tells us whether another page exists.
		filter.Limit = limit + 1
	}

	rows, err := s.transactionRepo.ListTransactions(ctx, tenantID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if rows == nil {
		rows = []domain.TransactionDetail{}
	}

	page := &domain.TransactionPage{Transactions: rows}
	if limit > 0 && len(rows) > limit {
		page.Transactions = rows[:limit]
		last := page.Transactions[limit-1]
		page.NextCursor = &domain.TransactionCursor{
			Date:          last.Date,
			CreatedAt:     last.CreatedAt,
			TransactionID: last.TransactionID,
		}
	}
	return page, nil
}

func (s *transactionServiceImpl) UpdateTransactionStatus(ctx context.Context, tenantID string, transactionID string, status domain.TransactionStatus, userID string) (domain.MutationResult, error) {
	if !status.IsValid() {
		return domain.MutationResult{}, fmt.Errorf("%w: invalid transaction status %q", apperrors.ErrValidation, status)
	}

	if status != domain.StatusConfirmed {
		existing, err := s.transactionRepo.FindTransactionByID(ctx, tenantID, transactionID)
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			return domain.MutationResult{}, nil
		case err != nil:
			s.LogError(ctx, err, "Failed to load transaction", slog.String("transaction_id", transactionID))
			return domain.MutationResult{}, fmt.Errorf("failed to load transaction: %w", err)
		case existing.IsTransferLeg():
			return domain.MutationResult{}, fmt.Errorf("%w: transfer legs stay CONFIRMED", apperrors.ErrTransferInvariant)
		}
	}

	now := time.Now()
	affected, err := s.transactionRepo.UpdateTransactionStatus(ctx, tenantID, transactionID, status, userID, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to update transaction status",
			slog.String("transaction_id", transactionID),
			slog.String("status", string(status)))
		return domain.MutationResult{}, fmt.Errorf("failed to update transaction status: %w", err)
	}
	if affected > 0 {
		s.PublishEvent(ctx, events.NewStatusChanged(tenantID, transactionID, status, userID, now))
	}
	return domain.MutationResult{Affected: affected}, nil
}

func (s *transactionServiceImpl) DeleteTransaction(ctx context.Context, tenantID string, transactionID string) (domain.MutationResult, error) {
	affected, err := s.transactionRepo.DeleteTransaction(ctx, tenantID, transactionID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return domain.MutationResult{}, fmt.Errorf("failed to delete transaction: %w", err)
	}
	if affected > 0 {
		s.LogInfo(ctx, "Transaction deleted",
			slog.String("transaction_id", transactionID),
			slog.Int64("affected", affected))
		s.PublishEvent(ctx, events.NewTransactionDeleted(tenantID, transactionID, affected, actorFromCtx(ctx), time.Now()))
	}
	return domain.MutationResult{Affected: affected}, nil
}
