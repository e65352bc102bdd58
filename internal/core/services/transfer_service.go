package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/events"
	"github.com/google/uuid"
)

type transferServiceImpl struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryWithTx
	refs            referenceResolver
}

// TransferServiceOption is a functional option for configuring the transfer service
type TransferServiceOption func(*transferServiceImpl)

func WithTransferEventPublisher(p events.Publisher) TransferServiceOption {
	return func(s *transferServiceImpl) {
		s.Events = p
	}
}

func NewTransferService(
	transactionRepo portsrepo.TransactionRepositoryWithTx,
	accountRepo portsrepo.AccountReader,
	categoryRepo portsrepo.CategoryReader,
	options ...TransferServiceOption,
) portssvc.TransferSvcFacade {
	svc := &transferServiceImpl{
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

var _ portssvc.TransferSvcFacade = (*transferServiceImpl)(nil)

// CreateTransfer writes the withdrawal, the deposit and the back-link in one
// database transaction. Nothing is persisted unless all three succeed.
func (s *transferServiceImpl) CreateTransfer(ctx context.Context, tenantID string, req dto.CreateTransferRequest, userID string) (*domain.Transfer, error) {
	transferReq := req.ToDomain()
	if err := transferReq.Validate(); err != nil {
		return nil, err
	}

	from, err := s.refs.account(ctx, tenantID, transferReq.FromAccountID)
	if err != nil {
		return nil, err
	}
	to, err := s.refs.account(ctx, tenantID, transferReq.ToAccountID)
	if err != nil {
		return nil, err
	}
	transferReq.FromAccountName = from.Name
	transferReq.ToAccountName = to.Name
	if _, err := s.refs.category(ctx, tenantID, transferReq.CategoryID); err != nil {
		return nil, err
	}

	now := time.Now()
	withdrawal, deposit := domain.NewTransferLegs(tenantID, userID, transferReq, uuid.NewString(), uuid.NewString(), now)

	tx, err := s.transactionRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin transfer transaction", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if rbErr := s.transactionRepo.Rollback(ctx, tx); rbErr != nil {
			s.LogError(ctx, rbErr, "Failed to roll back transfer transaction")
		}
	}()

	if err := s.transactionRepo.SaveTransactionInTx(ctx, tx, withdrawal); err != nil {
		s.LogError(ctx, err, "Failed to save transfer withdrawal", slog.String("transaction_id", withdrawal.TransactionID))
		return nil, fmt.Errorf("failed to save withdrawal: %w", err)
	}
	if err := s.transactionRepo.SaveTransactionInTx(ctx, tx, deposit); err != nil {
		s.LogError(ctx, err, "Failed to save transfer deposit", slog.String("transaction_id", deposit.TransactionID))
		return nil, fmt.Errorf("failed to save deposit: %w", err)
	}
	if err := s.transactionRepo.LinkTransactionInTx(ctx, tx, tenantID, withdrawal.TransactionID, deposit.TransactionID, now); err != nil {
		s.LogError(ctx, err, "Failed to link transfer legs", slog.String("transaction_id", withdrawal.TransactionID))
		return nil, fmt.Errorf("failed to link transfer legs: %w", err)
	}
	linked := deposit.TransactionID
	withdrawal.LinkedTransactionID = &linked

	transfer := domain.Transfer{Withdrawal: withdrawal, Deposit: deposit}
	if err := transfer.Verify(); err != nil {
		s.LogError(ctx, err, "Transfer pair failed verification")
		return nil, err
	}

	if err := s.transactionRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit transfer", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to commit transfer: %w", err)
	}

	s.LogInfo(ctx, "Transfer created",
		slog.String("tenant_id", tenantID),
		slog.String("withdrawal_id", withdrawal.TransactionID),
		slog.String("deposit_id", deposit.TransactionID),
		slog.String("amount", transferReq.Amount.String()))
	s.PublishEvent(ctx, events.NewTransferCreated(transfer, userID, now))
	return &transfer, nil
}
