package handlers_test

import (
	"context"
	"io"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock IdentityService ---
type MockIdentityService struct {
	mock.Mock
}

func (m *MockIdentityService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.Session, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}
func (m *MockIdentityService) Login(ctx context.Context, req dto.LoginRequest) (*domain.Session, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}
func (m *MockIdentityService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TokenPair), args.Error(1)
}
func (m *MockIdentityService) LoginWithGoogle(ctx context.Context, identity domain.GoogleIdentity) (*domain.Session, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}
func (m *MockIdentityService) ListUserTenants(ctx context.Context, userID string) ([]domain.UserTenant, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserTenant), args.Error(1)
}
func (m *MockIdentityService) AuthorizeTenantAccess(ctx context.Context, userID, tenantID string) error {
	args := m.Called(ctx, userID, tenantID)
	return args.Error(0)
}

var _ portssvc.IdentitySvcFacade = (*MockIdentityService)(nil)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, tenantID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, tenantID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) GetAccountByID(ctx context.Context, tenantID string, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, tenantID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) ListAccounts(ctx context.Context, tenantID string) ([]domain.Account, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountService) UpdateAccount(ctx context.Context, tenantID string, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, tenantID, accountID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) DeleteAccount(ctx context.Context, tenantID string, accountID string) (domain.MutationResult, error) {
	args := m.Called(ctx, tenantID, accountID)
	return args.Get(0).(domain.MutationResult), args.Error(1)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock CategoryService ---
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) CreateCategory(ctx context.Context, tenantID string, req dto.CreateCategoryRequest, userID string) (*domain.Category, error) {
	args := m.Called(ctx, tenantID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCategoryService) ListCategories(ctx context.Context, tenantID string) ([]domain.Category, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}
func (m *MockCategoryService) ListCategoryTree(ctx context.Context, tenantID string) ([]*domain.CategoryNode, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CategoryNode), args.Error(1)
}
func (m *MockCategoryService) DeleteCategory(ctx context.Context, tenantID string, categoryID string) (domain.MutationResult, error) {
	args := m.Called(ctx, tenantID, categoryID)
	return args.Get(0).(domain.MutationResult), args.Error(1)
}

var _ portssvc.CategorySvcFacade = (*MockCategoryService)(nil)

// --- Mock PersonService ---
type MockPersonService struct {
	mock.Mock
}

func (m *MockPersonService) CreatePerson(ctx context.Context, tenantID string, req dto.PersonRequest, userID string) (*domain.Person, error) {
	args := m.Called(ctx, tenantID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}
func (m *MockPersonService) GetPersonByID(ctx context.Context, tenantID string, personID string) (*domain.Person, error) {
	args := m.Called(ctx, tenantID, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}
func (m *MockPersonService) ListPeople(ctx context.Context, tenantID string) ([]domain.Person, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Person), args.Error(1)
}
func (m *MockPersonService) UpdatePerson(ctx context.Context, tenantID string, personID string, req dto.PersonRequest, userID string) (domain.MutationResult, error) {
	args := m.Called(ctx, tenantID, personID, req, userID)
	return args.Get(0).(domain.MutationResult), args.Error(1)
}
func (m *MockPersonService) DeletePerson(ctx context.Context, tenantID string, personID string) (domain.MutationResult, error) {
	args := m.Called(ctx, tenantID, personID)
	return args.Get(0).(domain.MutationResult), args.Error(1)
}

var _ portssvc.PersonSvcFacade = (*MockPersonService)(nil)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, tenantID string, filter domain.TransactionFilter) (*domain.TransactionPage, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionPage), args.Error(1)
}
func (m *MockTransactionService) CreateTransaction(ctx context.Context, tenantID string, req dto.CreateTransactionRequest, userID string) (*domain.TransactionDetail, error) {
	args := m.Called(ctx, tenantID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionDetail), args.Error(1)
}
func (m *MockTransactionService) UpdateTransactionStatus(ctx context.Context, tenantID string, transactionID string, status domain.TransactionStatus, userID string) (domain.MutationResult, error) {
	args := m.Called(ctx, tenantID, transactionID, status, userID)
	return args.Get(0).(domain.MutationResult), args.Error(1)
}
func (m *MockTransactionService) DeleteTransaction(ctx context.Context, tenantID string, transactionID string) (domain.MutationResult, error) {
	args := m.Called(ctx, tenantID, transactionID)
	return args.Get(0).(domain.MutationResult), args.Error(1)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock TransferService ---
type MockTransferService struct {
	mock.Mock
}

func (m *MockTransferService) CreateTransfer(ctx context.Context, tenantID string, req dto.CreateTransferRequest, userID string) (*domain.Transfer, error) {
	args := m.Called(ctx, tenantID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transfer), args.Error(1)
}

var _ portssvc.TransferSvcFacade = (*MockTransferService)(nil)

// --- Mock DashboardService ---
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) GetSummary(ctx context.Context, tenantID string) (*domain.DashboardSummary, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardSummary), args.Error(1)
}
func (m *MockDashboardService) ListAccountBalances(ctx context.Context, tenantID string) ([]domain.AccountBalance, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountBalance), args.Error(1)
}

var _ portssvc.DashboardSvcFacade = (*MockDashboardService)(nil)

// --- Mock ReportService ---
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) GetTransactionData(ctx context.Context, tenantID string, filter domain.ReportFilter) ([]domain.TransactionDetail, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionDetail), args.Error(1)
}
func (m *MockReportService) ExportTransactionsXLSX(ctx context.Context, tenantID string, filter domain.ReportFilter, w io.Writer) error {
	args := m.Called(ctx, tenantID, filter, w)
	return args.Error(0)
}

var _ portssvc.ReportSvcFacade = (*MockReportService)(nil)

// --- Mock CostCenterService ---
type MockCostCenterService struct {
	mock.Mock
}

func (m *MockCostCenterService) CreateCostCenter(ctx context.Context, tenantID string, req dto.CostCenterRequest, userID string) (*domain.CostCenter, error) {
	args := m.Called(ctx, tenantID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CostCenter), args.Error(1)
}
func (m *MockCostCenterService) ListCostCenters(ctx context.Context, tenantID string) ([]domain.CostCenter, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CostCenter), args.Error(1)
}
func (m *MockCostCenterService) UpdateCostCenter(ctx context.Context, tenantID string, costCenterID string, req dto.CostCenterRequest, userID string) (domain.MutationResult, error) {
	args := m.Called(ctx, tenantID, costCenterID, req, userID)
	return args.Get(0).(domain.MutationResult), args.Error(1)
}
func (m *MockCostCenterService) DeleteCostCenter(ctx context.Context, tenantID string, costCenterID string) (domain.MutationResult, error) {
	args := m.Called(ctx, tenantID, costCenterID)
	return args.Get(0).(domain.MutationResult), args.Error(1)
}

var _ portssvc.CostCenterSvcFacade = (*MockCostCenterService)(nil)
