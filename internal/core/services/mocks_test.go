package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/events"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// fakeTx stands in for a database transaction; mocks never call through it.
type fakeTx struct {
	pgx.Tx
}

// --- Account ---

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, tenantID string) ([]domain.Account, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) CountAccountTransactions(ctx context.Context, tenantID, accountID string) (int64, error) {
	args := m.Called(ctx, tenantID, accountID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) (int64, error) {
	args := m.Called(ctx, account)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, tenantID, accountID string) (int64, error) {
	args := m.Called(ctx, tenantID, accountID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Category ---

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, tenantID string) ([]domain.Category, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) CountCategoryChildren(ctx context.Context, tenantID, categoryID string) (int64, error) {
	args := m.Called(ctx, tenantID, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryRepository) CountCategoryTransactions(ctx context.Context, tenantID, categoryID string) (int64, error) {
	args := m.Called(ctx, tenantID, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, tenantID, categoryID string) (int64, error) {
	args := m.Called(ctx, tenantID, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Person / cost center ---

type MockPersonRepository struct {
	mock.Mock
}

func (m *MockPersonRepository) FindPersonByID(ctx context.Context, personID string) (*domain.Person, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}

func (m *MockPersonRepository) ListPeople(ctx context.Context, tenantID string) ([]domain.Person, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Person), args.Error(1)
}

func (m *MockPersonRepository) SavePerson(ctx context.Context, person domain.Person) error {
	return m.Called(ctx, person).Error(0)
}

func (m *MockPersonRepository) UpdatePerson(ctx context.Context, person domain.Person) (int64, error) {
	args := m.Called(ctx, person)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPersonRepository) DeletePerson(ctx context.Context, tenantID, personID string) (int64, error) {
	args := m.Called(ctx, tenantID, personID)
	return args.Get(0).(int64), args.Error(1)
}

type MockCostCenterRepository struct {
	mock.Mock
}

func (m *MockCostCenterRepository) FindCostCenterByID(ctx context.Context, costCenterID string) (*domain.CostCenter, error) {
	args := m.Called(ctx, costCenterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CostCenter), args.Error(1)
}

func (m *MockCostCenterRepository) ListCostCenters(ctx context.Context, tenantID string) ([]domain.CostCenter, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CostCenter), args.Error(1)
}

func (m *MockCostCenterRepository) SaveCostCenter(ctx context.Context, costCenter domain.CostCenter) error {
	return m.Called(ctx, costCenter).Error(0)
}

func (m *MockCostCenterRepository) UpdateCostCenter(ctx context.Context, costCenter domain.CostCenter) (int64, error) {
	args := m.Called(ctx, costCenter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCostCenterRepository) DeleteCostCenter(ctx context.Context, tenantID, costCenterID string) (int64, error) {
	args := m.Called(ctx, tenantID, costCenterID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Transaction ---

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, tenantID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, tenantID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, tenantID string, filter domain.TransactionFilter) ([]domain.TransactionDetail, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionDetail), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	return m.Called(ctx, txn).Error(0)
}

func (m *MockTransactionRepository) UpdateTransactionStatus(ctx context.Context, tenantID, transactionID string, status domain.TransactionStatus, userID string, now time.Time) (int64, error) {
	args := m.Called(ctx, tenantID, transactionID, status, userID, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, tenantID, transactionID string) (int64, error) {
	args := m.Called(ctx, tenantID, transactionID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	return m.Called(ctx, tx, txn).Error(0)
}

func (m *MockTransactionRepository) LinkTransactionInTx(ctx context.Context, tx pgx.Tx, tenantID, transactionID, linkedID string, now time.Time) error {
	return m.Called(ctx, tx, tenantID, transactionID, linkedID, now).Error(0)
}

func (m *MockTransactionRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockTransactionRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockTransactionRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

// --- Aggregation ---

type MockAggregationRepository struct {
	mock.Mock
}

func (m *MockAggregationRepository) SumConfirmed(ctx context.Context, tenantID string, from, to *time.Time) (domain.IncomeExpense, error) {
	args := m.Called(ctx, tenantID, from, to)
	return args.Get(0).(domain.IncomeExpense), args.Error(1)
}

func (m *MockAggregationRepository) ListConfirmedAmounts(ctx context.Context, tenantID string, from, to time.Time) ([]domain.AmountPoint, error) {
	args := m.Called(ctx, tenantID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AmountPoint), args.Error(1)
}

func (m *MockAggregationRepository) ListAccountBalances(ctx context.Context, tenantID string) ([]domain.AccountBalance, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountBalance), args.Error(1)
}

// --- Identity ---

type MockIdentityRepository struct {
	mock.Mock
}

func (m *MockIdentityRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockIdentityRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockIdentityRepository) ListTenantsByUserID(ctx context.Context, userID string) ([]domain.UserTenant, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserTenant), args.Error(1)
}

func (m *MockIdentityRepository) FindMembership(ctx context.Context, userID, tenantID string) (*domain.TenantMembership, error) {
	args := m.Called(ctx, userID, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TenantMembership), args.Error(1)
}

func (m *MockIdentityRepository) SaveTenantInTx(ctx context.Context, tx pgx.Tx, tenant domain.Tenant) error {
	return m.Called(ctx, tx, tenant).Error(0)
}

func (m *MockIdentityRepository) SaveUserInTx(ctx context.Context, tx pgx.Tx, user domain.User) error {
	return m.Called(ctx, tx, user).Error(0)
}

func (m *MockIdentityRepository) SaveMembershipInTx(ctx context.Context, tx pgx.Tx, membership domain.TenantMembership) error {
	return m.Called(ctx, tx, membership).Error(0)
}

func (m *MockIdentityRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockIdentityRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockIdentityRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

// --- Events ---

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, event events.Event) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockPublisher) Close() error {
	return m.Called().Error(0)
}
