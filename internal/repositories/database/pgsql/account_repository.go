package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/finance_tracker/internal/models"
	"github.com/SscSPs/finance_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `account_id, tenant_id, name, bank_name, account_type, created_at, created_by, last_updated_at, last_updated_by`

func scanAccount(row rowScanner) (*domain.Account, error) {
	var m models.Account
	var bankName sql.NullString
	if err := row.Scan(
		&m.AccountID,
		&m.TenantID,
		&m.Name,
		&bankName,
		&m.AccountType,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	); err != nil {
		return nil, err
	}
	m.BankName = mapping.FromNullString(bankName)
	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.TenantID,
		m.Name,
		mapping.ToNullString(m.BankName),
		m.AccountType,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: account with ID %s already exists", apperrors.ErrDuplicate, m.AccountID)
		}
		return fmt.Errorf("failed to save account %s: %w", m.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`
	acc, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}
	return acc, nil
}

// ListAccounts retrieves all accounts of a tenant.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, tenantID string) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE tenant_id = $1 ORDER BY lower(name), name, account_id;`
	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts for tenant %s: %w", tenantID, err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, *acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

func (r *PgxAccountRepository) CountAccountTransactions(ctx context.Context, tenantID, accountID string) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM transactions WHERE tenant_id = $1 AND account_id = $2;`
	if err := r.Pool.QueryRow(ctx, query, tenantID, accountID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count transactions for account %s: %w", accountID, err)
	}
	return count, nil
}

// UpdateAccount updates the mutable fields of an account.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) (int64, error) {
	m := mapping.ToModelAccount(account)
	query := `
		UPDATE accounts
		SET name = $3, bank_name = $4, account_type = $5, last_updated_at = $6, last_updated_by = $7
		WHERE tenant_id = $1 AND account_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.TenantID,
		m.AccountID,
		m.Name,
		mapping.ToNullString(m.BankName),
		m.AccountType,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update account %s: %w", m.AccountID, err)
	}
	return tag.RowsAffected(), nil
}

// DeleteAccount removes an account. Referenced accounts are rejected by the foreign key.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, tenantID, accountID string) (int64, error) {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM accounts WHERE tenant_id = $1 AND account_id = $2;`, tenantID, accountID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, fmt.Errorf("%w: account %s is referenced by transactions", apperrors.ErrConflict, accountID)
		}
		return 0, fmt.Errorf("failed to delete account %s: %w", accountID, err)
	}
	return tag.RowsAffected(), nil
}
