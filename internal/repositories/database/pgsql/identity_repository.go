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

// PgxIdentityRepository stores users, tenants and their memberships.
type PgxIdentityRepository struct {
	BaseRepository
}

func newPgxIdentityRepository(db *pgxpool.Pool) portsrepo.IdentityRepositoryWithTx {
	return &PgxIdentityRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxIdentityRepository implements portsrepo.IdentityRepositoryWithTx
var _ portsrepo.IdentityRepositoryWithTx = (*PgxIdentityRepository)(nil)

const userColumns = `user_id, name, email, password_hash, auth_provider, provider_user_id, created_at`

func scanUser(row rowScanner) (*domain.User, error) {
	var m models.User
	var passwordHash, providerUserID sql.NullString
	if err := row.Scan(
		&m.UserID,
		&m.Name,
		&m.Email,
		&passwordHash,
		&m.AuthProvider,
		&providerUserID,
		&m.CreatedAt,
	); err != nil {
		return nil, err
	}
	m.PasswordHash = mapping.FromNullString(passwordHash)
	m.ProviderUserID = mapping.FromNullString(providerUserID)
	u := mapping.ToDomainUser(m)
	return &u, nil
}

func (r *PgxIdentityRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	u, err := scanUser(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %s: %w", userID, err)
	}
	return u, nil
}

// FindUserByEmail matches emails case-insensitively.
func (r *PgxIdentityRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1);`
	u, err := scanUser(r.Pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return u, nil
}

func (r *PgxIdentityRepository) ListTenantsByUserID(ctx context.Context, userID string) ([]domain.UserTenant, error) {
	query := `
		SELECT t.tenant_id, t.name, t.type, t.created_at, m.role
		FROM tenant_memberships m
		JOIN tenants t ON t.tenant_id = m.tenant_id
		WHERE m.user_id = $1
		ORDER BY m.joined_at, t.tenant_id;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants for user %s: %w", userID, err)
	}
	defer rows.Close()

	tenants := []domain.UserTenant{}
	for rows.Next() {
		var m models.Tenant
		var role string
		if err := rows.Scan(&m.TenantID, &m.Name, &m.Type, &m.CreatedAt, &role); err != nil {
			return nil, fmt.Errorf("failed to scan tenant row: %w", err)
		}
		tenants = append(tenants, domain.UserTenant{Tenant: mapping.ToDomainTenant(m), Role: domain.TenantRole(role)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tenant rows: %w", err)
	}
	return tenants, nil
}

func (r *PgxIdentityRepository) FindMembership(ctx context.Context, userID, tenantID string) (*domain.TenantMembership, error) {
	query := `SELECT user_id, tenant_id, role, joined_at FROM tenant_memberships WHERE user_id = $1 AND tenant_id = $2;`
	var m models.TenantMembership
	err := r.Pool.QueryRow(ctx, query, userID, tenantID).Scan(&m.UserID, &m.TenantID, &m.Role, &m.JoinedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find membership of user %s in tenant %s: %w", userID, tenantID, err)
	}
	membership := mapping.ToDomainTenantMembership(m)
	return &membership, nil
}

func (r *PgxIdentityRepository) SaveTenantInTx(ctx context.Context, tx pgx.Tx, tenant domain.Tenant) error {
	m := mapping.ToModelTenant(tenant)
	_, err := tx.Exec(ctx,
		`INSERT INTO tenants (tenant_id, name, type, created_at) VALUES ($1, $2, $3, $4);`,
		m.TenantID, m.Name, m.Type, m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: tenant with ID %s already exists", apperrors.ErrDuplicate, m.TenantID)
		}
		return fmt.Errorf("failed to save tenant %s: %w", m.TenantID, err)
	}
	return nil
}

func (r *PgxIdentityRepository) SaveUserInTx(ctx context.Context, tx pgx.Tx, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `INSERT INTO users (` + userColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7);`
	_, err := tx.Exec(ctx, query,
		m.UserID,
		m.Name,
		m.Email,
		mapping.ToNullString(m.PasswordHash),
		m.AuthProvider,
		mapping.ToNullString(m.ProviderUserID),
		m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: a user with this email already exists", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save user %s: %w", m.UserID, err)
	}
	return nil
}

func (r *PgxIdentityRepository) SaveMembershipInTx(ctx context.Context, tx pgx.Tx, membership domain.TenantMembership) error {
	m := mapping.ToModelTenantMembership(membership)
	_, err := tx.Exec(ctx,
		`INSERT INTO tenant_memberships (user_id, tenant_id, role, joined_at) VALUES ($1, $2, $3, $4);`,
		m.UserID, m.TenantID, m.Role, m.JoinedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: user %s is already a member of tenant %s", apperrors.ErrDuplicate, m.UserID, m.TenantID)
		}
		return fmt.Errorf("failed to save membership: %w", err)
	}
	return nil
}
