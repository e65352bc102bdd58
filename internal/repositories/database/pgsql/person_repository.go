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

type PgxPersonRepository struct {
	BaseRepository
}

func newPgxPersonRepository(pool *pgxpool.Pool) portsrepo.PersonRepositoryFacade {
	return &PgxPersonRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PersonRepositoryFacade = (*PgxPersonRepository)(nil)

const personColumns = `person_id, tenant_id, name, document, email, phone, created_at, created_by, last_updated_at, last_updated_by`

func scanPerson(row rowScanner) (*domain.Person, error) {
	var m models.Person
	var document, email, phone sql.NullString
	if err := row.Scan(
		&m.PersonID,
		&m.TenantID,
		&m.Name,
		&document,
		&email,
		&phone,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	); err != nil {
		return nil, err
	}
	m.Document = mapping.FromNullString(document)
	m.Email = mapping.FromNullString(email)
	m.Phone = mapping.FromNullString(phone)
	p := mapping.ToDomainPerson(m)
	return &p, nil
}

func (r *PgxPersonRepository) SavePerson(ctx context.Context, person domain.Person) error {
	m := mapping.ToModelPerson(person)
	query := `
		INSERT INTO people (` + personColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PersonID,
		m.TenantID,
		m.Name,
		mapping.ToNullString(m.Document),
		mapping.ToNullString(m.Email),
		mapping.ToNullString(m.Phone),
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: person with ID %s already exists", apperrors.ErrDuplicate, m.PersonID)
		}
		return fmt.Errorf("failed to save person %s: %w", m.PersonID, err)
	}
	return nil
}

func (r *PgxPersonRepository) FindPersonByID(ctx context.Context, personID string) (*domain.Person, error) {
	query := `SELECT ` + personColumns + ` FROM people WHERE person_id = $1;`
	p, err := scanPerson(r.Pool.QueryRow(ctx, query, personID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find person by ID %s: %w", personID, err)
	}
	return p, nil
}

func (r *PgxPersonRepository) ListPeople(ctx context.Context, tenantID string) ([]domain.Person, error) {
	query := `SELECT ` + personColumns + ` FROM people WHERE tenant_id = $1 ORDER BY lower(name), name, person_id;`
	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query people for tenant %s: %w", tenantID, err)
	}
	defer rows.Close()

	people := []domain.Person{}
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan person row: %w", err)
		}
		people = append(people, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating person rows: %w", err)
	}
	return people, nil
}

func (r *PgxPersonRepository) UpdatePerson(ctx context.Context, person domain.Person) (int64, error) {
	m := mapping.ToModelPerson(person)
	query := `
		UPDATE people
		SET name = $3, document = $4, email = $5, phone = $6, last_updated_at = $7, last_updated_by = $8
		WHERE tenant_id = $1 AND person_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.TenantID,
		m.PersonID,
		m.Name,
		mapping.ToNullString(m.Document),
		mapping.ToNullString(m.Email),
		mapping.ToNullString(m.Phone),
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update person %s: %w", m.PersonID, err)
	}
	return tag.RowsAffected(), nil
}

// DeletePerson removes the person. The foreign key clears person_id on its transactions.
func (r *PgxPersonRepository) DeletePerson(ctx context.Context, tenantID, personID string) (int64, error) {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM people WHERE tenant_id = $1 AND person_id = $2;`, tenantID, personID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete person %s: %w", personID, err)
	}
	return tag.RowsAffected(), nil
}
