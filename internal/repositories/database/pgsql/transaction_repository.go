package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/finance_tracker/internal/models"
	"github.com/SscSPs/finance_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryWithTx
var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, tenant_id, description, amount, date, competence_date, type, status,
	account_id, category_id, cost_center_id, person_id, linked_transaction_id,
	created_at, created_by, last_updated_at, last_updated_by`

// transactionFields returns scan targets for transactionColumns. Nullable columns
// land in the returned NullStrings and must be copied back with applyNullable.
func transactionFields(m *models.Transaction, costCenterID, personID, linkedID *sql.NullString) []any {
	return []any{
		&m.TransactionID,
		&m.TenantID,
		&m.Description,
		&m.Amount,
		&m.Date,
		&m.CompetenceDate,
		&m.Type,
		&m.Status,
		&m.AccountID,
		&m.CategoryID,
		costCenterID,
		personID,
		linkedID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	}
}

func insertTransaction(ctx context.Context, db execer, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := db.Exec(ctx, query,
		m.TransactionID,
		m.TenantID,
		m.Description,
		m.Amount,
		m.Date,
		m.CompetenceDate,
		m.Type,
		m.Status,
		m.AccountID,
		m.CategoryID,
		mapping.ToNullString(m.CostCenterID),
		mapping.ToNullString(m.PersonID),
		mapping.ToNullString(m.LinkedTransactionID),
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return insertTransactionError(m.TransactionID, err)
	}
	return nil
}

func insertTransactionError(transactionID string, err error) error {
	switch {
	case isUniqueViolation(err):
		return fmt.Errorf("%w: transaction with ID %s already exists", apperrors.ErrDuplicate, transactionID)
	case isForeignKeyViolation(err):
		// a referenced row was removed between the service check and the insert
		return fmt.Errorf("%w: transaction %s references a missing entity", apperrors.ErrNotFound, transactionID)
	case isCheckViolation(err):
		return fmt.Errorf("%w: transaction %s violates %s", apperrors.ErrValidation, transactionID, pgConstraintName(err))
	}
	return fmt.Errorf("failed to save transaction %s: %w", transactionID, err)
}

// SaveTransaction inserts a single transaction outside any caller transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	return insertTransaction(ctx, r.Pool, txn)
}

// SaveTransactionInTx inserts a transaction within the given database transaction.
func (r *PgxTransactionRepository) SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	return insertTransaction(ctx, tx, txn)
}

// LinkTransactionInTx points transactionID at linkedID.
func (r *PgxTransactionRepository) LinkTransactionInTx(ctx context.Context, tx pgx.Tx, tenantID, transactionID, linkedID string, now time.Time) error {
	query := `
		UPDATE transactions
		SET linked_transaction_id = $3, last_updated_at = $4
		WHERE tenant_id = $1 AND transaction_id = $2;
	`
	tag, err := tx.Exec(ctx, query, tenantID, transactionID, linkedID, now)
	if err != nil {
		return fmt.Errorf("failed to link transaction %s to %s: %w", transactionID, linkedID, err)
	}
	if tag.RowsAffected() != 1 {
		return fmt.Errorf("link transaction %s: %w", transactionID, apperrors.ErrNotFound)
	}
	return nil
}

// FindTransactionByID retrieves a single transaction of the tenant.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, tenantID, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE tenant_id = $1 AND transaction_id = $2;`

	var m models.Transaction
	var costCenterID, personID, linkedID sql.NullString
	err := r.Pool.QueryRow(ctx, query, tenantID, transactionID).Scan(transactionFields(&m, &costCenterID, &personID, &linkedID)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	m.CostCenterID = mapping.FromNullString(costCenterID)
	m.PersonID = mapping.FromNullString(personID)
	m.LinkedTransactionID = mapping.FromNullString(linkedID)
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// ListTransactions retrieves the tenant's transactions with their joined references.
// A positive filter.Limit caps the number of rows; After resumes below a cursor.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, tenantID string, filter domain.TransactionFilter) ([]domain.TransactionDetail, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT t.transaction_id, t.tenant_id, t.description, t.amount, t.date, t.competence_date, t.type, t.status,
		       t.account_id, t.category_id, t.cost_center_id, t.person_id, t.linked_transaction_id,
		       t.created_at, t.created_by, t.last_updated_at, t.last_updated_by,
		       a.name, a.bank_name, a.account_type,
		       c.name, c.type,
		       p.name, cc.name
		FROM transactions t
		JOIN accounts a ON a.account_id = t.account_id AND a.tenant_id = t.tenant_id
		JOIN categories c ON c.category_id = t.category_id AND c.tenant_id = t.tenant_id
		LEFT JOIN people p ON p.person_id = t.person_id AND p.tenant_id = t.tenant_id
		LEFT JOIN cost_centers cc ON cc.cost_center_id = t.cost_center_id AND cc.tenant_id = t.tenant_id
		WHERE t.tenant_id = $1`)
	args := []any{tenantID}
	next := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.StartDate != nil {
		sb.WriteString(" AND t.date >= " + next(domain.NormalizeDate(*filter.StartDate)))
	}
	if filter.EndDate != nil {
		sb.WriteString(" AND t.date <= " + next(domain.NormalizeDate(*filter.EndDate)))
	}
	if filter.Type != nil {
		sb.WriteString(" AND t.type = " + next(string(*filter.Type)))
	}
	if filter.Status != nil {
		sb.WriteString(" AND t.status = " + next(string(*filter.Status)))
	}
	if filter.After != nil {
		// Tuple comparison keeps the cursor consistent with the ORDER BY below.
		d := next(domain.NormalizeDate(filter.After.Date))
		c := next(filter.After.CreatedAt)
		id := next(filter.After.TransactionID)
		sb.WriteString(" AND (t.date, t.created_at, t.transaction_id) < (" + d + ", " + c + ", " + id + ")")
	}
	sb.WriteString(" ORDER BY t.date DESC, t.created_at DESC, t.transaction_id DESC")
	if filter.Limit > 0 {
		sb.WriteString(" LIMIT " + next(filter.Limit))
	}

	rows, err := r.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions for tenant "+tenantID, err)
	}
	defer rows.Close()

	details := []domain.TransactionDetail{}
	for rows.Next() {
		var m models.Transaction
		var costCenterID, personID, linkedID sql.NullString
		var accountName, accountType, categoryName, categoryType string
		var bankName, personName, costCenterName sql.NullString

		dest := transactionFields(&m, &costCenterID, &personID, &linkedID)
		dest = append(dest, &accountName, &bankName, &accountType, &categoryName, &categoryType, &personName, &costCenterName)
		if err := rows.Scan(dest...); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		m.CostCenterID = mapping.FromNullString(costCenterID)
		m.PersonID = mapping.FromNullString(personID)
		m.LinkedTransactionID = mapping.FromNullString(linkedID)

		detail := domain.TransactionDetail{
			Transaction: mapping.ToDomainTransaction(m),
			Account: domain.AccountRef{
				AccountID:   m.AccountID,
				Name:        accountName,
				BankName:    mapping.ModelToStringPtr(mapping.FromNullString(bankName)),
				AccountType: domain.AccountType(accountType),
			},
			Category: domain.CategoryRef{
				CategoryID: m.CategoryID,
				Name:       categoryName,
				Type:       domain.TransactionType(categoryType),
			},
		}
		if personName.Valid {
			detail.Person = &domain.PersonRef{PersonID: m.PersonID, Name: personName.String}
		}
		if costCenterName.Valid {
			detail.CostCenter = &domain.CostCenterRef{CostCenterID: m.CostCenterID, Name: costCenterName.String}
		}
		details = append(details, detail)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transaction rows", err)
	}
	return details, nil
}

// UpdateTransactionStatus sets the status of a tenant's transaction.
func (r *PgxTransactionRepository) UpdateTransactionStatus(ctx context.Context, tenantID, transactionID string, status domain.TransactionStatus, userID string, now time.Time) (int64, error) {
	query := `
		UPDATE transactions
		SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE tenant_id = $1 AND transaction_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, tenantID, transactionID, string(status), now, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to update status of transaction %s: %w", transactionID, err)
	}
	return tag.RowsAffected(), nil
}

// DeleteTransaction deletes the transaction together with any leg linked to it,
// so a transfer never survives with a single side.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, tenantID, transactionID string) (int64, error) {
	query := `
		DELETE FROM transactions
		WHERE tenant_id = $1 AND (transaction_id = $2 OR linked_transaction_id = $2);
	`
	tag, err := r.Pool.Exec(ctx, query, tenantID, transactionID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	return tag.RowsAffected(), nil
}
