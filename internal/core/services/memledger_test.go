package services_test

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// memLedger is an in-memory store with the same tenant scoping and
// transaction semantics as the pgx repositories.
type memLedger struct {
	mu         sync.Mutex
	accounts   map[string]domain.Account
	categories map[string]domain.Category
	txns       map[string]domain.Transaction
	failLink   bool
}

var (
	_ portsrepo.AccountReader               = (*memLedger)(nil)
	_ portsrepo.CategoryReader              = (*memLedger)(nil)
	_ portsrepo.TransactionRepositoryWithTx = (*memLedger)(nil)
	_ portsrepo.AggregationReader           = (*memLedger)(nil)
)

type memTx struct {
	pgx.Tx
	pending []domain.Transaction
}

func newMemLedger() *memLedger {
	return &memLedger{
		accounts:   map[string]domain.Account{},
		categories: map[string]domain.Category{},
		txns:       map[string]domain.Transaction{},
	}
}

func (l *memLedger) addAccount(tenantID, id, name string) {
	l.accounts[id] = domain.Account{AccountID: id, TenantID: tenantID, Name: name, AccountType: domain.Checking}
}

func (l *memLedger) addCategory(tenantID, id string, typ domain.TransactionType) {
	l.categories[id] = domain.Category{CategoryID: id, TenantID: tenantID, Name: id, Type: typ}
}

func (l *memLedger) FindAccountByID(_ context.Context, accountID string) (*domain.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	acc, ok := l.accounts[accountID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &acc, nil
}

func (l *memLedger) ListAccounts(_ context.Context, tenantID string) ([]domain.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []domain.Account
	for _, a := range l.accounts {
		if a.TenantID == tenantID {
			out = append(out, a)
		}
	}
	slices.SortFunc(out, func(a, b domain.Account) int { return cmp.Compare(a.Name, b.Name) })
	return out, nil
}

func (l *memLedger) CountAccountTransactions(_ context.Context, tenantID, accountID string) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var n int64
	for _, t := range l.txns {
		if t.TenantID == tenantID && t.AccountID == accountID {
			n++
		}
	}
	return n, nil
}

func (l *memLedger) FindCategoryByID(_ context.Context, categoryID string) (*domain.Category, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	c, ok := l.categories[categoryID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &c, nil
}

func (l *memLedger) ListCategories(_ context.Context, tenantID string) ([]domain.Category, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []domain.Category
	for _, c := range l.categories {
		if c.TenantID == tenantID {
			out = append(out, c)
		}
	}
	domain.SortCategories(out)
	return out, nil
}

func (l *memLedger) CountCategoryChildren(_ context.Context, tenantID, categoryID string) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var n int64
	for _, c := range l.categories {
		if c.TenantID == tenantID && c.ParentID != nil && *c.ParentID == categoryID {
			n++
		}
	}
	return n, nil
}

func (l *memLedger) CountCategoryTransactions(_ context.Context, tenantID, categoryID string) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var n int64
	for _, t := range l.txns {
		if t.TenantID == tenantID && t.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (l *memLedger) FindTransactionByID(_ context.Context, tenantID, transactionID string) (*domain.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	t, ok := l.txns[transactionID]
	if !ok || t.TenantID != tenantID {
		return nil, apperrors.ErrNotFound
	}
	return &t, nil
}

func before(a domain.Transaction, c domain.TransactionCursor) bool {
	if !a.Date.Equal(c.Date) {
		return a.Date.Before(c.Date)
	}
	if !a.CreatedAt.Equal(c.CreatedAt) {
		return a.CreatedAt.Before(c.CreatedAt)
	}
	return a.TransactionID < c.TransactionID
}

func (l *memLedger) ListTransactions(_ context.Context, tenantID string, f domain.TransactionFilter) ([]domain.TransactionDetail, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []domain.TransactionDetail
	for _, t := range l.txns {
		switch {
		case t.TenantID != tenantID,
			f.StartDate != nil && t.Date.Before(*f.StartDate),
			f.EndDate != nil && t.Date.After(*f.EndDate),
			f.Type != nil && t.Type != *f.Type,
			f.Status != nil && t.Status != *f.Status,
			f.After != nil && !before(t, *f.After):
			continue
		}
		acc := l.accounts[t.AccountID]
		cat := l.categories[t.CategoryID]
		out = append(out, domain.TransactionDetail{
			Transaction: t,
			Account:     domain.AccountRef{AccountID: acc.AccountID, Name: acc.Name, AccountType: acc.AccountType},
			Category:    domain.CategoryRef{CategoryID: cat.CategoryID, Name: cat.Name, Type: cat.Type},
		})
	}
	slices.SortFunc(out, func(a, b domain.TransactionDetail) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.TransactionID, a.TransactionID)
	})
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (l *memLedger) SaveTransaction(_ context.Context, txn domain.Transaction) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.txns[txn.TransactionID] = txn
	return nil
}

func (l *memLedger) UpdateTransactionStatus(_ context.Context, tenantID, transactionID string, status domain.TransactionStatus, userID string, now time.Time) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	t, ok := l.txns[transactionID]
	if !ok || t.TenantID != tenantID {
		return 0, nil
	}
	t.Status = status
	t.LastUpdatedBy = userID
	t.LastUpdatedAt = now
	l.txns[transactionID] = t
	return 1, nil
}

func (l *memLedger) DeleteTransaction(_ context.Context, tenantID, transactionID string) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var n int64
	for id, t := range l.txns {
		if t.TenantID != tenantID {
			continue
		}
		if id == transactionID || (t.LinkedTransactionID != nil && *t.LinkedTransactionID == transactionID) {
			delete(l.txns, id)
			n++
		}
	}
	return n, nil
}

func (l *memLedger) SaveTransactionInTx(_ context.Context, tx pgx.Tx, txn domain.Transaction) error {
	mt := tx.(*memTx)
	mt.pending = append(mt.pending, txn)
	return nil
}

func (l *memLedger) LinkTransactionInTx(_ context.Context, tx pgx.Tx, tenantID, transactionID, linkedID string, now time.Time) error {
	if l.failLink {
		return errors.New("link failed")
	}
	mt := tx.(*memTx)
	for i := range mt.pending {
		if mt.pending[i].TransactionID == transactionID && mt.pending[i].TenantID == tenantID {
			id := linkedID
			mt.pending[i].LinkedTransactionID = &id
			mt.pending[i].LastUpdatedAt = now
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (l *memLedger) Begin(context.Context) (pgx.Tx, error) {
	return &memTx{}, nil
}

func (l *memLedger) Commit(_ context.Context, tx pgx.Tx) error {
	mt := tx.(*memTx)
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, t := range mt.pending {
		l.txns[t.TransactionID] = t
	}
	mt.pending = nil
	return nil
}

func (l *memLedger) Rollback(_ context.Context, tx pgx.Tx) error {
	tx.(*memTx).pending = nil
	return nil
}

func (l *memLedger) SumConfirmed(_ context.Context, tenantID string, from, to *time.Time) (domain.IncomeExpense, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	res := domain.IncomeExpense{Income: decimal.Zero, Expense: decimal.Zero}
	for _, t := range l.txns {
		if t.TenantID != tenantID || t.Status != domain.StatusConfirmed {
			continue
		}
		if (from != nil && t.Date.Before(*from)) || (to != nil && t.Date.After(*to)) {
			continue
		}
		if t.Type == domain.Income {
			res.Income = res.Income.Add(t.Amount)
		} else {
			res.Expense = res.Expense.Add(t.Amount)
		}
	}
	return res, nil
}

func (l *memLedger) ListConfirmedAmounts(_ context.Context, tenantID string, from, to time.Time) ([]domain.AmountPoint, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []domain.AmountPoint
	for _, t := range l.txns {
		if t.TenantID == tenantID && t.Status == domain.StatusConfirmed && !t.Date.Before(from) && !t.Date.After(to) {
			out = append(out, domain.AmountPoint{Date: t.Date, Type: t.Type, Amount: t.Amount})
		}
	}
	return out, nil
}

func (l *memLedger) ListAccountBalances(_ context.Context, tenantID string) ([]domain.AccountBalance, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []domain.AccountBalance
	for _, a := range l.accounts {
		if a.TenantID != tenantID {
			continue
		}
		bal := decimal.Zero
		for _, t := range l.txns {
			if t.TenantID == tenantID && t.AccountID == a.AccountID && t.Status == domain.StatusConfirmed {
				bal = bal.Add(t.SignedAmount())
			}
		}
		out = append(out, domain.AccountBalance{AccountID: a.AccountID, Name: a.Name, AccountType: a.AccountType, Balance: bal})
	}
	slices.SortFunc(out, func(a, b domain.AccountBalance) int { return cmp.Compare(a.Name, b.Name) })
	return out, nil
}
