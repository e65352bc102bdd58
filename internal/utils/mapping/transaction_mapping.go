package mapping

import (
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:       d.TransactionID,
		TenantID:            d.TenantID,
		Description:         d.Description,
		Amount:              d.Amount,
		Date:                domain.NormalizeDate(d.Date),
		CompetenceDate:      domain.NormalizeDate(d.CompetenceDate),
		Type:                string(d.Type),
		Status:              string(d.Status),
		AccountID:           d.AccountID,
		CategoryID:          d.CategoryID,
		CostCenterID:        StringPtrToModel(d.CostCenterID),
		PersonID:            StringPtrToModel(d.PersonID),
		LinkedTransactionID: StringPtrToModel(d.LinkedTransactionID),
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:       m.TransactionID,
		TenantID:            m.TenantID,
		Description:         m.Description,
		Amount:              m.Amount,
		Date:                domain.NormalizeDate(m.Date),
		CompetenceDate:      domain.NormalizeDate(m.CompetenceDate),
		Type:                domain.TransactionType(m.Type),
		Status:              domain.TransactionStatus(m.Status),
		AccountID:           m.AccountID,
		CategoryID:          m.CategoryID,
		CostCenterID:        ModelToStringPtr(m.CostCenterID),
		PersonID:            ModelToStringPtr(m.PersonID),
		LinkedTransactionID: ModelToStringPtr(m.LinkedTransactionID),
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}
