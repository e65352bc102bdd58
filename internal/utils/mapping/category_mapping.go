package mapping

import (
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/models"
)

func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID:  d.CategoryID,
		TenantID:    d.TenantID,
		Name:        d.Name,
		Type:        string(d.Type),
		ParentID:    StringPtrToModel(d.ParentID),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID:  m.CategoryID,
		TenantID:    m.TenantID,
		Name:        m.Name,
		Type:        domain.TransactionType(m.Type),
		ParentID:    ModelToStringPtr(m.ParentID),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainCategorySlice(ms []models.Category) []domain.Category {
	ds := make([]domain.Category, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCategory(m)
	}
	return ds
}
