package mapping

import (
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/models"
)

func ToModelPerson(d domain.Person) models.Person {
	return models.Person{
		PersonID:    d.PersonID,
		TenantID:    d.TenantID,
		Name:        d.Name,
		Document:    StringPtrToModel(d.Document),
		Email:       StringPtrToModel(d.Email),
		Phone:       StringPtrToModel(d.Phone),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainPerson(m models.Person) domain.Person {
	return domain.Person{
		PersonID:    m.PersonID,
		TenantID:    m.TenantID,
		Name:        m.Name,
		Document:    ModelToStringPtr(m.Document),
		Email:       ModelToStringPtr(m.Email),
		Phone:       ModelToStringPtr(m.Phone),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelCostCenter(d domain.CostCenter) models.CostCenter {
	return models.CostCenter{
		CostCenterID: d.CostCenterID,
		TenantID:     d.TenantID,
		Name:         d.Name,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainCostCenter(m models.CostCenter) domain.CostCenter {
	return domain.CostCenter{
		CostCenterID: m.CostCenterID,
		TenantID:     m.TenantID,
		Name:         m.Name,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
