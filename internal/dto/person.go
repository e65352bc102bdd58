package dto

import "github.com/SscSPs/finance_tracker/internal/core/domain"

// PersonRequest is used both to create and to replace a person.
type PersonRequest struct {
	Name     string  `json:"name" binding:"required"`
	Document *string `json:"document"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone"`
}

type CostCenterRequest struct {
	Name string `json:"name" binding:"required"`
}

type ListPeopleResponse struct {
	People []domain.Person `json:"people"`
}

type ListCostCentersResponse struct {
	CostCenters []domain.CostCenter `json:"costCenters"`
}

// MutationResponse reports how many rows an update or delete touched.
type MutationResponse struct {
	Affected int64 `json:"affected"`
}

func ToMutationResponse(res domain.MutationResult) MutationResponse {
	return MutationResponse{Affected: res.Affected}
}
