package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/core/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPersonService_CreateAndUpdate(t *testing.T) {
	ctx := context.Background()
	repo := new(MockPersonRepository)
	svc := services.NewPersonService(repo)

	email := "ana@example.com"
	repo.On("SavePerson", ctx, mock.MatchedBy(func(p domain.Person) bool {
		return p.TenantID == "t1" && p.Name == "Ana" && p.Email != nil && *p.Email == email && p.Phone == nil
	})).Return(nil).Once()

	person, err := svc.CreatePerson(ctx, "t1", dto.PersonRequest{Name: " Ana ", Email: &email}, "u1")
	require.NoError(t, err)
	assert.NotEmpty(t, person.PersonID)

	repo.On("UpdatePerson", ctx, mock.MatchedBy(func(p domain.Person) bool {
		return p.PersonID == person.PersonID && p.TenantID == "t1" && p.Name == "Ana Maria" && p.LastUpdatedBy == "u2"
	})).Return(int64(1), nil).Once()

	res, err := svc.UpdatePerson(ctx, "t1", person.PersonID, dto.PersonRequest{Name: "Ana Maria"}, "u2")
	require.NoError(t, err)
	assert.True(t, res.Found())
	repo.AssertExpectations(t)
}

func TestPersonService_BlankName(t *testing.T) {
	svc := services.NewPersonService(new(MockPersonRepository))
	_, err := svc.CreatePerson(context.Background(), "t1", dto.PersonRequest{Name: "  "}, "u1")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestPersonService_GetForeignPerson(t *testing.T) {
	ctx := context.Background()
	repo := new(MockPersonRepository)
	repo.On("FindPersonByID", ctx, "p1").Return(&domain.Person{PersonID: "p1", TenantID: "t2"}, nil).Once()

	_, err := services.NewPersonService(repo).GetPersonByID(ctx, "t1", "p1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestPersonService_DeleteUnknownIsZero(t *testing.T) {
	ctx := context.Background()
	repo := new(MockPersonRepository)
	repo.On("DeletePerson", ctx, "t1", "p9").Return(int64(0), nil).Once()

	res, err := services.NewPersonService(repo).DeletePerson(ctx, "t1", "p9")
	require.NoError(t, err)
	assert.False(t, res.Found())
}

func TestCostCenterService(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCostCenterRepository)
	svc := services.NewCostCenterService(repo)

	repo.On("SaveCostCenter", ctx, mock.MatchedBy(func(cc domain.CostCenter) bool {
		return cc.TenantID == "t1" && cc.Name == "Marketing" && cc.CreatedBy == "u1"
	})).Return(nil).Once()
	cc, err := svc.CreateCostCenter(ctx, "t1", dto.CostCenterRequest{Name: "Marketing"}, "u1")
	require.NoError(t, err)

	repo.On("UpdateCostCenter", ctx, mock.MatchedBy(func(u domain.CostCenter) bool {
		return u.CostCenterID == cc.CostCenterID && u.Name == "Growth"
	})).Return(int64(1), nil).Once()
	res, err := svc.UpdateCostCenter(ctx, "t1", cc.CostCenterID, dto.CostCenterRequest{Name: "Growth"}, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Affected)

	repo.On("ListCostCenters", ctx, "t1").Return(nil, nil).Once()
	list, err := svc.ListCostCenters(ctx, "t1")
	require.NoError(t, err)
	assert.NotNil(t, list)

	_, err = svc.CreateCostCenter(ctx, "t1", dto.CostCenterRequest{Name: ""}, "u1")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertExpectations(t)
}
