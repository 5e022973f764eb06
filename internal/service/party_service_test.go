package service_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"sellos/internal/model"
	"sellos/internal/service"
	"sellos/mocks"
)

func TestPartyService_Resolve(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	svc := service.NewPartyService(repo)

	repo.On("FindByCUIT", mock.Anything, buyerCUIT).Return(&model.Client{
		CUIT:         buyerCUIT,
		BusinessName: "1 DE ABRIL SA",
		Address:      "San Martin 120",
		City:         "Rosario",
	}, nil)
	repo.On("FindByCUIT", mock.Anything, sellerCUIT).Return(nil, gorm.ErrRecordNotFound)

	p, err := svc.Resolve(ctx, buyerCUIT)
	require.NoError(t, err)
	assert.Equal(t, "1 DE ABRIL SA", p.Name)
	assert.Equal(t, "1 DE ABRIL SA | 33711316839", p.Label)
	assert.Equal(t, "Rosario", p.City)

	_, err = svc.Resolve(ctx, sellerCUIT)
	assert.ErrorIs(t, err, service.ErrPartyNotFound)
	assert.Contains(t, err.Error(), sellerCUIT)

	for _, bad := range []string{"", "3371131683", "3371131683X", "33-71131683-9"} {
		_, err = svc.Resolve(ctx, bad)
		assert.ErrorIs(t, err, service.ErrInvalidCUIT, bad)
	}
	repo.AssertNumberOfCalls(t, "FindByCUIT", 2)
}

func TestPartyService_Registry(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	svc := service.NewPartyService(repo)

	repo.On("FindRegistry", mock.Anything, buyerCUIT).
		Return(&model.ClientRegistry{CUIT: buyerCUIT, DistrictCode: "SF", NextStampNo: 41, NextPresentationNo: 3}, nil)
	repo.On("FindRegistry", mock.Anything, sellerCUIT).Return(nil, gorm.ErrRecordNotFound)

	reg, err := svc.Registry(ctx, buyerCUIT)
	require.NoError(t, err)
	assert.Equal(t, int64(41), reg.NextStampNo)
	assert.Equal(t, "SF", reg.DistrictCode)

	_, err = svc.Registry(ctx, sellerCUIT)
	assert.ErrorIs(t, err, service.ErrRegistryNotFound)
}

func TestPartyService_Search(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	svc := service.NewPartyService(repo)

	repo.On("Search", mock.Anything, "agro", 1, 20).
		Return([]model.Client{{CUIT: sellerCUIT, BusinessName: "AGRO NORTE SRL"}}, int64(1), nil)
	repo.On("Search", mock.Anything, "boom", 1, 20).Return(nil, int64(0), errors.New("timeout"))

	res, total, err := svc.Search(ctx, "agro", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, res, 1)
	assert.Equal(t, "AGRO NORTE SRL | 30712345679", res[0].Label)

	_, _, err = svc.Search(ctx, "boom", 1, 20)
	assert.Error(t, err)
}
