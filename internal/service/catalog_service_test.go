package service_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"sellos/internal/model"
	"sellos/internal/sellado"
	"sellos/internal/service"
	"sellos/mocks"
)

func newCatalogService() (service.CatalogService, *mocks.MockCatalogRepo, *mocks.MockClientRepo, *mocks.MockAuditService) {
	catalogRepo := new(mocks.MockCatalogRepo)
	clientRepo := new(mocks.MockClientRepo)
	audit := new(mocks.MockAuditService)
	return service.NewCatalogService(catalogRepo, clientRepo, audit), catalogRepo, clientRepo, audit
}

func TestCatalogService_GetAct(t *testing.T) {
	svc, repo, _, _ := newCatalogService()

	repo.On("FindActByCode", mock.Anything, "07").Return(&model.Act{
		Code:          "07",
		Name:          "Granos",
		StampDutyRate: decimal.RequireFromString("0.75"),
	}, nil)
	repo.On("FindActByCode", mock.Anything, "01").Return(nil, gorm.ErrRecordNotFound)
	repo.On("FindActByCode", mock.Anything, "99").Return(nil, gorm.ErrRecordNotFound)
	repo.On("FindActByCode", mock.Anything, "50").Return(nil, errors.New("connection refused"))

	act, err := svc.GetAct(ctx, "07")
	require.NoError(t, err)
	assert.Equal(t, "Granos | 07", act.Label())

	act, err = svc.GetAct(ctx, "01")
	require.NoError(t, err)
	assert.Equal(t, sellado.FallbackAct(), act)

	_, err = svc.GetAct(ctx, "99")
	assert.ErrorIs(t, err, service.ErrActNotFound)

	_, err = svc.GetAct(ctx, "50")
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrActNotFound)
}

func TestCatalogService_GetFormData(t *testing.T) {
	t.Run("empty catalogue falls back", func(t *testing.T) {
		svc, repo, clients, _ := newCatalogService()
		repo.On("ListActs", mock.Anything).Return([]model.Act{}, nil)
		repo.On("ListCurrencies", mock.Anything).Return([]model.Currency{}, nil)
		repo.On("ListProducts", mock.Anything).Return([]model.Product{}, nil)
		clients.On("ListAll", mock.Anything).Return([]model.Client{{CUIT: buyerCUIT, BusinessName: "1 DE ABRIL SA"}}, nil)

		data, err := svc.GetFormData(ctx)
		require.NoError(t, err)

		require.Len(t, data.Acts, 1)
		assert.Equal(t, "Agenda | 01", data.Acts[0].Label)
		assert.Equal(t, "1.05", data.Acts[0].StampDutyRate)
		require.Len(t, data.Currencies, 1)
		assert.Equal(t, "Pesos", data.Currencies[0].Value)
		assert.Equal(t, "PE", data.Currencies[0].Type)
		require.Len(t, data.Products, 1)
		assert.Equal(t, sellado.NoProduct, data.Products[0].Value)
		require.Len(t, data.Clients, 1)
		assert.Equal(t, "1 DE ABRIL SA | 33711316839", data.Clients[0].Value)
	})

	t.Run("repository failure", func(t *testing.T) {
		svc, repo, _, _ := newCatalogService()
		repo.On("ListActs", mock.Anything).Return(nil, errors.New("timeout"))

		_, err := svc.GetFormData(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to fetch acts")
	})
}

func TestCatalogService_ResolveCurrency(t *testing.T) {
	svc, repo, _, _ := newCatalogService()
	repo.On("ListCurrencies", mock.Anything).Return([]model.Currency{
		{Code: 1, Name: "Pesos", Type: "PE"},
		{Code: 2, Name: "Dolares", Type: "DO"},
	}, nil)

	c, err := svc.ResolveCurrency(ctx, "Dolares")
	require.NoError(t, err)
	assert.Equal(t, 2, c.Code)

	c, err = svc.ResolveCurrency(ctx, "Yenes")
	require.NoError(t, err)
	assert.Equal(t, "PE", c.Type)
}

func TestCatalogService_ResolveProductCode(t *testing.T) {
	svc, repo, _, _ := newCatalogService()
	repo.On("ListProducts", mock.Anything).Return([]model.Product{{Code: 0, Name: sellado.NoProduct}, {Code: 12, Name: "Soja"}}, nil)

	code, err := svc.ResolveProductCode(ctx, "Soja")
	require.NoError(t, err)
	assert.Equal(t, 12, code)

	code, err = svc.ResolveProductCode(ctx, sellado.NoProduct)
	require.NoError(t, err)
	assert.Zero(t, code)

	code, err = svc.ResolveProductCode(ctx, "Trigo")
	require.NoError(t, err)
	assert.Zero(t, code)

	repo.AssertNumberOfCalls(t, "ListProducts", 2)
}

func TestCatalogService_EnsureDefaults(t *testing.T) {
	t.Run("seeds the fallback act when missing", func(t *testing.T) {
		svc, repo, _, _ := newCatalogService()
		repo.On("FindActByCode", mock.Anything, "01").Return(nil, gorm.ErrRecordNotFound)
		repo.On("UpsertActs", mock.Anything, mock.MatchedBy(func(acts []model.Act) bool {
			return len(acts) == 1 && acts[0].Code == "01" && acts[0].IsActive
		})).Return(nil)
		repo.On("UpsertCurrencies", mock.Anything, mock.Anything).Return(nil)
		repo.On("UpsertProducts", mock.Anything, mock.Anything).Return(nil)

		require.NoError(t, svc.EnsureDefaults(ctx))
		repo.AssertExpectations(t)
	})

	t.Run("keeps an existing act", func(t *testing.T) {
		svc, repo, _, _ := newCatalogService()
		repo.On("FindActByCode", mock.Anything, "01").Return(&model.Act{Code: "01", Name: "Agenda"}, nil)
		repo.On("UpsertCurrencies", mock.Anything, mock.Anything).Return(nil)
		repo.On("UpsertProducts", mock.Anything, mock.Anything).Return(nil)

		require.NoError(t, svc.EnsureDefaults(ctx))
		repo.AssertNotCalled(t, "UpsertActs", mock.Anything, mock.Anything)
	})
}

func TestCatalogService_ImportActs(t *testing.T) {
	svc, repo, _, audit := newCatalogService()
	repo.On("UpsertActs", mock.Anything, mock.Anything).Return(nil)
	audit.On("Write", mock.Anything, "cli", model.ActionImportActs, "", "2 acts", []string{"01", "07"}).Return()

	grain := sellado.FallbackAct()
	grain.Code, grain.Name = "07", "Granos"

	n, err := svc.ImportActs(ctx, []sellado.Act{sellado.FallbackAct(), grain}, "cli")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	audit.AssertExpectations(t)

	_, err = svc.ImportActs(ctx, []sellado.Act{{Code: "09"}}, "cli")
	require.Error(t, err)
	repo.AssertNumberOfCalls(t, "UpsertActs", 1)
}
