package service

import (
	"context"
	"errors"
	"fmt"

	"sellos/internal/model"
	"sellos/internal/repository"
	"sellos/internal/sellado"

	"gorm.io/gorm"
)

// --- DTOs ---

type ActResponse struct {
	Label                 string `json:"label"`
	Code                  string `json:"code"`
	Name                  string `json:"name"`
	Description           string `json:"description"`
	UsesProduct           bool   `json:"uses_product"`
	IVA1                  string `json:"iva1"`
	IVA2                  string `json:"iva2"`
	StampDutyRate         string `json:"stamp_duty_rate"`
	RegistrationRightRate string `json:"registration_right_rate"`
	BonusDefault          string `json:"bonus_default"`
	Offset1Default        int    `json:"offset1_default"`
	Offset2Default        int    `json:"offset2_default"`
}

type CurrencyOption struct {
	Value string `json:"value"`
	Code  int    `json:"code"`
	Type  string `json:"type"`
}

type ClientOption struct {
	Value        string `json:"value"`
	BusinessName string `json:"business_name"`
	CUIT         string `json:"cuit"`
}

type ProductOption struct {
	Value string `json:"value"`
	Code  int    `json:"code"`
}

// FormDataResponse is everything the stamp form needs to populate its selectors
type FormDataResponse struct {
	Acts       []ActResponse    `json:"acts"`
	Currencies []CurrencyOption `json:"currencies"`
	Clients    []ClientOption   `json:"clients"`
	Products   []ProductOption  `json:"products"`
}

// --- Interface ---

type CatalogService interface {
	GetAct(ctx context.Context, code string) (sellado.Act, error)
	GetFormData(ctx context.Context) (FormDataResponse, error)
	ResolveCurrency(ctx context.Context, name string) (model.Currency, error)
	ResolveProductCode(ctx context.Context, name string) (int, error)
	EnsureDefaults(ctx context.Context) error
	ImportActs(ctx context.Context, acts []sellado.Act, operatorID string) (int, error)
}

type catalogService struct {
	catalogRepo repository.CatalogRepository
	clientRepo  repository.ClientRepository
	audit       AuditWriter
}

func NewCatalogService(catalogRepo repository.CatalogRepository, clientRepo repository.ClientRepository, audit AuditWriter) CatalogService {
	return &catalogService{catalogRepo: catalogRepo, clientRepo: clientRepo, audit: audit}
}

var (
	defaultCurrency = model.Currency{Code: 1, Name: sellado.DefaultCurrency, Type: "PE"}
	defaultProduct  = model.Product{Code: 0, Name: sellado.NoProduct}
)

// --- Implementation ---

func (s *catalogService) GetAct(ctx context.Context, code string) (sellado.Act, error) {
	act, err := s.catalogRepo.FindActByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if code == sellado.FallbackAct().Code {
				return sellado.FallbackAct(), nil
			}
			return sellado.Act{}, ErrActNotFound
		}
		return sellado.Act{}, fmt.Errorf("failed to fetch act: %w", err)
	}
	return toSelladoAct(*act), nil
}

func (s *catalogService) GetFormData(ctx context.Context) (FormDataResponse, error) {
	acts, err := s.catalogRepo.ListActs(ctx)
	if err != nil {
		return FormDataResponse{}, fmt.Errorf("failed to fetch acts: %w", err)
	}
	currencies, err := s.catalogRepo.ListCurrencies(ctx)
	if err != nil {
		return FormDataResponse{}, fmt.Errorf("failed to fetch currencies: %w", err)
	}
	products, err := s.catalogRepo.ListProducts(ctx)
	if err != nil {
		return FormDataResponse{}, fmt.Errorf("failed to fetch products: %w", err)
	}
	clients, err := s.clientRepo.ListAll(ctx)
	if err != nil {
		return FormDataResponse{}, fmt.Errorf("failed to fetch clients: %w", err)
	}

	res := FormDataResponse{
		Acts:       make([]ActResponse, 0, len(acts)),
		Currencies: make([]CurrencyOption, 0, len(currencies)),
		Clients:    make([]ClientOption, 0, len(clients)),
		Products:   make([]ProductOption, 0, len(products)),
	}

	for _, a := range acts {
		res.Acts = append(res.Acts, ActResponseOf(toSelladoAct(a)))
	}
	if len(res.Acts) == 0 {
		res.Acts = append(res.Acts, ActResponseOf(sellado.FallbackAct()))
	}

	for _, c := range currencies {
		res.Currencies = append(res.Currencies, CurrencyOption{Value: c.Name, Code: c.Code, Type: c.Type})
	}
	if len(res.Currencies) == 0 {
		res.Currencies = append(res.Currencies, CurrencyOption{Value: defaultCurrency.Name, Code: defaultCurrency.Code, Type: defaultCurrency.Type})
	}

	for _, c := range clients {
		res.Clients = append(res.Clients, ClientOption{Value: c.Label(), BusinessName: c.BusinessName, CUIT: c.CUIT})
	}

	for _, p := range products {
		res.Products = append(res.Products, ProductOption{Value: p.Name, Code: p.Code})
	}
	if len(res.Products) == 0 {
		res.Products = append(res.Products, ProductOption{Value: defaultProduct.Name, Code: defaultProduct.Code})
	}

	return res, nil
}

// ResolveCurrency looks a currency up by display name; unknown names fall
// back to the first configured currency.
func (s *catalogService) ResolveCurrency(ctx context.Context, name string) (model.Currency, error) {
	currencies, err := s.catalogRepo.ListCurrencies(ctx)
	if err != nil {
		return model.Currency{}, fmt.Errorf("failed to fetch currencies: %w", err)
	}
	for _, c := range currencies {
		if c.Name == name {
			return c, nil
		}
	}
	if len(currencies) > 0 {
		return currencies[0], nil
	}
	return defaultCurrency, nil
}

// ResolveProductCode returns 0 for unknown products and for "Ninguno".
func (s *catalogService) ResolveProductCode(ctx context.Context, name string) (int, error) {
	if name == "" || name == sellado.NoProduct {
		return 0, nil
	}
	products, err := s.catalogRepo.ListProducts(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch products: %w", err)
	}
	for _, p := range products {
		if p.Name == name {
			return p.Code, nil
		}
	}
	return 0, nil
}

func (s *catalogService) EnsureDefaults(ctx context.Context) error {
	if _, err := s.catalogRepo.FindActByCode(ctx, sellado.FallbackAct().Code); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check default act: %w", err)
		}
		if err := s.catalogRepo.UpsertActs(ctx, []model.Act{toActModel(sellado.FallbackAct())}); err != nil {
			return fmt.Errorf("failed to seed default act: %w", err)
		}
	}
	if err := s.catalogRepo.UpsertCurrencies(ctx, []model.Currency{defaultCurrency}); err != nil {
		return fmt.Errorf("failed to seed default currency: %w", err)
	}
	if err := s.catalogRepo.UpsertProducts(ctx, []model.Product{defaultProduct}); err != nil {
		return fmt.Errorf("failed to seed default product: %w", err)
	}
	return nil
}

func (s *catalogService) ImportActs(ctx context.Context, acts []sellado.Act, operatorID string) (int, error) {
	rows := make([]model.Act, 0, len(acts))
	for _, a := range acts {
		if a.Code == "" || a.Name == "" {
			return 0, fmt.Errorf("act %q: code and name are required", a.Label())
		}
		rows = append(rows, toActModel(a))
	}
	if err := s.catalogRepo.UpsertActs(ctx, rows); err != nil {
		return 0, fmt.Errorf("failed to import acts: %w", err)
	}

	codes := make([]string, 0, len(rows))
	for _, r := range rows {
		codes = append(codes, r.Code)
	}
	s.audit.Write(ctx, operatorID, model.ActionImportActs, "", fmt.Sprintf("%d acts", len(rows)), codes)

	return len(rows), nil
}

func toSelladoAct(a model.Act) sellado.Act {
	return sellado.Act{
		Code:                  a.Code,
		Name:                  a.Name,
		Description:           a.Description,
		UsesProduct:           a.UsesProduct,
		IVA1:                  a.IVA1,
		IVA2:                  a.IVA2,
		StampDutyRate:         a.StampDutyRate,
		RegistrationRightRate: a.RegistrationRightRate,
		BonusDefault:          a.BonusDefault,
		Offset1Default:        a.Offset1Default,
		Offset2Default:        a.Offset2Default,
	}
}

func toActModel(a sellado.Act) model.Act {
	return model.Act{
		Code:                  a.Code,
		Name:                  a.Name,
		Description:           a.Description,
		UsesProduct:           a.UsesProduct,
		IVA1:                  a.IVA1,
		IVA2:                  a.IVA2,
		StampDutyRate:         a.StampDutyRate,
		RegistrationRightRate: a.RegistrationRightRate,
		BonusDefault:          a.BonusDefault,
		Offset1Default:        a.Offset1Default,
		Offset2Default:        a.Offset2Default,
		IsActive:              true,
	}
}

// ActResponseOf renders an act with fixed two-decimal rates.
func ActResponseOf(a sellado.Act) ActResponse {
	return ActResponse{
		Label:                 a.Label(),
		Code:                  a.Code,
		Name:                  a.Name,
		Description:           a.Description,
		UsesProduct:           a.UsesProduct,
		IVA1:                  a.IVA1.StringFixed(2),
		IVA2:                  a.IVA2.StringFixed(2),
		StampDutyRate:         a.StampDutyRate.StringFixed(2),
		RegistrationRightRate: a.RegistrationRightRate.StringFixed(2),
		BonusDefault:          a.BonusDefault.StringFixed(2),
		Offset1Default:        a.Offset1Default,
		Offset2Default:        a.Offset2Default,
	}
}
