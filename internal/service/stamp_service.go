package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"sellos/internal/export"
	"sellos/internal/logger"
	"sellos/internal/metrics"
	"sellos/internal/model"
	"sellos/internal/repository"
	"sellos/internal/sellado"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const EventStampRecordCreated = "stamp_record.created"

// --- DTOs ---

type NewFormRequest struct {
	ActCode string `json:"act_code"`
}

// EditFormRequest carries the whole working set plus the one edit to apply.
// The server keeps no form state between calls.
type EditFormRequest struct {
	Form sellado.Form `json:"form"`
	Edit sellado.Edit `json:"edit"`
}

type FormResponse struct {
	Form       sellado.Form       `json:"form"`
	Totals     sellado.TotalsView `json:"totals"`
	Validation sellado.Report     `json:"validation"`
	Valid      bool               `json:"valid"`
	Limits     sellado.Windows    `json:"limits"`
	Today      sellado.Date       `json:"today"`
}

type ListStampRecordsRequest struct {
	BuyerCUIT  string `form:"buyer_cuit"`
	SellerCUIT string `form:"seller_cuit"`
	ActCode    string `form:"act_code"`
	From       string `form:"from"` // YYYY-MM-DD, control date
	To         string `form:"to"`
}

type StampRecordResponse struct {
	ID                string `json:"id"`
	RegistrationNo    int64  `json:"registration_no"`
	DistrictCode      string `json:"district_code"`
	ActCode           string `json:"act_code"`
	ActName           string `json:"act_name"`
	ContractNo        int    `json:"contract_no"`
	BuyerCUIT         string `json:"buyer_cuit"`
	BuyerName         string `json:"buyer_name"`
	SellerCUIT        string `json:"seller_cuit"`
	SellerName        string `json:"seller_name"`
	ControlDate       string `json:"control_date"`
	IngressDate       string `json:"ingress_date"`
	RegistrationDate  string `json:"registration_date"`
	Offset1           int    `json:"offset1"`
	Offset2           int    `json:"offset2"`
	Product           string `json:"product"`
	TaxableBase       string `json:"taxable_base"`
	RegistrationValue string `json:"registration_value"`
	StampDuty         string `json:"stamp_duty"`
	RegistrationRight string `json:"registration_right"`
	Bonus             string `json:"bonus"`
	Total             string `json:"total"`
	RatesSummary      string `json:"rates_summary"`
	Currency          string `json:"currency"`
	Status            string `json:"status"`
	Observations      string `json:"observations"`
	CreatedBy         string `json:"created_by"`
	CreatedAt         string `json:"created_at"`
}

// EventPublisher fans record events out to live subscribers.
type EventPublisher interface {
	Publish(event string, payload interface{})
}

type StampServiceConfig struct {
	// Location decides which calendar day is "today".
	Location *time.Location
	Now      func() time.Time
}

// --- Interface ---

type StampService interface {
	NewForm(ctx context.Context, req NewFormRequest) (FormResponse, error)
	Edit(ctx context.Context, req EditFormRequest) (FormResponse, error)
	Preview(ctx context.Context, form sellado.Form) (FormResponse, error)
	Create(ctx context.Context, form sellado.Form, operatorID string) (StampRecordResponse, error)
	Get(ctx context.Context, id string) (StampRecordResponse, error)
	List(ctx context.Context, req ListStampRecordsRequest, page, limit int) ([]StampRecordResponse, int64, error)
	Export(ctx context.Context, req ListStampRecordsRequest, w io.Writer, operatorID string) (int, error)
}

type stampService struct {
	txManager  repository.TransactionManager
	recordRepo repository.StampRecordRepository
	clientRepo repository.ClientRepository
	catalog    CatalogService
	party      PartyService
	audit      AuditWriter
	events     EventPublisher
	metrics    *metrics.Metrics
	cfg        StampServiceConfig
}

func NewStampService(
	txManager repository.TransactionManager,
	recordRepo repository.StampRecordRepository,
	clientRepo repository.ClientRepository,
	catalog CatalogService,
	party PartyService,
	audit AuditWriter,
	events EventPublisher,
	m *metrics.Metrics,
	cfg StampServiceConfig,
) StampService {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &stampService{
		txManager:  txManager,
		recordRepo: recordRepo,
		clientRepo: clientRepo,
		catalog:    catalog,
		party:      party,
		audit:      audit,
		events:     events,
		metrics:    m,
		cfg:        cfg,
	}
}

// --- Implementation ---

func (s *stampService) today() sellado.Date {
	return sellado.DateOf(s.cfg.Now().In(s.cfg.Location))
}

func (s *stampService) respond(today sellado.Date, f sellado.Form) FormResponse {
	report := sellado.ValidateAt(today, f)
	return FormResponse{
		Form:       f,
		Totals:     f.Totals.Strings(),
		Validation: report,
		Valid:      report.Valid(),
		Limits:     sellado.Limits(today, f.Schedule.Offset2),
		Today:      today,
	}
}

func (s *stampService) NewForm(ctx context.Context, req NewFormRequest) (FormResponse, error) {
	code := req.ActCode
	if code == "" {
		code = sellado.FallbackAct().Code
	}
	act, err := s.catalog.GetAct(ctx, code)
	if err != nil {
		return FormResponse{}, err
	}

	today := s.today()
	return s.respond(today, sellado.NewForm(today, act)), nil
}

func (s *stampService) Edit(ctx context.Context, req EditFormRequest) (FormResponse, error) {
	form := req.Form
	form.Recalculate()

	var act sellado.Act
	if req.Edit.NeedsAct() {
		code := form.ActCode
		if req.Edit.Op == sellado.OpSelectAct {
			code = req.Edit.Value
		}
		var err error
		if act, err = s.catalog.GetAct(ctx, code); err != nil {
			return FormResponse{}, err
		}
	}

	today := s.today()
	if err := form.Apply(today, req.Edit, act); err != nil {
		return FormResponse{}, fmt.Errorf("%w: %v", ErrInvalidEdit, err)
	}
	s.metrics.FormEdited(string(req.Edit.Op))

	return s.respond(today, form), nil
}

func (s *stampService) Preview(ctx context.Context, form sellado.Form) (FormResponse, error) {
	act, err := s.catalog.GetAct(ctx, form.ActCode)
	if err != nil {
		return FormResponse{}, err
	}
	form.ApplyRates(act)
	return s.respond(s.today(), form), nil
}

func (s *stampService) Create(ctx context.Context, form sellado.Form, operatorID string) (StampRecordResponse, error) {
	act, err := s.catalog.GetAct(ctx, form.ActCode)
	if err != nil {
		return StampRecordResponse{}, err
	}
	form.ApplyRates(act)

	report := sellado.ValidateAt(s.today(), form)
	if !report.Valid() {
		failed := report.Failed()
		for _, c := range failed {
			s.metrics.ValidationFailed(string(c.Condition))
		}
		return StampRecordResponse{}, &FormValidationError{Failed: failed}
	}

	buyer, err := s.party.Resolve(ctx, form.BuyerCUIT())
	if err != nil {
		return StampRecordResponse{}, err
	}
	seller, err := s.party.Resolve(ctx, form.SellerCUIT())
	if err != nil {
		return StampRecordResponse{}, err
	}
	currency, err := s.catalog.ResolveCurrency(ctx, form.Currency)
	if err != nil {
		return StampRecordResponse{}, err
	}
	productCode, err := s.catalog.ResolveProductCode(ctx, form.Product)
	if err != nil {
		return StampRecordResponse{}, err
	}

	record := buildRecord(form, act, buyer, seller, currency, productCode, operatorID)

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		registry, err := s.clientRepo.LockRegistry(txCtx, buyer.CUIT)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", ErrRegistryNotFound, buyer.CUIT)
			}
			return fmt.Errorf("failed to lock registry: %w", err)
		}

		record.RegistrationNo = registry.NextStampNo
		record.DistrictCode = registry.DistrictCode
		registry.NextStampNo++

		if err := s.clientRepo.SaveRegistry(txCtx, registry); err != nil {
			return fmt.Errorf("failed to advance registration number: %w", err)
		}
		if err := s.recordRepo.Create(txCtx, record); err != nil {
			return fmt.Errorf("failed to create stamp record: %w", err)
		}
		return nil
	})
	if err != nil {
		return StampRecordResponse{}, err
	}

	s.audit.Write(ctx, operatorID, model.ActionCreateStampRecord, record.ID.String(), act.Label(), map[string]interface{}{
		"registration_no": record.RegistrationNo,
		"district_code":   record.DistrictCode,
		"buyer_cuit":      record.BuyerCUIT,
		"seller_cuit":     record.SellerCUIT,
		"total":           record.Total.StringFixed(2),
	})
	s.metrics.RecordCreated(act.Code)

	res := toStampRecordResponse(*record)
	s.events.Publish(EventStampRecordCreated, res)

	log := logger.WithComponent("stamp")
	log.Info().
		Int64("registration_no", record.RegistrationNo).
		Str("act", act.Code).
		Str("operator", operatorID).
		Msg("stamp record created")

	return res, nil
}

func (s *stampService) Get(ctx context.Context, id string) (StampRecordResponse, error) {
	recordID, err := uuid.Parse(id)
	if err != nil {
		return StampRecordResponse{}, ErrInvalidID
	}

	record, err := s.recordRepo.FindByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return StampRecordResponse{}, ErrRecordNotFound
		}
		return StampRecordResponse{}, fmt.Errorf("failed to fetch stamp record: %w", err)
	}
	return toStampRecordResponse(*record), nil
}

func (s *stampService) List(ctx context.Context, req ListStampRecordsRequest, page, limit int) ([]StampRecordResponse, int64, error) {
	filter, err := req.filter()
	if err != nil {
		return nil, 0, err
	}

	records, total, err := s.recordRepo.List(ctx, filter, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list stamp records: %w", err)
	}

	res := make([]StampRecordResponse, 0, len(records))
	for _, r := range records {
		res = append(res, toStampRecordResponse(r))
	}
	return res, total, nil
}

// Export writes every matching record as an XLSX workbook and returns how
// many rows were written. Nothing reaches w when an error is returned.
func (s *stampService) Export(ctx context.Context, req ListStampRecordsRequest, w io.Writer, operatorID string) (int, error) {
	filter, err := req.filter()
	if err != nil {
		return 0, err
	}

	records, err := s.recordRepo.ListAll(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to list stamp records: %w", err)
	}

	var buf bytes.Buffer
	if err := export.WriteStampRecords(&buf, records); err != nil {
		return 0, fmt.Errorf("failed to build workbook: %w", err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return 0, fmt.Errorf("failed to write workbook: %w", err)
	}

	s.audit.Write(ctx, operatorID, model.ActionExportRecords, "", fmt.Sprintf("%d records", len(records)), req)
	return len(records), nil
}

func (r ListStampRecordsRequest) filter() (repository.StampRecordFilter, error) {
	f := repository.StampRecordFilter{
		BuyerCUIT:  r.BuyerCUIT,
		SellerCUIT: r.SellerCUIT,
		ActCode:    r.ActCode,
	}
	for _, c := range []string{r.BuyerCUIT, r.SellerCUIT} {
		if c != "" && !validCUIT(c) {
			return f, ErrInvalidCUIT
		}
	}

	if r.From != "" {
		d, err := sellado.ParseDate(r.From)
		if err != nil {
			return f, fmt.Errorf("%w: %v", ErrInvalidFilter, err)
		}
		f.From = &d.Time
	}
	if r.To != "" {
		d, err := sellado.ParseDate(r.To)
		if err != nil {
			return f, fmt.Errorf("%w: %v", ErrInvalidFilter, err)
		}
		f.To = &d.Time
	}
	if f.From != nil && f.To != nil && f.From.After(*f.To) {
		return f, fmt.Errorf("%w: from is after to", ErrInvalidFilter)
	}
	return f, nil
}

func buildRecord(f sellado.Form, act sellado.Act, buyer, seller PartyResponse, currency model.Currency, productCode int, operatorID string) *model.StampRecord {
	t := f.Totals
	a := f.Amounts
	ten := decimal.NewFromInt(10)

	return &model.StampRecord{
		ID:         uuid.New(),
		ActCode:    act.Code,
		ActName:    truncate(act.Name, 100),
		Subtype:    model.StampSubtypeNone,
		ContractNo: sellado.ParseInt(f.ContractNumber),

		BuyerCUIT:     buyer.CUIT,
		BuyerName:     truncate(buyer.Name, 50),
		BuyerAddress:  truncate(buyer.Address, 50),
		SellerCUIT:    seller.CUIT,
		SellerName:    truncate(seller.Name, 50),
		SellerAddress: truncate(seller.Address, 50),

		ControlDate:      f.Schedule.ControlDate.Time,
		IngressDate:      f.Schedule.IngressDate.Time,
		RegistrationDate: f.Schedule.RegistrationDate.Time,
		Offset1:          f.Schedule.Offset1,
		Offset2:          f.Schedule.Offset2,

		Product:     truncate(f.Product, 50),
		ProductCode: productCode,
		NetWeight:   sellado.ParseAmount(f.NetWeight),
		UnitPrice:   sellado.ParseAmount(f.UnitPrice),

		Operativo1:      sellado.ParseAmount(a.Operativo1),
		Operativo2:      sellado.ParseAmount(a.Operativo2),
		FixedSum1:       sellado.ParseAmount(a.SumaFija1),
		FixedSum2:       sellado.ParseAmount(a.SumaFija2),
		IVA1:            sellado.ParseAmount(a.IVA1),
		IVA2:            sellado.ParseAmount(a.IVA2),
		ExcludeFixedSum: a.ExcludeFixedSum,

		IVA1Amount:        t.IVA1Calc,
		IVA2Amount:        t.IVA2Calc,
		TaxableBase:       t.BaseImponible,
		RegistrationValue: t.ValorReg,
		StampDuty:         t.ImporteSellado,
		RegistrationRight: t.DerechoReg,
		Bonus:             t.Bonificacion,
		Total:             t.TotalSellado,
		Aliquot1:          t.IVA1Calc.Div(ten),
		Aliquot2:          t.IVA2Calc.Div(ten),
		RatesSummary:      act.RatesSummary(),

		CurrencyIndex:  currency.Code,
		CurrencyType:   currency.Type,
		PresentationNo: 0,
		Status:         model.StampStatusActive,
		Observations:   f.Observations,
		CreatedBy:      operatorID,
	}
}

func toStampRecordResponse(r model.StampRecord) StampRecordResponse {
	return StampRecordResponse{
		ID:                r.ID.String(),
		RegistrationNo:    r.RegistrationNo,
		DistrictCode:      r.DistrictCode,
		ActCode:           r.ActCode,
		ActName:           r.ActName,
		ContractNo:        r.ContractNo,
		BuyerCUIT:         r.BuyerCUIT,
		BuyerName:         r.BuyerName,
		SellerCUIT:        r.SellerCUIT,
		SellerName:        r.SellerName,
		ControlDate:       r.ControlDate.Format(sellado.DateLayout),
		IngressDate:       r.IngressDate.Format(sellado.DateLayout),
		RegistrationDate:  r.RegistrationDate.Format(sellado.DateLayout),
		Offset1:           r.Offset1,
		Offset2:           r.Offset2,
		Product:           r.Product,
		TaxableBase:       r.TaxableBase.StringFixed(2),
		RegistrationValue: r.RegistrationValue.StringFixed(2),
		StampDuty:         r.StampDuty.StringFixed(2),
		RegistrationRight: r.RegistrationRight.StringFixed(2),
		Bonus:             r.Bonus.StringFixed(2),
		Total:             r.Total.StringFixed(2),
		RatesSummary:      r.RatesSummary,
		Currency:          r.CurrencyType,
		Status:            r.Status,
		Observations:      r.Observations,
		CreatedBy:         r.CreatedBy,
		CreatedAt:         r.CreatedAt.Format(time.RFC3339),
	}
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
