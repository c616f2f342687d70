package service

import (
	"context"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/aziyanck/ita-backoffice/internal/domain/entity"
	"github.com/aziyanck/ita-backoffice/internal/domain/repository"
	"github.com/aziyanck/ita-backoffice/internal/infrastructure/pdfqueue"
	"github.com/aziyanck/ita-backoffice/pkg/apperror"
	"github.com/aziyanck/ita-backoffice/pkg/finance"
	"github.com/aziyanck/ita-backoffice/pkg/utils"
	"github.com/aziyanck/ita-backoffice/pkg/words"
	"github.com/google/uuid"
)

// DefaultTerms are the standard terms offered on every quotation form.
// Callers select a subset by index and may add custom terms.
var DefaultTerms = []string{
	"70% of advance payment due before installation.",
	"Delivery within 7 working days from order confirmation.",
	"Warranty as per manufacturer terms.",
	"This quotation is valid for 14 days.",
}

// QuotationService builds quotations, stores them and hands them to
// the PDF job queue for rendering
type QuotationService struct {
	quotationRepo repository.QuotationRepository
	pdfClient     *pdfqueue.Client
	now           func() time.Time
}

// NewQuotationService creates a new quotation service
func NewQuotationService(quotationRepo repository.QuotationRepository, pdfClient *pdfqueue.Client) *QuotationService {
	return &QuotationService{
		quotationRepo: quotationRepo,
		pdfClient:     pdfClient,
		now:           time.Now,
	}
}

// QuotationItemInput is one line on a quotation request
type QuotationItemInput struct {
	Name      string
	HSN       string
	Qty       float64
	UnitPrice float64
}

// GenerateQuotationInput represents a quotation request
type GenerateQuotationInput struct {
	Date               time.Time
	RecipientName      string
	RecipientAddress   string
	Email              string
	Items              []QuotationItemInput
	InstallationCharge float64
	SelectedTerms      []int
	CustomTerms        []string
}

// Generate computes the quotation amounts, persists the quotation and
// submits the document to the PDF job queue. The queue's link is stored
// on the quotation and returned with it.
func (s *QuotationService) Generate(ctx context.Context, input *GenerateQuotationInput) (*entity.Quotation, error) {
	if strings.TrimSpace(input.RecipientName) == "" {
		return nil, apperror.NewBadRequestError("Customer name is required")
	}
	if strings.TrimSpace(input.RecipientAddress) == "" {
		return nil, apperror.NewBadRequestError("Place is required")
	}
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("At least one item is required")
	}
	for _, item := range input.Items {
		if strings.TrimSpace(item.Name) == "" {
			return nil, apperror.NewBadRequestError("Item description is required")
		}
		if item.Qty <= 0 || item.UnitPrice < 0 {
			return nil, apperror.NewBadRequestError("Item quantity and price must be positive")
		}
	}

	var itemsTotal float64
	items := make([]entity.QuotationItem, 0, len(input.Items))
	payloadItems := make([]pdfqueue.PayloadItem, 0, len(input.Items))
	for _, item := range input.Items {
		amount := item.Qty * item.UnitPrice
		itemsTotal += amount
		items = append(items, entity.QuotationItem{
			Name:      item.Name,
			HSN:       item.HSN,
			Qty:       item.Qty,
			UnitPrice: item.UnitPrice,
			Amount:    amount,
		})
		payloadItems = append(payloadItems, pdfqueue.PayloadItem{
			Name:      item.Name,
			HSN:       item.HSN,
			Qty:       item.Qty,
			UnitPrice: item.UnitPrice,
			Amount:    amount,
		})
	}

	untaxed := itemsTotal + input.InstallationCharge
	sgst, cgst := finance.SplitGST(untaxed)
	total := untaxed + sgst + cgst
	totalInWords := words.Rupees(int64(math.Round(total))) + " Rupees only"

	date := input.Date
	if date.IsZero() {
		date = s.now()
	}

	quotation := &entity.Quotation{
		QuotationNo:        utils.GenerateQuotationNo(s.now()),
		Date:               date,
		RecipientName:      input.RecipientName,
		RecipientAddress:   input.RecipientAddress,
		Email:              input.Email,
		InstallationCharge: input.InstallationCharge,
		UntaxedAmount:      untaxed,
		SGST:               sgst,
		CGST:               cgst,
		Total:              total,
		TotalInWords:       totalInWords,
		Items:              items,
	}

	if err := s.quotationRepo.Create(ctx, quotation); err != nil {
		return nil, err
	}

	payload := &pdfqueue.QuotationPayload{
		QuotationNo:        quotation.QuotationNo,
		Date:               date.Format("2006-01-02"),
		RecipientName:      input.RecipientName,
		RecipientAddress:   input.RecipientAddress,
		Email:              input.Email,
		Items:              payloadItems,
		InstallationCharge: input.InstallationCharge,
		UntaxedAmount:      untaxed,
		SGST:               sgst,
		CGST:               cgst,
		Total:              total,
		TotalInWords:       totalInWords,
		Terms:              s.collectTerms(input.SelectedTerms, input.CustomTerms),
	}

	result, err := s.pdfClient.SubmitQuotation(ctx, payload)
	if err != nil {
		return nil, apperror.NewAppError(http.StatusBadGateway, "Quotation stored but PDF generation failed: "+err.Error())
	}

	if result.URL != "" {
		quotation.URL = result.URL
		if err := s.quotationRepo.Update(ctx, quotation); err != nil {
			return nil, err
		}
	}
	return quotation, nil
}

func (s *QuotationService) collectTerms(selected []int, custom []string) []string {
	terms := make([]string, 0, len(selected)+len(custom))
	for _, idx := range selected {
		if idx >= 0 && idx < len(DefaultTerms) {
			terms = append(terms, DefaultTerms[idx])
		}
	}
	for _, t := range custom {
		if strings.TrimSpace(t) != "" {
			terms = append(terms, t)
		}
	}
	return terms
}

// List returns stored quotations, newest first
func (s *QuotationService) List(ctx context.Context) ([]entity.Quotation, error) {
	return s.quotationRepo.List(ctx)
}

// Get returns a stored quotation with its items
func (s *QuotationService) Get(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	quotation, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}
	return quotation, nil
}
