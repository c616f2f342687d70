package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aziyanck/ita-backoffice/internal/config"
	"github.com/aziyanck/ita-backoffice/internal/infrastructure/pdfqueue"
	"github.com/aziyanck/ita-backoffice/internal/infrastructure/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuotationService(t *testing.T, handler http.HandlerFunc) (*QuotationService, *pdfqueue.QuotationPayload) {
	db := setupTestDB(t)

	var captured pdfqueue.QuotationPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/genquotation" {
			_ = json.NewDecoder(r.Body).Decode(&captured)
		}
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	client := pdfqueue.NewClient(&config.PDFConfig{
		JobQueueURL: server.URL,
		Timeout:     5 * time.Second,
	})
	svc := NewQuotationService(repository.NewQuotationRepository(db), client)
	svc.now = func() time.Time {
		return time.Date(2025, 8, 15, 14, 30, 0, 0, time.UTC)
	}
	return svc, &captured
}

func pdfOK(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status": "done",
		"url":    "https://files.example.com/q.pdf",
	})
}

func TestGenerateQuotationAmounts(t *testing.T) {
	svc, captured := newQuotationService(t, pdfOK)

	quotation, err := svc.Generate(context.Background(), &GenerateQuotationInput{
		RecipientName:    "Ravi",
		RecipientAddress: "Thrissur",
		Items: []QuotationItemInput{
			{Name: "Dome Camera", HSN: "8525", Qty: 2, UnitPrice: 1500},
			{Name: "Installation Kit", HSN: "8544", Qty: 1, UnitPrice: 500},
		},
		InstallationCharge: 500,
		SelectedTerms:      []int{0, 3},
		CustomTerms:        []string{"Site survey included."},
	})
	require.NoError(t, err)

	// 2*1500 + 500 + installation 500 = 4000 untaxed
	assert.InDelta(t, 4000.0, quotation.UntaxedAmount, 1e-9)
	assert.InDelta(t, 360.0, quotation.SGST, 1e-9)
	assert.InDelta(t, 360.0, quotation.CGST, 1e-9)
	assert.InDelta(t, 4720.0, quotation.Total, 1e-9)
	assert.Equal(t, "Four Thousand Seven Hundred and Twenty Rupees only", quotation.TotalInWords)
	assert.Equal(t, "ITA150820251430", quotation.QuotationNo)
	assert.Equal(t, "https://files.example.com/q.pdf", quotation.URL)

	// The render payload carries the selected and custom terms in order
	require.Len(t, captured.Terms, 3)
	assert.Equal(t, DefaultTerms[0], captured.Terms[0])
	assert.Equal(t, DefaultTerms[3], captured.Terms[1])
	assert.Equal(t, "Site survey included.", captured.Terms[2])
	assert.Equal(t, quotation.QuotationNo, captured.QuotationNo)
}

func TestGenerateQuotationStoresBeforeRenderFailure(t *testing.T) {
	svc, _ := newQuotationService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "queue full", http.StatusServiceUnavailable)
	})

	_, err := svc.Generate(context.Background(), &GenerateQuotationInput{
		RecipientName:    "Ravi",
		RecipientAddress: "Thrissur",
		Items:            []QuotationItemInput{{Name: "Dome Camera", Qty: 1, UnitPrice: 1000}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PDF generation failed")

	// The quotation survives the render failure
	stored, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "", stored[0].URL)
}

func TestGenerateQuotationValidation(t *testing.T) {
	svc, _ := newQuotationService(t, pdfOK)
	ctx := context.Background()

	_, err := svc.Generate(ctx, &GenerateQuotationInput{
		RecipientAddress: "Thrissur",
		Items:            []QuotationItemInput{{Name: "Camera", Qty: 1, UnitPrice: 100}},
	})
	assert.Error(t, err)

	_, err = svc.Generate(ctx, &GenerateQuotationInput{
		RecipientName:    "Ravi",
		RecipientAddress: "Thrissur",
	})
	assert.Error(t, err)

	_, err = svc.Generate(ctx, &GenerateQuotationInput{
		RecipientName:    "Ravi",
		RecipientAddress: "Thrissur",
		Items:            []QuotationItemInput{{Name: "Camera", Qty: 0, UnitPrice: 100}},
	})
	assert.Error(t, err)
}

func TestGetQuotationWithItems(t *testing.T) {
	svc, _ := newQuotationService(t, pdfOK)
	ctx := context.Background()

	created, err := svc.Generate(ctx, &GenerateQuotationInput{
		RecipientName:    "Ravi",
		RecipientAddress: "Thrissur",
		Items:            []QuotationItemInput{{Name: "Dome Camera", Qty: 2, UnitPrice: 1500}},
	})
	require.NoError(t, err)

	fetched, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Items, 1)
	assert.InDelta(t, 3000.0, fetched.Items[0].Amount, 1e-9)
}
