package pdfqueue

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/aziyanck/ita-backoffice/internal/config"
)

// QuotationPayload is the document description posted to the job-queue
// service that renders quotation PDFs.
type QuotationPayload struct {
	QuotationNo        string        `json:"quotation_no"`
	Date               string        `json:"date"`
	RecipientName      string        `json:"recipient_name"`
	RecipientAddress   string        `json:"recipient_address"`
	Email              string        `json:"email,omitempty"`
	Items              []PayloadItem `json:"items"`
	InstallationCharge float64       `json:"installation_charge"`
	UntaxedAmount      float64       `json:"untaxed_amount"`
	SGST               float64       `json:"sgst"`
	CGST               float64       `json:"cgst"`
	Total              float64       `json:"total"`
	TotalInWords       string        `json:"total_in_words"`
	Terms              []string      `json:"terms"`
}

// PayloadItem is one quotation line in the rendered document
type PayloadItem struct {
	Name      string  `json:"name"`
	HSN       string  `json:"hsn"`
	Qty       float64 `json:"qty"`
	UnitPrice float64 `json:"unit_price"`
	Amount    float64 `json:"amount"`
}

// JobResult is the job-queue service's response
type JobResult struct {
	Status string `json:"status"`
	URL    string `json:"url"`
}

// Client talks to the external PDF job-queue service
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a job-queue client from config
func NewClient(cfg *config.PDFConfig) *Client {
	return &Client{
		baseURL:    cfg.JobQueueURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// SubmitQuotation posts the payload to the render endpoint and returns
// the job result
func (c *Client) SubmitQuotation(ctx context.Context, payload *QuotationPayload) (*JobResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/genquotation", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pdf job queue unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("pdf job queue returned %d: %s", resp.StatusCode, string(msg))
	}

	var result JobResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("pdf job queue sent an unreadable response: %w", err)
	}
	return &result, nil
}
