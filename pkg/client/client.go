// Package client is the Go consumer of the invoicing API. All responses
// pass through the tolerant wire adapter, so the client keeps working
// against both historical response shapes.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	invoicedomain "github.com/Kavindya2002/mc-computers-invoicing/internal/invoice/domain"
	"github.com/Kavindya2002/mc-computers-invoicing/internal/invoice/wire"
)

// ErrSubmissionInFlight is returned when a create or update is attempted
// while another one is still running; the editor disables submission until
// the previous call settles.
var ErrSubmissionInFlight = errors.New("submission_in_flight")

// APIError carries the server's message for non-2xx responses.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client

	mu         sync.Mutex
	submitting bool
}

func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: baseURL,
		http:    httpClient,
	}
}

func (c *Client) ListInvoices(ctx context.Context) ([]invoicedomain.Invoice, error) {
	var raw []map[string]any
	if err := c.get(ctx, "/api/invoices", &raw); err != nil {
		return nil, err
	}
	invoices := make([]invoicedomain.Invoice, 0, len(raw))
	for _, entry := range raw {
		invoices = append(invoices, wire.DecodeInvoice(entry))
	}
	return invoices, nil
}

func (c *Client) GetInvoice(ctx context.Context, id string) (invoicedomain.Invoice, error) {
	var raw map[string]any
	if err := c.get(ctx, "/api/invoices/"+id, &raw); err != nil {
		return invoicedomain.Invoice{}, err
	}
	return wire.DecodeInvoice(raw), nil
}

// CreateInvoice submits a draft. The draft is left untouched, so a failed
// submission can be retried without losing the user's work.
func (c *Client) CreateInvoice(ctx context.Context, draft *invoicedomain.Draft) (invoicedomain.Invoice, error) {
	return c.submit(ctx, http.MethodPost, "/api/invoices", draft)
}

func (c *Client) UpdateInvoice(ctx context.Context, id string, draft *invoicedomain.Draft) (invoicedomain.Invoice, error) {
	return c.submit(ctx, http.MethodPut, "/api/invoices/"+id, draft)
}

func (c *Client) DeleteInvoice(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/invoices/"+id, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}
	return nil
}

func (c *Client) submit(ctx context.Context, method, path string, draft *invoicedomain.Draft) (invoicedomain.Invoice, error) {
	if err := draft.ValidateForCommit(); err != nil {
		return invoicedomain.Invoice{}, err
	}
	if !c.beginSubmission() {
		return invoicedomain.Invoice{}, ErrSubmissionInFlight
	}
	defer c.endSubmission()

	body, err := json.Marshal(wire.EncodeDraft(draft))
	if err != nil {
		return invoicedomain.Invoice{}, err
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return invoicedomain.Invoice{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return invoicedomain.Invoice{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return invoicedomain.Invoice{}, apiError(resp)
	}

	raw, err := decodeObject(resp.Body)
	if err != nil {
		return invoicedomain.Invoice{}, err
	}
	return wire.DecodeInvoice(raw), nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	return dec.Decode(out)
}

func (c *Client) beginSubmission() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.submitting {
		return false
	}
	c.submitting = true
	return true
}

func (c *Client) endSubmission() {
	c.mu.Lock()
	c.submitting = false
	c.mu.Unlock()
}

func decodeObject(r io.Reader) (map[string]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func apiError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: resp.Status}
	var body struct {
		Message string `json:"Message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		apiErr.Message = body.Message
	}
	return apiErr
}
