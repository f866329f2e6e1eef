// Package backend is the REST client for the panel backend that owns all
// business data. Every call takes an explicit Session rather than reading an
// ambient token store, and honors context cancellation. Responses carry a
// {code, msg, ...} envelope; a code other than 200 is a failure even on an
// HTTP 200 response. No call is retried; recovery is caller-initiated.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/document-export-service/pkg/record"
)

// Session is the per-request credential. An expired or invalid token is
// surfaced as ErrUnauthorized by the next call; there is no refresh protocol.
type Session struct {
	Token string
}

// Client talks to the panel backend.
type Client struct {
	baseURL string
	httpc   *http.Client
	log     *zap.Logger
}

// New returns a client for the given base URL (no trailing slash).
func New(baseURL string, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 30 * time.Second},
		log:     log,
	}
}

type contractEnvelope struct {
	envelope
	record.ContractView
}

type purchaseOrderEnvelope struct {
	envelope
	record.PurchaseOrderView
}

type dispatchEnvelope struct {
	envelope
	record.DispatchView
}

type envelope struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// FetchContract retrieves a sales contract with its line items and branch.
func (c *Client) FetchContract(ctx context.Context, sess Session, id string) (*record.ContractView, error) {
	var env contractEnvelope
	if err := c.get(ctx, sess, "/api/panel-fetch-contract-by-id/"+id, &env, &env.envelope); err != nil {
		return nil, err
	}
	if env.Branch.LetterHead == "" {
		return nil, ErrLetterheadMissing
	}
	return &env.ContractView, nil
}

// FetchPurchaseOrder retrieves a purchase order with its line items and branch.
func (c *Client) FetchPurchaseOrder(ctx context.Context, sess Session, id string) (*record.PurchaseOrderView, error) {
	var env purchaseOrderEnvelope
	if err := c.get(ctx, sess, "/api/panel-fetch-purchase-product-view-by-id/"+id, &env, &env.envelope); err != nil {
		return nil, err
	}
	if env.Branch.LetterHead == "" {
		return nil, ErrLetterheadMissing
	}
	return &env.PurchaseOrderView, nil
}

// FetchDispatch retrieves a sales dispatch with its line items.
func (c *Client) FetchDispatch(ctx context.Context, sess Session, id string) (*record.DispatchView, error) {
	var env dispatchEnvelope
	if err := c.get(ctx, sess, "/api/panel-fetch-sales-by-id/"+id, &env, &env.envelope); err != nil {
		return nil, err
	}
	return &env.DispatchView, nil
}

// EmailRequest is the send-document-email form. Field names follow the
// backend's multipart contract.
type EmailRequest struct {
	To          string
	Subject     string
	Description string
	Filename    string
	Attachment  []byte
}

// SendDocumentEmail posts a generated document to the backend mail endpoint.
func (c *Client) SendDocumentEmail(ctx context.Context, sess Session, req EmailRequest) error {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	if err := w.WriteField("to_email", req.To); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	if err := w.WriteField("subject_email", req.Subject); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	if err := w.WriteField("description_email", req.Description); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	part, err := w.CreateFormFile("attachment_email", req.Filename)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	if _, err := part.Write(req.Attachment); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/panel-send-document-email", body)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+sess.Token)
	httpReq.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := checkResponse(resp, &env); err != nil {
		return err
	}
	c.log.Info("document email sent", zap.String("to", req.To), zap.String("filename", req.Filename))
	return nil
}

func (c *Client) get(ctx context.Context, sess Session, path string, out any, env *envelope) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("backend: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+sess.Token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("backend: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("backend: read response: %w", err)
	}
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		_ = json.Unmarshal(raw, env)
		apiErr.Code, apiErr.Msg = env.Code, env.Msg
		return apiErr
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("backend: decode response: %w", err)
	}
	if env.Code != 0 && env.Code != 200 {
		return &APIError{Status: resp.StatusCode, Code: env.Code, Msg: env.Msg}
	}
	return nil
}

func checkResponse(resp *http.Response, env *envelope) error {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("backend: read response: %w", err)
	}
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return ErrUnauthorized
	}
	_ = json.Unmarshal(raw, env)
	if resp.StatusCode < 200 || resp.StatusCode > 299 || (env.Code != 0 && env.Code != 200) {
		return &APIError{Status: resp.StatusCode, Code: env.Code, Msg: env.Msg}
	}
	return nil
}
