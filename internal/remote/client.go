// Package remote provides the HTTP client for the resume persistence
// service. The sync controller only sees success or failure; transport
// timeouts and retries live here and in the service.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/types"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// Service is the persistence contract the sync controller depends on.
type Service interface {
	// CreateResume creates a new remote record from an initial section
	// and returns its identity alongside the canonical section data.
	CreateResume(ctx context.Context, payload types.SectionPayload) (*CreateResult, error)
	// GetResume fetches one full document, every section included.
	GetResume(ctx context.Context, id uuid.UUID) (*types.Document, error)
	// UpdateSection persists one section and returns its canonical form.
	UpdateSection(ctx context.Context, id uuid.UUID, payload types.SectionPayload) (*types.SectionPayload, error)
	// DeleteResume removes a document permanently.
	DeleteResume(ctx context.Context, id uuid.UUID) error
	// ListResumes lists the caller's documents for the dashboard.
	ListResumes(ctx context.Context) ([]ResumeSummary, error)
}

// CreateResult is the response of a document-creating save.
type CreateResult struct {
	ID        uuid.UUID            `json:"id"`
	CreatedAt time.Time            `json:"created_at"`
	Canonical types.SectionPayload `json:"canonical"`
}

// ResumeSummary is one row of the dashboard list.
type ResumeSummary struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// Options configures the client.
type Options struct {
	BaseURL string
	Token   string // bearer token from the auth collaborator
	Timeout time.Duration
}

// Client talks to the resume service over HTTP.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a persistence client.
func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: opts.BaseURL,
		token:   opts.Token,
		http:    &http.Client{Timeout: timeout},
	}
}

// CreateResume implements Service.
func (c *Client) CreateResume(ctx context.Context, payload types.SectionPayload) (*CreateResult, error) {
	var out CreateResult
	if err := c.do(ctx, http.MethodPost, "/resumes", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetResume implements Service.
func (c *Client) GetResume(ctx context.Context, id uuid.UUID) (*types.Document, error) {
	var out types.Document
	if err := c.do(ctx, http.MethodGet, "/resumes/"+id.String(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSection implements Service.
func (c *Client) UpdateSection(ctx context.Context, id uuid.UUID, payload types.SectionPayload) (*types.SectionPayload, error) {
	var out types.SectionPayload
	path := fmt.Sprintf("/resumes/%s/%s", id, payload.Section)
	if err := c.do(ctx, http.MethodPut, path, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteResume implements Service.
func (c *Client) DeleteResume(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/resumes/"+id.String(), nil, nil)
}

// ListResumes implements Service.
func (c *Client) ListResumes(ctx context.Context) ([]ResumeSummary, error) {
	var out struct {
		Resumes []ResumeSummary `json:"resumes"`
	}
	if err := c.do(ctx, http.MethodGet, "/resumes", nil, &out); err != nil {
		return nil, err
	}
	return out.Resumes, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &RequestError{Method: method, Path: path, Message: "encode request", Cause: err}
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &RequestError{Method: method, Path: path, Message: "build request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &RequestError{Method: method, Path: path, Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return &NotFoundError{Path: path}
	}
	if resp.StatusCode >= 400 {
		return c.decodeError(method, path, resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &RequestError{Method: method, Path: path, Message: "decode response", Cause: err}
	}
	return nil
}

// decodeError maps a non-2xx body onto the client error taxonomy. The
// service reports validation failures as a structured field list.
func (c *Client) decodeError(method, path string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity {
		var body struct {
			Error  string `json:"error"`
			Fields []struct {
				Index   int    `json:"index"`
				Field   string `json:"field"`
				Message string `json:"message"`
			} `json:"fields"`
		}
		if err := json.Unmarshal(raw, &body); err == nil && len(body.Fields) > 0 {
			verr := &ValidationError{Message: body.Error}
			for _, f := range body.Fields {
				verr.Fields = append(verr.Fields, RemoteFieldError{Index: f.Index, Field: f.Field, Message: f.Message})
			}
			return verr
		}
	}

	return &RequestError{
		Method:  method,
		Path:    path,
		Message: fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, string(raw)),
	}
}
