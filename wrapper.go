package valuedomain

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/pkg/errors"
)

const apiEndpoint = "https://api.value-domain.com/v1"

// wrapper implements API over plain HTTP with bearer-token authentication.
type wrapper struct {
	token    string
	endpoint string
	http     *http.Client
	logger   *slog.Logger
}

// Option configures the underlying HTTP transport.
type Option func(*wrapper)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(w *wrapper) {
		w.http = client
	}
}

// WithEndpoint sets a custom API base URL (useful for testing).
func WithEndpoint(endpoint string) Option {
	return func(w *wrapper) {
		w.endpoint = endpoint
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(w *wrapper) {
		if logger != nil {
			w.logger = logger
		}
	}
}

func newWrapper(token string, opts ...Option) *wrapper {
	w := &wrapper{
		token:    token,
		endpoint: apiEndpoint,
		http:     new(http.Client),
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

func (w *wrapper) GetDNS(ctx context.Context, domain string) (*DNSResource, error) {
	var out struct {
		Results DNSResource `json:"results"`
	}

	if err := w.do(ctx, http.MethodGet, "/domains/"+domain+"/dns", nil, &out); err != nil {
		return nil, err
	}

	return &out.Results, nil
}

func (w *wrapper) PutDNS(ctx context.Context, domain string, update DNSUpdate) error {
	return w.do(ctx, http.MethodPut, "/domains/"+domain+"/dns", update, nil)
}

func (w *wrapper) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "marshal body")
		}

		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, w.endpoint+path, body)
	if err != nil {
		return errors.Wrap(err, "create request")
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "identity")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+w.token)

	resp, err := w.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "execute request")
	}

	defer discardBody(resp)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var fail struct {
			ErrorMsg string `json:"error_msg"`
		}

		_ = json.NewDecoder(resp.Body).Decode(&fail)
		w.logger.Error("value-domain request failed",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"error_msg", fail.ErrorMsg)

		return RequestError{StatusCode: resp.StatusCode, Message: fail.ErrorMsg}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.Wrap(err, "decode body")
		}
	}

	return nil
}

func discardBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
