package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"mlb-companion/internal/logging"
	"mlb-companion/internal/metrics"
)

// Config controls how the client reaches the companion backend.
type Config struct {
	BaseURL       string
	HTTPClient    *http.Client
	Logger        *slog.Logger
	Recorder      *metrics.Recorder
	RetryAttempts int
	RetryBackoff  time.Duration
}

// Client is the single configured request client for the companion backend.
// Every call carries the caller's bearer token when one is present; a
// missing token is logged but does not block the request, since some
// endpoints are public.
type Client struct {
	baseURL     string
	httpClient  httpDoer
	logger      *slog.Logger
	recorder    *metrics.Recorder
	maxAttempts int
	backoff     time.Duration
	sleep       func(ctx context.Context, d time.Duration) error
}

// NewClient constructs a backend client with the provided configuration.
func NewClient(cfg Config) *Client {
	attempts, backoff := resolveRetry(cfg.RetryAttempts, cfg.RetryBackoff)
	return &Client{
		baseURL:     normalizeBaseURL(cfg.BaseURL),
		httpClient:  resolveHTTPClient(cfg.HTTPClient),
		logger:      cfg.Logger,
		recorder:    cfg.Recorder,
		maxAttempts: attempts,
		backoff:     backoff,
		sleep:       sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// call issues one request and returns the raw response body.
func (c *Client) call(ctx context.Context, endpoint, method, path, token string, payload any) ([]byte, string, error) {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, "", fmt.Errorf("backend %s: encode request: %w", endpoint, err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, "", err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json, image/*")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	} else {
		logging.Warn(logging.FromContext(ctx, c.logger), "backend call without token",
			slog.String(logging.FieldEndpoint, endpoint))
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if c.recorder != nil {
		c.recorder.RecordBackendCall(endpoint, time.Since(start), err)
	}
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if c.recorder != nil {
			c.recorder.RecordUnauthorized(endpoint)
		}
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		return nil, "", &StatusError{Endpoint: endpoint, StatusCode: resp.StatusCode}
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil, resp.Header.Get("Content-Type"), nil
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, "", &StatusError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	return raw, resp.Header.Get("Content-Type"), nil
}

// getJSON fetches a JSON document with retries. Unauthorized and other
// HTTP status errors are not retried; only transport failures are.
func (c *Client) getJSON(ctx context.Context, endpoint, path, token string, dest any) error {
	var lastErr error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		raw, _, err := c.call(ctx, endpoint, http.MethodGet, path, token, nil)
		if err == nil {
			if len(raw) == 0 || dest == nil {
				return nil
			}
			return json.Unmarshal(raw, dest)
		}
		lastErr = err

		if _, isStatus := AsStatusError(err); isStatus || attempt == c.maxAttempts {
			break
		}

		logging.Warn(logging.FromContext(ctx, c.logger), "backend fetch retry",
			slog.String(logging.FieldEndpoint, endpoint),
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", c.maxAttempts),
			slog.Any("error", lastErr))

		if err := c.sleep(ctx, time.Duration(attempt)*c.backoff); err != nil {
			return err
		}
	}

	return lastErr
}

// postJSON issues a mutation and decodes the response when dest is non-nil.
// Mutations are never retried.
func (c *Client) postJSON(ctx context.Context, endpoint, path, token string, payload, dest any) error {
	raw, _, err := c.call(ctx, endpoint, http.MethodPost, path, token, payload)
	if err != nil {
		return err
	}
	if len(raw) == 0 || dest == nil {
		return nil
	}
	return json.Unmarshal(raw, dest)
}
