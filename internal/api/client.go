// Package api is the REST client for the Sirivaram backend. It attaches
// the session bearer token when one is stored, applies one uniform
// timeout to every call, and normalizes the three failure shapes the
// backend produces: transport errors, non-2xx statuses, and 2xx bodies
// carrying an explicit success:false.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"sirivaram/sirictl/internal/config"
	"sirivaram/sirictl/internal/domain"
	"sirivaram/sirictl/internal/session"

	"github.com/go-resty/resty/v2"
)

// DefaultTimeout applies to every request, list or mutation alike.
const DefaultTimeout = 15 * time.Second

// TokenSource supplies the bearer token. session.ErrNotLoggedIn means
// the call proceeds unauthenticated; read endpoints are public.
type TokenSource interface {
	Token() (string, error)
}

// Client issues typed requests against one backend instance. Calls are
// stateless and never retried automatically; the caller retries by
// re-invoking.
type Client struct {
	http *resty.Client
}

// New creates a Client for the given base URL. tokens may be nil for a
// purely unauthenticated client.
func New(baseURL string, tokens TokenSource) *Client {
	hc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(DefaultTimeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	hc.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if tokens == nil {
			return nil
		}
		token, err := tokens.Token()
		if err != nil || token == "" {
			// No stored token: proceed unauthenticated.
			return nil
		}
		req.SetHeader("Authorization", "Bearer "+token)
		return nil
	})

	return &Client{http: hc}
}

// Resolve builds the standard client from the persisted config and the
// default keychain-backed session.
func Resolve() (*Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return New(cfg.APIBaseURL(), session.Default()), nil
}

// --- Response envelope ---

// envelope is the mutation response shape. Success is a pointer so only
// an explicit false marks a 2xx response as failed.
type envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// failed reports whether a 2xx body signals an application-level failure.
func (e envelope) failed() bool {
	return e.Success != nil && !*e.Success
}

// --- Request helpers ---

// list performs a GET that is expected to return a plain JSON array and
// decodes it into out (a pointer to a slice). Any non-array body is
// treated as an empty list, not an error.
func (c *Client) list(ctx context.Context, path string, query map[string]string, out any) error {
	req := c.http.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Get(path)
	if err != nil {
		return transportError(err)
	}
	if !resp.IsSuccess() {
		return statusError(resp.StatusCode(), bodyMessage(resp.Body()))
	}

	body := strings.TrimSpace(string(resp.Body()))
	if !strings.HasPrefix(body, "[") {
		return nil
	}
	if err := json.Unmarshal([]byte(body), out); err != nil {
		return fmt.Errorf("api: failed to decode list response: %w", err)
	}
	return nil
}

// getObject performs a GET for a single JSON object (e.g. the footer).
func (c *Client) getObject(ctx context.Context, path string, out any) error {
	resp, err := c.http.R().SetContext(ctx).Get(path)
	if err != nil {
		return transportError(err)
	}
	if !resp.IsSuccess() {
		return statusError(resp.StatusCode(), bodyMessage(resp.Body()))
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err == nil && len(env.Data) > 0 {
		return json.Unmarshal(env.Data, out)
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("api: failed to decode response: %w", err)
	}
	return nil
}

// mutate executes a mutating call and interprets the envelope. The
// returned string is the server-provided message (possibly empty) for
// the success notification. When out is non-nil the envelope's data
// field (or the whole body) is decoded into it.
func (c *Client) mutate(ctx context.Context, method, path string, body, out any) (string, error) {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return "", transportError(err)
	}

	var env envelope
	// A non-JSON or empty body leaves the envelope zero-valued, which
	// counts as success for a 2xx response.
	_ = json.Unmarshal(resp.Body(), &env)

	if !resp.IsSuccess() {
		return "", statusError(resp.StatusCode(), env.Message)
	}
	if env.failed() {
		msg := env.Message
		if msg == "" {
			msg = "the server reported a failure"
		}
		return "", fmt.Errorf("api: %s", msg)
	}

	if out != nil {
		data := env.Data
		if len(data) == 0 {
			data = resp.Body()
		}
		if len(data) > 0 {
			if err := json.Unmarshal(data, out); err != nil {
				return "", fmt.Errorf("api: failed to decode response: %w", err)
			}
		}
	}

	return env.Message, nil
}

// --- Error mapping ---

// transportError classifies connection-level failures. Timeouts and
// cancellations map to domain.ErrTimeout so callers can distinguish
// them from server rejections.
func transportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", domain.ErrTimeout, err)
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return fmt.Errorf("%w: %v", domain.ErrTimeout, err)
	}
	return fmt.Errorf("api: request failed: %w", err)
}

// statusError maps HTTP status codes to domain sentinels, carrying the
// server message when one was present in the body.
func statusError(status int, message string) error {
	if message == "" {
		message = http.StatusText(status)
	}

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", domain.ErrUnauthorized, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", domain.ErrNotFound, message)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", domain.ErrConflict, message)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", domain.ErrRateLimited, message)
	default:
		return fmt.Errorf("api: server returned %d: %s", status, message)
	}
}

// bodyMessage extracts the message field from an error body, if any.
func bodyMessage(body []byte) string {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	return env.Message
}
