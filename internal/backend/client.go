package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Seiya-Nakagawa/train-delay-alert/internal/form"
)

// ErrNoIdentity is returned when the exchange response carries no user id.
var ErrNoIdentity = errors.New("settings response has no lineUserId")

// SettingsService is the remote user-settings backend. It is implemented by
// *Client and faked in tests.
type SettingsService interface {
	Exchange(ctx context.Context, code string) (form.Settings, error)
	Save(ctx context.Context, payload form.Payload) error
}

// Ensure Client implements SettingsService at compile time.
var _ SettingsService = (*Client)(nil)

// Client talks to the user-settings endpoint.
type Client struct {
	endpoint  *url.URL
	http      *http.Client
	userAgent string
	log       *zap.Logger
}

const (
	defaultUserAgent = "delayalert/0.1"
	defaultTimeout   = 10 * time.Second
	requestIDHeader  = "X-Request-ID"
)

// Options tune a Client. Zero values pick defaults.
type Options struct {
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// NewClient builds a Client for the given endpoint URL.
func NewClient(endpoint string, opts Options) (*Client, error) {
	u, err := parseEndpoint(endpoint)
	if err != nil {
		return nil, err
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		endpoint:  u,
		http:      httpClient,
		userAgent: defaultUserAgent,
		log:       logger,
	}, nil
}

// Exchange trades a one-time login code for the user's identity and saved
// settings.
func (c *Client) Exchange(ctx context.Context, code string) (form.Settings, error) {
	if c == nil {
		return form.Settings{}, fmt.Errorf("client is nil")
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return form.Settings{}, fmt.Errorf("authorization code required")
	}
	var payload SettingsResponse
	if err := c.post(ctx, "exchange", exchangeRequest{AuthorizationCode: code}, &payload); err != nil {
		return form.Settings{}, err
	}
	if strings.TrimSpace(payload.LineUserID) == "" {
		return form.Settings{}, ErrNoIdentity
	}
	return payload.Settings(), nil
}

// Save submits a validated payload. Any non-2xx response is a failure.
func (c *Client) Save(ctx context.Context, payload form.Payload) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	return c.post(ctx, "save", NewSaveRequest(payload), nil)
}

func (c *Client) post(ctx context.Context, op string, body, dest any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint.String(), bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(requestIDHeader, requestID)

	log := c.log.With(zap.String("op", op), zap.String("request_id", requestID))
	started := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn("backend request failed", zap.Error(err))
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	log.Debug("backend responded", zap.Int("status", resp.StatusCode), zap.Duration("elapsed", time.Since(started)))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Warn("backend returned error status", zap.Int("status", resp.StatusCode), zap.ByteString("body", snippet))
		return fmt.Errorf("%s returned status %d", op, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseEndpoint(endpoint string) (*url.URL, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		return nil, fmt.Errorf("backend endpoint is empty")
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse backend endpoint %q: %w", endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("backend endpoint %q must be http or https", endpoint)
	}
	u.Fragment = ""
	return u, nil
}
