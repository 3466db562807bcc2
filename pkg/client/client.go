package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/naveenspark/folio/pkg/domain"
)

// Defaults mirror the content API's published client settings.
const (
	DefaultTimeout       = 10 * time.Second
	DefaultRetryAttempts = 3
	DefaultRetryDelay    = time.Second
)

// Content API resource paths.
const (
	EndpointSiteConfig = "/api/v1/site-config/"
	EndpointAbout      = "/api/v1/about/"
	EndpointSkills     = "/api/v1/skills/"
	EndpointProjects   = "/api/v1/projects/"
	EndpointExperience = "/api/v1/experience/"
	EndpointEducation  = "/api/v1/education/"
	EndpointContact    = "/api/v1/contact/"
	EndpointHealth     = "/health"
)

const maxBodySize = 8 << 20 // inline base64 images make payloads large

// Client is the portfolio content API client.
type Client struct {
	baseURL       string
	httpClient    *http.Client
	timeout       time.Duration
	retryAttempts int
	retryDelay    time.Duration
	logger        *zap.Logger
	sleep         func(ctx context.Context, d time.Duration) error
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-attempt timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithRetry sets how many times a network failure is retried and the base
// delay; the wait before retry n is n*delay.
func WithRetry(attempts int, delay time.Duration) Option {
	return func(c *Client) {
		if attempts >= 0 {
			c.retryAttempts = attempts
		}
		if delay >= 0 {
			c.retryDelay = delay
		}
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a new API client.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		httpClient:    &http.Client{},
		timeout:       DefaultTimeout,
		retryAttempts: DefaultRetryAttempts,
		retryDelay:    DefaultRetryDelay,
		logger:        zap.NewNop(),
		sleep:         sleepContext,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root the client resolves endpoints against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SiteConfig returns the site branding and SEO metadata.
func (c *Client) SiteConfig(ctx context.Context) (*domain.SiteConfig, error) {
	var cfg domain.SiteConfig
	if err := c.Fetch(ctx, EndpointSiteConfig, &cfg); err != nil {
		return nil, fmt.Errorf("client.SiteConfig: %w", err)
	}
	return &cfg, nil
}

// About returns the owner's profile.
func (c *Client) About(ctx context.Context) (*domain.Profile, error) {
	var p domain.Profile
	if err := c.Fetch(ctx, EndpointAbout, &p); err != nil {
		return nil, fmt.Errorf("client.About: %w", err)
	}
	return &p, nil
}

// Skills returns skill categories.
func (c *Client) Skills(ctx context.Context) (*domain.SkillsResponse, error) {
	var s domain.SkillsResponse
	if err := c.Fetch(ctx, EndpointSkills, &s); err != nil {
		return nil, fmt.Errorf("client.Skills: %w", err)
	}
	return &s, nil
}

// Projects returns every project, active or not.
func (c *Client) Projects(ctx context.Context) ([]domain.Project, error) {
	var projects []domain.Project
	if err := c.Fetch(ctx, EndpointProjects, &projects); err != nil {
		return nil, fmt.Errorf("client.Projects: %w", err)
	}
	return projects, nil
}

// Experience returns every experience entry, active or not.
func (c *Client) Experience(ctx context.Context) ([]domain.Experience, error) {
	var items []domain.Experience
	if err := c.Fetch(ctx, EndpointExperience, &items); err != nil {
		return nil, fmt.Errorf("client.Experience: %w", err)
	}
	return items, nil
}

// Education returns every education entry, active or not.
func (c *Client) Education(ctx context.Context) ([]domain.Education, error) {
	var items []domain.Education
	if err := c.Fetch(ctx, EndpointEducation, &items); err != nil {
		return nil, fmt.Errorf("client.Education: %w", err)
	}
	return items, nil
}

// Contact returns CV and social network data.
func (c *Client) Contact(ctx context.Context) (*domain.Contact, error) {
	var contact domain.Contact
	if err := c.Fetch(ctx, EndpointContact, &contact); err != nil {
		return nil, fmt.Errorf("client.Contact: %w", err)
	}
	return &contact, nil
}

// Health checks backend liveness.
func (c *Client) Health(ctx context.Context) (*domain.Health, error) {
	var h domain.Health
	if err := c.Fetch(ctx, EndpointHealth, &h); err != nil {
		return nil, fmt.Errorf("client.Health: %w", err)
	}
	return &h, nil
}

// SendContactMessage submits the contact form. It is attempted once.
func (c *Client) SendContactMessage(ctx context.Context, msg domain.ContactMessage) (*domain.ContactResult, error) {
	var result domain.ContactResult
	requestID := uuid.NewString()
	if err := c.doRequest(ctx, http.MethodPost, EndpointContact, requestID, 1, msg, &result); err != nil {
		c.logger.Error("contact submit failed",
			zap.String("endpoint", EndpointContact),
			zap.String("request_id", requestID),
			zap.Error(err))
		return nil, fmt.Errorf("client.SendContactMessage: %w", err)
	}
	return &result, nil
}

// Fetch GETs endpoint and decodes the JSON body into out. Network failures
// are retried with linearly increasing delay; HTTP error statuses, parse
// failures and timeouts are returned right away. Every attempt gets its own
// timeout window.
func (c *Client) Fetch(ctx context.Context, endpoint string, out any) error {
	requestID := uuid.NewString()
	log := c.logger.With(zap.String("endpoint", endpoint), zap.String("request_id", requestID))

	for attempt := 1; ; attempt++ {
		err := c.doRequest(ctx, http.MethodGet, endpoint, requestID, attempt, nil, out)
		if err == nil {
			log.Debug("api success", zap.Int("attempt", attempt))
			return nil
		}

		var netErr *NetworkError
		retryable := errors.As(err, &netErr) && !netErr.Timeout && ctx.Err() == nil
		if !retryable || attempt > c.retryAttempts {
			log.Error("api failure", zap.Int("attempt", attempt), zap.Error(err))
			return err
		}

		delay := time.Duration(attempt) * c.retryDelay
		log.Warn("retrying api call",
			zap.Int("attempt", attempt),
			zap.Int("max_retries", c.retryAttempts),
			zap.Duration("delay", delay))
		if serr := c.sleep(ctx, delay); serr != nil {
			return &NetworkError{Endpoint: endpoint, Attempts: attempt, Err: serr}
		}
	}
}

func (c *Client) doRequest(ctx context.Context, method, endpoint, requestID string, attempt int, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.networkError(ctx, endpoint, attempt, err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return c.networkError(ctx, endpoint, attempt, err)
		}
		respBody = nil
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			StatusCode: resp.StatusCode,
			StatusText: http.StatusText(resp.StatusCode),
			Message:    errorMessage(respBody),
		}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return &ParseError{Endpoint: endpoint, Err: err}
		}
	}
	return nil
}

func (c *Client) networkError(ctx context.Context, endpoint string, attempt int, err error) *NetworkError {
	timeout := false
	if ctx.Err() == nil {
		var ne net.Error
		timeout = errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout())
	}
	return &NetworkError{Endpoint: endpoint, Timeout: timeout, Attempts: attempt, Err: err}
}

// errorMessage pulls a human message out of an error body. FastAPI answers
// with {"detail": ...}; other backends use {"error": ...} or {"message": ...}.
func errorMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var payload struct {
		Detail  any    `json:"detail"`
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil {
		switch {
		case payload.Error != "":
			return payload.Error
		case payload.Message != "":
			return payload.Message
		}
		if s, ok := payload.Detail.(string); ok && s != "" {
			return s
		}
	}
	msg := strings.TrimSpace(string(body))
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return msg
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
