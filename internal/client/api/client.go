// Package api provides the HTTP client used by the fan-hub client layer.
// All requests go through one response-inspecting transport so that a
// logout marker on any response, not only the logout endpoint's own, is
// observed at the single network-call boundary.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"sync"
	"time"

	"github.com/luanpessuti/case01furia/domain"
	"github.com/luanpessuti/case01furia/pkg/api"
)

// Client is an HTTP client for the fan-hub API. The session cookie lives
// in the jar; callers never see the token value.
type Client struct {
	baseURL    string
	httpClient *http.Client
	transport  *authEventTransport
}

// NewClient creates a new API client
func NewClient(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	transport := &authEventTransport{base: http.DefaultTransport}
	return &Client{
		baseURL:   baseURL,
		transport: transport,
		httpClient: &http.Client{
			Jar:       jar,
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}, nil
}

// OnAuthEvent registers the hook invoked whenever any response carries the
// logout marker. Must be set before issuing requests that can race with it.
func (c *Client) OnAuthEvent(fn func()) {
	c.transport.setHook(fn)
}

// authEventTransport decorates a RoundTripper and fires the hook on every
// response bearing the X-Auth-Event logout header.
type authEventTransport struct {
	base http.RoundTripper
	mu   sync.RWMutex
	hook func()
}

func (t *authEventTransport) setHook(fn func()) {
	t.mu.Lock()
	t.hook = fn
	t.mu.Unlock()
}

func (t *authEventTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.Header.Get(api.HeaderAuthEvent) == api.EventLogout {
		t.mu.RLock()
		hook := t.hook
		t.mu.RUnlock()
		if hook != nil {
			hook()
		}
	}
	return resp, nil
}

// Register creates an account and stores the issued session cookie
func (c *Client) Register(ctx context.Context, name, email, password string) (*domain.PublicUser, error) {
	req := api.RegisterRequest{Name: name, Email: email, Password: password}
	var resp api.AuthResponse
	if err := c.doRequest(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return resp.User, nil
}

// Login authenticates and stores the issued session cookie
func (c *Client) Login(ctx context.Context, email, password string) (*domain.PublicUser, error) {
	req := api.LoginRequest{Email: email, Password: password}
	var resp api.AuthResponse
	if err := c.doRequest(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// Logout clears the server-side cookie. Always succeeds, even without a
// session.
func (c *Client) Logout(ctx context.Context) error {
	return c.doRequest(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

// Me fetches the authoritative current user
func (c *Client) Me(ctx context.Context) (*domain.PublicUser, error) {
	var user domain.PublicUser
	if err := c.doRequest(ctx, http.MethodGet, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Verify submits the verification flow result for a user
func (c *Client) Verify(ctx context.Context, userID string, socialLinks map[string]string) error {
	req := api.VerifyRequest{UserID: userID, SocialLinks: socialLinks}
	return c.doRequest(ctx, http.MethodPost, "/users/verify", req, nil)
}

// StatusError carries a non-2xx response
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Code, e.Message)
}

// Unwrap maps well-known statuses onto domain sentinels so callers can use
// errors.Is.
func (e *StatusError) Unwrap() error {
	switch e.Code {
	case http.StatusUnauthorized:
		return domain.ErrNotAuthenticated
	case http.StatusNotFound:
		return domain.ErrUserNotFound
	case http.StatusConflict:
		return domain.ErrEmailTaken
	default:
		return nil
	}
}

func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp api.ErrorResponse
		_ = json.Unmarshal(data, &errResp)
		return &StatusError{Code: resp.StatusCode, Message: errResp.Error}
	}

	if result != nil {
		if err := json.Unmarshal(data, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
