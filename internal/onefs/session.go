package onefs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
)

// sessionPath is the OneFS session authentication endpoint.
const sessionPath = "/session/1/session"

// csrfCookieName is the cookie carrying the CSRF token the platform API
// expects echoed back in the X-CSRF-Token header.
const csrfCookieName = "isicsrf"

// sessionState tracks the client's authenticated session. The session
// cookie itself lives in the HTTP client's cookie jar; only the CSRF token
// and validity flag are kept here.
type sessionState struct {
	mu        sync.RWMutex
	csrfToken string
	valid     bool
}

// ensureSession establishes a platform API session if none is active.
// Concurrent callers are collapsed into a single session request via
// singleflight, so a burst of first calls authenticates once.
func (c *RESTClient) ensureSession(ctx context.Context) error {
	c.session.mu.RLock()
	valid := c.session.valid
	c.session.mu.RUnlock()
	if valid {
		return nil
	}

	_, err, _ := c.sessionGroup.Do("session", func() (any, error) {
		c.session.mu.RLock()
		valid := c.session.valid
		c.session.mu.RUnlock()
		if valid {
			return nil, nil
		}
		return nil, c.createSession(ctx)
	})
	return err
}

// createSession performs the session POST and records the CSRF token.
func (c *RESTClient) createSession(ctx context.Context) error {
	payload, err := json.Marshal(map[string]any{
		"username": c.username,
		"password": c.password,
		"services": []string{"platform", "namespace"},
	})
	if err != nil {
		return fmt.Errorf("encoding session request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+sessionPath, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building session request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("creating session on %s: %w", c.host, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("authenticating to %s: %w", c.host, newAPIError(resp.StatusCode, body))
	}

	var csrfToken string
	for _, cookie := range resp.Cookies() {
		if cookie.Name == csrfCookieName {
			csrfToken = cookie.Value
		}
	}

	c.session.mu.Lock()
	c.session.csrfToken = csrfToken
	c.session.valid = true
	c.session.mu.Unlock()

	c.logger.Debug("platform API session established")
	return nil
}

// invalidateSession drops the current session so the next call
// re-authenticates. Called when the API answers 401 on an established
// session, typically after session expiry.
func (c *RESTClient) invalidateSession() {
	c.session.mu.Lock()
	c.session.valid = false
	c.session.csrfToken = ""
	c.session.mu.Unlock()
}

// applySessionHeaders attaches the CSRF header the platform API requires on
// session-authenticated requests. The session cookie travels via the jar.
func (c *RESTClient) applySessionHeaders(req *http.Request) {
	c.session.mu.RLock()
	token := c.session.csrfToken
	c.session.mu.RUnlock()
	if token != "" {
		req.Header.Set("X-CSRF-Token", token)
		req.Header.Set("Referer", c.baseURL)
	}
}
