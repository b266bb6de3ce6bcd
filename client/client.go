// Package client is a thin Go wrapper over the toolkit loan API: one
// method per endpoint, fire-and-await, no retries. The bearer
// credential is an explicit object injected into the client and read
// fresh on every request; it is set on login and cleared on logout or
// the first 401.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/Arss011/network-toolkit-management-api/models"
)

// Credential holds the session token.
type Credential struct {
	mu    sync.RWMutex
	token string
}

func (c *Credential) Set(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Credential) Clear() { c.Set("") }

func (c *Credential) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// APIError is a non-2xx response decoded to its message field.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

type Client struct {
	BaseURL string
	HTTP    *http.Client
	Cred    *Credential
}

func New(baseURL string, cred *Credential) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{},
		Cred:    cred,
	}
}

// do sends one request and decodes the response into out (when out is
// non-nil). A non-2xx status becomes an APIError; a 401 additionally
// clears the credential so the caller is forced back through login.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if tok := c.Cred.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusUnauthorized {
			c.Cred.Clear()
		}
		var e struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		if e.Message == "" {
			e.Message = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: e.Message}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// --- auth ---

type loginResponse struct {
	Data struct {
		User  models.User `json:"user"`
		Token string      `json:"token"`
	} `json:"data"`
}

// Login authenticates and stores the returned token in the credential.
func (c *Client) Login(ctx context.Context, username, password string) (*models.User, error) {
	var res loginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", nil,
		map[string]string{"username": username, "password": password}, &res)
	if err != nil {
		return nil, err
	}
	c.Cred.Set(res.Data.Token)
	return &res.Data.User, nil
}

// Me fetches the authenticated user, the session check on page load.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var res struct {
		Data models.User `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, nil, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// Logout revokes the session server-side and clears the credential
// either way.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil, nil)
	c.Cred.Clear()
	return err
}
