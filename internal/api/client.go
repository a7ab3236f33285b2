package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://db-book.vercel.app"

// Client talks to the remote bookstore catalog and auth service. The
// session is carried in a cookie the client stores but never inspects.
type Client struct {
	baseURL    string
	http       *http.Client
	jar        http.CookieJar
	cookiePath string
}

// New creates a Client for the given base URL. If baseURL is empty the
// public catalog host is used. cookiePath, when non-empty, names a file
// the session cookie is loaded from and saved to across invocations.
// A zero timeout leaves requests unbounded, matching the browser client.
func New(baseURL, cookiePath string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	jar, _ := cookiejar.New(nil)
	c := &Client{
		baseURL:    baseURL,
		jar:        jar,
		cookiePath: cookiePath,
		http: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
	}
	c.loadCookies()
	return c
}

// BaseURL reports the resolved service host.
func (c *Client) BaseURL() string { return c.baseURL }

// doJSON sends a request and decodes the JSON response envelope into out.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		bodyReader = bytes.NewReader(b)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, bodyReader)
	if err != nil {
		return err
	}
	if req.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &RequestError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus(resp); err != nil {
		return err
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &DecodeError{Err: err}
		}
	}
	return nil
}

// checkStatus returns a typed error for non-2xx responses. The service
// replies with a {message} envelope on errors when it can.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	msg := ""
	if body, err := io.ReadAll(resp.Body); err == nil {
		var envelope struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &envelope) == nil && envelope.Message != "" {
			msg = envelope.Message
		} else {
			msg = strings.TrimSpace(string(body))
		}
	}

	reqErr := &RequestError{Status: resp.StatusCode, Message: msg}
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		reqErr.Err = ErrUnauthorized
	case http.StatusNotFound:
		reqErr.Err = ErrNotFound
	}
	return reqErr
}
