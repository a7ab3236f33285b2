package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
)

// storedCookie is the subset of a cookie the jar exposes for a URL.
type storedCookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// loadCookies restores the persisted session cookie, if any. A missing
// or unreadable file just means no session.
func (c *Client) loadCookies() {
	if c.cookiePath == "" {
		return
	}
	data, err := os.ReadFile(c.cookiePath)
	if err != nil {
		return
	}
	var stored []storedCookie
	if err := json.Unmarshal(data, &stored); err != nil {
		return
	}
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return
	}
	cookies := make([]*http.Cookie, 0, len(stored))
	for _, s := range stored {
		cookies = append(cookies, &http.Cookie{Name: s.Name, Value: s.Value})
	}
	c.jar.SetCookies(u, cookies)
}

// saveCookies writes the jar's cookies for the service host to disk.
// Called after every auth call so the session survives the process.
func (c *Client) saveCookies() {
	if c.cookiePath == "" {
		return
	}
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return
	}
	cookies := c.jar.Cookies(u)
	stored := make([]storedCookie, 0, len(cookies))
	for _, ck := range cookies {
		stored = append(stored, storedCookie{Name: ck.Name, Value: ck.Value})
	}
	data, err := json.Marshal(stored)
	if err != nil {
		return
	}
	_ = os.MkdirAll(filepath.Dir(c.cookiePath), 0700)
	_ = os.WriteFile(c.cookiePath, data, 0600)
}

// ClearSession forgets the persisted session cookie file.
func (c *Client) ClearSession() {
	if c.cookiePath != "" {
		_ = os.Remove(c.cookiePath)
	}
}
