/*
Copyright © 2025 Jorge C. Riveros
SPDX-License-Identifier: Apache-2.0
*/
package apic

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/jcriveros/devaci/pkg/errors"
	"github.com/jcriveros/devaci/pkg/version"
)

// envelope is the top-level controller response.
type envelope struct {
	TotalCount string            `json:"totalCount"`
	Imdata     []json.RawMessage `json:"imdata"`
}

type loginAttributes struct {
	Token                 string `json:"token"`
	RefreshTimeoutSeconds string `json:"refreshTimeoutSeconds"`
	Version               string `json:"version"`
	SiteFingerprint       string `json:"siteFingerprint"`
}

type loginBody struct {
	AaaLogin struct {
		Attributes loginAttributes `json:"attributes"`
	} `json:"aaaLogin"`
}

type errorBody struct {
	Error struct {
		Attributes struct {
			Code string `json:"code"`
			Text string `json:"text"`
		} `json:"attributes"`
	} `json:"error"`
}

// faultText extracts the error text from a controller response body, falling
// back to the raw status when the envelope does not parse.
func faultText(data []byte, status int) string {
	var env envelope
	if err := json.Unmarshal(data, &env); err == nil {
		for _, raw := range env.Imdata {
			var eb errorBody
			if err := json.Unmarshal(raw, &eb); err == nil && eb.Error.Attributes.Text != "" {
				return eb.Error.Attributes.Text
			}
		}
	}
	return http.StatusText(status)
}

// Login opens a session and stores the token for subsequent requests.
func (c *Client) Login(ctx context.Context) error {
	body, err := json.Marshal(map[string]any{
		"aaaUser": map[string]any{
			"attributes": map[string]string{
				"name": c.username,
				"pwd":  c.password,
			},
		},
	})
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "encoding login request failed", err)
	}

	data, status, err := c.do(ctx, http.MethodPost, "/api/aaaLogin.json", contentJSON, body)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return errors.NewWithContext(errors.ErrCodeLogin, "authentication failed", map[string]any{
			"host":   c.host,
			"user":   c.username,
			"status": status,
			"reason": faultText(data, status),
		})
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil || len(env.Imdata) == 0 {
		return errors.New(errors.ErrCodeLogin, "unexpected login response")
	}
	var lb loginBody
	if err := json.Unmarshal(env.Imdata[0], &lb); err != nil || lb.AaaLogin.Attributes.Token == "" {
		return errors.New(errors.ErrCodeLogin, "login response carries no token")
	}

	attrs := lb.AaaLogin.Attributes
	c.mu.Lock()
	c.token = attrs.Token
	c.version = attrs.Version
	if secs, err := strconv.Atoi(attrs.RefreshTimeoutSeconds); err == nil {
		c.refresh = time.Duration(secs) * time.Second
	}
	c.mu.Unlock()

	c.log.Info("session established",
		"host", c.host,
		"user", c.username,
		"version", attrs.Version)
	return nil
}

// ParsedVersion returns the controller version reported at login in
// structured form.
func (c *Client) ParsedVersion() (version.Version, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return version.Parse(c.version)
}

// Refresh extends the current session before the controller expires it.
func (c *Client) Refresh(ctx context.Context) error {
	data, status, err := c.do(ctx, http.MethodGet, "/api/aaaRefresh.json", contentJSON, nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return errors.NewWithContext(errors.ErrCodeLogin, "session refresh failed", map[string]any{
			"host":   c.host,
			"status": status,
			"reason": faultText(data, status),
		})
	}
	return nil
}

// KeepAlive refreshes the session at half the controller's session timeout
// until ctx is done. It returns ctx.Err on cancellation or the first refresh
// failure.
func (c *Client) KeepAlive(ctx context.Context) error {
	interval := c.RefreshInterval() / 2
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := c.Refresh(ctx); err != nil {
				return err
			}
		}
	}
}

// RefreshInterval returns how long the controller keeps the session alive,
// or zero before login.
func (c *Client) RefreshInterval() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refresh
}

// Logout closes the session. The token is cleared even when the controller
// rejects the call, since it is no longer trusted.
func (c *Client) Logout(ctx context.Context) error {
	body, err := json.Marshal(map[string]any{
		"aaaUser": map[string]any{
			"attributes": map[string]string{
				"name": c.username,
			},
		},
	})
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "encoding logout request failed", err)
	}

	data, status, err := c.do(ctx, http.MethodPost, "/api/aaaLogout.json", contentJSON, body)

	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()

	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return errors.NewWithContext(errors.ErrCodeLogin, "logout failed", map[string]any{
			"host":   c.host,
			"status": status,
			"reason": faultText(data, status),
		})
	}
	c.log.Info("session closed", "host", c.host)
	return nil
}
