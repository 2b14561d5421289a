package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"payref-console/internal/pkg/errs"
	"payref-console/internal/pkg/token"

	"github.com/hashicorp/go-retryablehttp"
)

type tokenResponse struct {
	Token string `json:"token"`
}

// Authenticate exchanges credentials for a bearer token and stores it as the
// current session. A 401 maps to invalid credentials, distinct from other
// failures.
func (c *Client) Authenticate(ctx context.Context, username, password string) error {
	body := map[string]string{"username": username, "password": password}
	raw, err := c.do(ctx, http.MethodPost, "/authenticate", body, false)
	if err != nil {
		if apiErr := AsAPIError(err); apiErr != nil && apiErr.StatusCode == http.StatusUnauthorized {
			return errs.Mark(err, errs.ErrInvalidCredentials)
		}
		return err
	}

	var tr tokenResponse
	if err := json.Unmarshal(raw, &tr); err != nil || tr.Token == "" {
		return errs.Mark(errs.New("authenticate response carried no token"), errs.ErrAuthenticationFailed)
	}
	return c.store.SaveToken(tr.Token)
}

// ForceRefresh trades the stored token for a fresh one regardless of its
// remaining lifetime.
func (c *Client) ForceRefresh(ctx context.Context) error {
	current, ok := c.store.LoadToken()
	if !ok {
		return errs.ErrSessionExpired
	}
	_, err := c.refreshToken(ctx, current)
	return err
}

// Logout discards the current session token.
func (c *Client) Logout(_ context.Context) error {
	return c.store.DeleteToken()
}

// currentToken returns a token that is valid right now. An expired token is
// refreshed first; if the refresh fails the stored token is discarded and the
// caller gets a session-ended signal instead of an unauthenticated call.
func (c *Client) currentToken(ctx context.Context) (string, error) {
	current, ok := c.store.LoadToken()
	if !ok {
		return "", errs.ErrSessionExpired
	}
	if !token.IsExpired(current, c.clock.Now()) {
		return current, nil
	}
	return c.refreshToken(ctx, current)
}

// refreshToken trades a near-expiry (or expired) token for a fresh one.
func (c *Client) refreshToken(ctx context.Context, stale string) (string, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/refresh", nil)
	if err != nil {
		return "", errs.Wrap(err, "failed to build refresh request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+stale)

	resp, err := c.http.Do(req)
	if err != nil {
		c.dropSession()
		return "", errs.Mark(err, errs.ErrSessionExpired)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		c.dropSession()
		return "", errs.Mark(errs.Newf("token refresh rejected with status %d", resp.StatusCode), errs.ErrSessionExpired)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.dropSession()
		return "", errs.Mark(err, errs.ErrSessionExpired)
	}

	var tr tokenResponse
	if err := json.Unmarshal(unwrapEnvelope(raw), &tr); err != nil || tr.Token == "" {
		c.dropSession()
		return "", errs.Mark(errs.New("refresh response carried no token"), errs.ErrSessionExpired)
	}

	if err := c.store.SaveToken(tr.Token); err != nil {
		return "", err
	}
	return tr.Token, nil
}

func (c *Client) dropSession() {
	_ = c.store.DeleteToken()
}
