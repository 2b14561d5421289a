// Package gateway is the single edge to the remote payment-processing API.
// It attaches the session bearer token (refreshing it first when expired),
// retries transient upstream failures with linear backoff, unwraps the data
// envelope, and translates wire status codes into the canonical domain
// representation. Nothing outside this package speaks the wire format.
package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"payref-console/internal/domain/notification"
	"payref-console/internal/infra/bus"
	"payref-console/internal/infra/storage"
	"payref-console/internal/pkg/clock"
	"payref-console/internal/pkg/config"
	"payref-console/internal/pkg/errs"

	"github.com/hashicorp/go-retryablehttp"
)

type Client struct {
	baseURL   string
	http      *retryablehttp.Client
	store     *storage.Store
	clock     clock.Clock
	publisher bus.Publisher
}

func NewClient(cfg config.GatewayConfig, store *storage.Store, clk clock.Clock, publisher bus.Publisher) *Client {
	c := &Client{
		baseURL:   cfg.BaseURL,
		store:     store,
		clock:     clk,
		publisher: publisher,
	}
	c.http = newRetryClient(cfg, clk, publisher)
	return c
}

// newRetryClient configures the retry policy: only server-side symptoms
// (>=500 responses, network errors, timeouts) are retried, up to
// cfg.MaxAttempts total, waiting attempt x RetryDelay between tries. Client
// errors are surfaced immediately.
func newRetryClient(cfg config.GatewayConfig, clk clock.Clock, publisher bus.Publisher) *retryablehttp.Client {
	rc := retryablehttp.NewClient()
	rc.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	rc.RetryMax = cfg.MaxAttempts - 1
	rc.Logger = nil

	rc.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		if err != nil {
			// Timeouts and connection failures are treated as server-side
			// symptoms, capped at the same attempt ceiling.
			return true, nil
		}
		return resp.StatusCode >= http.StatusInternalServerError, nil
	}

	rc.Backoff = func(_, _ time.Duration, attemptNum int, _ *http.Response) time.Duration {
		return time.Duration(attemptNum+1) * cfg.RetryDelay
	}

	rc.RequestLogHook = func(_ retryablehttp.Logger, req *http.Request, attempt int) {
		if attempt == 0 {
			return
		}
		msg := fmt.Sprintf("Retrying request... (attempt %d of %d)", attempt+1, cfg.MaxAttempts)
		slog.Warn("retrying upstream request", "method", req.Method, "url", req.URL.String(), "attempt", attempt+1)
		publisher.Publish(notification.NewSystemEvent(msg, clk.Now()))
	}

	return rc
}

// do performs one request. Authenticated calls never leave with an expired
// token: the current token is validated (and refreshed) first, and if no
// usable token can be obtained the request is aborted before any bytes are
// sent upstream.
func (c *Client) do(ctx context.Context, method, path string, body any, authenticated bool) ([]byte, error) {
	var bearer string
	if authenticated {
		var err error
		bearer, err = c.currentToken(ctx)
		if err != nil {
			return nil, err
		}
	}

	var reader io.Reader
	if body != nil {
		payload, err := marshalBody(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build upstream request")
	}
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// Retries exhausted on a network error or timeout.
		return nil, errs.Mark(errs.Wrap(err, "upstream request failed"), errs.ErrTransientUpstream)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to read upstream response"), errs.ErrTransientUpstream)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, normalizeError(resp.StatusCode, raw)
	}
	return unwrapEnvelope(raw), nil
}
