package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/preston-bernstein/fightcard-service/internal/logging"
	"github.com/preston-bernstein/fightcard-service/internal/metrics"
)

// Config controls how the client reaches the fight-data API. A zero
// Timeout or MaxAttempts falls back to the package default; a zero
// RetryDelay retries immediately.
type Config struct {
	BaseURL     string
	Timeout     time.Duration
	MaxAttempts int
	RetryDelay  time.Duration
	Revision    Revision
	HTTPClient  *http.Client
	Logger      *slog.Logger
	Recorder    *metrics.Recorder
}

type delayFunc func(attempt int) time.Duration

// Client issues typed requests against the fight-data API. It holds no
// mutable state and is safe for concurrent use.
type Client struct {
	baseURL     string
	httpClient  httpDoer
	timeout     time.Duration
	maxAttempts int
	delayFn     delayFunc
	revision    Revision
	adapter     predictionAdapter
	logger      *slog.Logger
	metrics     *metrics.Recorder
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	delay := resolveRetryDelay(cfg.RetryDelay)
	revision := resolveRevision(cfg.Revision)
	return &Client{
		baseURL:     normalizeBaseURL(cfg.BaseURL),
		httpClient:  resolveHTTPClient(cfg.HTTPClient),
		timeout:     resolveTimeout(cfg.Timeout),
		maxAttempts: resolveMaxAttempts(cfg.MaxAttempts),
		delayFn: func(int) time.Duration {
			return delay
		},
		revision: revision,
		adapter:  adapterFor(revision),
		logger:   cfg.Logger,
		metrics:  cfg.Recorder,
	}
}

// Revision reports the backend schema revision the client speaks.
func (c *Client) Revision() Revision {
	return c.revision
}

type request struct {
	op     string
	method string
	path   string
	query  url.Values
	token  string
	body   any
	// absentOn404 marks operations where "not found" is a valid empty result.
	absentOn404 bool
}

// do runs req with the retry policy and decodes a 2xx body into out. It
// reports found=false when the operation treats 404 as absent.
func (c *Client) do(ctx context.Context, req request, out any) (bool, error) {
	var payload []byte
	if req.body != nil {
		encoded, err := json.Marshal(req.body)
		if err != nil {
			return false, &Error{Op: req.op, Message: "encode request: " + err.Error(), Err: err}
		}
		payload = encoded
	}

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		found, err := c.attempt(ctx, req, payload, out)
		if err == nil {
			return found, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return false, lastErr
		}
		if attempt == c.maxAttempts {
			break
		}

		c.logWarn(ctx, "upstream request retry",
			logging.FieldOperation, req.op,
			logging.FieldAttempt, attempt,
			"max_attempts", c.maxAttempts,
			logging.FieldError, err,
		)
		c.metrics.RecordRetry(req.op)

		select {
		case <-ctx.Done():
			return false, &Error{Op: req.op, Message: "request canceled", Err: ctx.Err()}
		case <-time.After(c.delayFn(attempt)):
		}
	}

	c.logWarn(ctx, "upstream request failed", logging.FieldOperation, req.op, "attempts", c.maxAttempts, "err", lastErr)
	return false, lastErr
}

func (c *Client) attempt(ctx context.Context, req request, payload []byte, out any) (bool, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	httpReq, err := c.buildRequest(attemptCtx, req, payload)
	if err != nil {
		return false, &Error{Op: req.op, Message: "build request: " + err.Error(), Err: err}
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		apiErr := c.transportError(ctx, attemptCtx, req.op, err)
		c.metrics.RecordUpstreamAttempt(req.op, time.Since(start), apiErr, apiErr.Timeout)
		return false, apiErr
	}
	defer resp.Body.Close()

	found, err := handleResponse(req, resp, out)
	if err != nil && attemptCtx.Err() != nil && ctx.Err() == nil {
		err = c.timeoutError(req.op, err)
	}
	c.metrics.RecordUpstreamAttempt(req.op, time.Since(start), err, IsTimeout(err))
	return found, err
}

func (c *Client) buildRequest(ctx context.Context, req request, payload []byte) (*http.Request, error) {
	target := c.baseURL + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, body)
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}
	return httpReq, nil
}

// transportError classifies a failed round trip. The caller's own
// cancellation is kept distinct from the per-attempt deadline.
func (c *Client) transportError(ctx, attemptCtx context.Context, op string, err error) *Error {
	if ctx.Err() != nil {
		return &Error{Op: op, Message: "request canceled", Err: ctx.Err()}
	}
	var netErr net.Error
	if errors.Is(attemptCtx.Err(), context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return c.timeoutError(op, err)
	}
	return &Error{Op: op, Message: "network error: " + err.Error(), Err: err}
}

func (c *Client) timeoutError(op string, err error) *Error {
	return &Error{
		Op:      op,
		Message: fmt.Sprintf("request timed out after %s", c.timeout),
		Timeout: true,
		Err:     err,
	}
}

func (c *Client) logWarn(ctx context.Context, msg string, args ...any) {
	logging.Warn(logging.FromContext(ctx, c.logger), msg, args...)
}
