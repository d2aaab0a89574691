package api

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/oliy/workers-sdk/internal/constants"
	"github.com/oliy/workers-sdk/internal/perr"
)

// defaultPropagationDelay is how long a freshly issued service token is
// given to propagate through the control plane before first use.
const defaultPropagationDelay = 3 * time.Second

var ErrUnreachable = errors.New("control plane is unreachable. Check your network connection and API host")

type customTransport struct {
	Transport http.RoundTripper
}

func (c *customTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := c.Transport.RoundTrip(req)
	opErr, ok := err.(*net.OpError)
	if ok && opErr.Op == "dial" {
		return nil, ErrUnreachable
	}
	return resp, err
}

// Sleeper waits for the given duration, honouring context cancellation.
// Tests inject a no-op to skip the token propagation delay.
type Sleeper func(ctx context.Context, d time.Duration) error

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Client is a stateless control plane API client. Each method maps to a
// single HTTP request; no retries and no caching happen at this layer.
type Client struct {
	baseURL          string
	token            string
	httpClient       *http.Client
	propagationDelay time.Duration
	sleep            Sleeper
}

type ClientOption func(*Client)

func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

func WithToken(token string) ClientOption {
	return func(c *Client) {
		c.token = token
	}
}

func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithTLSInsecure(insecure bool) ClientOption {
	return func(c *Client) {
		c.httpClient = &http.Client{
			Transport: &customTransport{Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: insecure}, //nolint:gosec // user defined
			}},
		}
	}
}

func WithPropagationDelay(d time.Duration) ClientOption {
	return func(c *Client) {
		c.propagationDelay = d
	}
}

func WithSleeper(s Sleeper) ClientOption {
	return func(c *Client) {
		c.sleep = s
	}
}

func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL:          constants.DefaultApiHost,
		propagationDelay: defaultPropagationDelay,
		sleep:            sleepContext,
		httpClient: &http.Client{
			Transport: &customTransport{Transport: http.DefaultTransport},
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// envelope is the fixed response wrapper of the control plane.
type envelope struct {
	Success bool            `json:"success"`
	Errors  []ResponseError `json:"errors"`
	Result  json.RawMessage `json:"result"`
}

type ResponseError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// do issues a single request and decodes the envelope. Non-2xx responses
// and success=false envelopes become perr errors carrying the server's
// code and message verbatim.
func (c *Client) do(ctx context.Context, method string, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return perr.Internal(err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return perr.Internal(err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, ErrUnreachable) {
			return perr.InternalWithMessage(ErrUnreachable.Error())
		}
		return perr.Internal(err)
	}
	defer resp.Body.Close()

	slog.Debug("control plane call", "method", method, "path", path, "status", resp.StatusCode)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return perr.Internal(err)
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return perr.FromServer(resp.StatusCode, 0, http.StatusText(resp.StatusCode))
		}
		return perr.Internal(err)
	}

	if resp.StatusCode >= http.StatusBadRequest || !env.Success {
		if len(env.Errors) > 0 {
			return perr.FromServer(resp.StatusCode, env.Errors[0].Code, env.Errors[0].Message)
		}
		return perr.FromServer(resp.StatusCode, 0, fmt.Sprintf("request failed with status %d", resp.StatusCode))
	}

	if out != nil && len(env.Result) > 0 {
		if err := json.Unmarshal(env.Result, out); err != nil {
			return perr.Internal(err)
		}
	}

	return nil
}
