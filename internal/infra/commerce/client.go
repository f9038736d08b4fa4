// Package commerce implements the REST adapters for the external commerce
// platform. All requests flow through one client that selects Bearer or
// Basic auth, attaches the anti-forgery nonce, extracts error messages from
// failure bodies and guards the backend with a circuit breaker.
package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/sony/gobreaker/v2"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
)

// nonceHeader carries the anti-forgery token on mutating calls and is
// returned by the backend on cart reads.
const nonceHeader = "Nonce"

// Client is the shared HTTP plumbing for every commerce repository.
type Client struct {
	cfg        *config.CommerceConfig
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[*http.Response]
	logger     *slog.Logger
}

// NewClient builds the commerce client from configuration.
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	if cfg.Commerce == nil {
		return nil, errors.New("commerce configuration is required")
	}

	breaker := gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name: "commerce",
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("commerce circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Client{
		cfg: cfg.Commerce,
		httpClient: &http.Client{
			Timeout: cfg.Commerce.Timeout,
		},
		breaker: breaker,
		logger:  logger,
	}, nil
}

// request describes one outbound call. When session is nil or forceBasic is
// set the client credentials are used; otherwise an authenticated session's
// token selects Bearer auth.
type request struct {
	method     string
	base       string
	path       string
	query      url.Values
	body       any
	session    *entity.Session
	forceBasic bool
	nonce      string
	out        any
}

// do executes the request and decodes the response body into req.out when
// non-nil. The response headers are returned so callers can capture the
// nonce. Non-2xx responses become RemoteErrors with the backend's message.
func (c *Client) do(ctx context.Context, req request) (http.Header, error) {
	endpoint, err := joinURL(req.base, req.path)
	if err != nil {
		return nil, errors.Wrap(err, "build request url")
	}
	if len(req.query) > 0 {
		endpoint += "?" + req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		payload, err := json.Marshal(req.body)
		if err != nil {
			return nil, errors.Wrap(err, "encode request body")
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, endpoint, body)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "*/*")

	if req.session.IsAuthenticated() && !req.forceBasic {
		httpReq.Header.Set("Authorization", "Bearer "+req.session.Token)
	} else {
		httpReq.SetBasicAuth(c.cfg.ClientKey, c.cfg.ClientSecret)
	}
	if req.nonce != "" {
		httpReq.Header.Set(nonceHeader, req.nonce)
	}

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		return c.httpClient.Do(httpReq)
	})
	if err != nil {
		return nil, domainerrors.NewRemoteError(http.StatusBadGateway, "COMMERCE_UNREACHABLE", "", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read response body")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		code, message := extractErrorMessage(raw)
		c.logger.Debug("commerce request failed",
			slog.String("method", req.method),
			slog.String("url", endpoint),
			slog.Int("status", resp.StatusCode),
			slog.String("message", message),
		)

		return resp.Header, domainerrors.NewRemoteError(resp.StatusCode, code, message, nil)
	}

	if req.out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, req.out); err != nil {
			return resp.Header, errors.Wrap(err, "decode response body")
		}
	}

	return resp.Header, nil
}

// joinURL appends path to base, tolerating any combination of trailing and
// leading slashes.
func joinURL(base, path string) (string, error) {
	parsed, err := url.Parse(base)
	if err != nil {
		return "", err
	}

	return strings.TrimSuffix(parsed.String(), "/") + "/" + strings.TrimPrefix(path, "/"), nil
}

// extractErrorMessage pulls a user-facing message out of a backend error
// body. Backends answer with several shapes; all are tried best-effort.
func extractErrorMessage(raw []byte) (code, message string) {
	var envelope struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Error   any    `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return "", ""
	}

	code = envelope.Code
	if envelope.Message != "" {
		return code, envelope.Message
	}

	switch errVal := envelope.Error.(type) {
	case string:
		return code, errVal
	case map[string]any:
		if msg, ok := errVal["message"].(string); ok {
			return code, msg
		}
	}

	return code, ""
}
