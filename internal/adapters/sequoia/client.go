package sequoia

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/yuzawa-san/wawona/internal/domain"
)

const (
	DefaultBaseURL = "https://hrx-backend.sequoia.com"

	browserHash      = "1032275734"
	maxResponseBytes = 4 << 20
	redacted         = "[REDACTED]"
)

var fixedHeaders = map[string]string{
	"Authority":       "hrx-backend.sequoia.com",
	"Accept":          "application/json",
	"Agent":           "admin",
	"Content-Type":    "application/json;charset=UTF-8",
	"Devicetype":      "4",
	"Locale-Timezone": "America/New_York",
	"Origin":          "https://login.sequoia.com",
	"Referer":         "https://login.sequoia.com/",
	"User-Agent": "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/122.0.0.0 Safari/537.36",
}

var sensitiveHeaders = map[string]bool{"Token": true, "Apitoken": true}

var sensitiveFields = map[string]bool{"password": true, "passCode": true, "apiToken": true, "token": true}

// Client talks to the workplace backend. The zero value is not usable; BaseURL is required.
type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	// Logger receives request and response traces at debug level.
	Logger *slog.Logger
}

type envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type call struct {
	method  string
	path    string
	query   url.Values
	headers map[string]string
	body    any
}

// do sends one request and decodes the data member of the response envelope into out.
func (c *Client) do(ctx context.Context, in call, out any) error {
	endpoint, err := buildAPIURL(c.BaseURL, in.path, in.query)
	if err != nil {
		return err
	}

	var payload []byte
	if in.body != nil {
		payload, err = json.Marshal(in.body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", in.method, in.path, err)
		}
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, in.method, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create %s %s request: %w", in.method, in.path, err)
	}
	for key, value := range fixedHeaders {
		req.Header.Set(key, value)
	}
	for key, value := range in.headers {
		req.Header.Set(key, value)
	}
	c.traceRequest(ctx, req, payload)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return &domain.TransportError{Method: in.method, URL: in.path, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return &domain.TransportError{Method: in.method, URL: in.path, StatusCode: resp.StatusCode, Err: err}
	}
	c.traceResponse(ctx, resp, raw)

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		transportErr := &domain.TransportError{Method: in.method, URL: in.path, StatusCode: resp.StatusCode}
		if decodeErr == nil {
			transportErr.Message = env.Message
		}
		return transportErr
	}
	if decodeErr != nil {
		return &domain.TransportError{Method: in.method, URL: in.path, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", decodeErr)}
	}
	if out == nil {
		return nil
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return &domain.TransportError{Method: in.method, URL: in.path, StatusCode: resp.StatusCode, Err: errors.New("response missing data")}
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &domain.TransportError{Method: in.method, URL: in.path, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response data: %w", err)}
	}
	return nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}

	return context.WithTimeout(ctx, requestTimeout)
}

func (c *Client) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.DiscardHandler)
}

func (c *Client) traceRequest(ctx context.Context, req *http.Request, payload []byte) {
	log := c.logger()
	if !log.Enabled(ctx, slog.LevelDebug) {
		return
	}
	log.DebugContext(ctx, "api request",
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.Any("headers", redactHeaders(req.Header)),
		slog.String("body", redactJSON(payload)),
	)
}

func (c *Client) traceResponse(ctx context.Context, resp *http.Response, raw []byte) {
	log := c.logger()
	if !log.Enabled(ctx, slog.LevelDebug) {
		return
	}
	log.DebugContext(ctx, "api response",
		slog.Int("status", resp.StatusCode),
		slog.Any("headers", redactHeaders(resp.Header)),
		slog.String("body", redactJSON(raw)),
	)
}

func redactHeaders(header http.Header) map[string]string {
	out := make(map[string]string, len(header))
	for key := range header {
		if sensitiveHeaders[http.CanonicalHeaderKey(key)] {
			out[key] = redacted
			continue
		}
		out[key] = header.Get(key)
	}
	return out
}

// redactJSON masks credential members at any depth. Bodies that are not JSON are
// reported by size only.
func redactJSON(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return fmt.Sprintf("<%d bytes>", len(raw))
	}
	masked, err := json.Marshal(redactValue(value))
	if err != nil {
		return fmt.Sprintf("<%d bytes>", len(raw))
	}
	return string(masked)
}

func redactValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		for key, inner := range v {
			if sensitiveFields[key] {
				v[key] = redacted
				continue
			}
			v[key] = redactValue(inner)
		}
		return v
	case []any:
		for i, inner := range v {
			v[i] = redactValue(inner)
		}
		return v
	default:
		return v
	}
}

func buildAPIURL(baseURL string, path string, query url.Values) (string, error) {
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	endpoint, err := parsed.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse api path: %w", err)
	}
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}
	return endpoint.String(), nil
}
