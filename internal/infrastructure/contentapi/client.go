package contentapi

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/net/publicsuffix"

	"github.com/riskibarqy/content-brain/internal/platform/logging"
	"github.com/riskibarqy/content-brain/internal/platform/resilience"
	"github.com/riskibarqy/content-brain/internal/usecase"
)

const maxResponseSize = 4 << 20

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	// Timeout bounds each request when positive. Zero leaves requests unbounded.
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks JSON to the content brain backend. Session cookies live in
// its jar; a bearer token is sent as well once one is known.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	logger     *logging.Logger
	breaker    *resilience.CircuitBreaker

	mu    sync.RWMutex
	token string
}

func NewClient(cfg ClientConfig) (*Client, error) {
	raw := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if raw == "" {
		return nil, crerr.New("content api base url is required")
	}
	baseURL, err := url.Parse(raw)
	if err != nil {
		return nil, crerr.Wrapf(err, "parse base url %q", raw)
	}
	if baseURL.Scheme != "http" && baseURL.Scheme != "https" {
		return nil, crerr.Newf("base url %q uses unsupported scheme=%q; expected http or https", raw, baseURL.Scheme)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   max(cfg.Timeout, 0),
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Jar == nil {
		jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
		if err != nil {
			return nil, crerr.Wrap(err, "create cookie jar")
		}
		httpClient.Jar = jar
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logging.OrDefault(cfg.Logger).With("component", "content_api"),
		breaker:    resilience.NewCircuitBreakerFromConfig(cfg.CircuitBreaker),
	}, nil
}

// BaseURL is the API root the session cookies are scoped to.
func (c *Client) BaseURL() *url.URL {
	u := *c.baseURL
	return &u
}

func (c *Client) Jar() http.CookieJar {
	return c.httpClient.Jar
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = strings.TrimSpace(token)
	c.mu.Unlock()
}

// do sends one request. body and target may be nil. Any failure comes back
// as a *usecase.RequestError.
func (c *Client) do(ctx context.Context, method, path string, body, target any) error {
	err := c.breaker.Do(func() error {
		return c.execute(ctx, method, path, body, target)
	}, isCircuitFailure)
	if crerr.Is(err, resilience.ErrCircuitOpen) {
		c.logger.WarnContext(ctx, "content api circuit breaker rejected request", "path", path, "state", c.breaker.State())
		return &usecase.RequestError{Err: err}
	}
	return err
}

func (c *Client) execute(ctx context.Context, method, path string, body, target any) error {
	var payload []byte
	if body != nil {
		encoded, err := sonic.Marshal(body)
		if err != nil {
			return &usecase.RequestError{Err: crerr.Wrapf(err, "encode %s %s body", method, path)}
		}
		payload = encoded
	}

	fullURL := c.baseURL.String() + path
	req, err := http.NewRequestWithContext(ctx, method, fullURL, bytes.NewReader(payload))
	if err != nil {
		return &usecase.RequestError{Err: crerr.Wrapf(err, "build %s %s", method, path)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	token := c.Token()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	c.logger.DebugContext(ctx, "content api request", "curl", curlPreview(method, fullURL, token != "", payload))

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "content api unreachable", "method", method, "path", path, "error", err)
		return &usecase.RequestError{Err: crerr.Wrapf(err, "%s %s", method, path)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return &usecase.RequestError{Status: resp.StatusCode, Err: crerr.Wrapf(err, "read %s %s response", method, path)}
	}
	c.logger.DebugContext(ctx, "content api response",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(started),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp.StatusCode, raw)
	}
	if target == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return &usecase.RequestError{Status: resp.StatusCode, Err: crerr.Wrapf(err, "decode %s %s response", method, path)}
	}
	return nil
}

type errorBody struct {
	Message string `json:"message"`
}

// decodeError keeps the server's message when the body carries one.
func decodeError(status int, raw []byte) error {
	reqErr := &usecase.RequestError{Status: status}
	var decoded errorBody
	if err := sonic.Unmarshal(raw, &decoded); err == nil && strings.TrimSpace(decoded.Message) != "" {
		reqErr.Message = decoded.Message
		reqErr.FromServer = true
	}
	return reqErr
}

func isCircuitFailure(err error) bool {
	var reqErr *usecase.RequestError
	if !crerr.As(err, &reqErr) {
		return true
	}
	return reqErr.Status == 0 || reqErr.Status >= http.StatusInternalServerError
}

func curlPreview(method, fullURL string, withToken bool, body []byte) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	appendPart := func(part string) {
		if buf.Len() > 0 {
			_ = buf.WriteByte(' ')
		}
		_, _ = buf.WriteString(part)
	}

	appendPart("curl -X")
	appendPart(method)
	appendPart(shellQuote(fullURL))
	appendPart("-H")
	appendPart(shellQuote("Content-Type: application/json"))
	if withToken {
		appendPart("-H")
		appendPart(shellQuote("Authorization: Bearer ***"))
	}
	if len(body) > 0 {
		appendPart("-d")
		appendPart(shellQuote(redactBody(string(body))))
	}
	return buf.String()
}

func shellQuote(v string) string {
	return "'" + strings.ReplaceAll(v, "'", `'"'"'`) + "'"
}

// redactBody hides bodies that carry credentials.
func redactBody(body string) string {
	if strings.Contains(body, `"password"`) || strings.Contains(body, `"token"`) {
		return "<redacted>"
	}
	return body
}

// numericID formats a path id as the backend's integer id.
func numericID(id string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
	if err != nil {
		return 0, crerr.Wrapf(usecase.ErrInvalidInput, "id %q is not numeric", id)
	}
	return v, nil
}

func escape(id string) string {
	return url.PathEscape(strings.TrimSpace(id))
}
