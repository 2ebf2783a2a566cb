package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/modfolio/modfolio/internal/metrics"
)

const (
	maxResponseBytes      = 8 << 20
	maxErrorBodyBytes     = 64 << 10
	defaultBreakerFailure = 5
)

// ClientOptions 描述单个平台 API 客户端的行为。
type ClientOptions struct {
	// Platform 是展示用名称，出现在错误消息中，例如 "Modrinth"。
	Platform string
	BaseURL  string
	Headers  http.Header
	Timeout  time.Duration
	// RateLimit 为每秒请求数，<= 0 表示不限速。
	RateLimit       float64
	RateBurst       int
	BreakerFailures uint32
	Logger          *logrus.Logger
}

// Client 封装平台 API 访问：令牌桶限速、熔断、超时与统一错误映射。
type Client struct {
	http     *http.Client
	base     *url.URL
	platform string
	headers  http.Header
	timeout  time.Duration
	limiter  *rate.Limiter
	breaker  *gobreaker.CircuitBreaker[[]byte]
	logger   *logrus.Logger
}

// NewClient 基于共享 http.Client 构建平台客户端。
func NewClient(httpClient *http.Client, opts ClientOptions) (*Client, error) {
	if httpClient == nil {
		return nil, errors.New("http client is required")
	}
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base url for %s: %w", opts.Platform, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base url for %s: %s", opts.Platform, opts.BaseURL)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	c := &Client{
		http:     httpClient,
		base:     base,
		platform: opts.Platform,
		headers:  opts.Headers.Clone(),
		timeout:  timeout,
		logger:   logger,
	}
	if opts.RateLimit > 0 {
		burst := opts.RateBurst
		if burst <= 0 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}

	failures := opts.BreakerFailures
	if failures == 0 {
		failures = defaultBreakerFailure
	}
	c.breaker = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        strings.ToLower(opts.Platform),
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: countsAsSuccess,
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.BreakerState.WithLabelValues(name).Set(breakerStateValue(to))
			c.logger.WithFields(logrus.Fields{
				"action":   "breaker_state",
				"platform": name,
				"from":     from.String(),
				"to":       to.String(),
			}).Warn("upstream breaker state changed")
		},
	})
	metrics.BreakerState.WithLabelValues(strings.ToLower(opts.Platform)).Set(0)

	return c, nil
}

// Platform 返回客户端的展示名称。
func (c *Client) Platform() string { return c.platform }

// URL 将相对路径拼接到 BaseURL；绝对地址原样返回。
func (c *Client) URL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.base.String() + path
}

// GetJSON 请求 path 并将 JSON 响应解码到 out。
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	body, err := c.Get(ctx, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return Upstream(http.StatusBadGateway, fmt.Sprintf("%s API returned invalid JSON", c.platform), err)
	}
	return nil
}

// Get 请求 path 并返回响应正文。错误均为 *FetchError。
func (c *Client) Get(ctx context.Context, path string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			metrics.RecordUpstream(c.label(), "throttled")
			return nil, Upstream(http.StatusTooManyRequests, fmt.Sprintf("%s API rate limit reached", c.platform), err)
		}
	}

	target := c.URL(path)
	body, err := c.breaker.Execute(func() ([]byte, error) {
		return c.do(ctx, target)
	})
	if err == nil {
		metrics.RecordUpstream(c.label(), "ok")
		return body, nil
	}

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		metrics.RecordUpstream(c.label(), "rejected")
		return nil, Upstream(http.StatusServiceUnavailable, fmt.Sprintf("%s API temporarily unavailable", c.platform), err)
	}
	fe := AsFetchError(err)
	metrics.RecordUpstream(c.label(), fe.Kind.String())
	return nil, fe
}

func (c *Client) do(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, Upstream(http.StatusBadRequest, "invalid upstream request", err)
	}
	for key, values := range c.headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, Upstream(http.StatusGatewayTimeout, fmt.Sprintf("%s API timed out", c.platform), err)
		}
		return nil, Upstream(http.StatusBadGateway, fmt.Sprintf("%s API unreachable", c.platform), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, NotFound("Resource not found")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		text := extractErrorText(raw)
		return nil, Upstream(resp.StatusCode, fmt.Sprintf("%s API error: %d: %s", c.platform, resp.StatusCode, text), nil)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, Upstream(http.StatusBadGateway, fmt.Sprintf("%s API response truncated", c.platform), err)
	}
	return body, nil
}

func (c *Client) label() string {
	return strings.ToLower(c.platform)
}

// extractErrorText 优先读取 JSON 中的 error/message/description 字段。
func extractErrorText(raw []byte) string {
	var payload struct {
		Error       any    `json:"error"`
		Message     string `json:"message"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		if s, ok := payload.Error.(string); ok && s != "" {
			return s
		}
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Description != "" {
			return payload.Description
		}
	}
	return strings.TrimSpace(string(raw))
}

// countsAsSuccess 让 4xx（限流除外）不计入熔断失败，只有上游不可用才会打开熔断器。
func countsAsSuccess(err error) bool {
	if err == nil {
		return true
	}
	var fe *FetchError
	if !errors.As(err, &fe) {
		return false
	}
	if fe.Kind == KindNotFound {
		return true
	}
	return fe.Status >= 400 && fe.Status < 500 && fe.Status != http.StatusTooManyRequests
}

func breakerStateValue(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
