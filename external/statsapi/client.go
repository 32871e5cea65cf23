package statsapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/hoops-reference/internal/platform/logging"
	"github.com/riskibarqy/hoops-reference/internal/platform/resilience"
	"github.com/riskibarqy/hoops-reference/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "http://localhost:8001"
	maxBodyBytes   = 8 << 20
)

var (
	errTransient = crerr.New("stats api transient failure")
	errNotFound  = crerr.New("stats api resource not found")
)

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	RateLimit      float64
	RateBurst      int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client is a read-only client for the stats REST API. Every method issues GET
// requests and decodes the JSON body. Identical requests in flight at the same
// time share one upstream call; nothing is cached after it returns.
type Client struct {
	httpClient    *http.Client
	baseURL       string
	maxRetries    int
	flightTimeout time.Duration
	logger        *logging.Logger
	limiter       *rate.Limiter
	breaker       *resilience.CircuitBreaker
	inflight      resilience.SingleFlight[[]byte]
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 10 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	breaker := resilience.NewCircuitBreaker(cfg.CircuitBreaker)
	breaker.OnStateChange(func(from, to resilience.CircuitState) {
		logger.Warn("stats api circuit breaker changed state", "from", from, "to", to)
	})

	maxRetries := max(cfg.MaxRetries, 0)
	return &Client{
		httpClient:    httpClient,
		baseURL:       baseURL,
		maxRetries:    maxRetries,
		flightTimeout: flightTimeout(httpClient.Timeout, maxRetries),
		logger:        logger,
		limiter:       limiter,
		breaker:       breaker,
	}
}

func (c *Client) BreakerState() resilience.CircuitState {
	return c.breaker.State()
}

// Breaker reports the circuit breaker for health output.
func (c *Client) Breaker() resilience.Snapshot {
	return c.breaker.Snapshot()
}

// getList decodes a collection endpoint. A 404 is treated as an empty list.
func getList[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, error) {
	var out []T
	if err := c.doJSON(ctx, path, query, &out); err != nil {
		if crerr.Is(err, errNotFound) {
			return []T{}, nil
		}
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// getOne decodes a single-entity endpoint. A 404 reports exists=false.
func getOne[T any](ctx context.Context, c *Client, path string) (T, bool, error) {
	var out T
	if err := c.doJSON(ctx, path, nil, &out); err != nil {
		if crerr.Is(err, errNotFound) {
			var zero T
			return zero, false, nil
		}
		return out, false, err
	}
	return out, true, nil
}

func (c *Client) doJSON(ctx context.Context, path string, query url.Values, target any) error {
	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	flight := c.inflight.DoChan(fullURL, func() ([]byte, error) {
		return c.fetch(ctx, path, fullURL)
	})

	var raw []byte
	select {
	case <-ctx.Done():
		return ctx.Err()
	case res := <-flight:
		if res.Err != nil {
			return res.Err
		}
		raw = res.Val
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return crerr.Wrapf(err, "decode %s", path)
	}
	return nil
}

// fetch runs the shared upstream call. It is detached from the caller that
// started it so one cancelled page load cannot fail the others waiting on the
// same URL, and bounded by the longest time a full retry run can take.
func (c *Client) fetch(ctx context.Context, path, fullURL string) ([]byte, error) {
	if err := c.breaker.Allow(); err != nil {
		c.logger.WarnContext(ctx, "stats api circuit breaker rejected request", "path", path, "state", c.breaker.State())
		return nil, fmt.Errorf("%w: stats api is temporarily unavailable", usecase.ErrDependencyUnavailable)
	}

	flightCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.flightTimeout)
	defer cancel()

	raw, err := c.executeRequest(flightCtx, fullURL)
	switch {
	case err == nil, crerr.Is(err, errNotFound):
		c.breaker.RecordSuccess()
	case isCircuitFailure(err):
		c.breaker.RecordFailure()
	default:
		// Deadlines and rejected requests say nothing about upstream health.
		c.breaker.Release()
	}
	return raw, err
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = crerr.Wrapf(errTransient, "send request: %v", err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = crerr.Wrapf(errTransient, "read response body: %v", readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case resp.StatusCode == http.StatusNotFound:
				return nil, crerr.Wrapf(errNotFound, "provider status=%d", resp.StatusCode)
			case isRetryableStatus(resp.StatusCode):
				lastErr = crerr.Wrapf(errTransient, "provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			default:
				return nil, fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		timer := time.NewTimer(retryBackoff(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "stats api request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

// flightTimeout is every attempt timing out plus the backoff between them.
func flightTimeout(perAttempt time.Duration, maxRetries int) time.Duration {
	total := time.Duration(maxRetries+1) * perAttempt
	for attempt := 0; attempt < maxRetries; attempt++ {
		total += retryBackoff(attempt)
	}
	return total
}

func retryBackoff(attempt int) time.Duration {
	return time.Duration(attempt+1) * 500 * time.Millisecond
}

func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

func isCircuitFailure(err error) bool {
	return crerr.Is(err, errTransient)
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	body := strings.TrimSpace(string(raw))
	if len(body) <= limit {
		return body
	}
	return body[:limit] + "..."
}

func escape(id string) string {
	return url.PathEscape(strings.TrimSpace(id))
}

func setInt(values url.Values, key string, v int) {
	if v > 0 {
		values.Set(key, strconv.Itoa(v))
	}
}

func setString(values url.Values, key, v string) {
	if v = strings.TrimSpace(v); v != "" {
		values.Set(key, v)
	}
}
