package connector

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ggorockee/cookiemap/internal/apperr"
	"github.com/ggorockee/cookiemap/internal/logger"
	"github.com/ggorockee/cookiemap/internal/models"
	"golang.org/x/time/rate"
)

// maxBodyBytes upper bound on a search response
const maxBodyBytes = 4 << 20

// platform search APIs allow 2 requests per second per key
var defaultRateLimit = rate.Every(time.Second / 2)

// HTTPConnector live keyword search over a JSON HTTP API (GET only)
type HTTPConnector struct {
	platform   models.Platform
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	decode     func(body []byte) ([]models.RawPost, error)
}

func newHTTPConnector(p models.Platform, baseURL, apiKey string, timeout time.Duration, decode func([]byte) ([]models.RawPost, error)) *HTTPConnector {
	return &HTTPConnector{
		platform: p,
		baseURL:  baseURL,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(defaultRateLimit, 1),
		decode:  decode,
	}
}

// Platform origin tag
func (c *HTTPConnector) Platform() models.Platform {
	return c.platform
}

// Search GET {baseURL}?q=<keywords>; transport, status and decode failures are connector errors
func (c *HTTPConnector) Search(ctx context.Context, keywords []string) ([]models.RawPost, error) {
	log := logger.GetLogger("connector." + string(c.platform))

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, c.fail(fmt.Errorf("rate limit wait: %w", err))
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, c.fail(fmt.Errorf("invalid base URL: %w", err))
	}
	q := u.Query()
	q.Set("q", strings.Join(keywords, " "))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, c.fail(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	log.Infof("Fetching %s", u.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.fail(fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.fail(fmt.Errorf("unexpected status code %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, c.fail(fmt.Errorf("failed to read response: %w", err))
	}

	posts, err := c.decode(body)
	if err != nil {
		return nil, c.fail(fmt.Errorf("failed to decode response: %w", err))
	}

	log.Infof("search %v: %d posts", keywords, len(posts))
	return posts, nil
}

func (c *HTTPConnector) fail(err error) error {
	return apperr.Connector(string(c.platform), err)
}
