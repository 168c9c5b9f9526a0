// Package places is a small client for the Google Places web service: a
// destination photo for trip cards and city autocomplete for the planner form.
package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"go.uber.org/zap"

	"tripweaver/pkg/utils"
)

const (
	defaultBaseURL = "https://maps.googleapis.com/maps/api/place"
	photoMaxWidth  = 1200
)

// HTTPClient interface for making HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Prediction struct {
	Description string `json:"description"`
	PlaceID     string `json:"place_id"`
}

type Client struct {
	apiKey     string
	baseURL    string
	httpClient HTTPClient
	logger     *zap.Logger
	attempts   uint
	delay      time.Duration
}

type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithRetry sets how often and how fast transient failures are retried.
func WithRetry(attempts uint, delay time.Duration) Option {
	return func(c *Client) {
		c.attempts = attempts
		c.delay = delay
	}
}

func NewClient(apiKey string, httpClient HTTPClient, logger *zap.Logger, opts ...Option) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if logger == nil {
		logger = zap.L()
	}
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: httpClient,
		logger:     logger,
		attempts:   3,
		delay:      200 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type apiStatus struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
}

// PhotoURL returns an image URL for the best text-search match of query, or
// "" when the place has no photos.
func (c *Client) PhotoURL(ctx context.Context, query string) (string, error) {
	var result struct {
		apiStatus
		Results []struct {
			Photos []struct {
				PhotoReference string `json:"photo_reference"`
			} `json:"photos"`
		} `json:"results"`
	}

	params := url.Values{"query": {query}}
	if err := c.call(ctx, "textsearch", params, &result); err != nil {
		return "", err
	}
	if err := checkStatus(result.apiStatus); err != nil {
		return "", err
	}

	for _, r := range result.Results {
		if len(r.Photos) == 0 || r.Photos[0].PhotoReference == "" {
			continue
		}
		photo := url.Values{
			"maxwidth":        {fmt.Sprint(photoMaxWidth)},
			"photo_reference": {r.Photos[0].PhotoReference},
			"key":             {c.apiKey},
		}
		return c.baseURL + "/photo?" + photo.Encode(), nil
	}
	return "", nil
}

// Predictions autocompletes city names for input.
func (c *Client) Predictions(ctx context.Context, input string) ([]Prediction, error) {
	var result struct {
		apiStatus
		Predictions []Prediction `json:"predictions"`
	}

	params := url.Values{"input": {input}, "types": {"(cities)"}}
	if err := c.call(ctx, "autocomplete", params, &result); err != nil {
		return nil, err
	}
	if err := checkStatus(result.apiStatus); err != nil {
		return nil, err
	}
	if result.Predictions == nil {
		return []Prediction{}, nil
	}
	return result.Predictions, nil
}

func (c *Client) call(ctx context.Context, endpoint string, params url.Values, out any) error {
	if c.apiKey == "" {
		return fmt.Errorf("%w: places api key", utils.ErrMissingCredentials)
	}
	params.Set("key", c.apiKey)
	apiURL := fmt.Sprintf("%s/%s/json?%s", c.baseURL, endpoint, params.Encode())

	var body []byte
	err := retry.Do(
		func() error {
			var fetchErr error
			body, fetchErr = c.fetch(ctx, apiURL)
			return fetchErr
		},
		retry.Context(ctx),
		retry.Attempts(c.attempts),
		retry.Delay(c.delay),
		retry.MaxDelay(5*time.Second),
		retry.DelayType(retry.FullJitterBackoffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			c.logger.Debug("retrying places request", zap.String("endpoint", endpoint), zap.Uint("attempt", n+1), zap.Error(err))
		}),
	)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", utils.ErrUpstreamLookup, endpoint, err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decode %s response: %v", utils.ErrUpstreamLookup, endpoint, err)
	}
	return nil
}

// fetch performs one request. Network errors, 429 and 5xx are retryable;
// any other non-200 status is not.
func (c *Client) fetch(ctx context.Context, apiURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, http.NoBody)
	if err != nil {
		return nil, retry.Unrecoverable(err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Debug("failed to close response body", zap.Error(err))
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	switch {
	case resp.StatusCode == http.StatusOK:
		return body, nil
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	default:
		return nil, retry.Unrecoverable(fmt.Errorf("HTTP %d", resp.StatusCode))
	}
}

var notEnabledSignatures = []string{
	"not enabled",
	"not activated",
	"legacy api",
	"has not been used in project",
}

func checkStatus(s apiStatus) error {
	switch s.Status {
	case "OK", "ZERO_RESULTS":
		return nil
	case "REQUEST_DENIED":
		lower := strings.ToLower(s.ErrorMessage)
		for _, sig := range notEnabledSignatures {
			if strings.Contains(lower, sig) {
				return fmt.Errorf("%w: %s", utils.ErrServiceNotEnabled, s.ErrorMessage)
			}
		}
	}
	return fmt.Errorf("%w: status %s: %s", utils.ErrUpstreamLookup, s.Status, s.ErrorMessage)
}

// IsServiceNotEnabled reports whether err means the Places API must be
// enabled for the key's project.
func IsServiceNotEnabled(err error) bool {
	return errors.Is(err, utils.ErrServiceNotEnabled)
}
