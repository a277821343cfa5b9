package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// metarResponse is the subset of an aviationweather.gov METAR record we use
type metarResponse struct {
	ICAO  string `json:"icaoId"`
	RawOb string `json:"rawOb"`
}

// tafResponse is the subset of an aviationweather.gov TAF record we use
type tafResponse struct {
	ICAO   string `json:"icaoId"`
	RawTAF string `json:"rawTAF"`
}

// FetchResult is the outcome of fetching one report
type FetchResult struct {
	Report RawReport
	Err    error
}

// Client fetches raw METAR and TAF reports from aviationweather.gov
type Client struct {
	config     UpstreamConfig
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *zap.Logger
}

// NewClient creates a new upstream weather client
func NewClient(config UpstreamConfig, logger *zap.Logger) *Client {
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.RequestTimeoutSeconds) * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(config.RequestsPerSecond), config.Burst),
		logger:  logger.Named("weather-client"),
	}
}

// FetchMETAR fetches the latest raw METAR for a station
func (c *Client) FetchMETAR(ctx context.Context, icao string) (RawReport, error) {
	query := url.Values{
		"ids":    {icao},
		"format": {"json"},
	}
	if c.config.METARHours > 0 {
		query.Set("hours", strconv.Itoa(c.config.METARHours))
	}

	var result []metarResponse
	if err := c.fetchWithRetry(ctx, "metar", query, KindMETAR, icao, &result); err != nil {
		return RawReport{}, err
	}

	for _, m := range result {
		if raw := strings.TrimSpace(m.RawOb); raw != "" {
			return RawReport{Kind: KindMETAR, Text: raw, StationID: icao}, nil
		}
	}
	return RawReport{}, fmt.Errorf("%w: no METAR found for %s", ErrNoData, icao)
}

// FetchTAF fetches the latest raw TAF for a station
func (c *Client) FetchTAF(ctx context.Context, icao string) (RawReport, error) {
	query := url.Values{
		"ids":    {icao},
		"format": {"json"},
	}

	var result []tafResponse
	if err := c.fetchWithRetry(ctx, "taf", query, KindTAF, icao, &result); err != nil {
		return RawReport{}, err
	}

	for _, t := range result {
		if raw := strings.TrimSpace(t.RawTAF); raw != "" {
			return RawReport{Kind: KindTAF, Text: raw, StationID: icao}, nil
		}
	}
	return RawReport{}, fmt.Errorf("%w: no TAF found for %s", ErrNoData, icao)
}

// FetchReports fetches the METAR and TAF for a station concurrently. A
// failure of one request does not cancel the other.
func (c *Client) FetchReports(ctx context.Context, icao string) (metar, taf FetchResult) {
	var g errgroup.Group

	g.Go(func() error {
		metar.Report, metar.Err = c.FetchMETAR(ctx, icao)
		return nil
	})
	g.Go(func() error {
		taf.Report, taf.Err = c.FetchTAF(ctx, icao)
		return nil
	})

	_ = g.Wait()
	return metar, taf
}

// fetchWithRetry performs a GET with retries and exponential backoff,
// decoding the JSON body into target
func (c *Client) fetchWithRetry(ctx context.Context, endpoint string, query url.Values, kind ReportKind, icao string, target any) error {
	reqURL := fmt.Sprintf("%s/%s?%s", strings.TrimRight(c.config.APIBaseURL, "/"), endpoint, query.Encode())
	log := c.logger.With(zap.String("type", string(kind)), zap.String("airport", icao))

	var lastErr error
	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(500*(1<<uint(attempt-1))) * time.Millisecond
			log.Info("Retrying weather data fetch",
				zap.Int("attempt", attempt),
				zap.Duration("backoff", backoff))

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit wait canceled: %w", err)
		}

		lastErr = c.fetchOnce(ctx, reqURL, target)
		if lastErr == nil {
			if attempt > 0 {
				log.Info("Fetched weather data after retries", zap.Int("attempts_needed", attempt+1))
			}
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		log.Warn("Weather API request failed, may retry",
			zap.Error(lastErr),
			zap.Int("attempt", attempt+1),
			zap.Int("max_attempts", c.config.MaxRetries+1))
	}

	log.Error("All attempts to fetch weather data failed",
		zap.Error(lastErr),
		zap.Int("max_attempts", c.config.MaxRetries+1))
	return fmt.Errorf("%w: %w", ErrUpstreamFailure, lastErr)
}

func (c *Client) fetchOnce(ctx context.Context, reqURL string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error making request to weather API: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNoContent:
		// aviationweather.gov answers 204 when a station has no reports
		return json.Unmarshal([]byte("[]"), target)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("error decoding weather data: %w", err)
	}
	return nil
}
