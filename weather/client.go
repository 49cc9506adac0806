// Package weather answers current-conditions and forecast queries for one location,
// fetching the upstream report at most once.
package weather

import (
	"context"
	"errors"

	"terminal-weather/cache"
	"terminal-weather/datasource"
	"terminal-weather/models"
)

// ErrNotFetched is returned by accessors that need a report before one was fetched
var ErrNotFetched = errors.New("weather report has not been fetched")

// Client owns the report for a single location.
// The first FetchCurrent, FetchForecast or Report call fetches it; later calls reuse it.
type Client struct {
	location models.Location
	source   *cache.CachedReportSource
}

// NewClient creates a client for location backed by source.
// The API key is expected to be bound into source.
func NewClient(location models.Location, source datasource.ReportSource) (*Client, error) {
	if location.IsZero() {
		return nil, models.ErrEmptyLocation
	}
	return &Client{
		location: location,
		source:   cache.NewCachedReportSource(source),
	}, nil
}

// Location returns the query the client was configured with
func (c *Client) Location() models.Location {
	return c.location
}

// Report returns the typed report, fetching it on first use
func (c *Client) Report(ctx context.Context) (*models.WeatherReport, error) {
	return c.source.FetchReport(ctx, c.location)
}

// FetchCurrent returns the current conditions keyed by API field name
// (temp_c, temp_f, condition, wind_mph, wind_dir, cloud, feelslike_c, feelslike_f, gust_mph).
func (c *Client) FetchCurrent(ctx context.Context) (map[string]string, error) {
	report, err := c.Report(ctx)
	if err != nil {
		return nil, err
	}
	return report.Current.Fields(), nil
}

// FetchForecast returns one map per forecast day, in the order the API sent them
func (c *Client) FetchForecast(ctx context.Context) ([]map[string]string, error) {
	report, err := c.Report(ctx)
	if err != nil {
		return nil, err
	}

	days := make([]map[string]string, 0, len(report.Forecast.ForecastDay))
	for _, day := range report.Forecast.ForecastDay {
		days = append(days, day.Fields())
	}
	return days, nil
}

// ResolvedLocationName returns the place name the API matched.
// It never fetches; before the first fetch it returns ErrNotFetched.
func (c *Client) ResolvedLocationName() (string, error) {
	report, found := c.source.Peek(c.location)
	if !found {
		return "", ErrNotFetched
	}
	return report.Location.Name, nil
}

// FetchCount returns how many upstream fetches the client has made
func (c *Client) FetchCount() int {
	_, misses := c.source.CacheStats()
	return misses
}
