package cache

import (
	"context"

	"terminal-weather/datasource"
	"terminal-weather/models"
)

// CachedReportSource wraps a ReportSource and keeps every fetched report for the
// lifetime of the process. Entries never expire. It is not safe for concurrent use.
type CachedReportSource struct {
	source         datasource.ReportSource
	cache          map[string]*models.WeatherReport // key is the location query
	cacheHitCount  int
	cacheMissCount int
}

// NewCachedReportSource creates a new cached wrapper around a report source
func NewCachedReportSource(source datasource.ReportSource) *CachedReportSource {
	return &CachedReportSource{
		source: source,
		cache:  make(map[string]*models.WeatherReport),
	}
}

// Name returns the name of the underlying source with a [Cached] suffix
func (c *CachedReportSource) Name() string {
	return c.source.Name() + " [Cached]"
}

// FetchReport returns the cached report for location, fetching it on first use.
// Failed fetches are not cached.
func (c *CachedReportSource) FetchReport(ctx context.Context, location models.Location) (*models.WeatherReport, error) {
	if report, found := c.cache[location.String()]; found {
		c.cacheHitCount++
		return report, nil
	}

	c.cacheMissCount++

	report, err := c.source.FetchReport(ctx, location)
	if err != nil {
		return nil, err
	}

	c.cache[location.String()] = report
	return report, nil
}

// Peek returns the cached report for location without fetching
func (c *CachedReportSource) Peek(location models.Location) (*models.WeatherReport, bool) {
	report, found := c.cache[location.String()]
	return report, found
}

// CacheStats returns statistics about cache hits and misses
func (c *CachedReportSource) CacheStats() (hits, misses int) {
	return c.cacheHitCount, c.cacheMissCount
}

// Ensure CachedReportSource implements the ReportSource interface
var _ datasource.ReportSource = (*CachedReportSource)(nil)
