package weatherapi

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"terminal-weather/datasource"
	"terminal-weather/models"

	"resty.dev/v3"
)

// DefaultBaseURL is the WeatherAPI.com API root
const DefaultBaseURL = "http://api.weatherapi.com/v1"

const (
	currentParams  = "aqi=no"
	forecastParams = "days=3&aqi=no&alerts=no"
)

// Provider fetches forecast reports from WeatherAPI.com
type Provider struct {
	apiKey  string
	baseURL string
	client  *resty.Client
	logger  *log.Logger
}

// Ensure Provider implements datasource.ReportSource
var _ datasource.ReportSource = (*Provider)(nil)

// Option configures a Provider
type Option func(*Provider)

// WithBaseURL points the provider at another API root, e.g. a test server
func WithBaseURL(baseURL string) Option {
	return func(p *Provider) {
		if baseURL != "" {
			p.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithHTTPClient replaces the resty client used for requests
func WithHTTPClient(client *resty.Client) Option {
	return func(p *Provider) {
		if client != nil {
			p.client = client
		}
	}
}

// WithLogger enables request logging. The API key is never logged.
func WithLogger(logger *log.Logger) Option {
	return func(p *Provider) {
		p.logger = logger
	}
}

// NewProvider creates a new WeatherAPI.com provider for apiKey
func NewProvider(apiKey string, opts ...Option) *Provider {
	p := &Provider{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.client == nil {
		p.client = resty.New().SetHeader("Accept", "application/json")
	}
	return p
}

// Name returns the provider name
func (p *Provider) Name() string {
	return "WeatherAPI"
}

// Close releases the underlying HTTP client
func (p *Provider) Close() error {
	return p.client.Close()
}

// CurrentURL builds the current-conditions request URL for location
func (p *Provider) CurrentURL(location models.Location) string {
	return p.buildURL("current.json", p.apiKey, location, currentParams)
}

// ForecastURL builds the 3-day forecast request URL for location
func (p *Provider) ForecastURL(location models.Location) string {
	return p.buildURL("forecast.json", p.apiKey, location, forecastParams)
}

// buildURL keeps parameter order fixed: key, q, then the endpoint's own parameters
func (p *Provider) buildURL(endpoint, key string, location models.Location, extra string) string {
	return fmt.Sprintf("%s/%s?key=%s&q=%s&%s",
		p.baseURL, endpoint, url.QueryEscape(key), escapeLocation(location), extra)
}

// escapeLocation percent-encodes each comma-separated segment but keeps the commas,
// so "Ames,IA,USA" is sent verbatim and "New York,NY" becomes "New+York,NY".
func escapeLocation(location models.Location) string {
	segments := location.Segments()
	for i, s := range segments {
		segments[i] = url.QueryEscape(s)
	}
	return strings.Join(segments, ",")
}

// FetchReport gets current conditions and the 3-day forecast in a single request
func (p *Provider) FetchReport(ctx context.Context, location models.Location) (*models.WeatherReport, error) {
	if location.IsZero() {
		return nil, models.ErrEmptyLocation
	}

	if p.logger != nil {
		p.logger.Printf("GET %s", p.buildURL("forecast.json", "REDACTED", location, forecastParams))
	}

	resp, err := p.client.R().
		SetContext(ctx).
		Get(p.ForecastURL(location))
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	if p.logger != nil {
		p.logger.Printf("%s responded %s", p.Name(), resp.Status())
	}

	if !resp.IsSuccess() {
		return nil, newAPIError(resp.StatusCode(), resp.Bytes())
	}

	report, err := models.DecodeReport(resp.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	return report, nil
}
