package datasource

import (
	"context"

	"terminal-weather/models"
)

// ReportSource is anything that can fetch a forecast report for a location
type ReportSource interface {
	Name() string
	FetchReport(ctx context.Context, location models.Location) (*models.WeatherReport, error)
}
