package weather

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"terminal-weather/models"
)

// Units selects which of the API's temperature fields are printed
type Units int

const (
	Imperial Units = iota
	Metric
)

func (u Units) symbol() string {
	if u == Metric {
		return "°C"
	}
	return "°F"
}

func (u Units) pick(celsius, fahrenheit string) string {
	if u == Metric {
		return celsius
	}
	return fahrenheit
}

// Summary is everything the terminal report prints
type Summary struct {
	LocationName string
	Current      map[string]string
	Forecast     []map[string]string
}

// BuildSummary fetches the report through c and collects the printed fields
func BuildSummary(ctx context.Context, c *Client) (Summary, error) {
	forecast, err := c.FetchForecast(ctx)
	if err != nil {
		return Summary{}, err
	}
	current, err := c.FetchCurrent(ctx)
	if err != nil {
		return Summary{}, err
	}
	name, err := c.ResolvedLocationName()
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		LocationName: name,
		Current:      current,
		Forecast:     forecast,
	}, nil
}

// WriteSummary renders s to w. Nothing is written unless every field is present.
func WriteSummary(w io.Writer, s Summary, units Units) error {
	var buf bytes.Buffer

	cur := fieldReader{section: "current", fields: s.Current}
	fmt.Fprintf(&buf, "\tIn %s it is %s%s and %s.\n",
		s.LocationName,
		cur.get(units.pick(models.FieldTempC, models.FieldTempF)),
		units.symbol(),
		strings.ToLower(cur.get(models.FieldCondition)),
	)
	fmt.Fprintf(&buf, "\tWind is %s mph out of the %s, with gusts up to %s mph.\n\tFeels like: %s degrees.\n\n",
		cur.get(models.FieldWindMph),
		cur.get(models.FieldWindDir),
		cur.get(models.FieldGustMph),
		cur.get(units.pick(models.FieldFeelsLikeC, models.FieldFeelsLikeF)),
	)
	if cur.err != nil {
		return cur.err
	}

	for i, fields := range s.Forecast {
		day := fieldReader{section: fmt.Sprintf("forecast day %d", i), fields: fields}
		fmt.Fprintf(&buf, "\t%s:\n\tHigh: %s, Low: %s\n\tChance of Rain/Snow: %s%%/%s%%\n\n",
			day.get(models.FieldDate),
			day.get(units.pick(models.FieldMaxTempC, models.FieldMaxTempF)),
			day.get(units.pick(models.FieldMinTempC, models.FieldMinTempF)),
			day.get(models.FieldDailyChanceOfRain),
			day.get(models.FieldDailyChanceOfSnow),
		)
		if day.err != nil {
			return day.err
		}
	}

	_, err := buf.WriteTo(w)
	return err
}

// fieldReader records the first missing key instead of failing on every lookup
type fieldReader struct {
	section string
	fields  map[string]string
	err     error
}

func (r *fieldReader) get(key string) string {
	v, ok := r.fields[key]
	if !ok && r.err == nil {
		r.err = fmt.Errorf("%w: %s %s", models.ErrMissingField, r.section, key)
	}
	return v
}
