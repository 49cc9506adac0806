package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSchemaMismatch means the response body does not have the shape of a forecast report
	ErrSchemaMismatch = errors.New("response does not match the forecast schema")

	// ErrMissingField means a field the report relies on is absent
	ErrMissingField = fmt.Errorf("%w: missing field", ErrSchemaMismatch)
)

// Fields that must be present for the report to be usable.
var (
	requiredLocationFields = []string{"name"}
	requiredCurrentFields  = []string{
		"temp_c", "temp_f", "condition.text", "wind_mph", "wind_dir",
		"cloud", "feelslike_c", "feelslike_f", "gust_mph",
	}
	requiredDayFields = []string{
		"date",
		"day.maxtemp_c", "day.maxtemp_f", "day.mintemp_c", "day.mintemp_f",
		"day.totalprecip_mm", "day.totalprecip_in",
		"day.daily_chance_of_rain", "day.daily_chance_of_snow",
		"day.condition.text",
	}
)

// DecodeReport parses a forecast response body.
// The body must contain exactly ForecastDays days of HoursPerDay hours each,
// and every field exposed by Current.Fields and ForecastDay.Fields.
func DecodeReport(data []byte) (*WeatherReport, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
	}

	if err := checkShape(raw); err != nil {
		return nil, err
	}

	var report WeatherReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
	}

	return &report, nil
}

func checkShape(raw map[string]any) error {
	for section, fields := range map[string][]string{
		"location": requiredLocationFields,
		"current":  requiredCurrentFields,
	} {
		obj, ok := raw[section].(map[string]any)
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingField, section)
		}
		if err := requireFields(obj, section, fields); err != nil {
			return err
		}
	}

	v, ok := lookup(raw, "forecast.forecastday")
	if !ok {
		return fmt.Errorf("%w: forecast.forecastday", ErrMissingField)
	}
	days, ok := v.([]any)
	if !ok {
		return fmt.Errorf("%w: forecast.forecastday is not an array", ErrSchemaMismatch)
	}
	if len(days) != ForecastDays {
		return fmt.Errorf("%w: expected %d forecast days, got %d", ErrSchemaMismatch, ForecastDays, len(days))
	}

	for i, d := range days {
		prefix := fmt.Sprintf("forecast.forecastday[%d]", i)
		day, ok := d.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: %s is not an object", ErrSchemaMismatch, prefix)
		}
		if err := requireFields(day, prefix, requiredDayFields); err != nil {
			return err
		}

		hours, ok := day["hour"].([]any)
		if !ok {
			return fmt.Errorf("%w: %s.hour", ErrMissingField, prefix)
		}
		if len(hours) != HoursPerDay {
			return fmt.Errorf("%w: expected %d hours in %s, got %d", ErrSchemaMismatch, HoursPerDay, prefix, len(hours))
		}
	}

	return nil
}

// requireFields checks that every dotted path exists and is non-null under obj.
// prefix only names obj in error messages.
func requireFields(obj map[string]any, prefix string, paths []string) error {
	for _, path := range paths {
		v, ok := lookup(obj, path)
		if !ok || v == nil {
			return fmt.Errorf("%w: %s.%s", ErrMissingField, prefix, path)
		}
	}
	return nil
}

func lookup(obj map[string]any, path string) (any, bool) {
	var cur any = obj
	for _, key := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}
