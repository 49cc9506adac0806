package models

import "strconv"

// Keys of the current-conditions view
const (
	FieldTempC      = "temp_c"
	FieldTempF      = "temp_f"
	FieldCondition  = "condition"
	FieldWindMph    = "wind_mph"
	FieldWindDir    = "wind_dir"
	FieldCloud      = "cloud"
	FieldFeelsLikeC = "feelslike_c"
	FieldFeelsLikeF = "feelslike_f"
	FieldGustMph    = "gust_mph"
)

// Keys of the forecast-day view. FieldCondition is shared with the current view.
const (
	FieldDate              = "date"
	FieldMaxTempC          = "maxtemp_c"
	FieldMaxTempF          = "maxtemp_f"
	FieldMinTempC          = "mintemp_c"
	FieldMinTempF          = "mintemp_f"
	FieldTotalPrecipMm     = "totalprecip_mm"
	FieldTotalPrecipIn     = "totalprecip_in"
	FieldDailyChanceOfRain = "daily_chance_of_rain"
	FieldDailyChanceOfSnow = "daily_chance_of_snow"
)

// Fields renders the current conditions as strings keyed by API field name
func (c Current) Fields() map[string]string {
	return map[string]string{
		FieldTempC:      FormatNumber(c.TempC),
		FieldTempF:      FormatNumber(c.TempF),
		FieldCondition:  c.Condition.Text,
		FieldWindMph:    FormatNumber(c.WindMph),
		FieldWindDir:    c.WindDir,
		FieldCloud:      FormatNumber(c.Cloud),
		FieldFeelsLikeC: FormatNumber(c.FeelsLikeC),
		FieldFeelsLikeF: FormatNumber(c.FeelsLikeF),
		FieldGustMph:    FormatNumber(c.GustMph),
	}
}

// Fields renders the day summary as strings keyed by API field name
func (d ForecastDay) Fields() map[string]string {
	return map[string]string{
		FieldDate:              d.Date,
		FieldMaxTempC:          FormatNumber(d.Day.MaxTempC),
		FieldMaxTempF:          FormatNumber(d.Day.MaxTempF),
		FieldMinTempC:          FormatNumber(d.Day.MinTempC),
		FieldMinTempF:          FormatNumber(d.Day.MinTempF),
		FieldTotalPrecipMm:     FormatNumber(d.Day.TotalPrecipMm),
		FieldTotalPrecipIn:     FormatNumber(d.Day.TotalPrecipIn),
		FieldDailyChanceOfRain: FormatNumber(d.Day.DailyChanceOfRain),
		FieldDailyChanceOfSnow: FormatNumber(d.Day.DailyChanceOfSnow),
		FieldCondition:         d.Day.Condition.Text,
	}
}

// FormatNumber prints v with the fewest digits that represent it exactly (72, 72.5)
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
