package models

// ForecastDays is the number of days requested from the forecast endpoint
const ForecastDays = 3

// HoursPerDay is the number of hourly entries in each forecast day
const HoursPerDay = 24

// WeatherReport is the WeatherAPI.com forecast response for one location.
// It carries both the current conditions and the 3-day forecast.
type WeatherReport struct {
	Location ResolvedLocation `json:"location"`
	Current  Current          `json:"current"`
	Forecast Forecast         `json:"forecast"`
}

// ResolvedLocation is the place the API matched the query to
type ResolvedLocation struct {
	Name           string  `json:"name"`
	Region         string  `json:"region"`
	Country        string  `json:"country"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
	TzID           string  `json:"tz_id"`
	LocaltimeEpoch int64   `json:"localtime_epoch"`
	Localtime      string  `json:"localtime"`
}

// Condition is the textual weather condition
type Condition struct {
	Text string `json:"text"`
}

// Current is a point-in-time reading
type Current struct {
	LastUpdatedEpoch int64     `json:"last_updated_epoch"`
	LastUpdated      string    `json:"last_updated"`
	TempC            float64   `json:"temp_c"`
	TempF            float64   `json:"temp_f"`
	IsDay            int       `json:"is_day"`
	Condition        Condition `json:"condition"`
	WindMph          float64   `json:"wind_mph"`
	WindDir          string    `json:"wind_dir"`
	Cloud            float64   `json:"cloud"`
	FeelsLikeC       float64   `json:"feelslike_c"`
	FeelsLikeF       float64   `json:"feelslike_f"`
	UV               float64   `json:"uv"`
	GustMph          float64   `json:"gust_mph"`
}

// Forecast holds exactly ForecastDays days
type Forecast struct {
	ForecastDay [ForecastDays]ForecastDay `json:"forecastday"`
}

// ForecastDay is the summary, astronomy and hourly detail for one date
type ForecastDay struct {
	Date  string                    `json:"date"`
	Day   DailyValues               `json:"day"`
	Astro Astro                     `json:"astro"`
	Hour  [HoursPerDay]HourlyValues `json:"hour"`
}

// DailyValues are the day's summary statistics
type DailyValues struct {
	MaxTempC          float64   `json:"maxtemp_c"`
	MaxTempF          float64   `json:"maxtemp_f"`
	MinTempC          float64   `json:"mintemp_c"`
	MinTempF          float64   `json:"mintemp_f"`
	TotalPrecipMm     float64   `json:"totalprecip_mm"`
	TotalPrecipIn     float64   `json:"totalprecip_in"`
	AvgVisMiles       float64   `json:"avgvis_miles"`
	DailyWillItRain   float64   `json:"daily_will_it_rain"`
	DailyChanceOfRain float64   `json:"daily_chance_of_rain"`
	DailyWillItSnow   float64   `json:"daily_will_it_snow"`
	DailyChanceOfSnow float64   `json:"daily_chance_of_snow"`
	Condition         Condition `json:"condition"`
}

// Astro holds local sunrise and sunset, e.g. "07:24 AM"
type Astro struct {
	Sunrise string `json:"sunrise"`
	Sunset  string `json:"sunset"`
}

// HourlyValues is one hour of a forecast day. Parsed but not printed.
type HourlyValues struct {
	Time       string    `json:"time"`
	TempC      float64   `json:"temp_c"`
	TempF      float64   `json:"temp_f"`
	IsDay      int       `json:"is_day"`
	Condition  Condition `json:"condition"`
	WindMph    float64   `json:"wind_mph"`
	WindDir    string    `json:"wind_dir"`
	Cloud      float64   `json:"cloud"`
	FeelsLikeC float64   `json:"feelslike_c"`
	FeelsLikeF float64   `json:"feelslike_f"`
}
