package openmeteo

type ForecastAPIResponse struct {
	Latitude             float64     `json:"latitude"`
	Longitude            float64     `json:"longitude"`
	GenerationTimeMs     float64     `json:"generationtime_ms"`
	UtcOffsetSeconds     int         `json:"utc_offset_seconds"`
	Timezone             string      `json:"timezone"`
	TimezoneAbbreviation string      `json:"timezone_abbreviation"`
	Elevation            float64     `json:"elevation"`
	HourlyUnits          HourlyUnits `json:"hourly_units"`
	Hourly               Hourly      `json:"hourly"`
	DailyUnits           DailyUnits  `json:"daily_units"`
	Daily                Daily       `json:"daily"`
}

type HourlyUnits struct {
	Time          string `json:"time"`
	Temperature2M string `json:"temperature_2m"`
	WindSpeed10M  string `json:"wind_speed_10m"`
	WeatherCode   string `json:"weather_code"`
}

type Hourly struct {
	Time          []string  `json:"time"`
	Temperature2M []float64 `json:"temperature_2m"`
	WindSpeed10M  []float64 `json:"wind_speed_10m"`
	WeatherCode   []int     `json:"weather_code"`
}

type DailyUnits struct {
	Time             string `json:"time"`
	Temperature2MMax string `json:"temperature_2m_max"`
	Temperature2MMin string `json:"temperature_2m_min"`
	PrecipitationSum string `json:"precipitation_sum"`
	WeatherCode      string `json:"weather_code"`
}

type Daily struct {
	Time             []string  `json:"time"`
	Temperature2MMax []float64 `json:"temperature_2m_max"`
	Temperature2MMin []float64 `json:"temperature_2m_min"`
	PrecipitationSum []float64 `json:"precipitation_sum"`
	WeatherCode      []int     `json:"weather_code"`
}

type GeocodingAPIResponse struct {
	Results          []GeocodingResult `json:"results"`
	GenerationTimeMs float64           `json:"generationtime_ms"`
}

type GeocodingResult struct {
	Id          int     `json:"id"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Elevation   float64 `json:"elevation"`
	FeatureCode string  `json:"feature_code"`
	CountryCode string  `json:"country_code"`
	Country     string  `json:"country"`
	Admin1      string  `json:"admin1"`
	Timezone    string  `json:"timezone"`
	Population  int     `json:"population"`
}
