package types

// WeatherCode represents a WMO weather code
type WeatherCode int

// Weather code constants
const (
	ClearSky                     WeatherCode = 0
	MainlyClear                  WeatherCode = 1
	PartlyCloudy                 WeatherCode = 2
	Overcast                     WeatherCode = 3
	Fog                          WeatherCode = 45
	DepositingRimeFog            WeatherCode = 48
	DrizzleLight                 WeatherCode = 51
	DrizzleModerate              WeatherCode = 53
	DrizzleDense                 WeatherCode = 55
	FreezingDrizzleLight         WeatherCode = 56
	FreezingDrizzleDense         WeatherCode = 57
	RainSlight                   WeatherCode = 61
	RainModerate                 WeatherCode = 63
	RainHeavy                    WeatherCode = 65
	FreezingRainLight            WeatherCode = 66
	FreezingRainHeavy            WeatherCode = 67
	SnowFallSlight               WeatherCode = 71
	SnowFallModerate             WeatherCode = 73
	SnowFallHeavy                WeatherCode = 75
	SnowGrains                   WeatherCode = 77
	RainShowersSlight            WeatherCode = 80
	RainShowersModerate          WeatherCode = 81
	RainShowersViolent           WeatherCode = 82
	SnowShowersSlight            WeatherCode = 85
	SnowShowersHeavy             WeatherCode = 86
	ThunderstormSlightOrModerate WeatherCode = 95
	ThunderstormWithSlightHail   WeatherCode = 96
	ThunderstormWithHeavyHail    WeatherCode = 99
)

// Condition is the display form of a weather code. Icon is the pictogram used
// in HTML; Glyph is a short ASCII stand-in for surfaces without emoji fonts.
type Condition struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Glyph       string `json:"glyph"`
}

// Unknown is returned for codes missing from the table
var Unknown = Condition{Description: "Unknown", Icon: "❓", Glyph: "?"}

// conditions is the single lookup table shared by the dashboard and the chart
var conditions = map[WeatherCode]Condition{
	ClearSky:                     {"Clear sky", "☀️", "SUN"},
	MainlyClear:                  {"Mainly clear", "🌤️", "SUN"},
	PartlyCloudy:                 {"Partly cloudy", "⛅", "PCL"},
	Overcast:                     {"Overcast", "☁️", "OVC"},
	Fog:                          {"Fog", "🌫️", "FOG"},
	DepositingRimeFog:            {"Rime fog", "🌫️", "FOG"},
	DrizzleLight:                 {"Light drizzle", "🌦️", "DZ"},
	DrizzleModerate:              {"Moderate drizzle", "🌦️", "DZ"},
	DrizzleDense:                 {"Dense drizzle", "🌦️", "DZ"},
	FreezingDrizzleLight:         {"Light freezing drizzle", "🌧️", "FZDZ"},
	FreezingDrizzleDense:         {"Dense freezing drizzle", "🌧️", "FZDZ"},
	RainSlight:                   {"Light rain", "🌧️", "RA"},
	RainModerate:                 {"Moderate rain", "🌧️", "RA"},
	RainHeavy:                    {"Heavy rain", "🌧️", "RA"},
	FreezingRainLight:            {"Light freezing rain", "🌧️", "FZRA"},
	FreezingRainHeavy:            {"Heavy freezing rain", "🌧️", "FZRA"},
	SnowFallSlight:               {"Snow", "❄️", "SN"},
	SnowFallModerate:             {"Moderate snow", "❄️", "SN"},
	SnowFallHeavy:                {"Heavy snow", "❄️", "SN"},
	SnowGrains:                   {"Snow grains", "❄️", "SG"},
	RainShowersSlight:            {"Rain showers", "🌦️", "SHRA"},
	RainShowersModerate:          {"Moderate rain showers", "🌦️", "SHRA"},
	RainShowersViolent:           {"Violent rain showers", "🌧️", "SHRA"},
	SnowShowersSlight:            {"Snow showers", "🌨️", "SHSN"},
	SnowShowersHeavy:             {"Heavy snow showers", "🌨️", "SHSN"},
	ThunderstormSlightOrModerate: {"Thunderstorm", "⛈️", "TS"},
	ThunderstormWithSlightHail:   {"Thunderstorm with slight hail", "⛈️", "TSGR"},
	ThunderstormWithHeavyHail:    {"Thunderstorm with heavy hail", "⛈️", "TSGR"},
}

// LookupCondition returns the condition for a code, or Unknown. It never fails.
func LookupCondition(code WeatherCode) Condition {
	if c, ok := conditions[code]; ok {
		return c
	}
	return Unknown
}

// Known reports whether the code has an entry in the table
func (c WeatherCode) Known() bool {
	_, ok := conditions[c]
	return ok
}

func (c WeatherCode) Condition() Condition {
	return LookupCondition(c)
}
