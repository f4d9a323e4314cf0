package entity

import "github.com/paulmach/orb"

// CurrentWeather is the present condition at a location.
type CurrentWeather struct {
	TempC       int    `json:"temp"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Humidity    int    `json:"humidity"`
	WindKph     int    `json:"wind"`
	Location    string `json:"location"`
}

// DailyForecast is one day of the forecast window.
type DailyForecast struct {
	Date        string `json:"date"` // YYYY-MM-DD
	Day         string `json:"day"`  // short weekday name
	MinC        int    `json:"min"`
	MaxC        int    `json:"max"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// WeatherReport is the full payload the weather view consumes. Coordinates is
// the lon/lat point the report was fetched for, used as the cache key.
type WeatherReport struct {
	Coordinates orb.Point       `json:"coordinates"`
	Current     CurrentWeather  `json:"current"`
	Daily       []DailyForecast `json:"daily"`
}
