// Package weather implements the forecast boundary against weatherapi.com.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"saathi/config"
	"saathi/internal/domain/entity"
	"saathi/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

const (
	defaultBaseURL = "https://api.weatherapi.com/v1"
	forecastDays   = 3
	requestTimeout = 10 * time.Second
)

// client implements service.WeatherService over the weatherapi.com
// forecast.json endpoint.
type client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient is the constructor for the weatherapi.com client.
func NewClient(cfg *config.Config) (service.WeatherService, error) {
	if cfg.Weather == nil || cfg.Weather.APIKey == "" {
		return nil, errors.New("weather api key must be provided")
	}

	baseURL := cfg.Weather.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &client{
		apiKey:     cfg.Weather.APIKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}, nil
}

// forecastResponse mirrors the subset of the weatherapi.com payload we read.
type forecastResponse struct {
	Location struct {
		Name   string `json:"name"`
		Region string `json:"region"`
	} `json:"location"`
	Current struct {
		TempC     float64 `json:"temp_c"`
		Humidity  int     `json:"humidity"`
		WindKph   float64 `json:"wind_kph"`
		Condition struct {
			Text string `json:"text"`
			Code int    `json:"code"`
		} `json:"condition"`
	} `json:"current"`
	Forecast struct {
		ForecastDay []struct {
			Date string `json:"date"`
			Day  struct {
				MinTempC  float64 `json:"mintemp_c"`
				MaxTempC  float64 `json:"maxtemp_c"`
				Condition struct {
					Text string `json:"text"`
					Code int    `json:"code"`
				} `json:"condition"`
			} `json:"day"`
		} `json:"forecastday"`
	} `json:"forecast"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Forecast fetches the current conditions and 3-day forecast for a point.
func (c *client) Forecast(ctx context.Context, point orb.Point) (*entity.WeatherReport, error) {
	query := url.Values{}
	query.Set("key", c.apiKey)
	query.Set("q", fmt.Sprintf("%f,%f", point.Lat(), point.Lon()))
	query.Set("days", fmt.Sprintf("%d", forecastDays))
	query.Set("aqi", "no")
	query.Set("alerts", "no")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/forecast.json?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build weather request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "weather request failed")
	}
	defer resp.Body.Close()

	var payload forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode weather response")
	}
	if payload.Error != nil {
		return nil, errors.Errorf("weather api error: %s", payload.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("weather api returned status %d", resp.StatusCode)
	}

	report := &entity.WeatherReport{
		Coordinates: point,
		Current: entity.CurrentWeather{
			TempC:       int(payload.Current.TempC + 0.5),
			Description: payload.Current.Condition.Text,
			Icon:        mapConditionToIcon(payload.Current.Condition.Code),
			Humidity:    payload.Current.Humidity,
			WindKph:     int(payload.Current.WindKph + 0.5),
			Location:    payload.Location.Name + ", " + payload.Location.Region,
		},
	}

	for _, day := range payload.Forecast.ForecastDay {
		report.Daily = append(report.Daily, entity.DailyForecast{
			Date:        day.Date,
			Day:         shortWeekday(day.Date),
			MinC:        int(day.Day.MinTempC + 0.5),
			MaxC:        int(day.Day.MaxTempC + 0.5),
			Icon:        mapConditionToIcon(day.Day.Condition.Code),
			Description: day.Day.Condition.Text,
		})
	}

	return report, nil
}

// mapConditionToIcon maps weatherapi.com condition codes to the icon keys the
// client renders. Codes per weatherapi.com/docs/weather_conditions.json.
func mapConditionToIcon(code int) string {
	switch {
	case code == 1000:
		return "Sun"
	case code == 1003:
		return "CloudSun"
	case code == 1006 || code == 1009:
		return "Cloud"
	case code == 1063 || (code >= 1150 && code <= 1153) ||
		(code >= 1180 && code <= 1195) || (code >= 1240 && code <= 1246):
		return "CloudRain"
	case code == 1087 || code == 1273 || code == 1276:
		// Thunderstorms render as rain.
		return "CloudRain"
	case code == 1066 || code == 1114 || code == 1117 || (code >= 1210 && code <= 1225):
		return "CloudSnow"
	default:
		// Mist, fog and the rest.
		return "CloudSun"
	}
}

func shortWeekday(date string) string {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ""
	}

	return parsed.Format("Mon")
}
