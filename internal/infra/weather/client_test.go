package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"saathi/config"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const forecastPayload = `{
  "location": {"name": "Jaipur", "region": "Rajasthan"},
  "current": {
    "temp_c": 31.4,
    "humidity": 48,
    "wind_kph": 12.6,
    "condition": {"text": "Sunny", "code": 1000}
  },
  "forecast": {
    "forecastday": [
      {"date": "2026-09-01", "day": {"mintemp_c": 24.1, "maxtemp_c": 33.8, "condition": {"text": "Sunny", "code": 1000}}},
      {"date": "2026-09-02", "day": {"mintemp_c": 23.6, "maxtemp_c": 32.2, "condition": {"text": "Patchy rain possible", "code": 1063}}},
      {"date": "2026-09-03", "day": {"mintemp_c": 22.9, "maxtemp_c": 30.5, "condition": {"text": "Overcast", "code": 1009}}}
    ]
  }
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *client) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{Weather: &config.WeatherConfig{APIKey: "test-key", BaseURL: server.URL}}
	svc, err := NewClient(cfg)
	require.NoError(t, err)

	return server, svc.(*client)
}

func TestClient_Forecast(t *testing.T) {
	var gotQuery string
	_, weatherClient := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(forecastPayload))
	})

	point := orb.Point{75.7873, 26.9124}
	report, err := weatherClient.Forecast(context.Background(), point)
	require.NoError(t, err)

	assert.Contains(t, gotQuery, "key=test-key")
	assert.Contains(t, gotQuery, "days=3")

	assert.Equal(t, point, report.Coordinates)
	assert.Equal(t, 31, report.Current.TempC)
	assert.Equal(t, "Sun", report.Current.Icon)
	assert.Equal(t, 13, report.Current.WindKph)
	assert.Equal(t, "Jaipur, Rajasthan", report.Current.Location)

	require.Len(t, report.Daily, 3)
	assert.Equal(t, "Tue", report.Daily[0].Day)
	assert.Equal(t, "CloudRain", report.Daily[1].Icon)
	assert.Equal(t, "Cloud", report.Daily[2].Icon)
}

func TestClient_ForecastAPIError(t *testing.T) {
	_, weatherClient := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": {"message": "API key is invalid."}}`))
	})

	_, err := weatherClient.Forecast(context.Background(), orb.Point{75.0, 26.0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key is invalid")
}

func TestClient_MissingAPIKey(t *testing.T) {
	_, err := NewClient(&config.Config{})
	assert.Error(t, err)
}

func TestMapConditionToIcon(t *testing.T) {
	cases := map[int]string{
		1000: "Sun",
		1003: "CloudSun",
		1006: "Cloud",
		1009: "Cloud",
		1063: "CloudRain",
		1195: "CloudRain",
		1276: "CloudRain",
		1066: "CloudSnow",
		1225: "CloudSnow",
		1030: "CloudSun", // Mist falls through to the default.
	}
	for code, want := range cases {
		assert.Equal(t, want, mapConditionToIcon(code), "code %d", code)
	}
}
