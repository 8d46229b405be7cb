package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const geocodeBody = `{
	"results": [
		{"name": "Nashik", "country": "India", "latitude": 19.99, "longitude": 73.78}
	]
}`

const forecastBody = `{
	"current": {
		"temperature_2m": 27.4,
		"relative_humidity_2m": 61,
		"wind_speed_10m": 12.3,
		"weather_code": 2
	},
	"daily": {
		"time": ["2026-08-25", "2026-08-26"],
		"temperature_2m_min": [21.1, 20.4],
		"temperature_2m_max": [29.8, 28.2],
		"precipitation_sum": [0, 4.6],
		"weather_code": [1, 63]
	}
}`

func testClient(t *testing.T, geocode, forecast string) *Client {
	t.Helper()

	geo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(geocode))
	}))
	t.Cleanup(geo.Close)

	fc := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(forecast))
	}))
	t.Cleanup(fc.Close)

	c := New(http.DefaultClient)
	c.Geocode = geo.URL
	c.Forecast = fc.URL
	return c
}

func TestLookup(t *testing.T) {
	c := testClient(t, geocodeBody, forecastBody)

	report, err := c.Lookup(context.Background(), "nashik")
	require.NoError(t, err)

	assert.Equal(t, "Nashik", report.Place)
	assert.Equal(t, "India", report.Country)
	assert.Equal(t, "partly cloudy", report.Condition)
	assert.Equal(t, 27.4, report.TempC)
	assert.Equal(t, 61.0, report.Humidity)

	require.Len(t, report.Days, 2)
	assert.Equal(t, "2026-08-26", report.Days[1].Date)
	assert.Equal(t, "rain", report.Days[1].Condition)
	assert.Equal(t, 4.6, report.Days[1].RainMM)
}

func TestLookupNoResults(t *testing.T) {
	c := testClient(t, `{"results": []}`, forecastBody)

	_, err := c.Lookup(context.Background(), "nowhere")
	assert.ErrorContains(t, err, "no location found")
}

func TestLookupEmptyPlace(t *testing.T) {
	c := New(http.DefaultClient)

	_, err := c.Lookup(context.Background(), "   ")
	assert.ErrorContains(t, err, "place is required")
}

func TestLookupMisalignedForecast(t *testing.T) {
	broken := `{
		"current": {"temperature_2m": 20, "weather_code": 0},
		"daily": {
			"time": ["2026-08-25", "2026-08-26"],
			"temperature_2m_min": [21.1],
			"temperature_2m_max": [29.8],
			"precipitation_sum": [0],
			"weather_code": [1]
		}
	}`
	c := testClient(t, geocodeBody, broken)

	_, err := c.Lookup(context.Background(), "nashik")
	assert.ErrorContains(t, err, "misaligned")
}

func TestCondition(t *testing.T) {
	assert.Equal(t, "clear", condition(0))
	assert.Equal(t, "overcast", condition(3))
	assert.Equal(t, "rain", condition(63))
	assert.Equal(t, "thunderstorm", condition(95))
}
