// Package weather fetches current conditions and a short forecast from
// the Open-Meteo public API.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const (
	geocodeURL  = "https://geocoding-api.open-meteo.com/v1/search"
	forecastURL = "https://api.open-meteo.com/v1/forecast"
)

// Client queries the weather API. The zero value is not usable; use
// New. Base URLs are swappable for tests.
type Client struct {
	HTTP     *http.Client
	Geocode  string
	Forecast string
}

func New(client *http.Client) *Client {
	return &Client{
		HTTP:     client,
		Geocode:  geocodeURL,
		Forecast: forecastURL,
	}
}

// Report is the decoded weather for one resolved place.
type Report struct {
	Place     string
	Country   string
	Condition string
	TempC     float64
	WindKPH   float64
	Humidity  float64
	Days      []Day
}

// Day is one forecast day.
type Day struct {
	Date      string
	Condition string
	MinC      float64
	MaxC      float64
	RainMM    float64
}

func (r Report) Validate() error {
	if strings.TrimSpace(r.Place) == "" {
		return fmt.Errorf("report has no place")
	}
	if len(r.Days) > 16 {
		return fmt.Errorf("report has %d forecast days, expected at most 16", len(r.Days))
	}
	return nil
}

type geocodeResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Country   string  `json:"country"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"results"`
}

type forecastResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		Humidity    float64 `json:"relative_humidity_2m"`
		WindSpeed   float64 `json:"wind_speed_10m"`
		WeatherCode int     `json:"weather_code"`
	} `json:"current"`
	Daily struct {
		Time          []string  `json:"time"`
		MinC          []float64 `json:"temperature_2m_min"`
		MaxC          []float64 `json:"temperature_2m_max"`
		Precipitation []float64 `json:"precipitation_sum"`
		WeatherCode   []int     `json:"weather_code"`
	} `json:"daily"`
}

// Lookup geocodes the place name and fetches its current conditions
// plus a four day forecast.
func (c *Client) Lookup(ctx context.Context, place string) (Report, error) {
	place = strings.TrimSpace(place)
	if place == "" {
		return Report{}, fmt.Errorf("place is required")
	}

	var geo geocodeResponse
	q := url.Values{"name": {place}, "count": {"1"}}
	if err := c.get(ctx, c.Geocode+"?"+q.Encode(), &geo); err != nil {
		return Report{}, fmt.Errorf("could not geocode %q: %w", place, err)
	}
	if len(geo.Results) == 0 {
		return Report{}, fmt.Errorf("no location found for %q", place)
	}
	loc := geo.Results[0]

	q = url.Values{
		"latitude":      {fmt.Sprintf("%.4f", loc.Latitude)},
		"longitude":     {fmt.Sprintf("%.4f", loc.Longitude)},
		"current":       {"temperature_2m,relative_humidity_2m,wind_speed_10m,weather_code"},
		"daily":         {"temperature_2m_min,temperature_2m_max,precipitation_sum,weather_code"},
		"forecast_days": {"4"},
		"timezone":      {"auto"},
	}
	var fc forecastResponse
	if err := c.get(ctx, c.Forecast+"?"+q.Encode(), &fc); err != nil {
		return Report{}, fmt.Errorf("could not fetch forecast: %w", err)
	}

	report := Report{
		Place:     loc.Name,
		Country:   loc.Country,
		Condition: condition(fc.Current.WeatherCode),
		TempC:     fc.Current.Temperature,
		WindKPH:   fc.Current.WindSpeed,
		Humidity:  fc.Current.Humidity,
	}
	for i, date := range fc.Daily.Time {
		if i >= len(fc.Daily.MinC) || i >= len(fc.Daily.MaxC) ||
			i >= len(fc.Daily.Precipitation) || i >= len(fc.Daily.WeatherCode) {
			return Report{}, fmt.Errorf("forecast arrays are misaligned at day %d", i)
		}
		report.Days = append(report.Days, Day{
			Date:      date,
			Condition: condition(fc.Daily.WeatherCode[i]),
			MinC:      fc.Daily.MinC[i],
			MaxC:      fc.Daily.MaxC[i],
			RainMM:    fc.Daily.Precipitation[i],
		})
	}

	return report, report.Validate()
}

func (c *Client) get(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	res, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", res.Status)
	}
	return json.NewDecoder(res.Body).Decode(v)
}

// condition maps WMO weather codes to a short label.
func condition(code int) string {
	switch {
	case code == 0:
		return "clear"
	case code <= 2:
		return "partly cloudy"
	case code == 3:
		return "overcast"
	case code <= 48:
		return "fog"
	case code <= 57:
		return "drizzle"
	case code <= 67:
		return "rain"
	case code <= 77:
		return "snow"
	case code <= 82:
		return "rain showers"
	case code <= 86:
		return "snow showers"
	default:
		return "thunderstorm"
	}
}
