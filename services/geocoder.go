package services

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

// Geocoder resolves free-text address components to a coordinate pair.
// ok is false when no match was found or the lookup was skipped; enrichment
// callers must treat that as "leave the point unset", never as a failure.
type Geocoder interface {
	Forward(address, city, region string) (longitude, latitude float64, ok bool, err error)
}

// MapboxClient geocodes through the Mapbox Places API.
type MapboxClient struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

func NewMapboxClient(apiKey string) *MapboxClient {
	return &MapboxClient{
		APIKey:  apiKey,
		BaseURL: "https://api.mapbox.com",
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type mapboxFeature struct {
	Center []float64 `json:"center"` // [longitude, latitude]
}

type mapboxResponse struct {
	Features []mapboxFeature `json:"features"`
}

// Forward requests the single best match for the address. With no API key
// configured the lookup is skipped entirely.
func (m *MapboxClient) Forward(address, city, region string) (float64, float64, bool, error) {
	if m.APIKey == "" {
		return 0, 0, false, nil
	}

	query := url.PathEscape(address) + "," + url.PathEscape(city) + "," + url.PathEscape(region)
	geocodeURL := fmt.Sprintf("%s/geocoding/v5/mapbox.places/%s.json?access_token=%s&limit=1",
		m.BaseURL, query, url.QueryEscape(m.APIKey))

	resp, err := m.Client.Get(geocodeURL)
	if err != nil {
		return 0, 0, false, fmt.Errorf("geocode request failed: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Printf("[GEOCODE] ❌ Mapbox returned %d: %s", resp.StatusCode, string(body))
		return 0, 0, false, fmt.Errorf("geocoder non-200 response: %d", resp.StatusCode)
	}

	var out mapboxResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, 0, false, fmt.Errorf("failed to decode geocoder response: %w", err)
	}

	if len(out.Features) == 0 || len(out.Features[0].Center) < 2 {
		return 0, 0, false, nil
	}

	// Mapbox center is [longitude, latitude]; that order is preserved all the
	// way into the stored point.
	return out.Features[0].Center[0], out.Features[0].Center[1], true, nil
}
