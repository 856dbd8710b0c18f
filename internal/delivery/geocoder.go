package delivery

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"
)

// GeoResult is one geocoding answer. Valid is false when the provider
// could not place the address.
type GeoResult struct {
	Valid            bool
	Lat              float64
	Lon              float64
	FormattedAddress string
}

// Geocoder resolves a postal address to coordinates.
type Geocoder interface {
	Resolve(ctx context.Context, address string) (GeoResult, error)
}

const defaultGeocoderURL = "https://nominatim.openstreetmap.org/search"

// HTTPGeocoder talks to a Nominatim-compatible search endpoint.
type HTTPGeocoder struct {
	apiURL string
	client *http.Client
}

func NewHTTPGeocoder() *HTTPGeocoder {
	apiURL := os.Getenv("GEOCODER_URL")
	if apiURL == "" {
		apiURL = defaultGeocoderURL
	}
	return &HTTPGeocoder{
		apiURL: apiURL,
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

func (g *HTTPGeocoder) Resolve(ctx context.Context, address string) (GeoResult, error) {
	if address == "" {
		return GeoResult{}, errors.New("empty address")
	}

	q := url.Values{}
	q.Set("q", address)
	q.Set("format", "json")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		g.apiURL+"?"+q.Encode(),
		nil,
	)
	if err != nil {
		return GeoResult{}, err
	}
	req.Header.Set("User-Agent", "chicken-hot-system/1.0")

	resp, err := g.client.Do(req)
	if err != nil {
		return GeoResult{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return GeoResult{}, err
	}

	if resp.StatusCode != http.StatusOK {
		return GeoResult{}, fmt.Errorf("geocoder error: %s", string(raw))
	}

	var results []struct {
		Lat         string `json:"lat"`
		Lon         string `json:"lon"`
		DisplayName string `json:"display_name"`
	}
	if err := json.Unmarshal(raw, &results); err != nil {
		return GeoResult{}, err
	}

	if len(results) == 0 {
		return GeoResult{Valid: false}, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return GeoResult{}, err
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return GeoResult{}, err
	}

	return GeoResult{
		Valid:            true,
		Lat:              lat,
		Lon:              lon,
		FormattedAddress: results[0].DisplayName,
	}, nil
}
