package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://geocode-maps.yandex.ru/1.x"

type YandexGeocoder struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

func NewYandexGeocoder(cfg Config) *YandexGeocoder {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &YandexGeocoder{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type yandexResponse struct {
	Response struct {
		GeoObjectCollection struct {
			FeatureMember []struct {
				GeoObject struct {
					Point struct {
						Pos string `json:"pos"`
					} `json:"Point"`
				} `json:"GeoObject"`
			} `json:"featureMember"`
		} `json:"GeoObjectCollection"`
	} `json:"response"`
}

func (g *YandexGeocoder) Geocode(ctx context.Context, address string) (float64, float64, bool, error) {
	params := url.Values{}
	params.Set("geocode", address)
	params.Set("apikey", g.apiKey)
	params.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return 0, 0, false, fmt.Errorf("failed to build geocoder request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return 0, 0, false, fmt.Errorf("geocoder request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, false, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var decoded yandexResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return 0, 0, false, fmt.Errorf("failed to decode geocoder response: %w", err)
	}

	found := decoded.Response.GeoObjectCollection.FeatureMember
	if len(found) == 0 {
		return 0, 0, false, nil
	}

	// the first member is the most relevant; pos is "longitude latitude"
	return parsePos(found[0].GeoObject.Point.Pos)
}

func parsePos(pos string) (float64, float64, bool, error) {
	parts := strings.Fields(pos)
	if len(parts) != 2 {
		return 0, 0, false, fmt.Errorf("unexpected point format %q", pos)
	}

	lon, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, false, fmt.Errorf("bad longitude %q: %w", parts[0], err)
	}

	lat, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, false, fmt.Errorf("bad latitude %q: %w", parts[1], err)
	}

	return lat, lon, true, nil
}
