package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"spacedout/internal/middleware"
	"spacedout/internal/observability"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const defaultTimeout = 10 * time.Second

// NominatimClient resolves addresses against a Nominatim search endpoint.
type NominatimClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewNominatimClient builds a client for the given Nominatim base URL.
// Nominatim's usage policy requires an identifying User-Agent on every request.
func NewNominatimClient(baseURL, userAgent string) *NominatimClient {
	return &NominatimClient{
		baseURL:    baseURL,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode looks up the address and returns the first match. Returns
// ErrAddressNotFound when Nominatim has no candidates.
func (c *NominatimClient) Geocode(ctx context.Context, address string) (Result, error) {
	ctx, span := observability.TraceExternalCall(ctx, "nominatim", "search")
	defer span.End()
	span.SetAttributes(attribute.String("geocode.address", address))

	endpoint := fmt.Sprintf("%s/search?format=json&q=%s", c.baseURL, url.QueryEscape(address))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Result{}, fmt.Errorf("failed to build geocode request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		middleware.GeocodeRequests.WithLabelValues("error").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Result{}, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		middleware.GeocodeRequests.WithLabelValues("error").Inc()
		err := fmt.Errorf("geocode provider returned status %d", resp.StatusCode)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Result{}, err
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		middleware.GeocodeRequests.WithLabelValues("error").Inc()
		span.RecordError(err)
		return Result{}, fmt.Errorf("failed to decode geocode response: %w", err)
	}

	if len(results) == 0 {
		middleware.GeocodeRequests.WithLabelValues("not_found").Inc()
		span.SetAttributes(attribute.Bool("geocode.found", false))
		return Result{}, ErrAddressNotFound
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		middleware.GeocodeRequests.WithLabelValues("error").Inc()
		return Result{}, fmt.Errorf("invalid latitude %q in geocode response: %w", results[0].Lat, err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		middleware.GeocodeRequests.WithLabelValues("error").Inc()
		return Result{}, fmt.Errorf("invalid longitude %q in geocode response: %w", results[0].Lon, err)
	}

	middleware.GeocodeRequests.WithLabelValues("resolved").Inc()
	span.SetAttributes(attribute.Bool("geocode.found", true))
	return Result{Latitude: lat, Longitude: lng}, nil
}
