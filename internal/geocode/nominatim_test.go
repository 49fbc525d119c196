package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNominatimClient_Geocode(t *testing.T) {
	var gotAgent, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		gotQuery = r.URL.Query().Get("q")
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		w.Write([]byte(`[{"lat":"42.4534","lon":"-76.4735"},{"lat":"0","lon":"0"}]`))
	}))
	defer srv.Close()

	client := NewNominatimClient(srv.URL, "spaced_out")
	result, err := client.Geocode(context.Background(), "Ithaca, NY")
	require.NoError(t, err)

	assert.Equal(t, "spaced_out", gotAgent)
	assert.Equal(t, "Ithaca, NY", gotQuery)
	assert.InDelta(t, 42.4534, result.Latitude, 1e-9)
	assert.InDelta(t, -76.4735, result.Longitude, 1e-9)
}

func TestNominatimClient_AddressNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewNominatimClient(srv.URL, "spaced_out")
	_, err := client.Geocode(context.Background(), "nowhere at all")
	assert.ErrorIs(t, err, ErrAddressNotFound)
}

func TestNominatimClient_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewNominatimClient(srv.URL, "spaced_out")
	_, err := client.Geocode(context.Background(), "Ithaca, NY")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAddressNotFound)
}

func TestNominatimClient_MalformedCoordinates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"lat":"not-a-number","lon":"-76.4735"}]`))
	}))
	defer srv.Close()

	client := NewNominatimClient(srv.URL, "spaced_out")
	_, err := client.Geocode(context.Background(), "Ithaca, NY")
	assert.Error(t, err)
}
