package routing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	model "github.com/Ri4dH/EcoTrack/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	origin = model.Coordinate{Lat: 48.8566, Lng: 2.3522}
	dest   = model.Coordinate{Lat: 48.8606, Lng: 2.3376}
)

func TestResolve_NoAPIKeySkipsNetworkEntirely(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	client := &Client{APIKey: "", BaseURL: srv.URL, HTTPClient: srv.Client()}
	estimate := client.Resolve(context.Background(), origin, dest, ModeWalking)

	assert.False(t, called, "aucun appel réseau attendu sans clé API")
	assert.Equal(t, model.RouteSourceStraightLine, estimate.Source)
	assert.Empty(t, estimate.Polyline)
	assert.NotEmpty(t, estimate.Degraded)
	assert.Greater(t, estimate.Miles, 0.0)
}

func TestResolve_SuccessSumsLegsAndKeepsPolyline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "bicycling", r.URL.Query().Get("mode"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Write([]byte(`{
			"status": "OK",
			"routes": [{
				"overview_polyline": {"points": "_p~iF~ps|U_ulLnnqC"},
				"legs": [
					{"distance": {"value": 1609.344}, "duration": {"text": "12 mins"}},
					{"distance": {"value": 3218.688}, "duration": {"text": "20 mins"}}
				]
			}]
		}`))
	}))
	defer srv.Close()

	client := &Client{APIKey: "test-key", BaseURL: srv.URL, HTTPClient: srv.Client()}
	estimate := client.Resolve(context.Background(), origin, dest, ModeBicycling)

	assert.Equal(t, model.RouteSourceRoute, estimate.Source)
	assert.InDelta(t, 3.0, estimate.Miles, 1e-9)
	assert.Equal(t, "_p~iF~ps|U_ulLnnqC", estimate.Polyline)
	assert.Equal(t, "12 mins", estimate.Duration)
	assert.Empty(t, estimate.Degraded)
}

func TestResolve_NonOKStatusFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "routes": []}`))
	}))
	defer srv.Close()

	client := &Client{APIKey: "test-key", BaseURL: srv.URL, HTTPClient: srv.Client()}
	estimate := client.Resolve(context.Background(), origin, dest, ModeWalking)

	assert.Equal(t, model.RouteSourceStraightLine, estimate.Source)
	assert.Contains(t, estimate.Degraded, "ZERO_RESULTS")
	assert.Greater(t, estimate.Miles, 0.0)
}

func TestResolve_EmptyRouteListFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "OK", "routes": []}`))
	}))
	defer srv.Close()

	client := &Client{APIKey: "test-key", BaseURL: srv.URL, HTTPClient: srv.Client()}
	estimate := client.Resolve(context.Background(), origin, dest, ModeWalking)

	assert.Equal(t, model.RouteSourceStraightLine, estimate.Source)
}

func TestResolve_TransportErrorFallsBack(t *testing.T) {
	client := &Client{
		APIKey:     "test-key",
		BaseURL:    "http://127.0.0.1:1",
		HTTPClient: &http.Client{Timeout: 100 * time.Millisecond},
	}
	estimate := client.Resolve(context.Background(), origin, dest, ModeWalking)

	assert.Equal(t, model.RouteSourceStraightLine, estimate.Source)
	assert.NotEmpty(t, estimate.Degraded)
}

func TestResolve_FallbackMatchesHaversine(t *testing.T) {
	client := NewClient("")
	a := client.Resolve(context.Background(), origin, dest, ModeWalking)
	b := client.Resolve(context.Background(), origin, dest, ModeWalking)
	require.Equal(t, a.Miles, b.Miles)
}
