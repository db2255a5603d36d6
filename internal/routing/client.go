// Package routing résout une distance de trajet : itinéraire réel via le
// service de cartographie quand une clé API est configurée, sinon repli
// Haversine. La résolution ne peut pas échouer : elle se dégrade.
package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Ri4dH/EcoTrack/internal/geo"
	model "github.com/Ri4dH/EcoTrack/internal/models"
	"github.com/Ri4dH/EcoTrack/internal/units"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/directions/json"

const metersPerMile = 1609.344

// Mode de déplacement accepté par le service d'itinéraires
type Mode string

const (
	ModeWalking   Mode = "walking"
	ModeBicycling Mode = "bicycling"
)

// Client interroge le service d'itinéraires. Une clé vide est une
// configuration valide : aucun appel réseau n'est alors tenté.
type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient construit un client avec le timeout par défaut de 8 secondes
func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:     apiKey,
		BaseURL:    defaultBaseURL,
		HTTPClient: &http.Client{Timeout: 8 * time.Second},
	}
}

// réponse minimale du service de cartographie
type directionsResponse struct {
	Status string `json:"status"`
	Routes []struct {
		OverviewPolyline struct {
			Points string `json:"points"`
		} `json:"overview_polyline"`
		Legs []struct {
			Distance struct {
				Value float64 `json:"value"` // mètres
			} `json:"distance"`
			Duration struct {
				Text string `json:"text"`
			} `json:"duration"`
		} `json:"legs"`
	} `json:"routes"`
}

// Resolve produit la meilleure estimation de distance en miles entre origin
// et dest. Jamais d'erreur : tout échec du service (transport, statut non-OK,
// aucune route) bascule sur l'estimation Haversine, avec la raison dans
// Degraded pour que l'appelant sache quel chemin a servi.
func (c *Client) Resolve(ctx context.Context, origin, dest model.Coordinate, mode Mode) model.RouteEstimate {
	if c.APIKey == "" {
		return c.fallback(origin, dest, "no routing API key configured")
	}

	estimate, err := c.lookup(ctx, origin, dest, mode)
	if err != nil {
		return c.fallback(origin, dest, err.Error())
	}
	return estimate
}

func (c *Client) lookup(ctx context.Context, origin, dest model.Coordinate, mode Mode) (model.RouteEstimate, error) {
	base := c.BaseURL
	if base == "" {
		base = defaultBaseURL
	}

	params := url.Values{}
	params.Set("origin", fmt.Sprintf("%f,%f", origin.Lat, origin.Lng))
	params.Set("destination", fmt.Sprintf("%f,%f", dest.Lat, dest.Lng))
	params.Set("mode", string(mode))
	params.Set("key", c.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+params.Encode(), nil)
	if err != nil {
		return model.RouteEstimate{}, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return model.RouteEstimate{}, fmt.Errorf("directions request failed: %w", err)
	}
	defer resp.Body.Close()

	var out directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return model.RouteEstimate{}, fmt.Errorf("directions response malformed: %w", err)
	}

	if out.Status != "OK" {
		return model.RouteEstimate{}, fmt.Errorf("directions status %q", out.Status)
	}
	if len(out.Routes) == 0 {
		return model.RouteEstimate{}, fmt.Errorf("directions returned no routes")
	}

	route := out.Routes[0]

	// Sommer toutes les étapes en mètres avant de convertir en miles
	var meters float64
	for _, leg := range route.Legs {
		meters += leg.Distance.Value
	}

	estimate := model.RouteEstimate{
		Miles:    meters / metersPerMile,
		Polyline: route.OverviewPolyline.Points,
		Source:   model.RouteSourceRoute,
	}
	if len(route.Legs) > 0 {
		estimate.Duration = route.Legs[0].Duration.Text
	}
	return estimate, nil
}

func (c *Client) fallback(origin, dest model.Coordinate, reason string) model.RouteEstimate {
	return model.RouteEstimate{
		Miles:    geo.Haversine(origin, dest),
		Source:   model.RouteSourceStraightLine,
		Degraded: reason,
	}
}

// MilesToKm convertit une estimation en kilomètres pour l'estimateur CO₂
func MilesToKm(miles float64) float64 {
	return miles * units.MiToKm
}
