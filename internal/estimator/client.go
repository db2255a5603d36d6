// Package estimator est le client HTTP du service distant d'estimation CO₂.
// Tout le calcul vient du service distant : aucun barème local de secours :
// si l'estimation échoue, la soumission échoue (fail closed).
package estimator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net"
	"net/http"
	"time"
)

// Category classe les échecs pour que les handlers remontent un message de
// remédiation distinct par catégorie : jamais avalé par le cœur.
type Category string

const (
	CategoryConfig      Category = "config"
	CategoryTimeout     Category = "timeout"
	CategoryUnreachable Category = "unreachable"
	CategoryHTTPStatus  Category = "http_status"
	CategoryMalformed   Category = "malformed"
)

// Error est une erreur d'estimation classée
type Error struct {
	Category Category
	Status   int // renseigné pour http_status
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("estimator %s: %v", e.Category, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Hint retourne l'indication de remédiation affichée à l'utilisateur
func (e *Error) Hint() string {
	switch e.Category {
	case CategoryConfig:
		return "vérifiez ESTIMATOR_BASE_URL"
	case CategoryTimeout:
		return "le service d'estimation n'a pas répondu à temps, réessayez"
	case CategoryUnreachable:
		return "service d'estimation injoignable, vérifiez votre connexion"
	case CategoryHTTPStatus:
		return fmt.Sprintf("le service d'estimation a répondu %d", e.Status)
	case CategoryMalformed:
		return "réponse d'estimation invalide, l'action n'a pas été enregistrée"
	}
	return ""
}

// Request est la requête envoyée à POST {base}/co2/savings
type Request struct {
	UserID        string   `json:"user_id"`
	Action        string   `json:"action"`
	DistanceKm    *float64 `json:"distance_km,omitempty"`
	DistanceMiles *float64 `json:"distance_miles,omitempty"`
	Materials     []string `json:"materials,omitempty"`
	Meal          string   `json:"counterfactual_meal,omitempty"`
}

// AgentMeta décrit le moteur distant qui a produit l'estimation
type AgentMeta struct {
	Engine string `json:"engine"`
}

// Response est la réponse du service d'estimation
type Response struct {
	Action     string    `json:"action"`
	Co2SavedKg *float64  `json:"co2_saved_kg"`
	Message    string    `json:"message"`
	AgentMeta  AgentMeta `json:"agent_meta"`
}

// Client appelle le service d'estimation. BaseURL est obligatoire.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient construit un client avec le timeout par défaut de 8 secondes
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 8 * time.Second},
	}
}

// Estimate appelle le service et valide que co2_saved_kg est un nombre fini.
// Une valeur absente ou non finie est classée malformed : l'appelant ne doit
// rien persister dans ce cas.
func (c *Client) Estimate(ctx context.Context, req Request) (*Response, error) {
	if c.BaseURL == "" {
		return nil, &Error{Category: CategoryConfig, Err: errors.New("base URL is empty")}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, &Error{Category: CategoryMalformed, Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/co2/savings", bytes.NewReader(body))
	if err != nil {
		return nil, &Error{Category: CategoryConfig, Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, classifyTransport(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{
			Category: CategoryHTTPStatus,
			Status:   resp.StatusCode,
			Err:      fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &Error{Category: CategoryMalformed, Err: err}
	}

	// Fail closed : jamais persister une estimation non numérique
	if out.Co2SavedKg == nil || math.IsNaN(*out.Co2SavedKg) || math.IsInf(*out.Co2SavedKg, 0) {
		return nil, &Error{Category: CategoryMalformed, Err: errors.New("co2_saved_kg is missing or not a finite number")}
	}

	return &out, nil
}

// classifyTransport distingue timeout et hôte injoignable
func classifyTransport(err error) *Error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &Error{Category: CategoryTimeout, Err: err}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Category: CategoryTimeout, Err: err}
	}
	return &Error{Category: CategoryUnreachable, Err: err}
}
