package model

// Coordinate est une paire latitude/longitude en degrés décimaux
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// RouteSource indique comment la distance a été obtenue
type RouteSource string

const (
	// RouteSourceRoute : distance issue du service d'itinéraires
	RouteSourceRoute RouteSource = "route"
	// RouteSourceStraightLine : repli Haversine (vol d'oiseau)
	RouteSourceStraightLine RouteSource = "straight_line"
)

// RouteEstimate est le résultat de la résolution de distance. Jamais une
// erreur côté appelant : quand le service d'itinéraires échoue, Source passe
// en straight_line et Degraded porte la raison.
type RouteEstimate struct {
	Miles    float64     `json:"miles"`
	Polyline string      `json:"polyline,omitempty"`
	Duration string      `json:"duration,omitempty"`
	Source   RouteSource `json:"source"`
	Degraded string      `json:"degraded,omitempty"`
}
