package model

import (
	"time"
)

// ActionKind identifie le type d'action écologique enregistrée
type ActionKind string

const (
	ActionBikeTrip      ActionKind = "bike_trip"
	ActionWalkTrip      ActionKind = "walk_trip"
	ActionRecycled      ActionKind = "recycled"
	ActionAteVegetarian ActionKind = "ate_vegetarian"
)

// ValidActionKinds liste les actions acceptées par l'API et l'estimateur
var ValidActionKinds = []ActionKind{
	ActionBikeTrip, ActionWalkTrip, ActionRecycled, ActionAteVegetarian,
}

// IsValid vérifie que le type d'action fait partie du catalogue
func (k ActionKind) IsValid() bool {
	for _, v := range ValidActionKinds {
		if k == v {
			return true
		}
	}
	return false
}

// RequiresDistance indique si l'action nécessite une distance (trajets)
func (k ActionKind) RequiresDistance() bool {
	return k == ActionBikeTrip || k == ActionWalkTrip
}

// ActionRecord représente une action écologique enregistrée par un utilisateur.
// Les champs legacy (km, kg) coexistent avec les champs préférés (miles, lb)
// pour la compatibilité avec les anciens clients; voir internal/units pour la
// règle de réconciliation.
type ActionRecord struct {
	ID            string     `json:"id,omitempty"`
	UserID        string     `json:"userId"`
	Action        ActionKind `json:"action"`
	DistanceMiles *float64   `json:"distanceMiles,omitempty"` // champ canonique
	DistanceKm    *float64   `json:"distanceKm,omitempty"`    // champ legacy
	Co2SavedKg    float64    `json:"co2SavedKg"`              // legacy, toujours présent
	Co2SavedLb    *float64   `json:"co2SavedLb,omitempty"`    // préféré quand présent
	Materials     []string   `json:"materials,omitempty"`     // recyclage uniquement
	Meal          string     `json:"meal,omitempty"`          // repas remplacé (végétarien)
	Message       string     `json:"message"`
	TimestampMs   int64      `json:"timestampMs"`
	DateFields
}

// Timestamp convertit le timestamp epoch-millisecondes en time.Time
func (r ActionRecord) Timestamp() time.Time {
	return time.UnixMilli(r.TimestampMs)
}

// SubmitActionRequest est le corps de la requête POST /actions
type SubmitActionRequest struct {
	Action        ActionKind  `json:"action"`
	DistanceMiles *float64    `json:"distanceMiles,omitempty"`
	DistanceKm    *float64    `json:"distanceKm,omitempty"`
	Origin        *Coordinate `json:"origin,omitempty"`
	Destination   *Coordinate `json:"destination,omitempty"`
	Materials     []string    `json:"materials,omitempty"`
	Meal          string      `json:"meal,omitempty"`
}

// SubmitActionResponse regroupe l'action créée et les stats recalculées
type SubmitActionResponse struct {
	Record ActionRecord   `json:"record"`
	Stats  UserStats      `json:"stats"`
	Route  *RouteEstimate `json:"route,omitempty"`
}
