// Package service orchestre la soumission d'une action écologique :
// résolution de distance → estimation CO₂ distante → réconciliation des
// unités → persistance → recalcul des statistiques. Les collaborateurs sont
// des interfaces pour que le flux soit testable avec des doublures.
package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/Ri4dH/EcoTrack/internal/estimator"
	"github.com/Ri4dH/EcoTrack/internal/impact"
	model "github.com/Ri4dH/EcoTrack/internal/models"
	"github.com/Ri4dH/EcoTrack/internal/routing"
	"github.com/Ri4dH/EcoTrack/internal/units"
)

// Estimator est le collaborateur distant d'estimation CO₂
type Estimator interface {
	Estimate(ctx context.Context, req estimator.Request) (*estimator.Response, error)
}

// Router est le collaborateur de résolution de distance
type Router interface {
	Resolve(ctx context.Context, origin, dest model.Coordinate, mode routing.Mode) model.RouteEstimate
}

// Store est le magasin d'actions, en append-only par utilisateur
type Store interface {
	Append(ctx context.Context, rec *model.ActionRecord) error
	History(ctx context.Context, userID string) ([]model.ActionRecord, error)
}

// Submission est le flux de soumission d'action
type Submission struct {
	Estimator Estimator
	Router    Router
	Store     Store
}

func NewSubmission(est Estimator, router Router, store Store) *Submission {
	return &Submission{Estimator: est, Router: router, Store: store}
}

// Submit exécute le flux complet dans l'ordre strict. Tout échec avant la
// validation de l'estimation empêche entièrement la persistance (fail
// closed) : une estimation absente ou non numérique n'est jamais écrite.
func (s *Submission) Submit(ctx context.Context, userID string, req model.SubmitActionRequest) (*model.SubmitActionResponse, error) {
	if !req.Action.IsValid() {
		return nil, fmt.Errorf("unknown action kind %q", req.Action)
	}

	// (a) résoudre la distance pour les trajets
	var route *model.RouteEstimate
	var distanceMiles, distanceKm *float64
	if req.Action.RequiresDistance() {
		miles, resolved, err := s.resolveDistance(ctx, req)
		if err != nil {
			return nil, err
		}
		route = resolved
		km := routing.MilesToKm(miles)
		distanceMiles, distanceKm = &miles, &km
	}

	// (b) appeler l'estimateur distant
	estimate, err := s.Estimator.Estimate(ctx, estimator.Request{
		UserID:        userID,
		Action:        string(req.Action),
		DistanceKm:    distanceKm,
		DistanceMiles: distanceMiles,
		Materials:     req.Materials,
		Meal:          req.Meal,
	})
	if err != nil {
		return nil, err
	}

	// (c) valider que l'estimation est un nombre fini : sinon rien n'est
	// persisté, pour protéger l'intégrité des statistiques agrégées
	if estimate.Co2SavedKg == nil || math.IsNaN(*estimate.Co2SavedKg) || math.IsInf(*estimate.Co2SavedKg, 0) {
		return nil, fmt.Errorf("estimator returned a non-numeric co2_saved_kg, submission discarded")
	}

	// (d) réconcilier dans les deux unités pour le stockage
	kg := *estimate.Co2SavedKg
	lb := units.Reconcile(nil, kg, units.KgToLb)

	rec := &model.ActionRecord{
		ID:            uuid.NewString(),
		UserID:        userID,
		Action:        req.Action,
		DistanceMiles: distanceMiles,
		DistanceKm:    distanceKm,
		Co2SavedKg:    kg,
		Co2SavedLb:    &lb,
		Materials:     req.Materials,
		Meal:          req.Meal,
		Message:       estimate.Message,
		TimestampMs:   time.Now().UnixMilli(),
	}

	// (e) persister
	if err := s.Store.Append(ctx, rec); err != nil {
		return nil, fmt.Errorf("could not persist action: %w", err)
	}

	// (f) recalculer les stats dérivées depuis l'historique complet
	history, err := s.Store.History(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not reload history: %w", err)
	}

	return &model.SubmitActionResponse{
		Record: *rec,
		Stats:  impact.ComputeStats(history, time.Now()),
		Route:  route,
	}, nil
}

// resolveDistance applique la priorité : distance fournie par le client
// (miles sinon km converti), sinon itinéraire entre origin et destination
func (s *Submission) resolveDistance(ctx context.Context, req model.SubmitActionRequest) (float64, *model.RouteEstimate, error) {
	if req.DistanceMiles != nil || req.DistanceKm != nil {
		var legacy float64
		if req.DistanceKm != nil {
			legacy = *req.DistanceKm
		}
		miles := units.Reconcile(req.DistanceMiles, legacy, units.KmToMi)
		if miles <= 0 {
			return 0, nil, fmt.Errorf("distance must be > 0 for %s", req.Action)
		}
		return miles, nil, nil
	}

	if req.Origin == nil || req.Destination == nil {
		return 0, nil, fmt.Errorf("%s requires a distance or origin/destination coordinates", req.Action)
	}

	mode := routing.ModeWalking
	if req.Action == model.ActionBikeTrip {
		mode = routing.ModeBicycling
	}

	estimate := s.Router.Resolve(ctx, *req.Origin, *req.Destination, mode)
	if estimate.Miles <= 0 {
		return 0, nil, fmt.Errorf("distance must be > 0 for %s", req.Action)
	}
	return estimate.Miles, &estimate, nil
}
