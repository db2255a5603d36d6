// Package tracking accumule les points GPS d'un trajet en cours. Le Recorder
// appartient à l'appelant et est passé explicitement : pas d'état global de
// module entre "démarrer le suivi" et "lire les points".
package tracking

import (
	"math"

	"github.com/Ri4dH/EcoTrack/internal/geo"
	model "github.com/Ri4dH/EcoTrack/internal/models"
)

// Recorder accumule les points d'un trajet et la distance parcourue
type Recorder struct {
	points []model.Coordinate
	miles  float64
}

// NewRecorder crée un accumulateur vide
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Add ajoute un point et cumule la distance Haversine depuis le précédent.
// Le cumul se fait sans arrondi : les points GPS rapprochés font des segments
// bien plus courts que le pas d'arrondi
func (r *Recorder) Add(point model.Coordinate) {
	if len(r.points) > 0 {
		r.miles += geo.HaversineExact(r.points[len(r.points)-1], point)
	}
	r.points = append(r.points, point)
}

// Distance retourne la distance cumulée en miles, arrondie à la lecture
func (r *Recorder) Distance() float64 {
	return math.Round(r.miles*100) / 100
}

// Points retourne une copie des points accumulés
func (r *Recorder) Points() []model.Coordinate {
	out := make([]model.Coordinate, len(r.points))
	copy(out, r.points)
	return out
}

// Reset vide l'accumulateur pour un nouveau trajet
func (r *Recorder) Reset() {
	r.points = nil
	r.miles = 0
}
