package tracking

import (
	"testing"

	model "github.com/Ri4dH/EcoTrack/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestRecorder_EmptyHasZeroDistance(t *testing.T) {
	r := NewRecorder()
	assert.Equal(t, 0.0, r.Distance())
	assert.Empty(t, r.Points())
}

func TestRecorder_SinglePointHasZeroDistance(t *testing.T) {
	r := NewRecorder()
	r.Add(model.Coordinate{Lat: 48.8566, Lng: 2.3522})
	assert.Equal(t, 0.0, r.Distance())
	assert.Len(t, r.Points(), 1)
}

func TestRecorder_AccumulatesSegments(t *testing.T) {
	r := NewRecorder()
	r.Add(model.Coordinate{Lat: 48.8566, Lng: 2.3522})
	r.Add(model.Coordinate{Lat: 48.8606, Lng: 2.3376})
	r.Add(model.Coordinate{Lat: 48.8738, Lng: 2.2950})

	assert.Greater(t, r.Distance(), 0.0)
	assert.Len(t, r.Points(), 3)
}

func TestRecorder_ClosePointsStillAccumulate(t *testing.T) {
	// Points GPS espacés d'environ 5 mètres : chaque segment est bien en
	// dessous du pas d'arrondi, mais le cumul doit rester mesurable
	r := NewRecorder()
	for i := 0; i <= 100; i++ {
		r.Add(model.Coordinate{Lat: 48.8566 + float64(i)*0.00005, Lng: 2.3522})
	}

	assert.Greater(t, r.Distance(), 0.3)
	assert.InDelta(t, 0.35, r.Distance(), 0.02)
}

func TestRecorder_ResetClearsEverything(t *testing.T) {
	r := NewRecorder()
	r.Add(model.Coordinate{Lat: 48.8566, Lng: 2.3522})
	r.Add(model.Coordinate{Lat: 48.8606, Lng: 2.3376})
	r.Reset()

	assert.Equal(t, 0.0, r.Distance())
	assert.Empty(t, r.Points())
}

func TestRecorder_PointsReturnsCopy(t *testing.T) {
	r := NewRecorder()
	r.Add(model.Coordinate{Lat: 1, Lng: 1})
	pts := r.Points()
	pts[0].Lat = 99

	assert.Equal(t, 1.0, r.Points()[0].Lat)
}
