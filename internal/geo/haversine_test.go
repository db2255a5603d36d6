package geo

import (
	"math"
	"testing"

	model "github.com/Ri4dH/EcoTrack/internal/models"
	"github.com/stretchr/testify/assert"
)

var (
	newYork    = model.Coordinate{Lat: 40.7128, Lng: -74.0060}
	losAngeles = model.Coordinate{Lat: 34.0522, Lng: -118.2437}
	paris      = model.Coordinate{Lat: 48.8566, Lng: 2.3522}
)

func TestHaversine_SamePointIsZero(t *testing.T) {
	assert.Equal(t, 0.0, Haversine(paris, paris))
}

func TestHaversine_KnownDistance(t *testing.T) {
	// New York → Los Angeles : ~2445 miles à vol d'oiseau
	d := Haversine(newYork, losAngeles)
	assert.InDelta(t, 2445.6, d, 2.0)
}

func TestHaversine_Symmetric(t *testing.T) {
	assert.Equal(t, Haversine(newYork, paris), Haversine(paris, newYork))
}

func TestHaversine_RoundedToTwoDecimals(t *testing.T) {
	d := Haversine(newYork, losAngeles)
	assert.InDelta(t, math.Round(d*100), d*100, 1e-9)
}

func TestHaversineExact_NotRounded(t *testing.T) {
	// La variante exacte conserve les segments plus courts que le pas
	// d'arrondi, et la version publique n'est que son arrondi
	a := model.Coordinate{Lat: 48.8566, Lng: 2.3522}
	b := model.Coordinate{Lat: 48.85665, Lng: 2.3522}

	exact := HaversineExact(a, b)
	assert.Greater(t, exact, 0.0)
	assert.Less(t, exact, 0.005)
	assert.Equal(t, 0.0, Haversine(a, b))
	assert.Equal(t, math.Round(HaversineExact(newYork, losAngeles)*100)/100, Haversine(newYork, losAngeles))
}

func TestHaversine_ShortDistance(t *testing.T) {
	// Deux points à ~1.4 km l'un de l'autre dans Paris
	a := model.Coordinate{Lat: 48.8566, Lng: 2.3522}
	b := model.Coordinate{Lat: 48.8606, Lng: 2.3376}
	d := Haversine(a, b)
	assert.Greater(t, d, 0.5)
	assert.Less(t, d, 1.5)
}
