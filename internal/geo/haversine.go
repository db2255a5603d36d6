// Package geo fournit les calculs de géométrie sphérique (distance Haversine)
// et le décodage de polylines encodées pour les itinéraires.
package geo

import (
	"math"

	model "github.com/Ri4dH/EcoTrack/internal/models"
)

// EarthRadiusMiles est le rayon terrestre moyen en miles.
// Politique canonique : une seule implémentation Haversine, rayon en miles,
// résultat arrondi à 2 décimales : tous les appelants attendent une
// distance approximative "à vol d'oiseau" en miles.
const EarthRadiusMiles = 3958.8

// Haversine calcule la distance orthodromique en miles entre deux points,
// arrondie à 2 décimales.
//
// a = sin²(Δφ/2) + cos φ1 ⋅ cos φ2 ⋅ sin²(Δλ/2)
// c = 2 ⋅ atan2(√a, √(1−a))
// d = R ⋅ c
func Haversine(from, to model.Coordinate) float64 {
	return round2(HaversineExact(from, to))
}

// HaversineExact retourne la distance sans arrondi. À utiliser pour cumuler
// des segments courts : arrondir chaque segment écraserait les petits deltas
func HaversineExact(from, to model.Coordinate) float64 {
	lat1 := degreesToRadians(from.Lat)
	lat2 := degreesToRadians(to.Lat)
	deltaLat := degreesToRadians(to.Lat - from.Lat)
	deltaLng := degreesToRadians(to.Lng - from.Lng)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMiles * c
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
