package geo

import (
	model "github.com/Ri4dH/EcoTrack/internal/models"
)

// DecodePolyline décode une polyline au format "Encoded Polyline Algorithm"
// (groupes de 5 bits, char − 63, continuation 0x20, deltas zig-zag, échelle
// 1e-5) en une séquence ordonnée de coordonnées. Fonction pure : une chaîne
// vide produit une séquence vide, la même entrée produit toujours la même
// sortie. Une fin de chaîne tronquée arrête le décodage proprement.
func DecodePolyline(encoded string) []model.Coordinate {
	points := []model.Coordinate{}
	var lat, lng int64
	i := 0

	for i < len(encoded) {
		dLat, next, ok := decodeSignedDelta(encoded, i)
		if !ok {
			break
		}
		i = next

		dLng, next, ok := decodeSignedDelta(encoded, i)
		if !ok {
			break
		}
		i = next

		lat += dLat
		lng += dLng
		points = append(points, model.Coordinate{
			Lat: float64(lat) * 1e-5,
			Lng: float64(lng) * 1e-5,
		})
	}

	return points
}

// decodeSignedDelta accumule les groupes de 5 bits à partir de l'index i
// puis applique le décodage zig-zag. ok vaut false si la chaîne se termine
// au milieu d'une valeur.
func decodeSignedDelta(encoded string, i int) (delta int64, next int, ok bool) {
	var result int64
	var shift uint

	for {
		if i >= len(encoded) {
			return 0, i, false
		}
		b := int64(encoded[i]) - 63
		i++
		result |= (b & 0x1f) << shift
		shift += 5
		if b < 0x20 {
			break
		}
	}

	// Zig-zag : bit de poids faible = signe
	if result&1 != 0 {
		return ^(result >> 1), i, true
	}
	return result >> 1, i, true
}
