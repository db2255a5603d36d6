package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePolyline_Empty(t *testing.T) {
	assert.Empty(t, DecodePolyline(""))
}

func TestDecodePolyline_ReferenceVector(t *testing.T) {
	// Vecteur de référence de la documentation du format
	points := DecodePolyline("_p~iF~ps|U_ulLnnqC_mqNvxq`@")
	require.Len(t, points, 3)

	assert.InDelta(t, 38.5, points[0].Lat, 1e-5)
	assert.InDelta(t, -120.2, points[0].Lng, 1e-5)
	assert.InDelta(t, 40.7, points[1].Lat, 1e-5)
	assert.InDelta(t, -120.95, points[1].Lng, 1e-5)
	assert.InDelta(t, 43.252, points[2].Lat, 1e-5)
	assert.InDelta(t, -126.453, points[2].Lng, 1e-5)
}

func TestDecodePolyline_Deterministic(t *testing.T) {
	encoded := "_p~iF~ps|U_ulLnnqC_mqNvxq`@"
	first := DecodePolyline(encoded)
	second := DecodePolyline(encoded)
	assert.Equal(t, first, second)
}

func TestDecodePolyline_TruncatedInputStopsCleanly(t *testing.T) {
	// Longitude manquante pour le dernier point : on garde les points complets
	full := DecodePolyline("_p~iF~ps|U_ulLnnqC")
	truncated := DecodePolyline("_p~iF~ps|U_ulL")
	require.Len(t, full, 2)
	assert.Equal(t, full[:1], truncated)
}
