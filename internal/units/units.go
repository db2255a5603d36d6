package units

import (
	"math"

	model "github.com/Ri4dH/EcoTrack/internal/models"
)

// Facteurs de conversion fixes partagés avec les anciens clients mobiles
const (
	KgToLb = 2.20462
	KmToMi = 0.621371
	MiToKm = 1 / 0.621371
)

// Reconcile applique la règle "champ préféré sinon legacy converti" :
// si preferred est présent et fini, il est utilisé tel quel (même s'il
// contredit le champ legacy); sinon legacy × factor, avec legacy non-fini
// traité comme zéro. Ne retourne jamais NaN/Inf. Les valeurs négatives
// passent sans être bornées.
func Reconcile(preferred *float64, legacy float64, factor float64) float64 {
	if preferred != nil && !math.IsNaN(*preferred) && !math.IsInf(*preferred, 0) {
		return *preferred
	}
	if math.IsNaN(legacy) || math.IsInf(legacy, 0) {
		return 0
	}
	return legacy * factor
}

// Co2Lb retourne le CO₂ économisé d'un enregistrement en livres
func Co2Lb(rec model.ActionRecord) float64 {
	return Reconcile(rec.Co2SavedLb, rec.Co2SavedKg, KgToLb)
}

// DistanceMiles retourne la distance d'un enregistrement en miles.
// Zéro quand aucun des deux champs n'est renseigné.
func DistanceMiles(rec model.ActionRecord) float64 {
	var legacy float64
	if rec.DistanceKm != nil {
		legacy = *rec.DistanceKm
	}
	return Reconcile(rec.DistanceMiles, legacy, KmToMi)
}

// TotalLb réconcilie un total agrégé (classement) : lb si présent, sinon kg
func TotalLb(totalLb *float64, totalKg float64) float64 {
	return Reconcile(totalLb, totalKg, KgToLb)
}
