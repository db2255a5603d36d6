package model

// Badge est une récompense débloquée à partir d'un seuil de CO₂ économisé.
// Earned n'est pas stocké : il est recalculé à chaque évaluation des stats.
type Badge struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	ThresholdLb float64 `json:"thresholdLb"`
	Earned      bool    `json:"earned"`
}
