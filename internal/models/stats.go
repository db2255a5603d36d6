package model

// UserStats regroupe les statistiques dérivées d'un utilisateur.
// Jamais stocké : recalculé à chaque lecture depuis l'historique complet.
type UserStats struct {
	TotalCo2SavedLb float64 `json:"totalCo2SavedLb"`
	TodayCo2SavedLb float64 `json:"todayCo2SavedLb"`
	Streak          int     `json:"streak"`
	Level           int     `json:"level"`
	Badges          []Badge `json:"badges"`
	TotalActions    int     `json:"totalActions"`
}

// ChartPoint est un point de la série journalière pour les graphiques
type ChartPoint struct {
	Date       string  `json:"date"`
	Co2SavedLb float64 `json:"co2SavedLb"`
	Actions    int     `json:"actions"`
}
