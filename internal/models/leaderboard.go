package model

import (
	"database/sql"
)

// LeaderboardEntry est une ligne du classement CO₂. Le score est réconcilié
// en livres directement dans la requête SQL (lb si présent, sinon kg converti).
type LeaderboardEntry struct {
	UserID     string         `json:"userId"`
	UserName   string         `json:"userName"`
	Avatar     sql.NullString `json:"avatar,omitempty"`
	Rank       int            `json:"rank"`
	Co2SavedLb float64        `json:"co2SavedLb"`
	Actions    int            `json:"actions"`
	Badges     []string       `json:"badges,omitempty"`
}

type UserRank struct {
	UserID     string  `json:"userId"`
	Rank       int     `json:"rank"`
	Co2SavedLb float64 `json:"co2SavedLb"`
	TotalUsers int     `json:"totalUsers"`
	Percentile float64 `json:"percentile"` // Top X%
}
