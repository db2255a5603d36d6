package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/Ri4dH/EcoTrack/internal/database"
	model "github.com/Ri4dH/EcoTrack/internal/models"
	"github.com/Ri4dH/EcoTrack/internal/units"
	"github.com/Ri4dH/EcoTrack/internal/utils"
	"github.com/gorilla/mux"
)

// startDateForPeriod calcule la borne basse de la période de classement
func startDateForPeriod(period string) time.Time {
	now := time.Now()
	switch period {
	case "daily":
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case "weekly":
		return now.AddDate(0, 0, -7)
	case "monthly":
		return now.AddDate(0, 0, -30)
	default: // all-time
		return time.Time{}
	}
}

// GetLeaderboard récupère le classement CO₂. Le score est réconcilié en
// livres directement dans la requête : lb si présent, sinon kg converti :
// la même règle que units.TotalLb, poussée dans le SQL.
func GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	period := query.Get("period") // daily, weekly, monthly, all-time
	limitStr := query.Get("limit")

	if period == "" {
		period = "all-time"
	}

	limit := 50
	if limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil {
			limit = l
		}
	}

	ctx := context.Background()
	startDate := startDateForPeriod(period).UnixMilli()

	rows, err := database.DB.Query(ctx, `
		WITH user_scores AS (
			SELECT
				ea.user_id,
				SUM(COALESCE(ea.co2_saved_lb, ea.co2_saved_kg * $1)) as score,
				COUNT(*) as actions
			FROM eco_actions ea
			WHERE ea.timestamp_ms >= $2
			GROUP BY ea.user_id
		),
		ranked_users AS (
			SELECT
				us.user_id,
				us.score,
				us.actions,
				ROW_NUMBER() OVER (ORDER BY us.score DESC) as rank
			FROM user_scores us
		)
		SELECT
			ru.user_id,
			u.name as user_name,
			u.avatar,
			ru.rank,
			ru.score,
			ru.actions
		FROM ranked_users ru
		INNER JOIN users u ON ru.user_id = u.id
		WHERE u.deleted_at IS NULL
		ORDER BY ru.rank
		LIMIT $3
	`, units.KgToLb, startDate, limit)

	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query leaderboard", err)
		return
	}
	defer rows.Close()

	var leaderboard []model.LeaderboardEntry
	for rows.Next() {
		var entry model.LeaderboardEntry
		if err := rows.Scan(
			&entry.UserID, &entry.UserName, &entry.Avatar,
			&entry.Rank, &entry.Co2SavedLb, &entry.Actions,
		); err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan leaderboard row", err)
			return
		}

		// Badges du podium
		switch entry.Rank {
		case 1:
			entry.Badges = []string{"👑"}
		case 2, 3:
			entry.Badges = []string{"🌟"}
		}

		leaderboard = append(leaderboard, entry)
	}

	utils.Success(w, leaderboard)
}

// percentileForRank calcule le percentile d'un rang. Un utilisateur sans
// action classée reçoit le rang total+1 : le percentile est borné à 100
func percentileForRank(rank, totalUsers int) float64 {
	if totalUsers <= 0 || rank > totalUsers {
		return 100
	}
	return float64(rank) / float64(totalUsers) * 100
}

// GetUserRank récupère le rang d'un utilisateur dans le classement
func GetUserRank(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]
	period := r.URL.Query().Get("period")

	if period == "" {
		period = "all-time"
	}

	ctx := context.Background()
	startDate := startDateForPeriod(period).UnixMilli()

	var userRank model.UserRank
	err := database.DB.QueryRow(ctx, `
		WITH user_scores AS (
			SELECT
				ea.user_id,
				SUM(COALESCE(ea.co2_saved_lb, ea.co2_saved_kg * $1)) as score
			FROM eco_actions ea
			WHERE ea.timestamp_ms >= $2
			GROUP BY ea.user_id
		),
		ranked_users AS (
			SELECT
				us.user_id,
				us.score,
				ROW_NUMBER() OVER (ORDER BY us.score DESC) as rank
			FROM user_scores us
		),
		total_count AS (
			SELECT COUNT(*) as total FROM ranked_users
		)
		SELECT
			COALESCE(ru.rank, (SELECT total FROM total_count) + 1) as rank,
			COALESCE(ru.score, 0) as score,
			(SELECT total FROM total_count) as total_users
		FROM ranked_users ru
		RIGHT JOIN (SELECT $3::uuid as uid) u ON ru.user_id = u.uid
	`, units.KgToLb, startDate, userID).Scan(
		&userRank.Rank,
		&userRank.Co2SavedLb,
		&userRank.TotalUsers,
	)

	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch user rank", err)
		return
	}

	userRank.UserID = userID
	userRank.Percentile = percentileForRank(userRank.Rank, userRank.TotalUsers)

	utils.Success(w, userRank)
}
