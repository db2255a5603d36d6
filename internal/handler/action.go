package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Ri4dH/EcoTrack/internal/database"
	"github.com/Ri4dH/EcoTrack/internal/estimator"
	"github.com/Ri4dH/EcoTrack/internal/impact"
	"github.com/Ri4dH/EcoTrack/internal/middleware"
	model "github.com/Ri4dH/EcoTrack/internal/models"
	"github.com/Ri4dH/EcoTrack/internal/routing"
	"github.com/Ri4dH/EcoTrack/internal/scanner"
	"github.com/Ri4dH/EcoTrack/internal/utils"
	"github.com/gorilla/mux"
)

// SubmitAction enregistre une nouvelle action écologique via le flux complet
// (distance → estimation → validation → persistance → stats)
func SubmitAction(w http.ResponseWriter, r *http.Request) {
	var req model.SubmitActionRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}

	resp, err := submission.Submit(r.Context(), user.ID, req)
	if err != nil {
		writeSubmissionError(w, err)
		return
	}

	utils.Success(w, resp)
}

// writeSubmissionError mappe chaque catégorie d'erreur d'estimation sur un
// statut HTTP et une indication de remédiation distincts : la catégorie
// n'est jamais avalée
func writeSubmissionError(w http.ResponseWriter, err error) {
	var estErr *estimator.Error
	if errors.As(err, &estErr) {
		status := http.StatusBadGateway
		switch estErr.Category {
		case estimator.CategoryConfig:
			status = http.StatusInternalServerError
		case estimator.CategoryTimeout:
			status = http.StatusGatewayTimeout
		}
		utils.ErrorWithHint(w, status, err.Error(), estErr.Hint())
		return
	}
	utils.ErrorSimple(w, http.StatusBadRequest, err.Error())
}

// GetUserActions récupère l'historique d'actions d'un utilisateur
func GetUserActions(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]

	query := r.URL.Query()
	limitStr := query.Get("limit")
	offsetStr := query.Get("offset")

	limit := 50
	if limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil {
			limit = l
		}
	}
	offset := 0
	if offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil {
			offset = o
		}
	}

	ctx := context.Background()

	rows, err := database.DB.Query(ctx, `
		SELECT
			id, user_id, action, distance_miles, distance_km,
			co2_saved_kg, co2_saved_lb, materials, meal, message,
			timestamp_ms, created_at
		FROM eco_actions
		WHERE user_id = $1
		ORDER BY timestamp_ms DESC
		LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query actions", err)
		return
	}
	defer rows.Close()

	var actions []model.ActionRecord
	for rows.Next() {
		rec, err := scanner.ScanActionRecord(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan action row", err)
			return
		}
		actions = append(actions, *rec)
	}

	utils.Success(w, actions)
}

// GetUserStats recalcule les statistiques dérivées depuis l'historique
// complet : jamais stockées, jamais mises en cache ici
func GetUserStats(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]

	history, err := actionStore.History(r.Context(), userID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch action history", err)
		return
	}

	utils.Success(w, impact.ComputeStats(history, time.Now()))
}

// GetChartData récupère la série journalière de CO₂ pour les graphiques
func GetChartData(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]
	period := vars["period"] // week, month, year

	var days int
	switch period {
	case "week":
		days = 7
	case "month":
		days = 30
	case "year":
		days = 365
	default:
		days = 7
	}

	history, err := actionStore.History(r.Context(), userID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch action history", err)
		return
	}

	utils.Success(w, impact.ChartSeries(history, time.Now(), days))
}

// EstimateRoute résout une distance entre deux points sans soumettre
// d'action (prévisualisation côté client)
func EstimateRoute(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Origin      model.Coordinate `json:"origin"`
		Destination model.Coordinate `json:"destination"`
		Mode        string           `json:"mode"`
	}
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	mode := routing.ModeWalking
	if req.Mode == string(routing.ModeBicycling) {
		mode = routing.ModeBicycling
	}

	estimate := routeClient.Resolve(r.Context(), req.Origin, req.Destination, mode)
	utils.Success(w, estimate)
}

// GetBadgeCatalog retourne le catalogue fixe des badges (Earned à false)
func GetBadgeCatalog(w http.ResponseWriter, r *http.Request) {
	utils.Success(w, impact.Catalog())
}
