package handler

import (
	"net/http"

	"github.com/Ri4dH/EcoTrack/internal/utils"
)

// RootHandler expose la documentation sommaire de l'API
func RootHandler(w http.ResponseWriter, r *http.Request) {
	utils.Success(w, map[string]interface{}{
		"name":    "EcoTrack API",
		"version": "1.0",
		"endpoints": []string{
			"POST /auth/signup",
			"POST /auth/login",
			"POST /auth/logout",
			"POST /actions",
			"GET  /actions/badges",
			"GET  /users/{userId}/actions",
			"GET  /users/{userId}/stats",
			"GET  /users/{userId}/chart/{period}",
			"POST /route/estimate",
			"GET  /leaderboard",
			"GET  /leaderboard/users/{userId}",
			"GET  /users/{id}",
			"PUT  /users/{id}",
			"POST /users/{id}/avatar",
			"GET  /health",
		},
	})
}
