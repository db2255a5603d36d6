package api

import (
	"net/http"

	"github.com/Ri4dH/EcoTrack/internal/handler"
	"github.com/Ri4dH/EcoTrack/internal/middleware"
	"github.com/Ri4dH/EcoTrack/internal/utils"
	"github.com/fatih/color"
	"github.com/gorilla/mux"
)

func SetupRouter() http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.OptionalAuth)

	authenticatedRoutes := r.PathPrefix("/").Subrouter()
	authenticatedRoutes.Use(middleware.AuthMiddleware)
	authenticatedRoutes.Use(middleware.LoggerMiddleware)

	// Root - API documentation
	r.HandleFunc("/", handler.RootHandler).Methods(http.MethodGet)

	// Auth
	r.HandleFunc("/auth/signup", handler.Signup).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/auth/logout", handler.Logout).Methods(http.MethodPost)

	// Eco actions
	authenticatedRoutes.HandleFunc("/actions", handler.SubmitAction).Methods(http.MethodPost)
	r.HandleFunc("/actions/badges", handler.GetBadgeCatalog).Methods(http.MethodGet)
	r.HandleFunc("/users/{userId}/actions", handler.GetUserActions).Methods(http.MethodGet)

	// Stats dérivées (recalculées à chaque lecture)
	r.HandleFunc("/users/{userId}/stats", handler.GetUserStats).Methods(http.MethodGet)
	r.HandleFunc("/users/{userId}/chart/{period}", handler.GetChartData).Methods(http.MethodGet)

	// Résolution de distance
	authenticatedRoutes.HandleFunc("/route/estimate", handler.EstimateRoute).Methods(http.MethodPost)

	// Leaderboard
	r.HandleFunc("/leaderboard", handler.GetLeaderboard).Methods(http.MethodGet)
	r.HandleFunc("/leaderboard/users/{userId}", handler.GetUserRank).Methods(http.MethodGet)

	// Users
	r.HandleFunc("/users/{id}", handler.GetUser).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/users/{id}", handler.UpdateUser).Methods(http.MethodPut, http.MethodPatch)
	authenticatedRoutes.HandleFunc("/users/{id}/avatar", handler.UploadAvatar).Methods(http.MethodPost)

	// Health check
	r.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.LogError("404 Not Found: %s %s", r.Method, r.URL.Path)
		color.Yellow("[404] %s %s (route non trouvée)", r.Method, r.URL.Path)
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
