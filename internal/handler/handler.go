package handler

import (
	"net/http"

	"github.com/Ri4dH/EcoTrack/internal/config"
	"github.com/Ri4dH/EcoTrack/internal/database"
	"github.com/Ri4dH/EcoTrack/internal/estimator"
	"github.com/Ri4dH/EcoTrack/internal/logger"
	"github.com/Ri4dH/EcoTrack/internal/routing"
	"github.com/Ri4dH/EcoTrack/internal/service"
	"github.com/Ri4dH/EcoTrack/internal/services"
	"github.com/Ri4dH/EcoTrack/internal/utils"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Collaborateurs partagés par les handlers, câblés au démarrage
var (
	actionStore   *database.ActionStore
	routeClient   *routing.Client
	submission    *service.Submission
	cloudinarySvc *services.CloudinaryService
)

// Init câble les collaborateurs des handlers. Une clé Maps absente est une
// configuration valide : la résolution de distance passe en Haversine seul.
func Init(cfg *config.Config, pool *pgxpool.Pool) {
	actionStore = database.NewActionStore(pool)
	routeClient = routing.NewClient(cfg.MapsAPIKey)
	submission = service.NewSubmission(
		estimator.NewClient(cfg.EstimatorBaseURL),
		routeClient,
		actionStore,
	)

	svc, err := services.NewCloudinaryService(cfg)
	if err != nil {
		logger.Warning("Cloudinary disabled: %v", err)
	}
	cloudinarySvc = svc
}

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}
