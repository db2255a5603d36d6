package database

import (
	"context"
	"fmt"

	model "github.com/Ri4dH/EcoTrack/internal/models"
	"github.com/Ri4dH/EcoTrack/internal/scanner"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// ActionStore persiste les actions écologiques, en append-only par
// utilisateur : le cœur n'a aucune opération de mise à jour ni de
// suppression sur l'historique.
type ActionStore struct {
	pool *pgxpool.Pool
}

func NewActionStore(pool *pgxpool.Pool) *ActionStore {
	return &ActionStore{pool: pool}
}

// Append insère un enregistrement d'action terminé
func (s *ActionStore) Append(ctx context.Context, rec *model.ActionRecord) error {
	err := s.pool.QueryRow(ctx, `
		INSERT INTO eco_actions(
			id, user_id, action, distance_miles, distance_km,
			co2_saved_kg, co2_saved_lb, materials, meal, message,
			timestamp_ms, created_at
		) VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		RETURNING created_at
	`,
		rec.ID, rec.UserID, rec.Action, rec.DistanceMiles, rec.DistanceKm,
		rec.Co2SavedKg, rec.Co2SavedLb, pq.Array(rec.Materials), rec.Meal, rec.Message,
		rec.TimestampMs,
	).Scan(&rec.CreatedAt)

	if err != nil {
		return fmt.Errorf("could not insert eco action: %w", err)
	}
	return nil
}

// History retourne l'historique complet d'un utilisateur, du plus ancien au
// plus récent. Le moteur de stats consomme l'instantané entier.
func (s *ActionStore) History(ctx context.Context, userID string) ([]model.ActionRecord, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT
			id, user_id, action, distance_miles, distance_km,
			co2_saved_kg, co2_saved_lb, materials, meal, message,
			timestamp_ms, created_at
		FROM eco_actions
		WHERE user_id = $1
		ORDER BY timestamp_ms ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("could not query action history: %w", err)
	}
	defer rows.Close()

	var records []model.ActionRecord
	for rows.Next() {
		rec, err := scanner.ScanActionRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan action row: %w", err)
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}
