package scanner

import (
	"database/sql"

	model "github.com/Ri4dH/EcoTrack/internal/models"
	"github.com/Ri4dH/EcoTrack/internal/utils"
	"github.com/lib/pq"
)

// ScanActionRecord scanne une ligne SQL vers un ActionRecord.
// Utilise les types sql.Null* et les convertit automatiquement.
func ScanActionRecord(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.ActionRecord, error) {
	var rec model.ActionRecord
	var distanceMiles, distanceKm, co2Lb sql.NullFloat64
	var meal, message sql.NullString

	err := scanner.Scan(
		&rec.ID, &rec.UserID, &rec.Action,
		&distanceMiles, &distanceKm,
		&rec.Co2SavedKg, &co2Lb,
		pq.Array(&rec.Materials), &meal, &message,
		&rec.TimestampMs, &rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Conversions
	rec.DistanceMiles = utils.NullFloat64ToPointer(distanceMiles)
	rec.DistanceKm = utils.NullFloat64ToPointer(distanceKm)
	rec.Co2SavedLb = utils.NullFloat64ToPointer(co2Lb)
	rec.Meal = utils.NullStringToString(meal)
	rec.Message = utils.NullStringToString(message)

	return &rec, nil
}

// ScanUserProfile scanne une ligne SQL vers un UserProfile
func ScanUserProfile(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.UserProfile, error) {
	var user model.UserProfile
	var avatar, city, provider sql.NullString
	var updatedBy sql.NullString
	var updatedAt sql.NullTime

	err := scanner.Scan(
		&user.ID, &user.Name, &user.Email, &avatar, &city, &provider,
		&user.IsAdmin, &user.JoinDate, &user.CreatedAt, &updatedAt,
		&user.CreatedBy, &updatedBy,
	)
	if err != nil {
		return nil, err
	}

	// Conversions
	user.Avatar = utils.NullStringToString(avatar)
	user.City = utils.NullStringToString(city)
	user.Provider = utils.NullStringToString(provider)
	user.UpdatedBy = utils.NullStringToPointer(updatedBy)
	user.UpdatedAt = utils.NullTimeToTime(updatedAt)

	return &user, nil
}
