package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Ri4dH/EcoTrack/internal/database"
	"github.com/Ri4dH/EcoTrack/internal/middleware"
	"github.com/Ri4dH/EcoTrack/internal/scanner"
	"github.com/Ri4dH/EcoTrack/internal/utils"
	"github.com/gorilla/mux"
)

const userSelectColumns = `
	id, name, email, avatar, city, provider, is_admin,
	join_date, created_at, updated_at, created_by, updated_by`

// GetUser récupère un profil utilisateur par son ID
func GetUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["id"]

	ctx := context.Background()

	row := database.DB.QueryRow(ctx,
		`SELECT `+userSelectColumns+` FROM users WHERE id=$1 AND deleted_at IS NULL`,
		userID,
	)

	user, err := scanner.ScanUserProfile(row)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "user not found", err)
		return
	}

	utils.Success(w, user)
}

// UpdateUser met à jour un profil (propriétaire ou admin uniquement)
func UpdateUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["id"]

	if !middleware.IsOwnerOrAdmin(r, userID) {
		utils.ErrorSimple(w, http.StatusForbidden, "you are not authorized to update this user")
		return
	}

	var updates map[string]interface{}
	if err := utils.DecodeJSON(r, &updates); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ctx := context.Background()

	// Construction dynamique de la requête UPDATE
	query := "UPDATE users SET updated_at = NOW()"
	args := []interface{}{}
	argCount := 1

	for field, column := range map[string]string{
		"name": "name",
		"city": "city",
	} {
		if value, ok := updates[field]; ok {
			query += ", " + column + " = $" + strconv.Itoa(argCount)
			args = append(args, value)
			argCount++
		}
	}

	query += " WHERE id = $" + strconv.Itoa(argCount) + " AND deleted_at IS NULL"
	args = append(args, userID)

	if _, err := database.DB.Exec(ctx, query, args...); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not update user", err)
		return
	}

	row := database.DB.QueryRow(ctx,
		`SELECT `+userSelectColumns+` FROM users WHERE id=$1 AND deleted_at IS NULL`,
		userID,
	)
	user, err := scanner.ScanUserProfile(row)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch updated user", err)
		return
	}

	utils.Success(w, user)
}

// UploadAvatar téléverse l'avatar de l'utilisateur vers Cloudinary
func UploadAvatar(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["id"]

	if !middleware.IsOwnerOrAdmin(r, userID) {
		utils.ErrorSimple(w, http.StatusForbidden, "you are not authorized to update this avatar")
		return
	}

	// 5 Mo max
	if err := r.ParseMultipartForm(5 << 20); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid multipart form", err)
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "missing avatar file", err)
		return
	}
	defer file.Close()

	if cloudinarySvc == nil {
		utils.ErrorSimple(w, http.StatusServiceUnavailable, "avatar uploads are not configured")
		return
	}

	ctx := context.Background()
	url, err := cloudinarySvc.UploadAvatar(ctx, file, userID, header.Filename)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not upload avatar", err)
		return
	}

	if _, err := database.DB.Exec(ctx,
		`UPDATE users SET avatar=$1, updated_at=NOW() WHERE id=$2`,
		url, userID,
	); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not save avatar URL", err)
		return
	}

	utils.Success(w, map[string]string{"avatar": url})
}
