package handler

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/Ri4dH/EcoTrack/internal/database"
	model "github.com/Ri4dH/EcoTrack/internal/models"
	"github.com/Ri4dH/EcoTrack/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	City     string `json:"city,omitempty"`
}

// Signup crée un compte et ouvre une session
func Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	if req.Email == "" || req.Password == "" || req.Name == "" {
		utils.ErrorSimple(w, http.StatusBadRequest, "name, email and password are required")
		return
	}

	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not hash password", err)
		return
	}

	var user model.UserProfile
	err = database.DB.QueryRow(ctx,
		`INSERT INTO users(name, email, password_hash, city, provider, join_date, created_at)
		 VALUES($1, $2, $3, NULLIF($4,''), 'email', NOW(), NOW())
		 RETURNING id, name, email, join_date, created_at`,
		req.Name, req.Email, string(hash), req.City,
	).Scan(&user.ID, &user.Name, &user.Email, &user.JoinDate, &user.CreatedAt)

	if err != nil {
		utils.Error(w, http.StatusConflict, "could not create user (email already taken?)", err)
		return
	}
	user.City = req.City
	user.Provider = "email"

	token, err := openSession(ctx, r, user.ID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create session", err)
		return
	}

	utils.Success(w, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

func Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	ctx := context.Background()
	var user model.UserProfile
	var hashedPassword string
	var updatedAt sql.NullTime

	err := database.DB.QueryRow(ctx,
		`SELECT id, name, email, COALESCE(avatar,'') as avatar, COALESCE(city,'') as city,
		 join_date, created_at, updated_at, password_hash
		 FROM users WHERE email=$1 AND deleted_at IS NULL`,
		req.Email,
	).Scan(&user.ID, &user.Name, &user.Email, &user.Avatar, &user.City,
		&user.JoinDate, &user.CreatedAt, &updatedAt, &hashedPassword)
	user.UpdatedAt = utils.NullTimeToTime(updatedAt)

	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(req.Password)); err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := openSession(ctx, r, user.ID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create session", err)
		return
	}

	utils.Success(w, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

// openSession génère un token aléatoire et insère la session (24h)
func openSession(ctx context.Context, r *http.Request, userID string) (string, error) {
	token, err := utils.GenerateSessionToken()
	if err != nil {
		return "", err
	}
	now := time.Now()

	var sessionID string
	err = database.DB.QueryRow(ctx,
		`INSERT INTO sessions(user_id, token, ip_address, user_agent, is_active, created_at, expires_at, created_by)
		 VALUES($1,$2,$3,$4,true,$5,$6,$7)
		 RETURNING id`,
		userID, token, r.RemoteAddr, r.UserAgent(), now, now.Add(24*time.Hour), userID,
	).Scan(&sessionID)
	if err != nil {
		return "", err
	}
	return token, nil
}

func Logout(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get("Authorization")
	if token == "" {
		utils.ErrorSimple(w, http.StatusBadRequest, "missing token")
		return
	}

	ctx := context.Background()

	// Récupérer l'ID de l'utilisateur de la session avant le soft delete
	var userID string
	err := database.DB.QueryRow(ctx,
		`SELECT user_id FROM sessions WHERE token=$1 AND is_active=true AND deleted_at IS NULL`,
		token,
	).Scan(&userID)
	if err != nil {
		utils.ErrorSimple(w, http.StatusNotFound, "session not found or already logged out")
		return
	}

	// Soft delete de la session
	res, err := database.DB.Exec(ctx,
		`UPDATE sessions
		 SET is_active=false, expires_at=$2, deleted_at=NOW(), deleted_by=$3
		 WHERE token=$1 AND is_active=true AND deleted_at IS NULL`,
		token, time.Now(), userID,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not logout", err)
		return
	}

	if res.RowsAffected() == 0 {
		utils.ErrorSimple(w, http.StatusNotFound, "session not found or already logged out")
		return
	}

	utils.Message(w, "logged out")
}
