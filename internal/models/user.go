package model

import (
	"time"
)

// DateFields contient les champs d'audit standard pour toutes les entités
type DateFields struct {
	CreatedBy *string   `json:"createdBy,omitempty"`
	UpdatedBy *string   `json:"updatedBy,omitempty"`
	DeletedAt time.Time `json:"deletedAt,omitempty"`
	DeletedBy *string   `json:"deletedBy,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

type UserProfile struct {
	ID       string    `json:"id,omitempty"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Avatar   string    `json:"avatar,omitempty"`
	City     string    `json:"city,omitempty"`
	Provider string    `json:"provider,omitempty"` // email, google, apple
	IsAdmin  bool      `json:"isAdmin"`
	JoinDate time.Time `json:"joinDate,omitempty"`
	DateFields
}
