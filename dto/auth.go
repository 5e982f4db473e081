package dto

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	UserID     uuid.UUID `json:"userId"`
	UserName   string    `json:"userName"`
	Email      string    `json:"email"`
	Token      string    `json:"token"`
	Expiration time.Time `json:"expiration"`
}
