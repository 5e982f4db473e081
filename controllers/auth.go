package controllers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"real-estate-api/dto"
	"real-estate-api/services"
)

func Register(authSvc *services.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Info("Error decoding register payload", "error", err)
			WriteError(w, http.StatusBadRequest, "Invalid request payload")
			return
		}

		resp, fieldErrs, err := authSvc.Register(req)
		if err != nil {
			if errors.Is(err, services.ErrEmailTaken) {
				slog.Info("Register rejected, email already exists", "email", req.Email)
				WriteError(w, http.StatusConflict, "Email already exists")
				return
			}
			slog.Error("Error registering user", "error", err)
			WriteError(w, http.StatusInternalServerError, "Failed to create user")
			return
		}
		if len(fieldErrs) > 0 {
			failure := dto.Fail(http.StatusBadRequest, "Validation failed.")
			failure.Data = map[string]any{"errors": fieldErrs}
			WriteJSON(w, failure)
			return
		}

		WriteJSON(w, dto.Created(resp, "User registered successfully."))
	}
}

func Login(authSvc *services.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Info("Error decoding login payload", "error", err)
			WriteError(w, http.StatusBadRequest, "Invalid request payload")
			return
		}

		resp, err := authSvc.Login(req)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				slog.Info("Login failed", "email", req.Email)
				WriteError(w, http.StatusUnauthorized, "Invalid email or password.")
				return
			}
			slog.Error("Error during login", "error", err)
			WriteError(w, http.StatusInternalServerError, "Failed to sign in")
			return
		}

		WriteJSON(w, dto.OK(resp, "Signed in successfully."))
	}
}
