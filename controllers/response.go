package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"real-estate-api/dto"
)

type ContextKey string

// UserIDKey carries the authenticated user's id through the request context.
const UserIDKey = ContextKey("userID")

func userIDFromContext(r *http.Request) *uuid.UUID {
	id, ok := r.Context().Value(UserIDKey).(uuid.UUID)
	if !ok {
		return nil
	}
	return &id
}

func WriteJSON(w http.ResponseWriter, resp dto.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
	json.NewEncoder(w).Encode(resp)
}

func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, dto.Fail(statusCode, message))
}
