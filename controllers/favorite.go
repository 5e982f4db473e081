package controllers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"real-estate-api/dto"
	"real-estate-api/services"
)

func AddFavorite(favoriteSvc *services.FavoriteService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := userIDFromContext(r)
		if userID == nil {
			WriteError(w, http.StatusUnauthorized, "User ID missing in context")
			return
		}

		propertyID, err := uuid.Parse(mux.Vars(r)["propertyId"])
		if err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid property ID format")
			return
		}

		added, err := favoriteSvc.Add(*userID, propertyID)
		if err != nil {
			slog.Error("Failed to add property to favorites", "error", err)
			WriteError(w, http.StatusInternalServerError, "Failed to add property to favorites")
			return
		}
		if !added {
			WriteError(w, http.StatusNotFound, "Property not found")
			return
		}
		WriteJSON(w, dto.OK(true, "Added to favorites."))
	}
}

func RemoveFavorite(favoriteSvc *services.FavoriteService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := userIDFromContext(r)
		if userID == nil {
			WriteError(w, http.StatusUnauthorized, "User ID missing in context")
			return
		}

		propertyID, err := uuid.Parse(mux.Vars(r)["propertyId"])
		if err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid property ID format")
			return
		}

		removed, err := favoriteSvc.Remove(*userID, propertyID)
		if err != nil {
			slog.Error("Failed to remove property from favorites", "error", err)
			WriteError(w, http.StatusInternalServerError, "Failed to remove property from favorites")
			return
		}
		if !removed {
			WriteError(w, http.StatusNotFound, "Favorite not found")
			return
		}
		WriteJSON(w, dto.OK(true, "Property removed from favorites."))
	}
}

func GetFavorites(favoriteSvc *services.FavoriteService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := userIDFromContext(r)
		if userID == nil {
			WriteError(w, http.StatusUnauthorized, "User ID missing in context")
			return
		}

		favorites, err := favoriteSvc.List(*userID)
		if err != nil {
			slog.Error("Failed to fetch favorite properties", "error", err)
			WriteError(w, http.StatusInternalServerError, "Failed to fetch favorite properties")
			return
		}
		WriteJSON(w, dto.OK(favorites, "Favorites loaded."))
	}
}
