package controllers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	"real-estate-api/dto"
	"real-estate-api/services"
)

func GetAllProperties(propertySvc *services.PropertyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		properties, err := propertySvc.GetAll()
		if err != nil {
			slog.Error("Error fetching properties", "error", err)
			WriteError(w, http.StatusInternalServerError, "Error fetching properties")
			return
		}
		WriteJSON(w, dto.OK(properties, "Properties loaded."))
	}
}

// ListProperties serves the filtered, sorted, paginated listing page. The
// serialized response is cached per user and query when Redis is configured.
func ListProperties(propertySvc *services.PropertyService, redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := userIDFromContext(r)

		callerKey := "anonymous"
		if userID != nil {
			callerKey = userID.String()
		}
		cacheKey := generateCacheKey(callerKey, r.URL.Query())

		if cached, ok := cacheGet(r.Context(), redisClient, cacheKey); ok {
			w.Header().Set("Content-Type", "application/json")
			w.Write(cached)
			return
		}

		query := parsePropertyQuery(r.URL.Query())
		items, total, err := propertySvc.List(query, userID)
		if err != nil {
			slog.Error("Error fetching property page", "error", err)
			WriteError(w, http.StatusInternalServerError, "Error fetching properties")
			return
		}

		query.Normalize()
		resp := dto.OK(dto.PagedResult[dto.PropertyDto]{
			TotalCount: total,
			Page:       query.Page,
			PageSize:   query.PageSize,
			Items:      items,
		}, "Properties loaded.")

		body, err := json.Marshal(resp)
		if err != nil {
			slog.Error("Failed to serialize property page", "error", err)
			WriteError(w, http.StatusInternalServerError, "Failed to encode response")
			return
		}
		cacheSet(r.Context(), redisClient, cacheKey, body)

		w.Header().Set("Content-Type", "application/json")
		w.Write(body)
	}
}

func parsePropertyQuery(values url.Values) dto.PropertyQuery {
	q := dto.PropertyQuery{
		Q:         values.Get("q"),
		City:      values.Get("city"),
		Type:      values.Get("type"),
		SortBy:    values.Get("sortBy"),
		SortOrder: values.Get("sortOrder"),
	}

	if page, err := strconv.Atoi(values.Get("page")); err == nil {
		q.Page = page
	}
	if size, err := strconv.Atoi(values.Get("pageSize")); err == nil {
		q.PageSize = size
	}
	if minPrice, err := strconv.ParseFloat(values.Get("minPrice"), 64); err == nil {
		q.MinPrice = &minPrice
	}
	if maxPrice, err := strconv.ParseFloat(values.Get("maxPrice"), 64); err == nil {
		q.MaxPrice = &maxPrice
	}
	if bedrooms, err := strconv.Atoi(values.Get("bedrooms")); err == nil {
		q.Bedrooms = &bedrooms
	}
	if bathrooms, err := strconv.Atoi(values.Get("bathrooms")); err == nil {
		q.Bathrooms = &bathrooms
	}
	return q
}

func GetPropertyByID(propertySvc *services.PropertyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(mux.Vars(r)["id"])
		if err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid property ID")
			return
		}

		property, err := propertySvc.GetByID(id, userIDFromContext(r))
		if err != nil {
			slog.Error("Error fetching property", "id", id, "error", err)
			WriteError(w, http.StatusInternalServerError, "Error fetching property")
			return
		}
		if property == nil {
			WriteError(w, http.StatusNotFound, "Property not found")
			return
		}
		WriteJSON(w, dto.OK(property, "Property loaded."))
	}
}

func CreateProperty(propertySvc *services.PropertyService, redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.CreatePropertyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Info("Invalid request body", "error", err)
			WriteError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Title == "" {
			failure := dto.Fail(http.StatusBadRequest, "Validation failed.")
			failure.Data = map[string]any{"errors": map[string][]string{"title": {"Title is required"}}}
			WriteJSON(w, failure)
			return
		}

		property, err := propertySvc.Create(req)
		if err != nil {
			slog.Error("Insert failed", "error", err)
			WriteError(w, http.StatusInternalServerError, "Failed to create property")
			return
		}

		go deletePropertyCache(redisClient)

		WriteJSON(w, dto.Created(property, "Property created."))
	}
}

func UpdateProperty(propertySvc *services.PropertyService, redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(mux.Vars(r)["id"])
		if err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid property ID")
			return
		}

		var req dto.UpdatePropertyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Info("Invalid update data", "error", err)
			WriteError(w, http.StatusBadRequest, "Invalid update data")
			return
		}

		updated, err := propertySvc.Update(id, req)
		if err != nil {
			slog.Error("Update failed", "id", id, "error", err)
			WriteError(w, http.StatusInternalServerError, "Update failed")
			return
		}
		if !updated {
			WriteError(w, http.StatusNotFound, "Property not found")
			return
		}

		go deletePropertyCache(redisClient)

		WriteJSON(w, dto.OK(true, "Property updated successfully."))
	}
}

func DeleteProperty(propertySvc *services.PropertyService, redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(mux.Vars(r)["id"])
		if err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid property ID")
			return
		}

		deleted, err := propertySvc.Delete(id)
		if err != nil {
			slog.Error("Delete failed", "id", id, "error", err)
			WriteError(w, http.StatusInternalServerError, "Delete failed")
			return
		}
		if !deleted {
			WriteError(w, http.StatusNotFound, "Property not found")
			return
		}

		go deletePropertyCache(redisClient)

		WriteJSON(w, dto.OK(true, "Property deleted successfully."))
	}
}

func SearchProperties(propertySvc *services.PropertyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.SearchPropertyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Info("Invalid search payload", "error", err)
			WriteError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		matches, err := propertySvc.Search(req)
		if err != nil {
			slog.Error("Search failed", "error", err)
			WriteError(w, http.StatusInternalServerError, "Search failed")
			return
		}
		WriteJSON(w, dto.OK(matches, "Search results loaded."))
	}
}
