package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/lfmcarvalho/gerenciamento_propriedades/cache"
	"github.com/lfmcarvalho/gerenciamento_propriedades/models"
	"github.com/lfmcarvalho/gerenciamento_propriedades/repository"
)

type ContextKey string

const UserIDKey = ContextKey("userID")

type createPropertyRequest struct {
	Address     string          `json:"address"`
	Type        string          `json:"type"`
	Photos      json.RawMessage `json:"photos"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	OwnerID     int64           `json:"ownerId"`
}

func GetProperties(properties repository.PropertyRepository, propertyCache cache.PropertyCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(UserIDKey).(int64)
		if !ok {
			log.Println("User ID missing in context for GetProperties")
			http.Error(w, "User ID missing in context", http.StatusUnauthorized)
			return
		}

		if cached, hit := propertyCache.Get(r.Context(), userID); hit {
			w.Header().Set("Content-Type", "application/json")
			w.Write(cached)
			return
		}

		owned, err := properties.FindByOwner(r.Context(), userID)
		if err != nil {
			log.Printf("Error fetching properties for owner %d: %v", userID, err)
			http.Error(w, "Error fetching properties", http.StatusInternalServerError)
			return
		}

		resultBytes, err := json.Marshal(owned)
		if err != nil {
			log.Printf("Failed to serialize properties: %v", err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
			return
		}

		propertyCache.Set(r.Context(), userID, resultBytes)

		w.Header().Set("Content-Type", "application/json")
		w.Write(resultBytes)
	}
}

func CreateProperty(properties repository.PropertyRepository, users repository.UserRepository, propertyCache cache.PropertyCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPropertyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("Invalid request body: %v", err)
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		if req.OwnerID == 0 {
			log.Println("ownerId missing on property creation")
			http.Error(w, "ownerId is required", http.StatusBadRequest)
			return
		}

		photos, err := decodePhotos(req.Photos)
		if err != nil {
			log.Printf("Invalid photos value: %v", err)
			http.Error(w, "photos must be an array of strings", http.StatusBadRequest)
			return
		}

		owner, err := users.FindByID(r.Context(), req.OwnerID)
		if err != nil {
			log.Printf("Error looking up owner %d: %v", req.OwnerID, err)
			http.Error(w, "Failed to create property", http.StatusInternalServerError)
			return
		}
		if owner == nil {
			log.Printf("Owner %d does not exist", req.OwnerID)
			http.Error(w, "Owner not found", http.StatusNotFound)
			return
		}

		property := models.Property{
			Address:     req.Address,
			Type:        req.Type,
			Photos:      photos,
			Description: req.Description,
			Status:      req.Status,
			OwnerID:     req.OwnerID,
		}

		if err := properties.Insert(r.Context(), &property); err != nil {
			log.Printf("Insert failed: %v", err)
			http.Error(w, "Failed to create property", http.StatusInternalServerError)
			return
		}

		// Invalidate before answering so a listing that follows the
		// response never sees the stale cached set.
		propertyCache.Invalidate(r.Context())

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(property)
	}
}

func DeleteProperty(properties repository.PropertyRepository, propertyCache cache.PropertyCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		propertyID := mux.Vars(r)["id"]
		id, err := strconv.ParseInt(propertyID, 10, 64)
		if err != nil {
			log.Printf("Invalid property ID %s: %v", propertyID, err)
			http.Error(w, "Invalid property ID", http.StatusBadRequest)
			return
		}

		deleted, err := properties.DeleteByID(r.Context(), id)
		if err != nil {
			log.Printf("Delete failed for property %d: %v", id, err)
			http.Error(w, "Delete failed", http.StatusInternalServerError)
			return
		}

		if deleted == 0 {
			log.Printf("No property found with ID %d", id)
			http.Error(w, "Property not found", http.StatusNotFound)
			return
		}

		propertyCache.Invalidate(r.Context())

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Property deleted successfully"})
	}
}

// decodePhotos enforces that photos, when present, is an array of strings.
// Absent or null collapses to an empty slice.
func decodePhotos(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return []string{}, nil
	}

	var photos []string
	if err := json.Unmarshal(raw, &photos); err != nil {
		return nil, err
	}
	if photos == nil {
		photos = []string{}
	}
	return photos, nil
}
