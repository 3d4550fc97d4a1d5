package archive

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/saulo-duarte/roadmap-lambda/internal/auth"
	"github.com/saulo-duarte/roadmap-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func ownerFromRequest(r *http.Request) (uuid.UUID, bool) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	ownerID, ok := ownerFromRequest(r)
	if !ok {
		log.Warn("User not authenticated to list roadmaps")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	roadmaps, err := h.service.List(r.Context(), ownerID)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if roadmaps == nil {
		roadmaps = []*Roadmap{}
	}

	config.JSON(w, http.StatusOK, roadmaps)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	ownerID, ok := ownerFromRequest(r)
	if !ok {
		log.Warn("User not authenticated to read roadmap")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	rm, err := h.service.Get(r.Context(), id, ownerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "roadmap not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to read roadmap")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, rm)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	ownerID, ok := ownerFromRequest(r)
	if !ok {
		log.Warn("User not authenticated to delete roadmap")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(r.Context(), id, ownerID); err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "roadmap not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to delete roadmap")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
