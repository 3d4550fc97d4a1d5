package roadmap

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/saulo-duarte/roadmap-lambda/internal/archive"
	"github.com/saulo-duarte/roadmap-lambda/internal/auth"
	"github.com/saulo-duarte/roadmap-lambda/internal/config"
)

type Handler struct {
	service Service
	archive archive.Service
}

// NewHandler builds the JSON handler. archive may be nil, in which case
// nothing is kept after the response is written. Otherwise results of
// authenticated callers are archived.
func NewHandler(s Service, a archive.Service) *Handler {
	return &Handler{service: s, archive: a}
}

// Create godoc
// @Summary      Generate a study roadmap
// @Tags         roadmaps
// @Accept       json
// @Produce      json,audio/mpeg,application/pdf
// @Param        request body GenerateRoadmapDTO true "Learner profile"
// @Success      201 {object} RoadmapResponse
// @Failure      400 {object} ErrorResponse
// @Failure      502 {object} RoadmapResponse
// @Router       /roadmaps [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto GenerateRoadmapDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid roadmap request body")
		config.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	format, err := ParseOutputFormat(dto.Format)
	if err != nil {
		config.JSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error(), Field: "format"})
		return
	}

	req := dto.toRequest()
	out, err := h.service.Produce(r.Context(), req, format)
	if err != nil {
		var vErr *ValidationError
		switch {
		case errors.As(err, &vErr):
			config.JSON(w, http.StatusBadRequest, ErrorResponse{Error: vErr.Message, Field: vErr.Field})
		case errors.Is(err, ErrArtifact) && out != nil:
			resp := toResponse(nil, out.Result)
			resp.Error = "could not build " + string(format) + " output"
			config.JSON(w, http.StatusBadGateway, resp)
		case errors.Is(err, ErrUnsupportedFormat):
			config.JSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error(), Field: "format"})
		default:
			log.WithError(err).Error("Failed to produce roadmap")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	if out.Result.Failed {
		config.JSON(w, http.StatusBadGateway, toResponse(nil, out.Result))
		return
	}

	id := h.keep(r.Context(), req, format, out.Result)

	if out.Artifact != nil {
		if id != nil {
			w.Header().Set("X-Roadmap-Id", id.String())
		}
		config.Attachment(w, out.Artifact.ContentType, out.Artifact.Filename, out.Artifact.Body)
		return
	}

	config.JSON(w, http.StatusCreated, toResponse(id, out.Result))
}

// keep archives a successful result for its owner. Anonymous results are
// never archived. Archive failures are logged and do not affect the response.
func (h *Handler) keep(ctx context.Context, req Request, format OutputFormat, res *Result) *uuid.UUID {
	if h.archive == nil {
		return nil
	}
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil
	}
	ownerID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil
	}
	req = req.normalized()

	rm := &archive.Roadmap{
		OwnerID:      &ownerID,
		Grade:        string(req.Grade),
		Subject:      req.Subject,
		DailyMinutes: req.DailyMinutes,
		WantsAudio:   req.WantsAudio,
		WantsVisuals: req.WantsVisuals,
		Format:       string(format),
		Content:      res.Text,
		Model:        res.Model,
	}
	if err := h.archive.Save(ctx, rm); err != nil {
		return nil
	}
	return &rm.ID
}
