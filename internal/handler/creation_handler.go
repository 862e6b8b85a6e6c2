package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"quickAI/internal/metrics"
	"quickAI/internal/models"
	"quickAI/internal/repository"
	"quickAI/internal/service"
)

type ToggleLikeRequest struct {
	ID json.Number `json:"id" validate:"required"`
}

func (h *Handlers) GetUserCreations(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, "Not authenticated", http.StatusUnauthorized)
		return
	}

	creations, plan, err := h.CreationService.ListUserCreations(r.Context(), identity)
	if err != nil {
		h.Log.WithError(err).WithField("user_id", identity.UserID).Error("list user creations")
		WriteFailure(w, "failed to load creations")
		return
	}

	WriteJSON(w, CreationsResponse{Success: true, Creations: nonNil(creations), Plan: plan}, http.StatusOK)
}

func (h *Handlers) GetPublishedCreations(w http.ResponseWriter, r *http.Request) {
	creations, err := h.CreationService.ListPublishedCreations(r.Context())
	if err != nil {
		h.Log.WithError(err).Error("list published creations")
		WriteFailure(w, "failed to load creations")
		return
	}

	WriteJSON(w, CreationsResponse{Success: true, Creations: nonNil(creations)}, http.StatusOK)
}

// nonNil keeps an empty list encoded as [] rather than null.
func nonNil(creations []models.Creation) []models.Creation {
	if creations == nil {
		return []models.Creation{}
	}
	return creations
}

func (h *Handlers) ToggleLikeCreation(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, "Not authenticated", http.StatusUnauthorized)
		return
	}

	var req ToggleLikeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteFailure(w, "invalid request body")
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteFailure(w, "creation id is required")
		return
	}

	creationID, err := req.ID.Int64()
	if err != nil || creationID <= 0 {
		WriteFailure(w, "invalid creation id")
		return
	}

	message, err := h.CreationService.ToggleLike(r.Context(), identity, creationID)
	if err != nil {
		if errors.Is(err, repository.ErrCreationNotFound) {
			metrics.RecordLikeToggle("not_found")
			WriteFailure(w, "creation not found")
			return
		}
		metrics.RecordLikeToggle("error")
		h.Log.WithError(err).WithFields(logrus.Fields{
			"user_id":     identity.UserID,
			"creation_id": creationID,
		}).Error("toggle like")
		WriteFailure(w, "failed to toggle like")
		return
	}

	if message == service.MessageLiked {
		metrics.RecordLikeToggle("liked")
	} else {
		metrics.RecordLikeToggle("unliked")
	}

	WriteJSON(w, Response{Success: true, Message: message}, http.StatusOK)
}
