package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"quickAI/internal/metrics"
	"quickAI/internal/models"
	"quickAI/internal/service"
)

type GenerateArticleRequest struct {
	Prompt string `json:"prompt" validate:"required"`
	Length int    `json:"length" validate:"required,min=100,max=4000"`
}

type GenerateImageRequest struct {
	Prompt  string `json:"prompt" validate:"required"`
	Publish bool   `json:"publish"`
}

func (h *Handlers) GenerateArticle(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, "Not authenticated", http.StatusUnauthorized)
		return
	}

	var req GenerateArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteFailure(w, "invalid request body")
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteFailure(w, "prompt and a length between 100 and 4000 are required")
		return
	}

	creation, err := h.AIService.GenerateArticle(r.Context(), identity, service.GenerateArticleRequest{
		Prompt: req.Prompt,
		Length: req.Length,
	})
	if err != nil {
		h.writeGenerationError(w, identity, models.CreationTypeArticle, err)
		return
	}

	metrics.RecordGeneration(models.CreationTypeArticle, "success")
	WriteJSON(w, ContentResponse{Success: true, Content: creation.Content}, http.StatusOK)
}

func (h *Handlers) GenerateImage(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, "Not authenticated", http.StatusUnauthorized)
		return
	}

	var req GenerateImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteFailure(w, "invalid request body")
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteFailure(w, "prompt is required")
		return
	}

	creation, err := h.AIService.GenerateImage(r.Context(), identity, service.GenerateImageRequest{
		Prompt:  req.Prompt,
		Publish: req.Publish,
	})
	if err != nil {
		h.writeGenerationError(w, identity, models.CreationTypeImage, err)
		return
	}

	metrics.RecordGeneration(models.CreationTypeImage, "success")
	WriteJSON(w, ContentResponse{Success: true, Content: creation.Content}, http.StatusOK)
}

func (h *Handlers) writeGenerationError(w http.ResponseWriter, identity models.Identity, creationType string, err error) {
	switch {
	case errors.Is(err, service.ErrUsageLimitReached):
		metrics.RecordGeneration(creationType, "limited")
		WriteFailure(w, "Limit reached. Upgrade to continue.")
	case errors.Is(err, service.ErrPremiumOnly):
		metrics.RecordGeneration(creationType, "limited")
		WriteFailure(w, "This feature is only available for premium subscriptions")
	case errors.Is(err, service.ErrEmptyPrompt):
		WriteFailure(w, "prompt is required")
	default:
		metrics.RecordGeneration(creationType, "error")
		h.Log.WithError(err).WithFields(logrus.Fields{
			"user_id": identity.UserID,
			"type":    creationType,
		}).Error("generation failed")
		WriteFailure(w, "failed to generate "+creationType)
	}
}
