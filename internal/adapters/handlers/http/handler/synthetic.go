package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/nalmatov/ltc-backend/internal/core/domain"
	jsonresponse "github.com/nalmatov/ltc-backend/pkg/JSONResponse"
)

func (h *ListingHandler) CreateSynthetic(w http.ResponseWriter, r *http.Request) {
	var input domain.SyntheticListing
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		jsonresponse.WriteError(w, jsonresponse.FromDomainError(
			fmt.Errorf("%w: malformed request body: %v", domain.ErrValidation, err)))
		return
	}

	created, err := h.ListingService.CreateSynthetic(r.Context(), input)
	if err != nil {
		jsonresponse.WriteError(w, jsonresponse.FromDomainError(err))
		return
	}

	h.logger.Info("synthetic listing stored", slog.String("name", created.ExchangeName))
	jsonresponse.WriteResponse(w, http.StatusCreated, map[string]any{
		"status": "success",
		"data":   created,
	})
}

func (h *ListingHandler) ListSynthetic(w http.ResponseWriter, r *http.Request) {
	jsonresponse.WriteResponse(w, http.StatusOK, map[string]any{
		"status": "success",
		"data":   h.ListingService.ListSynthetic(),
	})
}

func (h *ListingHandler) UpdateSynthetic(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	var patch domain.SyntheticPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		jsonresponse.WriteError(w, jsonresponse.FromDomainError(
			fmt.Errorf("%w: malformed request body: %v", domain.ErrValidation, err)))
		return
	}

	updated, err := h.ListingService.UpdateSynthetic(r.Context(), name, patch)
	if err != nil {
		jsonresponse.WriteError(w, jsonresponse.FromDomainError(err))
		return
	}

	h.logger.Info("synthetic listing updated", slog.String("name", name))
	jsonresponse.WriteResponse(w, http.StatusOK, map[string]any{
		"status": "success",
		"data":   updated,
	})
}

func (h *ListingHandler) DeleteSynthetic(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	if err := h.ListingService.DeleteSynthetic(name); err != nil {
		jsonresponse.WriteError(w, jsonresponse.FromDomainError(err))
		return
	}

	h.logger.Info("synthetic listing deleted", slog.String("name", name))
	jsonresponse.WriteResponse(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": fmt.Sprintf("synthetic listing %q deleted", name),
	})
}
