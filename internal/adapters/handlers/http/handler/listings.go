package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/nalmatov/ltc-backend/internal/core/domain"
	"github.com/nalmatov/ltc-backend/internal/core/port"
	jsonresponse "github.com/nalmatov/ltc-backend/pkg/JSONResponse"
)

type ListingHandler struct {
	ListingService port.ListingServicePort
	logger         *slog.Logger
}

func NewListingHandler(logger *slog.Logger, listingService port.ListingServicePort) *ListingHandler {
	return &ListingHandler{
		ListingService: listingService,
		logger:         logger,
	}
}

func (h *ListingHandler) GetListings(w http.ResponseWriter, r *http.Request) {
	criterion, err := domain.ParseSortCriterion(r.URL.Query().Get("sort"))
	if err != nil {
		jsonresponse.WriteError(w, jsonresponse.FromDomainError(err))
		return
	}

	descending := true
	if raw := r.URL.Query().Get("desc"); raw != "" {
		descending, err = strconv.ParseBool(raw)
		if err != nil {
			jsonresponse.WriteError(w, jsonresponse.FromDomainError(
				fmt.Errorf("%w: desc must be a boolean", domain.ErrValidation)))
			return
		}
	}

	listings, err := h.ListingService.Listings(r.Context(), criterion, descending)
	if err != nil {
		h.logger.Error("failed to build listings", slog.Any("error", err))
		jsonresponse.WriteError(w, jsonresponse.FromDomainError(err))
		return
	}

	jsonresponse.WriteResponse(w, http.StatusOK, domain.ListingsResponse{
		Status: "success",
		Data:   listings,
	})
}

func (h *ListingHandler) GetListingsAlternate(w http.ResponseWriter, r *http.Request) {
	listings, err := h.ListingService.ListingsAlternate(r.Context())
	if err != nil {
		h.logger.Error("failed to build alternate listings", slog.Any("error", err))
		jsonresponse.WriteError(w, jsonresponse.FromDomainError(err))
		return
	}

	jsonresponse.WriteResponse(w, http.StatusOK, domain.ListingsResponse{
		Status: "success",
		Data:   listings,
	})
}
