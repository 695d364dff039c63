package handler

import (
	"log/slog"
	"net/http"

	"github.com/nalmatov/ltc-backend/internal/core/domain"
	"github.com/nalmatov/ltc-backend/internal/core/port"
	jsonresponse "github.com/nalmatov/ltc-backend/pkg/JSONResponse"
)

type DepthHandler struct {
	DepthService port.DepthServicePort
	logger       *slog.Logger
}

func NewDepthHandler(logger *slog.Logger, depthService port.DepthServicePort) *DepthHandler {
	return &DepthHandler{
		DepthService: depthService,
		logger:       logger,
	}
}

func (h *DepthHandler) GetDepth(w http.ResponseWriter, r *http.Request) {
	exchange := r.PathValue("exchange")

	report, err := h.DepthService.Depth(r.Context(), exchange)
	if err != nil {
		h.logger.Error("failed to build depth report",
			slog.String("exchange", exchange),
			slog.Any("error", err))
		jsonresponse.WriteError(w, jsonresponse.FromDomainError(err))
		return
	}

	jsonresponse.WriteResponse(w, http.StatusOK, domain.DepthResponse{
		Status: "success",
		Data:   report,
	})
}
