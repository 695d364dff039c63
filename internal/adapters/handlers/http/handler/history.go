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

type HistoryHandler struct {
	HistoryService port.HistoryServicePort
	logger         *slog.Logger
}

func NewHistoryHandler(logger *slog.Logger, historyService port.HistoryServicePort) *HistoryHandler {
	return &HistoryHandler{
		HistoryService: historyService,
		logger:         logger,
	}
}

func (h *HistoryHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	days := 30
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			jsonresponse.WriteError(w, jsonresponse.FromDomainError(
				fmt.Errorf("%w: days must be an integer", domain.ErrValidation)))
			return
		}
		days = parsed
	}

	dailyClose := true
	if raw := r.URL.Query().Get("daily_close"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			jsonresponse.WriteError(w, jsonresponse.FromDomainError(
				fmt.Errorf("%w: daily_close must be a boolean", domain.ErrValidation)))
			return
		}
		dailyClose = parsed
	}

	history, err := h.HistoryService.History(r.Context(), days, dailyClose)
	if err != nil {
		h.logger.Error("failed to build price history", slog.Any("error", err))
		jsonresponse.WriteError(w, jsonresponse.FromDomainError(err))
		return
	}

	jsonresponse.WriteResponse(w, http.StatusOK, history)
}
