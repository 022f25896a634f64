package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/supportdesk-ai/ticket-chat-platform/internal/middleware"
	"github.com/supportdesk-ai/ticket-chat-platform/internal/model"
	"github.com/supportdesk-ai/ticket-chat-platform/internal/service"
	"github.com/supportdesk-ai/ticket-chat-platform/internal/translate"
	"github.com/supportdesk-ai/ticket-chat-platform/pkg/logger"
)

// TranslateHandler handles the translation endpoint.
type TranslateHandler struct {
	service *service.ConversationService
	logger  *logger.Logger
}

// NewTranslateHandler creates a new translate handler.
func NewTranslateHandler(svc *service.ConversationService, log *logger.Logger) *TranslateHandler {
	return &TranslateHandler{
		service: svc,
		logger:  log,
	}
}

// Translate handles POST /translate
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.TranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := middleware.ValidateText(req.Text); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := middleware.ValidateLang(req.Lang); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	translated, err := h.service.Translate(ctx, req.Text, req.Lang)
	if err != nil {
		h.logger.Error("translation failed", zap.Error(err))
		status := http.StatusInternalServerError
		if translate.IsTimeout(err) {
			status = http.StatusGatewayTimeout
		}
		writeError(w, status, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, model.TranslateResponse{Translated: translated})
}
