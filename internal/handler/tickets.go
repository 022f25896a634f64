package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/supportdesk-ai/ticket-chat-platform/internal/service"
	"github.com/supportdesk-ai/ticket-chat-platform/internal/store"
	"github.com/supportdesk-ai/ticket-chat-platform/internal/transcript"
	"github.com/supportdesk-ai/ticket-chat-platform/pkg/logger"
)

// TicketHandler handles ticket read and export endpoints.
type TicketHandler struct {
	service *service.ConversationService
	logger  *logger.Logger
}

// NewTicketHandler creates a new ticket handler.
func NewTicketHandler(svc *service.ConversationService, log *logger.Logger) *TicketHandler {
	return &TicketHandler{
		service: svc,
		logger:  log,
	}
}

// Get handles GET /get_ticket/{id}
func (h *TicketHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ticket, err := h.service.GetTicket(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "Ticket not found")
		return
	}

	writeJSON(w, http.StatusOK, ticket)
}

// List handles GET /tickets
func (h *TicketHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.ListTickets())
}

// Transcript handles GET /transcript/{id}
func (h *TicketHandler) Transcript(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	doc, err := h.service.ExportTranscript(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, "Ticket not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to export transcript",
			zap.String("ticket", id),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "failed to export transcript")
		return
	}

	w.Header().Set("Content-Type", transcript.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+transcript.Filename(id)+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(doc)
}
