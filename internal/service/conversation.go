// Package service provides the turn orchestration logic for the
// support chat platform.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/supportdesk-ai/ticket-chat-platform/internal/audit"
	"github.com/supportdesk-ai/ticket-chat-platform/internal/bot"
	"github.com/supportdesk-ai/ticket-chat-platform/internal/model"
	"github.com/supportdesk-ai/ticket-chat-platform/internal/sentiment"
	"github.com/supportdesk-ai/ticket-chat-platform/internal/store"
	"github.com/supportdesk-ai/ticket-chat-platform/internal/transcript"
	"github.com/supportdesk-ai/ticket-chat-platform/internal/translate"
	"github.com/supportdesk-ai/ticket-chat-platform/pkg/logger"
	"github.com/supportdesk-ai/ticket-chat-platform/pkg/metrics"
)

// productPrompt is returned when a turn cannot be dispatched without a
// product selection. Such turns leave no trace in history or audit.
const productPrompt = "Please select a product to continue."

// defaultActions are the suggested follow-ups attached to every
// dispatched reply.
var defaultActions = []string{"Approve Return", "Reject Complaint"}

// ConversationService orchestrates chat turns end-to-end and exposes
// the read, export, and translate operations.
type ConversationService struct {
	store      *store.TicketStore
	dispatcher *bot.Dispatcher
	classifier sentiment.Classifier
	translator translate.Translator
	renderer   transcript.Renderer
	auditLog   audit.Sink
	logger     *logger.Logger

	now func() time.Time
}

// NewConversationService creates a conversation service.
func NewConversationService(
	st *store.TicketStore,
	dispatcher *bot.Dispatcher,
	classifier sentiment.Classifier,
	translator translate.Translator,
	renderer transcript.Renderer,
	auditLog audit.Sink,
	log *logger.Logger,
) *ConversationService {
	return &ConversationService{
		store:      st,
		dispatcher: dispatcher,
		classifier: classifier,
		translator: translator,
		renderer:   renderer,
		auditLog:   auditLog,
		logger:     log,
		now:        time.Now,
	}
}

// HandleTurn processes one chat message: resolve or create the ticket,
// dispatch the reply, classify sentiment, append the user/bot pair, and
// record one audit line. A NeedsProduct dispatch short-circuits before
// any of the side effects.
func (s *ConversationService) HandleTurn(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error) {
	product := strings.ToLower(strings.TrimSpace(req.Product))
	if product == "" {
		product = model.DefaultProduct
	}

	ticket, created := s.store.ResolveOrCreate(req.Ticket, product)
	if created {
		metrics.TicketsCreated.WithLabelValues(ticket.Product).Inc()
		s.logger.Info("ticket created",
			zap.String("ticket", ticket.ID),
			zap.String("product", ticket.Product),
		)
	}

	// The stored product is authoritative for the ticket's lifetime.
	outcome := s.dispatcher.Dispatch(ticket.Product, req.Message, req.Demo)
	if outcome.NeedsProduct {
		metrics.ProductPromptsTotal.Inc()
		return &model.ChatResponse{Reply: productPrompt, Ticket: ticket.ID}, nil
	}

	label := s.classifier.Classify(req.Message)

	if err := s.store.AppendExchange(ticket.ID, model.UserTurn(req.Message), model.BotTurn(outcome.Reply)); err != nil {
		return nil, fmt.Errorf("failed to append turn to %s: %w", ticket.ID, err)
	}

	rec := model.AuditRecord{
		Timestamp: s.now(),
		Ticket:    ticket.ID,
		Product:   ticket.Product,
		Message:   req.Message,
		Reply:     outcome.Reply,
		Sentiment: string(label),
	}
	if err := s.auditLog.Append(ctx, rec); err != nil {
		// The exchange is already committed to history; an audit sink
		// failure must not turn a delivered reply into an error.
		s.logger.Error("audit record not fully persisted",
			zap.String("ticket", ticket.ID),
			zap.Error(err),
		)
	}

	metrics.RecordTurn(ticket.Product, string(label))

	return &model.ChatResponse{
		Reply:   outcome.Reply,
		Ticket:  ticket.ID,
		Actions: defaultActions,
	}, nil
}

// GetTicket returns a snapshot of one ticket's transcript.
func (s *ConversationService) GetTicket(id string) (model.Ticket, error) {
	return s.store.Get(id)
}

// ListTickets returns snapshots of all tickets in insertion order.
func (s *ConversationService) ListTickets() []model.Ticket {
	return s.store.ListAll()
}

// ExportTranscript renders the full history of a ticket as a document.
// The renderer operates on a snapshot, never under a ticket lock.
func (s *ConversationService) ExportTranscript(id string) ([]byte, error) {
	ticket, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}

	doc, err := s.renderer.Render(ticket.ID, ticket.History)
	if err != nil {
		return nil, fmt.Errorf("failed to render transcript for %s: %w", id, err)
	}

	metrics.TranscriptExportsTotal.Inc()
	return doc, nil
}

// Translate converts text into the target language via the external
// translator. Failures come back as typed translate errors; there is
// no retry.
func (s *ConversationService) Translate(ctx context.Context, text, targetLang string) (string, error) {
	if targetLang == "" {
		targetLang = "en"
	}

	start := s.now()
	translated, err := s.translator.Translate(ctx, text, targetLang)
	elapsed := time.Since(start).Seconds()

	if err != nil {
		status := "failed"
		if translate.IsTimeout(err) {
			status = "timeout"
		}
		metrics.RecordTranslation(status, elapsed)
		return "", err
	}

	metrics.RecordTranslation("success", elapsed)
	return translated, nil
}
