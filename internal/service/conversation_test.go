package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/supportdesk-ai/ticket-chat-platform/internal/audit"
	"github.com/supportdesk-ai/ticket-chat-platform/internal/bot"
	"github.com/supportdesk-ai/ticket-chat-platform/internal/model"
	"github.com/supportdesk-ai/ticket-chat-platform/internal/sentiment"
	"github.com/supportdesk-ai/ticket-chat-platform/internal/store"
	"github.com/supportdesk-ai/ticket-chat-platform/internal/translate"
	"github.com/supportdesk-ai/ticket-chat-platform/pkg/logger"
)

var ticketIDPattern = regexp.MustCompile(`^TICKET[0-9A-F]{8}$`)

type fakeClassifier struct {
	label sentiment.Label
	calls int
}

func (c *fakeClassifier) Classify(text string) sentiment.Label {
	c.calls++
	return c.label
}

type fakeTranslator struct {
	result string
	err    error
	calls  int
}

func (t *fakeTranslator) Translate(_ context.Context, text, lang string) (string, error) {
	t.calls++
	if t.err != nil {
		return "", t.err
	}
	return t.result, nil
}

// fakeRenderer emits one plain-text line per turn so tests can count
// and inspect the rendered body.
type fakeRenderer struct {
	err   error
	calls int
}

func (r *fakeRenderer) Render(ticketID string, history []model.Turn) ([]byte, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Transcript for %s\n", ticketID)
	for _, turn := range history {
		prefix := "Bot: "
		if turn.Author == model.AuthorUser {
			prefix = "You: "
		}
		b.WriteString(prefix + turn.Text + "\n")
	}
	return []byte(b.String()), nil
}

type fakeSink struct {
	records []model.AuditRecord
	err     error
}

func (s *fakeSink) Append(_ context.Context, rec model.AuditRecord) error {
	if s.err != nil {
		return s.err
	}
	s.records = append(s.records, rec)
	return nil
}

type fixture struct {
	svc        *ConversationService
	store      *store.TicketStore
	classifier *fakeClassifier
	translator *fakeTranslator
	renderer   *fakeRenderer
	sink       *fakeSink
}

func newFixture() *fixture {
	f := &fixture{
		store:      store.New(),
		classifier: &fakeClassifier{label: sentiment.LabelNeutral},
		translator: &fakeTranslator{result: "hola"},
		renderer:   &fakeRenderer{},
		sink:       &fakeSink{},
	}
	f.svc = NewConversationService(
		f.store,
		bot.NewDispatcher(),
		f.classifier,
		f.translator,
		f.renderer,
		f.sink,
		logger.NewNop(),
	)
	return f
}

func TestHandleTurnCreatesTicket(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.HandleTurn(context.Background(), &model.ChatRequest{
		Message: "it broke",
		Product: "mouse",
	})
	require.NoError(t, err)
	require.Regexp(t, ticketIDPattern, resp.Ticket)
	require.Contains(t, resp.Reply, "Mouse Bot")
	require.Contains(t, resp.Reply, "'it broke'")
	require.Equal(t, []string{"Approve Return", "Reject Complaint"}, resp.Actions)

	ticket, err := f.store.Get(resp.Ticket)
	require.NoError(t, err)
	require.Len(t, ticket.History, 2)
	require.Equal(t, model.UserTurn("it broke"), ticket.History[0])
	require.Equal(t, model.BotTurn(resp.Reply), ticket.History[1])
}

func TestHandleTurnProductIsSticky(t *testing.T) {
	f := newFixture()

	first, err := f.svc.HandleTurn(context.Background(), &model.ChatRequest{
		Message: "it broke",
		Product: "mouse",
	})
	require.NoError(t, err)

	second, err := f.svc.HandleTurn(context.Background(), &model.ChatRequest{
		Message: "still broken",
		Ticket:  first.Ticket,
		Product: "keyboard",
	})
	require.NoError(t, err)
	require.Equal(t, first.Ticket, second.Ticket)
	require.Contains(t, second.Reply, "Mouse Bot")

	ticket, err := f.store.Get(first.Ticket)
	require.NoError(t, err)
	require.Equal(t, "mouse", ticket.Product)
	require.Len(t, ticket.History, 4)
}

func TestHandleTurnNormalizesProduct(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.HandleTurn(context.Background(), &model.ChatRequest{
		Message: "hello",
		Product: "  MOUSE ",
	})
	require.NoError(t, err)

	ticket, err := f.store.Get(resp.Ticket)
	require.NoError(t, err)
	require.Equal(t, "mouse", ticket.Product)
}

func TestHandleTurnNeedsProductHasNoSideEffects(t *testing.T) {
	f := newFixture()

	for _, product := range []string{"", "default"} {
		resp, err := f.svc.HandleTurn(context.Background(), &model.ChatRequest{
			Message: "my thing broke",
			Product: product,
		})
		require.NoError(t, err)
		require.Equal(t, "Please select a product to continue.", resp.Reply)
		require.NotEmpty(t, resp.Ticket)
		require.Empty(t, resp.Actions)

		ticket, err := f.store.Get(resp.Ticket)
		require.NoError(t, err)
		require.Empty(t, ticket.History)
	}

	require.Zero(t, f.classifier.calls)
	require.Empty(t, f.sink.records)
}

func TestHandleTurnDemoAppendsAndAudits(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.HandleTurn(context.Background(), &model.ChatRequest{
		Message: "hi there",
		Demo:    true,
	})
	require.NoError(t, err)
	require.Equal(t, "👋 Hello! I'm the Generic Bot.", resp.Reply)

	ticket, err := f.store.Get(resp.Ticket)
	require.NoError(t, err)
	require.Len(t, ticket.History, 2)
	require.Len(t, f.sink.records, 1)
	require.Equal(t, 1, f.classifier.calls)
}

func TestHandleTurnAuditRecord(t *testing.T) {
	f := newFixture()
	f.classifier.label = sentiment.LabelNegative

	resp, err := f.svc.HandleTurn(context.Background(), &model.ChatRequest{
		Message: "it broke",
		Product: "mouse",
	})
	require.NoError(t, err)

	require.Len(t, f.sink.records, 1)
	rec := f.sink.records[0]
	require.Equal(t, resp.Ticket, rec.Ticket)
	require.Equal(t, "mouse", rec.Product)
	require.Equal(t, "it broke", rec.Message)
	require.Equal(t, resp.Reply, rec.Reply)
	require.Equal(t, "Negative", rec.Sentiment)
	require.Empty(t, rec.Reserved)
	require.False(t, rec.Timestamp.IsZero())
}

func TestHandleTurnAuditFailureDoesNotFailTurn(t *testing.T) {
	f := newFixture()
	f.sink.err = errors.New("disk full")

	resp, err := f.svc.HandleTurn(context.Background(), &model.ChatRequest{
		Message: "it broke",
		Product: "mouse",
	})
	require.NoError(t, err)

	ticket, err := f.store.Get(resp.Ticket)
	require.NoError(t, err)
	require.Len(t, ticket.History, 2)
}

func TestHandleTurnHistoryGrowsInPairs(t *testing.T) {
	f := newFixture()

	first, err := f.svc.HandleTurn(context.Background(), &model.ChatRequest{
		Message: "turn 0",
		Product: "monitor",
	})
	require.NoError(t, err)

	const turns = 7
	for i := 1; i < turns; i++ {
		_, err := f.svc.HandleTurn(context.Background(), &model.ChatRequest{
			Message: fmt.Sprintf("turn %d", i),
			Ticket:  first.Ticket,
		})
		require.NoError(t, err)
	}

	ticket, err := f.store.Get(first.Ticket)
	require.NoError(t, err)
	require.Len(t, ticket.History, 2*turns)
	for i, turn := range ticket.History {
		if i%2 == 0 {
			require.Equal(t, model.AuthorUser, turn.Author)
			require.Equal(t, fmt.Sprintf("turn %d", i/2), turn.Text)
		} else {
			require.Equal(t, model.AuthorBot, turn.Author)
		}
	}
	require.Len(t, f.sink.records, turns)
}

func TestHandleTurnEmptyMessageEchoes(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.HandleTurn(context.Background(), &model.ChatRequest{
		Message: "",
		Product: "mouse",
	})
	require.NoError(t, err)
	require.Contains(t, resp.Reply, "''")

	ticket, err := f.store.Get(resp.Ticket)
	require.NoError(t, err)
	require.Len(t, ticket.History, 2)
}

func TestGetTicketNotFound(t *testing.T) {
	f := newFixture()

	_, err := f.svc.GetTicket("NOPE")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestListTickets(t *testing.T) {
	f := newFixture()

	first, err := f.svc.HandleTurn(context.Background(), &model.ChatRequest{Message: "a", Product: "mouse"})
	require.NoError(t, err)
	second, err := f.svc.HandleTurn(context.Background(), &model.ChatRequest{Message: "b", Product: "keyboard"})
	require.NoError(t, err)

	tickets := f.svc.ListTickets()
	require.Len(t, tickets, 2)
	require.Equal(t, first.Ticket, tickets[0].ID)
	require.Equal(t, second.Ticket, tickets[1].ID)
}

func TestExportTranscriptNotFound(t *testing.T) {
	f := newFixture()

	_, err := f.svc.ExportTranscript("NOPE")
	require.ErrorIs(t, err, store.ErrNotFound)
	require.Zero(t, f.renderer.calls)
}

func TestExportTranscriptBody(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.HandleTurn(context.Background(), &model.ChatRequest{
		Message: "it broke",
		Product: "mouse",
	})
	require.NoError(t, err)
	_, err = f.svc.HandleTurn(context.Background(), &model.ChatRequest{
		Message: "still broken",
		Ticket:  resp.Ticket,
	})
	require.NoError(t, err)

	doc, err := f.svc.ExportTranscript(resp.Ticket)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(doc), "\n"), "\n")
	require.Equal(t, "Transcript for "+resp.Ticket, lines[0])

	body := lines[1:]
	require.Len(t, body, 4)
	for i, line := range body {
		if i%2 == 0 {
			require.True(t, strings.HasPrefix(line, "You: "), "line %d: %s", i, line)
		} else {
			require.True(t, strings.HasPrefix(line, "Bot: "), "line %d: %s", i, line)
		}
	}
}

func TestExportTranscriptRenderFailure(t *testing.T) {
	f := newFixture()
	f.renderer.err = errors.New("render exploded")

	resp, err := f.svc.HandleTurn(context.Background(), &model.ChatRequest{
		Message: "it broke",
		Product: "mouse",
	})
	require.NoError(t, err)

	_, err = f.svc.ExportTranscript(resp.Ticket)
	require.Error(t, err)
	require.NotErrorIs(t, err, store.ErrNotFound)
}

func TestTranslateSuccess(t *testing.T) {
	f := newFixture()

	got, err := f.svc.Translate(context.Background(), "hello", "es")
	require.NoError(t, err)
	require.Equal(t, "hola", got)
	require.Equal(t, 1, f.translator.calls)
}

func TestTranslateDefaultsLang(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Translate(context.Background(), "hello", "")
	require.NoError(t, err)
}

func TestTranslateFailureIsTyped(t *testing.T) {
	f := newFixture()
	f.translator.err = &translate.Error{Code: translate.CodeFailed, Err: errors.New("upstream 503")}

	_, err := f.svc.Translate(context.Background(), "hello", "es")
	require.Error(t, err)

	var te *translate.Error
	require.ErrorAs(t, err, &te)
	require.Equal(t, translate.CodeFailed, te.Code)
	require.Contains(t, err.Error(), "upstream 503")
	require.False(t, translate.IsTimeout(err))
}

func TestTranslateTimeoutIsDistinct(t *testing.T) {
	f := newFixture()
	f.translator.err = &translate.Error{Code: translate.CodeTimeout, Err: context.DeadlineExceeded}

	_, err := f.svc.Translate(context.Background(), "hello", "es")
	require.Error(t, err)
	require.True(t, translate.IsTimeout(err))
}

var _ audit.Sink = (*fakeSink)(nil)
