// Package store owns the in-memory ticket session state.
package store

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/supportdesk-ai/ticket-chat-platform/internal/model"
)

// ErrNotFound is returned for operations on unknown ticket ids.
var ErrNotFound = errors.New("ticket not found")

const idPrefix = "TICKET"

// entry pairs a ticket with its own mutex so that turns on one ticket
// serialize without blocking turns on any other ticket.
type entry struct {
	mu     sync.Mutex
	ticket *model.Ticket
}

// TicketStore maps ticket ids to conversation state. The store-level
// lock guards the map and insertion order only; per-ticket mutation
// happens under the entry lock.
type TicketStore struct {
	mu      sync.RWMutex
	entries map[string]*entry
	order   []string

	now func() time.Time
}

// New creates an empty ticket store.
func New() *TicketStore {
	return &TicketStore{
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

// NewTicketID generates a fresh ticket identifier in the
// TICKET + 8 uppercase hex characters format.
func NewTicketID() string {
	return idPrefix + strings.ToUpper(uuid.NewString()[:8])
}

// ResolveOrCreate returns the ticket for the given id, creating it when
// the id is empty or unknown. For an existing ticket the stored product
// is authoritative and the product argument is ignored. The returned
// ticket is a snapshot; mutations go through AppendExchange.
func (s *TicketStore) ResolveOrCreate(ticketID, product string) (model.Ticket, bool) {
	s.mu.Lock()

	if ticketID == "" {
		ticketID = NewTicketID()
		for {
			if _, taken := s.entries[ticketID]; !taken {
				break
			}
			ticketID = NewTicketID()
		}
	} else if e, ok := s.entries[ticketID]; ok {
		s.mu.Unlock()
		return snapshot(e), false
	}

	t := model.CreateTicket(ticketID, product, s.now())
	s.entries[ticketID] = &entry{ticket: t}
	s.order = append(s.order, ticketID)
	s.mu.Unlock()

	return *t, true
}

// AppendExchange appends a user turn followed by its bot turn as a
// single atomic step, so no reader can observe the user turn without
// the reply.
func (s *TicketStore) AppendExchange(ticketID string, user, bot model.Turn) error {
	s.mu.RLock()
	e, ok := s.entries[ticketID]
	s.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}

	e.mu.Lock()
	e.ticket.History = append(e.ticket.History, user, bot)
	e.ticket.UpdatedAt = s.now()
	e.mu.Unlock()
	return nil
}

// Get returns a snapshot of the named ticket.
func (s *TicketStore) Get(ticketID string) (model.Ticket, error) {
	s.mu.RLock()
	e, ok := s.entries[ticketID]
	s.mu.RUnlock()
	if !ok {
		return model.Ticket{}, ErrNotFound
	}
	return snapshot(e), nil
}

// ListAll returns snapshots of every ticket in insertion order.
func (s *TicketStore) ListAll() []model.Ticket {
	s.mu.RLock()
	ids := make([]string, len(s.order))
	copy(ids, s.order)
	s.mu.RUnlock()

	tickets := make([]model.Ticket, 0, len(ids))
	for _, id := range ids {
		if t, err := s.Get(id); err == nil {
			tickets = append(tickets, t)
		}
	}
	return tickets
}

// Count returns the number of tickets held.
func (s *TicketStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Seed installs a prebuilt ticket, replacing any existing one under the
// same id. Intended for startup fixtures only.
func (s *TicketStore) Seed(t *model.Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[t.ID]; !ok {
		s.order = append(s.order, t.ID)
	}
	s.entries[t.ID] = &entry{ticket: t}
}

// snapshot copies the ticket under its entry lock so callers never
// share the live history slice.
func snapshot(e *entry) model.Ticket {
	e.mu.Lock()
	defer e.mu.Unlock()

	t := *e.ticket
	t.History = make([]model.Turn, len(e.ticket.History))
	copy(t.History, e.ticket.History)
	return t
}
