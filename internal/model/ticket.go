// Package model defines data structures for the support chat platform.
package model

import (
	"time"
)

// DefaultProduct is the sentinel product key assigned when a client
// supplies no product. It never routes to a real persona.
const DefaultProduct = "default"

// Ticket represents a support conversation thread bound to one product.
type Ticket struct {
	ID        string    `json:"ticket"`
	Product   string    `json:"product"`
	History   []Turn    `json:"messages"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateTicket builds an empty ticket for a product.
func CreateTicket(id, product string, now time.Time) *Ticket {
	return &Ticket{
		ID:        id,
		Product:   product,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Message string `json:"message"`
	Ticket  string `json:"ticket,omitempty"`
	Product string `json:"product,omitempty"`
	Demo    bool   `json:"demo,omitempty"`
}

// ChatResponse is the response for POST /chat.
type ChatResponse struct {
	Reply   string   `json:"reply"`
	Ticket  string   `json:"ticket"`
	Actions []string `json:"actions,omitempty"`
}

// TranslateRequest is the body of POST /translate.
type TranslateRequest struct {
	Text string `json:"text"`
	Lang string `json:"lang"`
}

// TranslateResponse is the response for POST /translate.
type TranslateResponse struct {
	Translated string `json:"translated"`
}
