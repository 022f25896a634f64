package model

import (
	"time"
)

// AuditRecord is one durable log entry per handled turn. The Reserved
// field is kept empty for forward compatibility with the log format.
type AuditRecord struct {
	Timestamp time.Time `json:"timestamp"`
	Ticket    string    `json:"ticket"`
	Product   string    `json:"product"`
	Message   string    `json:"message"`
	Reply     string    `json:"reply"`
	Sentiment string    `json:"sentiment"`
	Reserved  string    `json:"reserved"`
}
