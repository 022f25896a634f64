// Package audit provides durable append-only sinks for interaction
// records.
package audit

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/supportdesk-ai/ticket-chat-platform/internal/model"
	"github.com/supportdesk-ai/ticket-chat-platform/pkg/logger"
	"github.com/supportdesk-ai/ticket-chat-platform/pkg/metrics"
)

// Sink appends one record per handled turn. Records are never
// rewritten once appended.
type Sink interface {
	Append(ctx context.Context, rec model.AuditRecord) error
}

// MultiSink fans a record out to every registered sink. A failing sink
// is logged and counted but does not block the others.
type MultiSink struct {
	names  []string
	sinks  []Sink
	logger *logger.Logger
}

// NewMultiSink creates an empty fan-out sink.
func NewMultiSink(log *logger.Logger) *MultiSink {
	return &MultiSink{logger: log}
}

// Add registers a named sink.
func (m *MultiSink) Add(name string, s Sink) {
	m.names = append(m.names, name)
	m.sinks = append(m.sinks, s)
}

// Append writes the record to every sink and joins any failures.
func (m *MultiSink) Append(ctx context.Context, rec model.AuditRecord) error {
	var errs []error
	for i, s := range m.sinks {
		if err := s.Append(ctx, rec); err != nil {
			metrics.AuditAppendFailures.WithLabelValues(m.names[i]).Inc()
			m.logger.Error("audit append failed",
				zap.String("sink", m.names[i]),
				zap.String("ticket", rec.Ticket),
				zap.Error(err),
			)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
