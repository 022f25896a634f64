package audit

import (
	"context"

	"github.com/supportdesk-ai/ticket-chat-platform/internal/model"
	natsclient "github.com/supportdesk-ai/ticket-chat-platform/internal/nats"
)

// StreamSink publishes audit records to the NATS JetStream audit
// stream, for downstream consumers that tail turns in real time.
type StreamSink struct {
	streams *natsclient.StreamManager
}

// NewStreamSink creates a JetStream-backed audit sink.
func NewStreamSink(streams *natsclient.StreamManager) *StreamSink {
	return &StreamSink{streams: streams}
}

// Append publishes one record to the audit stream.
func (s *StreamSink) Append(ctx context.Context, rec model.AuditRecord) error {
	_, err := s.streams.PublishRecord(ctx, rec)
	return err
}
