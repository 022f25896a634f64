package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/supportdesk-ai/ticket-chat-platform/internal/model"
)

const (
	// StreamName is the name of the audit stream.
	StreamName = "AUDIT"

	// SubjectPrefix is the prefix for all audit subjects.
	SubjectPrefix = "audit"
)

// StreamManager handles JetStream operations for the audit stream.
type StreamManager struct {
	client *Client
}

// NewStreamManager creates a new stream manager.
func NewStreamManager(client *Client) *StreamManager {
	return &StreamManager{client: client}
}

// EnsureStream ensures the audit stream exists. The stream is
// append-only: deletes and purges are denied.
func (m *StreamManager) EnsureStream(ctx context.Context) error {
	js := m.client.JetStream()

	_, err := js.Stream(ctx, StreamName)
	if err == nil {
		return nil
	}

	_, err = js.CreateStream(ctx, jetstream.StreamConfig{
		Name:        StreamName,
		Subjects:    []string{fmt.Sprintf("%s.>", SubjectPrefix)},
		Retention:   jetstream.LimitsPolicy,
		MaxAge:      365 * 24 * time.Hour,
		MaxBytes:    10 * 1024 * 1024 * 1024,
		Storage:     jetstream.FileStorage,
		Replicas:    1,
		Compression: jetstream.S2Compression,
		DenyDelete:  true,
		DenyPurge:   true,
		Description: "One audit record per handled support turn",
	})
	if err != nil {
		return fmt.Errorf("failed to create stream: %w", err)
	}

	return nil
}

// TurnSubject returns the subject for a ticket's audit records.
func TurnSubject(ticketID string) string {
	return fmt.Sprintf("%s.turns.%s", SubjectPrefix, ticketID)
}

// PublishRecord publishes an audit record to JetStream.
func (m *StreamManager) PublishRecord(ctx context.Context, rec model.AuditRecord) (uint64, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal audit record: %w", err)
	}

	ack, err := m.client.JetStream().Publish(ctx, TurnSubject(rec.Ticket), data)
	if err != nil {
		return 0, fmt.Errorf("failed to publish audit record: %w", err)
	}

	return ack.Sequence, nil
}
