package audit

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/supportdesk-ai/ticket-chat-platform/internal/model"
)

// CSVSink appends records as delimited lines to a local file, one line
// per handled turn:
//
//	timestamp, ticket, product, message, reply, sentiment, reserved
type CSVSink struct {
	mu   sync.Mutex
	file *os.File
	w    *csv.Writer
}

// NewCSVSink opens (or creates) the log file in append mode.
func NewCSVSink(path string) (*CSVSink, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	return &CSVSink{file: f, w: csv.NewWriter(f)}, nil
}

// Append writes one record and flushes it to the file.
func (s *CSVSink) Append(_ context.Context, rec model.AuditRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := []string{
		rec.Timestamp.Format(time.RFC3339Nano),
		rec.Ticket,
		rec.Product,
		rec.Message,
		rec.Reply,
		rec.Sentiment,
		rec.Reserved,
	}
	if err := s.w.Write(row); err != nil {
		return fmt.Errorf("failed to write audit record: %w", err)
	}
	s.w.Flush()
	return s.w.Error()
}

// Close flushes buffered records and closes the file.
func (s *CSVSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.w.Flush()
	if err := s.w.Error(); err != nil {
		s.file.Close()
		return err
	}
	return s.file.Close()
}
