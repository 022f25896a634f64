package audit

import (
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/supportdesk-ai/ticket-chat-platform/internal/model"
	"github.com/supportdesk-ai/ticket-chat-platform/pkg/logger"
)

func sampleRecord(ticket string) model.AuditRecord {
	return model.AuditRecord{
		Timestamp: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		Ticket:    ticket,
		Product:   "mouse",
		Message:   "it broke, with a comma",
		Reply:     "This is a response from Mouse Bot regarding your query: 'it broke, with a comma'",
		Sentiment: "Negative",
	}
}

func TestCSVSinkAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chat_logs.csv")

	sink, err := NewCSVSink(path)
	require.NoError(t, err)

	require.NoError(t, sink.Append(context.Background(), sampleRecord("TICKET0A1B2C3D")))
	require.NoError(t, sink.Append(context.Background(), sampleRecord("TICKET0A1B2C3D")))
	require.NoError(t, sink.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	row := rows[0]
	require.Len(t, row, 7)
	require.Equal(t, "2026-03-14T09:26:53Z", row[0])
	require.Equal(t, "TICKET0A1B2C3D", row[1])
	require.Equal(t, "mouse", row[2])
	require.Equal(t, "it broke, with a comma", row[3])
	require.Equal(t, "Negative", row[5])
	require.Empty(t, row[6])
}

func TestCSVSinkAppendsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chat_logs.csv")

	first, err := NewCSVSink(path)
	require.NoError(t, err)
	require.NoError(t, first.Append(context.Background(), sampleRecord("TICKET00000001")))
	require.NoError(t, first.Close())

	second, err := NewCSVSink(path)
	require.NoError(t, err)
	require.NoError(t, second.Append(context.Background(), sampleRecord("TICKET00000002")))
	require.NoError(t, second.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "TICKET00000001", rows[0][1])
	require.Equal(t, "TICKET00000002", rows[1][1])
}

type recordingSink struct {
	records []model.AuditRecord
	err     error
}

func (s *recordingSink) Append(_ context.Context, rec model.AuditRecord) error {
	if s.err != nil {
		return s.err
	}
	s.records = append(s.records, rec)
	return nil
}

func TestMultiSinkFansOut(t *testing.T) {
	a := &recordingSink{}
	b := &recordingSink{}

	multi := NewMultiSink(logger.NewNop())
	multi.Add("a", a)
	multi.Add("b", b)

	require.NoError(t, multi.Append(context.Background(), sampleRecord("TICKET00000001")))
	require.Len(t, a.records, 1)
	require.Len(t, b.records, 1)
}

func TestMultiSinkFailureDoesNotBlockOthers(t *testing.T) {
	broken := &recordingSink{err: errors.New("disk full")}
	healthy := &recordingSink{}

	multi := NewMultiSink(logger.NewNop())
	multi.Add("broken", broken)
	multi.Add("healthy", healthy)

	err := multi.Append(context.Background(), sampleRecord("TICKET00000001"))
	require.Error(t, err)
	require.Len(t, healthy.records, 1)
}
