package transcript

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/supportdesk-ai/ticket-chat-platform/internal/model"
)

func TestRenderProducesPDF(t *testing.T) {
	r := NewPDFRenderer()

	history := []model.Turn{
		model.UserTurn("it broke"),
		model.BotTurn("This is a response from Mouse Bot regarding your query: 'it broke'"),
	}

	doc, err := r.Render("TICKET0A1B2C3D", history)
	require.NoError(t, err)
	require.NotEmpty(t, doc)
	require.Equal(t, "%PDF", string(doc[:4]))
}

func TestRenderEmptyHistory(t *testing.T) {
	r := NewPDFRenderer()

	doc, err := r.Render("TICKET0A1B2C3D", nil)
	require.NoError(t, err)
	require.NotEmpty(t, doc)
}

func TestRenderHandlesNonLatinText(t *testing.T) {
	r := NewPDFRenderer()

	history := []model.Turn{
		model.UserTurn("👋 my naïve café keyboard broke"),
		model.BotTurn("...noted"),
	}

	doc, err := r.Render("TICKET0A1B2C3D", history)
	require.NoError(t, err)
	require.NotEmpty(t, doc)
}

func TestFilename(t *testing.T) {
	require.Equal(t, "TICKET0A1B2C3D_transcript.pdf", Filename("TICKET0A1B2C3D"))
}
