// Package transcript renders ticket histories into downloadable
// documents.
package transcript

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/supportdesk-ai/ticket-chat-platform/internal/model"
)

// Renderer converts an ordered history into document bytes. Rendering
// reads a snapshot and never mutates ticket state.
type Renderer interface {
	Render(ticketID string, history []model.Turn) ([]byte, error)
}

// ContentType is the MIME type of rendered transcripts.
const ContentType = "application/pdf"

// Filename returns the download filename for a ticket's transcript.
func Filename(ticketID string) string {
	return fmt.Sprintf("%s_transcript.pdf", ticketID)
}

// PDFRenderer renders transcripts as single-column PDF documents: a
// centered title line naming the ticket, then one paragraph per turn
// prefixed by the author.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDF transcript renderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render produces the PDF document for a ticket's full history.
func (r *PDFRenderer) Render(ticketID string, history []model.Turn) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "", 12)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.CellFormat(0, 10, tr(fmt.Sprintf("Transcript for %s", ticketID)), "", 1, "C", false, 0, "")
	pdf.Ln(10)

	for _, turn := range history {
		prefix := "Bot: "
		if turn.Author == model.AuthorUser {
			prefix = "You: "
		}
		pdf.MultiCell(0, 10, tr(prefix+turn.Text), "", "L", false)
		pdf.Ln(2)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render transcript: %w", err)
	}
	return buf.Bytes(), nil
}
