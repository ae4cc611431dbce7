package pdf

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/antares2881/outlook-email-sender/pkg/mailer"
	"github.com/antares2881/outlook-email-sender/pkg/recipients"
)

const defaultTitle = "Personalized Document"

// Config holds generator options.
type Config struct {
	LogoPath string // optional; skipped when empty or missing
}

// Generator builds personalized PDF documents.
type Generator struct {
	cfg Config
	now func() time.Time
}

// New creates a generator. A configured logo that does not exist on disk
// is skipped rather than failing every recipient.
func New(cfg Config) *Generator {
	return &Generator{cfg: cfg, now: time.Now}
}

// Generate renders the personalized document for one recipient and
// returns it as a named attachment.
func (g *Generator) Generate(rec recipients.Record) (mailer.Attachment, error) {
	content, err := g.render(rec)
	if err != nil {
		return mailer.Attachment{}, err
	}
	return mailer.Attachment{
		Filename:    Filename(rec),
		ContentType: "application/pdf",
		Content:     content,
	}, nil
}

func (g *Generator) render(rec recipients.Record) ([]byte, error) {
	doc := fpdf.New("P", "mm", "Letter", "")
	doc.SetMargins(25, 25, 25)
	doc.SetAutoPageBreak(true, 25)
	doc.AddPage()
	tr := doc.UnicodeTranslatorFromDescriptor("")

	if g.cfg.LogoPath != "" {
		if _, err := os.Stat(g.cfg.LogoPath); err == nil {
			doc.ImageOptions(g.cfg.LogoPath, 80, 20, 50, 0, false, fpdf.ImageOptions{ReadDpi: true}, 0, "")
			doc.Ln(30)
		}
	}

	title := rec.AttachmentName
	if title == "" {
		title = defaultTitle
	}
	doc.SetFont("Helvetica", "B", 24)
	doc.SetTextColor(44, 62, 80)
	doc.CellFormat(0, 14, tr(title), "", 1, "C", false, 0, "")
	doc.Ln(8)

	details := []struct{ label, value string }{
		{"Name:", rec.Name},
		{"Company:", orNA(rec.Company)},
		{"City:", orNA(rec.City)},
		{"Date:", g.now().Format("02/01/2006")},
	}
	doc.SetDrawColor(189, 195, 199)
	doc.SetFillColor(236, 240, 241)
	for _, row := range details {
		doc.SetFont("Helvetica", "B", 11)
		doc.CellFormat(50, 12, tr(row.label), "1", 0, "R", true, 0, "")
		doc.SetFont("Helvetica", "", 11)
		doc.CellFormat(0, 12, tr(row.value), "1", 1, "L", false, 0, "")
	}
	doc.Ln(12)

	if rec.CustomMessage != "" {
		doc.SetFont("Helvetica", "B", 14)
		doc.SetTextColor(52, 73, 94)
		doc.CellFormat(0, 8, "Personal Message", "", 1, "L", false, 0, "")
		doc.Ln(2)
		doc.SetFont("Helvetica", "", 11)
		doc.SetTextColor(44, 62, 80)
		doc.MultiCell(0, 6, tr(rec.CustomMessage), "", "L", false)
		doc.Ln(8)
	}

	doc.SetFont("Helvetica", "I", 9)
	doc.SetTextColor(127, 140, 141)
	footer := fmt.Sprintf("Generated automatically on %s\nConfidential - for the exclusive use of the recipient",
		g.now().Format("02/01/2006 15:04"))
	doc.MultiCell(0, 5, tr(footer), "", "C", false)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: generating document for %s: %w", rec.Email, err)
	}
	return buf.Bytes(), nil
}

// Filename derives the attachment file name for a record: the attachment
// title (or a default) plus the recipient name, with characters that break
// mail clients or filesystems replaced.
func Filename(rec recipients.Record) string {
	title := rec.AttachmentName
	if title == "" {
		title = "document"
	}
	return sanitizeName(title) + "_" + sanitizeName(rec.Name) + ".pdf"
}

func sanitizeName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '/', '\\', ':':
			return '_'
		}
		return r
	}, s)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
