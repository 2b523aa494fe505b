// Package render lays plain text out into a paginated PDF.
package render

import (
	"bytes"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
)

// KindPDFGeneration identifies every render failure.
const KindPDFGeneration = "pdf-generation-error"

// Substitute replaces characters the core fonts cannot encode.
const Substitute = '?'

// Error is returned when the PDF could not be built.
type Error struct {
	Kind string
	Err  error
}

func (e *Error) Error() string {
	return "Error generating PDF: " + e.Err.Error()
}

// Unwrap supports errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.Err }

// Cause supports errors.Cause.
func (e *Error) Cause() error { return e.Err }

func failure(err error) *Error {
	return &Error{Kind: KindPDFGeneration, Err: err}
}

// Renderer holds the fixed page and font settings.
type Renderer struct {
	FontFamily      string
	FontSize        float64
	LineHeight      float64
	BlankLineHeight float64
}

// NewRenderer returns a renderer with A4 pages, Arial 11pt, 8mm lines and
// 4mm blank-line spacing.
func NewRenderer() *Renderer {
	return &Renderer{
		FontFamily:      "Arial",
		FontSize:        11,
		LineHeight:      8,
		BlankLineHeight: 4,
	}
}

// Render writes text into a new PDF and returns its bytes. Each non-blank line
// becomes a wrapped paragraph; each blank line becomes fixed vertical space.
// The document is produced in memory.
func (r *Renderer) Render(text string) (out []byte, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			out = nil
			err = failure(errors.Errorf("%v", rec))
		}
	}()

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreator("resumebuilder", false)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	pdf.SetFont(r.FontFamily, "", r.FontSize)

	for _, line := range strings.Split(text, "\n") {
		if pdf.Err() {
			break
		}
		if strings.TrimSpace(line) == "" {
			pdf.Ln(r.BlankLineHeight)
			continue
		}
		pdf.MultiCell(0, r.LineHeight, ToLatin1(line), "", "", false)
	}

	if pdf.Err() {
		err = failure(errors.Wrap(pdf.Error(), "layout failed"))
		return out, err
	}

	var buf bytes.Buffer
	err = pdf.Output(&buf)
	if err != nil {
		err = failure(errors.Wrap(err, "output failed"))
		return out, err
	}

	out = buf.Bytes()
	return out, err
}

// ToLatin1 re-encodes s as ISO-8859-1 bytes, replacing anything outside that
// range with Substitute. The result is a byte string, not UTF-8.
func ToLatin1(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		c, ok := charmap.ISO8859_1.EncodeRune(r)
		if !ok {
			c = Substitute
		}
		b.WriteByte(c)
	}
	return b.String()
}
