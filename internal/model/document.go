package model

import (
	"strings"
	"time"
)

// ContentTypePDF is the MIME type of exported documents.
const ContentTypePDF = "application/pdf"

// GeneratedDocument is the text produced for one generation request.
// When generation failed, Content holds the user-facing warning message and
// Failure names the cause; PDF export still works on it.
type GeneratedDocument struct {
	Kind      DocumentKind `json:"kind"`
	Content   string       `json:"content"`
	OwnerName string       `json:"owner_name"`
	Failure   string       `json:"failure,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

// Failed reports whether the content is a warning rather than generated text.
func (d GeneratedDocument) Failed() bool {
	return d.Failure != ""
}

// Filename derives the download name, e.g. "Jane_Doe_Cover_Letter.pdf".
func (d GeneratedDocument) Filename() string {
	return PDFFilename(d.OwnerName, d.Kind)
}

// PDFFilename joins the owner name and kind label with spaces replaced by underscores.
func PDFFilename(ownerName string, kind DocumentKind) string {
	name := strings.ReplaceAll(ownerName, " ", "_")
	label := strings.ReplaceAll(kind.Label(), " ", "_")
	return name + "_" + label + ".pdf"
}

// RenderedPDF is a transient PDF produced from a GeneratedDocument.
type RenderedPDF struct {
	Filename    string
	ContentType string
	Data        []byte
}
