// Package model contains the domain types shared by the generation pipeline,
// the HTTP layer and the CLI. No I/O happens here.
package model

import (
	"fmt"
	"strings"
)

// DocumentKind selects the prompt template and the output label of a document.
type DocumentKind string

const (
	KindResume           DocumentKind = "resume"
	KindCoverLetter      DocumentKind = "cover-letter"
	KindPortfolioSummary DocumentKind = "portfolio"
)

// Kinds lists every supported kind in display order.
var Kinds = []DocumentKind{KindResume, KindCoverLetter, KindPortfolioSummary}

// Label returns the human readable name used in headings and filenames.
func (k DocumentKind) Label() string {
	switch k {
	case KindResume:
		return "Resume"
	case KindCoverLetter:
		return "Cover Letter"
	case KindPortfolioSummary:
		return "Portfolio Summary"
	default:
		return string(k)
	}
}

// Slug returns the URL form of the kind.
func (k DocumentKind) Slug() string {
	return string(k)
}

// Valid reports whether k is one of Kinds.
func (k DocumentKind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// ParseDocumentKind accepts a slug ("cover-letter") or a label ("Cover Letter"), case-insensitive.
func ParseDocumentKind(s string) (DocumentKind, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds {
		if norm == k.Slug() || norm == strings.ToLower(k.Label()) {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown document kind %q", s)
}
