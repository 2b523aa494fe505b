package handler

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"resumebuilder/internal/model"
	"resumebuilder/internal/session"
)

//go:embed templates/index.html
var indexHTML string

//nolint:gochecknoglobals // parsed once at init
var indexTmpl = template.Must(template.New("index").Parse(indexHTML))

// PageOptions carries process-wide facts the form page displays.
type PageOptions struct {
	LLMConfigured bool
}

type kindButton struct {
	Slug  string
	Label string
	Icon  string
}

type pageData struct {
	Kinds         []kindButton
	Profile       model.UserProfile
	Document      *model.GeneratedDocument
	Error         string
	LLMConfigured bool
}

var kindIcons = map[model.DocumentKind]string{
	model.KindResume:           "📄",
	model.KindCoverLetter:      "✉️",
	model.KindPortfolioSummary: "💼",
}

func newPageData(sess *session.Session, opts PageOptions, errMsg string) pageData {
	data := pageData{
		Profile:       sess.Profile(),
		Error:         errMsg,
		LLMConfigured: opts.LLMConfigured,
	}
	for _, k := range model.Kinds {
		data.Kinds = append(data.Kinds, kindButton{Slug: k.Slug(), Label: k.Label(), Icon: kindIcons[k]})
	}
	if doc, ok := sess.Current(); ok {
		data.Document = &doc
	}
	return data
}

func renderPage(c *fiber.Ctx, status int, data pageData) error {
	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, data); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}
