package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"resumebuilder/internal/llm"
	"resumebuilder/internal/logging"
	"resumebuilder/internal/markdown"
	"resumebuilder/internal/model"
	"resumebuilder/internal/prompt"
	"resumebuilder/internal/render"
)

var (
	ErrUnknownKind = errors.New("unknown document kind")
	ErrNoContent   = errors.New("document has no content")
)

const tracerName = "resumebuilder/internal/service"

// PDFRenderer turns plain text into PDF bytes.
type PDFRenderer interface {
	Render(text string) ([]byte, error)
}

// DocumentService defines the generation and export use cases.
type DocumentService interface {
	// Generate validates the profile, builds the prompt for kind and asks the
	// generator for text. A *model.ValidationError is returned before any
	// network call. Generator failures do not produce an error: the returned
	// document carries the warning message as content and the failure kind.
	Generate(ctx context.Context, kind model.DocumentKind, profile model.UserProfile) (model.GeneratedDocument, error)

	// ExportPDF strips markdown from the document and renders it. Failures are
	// *render.Error; the document itself is never modified.
	ExportPDF(ctx context.Context, doc model.GeneratedDocument) (*model.RenderedPDF, error)
}

type documentService struct {
	gen      llm.ContentGenerator
	renderer PDFRenderer
	metrics  *Metrics
	log      *logging.Logger
	now      func() time.Time
}

// NewDocumentService constructs a DocumentService. metrics and log may be nil.
func NewDocumentService(gen llm.ContentGenerator, renderer PDFRenderer, metrics *Metrics, log *logging.Logger) DocumentService {
	if log == nil {
		log = logging.Discard()
	}
	return &documentService{
		gen:      gen,
		renderer: renderer,
		metrics:  metrics,
		log:      log,
		now:      time.Now,
	}
}

func (s *documentService) Generate(ctx context.Context, kind model.DocumentKind, profile model.UserProfile) (model.GeneratedDocument, error) {
	if !kind.Valid() {
		return model.GeneratedDocument{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if err := profile.Validate(); err != nil {
		return model.GeneratedDocument{}, err
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "DocumentService.Generate")
	defer span.End()
	span.SetAttributes(attribute.String("document.kind", kind.Slug()))

	doc := model.GeneratedDocument{
		Kind:      kind,
		OwnerName: profile.Name,
		CreatedAt: s.now(),
	}

	text, err := s.gen.Complete(ctx, prompt.Build(kind, profile))
	if err != nil {
		doc.Content = llm.WarningMessage(err)
		doc.Failure = string(llm.KindOf(err))
		span.SetStatus(codes.Error, doc.Failure)
		s.metrics.observeGeneration(kind, doc.Failure)
		s.log.Warn("generation_failed", err, map[string]any{
			"kind":    kind.Slug(),
			"failure": doc.Failure,
		})
		return doc, nil
	}

	doc.Content = text
	s.metrics.observeGeneration(kind, outcomeSuccess)
	s.log.Info("generation_succeeded", map[string]any{
		"kind":  kind.Slug(),
		"chars": len(text),
	})
	return doc, nil
}

func (s *documentService) ExportPDF(ctx context.Context, doc model.GeneratedDocument) (*model.RenderedPDF, error) {
	if doc.Content == "" {
		return nil, ErrNoContent
	}

	_, span := otel.Tracer(tracerName).Start(ctx, "DocumentService.ExportPDF")
	defer span.End()
	span.SetAttributes(attribute.String("document.kind", doc.Kind.Slug()))

	data, err := s.renderer.Render(markdown.Strip(doc.Content))
	if err != nil {
		var rerr *render.Error
		if !errors.As(err, &rerr) {
			rerr = &render.Error{Kind: render.KindPDFGeneration, Err: err}
		}
		span.SetStatus(codes.Error, rerr.Kind)
		s.metrics.observeExport(outcomeFailure)
		s.log.Error("pdf_export_failed", rerr, map[string]any{"kind": doc.Kind.Slug()})
		return nil, rerr
	}

	s.metrics.observeExport(outcomeSuccess)
	return &model.RenderedPDF{
		Filename:    doc.Filename(),
		ContentType: model.ContentTypePDF,
		Data:        data,
	}, nil
}
