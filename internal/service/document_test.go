package service

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"resumebuilder/internal/config"
	"resumebuilder/internal/llm"
	llmMocks "resumebuilder/internal/llm/mocks"
	"resumebuilder/internal/model"
	"resumebuilder/internal/render"
	renderMocks "resumebuilder/internal/render/mocks"
)

func janeDoe() model.UserProfile {
	return model.UserProfile{
		Name:       "Jane Doe",
		Email:      "j@x.com",
		Phone:      "+1 555",
		Education:  "BSc CS",
		Skills:     "Go, SQL",
		Experience: "2yr backend dev",
	}
}

func TestDocumentService_Generate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		kind        model.DocumentKind
		profile     func() model.UserProfile
		setupMocks  func(gen *llmMocks.MockContentGenerator)
		wantErr     error
		wantFields  []string
		wantContent string
		wantFailure string
	}{
		{
			name:    "success",
			kind:    model.KindResume,
			profile: janeDoe,
			setupMocks: func(gen *llmMocks.MockContentGenerator) {
				gen.On("Complete", mock.Anything, mock.MatchedBy(func(p string) bool {
					return strings.Contains(p, "Jane Doe") && strings.Contains(p, "Go, SQL") && strings.Contains(p, "ATS-friendly")
				})).Return("## Summary\n- Built services", nil).Once()
			},
			wantContent: "## Summary\n- Built services",
		},
		{
			name: "validation failure does not call the generator",
			kind: model.KindCoverLetter,
			profile: func() model.UserProfile {
				p := janeDoe()
				p.Email = ""
				p.Skills = " "
				return p
			},
			setupMocks: func(gen *llmMocks.MockContentGenerator) {},
			wantFields: []string{"email", "skills"},
		},
		{
			name:       "unknown kind",
			kind:       model.DocumentKind("memo"),
			profile:    janeDoe,
			setupMocks: func(gen *llmMocks.MockContentGenerator) {},
			wantErr:    ErrUnknownKind,
		},
		{
			name:    "configuration failure becomes document content",
			kind:    model.KindPortfolioSummary,
			profile: janeDoe,
			setupMocks: func(gen *llmMocks.MockContentGenerator) {
				gen.On("Complete", mock.Anything, mock.Anything).
					Return("", &llm.Error{Kind: llm.KindConfiguration, Err: llm.ErrMissingAPIKey}).Once()
			},
			wantContent: "⚠️ Error: CEREBRAS_API_KEY not found. Please set it in your .env file.",
			wantFailure: "configuration",
		},
		{
			name:    "timeout failure",
			kind:    model.KindResume,
			profile: janeDoe,
			setupMocks: func(gen *llmMocks.MockContentGenerator) {
				gen.On("Complete", mock.Anything, mock.Anything).
					Return("", &llm.Error{Kind: llm.KindTimeout, Err: context.DeadlineExceeded}).Once()
			},
			wantContent: "⚠️ Error: Request timed out. Please try again.",
			wantFailure: "timeout",
		},
		{
			name:    "foreign error is unexpected",
			kind:    model.KindResume,
			profile: janeDoe,
			setupMocks: func(gen *llmMocks.MockContentGenerator) {
				gen.On("Complete", mock.Anything, mock.Anything).Return("", errors.New("boom")).Once()
			},
			wantContent: "⚠️ Error: boom",
			wantFailure: "unexpected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := new(llmMocks.MockContentGenerator)
			tt.setupMocks(gen)
			svc := NewDocumentService(gen, nil, nil, nil)

			doc, err := svc.Generate(ctx, tt.kind, tt.profile())

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				gen.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
			case tt.wantFields != nil:
				var verr *model.ValidationError
				require.True(t, errors.As(err, &verr))
				assert.Equal(t, tt.wantFields, verr.Fields)
				gen.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.kind, doc.Kind)
				assert.Equal(t, "Jane Doe", doc.OwnerName)
				assert.Equal(t, tt.wantContent, doc.Content)
				assert.Equal(t, tt.wantFailure, doc.Failure)
				assert.Equal(t, tt.wantFailure != "", doc.Failed())
				assert.False(t, doc.CreatedAt.IsZero())
			}

			gen.AssertExpectations(t)
		})
	}
}

func TestDocumentService_ExportPDF(t *testing.T) {
	ctx := context.Background()
	doc := model.GeneratedDocument{
		Kind:      model.KindResume,
		OwnerName: "Jane Doe",
		Content:   "## Summary\n- Built services with **Go**",
	}

	t.Run("strips markdown before rendering", func(t *testing.T) {
		r := new(renderMocks.MockRenderer)
		r.On("Render", "Summary\nBuilt services with Go").Return([]byte("%PDF-1.3 fake"), nil).Once()
		svc := NewDocumentService(nil, r, nil, nil)

		pdf, err := svc.ExportPDF(ctx, doc)

		require.NoError(t, err)
		assert.Equal(t, "Jane_Doe_Resume.pdf", pdf.Filename)
		assert.Equal(t, "application/pdf", pdf.ContentType)
		assert.Equal(t, []byte("%PDF-1.3 fake"), pdf.Data)
		r.AssertExpectations(t)
	})

	t.Run("render failure keeps the document", func(t *testing.T) {
		r := new(renderMocks.MockRenderer)
		r.On("Render", mock.Anything).Return(nil, errors.New("disk on fire")).Once()
		svc := NewDocumentService(nil, r, nil, nil)
		before := doc

		pdf, err := svc.ExportPDF(ctx, doc)

		assert.Nil(t, pdf)
		var rerr *render.Error
		require.True(t, errors.As(err, &rerr))
		assert.Equal(t, render.KindPDFGeneration, rerr.Kind)
		assert.Equal(t, before, doc)
	})

	t.Run("empty document", func(t *testing.T) {
		svc := NewDocumentService(nil, new(renderMocks.MockRenderer), nil, nil)

		_, err := svc.ExportPDF(ctx, model.GeneratedDocument{Kind: model.KindResume})

		assert.ErrorIs(t, err, ErrNoContent)
	})

	t.Run("warning content is exportable", func(t *testing.T) {
		svc := NewDocumentService(nil, render.NewRenderer(), nil, nil)
		warning := model.GeneratedDocument{
			Kind:      model.KindCoverLetter,
			OwnerName: "Jane Doe",
			Content:   llm.WarningMessage(&llm.Error{Kind: llm.KindConfiguration}),
			Failure:   "configuration",
		}

		pdf, err := svc.ExportPDF(ctx, warning)

		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(pdf.Data, []byte("%PDF-")))
		assert.Equal(t, "Jane_Doe_Cover_Letter.pdf", pdf.Filename)
	})
}

func TestDocumentService_EndToEnd(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("TMPDIR", tmp)
	ctx := context.Background()

	gen := new(llmMocks.MockContentGenerator)
	gen.On("Complete", mock.Anything, mock.MatchedBy(func(p string) bool {
		return strings.Contains(p, "Jane Doe") && strings.Contains(p, "Go, SQL")
	})).Return("## Summary\n- Built services", nil).Once()

	r := new(renderMocks.MockRenderer)
	realRenderer := render.NewRenderer()
	r.On("Render", "Summary\nBuilt services").Return(func() []byte {
		out, err := realRenderer.Render("Summary\nBuilt services")
		require.NoError(t, err)
		return out
	}(), nil).Once()

	svc := NewDocumentService(gen, r, nil, nil)

	doc, err := svc.Generate(ctx, model.KindResume, janeDoe())
	require.NoError(t, err)
	require.False(t, doc.Failed())

	pdf, err := svc.ExportPDF(ctx, doc)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf.Data)
	assert.Equal(t, "Jane_Doe_Resume.pdf", pdf.Filename)

	entries, err := os.ReadDir(tmp)
	require.NoError(t, err)
	assert.Empty(t, entries)

	gen.AssertExpectations(t)
	r.AssertExpectations(t)
}

func TestDocumentService_UnreachableEndpoint(t *testing.T) {
	client := llm.NewClient(config.LLMConfig{APIKey: "k", Endpoint: "http://127.0.0.1:1/v1/chat/completions"})
	svc := NewDocumentService(client, nil, nil, nil)

	doc, err := svc.Generate(context.Background(), model.KindResume, janeDoe())

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(doc.Content, llm.WarningPrefix))
	assert.Equal(t, "transport", doc.Failure)
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	gen := new(llmMocks.MockContentGenerator)
	gen.On("Complete", mock.Anything, mock.Anything).Return("text", nil).Once()
	gen.On("Complete", mock.Anything, mock.Anything).Return("", &llm.Error{Kind: llm.KindTimeout}).Once()

	r := new(renderMocks.MockRenderer)
	r.On("Render", mock.Anything).Return([]byte("%PDF"), nil).Once()
	r.On("Render", mock.Anything).Return(nil, errors.New("fail")).Once()

	svc := NewDocumentService(gen, r, m, nil)
	ctx := context.Background()

	doc, _ := svc.Generate(ctx, model.KindResume, janeDoe())
	_, _ = svc.Generate(ctx, model.KindResume, janeDoe())
	_, _ = svc.ExportPDF(ctx, doc)
	_, _ = svc.ExportPDF(ctx, doc)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.generated.WithLabelValues("resume", "success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.generated.WithLabelValues("resume", "timeout")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.exports.WithLabelValues("success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.exports.WithLabelValues("failure")))

	_, err = NewMetrics(reg)
	assert.Error(t, err, "registering twice on one registry must fail")
}
