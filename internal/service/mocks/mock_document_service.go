package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"resumebuilder/internal/model"
)

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Generate(ctx context.Context, kind model.DocumentKind, profile model.UserProfile) (model.GeneratedDocument, error) {
	args := m.Called(ctx, kind, profile)
	return args.Get(0).(model.GeneratedDocument), args.Error(1)
}

func (m *MockDocumentService) ExportPDF(ctx context.Context, doc model.GeneratedDocument) (*model.RenderedPDF, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RenderedPDF), args.Error(1)
}
