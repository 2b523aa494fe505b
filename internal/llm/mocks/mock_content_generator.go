package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockContentGenerator struct {
	mock.Mock
}

func (m *MockContentGenerator) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}
