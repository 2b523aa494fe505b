package mocks

import "github.com/stretchr/testify/mock"

type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) Render(text string) ([]byte, error) {
	args := m.Called(text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
