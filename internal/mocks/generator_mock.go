package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockGenerator is a mock implementation of the text-generation client
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, instruction, text string) (string, error) {
	args := m.Called(ctx, instruction, text)
	return args.String(0), args.Error(1)
}
