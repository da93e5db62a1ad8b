package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockSpeechClient is a mock implementation of the TTS client
type MockSpeechClient struct {
	mock.Mock
}

func (m *MockSpeechClient) Generate(ctx context.Context, text, voice string) (string, error) {
	args := m.Called(ctx, text, voice)
	return args.String(0), args.Error(1)
}

func (m *MockSpeechClient) IsConfigured() bool {
	args := m.Called()
	return args.Bool(0)
}
