package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mindease-app/mindease/internal/vectorstore"
)

// MockRetriever is a mock implementation of the vector store
type MockRetriever struct {
	mock.Mock
}

func (m *MockRetriever) Embed(ctx context.Context, text string) ([]float32, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float32), args.Error(1)
}

func (m *MockRetriever) SearchSimilar(ctx context.Context, userID int64, embedding []float32, k int) ([]vectorstore.SearchResult, error) {
	args := m.Called(ctx, userID, embedding, k)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]vectorstore.SearchResult), args.Error(1)
}

func (m *MockRetriever) AddInteraction(ctx context.Context, userID int64, uid, prompt, response string, embedding []float32) error {
	args := m.Called(ctx, userID, uid, prompt, response, embedding)
	return args.Error(0)
}
