package vectorstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	chromem "github.com/philippgille/chromem-go"
)

// EmbeddingDim is the fixed dimensionality of the embedding model
// (text-embedding-ada-002). Vectors of any other length are rejected at the
// persistence boundary.
const EmbeddingDim = 1536

// SearchResult is a single similarity hit over stored interactions
type SearchResult struct {
	InteractionUID string
	Prompt         string
	Response       string
	Score          float32
}

// Store wraps chromem-go with per-user collections and disk persistence
type Store struct {
	mu      sync.RWMutex
	db      *chromem.DB
	embedFn chromem.EmbeddingFunc
}

// NewEmbeddingFunc builds the embedding function for an OpenAI-compatible
// embeddings endpoint.
func NewEmbeddingFunc(baseURL, apiKey, model string) chromem.EmbeddingFunc {
	normalized := true
	return chromem.NewEmbeddingFuncOpenAICompat(baseURL, apiKey, model, &normalized)
}

// New creates (or opens) the persistent vector store at dataDir/vectorstore/
func New(dataDir string, embedFunc chromem.EmbeddingFunc) (*Store, error) {
	dir := filepath.Join(dataDir, "vectorstore")
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create vectorstore dir: %w", err)
	}
	db, err := chromem.NewPersistentDB(dir, false)
	if err != nil {
		return nil, fmt.Errorf("open vectorstore: %w", err)
	}
	return &Store{db: db, embedFn: embedFunc}, nil
}

// collectionName returns the per-user collection name
func collectionName(userID int64) string {
	return fmt.Sprintf("user_%d_interactions", userID)
}

// getOrCreateCollection returns (or creates) the per-user collection
func (s *Store) getOrCreateCollection(userID int64) (*chromem.Collection, error) {
	name := collectionName(userID)
	col := s.db.GetCollection(name, s.embedFn)
	if col == nil {
		var err error
		col, err = s.db.CreateCollection(name, nil, s.embedFn)
		if err != nil {
			return nil, fmt.Errorf("create vector collection for user %d: %w", userID, err)
		}
	}
	return col, nil
}

// Embed computes the embedding vector for a text and enforces the fixed
// dimensionality.
func (s *Store) Embed(ctx context.Context, text string) ([]float32, error) {
	vec, err := s.embedFn(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("embed text: %w", err)
	}
	if err := validateEmbedding(vec); err != nil {
		return nil, err
	}
	return vec, nil
}

// AddInteraction indexes a chat turn under the user's collection. The
// embedding must already be computed and of the fixed dimensionality.
func (s *Store) AddInteraction(ctx context.Context, userID int64, uid, prompt, response string, embedding []float32) error {
	if err := validateEmbedding(embedding); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	col, err := s.getOrCreateCollection(userID)
	if err != nil {
		return err
	}

	doc := chromem.Document{
		ID:        uid,
		Content:   prompt,
		Embedding: embedding,
		Metadata: map[string]string{
			"response": response,
		},
	}
	return col.AddDocument(ctx, doc)
}

// SearchSimilar returns the top-k stored turns most similar to the query
// vector, scoped to the user.
func (s *Store) SearchSimilar(ctx context.Context, userID int64, embedding []float32, k int) ([]SearchResult, error) {
	if err := validateEmbedding(embedding); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	col, err := s.getOrCreateCollection(userID)
	if err != nil {
		return nil, err
	}

	count := col.Count()
	if count == 0 {
		return nil, nil
	}
	if k > count {
		k = count
	}

	results, err := col.QueryEmbedding(ctx, embedding, k, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("vector search for user %d: %w", userID, err)
	}

	out := make([]SearchResult, 0, len(results))
	for _, r := range results {
		out = append(out, SearchResult{
			InteractionUID: r.ID,
			Prompt:         r.Content,
			Response:       r.Metadata["response"],
			Score:          r.Similarity,
		})
	}
	return out, nil
}

func validateEmbedding(vec []float32) error {
	if len(vec) != EmbeddingDim {
		return fmt.Errorf("embedding has %d dimensions, want %d", len(vec), EmbeddingDim)
	}
	return nil
}
