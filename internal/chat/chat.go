// Package chat implements the retrieval-augmented chat turn: embed the
// prompt, pull similar past interactions, build a context block, generate the
// reply and store the turn.
package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mindease-app/mindease/internal/database"
	"github.com/mindease-app/mindease/internal/vectorstore"
)

// retrievalK is how many prior interactions are stitched into the context
const retrievalK = 5

const roleInstruction = `You are a supportive AI emotional twin. Based on the user's past experiences and emotional patterns, help them now.`

// Generator is the external text-generation collaborator
type Generator interface {
	Generate(ctx context.Context, instruction, text string) (string, error)
}

// Retriever is the embedding + similarity-search collaborator
type Retriever interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	SearchSimilar(ctx context.Context, userID int64, embedding []float32, k int) ([]vectorstore.SearchResult, error)
	AddInteraction(ctx context.Context, userID int64, uid, prompt, response string, embedding []float32) error
}

// Service runs chat turns
type Service struct {
	db        *database.DB
	retriever Retriever
	gen       Generator
}

// NewService creates a new chat service
func NewService(db *database.DB, retriever Retriever, gen Generator) *Service {
	return &Service{db: db, retriever: retriever, gen: gen}
}

// Respond handles one chat turn for a user. A failure of the embedding or
// search call aborts the whole turn.
func (s *Service) Respond(ctx context.Context, userID int64, prompt string) (*database.Interaction, error) {
	embedding, err := s.retriever.Embed(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to embed prompt: %w", err)
	}

	matches, err := s.retriever.SearchSimilar(ctx, userID, embedding, retrievalK)
	if err != nil {
		return nil, fmt.Errorf("failed to search similar interactions: %w", err)
	}

	response, err := s.gen.Generate(ctx, "", buildPrompt(matches, prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate response: %w", err)
	}

	interaction := &database.Interaction{
		UID:      uuid.NewString(),
		UserID:   userID,
		Prompt:   prompt,
		Response: response,
	}
	if err := s.db.CreateInteraction(interaction); err != nil {
		return nil, err
	}

	if err := s.retriever.AddInteraction(ctx, userID, interaction.UID, prompt, response, embedding); err != nil {
		return nil, fmt.Errorf("failed to index interaction: %w", err)
	}

	return interaction, nil
}

// BuildContext concatenates retrieved turns into the context block, in the
// order the similarity search returned them.
func BuildContext(matches []vectorstore.SearchResult) string {
	pairs := make([]string, 0, len(matches))
	for _, m := range matches {
		pairs = append(pairs, fmt.Sprintf("User: %q\nAI: %q", m.Prompt, m.Response))
	}
	return strings.Join(pairs, "\n\n")
}

func buildPrompt(matches []vectorstore.SearchResult, prompt string) string {
	var b strings.Builder
	b.WriteString(roleInstruction)
	b.WriteString("\n\nHere are their previous interactions:\n")
	b.WriteString(BuildContext(matches))
	b.WriteString("\n\nNew prompt:\n")
	b.WriteString(fmt.Sprintf("%q", prompt))
	return b.String()
}
