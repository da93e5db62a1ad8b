// Package planner turns free-text messages into Google Calendar deep links:
// a yes/no scheduling-intent check, a field-extraction call, and a
// deterministic render-URL builder.
package planner

import (
	"context"
	"strings"
)

// Generator is the external text-generation collaborator
type Generator interface {
	Generate(ctx context.Context, instruction, text string) (string, error)
}

// Service runs the scheduling pipeline against a generator
type Service struct {
	gen Generator
}

// NewService creates a new planner service
func NewService(gen Generator) *Service {
	return &Service{gen: gen}
}

// Classification is the result of the scheduling-intent check
type Classification struct {
	IsScheduling bool
	RawModelText string
}

// ClassifyScheduling asks the model whether the message is a scheduling
// request. The decision is heuristic: the reply must start with "yes" and the
// message must have more than one word. Single-word messages are never
// scheduling intents regardless of what the model says.
func (s *Service) ClassifyScheduling(ctx context.Context, message string) (Classification, error) {
	reply, err := s.gen.Generate(ctx, schedulingCheckPrompt, message)
	if err != nil {
		return Classification{}, err
	}

	answer := strings.ToLower(strings.TrimSpace(reply))
	isYes := len(answer) >= 3 && answer[:3] == "yes"
	multiWord := len(strings.Fields(message)) > 1

	return Classification{
		IsScheduling: isYes && multiWord,
		RawModelText: reply,
	}, nil
}
