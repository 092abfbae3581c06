package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/salesdesk/internal/client/client"
)

// AssistantService answers natural-language questions about the sales data.
type AssistantService interface {
	// Ask returns the text of the assistant turn: the generated SQL followed
	// by the query result when the server sent one.
	Ask(ctx context.Context, question string) (string, error)
}

type assistantService struct {
	client client.Client
}

func NewAssistantService(c client.Client) AssistantService {
	return &assistantService{client: c}
}

func (s *assistantService) Ask(ctx context.Context, question string) (string, error) {
	ans, err := s.client.AskAI(ctx, question)
	if err != nil {
		return "", fmt.Errorf("ai query error: %w", err)
	}
	return ans.Content(), nil
}
