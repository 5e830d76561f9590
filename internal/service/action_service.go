package service

import (
	"context"
	"fmt"

	"notedeck/internal/completion"
	"notedeck/internal/domain"
)

const actionSystemPrompt = "You are a helpful assistant that generates actionable items from notes. Always format responses as bullet points with \"Name - Task\" format."

const actionPromptTemplate = `Based on the following note, generate a list of actionable items in the format "(numbering) Name : Task". Each action should be consice, specific and actionable.

Title: %s
Content: %s

Please format the response as:
• Name - Task
• Name - Task
etc.`

// ActionService derives action items for a note by delegating to the
// completion client. The client is nil when no credential was configured,
// which turns every request into a configuration error without any network
// call. Generated text is trusted verbatim; it is never parsed or validated.
type ActionService struct {
	client      completion.Client
	maxTokens   int
	temperature float64
}

func NewActionService(client completion.Client, maxTokens int, temperature float64) *ActionService {
	return &ActionService{
		client:      client,
		maxTokens:   maxTokens,
		temperature: temperature,
	}
}

func (s *ActionService) Generate(ctx context.Context, req *domain.GenerateActionsRequest) (string, error) {
	if s.client == nil {
		return "", ErrCompletionNotConfigured
	}

	if req.Title == "" && req.Content == "" {
		return "", ErrNothingToGenerate
	}

	title := req.Title
	if title == "" {
		title = "No title"
	}
	content := req.Content
	if content == "" {
		content = "No content"
	}

	return s.client.Complete(ctx, &completion.Request{
		Prompt:      fmt.Sprintf(actionPromptTemplate, title, content),
		System:      actionSystemPrompt,
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
	})
}
