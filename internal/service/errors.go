package service

import "errors"

var (
	// ErrEmptyTitle rejects updates whose title trims to nothing. Create does
	// not share this policy; it falls back to the default title instead.
	ErrEmptyTitle = errors.New("Title is required")

	// ErrNothingToGenerate rejects generation requests with neither title nor
	// content to work from.
	ErrNothingToGenerate = errors.New("Please provide either title or content to generate actions.")

	// ErrCompletionNotConfigured is returned when no completion credential was
	// provided at startup.
	ErrCompletionNotConfigured = errors.New("OpenAI API key not configured. Please add OPENAI_API_KEY to your .env file.")
)
