package completion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-3.5-turbo", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "user", req.Messages[1].Role)
		assert.Equal(t, 300, req.MaxTokens)

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "  • Sam - Buy milk\n"}},
			},
		})
	}))
	defer srv.Close()

	client := NewOpenAIClient("test-key", srv.URL, "gpt-3.5-turbo")
	text, err := client.Complete(context.Background(), &Request{
		Prompt:      "note text",
		System:      "be helpful",
		MaxTokens:   300,
		Temperature: 0.7,
	})
	require.NoError(t, err)
	assert.Equal(t, "• Sam - Buy milk", text)
}

func TestOpenAICompleteUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"Rate limit reached"}}`))
	}))
	defer srv.Close()

	client := NewOpenAIClient("test-key", srv.URL, "gpt-3.5-turbo")
	_, err := client.Complete(context.Background(), &Request{Prompt: "p"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Rate limit reached")
}

func TestOpenAICompleteEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	client := NewOpenAIClient("test-key", srv.URL, "gpt-3.5-turbo")
	_, err := client.Complete(context.Background(), &Request{Prompt: "p"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no completion generated")
}
