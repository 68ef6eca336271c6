package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openai/openai-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(t *testing.T, handler http.HandlerFunc) *Generator {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	g, err := NewGenerator(Config{
		APIKey:  "test-key",
		BaseURL: server.URL + "/",
		Model:   "gpt-4o-mini",
	}, option.WithMaxRetries(0))
	require.NoError(t, err)
	return g
}

func TestGenerator_GenerateJSON(t *testing.T) {
	var body map[string]any
	g := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "gpt-4o-mini",
			"choices": [{
				"index": 0,
				"finish_reason": "stop",
				"message": {"role": "assistant", "content": " {\"score\": 81} "}
			}]
		}`))
	})

	got, err := g.GenerateJSON(context.Background(), "system", "user")
	require.NoError(t, err)
	assert.Equal(t, `{"score": 81}`, got)

	assert.Equal(t, "gpt-4o-mini", body["model"])
	assert.Equal(t, float64(0), body["temperature"])
	assert.Equal(t, map[string]any{"type": "json_object"}, body["response_format"])
	messages, ok := body["messages"].([]any)
	require.True(t, ok)
	assert.Len(t, messages, 2)
}

func TestGenerator_GenerateJSON_Errors(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
	}{
		{name: "bad_request", status: http.StatusBadRequest, body: `{"error":{"message":"bad model"}}`},
		{name: "no_choices", status: http.StatusOK, body: `{"id":"x","object":"chat.completion","choices":[]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGenerator(t, func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})

			_, err := g.GenerateJSON(context.Background(), "system", "user")
			require.Error(t, err)
		})
	}
}

func TestNewGenerator_Validation(t *testing.T) {
	_, err := NewGenerator(Config{Model: "gpt-4o-mini"})
	require.Error(t, err)

	_, err = NewGenerator(Config{APIKey: "key"})
	require.Error(t, err)
}
