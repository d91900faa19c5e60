package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"shopsmart-ai/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(baseURL string) *Client {
	return NewClient(&config.LLMConfig{
		APIKey:  "test-key",
		BaseURL: baseURL,
		Model:   "openai/gpt-4o-mini",
	}, zap.NewNop())
}

func completionBody(content string) string {
	return `{"choices":[{"message":{"content":` + mustJSON(content) + `}}]}`
}

func mustJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestCompleteReturnsFirstChoice(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(completionBody("the answer")))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	text, err := client.Complete(context.Background(), []Message{
		{Role: RoleSystem, Content: "sys"},
		{Role: RoleUser, Content: "hello"},
	}, FormatText)

	require.NoError(t, err)
	assert.Equal(t, "the answer", text)
	assert.Equal(t, "openai/gpt-4o-mini", got.Model)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, RoleUser, got.Messages[1].Role)
	assert.Nil(t, got.ResponseFormat)
}

func TestCompleteSendsResponseFormatHint(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(completionBody("{}")))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.Complete(context.Background(), []Message{{Role: RoleUser, Content: "q"}}, FormatJSONObject)

	require.NoError(t, err)
	require.NotNil(t, got.ResponseFormat)
	assert.Equal(t, "json_object", got.ResponseFormat.Type)
}

func TestCompleteEmptyChoicesIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	text, err := client.Complete(context.Background(), []Message{{Role: RoleUser, Content: "q"}}, FormatText)

	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestCompleteProviderErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid key"}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.Complete(context.Background(), []Message{{Role: RoleUser, Content: "q"}}, FormatText)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestCompleteMalformedBodyIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.Complete(context.Background(), []Message{{Role: RoleUser, Content: "q"}}, FormatText)

	require.Error(t, err)
}
