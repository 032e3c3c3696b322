package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readme-maestro/maestro-backend/internal/assembler"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestComplete_Success(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "openai/gpt-4o-mini", req.Model)
		require.Len(t, req.Messages, 1)
		assert.Contains(t, req.Messages[0].Content, "Apex")

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "## Description\nok"}},
			},
		})
	})

	c := New(Options{BaseURL: srv.URL, APIKey: "test-key", Model: "openai/gpt-4o-mini"})
	got, err := c.Complete(context.Background(), "README for Apex")
	require.NoError(t, err)
	assert.Equal(t, "## Description\nok", got)
}

func TestComplete_ErrorStatus(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	})

	c := New(Options{BaseURL: srv.URL, Model: "m"})
	_, err := c.Complete(context.Background(), "prompt")
	assert.ErrorIs(t, err, assembler.ErrProviderUnavailable)
}

func TestComplete_EmptyChoices(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})

	c := New(Options{BaseURL: srv.URL, Model: "m"})
	_, err := c.Complete(context.Background(), "prompt")
	assert.ErrorIs(t, err, assembler.ErrProviderEmpty)
}

func TestComplete_MalformedBody(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	c := New(Options{BaseURL: srv.URL, Model: "m"})
	_, err := c.Complete(context.Background(), "prompt")
	assert.ErrorIs(t, err, assembler.ErrProviderUnavailable)
}

func TestComplete_Timeout(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})

	c := New(Options{BaseURL: srv.URL, Model: "m", Timeout: 20 * time.Millisecond})
	_, err := c.Complete(context.Background(), "prompt")
	assert.ErrorIs(t, err, assembler.ErrProviderUnavailable)
}

func TestMetricsRecording(t *testing.T) {
	ResetMetrics()

	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"hi"}}]}`))
	})

	c := New(Options{BaseURL: srv.URL, Model: "m"})
	_, err := c.Complete(context.Background(), "prompt")
	require.NoError(t, err)

	m := GetMetrics()
	assert.EqualValues(t, 1, m.Calls())
	assert.EqualValues(t, 0, m.Errors())
	assert.Zero(t, m.ErrorRate())
}
