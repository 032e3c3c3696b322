package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readme-maestro/maestro-backend/internal/assembler"
	"github.com/readme-maestro/maestro-backend/internal/bootstrap"
	"github.com/readme-maestro/maestro-backend/internal/provider"
)

// setupStack builds the full router against a stub chat-completions server
// and a miniredis-backed history store.
func setupStack(t *testing.T, completions http.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	upstream := httptest.NewServer(completions)
	t.Cleanup(upstream.Close)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "readme-maestro",
		Version:     "test",
		Registry:    assembler.NewBadgeRegistry("flat"),
		Limits:      assembler.DefaultLimits(),
		Provider: provider.New(provider.Options{
			BaseURL: upstream.URL,
			APIKey:  "test-key",
			Model:   "test-model",
		}),
		Redis: client,
	})
}

func generate(t *testing.T, r *gin.Engine, path string) map[string]any {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"name":        "Apex",
		"description": "Anime player",
		"features":    []string{"No ads"},
		"badges":      []string{"python"},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func documentSource(t *testing.T, resp map[string]any) string {
	t.Helper()
	doc, ok := resp["document"].(map[string]any)
	require.True(t, ok)
	src, ok := doc["source"].(string)
	require.True(t, ok)
	return src
}

func TestGeneration_AIBranch(t *testing.T) {
	r := setupStack(t, func(w http.ResponseWriter, req *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{
					"content": "# Apex\n\n## Description\nThe finest anime player.\n\n## Features\n- No ads\n",
				}},
			},
		})
	})

	resp := generate(t, r, "/api/v1/readmes/generate")
	assert.Equal(t, "ai", documentSource(t, resp))
	assert.Contains(t, resp["markdown"], "The finest anime player.")
	// Omitted sections still present, filled deterministically.
	assert.Contains(t, resp["markdown"], "## License")
}

func TestGeneration_ProviderDownFallsBack(t *testing.T) {
	r := setupStack(t, func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	resp := generate(t, r, "/api/v1/readmes/generate")
	assert.Equal(t, "fallback", documentSource(t, resp))
}

func TestGeneration_ProviderOffQuery(t *testing.T) {
	called := false
	r := setupStack(t, func(w http.ResponseWriter, req *http.Request) {
		called = true
	})

	resp := generate(t, r, "/api/v1/readmes/generate?provider=off")
	assert.Equal(t, "fallback", documentSource(t, resp))
	assert.False(t, called, "provider must not be called when forced off")
}
