package analyze

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
}

func TestLocal(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.py", "print('hi')\n")
	writeFile(t, dir, "helper.go", "package main\n")
	writeFile(t, dir, "requirements.txt", "# deps\nrequests==2.31\ncustomtkinter\n\n")
	writeFile(t, dir, filepath.Join(".github", "workflows", "ci.yml"), "on: push\n")

	res, err := Local(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Base(dir), res.Name)
	assert.Equal(t, []string{"Go", "Python"}, res.Languages)
	assert.Equal(t, []string{"requests==2.31", "customtkinter"}, res.Dependencies)
	assert.Contains(t, res.DirectoryTree, "```")
	assert.Contains(t, res.DirectoryTree, "main.py")
	assert.Contains(t, res.SuggestedBadges, "python")
	assert.Contains(t, res.SuggestedBadges, "go")
	assert.Contains(t, res.SuggestedBadges, "github-actions")
}

func TestLocal_GoModDependencies(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/x\n\ngo 1.22\n\nrequire (\n\tgithub.com/gin-gonic/gin v1.11.0\n\tgithub.com/google/uuid v1.6.0 // indirect\n)\n")

	res, err := Local(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"github.com/gin-gonic/gin", "github.com/google/uuid"}, res.Dependencies)
}

func TestLocal_NotADirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "f.txt", "x")

	_, err := Local(filepath.Join(dir, "f.txt"))
	assert.Error(t, err)

	_, err = Local(filepath.Join(dir, "does-not-exist"))
	assert.Error(t, err)
}

func TestGitHubLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/aaryan/apex", r.URL.Path)
		_, _ = w.Write([]byte(`{"name":"apex","description":"Anime player","language":"Python","stargazers_count":42}`))
	}))
	defer srv.Close()

	c := NewGitHubClientWithBaseURL(srv.URL)
	res, err := c.Lookup(context.Background(), "https://github.com/aaryan/apex")
	require.NoError(t, err)

	assert.Equal(t, "apex", res.Name)
	assert.Equal(t, "Anime player", res.Description)
	assert.Equal(t, 42, res.Stars)
	assert.Contains(t, res.SuggestedBadges, "python")
	assert.Contains(t, res.SuggestedBadges, "stars")
}

func TestGitHubLookup_InvalidURL(t *testing.T) {
	c := NewGitHubClient()

	for _, u := range []string{"", "https://gitlab.com/a/b", "https://github.com/onlyowner"} {
		_, err := c.Lookup(context.Background(), u)
		assert.ErrorIs(t, err, ErrInvalidRepoURL, "url %q", u)
	}
}

func TestGitHubLookup_APIFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewGitHubClientWithBaseURL(srv.URL)
	_, err := c.Lookup(context.Background(), "https://github.com/a/b")
	assert.Error(t, err)
}
