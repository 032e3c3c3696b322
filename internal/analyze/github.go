package analyze

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const githubTimeout = 10 * time.Second

// ErrInvalidRepoURL marks a URL that is not a github.com repository link.
var ErrInvalidRepoURL = errors.New("invalid GitHub repository URL")

// GitHubResult is what a repository lookup can pre-fill.
type GitHubResult struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Language        string   `json:"language"`
	Stars           int      `json:"stars"`
	SuggestedBadges []string `json:"suggested_badges"`
}

// GitHubClient looks repositories up through the public GitHub API.
type GitHubClient struct {
	baseURL string
	http    *http.Client
}

func NewGitHubClient() *GitHubClient {
	return &GitHubClient{
		baseURL: "https://api.github.com",
		http:    &http.Client{Timeout: githubTimeout},
	}
}

// NewGitHubClientWithBaseURL is used by tests to point at a stub server.
func NewGitHubClientWithBaseURL(baseURL string) *GitHubClient {
	c := NewGitHubClient()
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

type repoResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Stars       int    `json:"stargazers_count"`
}

// Lookup fetches repository metadata for a https://github.com/{owner}/{repo}
// URL.
func (c *GitHubClient) Lookup(ctx context.Context, repoURL string) (*GitHubResult, error) {
	owner, repo, err := splitRepoURL(repoURL)
	if err != nil {
		return nil, err
	}

	reqURL := fmt.Sprintf("%s/repos/%s/%s", c.baseURL, owner, repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("github returned status %d for %s/%s", resp.StatusCode, owner, repo)
	}

	var out repoResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("github decode: %w", err)
	}

	res := &GitHubResult{
		Name:        out.Name,
		Description: out.Description,
		Language:    out.Language,
		Stars:       out.Stars,
	}
	if id, ok := languageBadges[out.Language]; ok {
		res.SuggestedBadges = append(res.SuggestedBadges, id)
	}
	res.SuggestedBadges = append(res.SuggestedBadges, "stars")

	return res, nil
}

func splitRepoURL(repoURL string) (owner, repo string, err error) {
	const prefix = "https://github.com/"
	if !strings.HasPrefix(repoURL, prefix) {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidRepoURL, repoURL)
	}
	parts := strings.Split(strings.Trim(strings.TrimPrefix(repoURL, prefix), "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidRepoURL, repoURL)
	}
	return parts[0], parts[1], nil
}
