package analysis

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/readme-maestro/maestro-backend/internal/analyze"
)

// Handler serves the metadata auto-fill endpoint.
type Handler struct {
	github *analyze.GitHubClient
}

func NewHandler(github *analyze.GitHubClient) *Handler {
	return &Handler{github: github}
}

type analyzeReq struct {
	Path      string `json:"path"`
	GitHubURL string `json:"github_url"`
}

func (h *Handler) analyze(c *gin.Context) {
	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil || (req.Path == "" && req.GitHubURL == "") {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "path or github_url required"})
		return
	}

	if req.Path != "" {
		res, err := analyze.Local(req.Path)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "local": res})
		return
	}

	res, err := h.github.Lookup(c.Request.Context(), req.GitHubURL)
	if err != nil {
		if errors.Is(err, analyze.ErrInvalidRepoURL) {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "github": res})
}

// Register mounts the analyze route on the given group.
func Register(g gin.IRouter, h *Handler) {
	g.POST("/analyze", h.analyze)
}
