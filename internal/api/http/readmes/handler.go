package readmes

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/readme-maestro/maestro-backend/internal/assembler"
	"github.com/readme-maestro/maestro-backend/internal/documents"
	"github.com/readme-maestro/maestro-backend/internal/history"
	"github.com/readme-maestro/maestro-backend/internal/render"
)

// Handler serves generation and the history surface. historyRepo and
// archiveRepo may be nil when the matching store is not configured.
type Handler struct {
	assembler   *assembler.Assembler
	fallback    *assembler.Assembler // provider-less twin for ?provider=off
	registry    *assembler.BadgeRegistry
	historyRepo *history.Repo
	archiveRepo *documents.Repo
}

func NewHandler(a, fallback *assembler.Assembler, registry *assembler.BadgeRegistry, historyRepo *history.Repo, archiveRepo *documents.Repo) *Handler {
	return &Handler{
		assembler:   a,
		fallback:    fallback,
		registry:    registry,
		historyRepo: historyRepo,
		archiveRepo: archiveRepo,
	}
}

func (h *Handler) generate(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	a := h.assembler
	if c.Query("provider") == "off" {
		a = h.fallback
	}

	meta := req.metadata()
	doc, err := a.Generate(c.Request.Context(), meta)
	if err != nil {
		switch {
		case errors.Is(err, assembler.ErrInvalidMetadata):
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		case errors.Is(err, assembler.ErrInvalidBadge):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"ok": false, "error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		}
		return
	}

	md := render.Markdown(doc)
	if req.IncludeTOC {
		md = render.TableOfContents(md) + md
	}

	resp := generateResp{OK: true, Document: doc, Markdown: md}
	userID := c.GetString("user_id")

	if h.historyRepo != nil {
		entry := &history.Entry{
			UserID:   userID,
			Metadata: meta,
			Document: *doc,
			Markdown: md,
		}
		if err := h.historyRepo.Record(c.Request.Context(), entry); err != nil {
			log.Printf("[warn] history record failed: %v", err)
		} else {
			resp.ID = entry.ID
		}
	}

	if h.archiveRepo != nil {
		archived, err := h.archiveRepo.Create(c.Request.Context(),
			userID, meta.Name, string(doc.Source), md, doc.WordCount)
		if err != nil {
			log.Printf("[warn] archive create failed: %v", err)
		} else {
			resp.PublicID = archived.PublicID
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) list(c *gin.Context) {
	if h.historyRepo == nil {
		c.JSON(http.StatusOK, gin.H{"ok": true, "entries": []history.Entry{}})
		return
	}

	entries, err := h.historyRepo.List(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "entries": entries})
}

func (h *Handler) get(c *gin.Context) {
	if h.historyRepo == nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "history disabled"})
		return
	}

	entry, err := h.historyRepo.Get(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		if errors.Is(err, history.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "entry": entry})
}

func (h *Handler) delete(c *gin.Context) {
	if h.historyRepo == nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "history disabled"})
		return
	}

	err := h.historyRepo.Delete(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		if errors.Is(err, history.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) clear(c *gin.Context) {
	if h.historyRepo == nil {
		c.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}

	if err := h.historyRepo.Clear(c.Request.Context(), c.GetString("user_id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) badges(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ok":     true,
		"style":  h.registry.Style(),
		"badges": h.registry.List(),
	})
}
