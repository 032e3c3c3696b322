package readmes

import "github.com/gin-gonic/gin"

// Register mounts the generation and history routes on the given group.
func Register(g gin.IRouter, h *Handler) {
	g.POST("/readmes/generate", h.generate)
	g.GET("/readmes", h.list)
	g.DELETE("/readmes", h.clear)
	g.GET("/readmes/:id", h.get)
	g.DELETE("/readmes/:id", h.delete)
	g.GET("/badges", h.badges)
}
