package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/readme-maestro/maestro-backend/internal/api/http"
	"github.com/readme-maestro/maestro-backend/internal/api/http/analysis"
	"github.com/readme-maestro/maestro-backend/internal/api/http/middleware"
	"github.com/readme-maestro/maestro-backend/internal/api/http/readmes"
	"github.com/readme-maestro/maestro-backend/internal/analyze"
	"github.com/readme-maestro/maestro-backend/internal/assembler"
	"github.com/readme-maestro/maestro-backend/internal/documents"
	"github.com/readme-maestro/maestro-backend/internal/history"
)

type V1Deps struct {
	APIKey   string
	Registry *assembler.BadgeRegistry
	Limits   assembler.Limits
	Provider assembler.Provider // nil for fallback-only
	DB       *pgxpool.Pool      // nil disables the archive
	Redis    *redis.Client      // nil disables history
}

func RegisterV1(r *gin.Engine, dep V1Deps) {
	api := r.Group("/api/v1")
	api.Use(middleware.APIKeyMiddleware(dep.APIKey))
	api.Use(middleware.RequestIDMiddleware())
	api.Use(middleware.IdentityMiddleware())

	var historyRepo *history.Repo
	if dep.Redis != nil {
		historyRepo = history.NewRepo(dep.Redis)
	}
	var archiveRepo *documents.Repo
	if dep.DB != nil {
		archiveRepo = documents.NewRepo(dep.DB)
	}

	a := assembler.New(dep.Registry, dep.Limits, dep.Provider)
	fallback := assembler.New(dep.Registry, dep.Limits, nil)

	readmes.Register(api, readmes.NewHandler(a, fallback, dep.Registry, historyRepo, archiveRepo))
	analysis.Register(api, analysis.NewHandler(analyze.NewGitHubClient()))
	api.GET("/metrics", httpapi.MetricsHandler)
}
