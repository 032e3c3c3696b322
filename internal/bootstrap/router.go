package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/readme-maestro/maestro-backend/internal/api/http"
	"github.com/readme-maestro/maestro-backend/internal/api/http/routes"
	"github.com/readme-maestro/maestro-backend/internal/assembler"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	APIKey      string
	Registry    *assembler.BadgeRegistry
	Limits      assembler.Limits
	Provider    assembler.Provider
	DB          *pgxpool.Pool
	Redis       *redis.Client
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)

	routes.RegisterV1(r, routes.V1Deps{
		APIKey:   dep.APIKey,
		Registry: dep.Registry,
		Limits:   dep.Limits,
		Provider: dep.Provider,
		DB:       dep.DB,
		Redis:    dep.Redis,
	})

	return r
}
