package main

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/readme-maestro/maestro-backend/config"
	"github.com/readme-maestro/maestro-backend/internal/assembler"
	"github.com/readme-maestro/maestro-backend/internal/bootstrap"
	"github.com/readme-maestro/maestro-backend/internal/documents"
	"github.com/readme-maestro/maestro-backend/internal/provider"
)

const serviceName = "readme-maestro"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	var db *pgxpool.Pool
	if cfg.DatabaseEnabled() {
		db, err = bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: cfg.Database.DSN()})
		if err != nil {
			log.Fatalf("postgres: %v", err)
		}
		defer db.Close()

		janitor := documents.NewJanitor(documents.NewRepo(db))
		janitor.Start()
		defer janitor.Stop()
	} else {
		log.Println("DB_HOST not set, archive disabled")
	}

	var rdb *redis.Client
	if cfg.RedisEnabled() {
		rdb, err = bootstrap.OpenRedis(ctx, cfg.Redis)
		if err != nil {
			log.Fatalf("redis: %v", err)
		}
		defer rdb.Close()
	} else {
		log.Println("REDIS_ADDR not set, history disabled")
	}

	var p assembler.Provider
	if cfg.Provider.APIKey != "" {
		p = provider.New(provider.Options{
			BaseURL: cfg.Provider.BaseURL,
			APIKey:  cfg.Provider.APIKey,
			Model:   cfg.Provider.Model,
			Timeout: cfg.Provider.Timeout,
		})
	} else {
		log.Println("PROVIDER_API_KEY not set, running fallback-only")
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		APIKey:      cfg.Server.APIKey,
		Registry:    assembler.NewBadgeRegistry(cfg.Generator.BadgeStyle),
		Limits: assembler.Limits{
			MaxFeatures: cfg.Generator.MaxFeatures,
			MaxBadges:   cfg.Generator.MaxBadges,
		},
		Provider: p,
		DB:       db,
		Redis:    rdb,
	})

	log.Printf("%s %s listening on :%s", serviceName, cfg.App.Version, cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
