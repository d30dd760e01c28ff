package container

import (
	"context"
	"fmt"
	"time"

	"rebrickable/lookup/internal/cache"
	"rebrickable/lookup/internal/client"
	"rebrickable/lookup/internal/config"
	"rebrickable/lookup/internal/repository"
	"rebrickable/lookup/internal/server"
	"rebrickable/lookup/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// Container holds all initialized components
type Container struct {
	Config     *config.Config
	Client     client.RebrickableClient
	Repository repository.PartRepository
	RGBCache   cache.RGBCache
	Service    *service.Service
	Server     *server.Server

	db    *pgxpool.Pool
	redis *redis.Client
}

// New creates a new container with all dependencies initialized
func New(cfg *config.Config) (*Container, error) {
	container := &Container{
		Config: cfg,
	}

	apiClient := client.NewRebrickableClient(cfg.Rebrickable)
	container.Client = apiClient

	rgbCache := cache.NewMemory()
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.Database,
		})

		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		log.Info("✅ Connected to Redis successfully")

		container.redis = rdb
		rgbCache = cache.NewRedis(rdb, time.Duration(cfg.Redis.CacheTTL)*time.Second)
	}
	container.RGBCache = rgbCache

	if cfg.Database.Enabled {
		db, err := pgxpool.New(context.Background(),
			fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
				cfg.Database.Host,
				cfg.Database.Port,
				cfg.Database.User,
				cfg.Database.Password,
				cfg.Database.Name,
			))
		if err != nil {
			return nil, err
		}
		if err := repository.EnsureSchema(context.Background(), db); err != nil {
			return nil, err
		}
		log.Info("✅ Connected to Postgres successfully")

		container.db = db
		container.Repository = repository.NewPartRepository(db)
	}

	var lookuper server.Lookuper
	if cfg.Rebrickable.APIKey != "" {
		svc := service.NewService(apiClient, rgbCache, container.Repository)
		container.Service = svc
		lookuper = svc
	} else {
		log.Warn("⚠️ REBRICKABLE_API_KEY is not set; lookups will fail until it is provided")
	}

	container.Server = server.New(cfg.Server, lookuper)

	return container, nil
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	if c.db != nil {
		c.db.Close()
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			return err
		}
	}
	return nil
}
