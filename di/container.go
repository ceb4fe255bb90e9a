package di

import (
	"context"
	"fmt"
	"time"

	"crowd-server/config"
	"crowd-server/dao/redis"
	"crowd-server/db"
	"crowd-server/logging"
	"crowd-server/server"
	"crowd-server/server/handlers"
	services "crowd-server/service"
	"crowd-server/simulator"
	"crowd-server/stream"
	"crowd-server/util"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
)

const redisPingTimeout = 5 * time.Second

// Container holds all application dependencies.
type Container struct {
	Config                   *config.Config
	RedisClient              db.RedisClient
	RedisLocationDao         *redis.RedisLocationDAO
	Simulator                *simulator.Simulator
	LocationService          *services.LocationService
	AlertService             *services.AlertService
	SnapshotRefresherService *services.SnapshotRefresherService
	Hub                      *stream.Hub
	LocationHandler          *handlers.LocationHandler
	AlertHandler             *handlers.AlertHandler
	StreamHandler            *handlers.StreamHandler
	MuxRouter                *mux.Router
	Router                   *server.Router
	CrowdHttpServer          *server.CrowdHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(cfg *config.Config) (*Container, error) {
	log := logging.Component("Container")
	log.Info().Bool("redis_mock", cfg.Redis.Mock).Str("timezone", cfg.Simulator.Timezone).Msg("initializing container")

	redisClient, err := newRedisClient(cfg.Redis)
	if err != nil {
		return nil, err
	}

	tz, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	var simOpts []simulator.Option
	if cfg.Simulator.CatalogPath != "" {
		path := config.ResolvePath(cfg.Simulator.CatalogPath)
		catalog, err := util.ReadCatalogFromJSON(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		log.Info().Str("path", path).Int("locations", len(catalog)).Msg("using catalog from file")
		simOpts = append(simOpts, simulator.WithCatalog(catalog))
	}
	sim := simulator.NewSimulator(simOpts...)

	redisLocationDao := redis.NewRedisLocationDAO(redisClient)

	locationService := services.NewLocationService(sim, redisLocationDao, tz)
	alertService := services.NewAlertService(redisLocationDao, locationService)
	hub := stream.NewHub()
	refresher := services.NewSnapshotRefresherService(locationService, alertService, redisLocationDao, hub)

	locationHandler := handlers.NewLocationHandler(locationService)
	alertHandler := handlers.NewAlertHandler(alertService)
	streamHandler := handlers.NewStreamHandler(hub, cfg.Server.CORSOrigins)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(locationHandler, alertHandler, streamHandler, muxRouter)
	crowdHttpServer := server.NewCrowdHttpServer(router, muxRouter, cfg.Server)

	return &Container{
		Config:                   cfg,
		RedisClient:              redisClient,
		RedisLocationDao:         redisLocationDao,
		Simulator:                sim,
		LocationService:          locationService,
		AlertService:             alertService,
		SnapshotRefresherService: refresher,
		Hub:                      hub,
		LocationHandler:          locationHandler,
		AlertHandler:             alertHandler,
		StreamHandler:            streamHandler,
		MuxRouter:                muxRouter,
		Router:                   router,
		CrowdHttpServer:          crowdHttpServer,
	}, nil
}

func newRedisClient(cfg config.RedisConfig) (db.RedisClient, error) {
	if cfg.Mock {
		logging.Warn().Msg("using in-memory redis mock")
		return db.NewMockRedisClient(), nil
	}

	client := db.NewGeoRedisClient(goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}))

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := client.Ping(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Addr, err)
	}
	return db.NewBreakerRedisClient(client, db.BreakerSettings{
		FailureThreshold: cfg.BreakerFailures,
		Timeout:          cfg.BreakerTimeout,
	}), nil
}
