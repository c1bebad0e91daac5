package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ANUSHKASINGH809/orderbook-simulator/pkg/config"
	"github.com/ANUSHKASINGH809/orderbook-simulator/pkg/logger"
	"github.com/ANUSHKASINGH809/orderbook-simulator/pkg/redis"

	"github.com/ANUSHKASINGH809/orderbook-simulator/internal/app"
	"github.com/ANUSHKASINGH809/orderbook-simulator/internal/app/api"
	"github.com/ANUSHKASINGH809/orderbook-simulator/internal/app/instrumentation"
	appconfig "github.com/ANUSHKASINGH809/orderbook-simulator/internal/config"
	feedv1 "github.com/ANUSHKASINGH809/orderbook-simulator/internal/domain/feed/v1"
	"github.com/ANUSHKASINGH809/orderbook-simulator/internal/usecase/feed"
	"github.com/ANUSHKASINGH809/orderbook-simulator/internal/usecase/simulator"
	"github.com/ANUSHKASINGH809/orderbook-simulator/internal/usecase/snapshot"
)

var cfg *appconfig.Config
var log *logger.Logger

func init() {
	cfg = &appconfig.Config{}
	config.MustLoad(cfg)

	l, err := logger.NewLogger()
	if err != nil {
		panic(err)
	}
	log = l
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var rclient redis.Client
	if cfg.RedisEnabled {
		rclient = redis.NewClient(log, &cfg.Redis)
		if err := rclient.Connect(ctx); err != nil {
			log.Error(err, logger.Field{
				Key:   "action",
				Value: "connect_redis",
			})
			return
		}
	}

	store := snapshot.NewStore(rclient, log)
	metrics := instrumentation.NewMetrics()
	engine := simulator.NewSimulator()

	feeds := make([]feedv1.Feed, 0, len(cfg.Venues))
	for _, venue := range cfg.Venues {
		f, err := feed.NewForVenue(venue, cfg.Symbol, log)
		if err != nil {
			log.Error(err, logger.Field{
				Key:   "venue",
				Value: venue,
			})
			return
		}
		feeds = append(feeds, f)
	}

	server := api.NewServer(store, engine, metrics, log)
	service := app.NewService(cfg, store, feeds, server.Handler(), metrics, log)

	if err := service.Start(ctx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "start_service",
		})
		return
	}

	log.Info("orderbook simulator started", logger.Field{
		Key:   "symbol",
		Value: cfg.Symbol,
	}, logger.Field{
		Key:   "venues",
		Value: cfg.Venues,
	})

	sig := <-sigChan
	log.Info("received shutdown signal", logger.Field{
		Key:   "signal",
		Value: sig.String(),
	})

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := service.Stop(shutdownCtx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "stop_service",
		})
	}

	if rclient != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		if err := rclient.Disconnect(disconnectCtx); err != nil {
			log.Error(err, logger.Field{
				Key:   "action",
				Value: "disconnect_redis",
			})
		}
	}

	_ = log.Sync()
}
