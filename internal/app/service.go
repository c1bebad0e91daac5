// Package app assembles the feeds, the snapshot store and the HTTP server
// into one runnable service.
package app

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/ANUSHKASINGH809/orderbook-simulator/pkg/logger"

	"github.com/ANUSHKASINGH809/orderbook-simulator/internal/app/instrumentation"
	"github.com/ANUSHKASINGH809/orderbook-simulator/internal/config"
	feedv1 "github.com/ANUSHKASINGH809/orderbook-simulator/internal/domain/feed/v1"
	snapshotv1 "github.com/ANUSHKASINGH809/orderbook-simulator/internal/domain/snapshot/v1"
)

// Service runs the venue feeds and the HTTP API.
type Service struct {
	cfg     *config.Config
	logger  logger.Interface
	store   snapshotv1.Store
	metrics *instrumentation.Metrics
	feeds   []feedv1.Feed
	handler http.Handler

	httpServer *http.Server
	wg         sync.WaitGroup
}

// NewService wires the pieces together. Feeds are started by Start, one
// goroutine pair per venue.
func NewService(
	cfg *config.Config,
	store snapshotv1.Store,
	feeds []feedv1.Feed,
	handler http.Handler,
	metrics *instrumentation.Metrics,
	log logger.Interface,
) *Service {
	return &Service{
		cfg:     cfg,
		logger:  log,
		store:   store,
		metrics: metrics,
		feeds:   feeds,
		handler: handler,
	}
}

// Start launches the feed goroutines and the HTTP listener. It returns
// immediately; the service stops when ctx is cancelled and Stop is called.
func (s *Service) Start(ctx context.Context) error {
	for _, f := range s.feeds {
		s.runFeed(ctx, f)
	}

	s.httpServer = &http.Server{
		Addr:         s.cfg.HTTPAddress,
		Handler:      s.handler,
		ReadTimeout:  90 * time.Second,
		WriteTimeout: 90 * time.Second,
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.logger.Info("http server listening", logger.Field{Key: "address", Value: s.cfg.HTTPAddress})
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error(err, logger.Field{Key: "action", Value: "http_listen"})
		}
	}()

	return nil
}

func (s *Service) runFeed(ctx context.Context, f feedv1.Feed) {
	s.wg.Add(3)

	go func() {
		defer s.wg.Done()
		f.Run(ctx)
	}()

	go func() {
		defer s.wg.Done()
		for snapshot := range f.Updates() {
			if err := s.store.Apply(ctx, snapshot); err != nil {
				s.logger.ErrorContext(ctx, err, logger.Field{Key: "venue", Value: f.Venue()})
				continue
			}
			if s.metrics != nil {
				s.metrics.RecordBookUpdate(snapshot.Venue)
			}
		}
	}()

	go func() {
		defer s.wg.Done()
		for status := range f.Statuses() {
			s.store.SetStatus(status)
			if s.metrics != nil {
				s.metrics.RecordFeedState(status.Venue, string(status.State))
			}
			s.logger.Info("feed state changed",
				logger.Field{Key: "venue", Value: status.Venue},
				logger.Field{Key: "state", Value: string(status.State)},
			)
		}
	}()
}

// Stop shuts down the HTTP server and waits for the feed goroutines. The
// run context must already be cancelled so the feeds can drain.
func (s *Service) Stop(ctx context.Context) error {
	var shutdownErr error
	if s.httpServer != nil {
		shutdownErr = s.httpServer.Shutdown(ctx)
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}
	return shutdownErr
}
