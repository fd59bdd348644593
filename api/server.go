package api

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"

	"github.com/dan13ram/scout-mint-validator/app"
	"github.com/dan13ram/scout-mint-validator/models"
)

const (
	ServerName = "API SERVER"

	shutdownTimeout = 10 * time.Second
)

// Server exposes the action handlers as an app.Service.
type Server struct {
	httpServer *http.Server
	wg         *sync.WaitGroup

	healthMu sync.RWMutex
	health   models.ServiceHealth
}

var _ app.Service = &Server{}

func (s *Server) Start() {
	log.Infof("[API] Listening on %s", s.httpServer.Addr)
	s.setHealthy(true)

	err := s.httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Error("[API] Server stopped unexpectedly")
		s.setHealthy(false)
	}
}

func (s *Server) Stop() {
	log.Debug("[API] Stopping server")
	defer s.wg.Done()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.WithError(err).Error("[API] Error shutting down server")
		return
	}
	log.Info("[API] Server stopped")
}

func (s *Server) Health() models.ServiceHealth {
	s.healthMu.RLock()
	defer s.healthMu.RUnlock()

	return s.health
}

func (s *Server) setHealthy(healthy bool) {
	s.healthMu.Lock()
	defer s.healthMu.Unlock()

	now := time.Now()
	s.health = models.ServiceHealth{
		Name:         ServerName,
		LastSyncTime: now,
		NextSyncTime: now,
		Healthy:      healthy,
	}
}

func NewServer(wg *sync.WaitGroup, handler *Handler, config models.ServerConfig) *Server {
	c := cors.New(cors.Options{
		AllowedOrigins:   config.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	s := &Server{
		httpServer: &http.Server{
			Addr:              config.ListenAddress,
			Handler:           c.Handler(handler.Routes()),
			ReadHeaderTimeout: 10 * time.Second,
		},
		wg: wg,
	}
	s.health = models.ServiceHealth{Name: ServerName}
	return s
}
