package dashboard

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
)

// Server hosts the feed endpoints.
type Server struct {
	httpServer *http.Server
	log        *logrus.Logger
}

func NewServer(port int, api *API, log *logrus.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           api.Routes(),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		log: log,
	}
}

// Start begins listening in the background.
func (s *Server) Start() {
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.WithError(err).Fatal("server error")
		}
	}()
	s.log.WithField("addr", s.httpServer.Addr).Info("server listening")
}

// WaitForShutdown blocks until SIGINT/SIGTERM, then drains connections with
// a bounded deadline.
func (s *Server) WaitForShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	s.log.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.log.WithError(err).Warn("server shutdown error")
		return
	}
	s.log.Info("server shut down successfully")
}
