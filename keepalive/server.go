// Package keepalive serves the health endpoint polled by the hosting
// platform to keep the bot process awake.
package keepalive

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const AliveMessage = "✅ DV Bot is Alive and Running!"

func NewRouter() chi.Router {
	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(AliveMessage))
	})
	return r
}

type Server struct {
	srv *http.Server
}

func NewServer(port string) *Server {
	return &Server{srv: &http.Server{
		Addr:              ":" + port,
		Handler:           NewRouter(),
		ReadHeaderTimeout: 5 * time.Second,
	}}
}

// Run serves until ctx is cancelled, then shuts the listener down.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.srv.Addr).Msg("keep-alive server listening")
		errCh <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
