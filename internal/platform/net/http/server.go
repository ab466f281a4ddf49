package http

import (
	"context"
	"errors"
	"net"
	stdhttp "net/http"
	"strconv"
	"time"

	"todos/internal/platform/config"
	"todos/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

const (
	// DefaultHost is the bind host when neither ADDR nor HOST is set
	DefaultHost = "0.0.0.0"
	// DefaultPort is the bind port when neither ADDR nor PORT is set
	DefaultPort = 3000
)

// Server owns the root chi mux and the listener it is served on
type Server struct {
	mux   *chi.Mux
	srv   *stdhttp.Server
	ln    net.Listener
	grace time.Duration
}

// Address resolves the listen address from cfg.
// ADDR wins when set; otherwise HOST and PORT are joined with their defaults
func Address(cfg config.Conf) string {
	if a := cfg.MayString("ADDR", ""); a != "" {
		return a
	}
	host := cfg.MayString("HOST", DefaultHost)
	port := cfg.MayInt("PORT", DefaultPort)
	return net.JoinHostPort(host, strconv.Itoa(port))
}

// NewServer reads the address and the *_TIMEOUT and SHUTDOWN_GRACE durations from cfg
func NewServer(cfg config.Conf) *Server {
	m := chi.NewRouter()
	return &Server{
		mux:   m,
		grace: cfg.MayDuration("SHUTDOWN_GRACE", 10*time.Second),
		srv: &stdhttp.Server{
			Addr:              Address(cfg),
			Handler:           m,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       cfg.MayDuration("READ_TIMEOUT", 30*time.Second),
			WriteTimeout:      cfg.MayDuration("WRITE_TIMEOUT", 60*time.Second),
			IdleTimeout:       cfg.MayDuration("IDLE_TIMEOUT", 120*time.Second),
		},
	}
}

// Router exposes the root mux to the composition root
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Listen binds the configured address. Run calls it when needed;
// calling it first lets a ":0" address report its real port
func (s *Server) Listen() error {
	if s.ln != nil {
		return nil
	}
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return err
	}
	s.ln = ln
	return nil
}

// Addr is the bound address once listening, the configured one before
func (s *Server) Addr() string {
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.srv.Addr
}

// Run serves until ctx is cancelled, then drains in flight requests for up to
// SHUTDOWN_GRACE. A stop through Shutdown is not an error
func (s *Server) Run(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}
	log := logger.Named("http")
	log.Info().Str("addr", s.Addr()).Msg("http listening")

	served := make(chan error, 1)
	go func() { served <- s.srv.Serve(s.ln) }()

	select {
	case err := <-served:
		return ignoreClosed(err)
	case <-ctx.Done():
	}

	log.Info().Dur("grace", s.grace).Msg("http shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), s.grace)
	defer cancel()
	if err := s.srv.Shutdown(sctx); err != nil {
		return err
	}
	return ignoreClosed(<-served)
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }

func ignoreClosed(err error) error {
	if errors.Is(err, stdhttp.ErrServerClosed) {
		return nil
	}
	return err
}
