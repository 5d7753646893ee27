package server

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"time"

	"pkt.systems/pslog"
)

// Config configures the HTTP server.
type Config struct {
	ListenAddr string
	BasePath   string
	Logger     pslog.Logger

	// TLSConfig switches the server to HTTPS when set.
	TLSConfig *tls.Config

	ReadHeaderTimeout time.Duration
	IdleTimeout       time.Duration
	MaxHeaderBytes    int
}

// Server abstracts the HTTP server behind the mirror.
type Server interface {
	ListenAndServe() error
	Serve(l net.Listener) error
	Shutdown(ctx context.Context) error
}

type stdServer struct {
	srv *http.Server
}

// NewServer constructs a Server for handler, mounted under cfg.BasePath and
// wrapped with the access log.
func NewServer(cfg Config, handler http.Handler) (Server, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = pslog.LoggerFromEnv()
	}
	base, err := NormalizeBasePath(cfg.BasePath)
	if err != nil {
		return nil, err
	}
	errorLog := pslog.LogLogger(logger)
	return &stdServer{
		srv: &http.Server{
			Addr:              cfg.ListenAddr,
			Handler:           AccessLog(logger, Mount(base, handler)),
			TLSConfig:         cfg.TLSConfig,
			ErrorLog:          errorLog,
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
			IdleTimeout:       cfg.IdleTimeout,
			MaxHeaderBytes:    cfg.MaxHeaderBytes,
		},
	}, nil
}

func (s *stdServer) ListenAndServe() error {
	if s.srv.TLSConfig != nil {
		return s.srv.ListenAndServeTLS("", "")
	}
	return s.srv.ListenAndServe()
}

func (s *stdServer) Serve(l net.Listener) error {
	if s.srv.TLSConfig != nil {
		return s.srv.ServeTLS(l, "", "")
	}
	return s.srv.Serve(l)
}

func (s *stdServer) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
