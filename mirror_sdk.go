package tmui

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"pkt.systems/pslog"
	"pkt.systems/tmui/internal/mirror"
	"pkt.systems/tmui/internal/server"
	"pkt.systems/tmui/internal/terminal"
)

const mirrorShutdownTimeout = 5 * time.Second

type mirrorRuntime struct {
	hub    *mirror.Hub
	tee    *mirror.Tee
	srv    server.Server
	url    string
	done   chan struct{}
	logger pslog.Logger
}

func startMirror(ctx context.Context, cfg MirrorConfig, drv terminal.Driver, logger pslog.Logger) (*mirrorRuntime, error) {
	base, err := server.NormalizeBasePath(cfg.BasePath)
	if err != nil {
		return nil, err
	}
	listen := cfg.Listen
	if listen == "" {
		listen = DefaultMirrorListen
	}
	tlsCfg, err := server.TLSConfig(cfg.TLSBundle)
	if err != nil {
		return nil, err
	}
	hub := mirror.NewHub(logger.With("component", "mirror-hub"), cfg.QueueSize)
	srv, err := server.NewServer(server.Config{
		ListenAddr: listen,
		BasePath:   base,
		Logger:     logger.With("component", "mirror-http"),
		TLSConfig:  tlsCfg,
		// No ReadTimeout/WriteTimeout; viewer websockets are long-lived.
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}, mirror.Handler(hub, logger.With("component", "mirror-ws")))
	if err != nil {
		return nil, err
	}
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", listen)
	if err != nil {
		return nil, err
	}

	m := &mirrorRuntime{
		hub:    hub,
		tee:    mirror.NewTee(drv, hub, logger),
		srv:    srv,
		url:    mirror.ViewerURL(ln.Addr().String(), base, tlsCfg != nil),
		done:   make(chan struct{}),
		logger: logger.With("component", "mirror"),
	}
	go func() {
		defer close(m.done)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			m.logger.Error("mirror server stopped", "err", err)
		}
	}()
	m.logger.Info("mirror listening", "listen", ln.Addr().String(), "url", m.url)
	return m, nil
}

func (m *mirrorRuntime) stop(ctx context.Context) error {
	m.hub.Close()
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), mirrorShutdownTimeout)
	defer cancel()
	err := m.srv.Shutdown(ctx)
	<-m.done
	return err
}
