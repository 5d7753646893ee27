package server

import (
	"bufio"
	"errors"
	"net"
	"net/http"
	"time"

	"pkt.systems/pslog"
)

// AccessLog logs one line per mirror request. A websocket viewer is
// logged once it disconnects, with how long it watched.
func AccessLog(logger pslog.Logger, handler http.Handler) http.Handler {
	if logger == nil {
		logger = pslog.LoggerFromEnv()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		handler.ServeHTTP(rec, r)
		elapsed := time.Since(start).String()
		viewer := viewerAddr(r)
		if rec.hijacked {
			logger.Info("mirror viewer left", "viewer", viewer, "path", r.URL.Path, "watched", elapsed)
			return
		}
		status := rec.status
		if status == 0 {
			status = http.StatusOK
		}
		fields := []any{
			"viewer", viewer,
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"sent", rec.bytes,
			"elapsed", elapsed,
		}
		switch {
		case status >= 500:
			logger.Error("mirror request failed", fields...)
		case status >= 400:
			logger.Warn("mirror request rejected", fields...)
		default:
			logger.Debug("mirror request", fields...)
		}
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status   int
	bytes    int
	hijacked bool
}

func (s *statusRecorder) WriteHeader(code int) {
	if s.status == 0 {
		s.status = code
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	n, err := s.ResponseWriter.Write(b)
	s.bytes += n
	return n, err
}

// Hijack lets the websocket upgrade take over the connection.
func (s *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := s.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("hijacking not supported")
	}
	s.hijacked = true
	if s.status == 0 {
		s.status = http.StatusSwitchingProtocols
	}
	return hj.Hijack()
}

func (s *statusRecorder) Flush() {
	if f, ok := s.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
