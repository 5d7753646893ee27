package mirror

import (
	"context"
	"net"
	"net/http"
	"net/url"

	"github.com/coder/websocket"

	"pkt.systems/pslog"
)

// ViewerPath is where viewers connect.
const ViewerPath = "/ws"

type wsConn struct {
	conn *websocket.Conn
}

func (c *wsConn) Write(ctx context.Context, data []byte) error {
	return c.conn.Write(ctx, websocket.MessageBinary, data)
}

func (c *wsConn) Close(reason string) error {
	return c.conn.Close(websocket.StatusNormalClosure, reason)
}

// Handler serves the viewer websocket and a health probe.
func Handler(hub *Hub, logger pslog.Logger) http.Handler {
	if logger == nil {
		logger = pslog.LoggerFromEnv()
	}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("GET "+ViewerPath, func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: false,
		})
		if err != nil {
			logger.Debug("websocket accept failed", "err", err)
			return
		}
		v := hub.Join(&wsConn{conn: conn})
		defer hub.Leave(v)

		// Viewers are read-only; CloseRead discards anything they send and
		// ends ctx when they go away.
		ctx := conn.CloseRead(r.Context())
		select {
		case <-ctx.Done():
		case <-v.Done():
		}
	})
	return mux
}

// ViewerURL returns the websocket URL for a mirror listening on addr under
// basePath. An unspecified host is reported as localhost.
func ViewerURL(addr, basePath string, secure bool) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		host, port = addr, ""
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	if port != "" {
		host = net.JoinHostPort(host, port)
	}
	scheme := "ws"
	if secure {
		scheme = "wss"
	}
	u := url.URL{Scheme: scheme, Host: host, Path: basePath + ViewerPath}
	return u.String()
}
