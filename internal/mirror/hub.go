// Package mirror streams the console output to read-only remote viewers.
//
// A Tee decorates the console driver and turns every output call into the
// same ANSI stream the local terminal receives. On Flush the pending bytes
// go to the Hub, which fans them out to viewers over websockets. Viewers
// that joined since the previous flush get a full repaint instead.
package mirror

import (
	"context"
	"sync"
	"time"

	"pkt.systems/pslog"
)

// DefaultQueueSize is the number of flushes a viewer may lag behind before
// it is dropped.
const DefaultQueueSize = 256

const writeTimeout = 5 * time.Second

// Conn is the transport of one viewer.
type Conn interface {
	Write(ctx context.Context, data []byte) error
	Close(reason string) error
}

// Viewer is a registered remote viewer.
type Viewer struct {
	id    uint64
	conn  Conn
	queue chan []byte
	fresh bool
	done  chan struct{}
	once  sync.Once
}

func (v *Viewer) ID() uint64 { return v.id }

// Done is closed once the viewer has been removed from the hub.
func (v *Viewer) Done() <-chan struct{} { return v.done }

func (v *Viewer) stop(reason string) {
	v.once.Do(func() {
		_ = v.conn.Close(reason)
		close(v.done)
	})
}

// Hub tracks viewers and fans output out to them.
type Hub struct {
	mu        sync.Mutex
	viewers   map[uint64]*Viewer
	nextID    uint64
	queueSize int
	closed    bool
	logger    pslog.Logger
}

// NewHub constructs a Hub. A queueSize of zero or less uses DefaultQueueSize.
func NewHub(logger pslog.Logger, queueSize int) *Hub {
	if logger == nil {
		logger = pslog.LoggerFromEnv()
	}
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Hub{
		viewers:   make(map[uint64]*Viewer),
		queueSize: queueSize,
		logger:    logger,
	}
}

// Join registers conn and starts its writer. The viewer receives a full
// repaint on the next Broadcast.
func (h *Hub) Join(conn Conn) *Viewer {
	h.mu.Lock()
	h.nextID++
	v := &Viewer{
		id:    h.nextID,
		conn:  conn,
		queue: make(chan []byte, h.queueSize),
		fresh: true,
		done:  make(chan struct{}),
	}
	if h.closed {
		h.mu.Unlock()
		v.stop("mirror closed")
		return v
	}
	h.viewers[v.id] = v
	count := len(h.viewers)
	h.mu.Unlock()

	h.logger.Info("viewer joined", "viewer", v.id, "viewers", count)
	go h.writeLoop(v)
	return v
}

// Leave removes v and closes its connection.
func (h *Hub) Leave(v *Viewer) {
	h.remove(v, "viewer left")
}

func (h *Hub) remove(v *Viewer, reason string) {
	h.mu.Lock()
	_, ok := h.viewers[v.id]
	delete(h.viewers, v.id)
	count := len(h.viewers)
	h.mu.Unlock()

	v.stop(reason)
	if ok {
		h.logger.Info("viewer removed", "viewer", v.id, "reason", reason, "viewers", count)
	}
}

// Broadcast queues data for every viewer that already has the screen.
// Viewers that joined since the last call get the output of repaint
// instead, which is computed at most once per call. A viewer whose queue
// is full is dropped. Broadcast never blocks on the network.
func (h *Hub) Broadcast(data []byte, repaint func() []byte) {
	var full []*Viewer
	var frame []byte

	h.mu.Lock()
	for _, v := range h.viewers {
		msg := data
		if v.fresh {
			if frame == nil {
				frame = repaint()
			}
			msg = frame
			v.fresh = false
		}
		if len(msg) == 0 {
			continue
		}
		select {
		case v.queue <- msg:
		default:
			full = append(full, v)
		}
	}
	h.mu.Unlock()

	// Closing a websocket waits for the peer; keep that off the caller.
	for _, v := range full {
		go h.remove(v, "viewer too slow")
	}
}

// Count returns the number of connected viewers.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.viewers)
}

// Close disconnects every viewer and rejects new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	viewers := make([]*Viewer, 0, len(h.viewers))
	for _, v := range h.viewers {
		viewers = append(viewers, v)
	}
	h.viewers = make(map[uint64]*Viewer)
	h.mu.Unlock()

	for _, v := range viewers {
		v.stop("mirror closed")
	}
}

func (h *Hub) writeLoop(v *Viewer) {
	for {
		select {
		case <-v.done:
			return
		case data := <-v.queue:
			ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
			err := v.conn.Write(ctx, data)
			cancel()
			if err != nil {
				h.logger.Debug("viewer write failed", "viewer", v.id, "err", err)
				h.remove(v, "write failed")
				return
			}
		}
	}
}
