// Package inspect serves per-frame bridge statistics over HTTP.
//
// GET /stats returns the last published frame as JSON. /frames upgrades to
// a websocket that receives every published frame as a JSON text message.
// Slow clients drop frames instead of stalling the paint loop.
package inspect

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/gogpu/ggbridge"
)

const (
	sendBuffer   = 16
	writeTimeout = 5 * time.Second
)

type client struct {
	send chan []byte
}

// Server fans frame stats out to websocket clients.
// Publish is safe to call from the paint loop while clients connect.
type Server struct {
	log *slog.Logger

	mu      sync.Mutex
	clients map[*client]struct{}
	last    []byte
	dropped uint64
	closed  bool
}

// New creates a Server. A nil logger discards output.
func New(logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{log: logger, clients: make(map[*client]struct{})}
}

// Publish sends st to every connected client.
func (s *Server) Publish(st ggbridge.FrameStats) {
	msg, err := json.Marshal(st)
	if err != nil {
		s.log.Warn("inspect: encode frame", "err", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = msg
	for c := range s.clients {
		select {
		case c.send <- msg:
		default:
			s.dropped++
		}
	}
}

// Clients returns the number of connected websocket clients.
func (s *Server) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// Dropped returns how many messages were dropped for slow clients.
func (s *Server) Dropped() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dropped
}

// Close disconnects every client. Later connections are refused.
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for c := range s.clients {
		close(c.send)
		delete(s.clients, c)
	}
}

// Handler returns the HTTP handler serving /stats and /frames.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /stats", s.handleStats)
	mux.HandleFunc("/frames", s.handleFrames)
	return mux
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	last := s.last
	s.mu.Unlock()

	if last == nil {
		http.Error(w, "no frame published yet", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(last)
}

func (s *Server) handleFrames(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		s.log.Debug("inspect: websocket upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}
	defer conn.CloseNow()

	c := &client{send: make(chan []byte, sendBuffer)}
	if !s.register(c) {
		conn.Close(websocket.StatusGoingAway, "server closed")
		return
	}
	defer s.unregister(c)
	s.log.Debug("inspect: client connected", "remote", r.RemoteAddr)

	// The stream is one way; CloseRead handles control frames and cancels
	// ctx when the peer goes away.
	ctx := conn.CloseRead(r.Context())
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-c.send:
			if !ok {
				conn.Close(websocket.StatusGoingAway, "server closed")
				return
			}
			if err := write(ctx, conn, msg); err != nil {
				s.log.Debug("inspect: write failed", "remote", r.RemoteAddr, "err", err)
				return
			}
		}
	}
}

func write(ctx context.Context, conn *websocket.Conn, msg []byte) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return conn.Write(ctx, websocket.MessageText, msg)
}

func (s *Server) register(c *client) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.clients[c] = struct{}{}
	if s.last != nil {
		c.send <- s.last
	}
	return true
}

func (s *Server) unregister(c *client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[c]; ok {
		delete(s.clients, c)
		close(c.send)
	}
}
