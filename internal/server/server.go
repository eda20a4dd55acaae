// Package server exposes the geometry toolkit as a WebSocket query
// service: clients submit shape pairs and get collision or distance
// answers, and a scene loaded at startup can be swept for colliding pairs.
package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/flatgeom/flatgeom/internal/core/observability/log"
	"github.com/flatgeom/flatgeom/internal/core/scene"
)

// Server answers geometry queries over HTTP and WebSocket.
type Server struct {
	config Config
	logger log.Log
	world  *scene.Scene

	httpServer *http.Server
	upgrader   websocket.Upgrader

	running      int32 // atomic bool
	sessionCount int64 // atomic
}

// New builds a Server. When the config names a scene file it is loaded
// before the server accepts traffic.
func New(config Config, logger log.Log) (*Server, error) {
	world := scene.New(logger)
	if config.ScenePath != "" {
		f, err := scene.LoadPath(config.ScenePath)
		if err != nil {
			return nil, err
		}
		if err := world.Populate(f); err != nil {
			return nil, err
		}
	}

	return &Server{
		config: config,
		logger: logger,
		world:  world,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}, nil
}

// Scene returns the server's shape registry.
func (s *Server) Scene() *scene.Scene {
	return s.world
}

// Start begins serving on the configured address. It returns once the
// listener is bound; serving continues in the background until Stop.
func (s *Server) Start(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&s.running, 0, 1) {
		return ErrServerAlreadyRunning
	}

	ln, err := net.Listen("tcp", s.config.ListenAddr)
	if err != nil {
		atomic.StoreInt32(&s.running, 0)
		return err
	}

	s.httpServer = &http.Server{
		Handler:     s.handler(),
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	s.logger.Info("server listening",
		log.String("addr", ln.Addr().String()),
		log.Int("scene_shapes", s.world.Len()),
		log.Uint64("scene_fingerprint", s.world.Fingerprint()),
	)

	go func() {
		if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.logger.Error("serve failed", log.Err(err))
		}
	}()
	return nil
}

// Stop shuts the server down, waiting for in-flight requests up to the
// context deadline.
func (s *Server) Stop(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&s.running, 1, 0) {
		return ErrServerNotRunning
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/scene/pairs", s.handleScenePairs)
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":            "ok",
		"scene_shapes":      s.world.Len(),
		"scene_fingerprint": s.world.Fingerprint(),
	})
}

func (s *Server) handleScenePairs(w http.ResponseWriter, r *http.Request) {
	pairs, err := s.world.CollidingPairs(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	out := make([]PairResponse, len(pairs))
	for i, p := range pairs {
		out[i] = PairResponse{A: p.A.Name, B: p.B.Name}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", log.Err(err))
		return
	}
	defer conn.Close()

	session := uuid.NewString()
	logger := s.logger.With(log.String("session", session))
	logger.Debug("session opened", log.String("remote", conn.RemoteAddr().String()))
	atomic.AddInt64(&s.sessionCount, 1)
	defer atomic.AddInt64(&s.sessionCount, -1)

	conn.SetReadLimit(s.config.MaxMessageSize)
	for {
		var req QueryRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warn("session read failed", log.Err(err))
			} else {
				logger.Debug("session closed")
			}
			return
		}

		resp := answer(req)
		if resp.Error != "" {
			logger.Debug("query rejected", log.String("op", req.Op), log.String("reason", resp.Error))
		}
		if err := conn.WriteJSON(resp); err != nil {
			logger.Warn("session write failed", log.Err(err))
			return
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
