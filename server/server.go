package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/bububa/linkedin-agents/components"
	"github.com/bububa/linkedin-agents/schema"
)

var validate = validator.New()

// Server is the HTTP and websocket chat front end for a runner registry.
type Server struct {
	cfg      *Config
	registry *Registry
	sessions *SessionStore
	log      *zap.Logger
	wsConns  atomic.Int64
}

// New initializes a chat Server
func New(cfg *Config, registry *Registry, log *zap.Logger) *Server {
	if cfg == nil {
		cfg = NewConfig()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		cfg:      cfg,
		registry: registry,
		sessions: NewSessionStore(cfg.MaxHistory),
		log:      log,
	}
}

// Handler builds the route table with CORS applied
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/agents", s.handleAgents).Methods(http.MethodGet)
	r.HandleFunc("/chat", s.handleChat).Methods(http.MethodPost)
	r.HandleFunc("/ws/{session_id}", s.handleWS).Methods(http.MethodGet)
	c := cors.New(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(r)
}

// ListenAndServe starts the server on the configured address, blocking
// until the listener fails.
func (s *Server) ListenAndServe() error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout.Duration(),
		WriteTimeout: s.cfg.WriteTimeout.Duration(),
	}
	s.log.Info("chat server listening", zap.String("addr", s.cfg.Addr))
	return srv.ListenAndServe()
}

// ChatRequest is the POST /chat payload
type ChatRequest struct {
	Message   string `json:"message" validate:"required"`
	Agent     string `json:"agent,omitempty"`
	SessionID string `json:"session_id,omitempty"`
}

// ChatResponse is the POST /chat reply
type ChatResponse struct {
	Response  string `json:"response"`
	AgentName string `json:"agent_name"`
	SessionID string `json:"session_id"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("write response", zap.Error(err))
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":      "ok",
		"agents":      s.registry.Names(),
		"sessions":    s.sessions.Count(),
		"connections": s.wsConns.Load(),
	})
}

func (s *Server) handleAgents(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"agents": s.registry.Names(),
	})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if err := validate.Struct(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	runner := s.registry.Get(req.Agent)
	if runner == nil {
		s.writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "no agents registered"})
		return
	}
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	memory := s.sessions.Get(sessionID)
	memory.NewTurn()
	memory.NewMessage(components.UserRole, schema.String(req.Message))
	reply, err := runner.Reply(r.Context(), req.Message)
	if err != nil {
		s.log.Error("agent reply", zap.String("agent", runner.Name()), zap.Error(err))
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	memory.NewMessage(components.AssistantRole, schema.String(reply))
	s.log.Info("chat",
		zap.String("agent", runner.Name()),
		zap.String("session_id", sessionID),
		zap.Int("message_len", len(req.Message)),
	)
	s.writeJSON(w, http.StatusOK, ChatResponse{
		Response:  reply,
		AgentName: runner.Name(),
		SessionID: sessionID,
	})
}
