package server

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/bububa/linkedin-agents/components"
	"github.com/bububa/linkedin-agents/schema"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(*http.Request) bool {
		return true
	},
}

// wsInbound is a client frame
type wsInbound struct {
	Type    string `json:"type"`
	Content string `json:"content"`
	Agent   string `json:"agent,omitempty"`
}

// wsOutbound is a server frame
type wsOutbound struct {
	Type      string `json:"type"`
	Message   string `json:"message,omitempty"`
	AgentName string `json:"agent_name,omitempty"`
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["session_id"]
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade", zap.Error(err))
		return
	}
	defer conn.Close()
	s.wsConns.Inc()
	defer s.wsConns.Dec()
	s.log.Info("websocket connected", zap.String("session_id", sessionID))
	memory := s.sessions.Get(sessionID)
	for {
		var in wsInbound
		if err := conn.ReadJSON(&in); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.Warn("websocket read", zap.String("session_id", sessionID), zap.Error(err))
			}
			return
		}
		if in.Type != "message" || in.Content == "" {
			continue
		}
		runner := s.registry.Get(in.Agent)
		if runner == nil {
			if err := conn.WriteJSON(wsOutbound{Type: "error", Message: "no agents registered"}); err != nil {
				return
			}
			continue
		}
		if err := conn.WriteJSON(wsOutbound{Type: "thinking"}); err != nil {
			return
		}
		memory.NewTurn()
		memory.NewMessage(components.UserRole, schema.String(in.Content))
		reply, err := s.reply(r.Context(), runner, in.Content)
		if err != nil {
			s.log.Error("agent reply", zap.String("agent", runner.Name()), zap.Error(err))
			if err := conn.WriteJSON(wsOutbound{Type: "error", Message: err.Error()}); err != nil {
				return
			}
			continue
		}
		memory.NewMessage(components.AssistantRole, schema.String(reply))
		if err := conn.WriteJSON(wsOutbound{
			Type:      "response",
			Message:   reply,
			AgentName: runner.Name(),
		}); err != nil {
			return
		}
	}
}

func (s *Server) reply(ctx context.Context, runner Runner, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return runner.Reply(ctx, message)
}
