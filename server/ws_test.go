package server

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
)

func dialWS(t *testing.T, srv *httptest.Server, sessionID string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/" + sessionID
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}
	return conn
}

func TestWebsocketChat(t *testing.T) {
	srv := newTestServer()
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	conn := dialWS(t, ts, "ws-session")
	defer conn.Close()

	if err := conn.WriteJSON(wsInbound{Type: "message", Content: "hello", Agent: "upper"}); err != nil {
		t.Fatal(err)
	}
	var frame wsOutbound
	if err := conn.ReadJSON(&frame); err != nil {
		t.Fatal(err)
	}
	if frame.Type != "thinking" {
		t.Fatalf("expected thinking frame, got %q", frame.Type)
	}
	if err := conn.ReadJSON(&frame); err != nil {
		t.Fatal(err)
	}
	if frame.Type != "response" {
		t.Fatalf("expected response frame, got %q", frame.Type)
	}
	if frame.Message != "HELLO" {
		t.Errorf("unexpected message %q", frame.Message)
	}
	if frame.AgentName != "upper" {
		t.Errorf("unexpected agent name %q", frame.AgentName)
	}
	if got := srv.sessions.Get("ws-session").MessageCount(); got != 2 {
		t.Errorf("expected 2 messages in session history, got %d", got)
	}
}

func TestWebsocketRunnerError(t *testing.T) {
	srv := newTestServer()
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	conn := dialWS(t, ts, "ws-err")
	defer conn.Close()

	if err := conn.WriteJSON(wsInbound{Type: "message", Content: "boom", Agent: "broken"}); err != nil {
		t.Fatal(err)
	}
	var frame wsOutbound
	if err := conn.ReadJSON(&frame); err != nil {
		t.Fatal(err)
	}
	if frame.Type != "thinking" {
		t.Fatalf("expected thinking frame, got %q", frame.Type)
	}
	if err := conn.ReadJSON(&frame); err != nil {
		t.Fatal(err)
	}
	if frame.Type != "error" {
		t.Fatalf("expected error frame, got %q", frame.Type)
	}
	if frame.Message != "model unavailable" {
		t.Errorf("unexpected error message %q", frame.Message)
	}
}
