package telegram

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestSendMessageKeyboardPayload(t *testing.T) {
	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bottest-token/sendMessage" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Write([]byte(`{"ok":true,"result":{}}`))
	}))
	defer server.Close()

	client := NewClient("test-token", server.URL, time.Second, zap.NewNop())
	err := client.SendMessage(context.Background(), 42, "Choose an assembly:", []string{"Engine", "CVT"})
	if err != nil {
		t.Fatalf("send message: %v", err)
	}

	if captured["chat_id"].(float64) != 42 {
		t.Errorf("unexpected chat id: %v", captured["chat_id"])
	}
	markup, ok := captured["reply_markup"].(map[string]any)
	if !ok {
		t.Fatalf("expected reply markup, got %v", captured["reply_markup"])
	}
	keyboard, ok := markup["keyboard"].([]any)
	if !ok || len(keyboard) != 2 {
		t.Fatalf("expected one keyboard row per choice, got %v", markup["keyboard"])
	}
	if markup["one_time_keyboard"] != true || markup["resize_keyboard"] != true {
		t.Errorf("keyboard must be one-time and resized: %v", markup)
	}
}

func TestSendMessageRemovesKeyboard(t *testing.T) {
	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &captured)
		w.Write([]byte(`{"ok":true,"result":{}}`))
	}))
	defer server.Close()

	client := NewClient("test-token", server.URL, time.Second, zap.NewNop())
	if err := client.SendMessage(context.Background(), 42, "Enter the oil volume", nil); err != nil {
		t.Fatalf("send message: %v", err)
	}

	markup, ok := captured["reply_markup"].(map[string]any)
	if !ok || markup["remove_keyboard"] != true {
		t.Fatalf("expected keyboard removal, got %v", captured["reply_markup"])
	}
}

func TestGetUpdatesParsesResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true,"result":[{"update_id":7,"message":{"message_id":1,"chat":{"id":99},"text":"Engine"}}]}`))
	}))
	defer server.Close()

	client := NewClient("test-token", server.URL, time.Second, zap.NewNop())
	updates, err := client.GetUpdates(context.Background(), 0, time.Second)
	if err != nil {
		t.Fatalf("get updates: %v", err)
	}
	if len(updates) != 1 {
		t.Fatalf("expected one update, got %d", len(updates))
	}
	if updates[0].UpdateID != 7 || updates[0].Message == nil || updates[0].Message.Chat.ID != 99 {
		t.Fatalf("unexpected update: %+v", updates[0])
	}
	if updates[0].Message.Text != "Engine" {
		t.Fatalf("unexpected text: %q", updates[0].Message.Text)
	}
}

func TestAPIErrorSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":false,"description":"Unauthorized"}`))
	}))
	defer server.Close()

	client := NewClient("bad-token", server.URL, time.Second, zap.NewNop())
	if _, err := client.GetUpdates(context.Background(), 0, time.Second); err == nil {
		t.Fatalf("expected API error to surface")
	}
}
