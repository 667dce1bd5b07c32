package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MaRkS1234567/MySite-web/core/lead"
)

func newTestClient(endpoint string) *Client {
	return New(&Config{
		Token:    "test-token",
		ChatID:   "12345",
		Endpoint: endpoint,
	})
}

func TestSendTutorLead(t *testing.T) {
	var gotPath string
	var gotPayload sendMessageRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	err := client.Send(context.Background(), lead.Message{
		Kind:        lead.KindTutor,
		Format:      "Подготовка к ЕГЭ",
		Name:        "Анна",
		Contact:     "@anna",
		Description: "11 класс, информатика",
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}

	if gotPath != "/bottest-token/sendMessage" {
		t.Errorf("path = %q", gotPath)
	}
	if gotPayload.ChatID != "12345" {
		t.Errorf("chat_id = %q", gotPayload.ChatID)
	}
	if gotPayload.ParseMode != "Markdown" {
		t.Errorf("parse_mode = %q", gotPayload.ParseMode)
	}

	lines := strings.Split(gotPayload.Text, "\n")
	want := []string{
		"🔔 *Новая заявка — Репетитор*",
		"📋 Формат: Подготовка к ЕГЭ",
		"👤 Имя: Анна",
		"📞 Контакт: @anna",
		"📝 Ситуация: 11 класс, информатика",
	}
	if len(lines) != len(want) {
		t.Fatalf("message has %d lines, want %d:\n%s", len(lines), len(want), gotPayload.Text)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestSendDevLeadUsesDevTemplate(t *testing.T) {
	var gotText string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload sendMessageRequest
		json.NewDecoder(r.Body).Decode(&payload)
		gotText = payload.Text
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	err := client.Send(context.Background(), lead.Message{
		Kind:        lead.KindDev,
		Name:        "Иван",
		Contact:     "ivan@example.com",
		Description: "Нужен лендинг",
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}

	if !strings.Contains(gotText, "Разработка") {
		t.Errorf("dev lead used the wrong header:\n%s", gotText)
	}
	if !strings.Contains(gotText, "📝 Описание: Нужен лендинг") {
		t.Errorf("dev lead missing the description line:\n%s", gotText)
	}
}

func TestSendBotAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"ok":false,"description":"Unauthorized"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	err := client.Send(context.Background(), lead.Message{Kind: lead.KindTutor, Name: "x"})
	if err == nil {
		t.Fatal("Send succeeded against a 401 response")
	}
	// Provider details stay out of the returned error.
	if strings.Contains(err.Error(), "Unauthorized") {
		t.Errorf("error leaks the provider body: %v", err)
	}
}

func TestSendUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := newTestClient(url)
	if err := client.Send(context.Background(), lead.Message{Kind: lead.KindDev}); err == nil {
		t.Fatal("Send succeeded against a closed endpoint")
	}
}
