package anthropic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestCreateMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/messages" {
			t.Errorf("неожиданный путь: %s", r.URL.Path)
		}
		if r.Header.Get("x-api-key") != "test-key" {
			t.Errorf("ожидали заголовок x-api-key")
		}
		if r.Header.Get("anthropic-version") == "" {
			t.Errorf("ожидали заголовок anthropic-version")
		}
		var req MessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("не удалось прочитать запрос: %v", err)
		}
		if req.Model != "claude-3-haiku-20240307" || len(req.Messages) != 1 {
			t.Errorf("неожиданное тело запроса: %+v", req)
		}
		_ = json.NewEncoder(w).Encode(MessageResponse{
			Content: []ContentBlock{{Type: "text", Text: "关键词: 测试"}},
			Usage:   &MessageUsage{InputTokens: 10, OutputTokens: 5},
		})
	}))
	defer srv.Close()

	client := NewClient("test-key", srv.URL, time.Second)
	resp, err := client.CreateMessage(context.Background(), MessageRequest{
		Model:     "claude-3-haiku-20240307",
		MaxTokens: 300,
		Messages:  []Message{{Role: RoleUser, Content: "今天"}},
	})
	if err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}
	if len(resp.Content) != 1 || resp.Content[0].Text != "关键词: 测试" {
		t.Fatalf("неожиданный ответ: %+v", resp)
	}
}

func TestCreateMessageAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"type":"rate_limit_error","message":"rate limited"}}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", srv.URL, time.Second)
	_, err := client.CreateMessage(context.Background(), MessageRequest{Model: "m", MaxTokens: 10})
	if err == nil {
		t.Fatal("ожидали ошибку API")
	}
	if !strings.Contains(err.Error(), "rate limited") {
		t.Fatalf("ошибка должна содержать сообщение API: %v", err)
	}
}

func TestCreateMessageUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient("test-key", srv.URL, time.Second)
	_, err := client.CreateMessage(context.Background(), MessageRequest{Model: "m", MaxTokens: 10})
	if err == nil || !strings.Contains(err.Error(), "unexpected status 502") {
		t.Fatalf("ожидали ошибку о статусе 502, получили %v", err)
	}
}

func TestCreateMessageEmptyAPIKey(t *testing.T) {
	client := NewClient("", "", time.Second)
	if _, err := client.CreateMessage(context.Background(), MessageRequest{Model: "m"}); err == nil {
		t.Fatal("ожидали ошибку про пустой api key")
	}
}
