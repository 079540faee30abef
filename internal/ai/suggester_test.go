package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSuggestSendsDayContext(t *testing.T) {
	var gotBody apiRequest
	var gotHeaders http.Header

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		json.NewEncoder(w).Encode(apiResponse{
			Content: []apiContentBlock{{Type: "text", Text: "  ほしをみる  "}},
		})
	}))
	defer srv.Close()

	s := New("test-key", "", 0)
	s.SetEndpoint(srv.URL)

	suggestion, err := s.Suggest(context.Background(), Request{
		DayOfWeek:     2,
		Month:         3,
		Day:           3,
		ExistingTasks: []string{"おんどく", "くもん"},
	})
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}

	if suggestion != "ほしをみる" {
		t.Fatalf("suggestion = %q, want trimmed text", suggestion)
	}

	if gotHeaders.Get("x-api-key") != "test-key" {
		t.Errorf("missing api key header")
	}
	if gotHeaders.Get("anthropic-version") != apiVersion {
		t.Errorf("missing version header")
	}

	if gotBody.Model != defaultModel {
		t.Errorf("model = %q, want default", gotBody.Model)
	}
	if gotBody.MaxTokens != defaultMaxTokens {
		t.Errorf("max_tokens = %d, want %d", gotBody.MaxTokens, defaultMaxTokens)
	}
	if len(gotBody.Messages) != 1 {
		t.Fatalf("got %d messages, want 1", len(gotBody.Messages))
	}

	prompt := gotBody.Messages[0].Content[0].Text
	if !strings.Contains(prompt, "かようび") {
		t.Errorf("prompt missing weekday name: %q", prompt)
	}
	if !strings.Contains(prompt, "3月") {
		t.Errorf("prompt missing month: %q", prompt)
	}
	if !strings.Contains(prompt, "おんどく、くもん") {
		t.Errorf("prompt missing existing tasks: %q", prompt)
	}
}

func TestSuggestWithoutExistingTasks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req apiRequest
		json.NewDecoder(r.Body).Decode(&req)
		prompt := req.Messages[0].Content[0].Text
		if !strings.Contains(prompt, "まだ「やること」はありません") {
			t.Errorf("prompt missing empty-task line: %q", prompt)
		}
		json.NewEncoder(w).Encode(apiResponse{
			Content: []apiContentBlock{{Type: "text", Text: "えをかく"}},
		})
	}))
	defer srv.Close()

	s := New("test-key", "", 0)
	s.SetEndpoint(srv.URL)

	if _, err := s.Suggest(context.Background(), Request{DayOfWeek: 0, Month: 1, Day: 4}); err != nil {
		t.Fatalf("Suggest: %v", err)
	}
}

func TestSuggestAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"type": "rate_limit_error", "message": "rate limited"},
		})
	}))
	defer srv.Close()

	s := New("test-key", "", 0)
	s.SetEndpoint(srv.URL)

	_, err := s.Suggest(context.Background(), Request{DayOfWeek: 1, Month: 6, Day: 1})
	if err == nil {
		t.Fatalf("expected error on non-200 response")
	}
	if !strings.Contains(err.Error(), "rate limited") {
		t.Fatalf("error %q missing API message", err)
	}
}

func TestSuggestEmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(apiResponse{})
	}))
	defer srv.Close()

	s := New("test-key", "", 0)
	s.SetEndpoint(srv.URL)

	if _, err := s.Suggest(context.Background(), Request{DayOfWeek: 1, Month: 6, Day: 1}); err == nil {
		t.Fatalf("expected error on empty content")
	}
}

func TestSuggestRejectsInvalidWeekday(t *testing.T) {
	s := New("test-key", "", 0)
	if _, err := s.Suggest(context.Background(), Request{DayOfWeek: 7}); err == nil {
		t.Fatalf("expected error for out-of-range weekday")
	}
}
