package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ess-chatbot/pkg/gemini"
)

func TestGenerateText(t *testing.T) {
	t.Run("Successful Generation", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.Contains(r.URL.Path, ":generateContent") {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			resp := gemini.GenerateResponse{
				Candidates: []gemini.Candidate{
					{Content: gemini.Content{Parts: []gemini.Part{{Text: "hello from the model"}}}},
				},
			}
			_ = json.NewEncoder(w).Encode(resp)
		}))
		defer srv.Close()

		c := gemini.NewClient("test-key", gemini.WithAPIURL(srv.URL))
		got, err := c.GenerateText(context.Background(), "say hello", 0.2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "hello from the model" {
			t.Errorf("unexpected text %q", got)
		}
	})

	t.Run("Empty Candidates", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(gemini.GenerateResponse{})
		}))
		defer srv.Close()

		c := gemini.NewClient("test-key", gemini.WithAPIURL(srv.URL))
		if _, err := c.GenerateText(context.Background(), "say hello", 0.2); err == nil {
			t.Errorf("expected error on empty candidates")
		}
	})

	t.Run("API Error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		c := gemini.NewClient("test-key", gemini.WithAPIURL(srv.URL))
		if _, err := c.GenerateText(context.Background(), "say hello", 0.2); err == nil {
			t.Errorf("expected error on 500 status")
		}
	})
}
