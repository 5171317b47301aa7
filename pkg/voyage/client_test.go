package voyage_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ess-chatbot/pkg/voyage"
)

func TestNew(t *testing.T) {
	t.Run("Missing API Key", func(t *testing.T) {
		if _, err := voyage.New(""); err == nil {
			t.Errorf("expected error for empty API key")
		}
	})

	t.Run("Valid Client", func(t *testing.T) {
		c, err := voyage.New("test-key", voyage.WithModel("voyage-3-lite"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c == nil {
			t.Fatal("expected non-nil client")
		}
	})
}

func TestEmbed(t *testing.T) {
	t.Run("Empty Input", func(t *testing.T) {
		c, _ := voyage.New("test-key")
		if _, err := c.Embed(context.Background(), nil); err == nil {
			t.Errorf("expected error for empty input")
		}
	})

	t.Run("Successful Batch", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req voyage.EmbedRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("bad request body: %v", err)
			}
			resp := voyage.EmbedResponse{Object: "list"}
			for i := range req.Input {
				resp.Data = append(resp.Data, voyage.EmbeddingData{
					Object:    "embedding",
					Embedding: []float32{float32(i), 1, 0},
					Index:     i,
				})
			}
			_ = json.NewEncoder(w).Encode(resp)
		}))
		defer srv.Close()

		c, _ := voyage.New("test-key", voyage.WithEndpoint(srv.URL))
		got, err := c.Embed(context.Background(), []string{"hello", "world"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 embeddings, got %d", len(got))
		}
		if got[1][0] != 1 {
			t.Errorf("embeddings not mapped by index")
		}
	})

	t.Run("API Error Status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":{"message":"quota"}}`, http.StatusTooManyRequests)
		}))
		defer srv.Close()

		c, _ := voyage.New("test-key", voyage.WithEndpoint(srv.URL))
		if _, err := c.Embed(context.Background(), []string{"hello"}); err == nil {
			t.Errorf("expected error on non-200 status")
		}
	})
}
