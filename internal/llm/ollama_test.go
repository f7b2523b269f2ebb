package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOllama_Generate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req struct {
			Model  string `json:"model"`
			Prompt string `json:"prompt"`
			Stream bool   `json:"stream"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if req.Stream {
			t.Errorf("expected stream=false")
		}
		if req.Model != "llama3" {
			t.Errorf("unexpected model %q", req.Model)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"response": `{"mixedIdea":"x"}`})
	}))
	defer srv.Close()

	gen := NewOllama(srv.URL, "llama3")
	text, err := gen.Generate(context.Background(), "combine two ideas")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != `{"mixedIdea":"x"}` {
		t.Fatalf("unexpected reply: %q", text)
	}
}

func TestOllama_DaemonError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "model not found"})
	}))
	defer srv.Close()

	gen := NewOllama(srv.URL, "missing")
	if _, err := gen.Generate(context.Background(), "p"); err == nil {
		t.Fatalf("expected error from daemon error field")
	}
}

func TestOllama_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	gen := NewOllama(srv.URL, "llama3")
	if _, err := gen.Generate(context.Background(), "p"); err == nil {
		t.Fatalf("expected error for 500 status")
	}
}
