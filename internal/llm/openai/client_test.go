package openai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/joseph-ayodele/docfields/internal/common"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGenerate(t *testing.T) {
	var (
		gotModel string
		gotAuth  string
		gotRoles []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		gotModel = req.Model
		gotAuth = r.Header.Get("Authorization")
		for _, m := range req.Messages {
			gotRoles = append(gotRoles, m.Role)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "  {\"a\": 1}\n"}},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL, Model: "default-model"}, testLogger())

	out, err := c.Generate(context.Background(), "sys", "user", "override-model")
	if err != nil {
		t.Fatal(err)
	}
	if out != "{\"a\": 1}" {
		t.Errorf("content = %q, want trimmed body", out)
	}
	if gotModel != "override-model" {
		t.Errorf("model = %q, want the per-call hint", gotModel)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("auth = %q", gotAuth)
	}
	if len(gotRoles) != 2 || gotRoles[0] != "system" || gotRoles[1] != "user" {
		t.Errorf("roles = %v, want [system user]", gotRoles)
	}
}

func TestGenerateDefaultModel(t *testing.T) {
	var gotModel string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Model string `json:"model"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		gotModel = req.Model
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "{}"}},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL, Model: "default-model"}, testLogger())
	if _, err := c.Generate(context.Background(), "s", "u", ""); err != nil {
		t.Fatal(err)
	}
	if gotModel != "default-model" {
		t.Errorf("model = %q, want configured default", gotModel)
	}
}

func TestGenerateWithoutAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	c := NewClient(Config{}, testLogger())
	_, err := c.Generate(context.Background(), "s", "u", "")
	if !errors.Is(err, common.ErrModelUnavailable) {
		t.Errorf("err = %v, want ErrModelUnavailable", err)
	}
}

func TestGenerateNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL}, testLogger())
	_, err := c.Generate(context.Background(), "s", "u", "")
	if !errors.Is(err, common.ErrModelCall) {
		t.Errorf("err = %v, want ErrModelCall", err)
	}
}

func TestGenerateNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL}, testLogger())
	_, err := c.Generate(context.Background(), "s", "u", "")
	if !errors.Is(err, common.ErrModelCall) {
		t.Errorf("err = %v, want ErrModelCall", err)
	}
}
