package gemini_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mrumer-yk/creative-market-agent/internal/adapters/llm/gemini"
	"github.com/mrumer-yk/creative-market-agent/internal/domain"
	"github.com/mrumer-yk/creative-market-agent/internal/ports"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func candidatesBody(text string) map[string]any {
	return map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
		},
	}
}

func TestGenerate_Success(t *testing.T) {
	var gotReq map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/models/test-model:generateContent" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("missing key param, got %q", r.URL.Query().Get("key"))
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("bad content-type: %s", r.Header.Get("Content-Type"))
		}

		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotReq)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(candidatesBody(`{"ok":true}`))
	}))
	defer srv.Close()

	client := gemini.NewClient(srv.Client(), "test-key", srv.URL, "test-model", discardLogger())

	text, err := client.Generate(context.Background(), ports.GenerateRequest{
		Prompt:      "Role: Brief Normalizer",
		Temperature: 0.4,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != `{"ok":true}` {
		t.Errorf("unexpected text: %q", text)
	}

	genCfg, ok := gotReq["generationConfig"].(map[string]any)
	if !ok {
		t.Fatal("request missing generationConfig")
	}
	if genCfg["temperature"] != 0.4 {
		t.Errorf("temperature: got %v", genCfg["temperature"])
	}
	if genCfg["responseMimeType"] != "application/json" {
		t.Errorf("responseMimeType: got %v", genCfg["responseMimeType"])
	}
	if _, ok := gotReq["systemInstruction"]; !ok {
		t.Error("request missing systemInstruction")
	}
}

func TestGenerate_JoinsParts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		body := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{
					{"text": `{"a":`}, {"text": `1}`},
				}}},
			},
		}
		_ = json.NewEncoder(w).Encode(body)
	}))
	defer srv.Close()

	client := gemini.NewClient(srv.Client(), "key", srv.URL, "model", discardLogger())

	text, err := client.Generate(context.Background(), ports.GenerateRequest{Prompt: "p"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != `{"a":1}` {
		t.Errorf("parts not joined: %q", text)
	}
}

func TestGenerate_NoCandidatesReturnsEmptyText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	}))
	defer srv.Close()

	client := gemini.NewClient(srv.Client(), "key", srv.URL, "model", discardLogger())

	text, err := client.Generate(context.Background(), ports.GenerateRequest{Prompt: "p"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "" {
		t.Errorf("expected empty text, got %q", text)
	}
}

func TestGenerate_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
	}))
	defer srv.Close()

	client := gemini.NewClient(srv.Client(), "key", srv.URL, "model", discardLogger())

	_, err := client.Generate(context.Background(), ports.GenerateRequest{Prompt: "p"})
	if !errors.Is(err, domain.ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}

func TestGenerate_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close() // connection refused from here on

	client := gemini.NewClient(http.DefaultClient, "key", url, "model", discardLogger())

	_, err := client.Generate(context.Background(), ports.GenerateRequest{Prompt: "p"})
	if !errors.Is(err, domain.ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}

func TestGenerate_UndecodableEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := gemini.NewClient(srv.Client(), "key", srv.URL, "model", discardLogger())

	_, err := client.Generate(context.Background(), ports.GenerateRequest{Prompt: "p"})
	if !errors.Is(err, domain.ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}
