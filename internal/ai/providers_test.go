package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRegistryUnknownProvider(t *testing.T) {
	r := NewRegistry(nil)
	_, err := r.Provider("copilot")

	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *ConfigError, got %v", err)
	}
}

func TestRegistryKnownProviders(t *testing.T) {
	r := NewRegistry(nil)
	for _, id := range AllProviders {
		p, err := r.Provider(id)
		if err != nil {
			t.Fatalf("provider %s: %v", id, err)
		}
		if p.ID() != id {
			t.Errorf("provider %s: wrong id %s", id, p.ID())
		}
	}
}

func TestMissingCredentialFailsBeforeNetwork(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	providers := []Provider{
		&openAIProvider{client: srv.Client(), baseURL: srv.URL},
		&anthropicProvider{client: srv.Client(), baseURL: srv.URL},
		&geminiProvider{client: srv.Client(), baseURL: srv.URL},
		&huggingFaceProvider{client: srv.Client(), baseURL: srv.URL},
		&groqProvider{client: srv.Client(), baseURL: srv.URL},
		&ollamaProvider{client: srv.Client()},
	}

	for _, p := range providers {
		_, err := p.Complete(context.Background(), Request{Prompt: "hi"}, Credentials{})
		var ce *ConfigError
		if !errors.As(err, &ce) {
			t.Errorf("%s: expected *ConfigError for empty credentials, got %v", p.ID(), err)
		}
	}
	if called {
		t.Error("no network call may happen when a credential is missing")
	}
}

func TestOpenAICompleteSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("bad auth header: %q", got)
		}
		var body chatRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if body.Model != "gpt-4" || body.Temperature != 0.7 || body.MaxTokens != 1500 {
			t.Errorf("unexpected request fields: %+v", body)
		}
		if len(body.Messages) != 2 || body.Messages[0].Role != "system" {
			t.Errorf("expected system+user messages, got %+v", body.Messages)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"content": "generated text"}},
			},
		})
	}))
	defer srv.Close()

	p := &openAIProvider{client: srv.Client(), baseURL: srv.URL}
	got, err := p.Complete(context.Background(), Request{
		System:    "be helpful",
		Prompt:    "hello",
		MaxTokens: 1500,
	}, Credentials{OpenAIKey: "sk-test"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "generated text" {
		t.Errorf("expected %q, got %q", "generated text", got)
	}
}

func TestOpenAICompleteUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "rate limit exceeded"},
		})
	}))
	defer srv.Close()

	p := &openAIProvider{client: srv.Client(), baseURL: srv.URL}
	_, err := p.Complete(context.Background(), Request{Prompt: "hello"}, Credentials{OpenAIKey: "sk-test"})

	var pe *ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ProviderError, got %v", err)
	}
	if pe.StatusCode != http.StatusTooManyRequests {
		t.Errorf("expected status 429, got %d", pe.StatusCode)
	}
	if pe.Message != "rate limit exceeded" {
		t.Errorf("expected upstream message to surface, got %q", pe.Message)
	}
}

func TestAnthropicCompleteSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("x-api-key"); got != "ak-test" {
			t.Errorf("bad api key header: %q", got)
		}
		if got := r.Header.Get("anthropic-version"); got != "2023-06-01" {
			t.Errorf("bad version header: %q", got)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]string{{"text": "claude says hi"}},
		})
	}))
	defer srv.Close()

	p := &anthropicProvider{client: srv.Client(), baseURL: srv.URL}
	got, err := p.Complete(context.Background(), Request{System: "sys", Prompt: "hello"}, Credentials{AnthropicKey: "ak-test"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "claude says hi" {
		t.Errorf("unexpected completion: %q", got)
	}
}

func TestGeminiModelFallback(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		if len(paths) == 1 {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]string{"message": "model not found"},
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{{"text": "fallback "}, {"text": "worked"}}}},
			},
		})
	}))
	defer srv.Close()

	p := &geminiProvider{client: srv.Client(), baseURL: srv.URL}
	got, err := p.Complete(context.Background(), Request{Prompt: "hello"}, Credentials{GeminiKey: "gk-test"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "fallback worked" {
		t.Errorf("expected concatenated parts, got %q", got)
	}
	if len(paths) != 2 {
		t.Fatalf("expected two attempts, got %d", len(paths))
	}
	if paths[0] != "/v1beta/models/gemini-1.5-flash-latest:generateContent" ||
		paths[1] != "/v1beta/models/gemini-pro:generateContent" {
		t.Errorf("wrong model order: %v", paths)
	}
}

func TestGeminiBothModelsFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "invalid key"},
		})
	}))
	defer srv.Close()

	p := &geminiProvider{client: srv.Client(), baseURL: srv.URL}
	_, err := p.Complete(context.Background(), Request{Prompt: "hello"}, Credentials{GeminiKey: "bad"})

	var pe *ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ProviderError, got %v", err)
	}
	if pe.StatusCode != http.StatusBadRequest || pe.Message != "invalid key" {
		t.Errorf("unexpected error details: %+v", pe)
	}
}

func TestHuggingFaceCompleteSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]string{{"generated_text": "hf output"}})
	}))
	defer srv.Close()

	p := &huggingFaceProvider{client: srv.Client(), baseURL: srv.URL}
	got, err := p.Complete(context.Background(), Request{Prompt: "hello"}, Credentials{HuggingFaceKey: "hf-test"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hf output" {
		t.Errorf("unexpected completion: %q", got)
	}
}

func TestHuggingFaceModelLoading(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(map[string]string{"error": "Model is currently loading"})
	}))
	defer srv.Close()

	p := &huggingFaceProvider{client: srv.Client(), baseURL: srv.URL}
	_, err := p.Complete(context.Background(), Request{Prompt: "hello"}, Credentials{HuggingFaceKey: "hf-test"})

	var pe *ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ProviderError, got %v", err)
	}
	if pe.Message != "Model is currently loading" {
		t.Errorf("expected upstream message to surface, got %q", pe.Message)
	}
}

func TestOllamaUnreachable(t *testing.T) {
	p := &ollamaProvider{client: &http.Client{}}
	_, err := p.Complete(context.Background(), Request{Prompt: "hello"}, Credentials{OllamaURL: "http://127.0.0.1:1"})

	var pe *ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ProviderError, got %v", err)
	}
	if !pe.Unreachable {
		t.Error("expected Unreachable to be set")
	}
}

func TestOllamaCompleteSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("wrong path: %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{"response": "local output"})
	}))
	defer srv.Close()

	p := &ollamaProvider{client: srv.Client()}
	got, err := p.Complete(context.Background(), Request{Prompt: "hello"}, Credentials{OllamaURL: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "local output" {
		t.Errorf("unexpected completion: %q", got)
	}
}
