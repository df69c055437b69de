package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Request is a provider-agnostic completion request. Adapters translate it
// into each provider's wire envelope; providers without a system-message
// concept fold System into the prompt text.
type Request struct {
	System    string
	Prompt    string
	MaxTokens int
}

// Provider is one upstream LLM service. Complete performs exactly one
// outbound HTTP call (two for the Gemini model fallback, in the worst case)
// and returns the raw completion text.
type Provider interface {
	ID() ProviderID
	Complete(ctx context.Context, req Request, creds Credentials) (string, error)
}

// Resolver maps a provider id to its adapter.
type Resolver interface {
	Provider(id ProviderID) (Provider, error)
}

type Registry struct {
	providers map[ProviderID]Provider
}

func NewRegistry(client *http.Client) *Registry {
	if client == nil {
		client = &http.Client{Timeout: 120 * time.Second}
	}

	providers := []Provider{
		&openAIProvider{client: client, baseURL: "https://api.openai.com"},
		&anthropicProvider{client: client, baseURL: "https://api.anthropic.com"},
		&geminiProvider{client: client, baseURL: "https://generativelanguage.googleapis.com"},
		&huggingFaceProvider{client: client, baseURL: "https://api-inference.huggingface.co"},
		&groqProvider{client: client, baseURL: "https://api.groq.com"},
		&ollamaProvider{client: client},
	}

	m := make(map[ProviderID]Provider, len(providers))
	for _, p := range providers {
		m[p.ID()] = p
	}
	return &Registry{providers: m}
}

func (r *Registry) Provider(id ProviderID) (Provider, error) {
	p, ok := r.providers[id]
	if !ok {
		return nil, &ConfigError{Message: fmt.Sprintf("unknown AI provider %q", id)}
	}
	return p, nil
}

// postJSON marshals body, performs the request with headers applied, and
// decodes the response body into out. The caller inspects the status code.
func postJSON(ctx context.Context, client *http.Client, endpoint string, headers map[string]string, body any, out any) (int, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return 0, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp.StatusCode, err
	}
	return resp.StatusCode, nil
}

// ──── OpenAI ────

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func chatMessages(req Request) []chatMessage {
	var msgs []chatMessage
	if req.System != "" {
		msgs = append(msgs, chatMessage{Role: "system", Content: req.System})
	}
	return append(msgs, chatMessage{Role: "user", Content: req.Prompt})
}

type openAIProvider struct {
	client  *http.Client
	baseURL string
}

func (p *openAIProvider) ID() ProviderID { return ProviderGPT }

func (p *openAIProvider) Complete(ctx context.Context, req Request, creds Credentials) (string, error) {
	if creds.OpenAIKey == "" {
		return "", &ConfigError{Message: "OpenAI API key not configured. Please add it in Settings."}
	}

	body := chatRequest{
		Model:       "gpt-4",
		Messages:    chatMessages(req),
		Temperature: 0.7,
		MaxTokens:   req.MaxTokens,
	}

	var out chatResponse
	status, err := postJSON(ctx, p.client, p.baseURL+"/v1/chat/completions",
		map[string]string{"Authorization": "Bearer " + creds.OpenAIKey}, body, &out)
	if err != nil {
		return "", &ProviderError{Provider: p.ID(), Message: err.Error()}
	}
	if status < 200 || status >= 300 {
		msg := "failed to generate with ChatGPT"
		if out.Error != nil && out.Error.Message != "" {
			msg = out.Error.Message
		}
		return "", &ProviderError{Provider: p.ID(), StatusCode: status, Message: msg}
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return "", &ProviderError{Provider: p.ID(), StatusCode: status, Message: "response contained no completion"}
	}
	return out.Choices[0].Message.Content, nil
}

// ──── Anthropic ────

type anthropicProvider struct {
	client  *http.Client
	baseURL string
}

func (p *anthropicProvider) ID() ProviderID { return ProviderClaude }

func (p *anthropicProvider) Complete(ctx context.Context, req Request, creds Credentials) (string, error) {
	if creds.AnthropicKey == "" {
		return "", &ConfigError{Message: "Anthropic API key not configured. Please add it in Settings."}
	}

	body := map[string]any{
		"model":       "claude-3-5-sonnet-20241022",
		"max_tokens":  req.MaxTokens,
		"messages":    []chatMessage{{Role: "user", Content: req.Prompt}},
		"temperature": 0.7,
	}
	if req.System != "" {
		body["system"] = req.System
	}

	var out struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	status, err := postJSON(ctx, p.client, p.baseURL+"/v1/messages", map[string]string{
		"x-api-key":         creds.AnthropicKey,
		"anthropic-version": "2023-06-01",
	}, body, &out)
	if err != nil {
		return "", &ProviderError{Provider: p.ID(), Message: err.Error()}
	}
	if status < 200 || status >= 300 {
		msg := "failed to generate with Claude"
		if out.Error != nil && out.Error.Message != "" {
			msg = out.Error.Message
		}
		return "", &ProviderError{Provider: p.ID(), StatusCode: status, Message: msg}
	}
	if len(out.Content) == 0 || out.Content[0].Text == "" {
		return "", &ProviderError{Provider: p.ID(), StatusCode: status, Message: "response contained no completion"}
	}
	return out.Content[0].Text, nil
}

// ──── Google Gemini ────

// geminiModels is an ordered fallback: the second model is only tried after
// the first fails.
var geminiModels = []string{"gemini-1.5-flash-latest", "gemini-pro"}

type geminiProvider struct {
	client  *http.Client
	baseURL string
}

func (p *geminiProvider) ID() ProviderID { return ProviderGemini }

func (p *geminiProvider) Complete(ctx context.Context, req Request, creds Credentials) (string, error) {
	if creds.GeminiKey == "" {
		return "", &ConfigError{Message: "Google Gemini API key not configured. Please add it in Settings."}
	}

	// Gemini has no separate system slot in this envelope; prepend it.
	prompt := req.Prompt
	if req.System != "" {
		prompt = req.System + "\n\n" + prompt
	}

	body := map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]string{{"text": prompt}}},
		},
		"generationConfig": map[string]any{
			"temperature":     0.7,
			"maxOutputTokens": req.MaxTokens,
		},
	}

	var lastErr error
	for _, model := range geminiModels {
		endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
			p.baseURL, model, url.QueryEscape(creds.GeminiKey))

		var out struct {
			Candidates []struct {
				Content struct {
					Parts []struct {
						Text string `json:"text"`
					} `json:"parts"`
				} `json:"content"`
			} `json:"candidates"`
			Error *struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		status, err := postJSON(ctx, p.client, endpoint, nil, body, &out)
		if err != nil {
			lastErr = &ProviderError{Provider: p.ID(), Message: err.Error()}
			continue
		}
		if status < 200 || status >= 300 {
			msg := "failed to generate with Gemini. Please verify your API key is correct and try Groq as an alternative."
			if out.Error != nil && out.Error.Message != "" {
				msg = out.Error.Message
			}
			lastErr = &ProviderError{Provider: p.ID(), StatusCode: status, Message: msg}
			continue
		}
		if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
			lastErr = &ProviderError{Provider: p.ID(), StatusCode: status, Message: "response contained no completion"}
			continue
		}

		var text strings.Builder
		for _, part := range out.Candidates[0].Content.Parts {
			text.WriteString(part.Text)
		}
		return text.String(), nil
	}

	return "", lastErr
}

// ──── Hugging Face ────

type huggingFaceProvider struct {
	client  *http.Client
	baseURL string
}

func (p *huggingFaceProvider) ID() ProviderID { return ProviderHuggingFace }

func (p *huggingFaceProvider) Complete(ctx context.Context, req Request, creds Credentials) (string, error) {
	if creds.HuggingFaceKey == "" {
		return "", &ConfigError{Message: "Hugging Face API key not configured. Please add it in Settings."}
	}

	prompt := req.Prompt
	if req.System != "" {
		prompt = req.System + "\n\n" + prompt
	}

	body := map[string]any{
		"inputs": prompt,
		"parameters": map[string]any{
			"max_new_tokens":   req.MaxTokens,
			"temperature":      0.7,
			"return_full_text": false,
		},
	}

	// The inference API returns an array of generations on success and an
	// object with an "error" field on failure.
	var out json.RawMessage
	status, err := postJSON(ctx, p.client, p.baseURL+"/models/mistralai/Mistral-7B-Instruct-v0.2",
		map[string]string{"Authorization": "Bearer " + creds.HuggingFaceKey}, body, &out)
	if err != nil {
		return "", &ProviderError{Provider: p.ID(), Message: err.Error()}
	}
	if status < 200 || status >= 300 {
		var errBody struct {
			Error string `json:"error"`
		}
		msg := "failed to generate with Hugging Face"
		if json.Unmarshal(out, &errBody) == nil && errBody.Error != "" {
			msg = errBody.Error
		}
		return "", &ProviderError{Provider: p.ID(), StatusCode: status, Message: msg}
	}

	var generations []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(out, &generations); err != nil || len(generations) == 0 || generations[0].GeneratedText == "" {
		return "", &ProviderError{Provider: p.ID(), StatusCode: status, Message: "response contained no completion"}
	}
	return generations[0].GeneratedText, nil
}

// ──── Groq ────

type groqProvider struct {
	client  *http.Client
	baseURL string
}

func (p *groqProvider) ID() ProviderID { return ProviderGroq }

func (p *groqProvider) Complete(ctx context.Context, req Request, creds Credentials) (string, error) {
	if creds.GroqKey == "" {
		return "", &ConfigError{Message: "Groq API key not configured. Please add it in Settings."}
	}

	body := chatRequest{
		Model:       "llama-3.3-70b-versatile",
		Messages:    chatMessages(req),
		Temperature: 0.7,
		MaxTokens:   req.MaxTokens,
	}

	var out chatResponse
	status, err := postJSON(ctx, p.client, p.baseURL+"/openai/v1/chat/completions",
		map[string]string{"Authorization": "Bearer " + creds.GroqKey}, body, &out)
	if err != nil {
		return "", &ProviderError{Provider: p.ID(), Message: err.Error()}
	}
	if status < 200 || status >= 300 {
		msg := "failed to generate with Groq"
		if out.Error != nil && out.Error.Message != "" {
			msg = out.Error.Message
		}
		return "", &ProviderError{Provider: p.ID(), StatusCode: status, Message: msg}
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return "", &ProviderError{Provider: p.ID(), StatusCode: status, Message: "response contained no completion"}
	}
	return out.Choices[0].Message.Content, nil
}

// ──── Ollama (local) ────

type ollamaProvider struct {
	client *http.Client
}

func (p *ollamaProvider) ID() ProviderID { return ProviderOllama }

func (p *ollamaProvider) Complete(ctx context.Context, req Request, creds Credentials) (string, error) {
	if creds.OllamaURL == "" {
		return "", &ConfigError{Message: "Ollama URL not configured. Please add it in Settings."}
	}

	prompt := req.Prompt
	if req.System != "" {
		prompt = req.System + "\n\n" + prompt
	}

	body := map[string]any{
		"model":  "llama2",
		"prompt": prompt,
		"stream": false,
		"options": map[string]any{
			"temperature": 0.7,
			"num_predict": req.MaxTokens,
		},
	}

	var out struct {
		Response string `json:"response"`
	}
	status, err := postJSON(ctx, p.client, strings.TrimRight(creds.OllamaURL, "/")+"/api/generate", nil, body, &out)
	if err != nil {
		return "", &ProviderError{
			Provider:    p.ID(),
			Unreachable: true,
			Message: fmt.Sprintf("cannot reach Ollama at %s. Install Ollama from https://ollama.ai and run \"ollama serve\"",
				creds.OllamaURL),
		}
	}
	if status < 200 || status >= 300 {
		return "", &ProviderError{Provider: p.ID(), StatusCode: status, Message: "failed to generate with Ollama. Make sure Ollama is running locally."}
	}
	if out.Response == "" {
		return "", &ProviderError{Provider: p.ID(), StatusCode: status, Message: "response contained no completion"}
	}
	return out.Response, nil
}
