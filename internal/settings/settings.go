// Package settings stores per-installation provider credentials in Redis.
// Values are write-only through the API: callers can set, remove, and check
// whether a credential exists, but never read one back.
package settings

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"prepdeck-backend/internal/ai"
)

const credentialKeyPrefix = "settings:credential:"

type Store struct {
	rdb              *redis.Client
	defaultOllamaURL string
}

func NewStore(rdb *redis.Client, defaultOllamaURL string) *Store {
	return &Store{rdb: rdb, defaultOllamaURL: defaultOllamaURL}
}

func credentialKey(provider ai.ProviderID) string {
	return credentialKeyPrefix + string(provider)
}

// Credentials loads the full credential snapshot for a generation call. The
// snapshot is a plain value: edits made while a workflow is running do not
// affect calls already in flight.
func (s *Store) Credentials(ctx context.Context) (ai.Credentials, error) {
	keys := make([]string, len(ai.AllProviders))
	for i, p := range ai.AllProviders {
		keys[i] = credentialKey(p)
	}

	vals, err := s.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return ai.Credentials{}, fmt.Errorf("failed to load credentials: %w", err)
	}

	byProvider := make(map[ai.ProviderID]string, len(ai.AllProviders))
	for i, p := range ai.AllProviders {
		if v, ok := vals[i].(string); ok {
			byProvider[p] = v
		}
	}

	creds := ai.Credentials{
		OpenAIKey:      byProvider[ai.ProviderGPT],
		AnthropicKey:   byProvider[ai.ProviderClaude],
		GeminiKey:      byProvider[ai.ProviderGemini],
		HuggingFaceKey: byProvider[ai.ProviderHuggingFace],
		GroqKey:        byProvider[ai.ProviderGroq],
		OllamaURL:      byProvider[ai.ProviderOllama],
	}
	if creds.OllamaURL == "" {
		creds.OllamaURL = s.defaultOllamaURL
	}
	return creds, nil
}

func (s *Store) SetCredential(ctx context.Context, provider ai.ProviderID, value string) error {
	if err := s.rdb.Set(ctx, credentialKey(provider), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to store credential: %w", err)
	}
	return nil
}

func (s *Store) RemoveCredential(ctx context.Context, provider ai.ProviderID) error {
	if err := s.rdb.Del(ctx, credentialKey(provider)).Err(); err != nil {
		return fmt.Errorf("failed to remove credential: %w", err)
	}
	return nil
}

// Configured reports which providers have a stored credential without
// exposing the values. Ollama always counts as configured because it falls
// back to the default local URL.
func (s *Store) Configured(ctx context.Context) (map[string]bool, error) {
	creds, err := s.Credentials(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]bool{
		string(ai.ProviderGPT):         creds.OpenAIKey != "",
		string(ai.ProviderClaude):      creds.AnthropicKey != "",
		string(ai.ProviderGemini):      creds.GeminiKey != "",
		string(ai.ProviderHuggingFace): creds.HuggingFaceKey != "",
		string(ai.ProviderGroq):        creds.GroqKey != "",
		string(ai.ProviderOllama):      creds.OllamaURL != "",
	}, nil
}
