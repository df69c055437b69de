package ai

// ProviderID identifies one of the supported upstream LLM services.
type ProviderID string

const (
	ProviderGPT         ProviderID = "gpt"
	ProviderClaude      ProviderID = "claude"
	ProviderGemini      ProviderID = "gemini"
	ProviderHuggingFace ProviderID = "huggingface"
	ProviderGroq        ProviderID = "groq"
	ProviderOllama      ProviderID = "ollama"
)

// AllProviders lists every supported provider id, in settings display order.
var AllProviders = []ProviderID{
	ProviderGPT,
	ProviderClaude,
	ProviderGemini,
	ProviderHuggingFace,
	ProviderGroq,
	ProviderOllama,
}

// Credentials is a read-only snapshot of provider credentials, taken from the
// settings store at call time and passed into the pipeline. The pipeline
// never writes credentials. OllamaURL is a base URL rather than a key; the
// other providers are keyed.
type Credentials struct {
	OpenAIKey      string
	AnthropicKey   string
	GeminiKey      string
	HuggingFaceKey string
	GroqKey        string
	OllamaURL      string
}
