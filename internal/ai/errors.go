package ai

import "fmt"

// ConfigError means the call could never succeed as configured: unknown
// provider id or a missing credential. No network call was made.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// ValidationError means the request itself was rejected before any network
// call: source text too short, zero follow-up types, bad count.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ProviderError is a failed upstream call: non-success HTTP status, a
// response envelope missing the completion field, or (for the local
// provider) an unreachable endpoint. StatusCode is 0 when no HTTP response
// was received.
type ProviderError struct {
	Provider    ProviderID
	StatusCode  int
	Message     string
	Unreachable bool
}

func (e *ProviderError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: %s (HTTP %d)", e.Provider, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

// ParseError means the model's response contained no recoverable JSON array.
// Raw keeps the full response text for diagnostics.
type ParseError struct {
	Raw string
}

func (e *ParseError) Error() string {
	return "failed to parse AI response as JSON"
}
