package ai

import "fmt"

// ProviderKind identifies a completion provider. Adding a provider means
// adding a case to NewProviderConfig; there is no name-indexed registry.
type ProviderKind string

const (
	ProviderOpenAI     ProviderKind = "openai"
	ProviderOpenRouter ProviderKind = "openrouter"
)

// ProviderConfig binds a provider kind to its model names, temperature and
// endpoint. Built once at startup and passed into the client; immutable
// afterwards.
type ProviderConfig struct {
	Kind        ProviderKind
	APIKey      string
	BaseURL     string
	Model       string
	VisionModel string
	Temperature float32
}

// NewProviderConfig resolves a provider kind into a full configuration.
// Empty baseURL/model/visionModel fall back to the kind's defaults.
func NewProviderConfig(kind ProviderKind, apiKey, baseURL, model, visionModel string) (ProviderConfig, error) {
	cfg := ProviderConfig{
		Kind:        kind,
		APIKey:      apiKey,
		BaseURL:     baseURL,
		Model:       model,
		VisionModel: visionModel,
	}

	switch kind {
	case ProviderOpenAI:
		if cfg.Model == "" {
			cfg.Model = "gpt-4o-mini"
		}
		if cfg.VisionModel == "" {
			cfg.VisionModel = "gpt-4o-mini"
		}
		cfg.Temperature = 0.1
	case ProviderOpenRouter:
		if cfg.BaseURL == "" {
			cfg.BaseURL = "https://openrouter.ai/api/v1"
		}
		if cfg.Model == "" {
			cfg.Model = "openai/gpt-4o-mini"
		}
		if cfg.VisionModel == "" {
			cfg.VisionModel = cfg.Model
		}
		// Several models routed there reject low sampling temperatures.
		cfg.Temperature = 1.0
	default:
		return ProviderConfig{}, fmt.Errorf("unknown AI provider: %q", kind)
	}

	return cfg, nil
}
