package factory

import (
	"fmt"

	"gorlea-notes-be/pkg/rewrite"
	"gorlea-notes-be/pkg/rewrite/gemini"
	"gorlea-notes-be/pkg/rewrite/ollama"
)

func NewRewriteProvider(providerType, apiKey, modelName, baseURL string) (rewrite.Provider, error) {
	switch providerType {
	case "gemini":
		if apiKey == "" {
			return nil, fmt.Errorf("gemini provider requires an api key")
		}
		return gemini.NewGeminiProvider(apiKey, modelName), nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported rewrite provider: %s", providerType)
	}
}
