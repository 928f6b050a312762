package config

// defaultModels maps each provider to its default model.
var defaultModels = map[ProviderType]string{
	ProviderOpenAI: "gpt-4o-mini",
	ProviderGoogle: "gemini-2.0-flash",
	ProviderOllama: "llama3",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Provider:       ProviderGoogle,
		Model:          defaultModels[ProviderGoogle],
		Port:           8000,
		DataDir:        "data",
		FrontendOrigin: "http://localhost:8000",
		Scrape: ScrapeConfig{
			TimeoutSeconds: 15,
			UserAgent:      "wikiquiz/1.0",
		},
		Quiz: QuizConfig{
			MinQuestions: 5,
			MaxQuestions: 10,
		},
		RateLimitRPM: 20,
	}
}

// DefaultModel returns the default model for the given provider.
// Falls back to the Google default for unknown providers.
func DefaultModel(provider ProviderType) string {
	if m, ok := defaultModels[provider]; ok {
		return m
	}
	return defaultModels[ProviderGoogle]
}
