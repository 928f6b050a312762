package config

// ProviderType identifies an LLM provider.
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderGoogle ProviderType = "google"
	ProviderOllama ProviderType = "ollama"
)

// Config is the top-level wikiquiz configuration, corresponding to .wikiquiz.yml.
type Config struct {
	Provider       ProviderType `yaml:"provider" koanf:"provider"`
	Model          string       `yaml:"model" koanf:"model"`
	Port           int          `yaml:"port" koanf:"port"`
	DataDir        string       `yaml:"data_dir" koanf:"data_dir"`
	FrontendOrigin string       `yaml:"frontend_origin" koanf:"frontend_origin"`
	AllowAllCORS   bool         `yaml:"allow_all_cors" koanf:"allow_all_cors"`
	Scrape         ScrapeConfig `yaml:"scrape" koanf:"scrape"`
	Quiz           QuizConfig   `yaml:"quiz" koanf:"quiz"`
	RateLimitRPM   int          `yaml:"rate_limit_rpm" koanf:"rate_limit_rpm"`
}

// ScrapeConfig holds Wikipedia fetching settings.
type ScrapeConfig struct {
	TimeoutSeconds int    `yaml:"timeout_seconds" koanf:"timeout_seconds"`
	UserAgent      string `yaml:"user_agent" koanf:"user_agent"`
}

// QuizConfig holds quiz generation settings.
type QuizConfig struct {
	MinQuestions int `yaml:"min_questions" koanf:"min_questions"`
	MaxQuestions int `yaml:"max_questions" koanf:"max_questions"`
}
