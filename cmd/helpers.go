package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/ziadkadry99/wikiquiz/internal/config"
	"github.com/ziadkadry99/wikiquiz/internal/llm"
	"github.com/ziadkadry99/wikiquiz/internal/quizgen"
	"github.com/ziadkadry99/wikiquiz/internal/scraper"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `wikiquiz init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// createGeneratorFromConfig builds the quiz generator, wiring the LLM
// provider and rate limiter. When no provider can be created (missing
// API key, typically) it warns and returns a generator that uses the
// offline fallback, so the app stays usable.
func createGeneratorFromConfig(cfg *config.Config) *quizgen.Generator {
	provider, err := llm.NewProvider(string(cfg.Provider), cfg.Model)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		fmt.Fprintln(os.Stderr, "Quizzes will be generated with the offline fallback generator.")
		return quizgen.New(nil, "", cfg.Quiz.MinQuestions, cfg.Quiz.MaxQuestions)
	}

	provider = llm.NewRateLimitedProvider(provider, cfg.RateLimitRPM)
	return quizgen.New(provider, cfg.Model, cfg.Quiz.MinQuestions, cfg.Quiz.MaxQuestions)
}

// createScraperFromConfig builds the Wikipedia scraper.
func createScraperFromConfig(cfg *config.Config) *scraper.Scraper {
	return scraper.New(time.Duration(cfg.Scrape.TimeoutSeconds)*time.Second, cfg.Scrape.UserAgent)
}
