package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/ziadkadry99/wikiquiz/internal/llm"
	"github.com/ziadkadry99/wikiquiz/internal/scraper"
)

// Generator produces quizzes from scraped articles. When the LLM call
// fails or returns unusable output it falls back to a deterministic
// generator so the app keeps working offline.
type Generator struct {
	provider     llm.Provider
	model        string
	minQuestions int
	maxQuestions int
}

// New creates a Generator. A nil provider skips the LLM entirely and
// always uses the deterministic fallback.
func New(provider llm.Provider, model string, minQuestions, maxQuestions int) *Generator {
	if minQuestions <= 0 {
		minQuestions = 5
	}
	if maxQuestions < minQuestions {
		maxQuestions = minQuestions
	}
	return &Generator{
		provider:     provider,
		model:        model,
		minQuestions: minQuestions,
		maxQuestions: maxQuestions,
	}
}

// Generate builds a quiz for the given article.
func (g *Generator) Generate(ctx context.Context, article *scraper.Article) (*Quiz, error) {
	if g.provider != nil {
		quiz, err := g.generateWithLLM(ctx, article)
		if err == nil {
			return quiz, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.Printf("quizgen: LLM generation failed (%v), using fallback generator", err)
	}

	return Fallback(article, 0), nil
}

func (g *Generator) generateWithLLM(ctx context.Context, article *scraper.Article) (*Quiz, error) {
	resp, err := g.provider.Complete(ctx, llm.CompletionRequest{
		Model: g.model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: systemPrompt},
			{Role: llm.RoleUser, Content: buildPrompt(article, g.minQuestions, g.maxQuestions)},
		},
		MaxTokens:   4096,
		Temperature: 0.2,
		JSONMode:    true,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM completion: %w", err)
	}

	quiz, err := ParseQuizJSON(resp.Content)
	if err != nil {
		return nil, fmt.Errorf("parsing LLM response: %w", err)
	}

	// Backfill metadata the model tends to omit.
	if quiz.Title == "" {
		quiz.Title = article.Title
	}
	if quiz.Summary == "" {
		quiz.Summary = article.Summary
	}

	return quiz, nil
}

// ParseQuizJSON extracts the JSON object from LLM output and validates
// its shape. Models occasionally wrap the object in prose or code
// fences, so parsing starts at the first brace and ends at the last.
func ParseQuizJSON(content string) (*Quiz, error) {
	jsonStr := content
	if idx := strings.Index(jsonStr, "{"); idx >= 0 {
		jsonStr = jsonStr[idx:]
	}
	if idx := strings.LastIndex(jsonStr, "}"); idx >= 0 {
		jsonStr = jsonStr[:idx+1]
	}

	var quiz Quiz
	if err := json.Unmarshal([]byte(jsonStr), &quiz); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	valid := quiz.Quiz[:0]
	for _, q := range quiz.Quiz {
		if !validQuestion(q) {
			continue
		}
		q.Difficulty = normalizeDifficulty(q.Difficulty)
		valid = append(valid, q)
	}
	quiz.Quiz = valid

	if len(quiz.Quiz) == 0 {
		return nil, fmt.Errorf("no valid questions in response")
	}
	return &quiz, nil
}

func validQuestion(q Question) bool {
	if strings.TrimSpace(q.Question) == "" || len(q.Options) < 2 {
		return false
	}
	for _, opt := range q.Options {
		if q.Answer == opt {
			return true
		}
	}
	return false
}

func normalizeDifficulty(d string) string {
	switch strings.ToLower(strings.TrimSpace(d)) {
	case DifficultyEasy:
		return DifficultyEasy
	case DifficultyHard:
		return DifficultyHard
	default:
		return DifficultyMedium
	}
}
