package quiz

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ziadkadry99/wikiquiz/internal/quizgen"
	"github.com/ziadkadry99/wikiquiz/internal/scraper"
)

// Errors the HTTP layer maps to a 400 response.
var (
	ErrEmptyURL     = errors.New("URL is required")
	ErrNotWikipedia = errors.New("Provided URL is not a Wikipedia URL")
	ErrScrape       = errors.New("Error scraping URL")
)

// PageScraper fetches and parses one page. *scraper.Scraper satisfies it.
type PageScraper interface {
	Scrape(ctx context.Context, pageURL string) (*scraper.Article, error)
}

// Service orchestrates scraping, quiz generation and persistence.
type Service struct {
	scraper   PageScraper
	generator *quizgen.Generator
	store     *Store
}

// NewService creates a Service.
func NewService(sc PageScraper, gen *quizgen.Generator, store *Store) *Service {
	return &Service{scraper: sc, generator: gen, store: store}
}

// GenerateFromURL scrapes the page, generates a quiz, persists the
// result and returns it with its assigned id.
func (s *Service) GenerateFromURL(ctx context.Context, rawURL string) (*Result, error) {
	pageURL := strings.TrimSpace(rawURL)
	if pageURL == "" {
		return nil, ErrEmptyURL
	}
	if !scraper.IsWikipediaURL(pageURL) {
		return nil, ErrNotWikipedia
	}

	// Short job id for log correlation across the scrape/generate/save steps.
	jobID := uuid.NewString()[:8]
	log.Printf("quiz: job %s scraping %s", jobID, pageURL)

	article, err := s.scraper.Scrape(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScrape, err)
	}

	generated, err := s.generator.Generate(ctx, article)
	if err != nil {
		return nil, fmt.Errorf("generating quiz: %w", err)
	}

	result := &Result{
		URL:           pageURL,
		Title:         generated.Title,
		Summary:       generated.Summary,
		Sections:      article.Sections,
		Quiz:          generated.Quiz,
		RelatedTopics: generated.RelatedTopics,
		DateGenerated: time.Now().UTC().Truncate(time.Second),
	}
	if result.Title == "" {
		result.Title = article.Title
	}
	if result.Summary == "" {
		result.Summary = article.Summary
	}

	id, err := s.store.Save(ctx, result, article.RawHTML)
	if err != nil {
		return nil, fmt.Errorf("saving quiz: %w", err)
	}
	result.ID = id

	log.Printf("quiz: job %s generated %d questions for %q (id=%d)",
		jobID, len(result.Quiz), result.Title, id)
	return result, nil
}
