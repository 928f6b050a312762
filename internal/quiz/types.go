package quiz

import (
	"time"

	"github.com/ziadkadry99/wikiquiz/internal/quizgen"
)

// Result is the full generated quiz payload for one source page, as
// served to the frontend.
type Result struct {
	ID            int64              `json:"id"`
	URL           string             `json:"url"`
	Title         string             `json:"title"`
	Summary       string             `json:"summary"`
	Sections      []string           `json:"sections,omitempty"`
	Quiz          []quizgen.Question `json:"quiz"`
	RelatedTopics []string           `json:"related_topics,omitempty"`
	DateGenerated time.Time          `json:"date_generated"`
}

// HistoryEntry is a summary record of a previously generated quiz.
type HistoryEntry struct {
	ID            int64     `json:"id"`
	URL           string    `json:"url"`
	Title         string    `json:"title"`
	DateGenerated time.Time `json:"date_generated"`
}

// storedQuiz is the JSON blob persisted in full_quiz_data. The id and
// date live in their own columns and are merged back on read.
type storedQuiz struct {
	URL           string             `json:"url"`
	Title         string             `json:"title"`
	Summary       string             `json:"summary"`
	Sections      []string           `json:"sections,omitempty"`
	Quiz          []quizgen.Question `json:"quiz"`
	RelatedTopics []string           `json:"related_topics,omitempty"`
}
