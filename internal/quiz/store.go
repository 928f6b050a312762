package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ziadkadry99/wikiquiz/internal/db"
)

// Store provides persistence for generated quizzes.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Save inserts a new quiz and returns its assigned id.
func (s *Store) Save(ctx context.Context, result *Result, rawHTML string) (int64, error) {
	payload, err := json.Marshal(storedQuiz{
		URL:           result.URL,
		Title:         result.Title,
		Summary:       result.Summary,
		Sections:      result.Sections,
		Quiz:          result.Quiz,
		RelatedTopics: result.RelatedTopics,
	})
	if err != nil {
		return 0, fmt.Errorf("marshalling quiz data: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO quizzes (url, title, scraped_content, full_quiz_data)
		VALUES (?, ?, ?, ?)`,
		result.URL, result.Title, rawHTML, string(payload),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting quiz: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading inserted id: %w", err)
	}
	return id, nil
}

// GetByID retrieves a single stored quiz. Returns sql.ErrNoRows when
// the id does not exist.
func (s *Store) GetByID(ctx context.Context, id int64) (*Result, error) {
	var (
		url, title, data, ts string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT url, title, full_quiz_data, date_generated
		FROM quizzes WHERE id = ?`, id,
	).Scan(&url, &title, &data, &ts)
	if err != nil {
		return nil, err
	}

	var stored storedQuiz
	if err := json.Unmarshal([]byte(data), &stored); err != nil {
		return nil, fmt.Errorf("parsing stored quiz data: %w", err)
	}

	result := &Result{
		ID:            id,
		URL:           url,
		Title:         title,
		Summary:       stored.Summary,
		Sections:      stored.Sections,
		Quiz:          stored.Quiz,
		RelatedTopics: stored.RelatedTopics,
		DateGenerated: parseTimestamp(ts),
	}
	if result.Title == "" {
		result.Title = stored.Title
	}
	return result, nil
}

// History returns summary rows for all stored quizzes, newest first.
func (s *Store) History(ctx context.Context) ([]HistoryEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, url, title, date_generated
		FROM quizzes ORDER BY date_generated DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	entries := make([]HistoryEntry, 0)
	for rows.Next() {
		var (
			e  HistoryEntry
			ts string
		)
		if err := rows.Scan(&e.ID, &e.URL, &e.Title, &ts); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		e.DateGenerated = parseTimestamp(ts)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func parseTimestamp(ts string) time.Time {
	if t, err := time.Parse(time.DateTime, ts); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, ts); err == nil {
		return t
	}
	return time.Time{}
}
