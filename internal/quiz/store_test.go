package quiz

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/ziadkadry99/wikiquiz/internal/db"
	"github.com/ziadkadry99/wikiquiz/internal/quizgen"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func sampleResult() *Result {
	return &Result{
		URL:      "https://en.wikipedia.org/wiki/Go_(programming_language)",
		Title:    "Go (programming language)",
		Summary:  "Go is a statically typed, compiled language.",
		Sections: []string{"History", "Design"},
		Quiz: []quizgen.Question{
			{
				Question:    "Who designed Go?",
				Options:     []string{"Google", "Microsoft", "Apple", "IBM"},
				Answer:      "Google",
				Explanation: "Go was designed at Google.",
				Difficulty:  "easy",
			},
			{
				Question:    "When was Go announced?",
				Options:     []string{"2007", "2009", "2012", "2015"},
				Answer:      "2009",
				Explanation: "Go was publicly announced in November 2009.",
				Difficulty:  "medium",
			},
		},
		RelatedTopics: []string{"Compilers", "Concurrency"},
		DateGenerated: time.Now().UTC().Truncate(time.Second),
	}
}

func TestSaveAndGetByID(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	id, err := store.Save(ctx, sampleResult(), "<html>raw</html>")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if id == 0 {
		t.Fatal("expected non-zero id")
	}

	got, err := store.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}

	if got.ID != id {
		t.Errorf("ID = %d, want %d", got.ID, id)
	}
	if got.Title != "Go (programming language)" {
		t.Errorf("Title = %q", got.Title)
	}
	if got.URL != "https://en.wikipedia.org/wiki/Go_(programming_language)" {
		t.Errorf("URL = %q", got.URL)
	}
	if len(got.Quiz) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(got.Quiz))
	}
	if got.Quiz[0].Answer != "Google" || got.Quiz[1].Answer != "2009" {
		t.Errorf("question order not preserved: %+v", got.Quiz)
	}
	if len(got.RelatedTopics) != 2 {
		t.Errorf("RelatedTopics = %v", got.RelatedTopics)
	}
	if got.DateGenerated.IsZero() {
		t.Error("expected DateGenerated to be set")
	}
}

func TestGetByIDMissing(t *testing.T) {
	store := setupStore(t)

	_, err := store.GetByID(context.Background(), 999)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	first := sampleResult()
	first.Title = "First"
	second := sampleResult()
	second.Title = "Second"

	id1, err := store.Save(ctx, first, "")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	id2, err := store.Save(ctx, second, "")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	entries, err := store.History(ctx)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != id2 || entries[1].ID != id1 {
		t.Errorf("expected newest first, got ids %d, %d", entries[0].ID, entries[1].ID)
	}
	if entries[0].Title != "Second" {
		t.Errorf("Title = %q", entries[0].Title)
	}
}

func TestHistoryEmpty(t *testing.T) {
	store := setupStore(t)

	entries, err := store.History(context.Background())
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if entries == nil {
		t.Error("expected empty slice, got nil")
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}
