package quizgen

import (
	"reflect"
	"testing"

	"github.com/ziadkadry99/wikiquiz/internal/scraper"
)

func TestFallbackProperties(t *testing.T) {
	quiz := Fallback(testArticle(), 42)

	if quiz.Title != "Go (programming language)" {
		t.Errorf("Title = %q", quiz.Title)
	}
	if n := len(quiz.Quiz); n < 5 || n > 7 {
		t.Errorf("expected 5-7 questions, got %d", n)
	}

	for i, q := range quiz.Quiz {
		if q.Question == "" {
			t.Errorf("question %d: empty text", i)
		}
		if len(q.Options) != 4 {
			t.Errorf("question %d: expected 4 options, got %d", i, len(q.Options))
		}
		if !contains(q.Options, q.Answer) {
			t.Errorf("question %d: answer %q not among options %v", i, q.Answer, q.Options)
		}
		switch q.Difficulty {
		case DifficultyEasy, DifficultyMedium, DifficultyHard:
		default:
			t.Errorf("question %d: bad difficulty %q", i, q.Difficulty)
		}
		if q.Explanation == "" {
			t.Errorf("question %d: empty explanation", i)
		}
	}

	if len(quiz.RelatedTopics) == 0 || len(quiz.RelatedTopics) > 6 {
		t.Errorf("expected 1-6 related topics, got %d", len(quiz.RelatedTopics))
	}
	// Section names come first.
	if quiz.RelatedTopics[0] != "History" {
		t.Errorf("RelatedTopics[0] = %q", quiz.RelatedTopics[0])
	}
}

func TestFallbackDeterministicWithSeed(t *testing.T) {
	a := Fallback(testArticle(), 7)
	b := Fallback(testArticle(), 7)
	if !reflect.DeepEqual(a, b) {
		t.Error("expected identical output for identical seed")
	}
}

func TestFallbackEmptyArticle(t *testing.T) {
	article := &scraper.Article{Title: "Lonely Page"}
	quiz := Fallback(article, 1)

	if len(quiz.Quiz) == 0 {
		t.Fatal("expected questions even for an empty article")
	}
	for i, q := range quiz.Quiz {
		if len(q.Options) != 4 {
			t.Errorf("question %d: expected 4 options, got %d", i, len(q.Options))
		}
		if !contains(q.Options, q.Answer) {
			t.Errorf("question %d: answer not among options", i)
		}
	}
}

func TestWordPoolSkipsShortAndNumericTokens(t *testing.T) {
	pool := wordPool([]string{"In 2009 the Go team at Google shipped it"})
	for _, w := range pool {
		if len(w) <= 3 {
			t.Errorf("pool contains short word %q", w)
		}
		if isNumeric(w) {
			t.Errorf("pool contains numeric word %q", w)
		}
	}
	if !contains(pool, "Google") {
		t.Errorf("expected Google in pool, got %v", pool)
	}
}
