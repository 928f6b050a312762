package db

import (
	"testing"
)

func TestOpenMemory(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	var count int
	if err := d.QueryRow("SELECT COUNT(*) FROM quizzes").Scan(&count); err != nil {
		t.Errorf("quizzes table: %v", err)
	}
	if count != 0 {
		t.Errorf("expected empty quizzes table, got %d rows", count)
	}
}

func TestMigrateIdempotent(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	// Running migrate again should not fail.
	if err := d.migrate(); err != nil {
		t.Fatalf("second migrate() error: %v", err)
	}
}

func TestAutoincrementIDs(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	res, err := d.Exec(`INSERT INTO quizzes (url, title, full_quiz_data) VALUES (?, ?, ?)`,
		"https://en.wikipedia.org/wiki/Go", "Go", "{}")
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	first, _ := res.LastInsertId()

	res, err = d.Exec(`INSERT INTO quizzes (url, title, full_quiz_data) VALUES (?, ?, ?)`,
		"https://en.wikipedia.org/wiki/Gopher", "Gopher", "{}")
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	second, _ := res.LastInsertId()

	if second != first+1 {
		t.Errorf("expected sequential ids, got %d then %d", first, second)
	}
}
