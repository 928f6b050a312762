package quizgen

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode"

	"github.com/ziadkadry99/wikiquiz/internal/scraper"
)

// Fallback builds a quiz deterministically from the article text, for
// use when no LLM is configured or the LLM output is unusable. It picks
// statements from the leading sentences and pads the options from a
// pool of capitalized words seen in the article. A zero seed uses the
// current time.
func Fallback(article *scraper.Article, seed int64) *Quiz {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	sentences := splitSentences(article.CleanText)
	if len(sentences) == 0 {
		if article.Summary != "" {
			sentences = []string{article.Summary}
		} else {
			sentences = []string{article.Title}
		}
	}

	numQ := len(sentences) / 3
	if numQ < 5 {
		numQ = 5
	}
	if numQ > 7 {
		numQ = 7
	}

	words := wordPool(sentences)

	difficulties := []string{
		DifficultyEasy, DifficultyEasy, DifficultyEasy,
		DifficultyMedium, DifficultyMedium,
		DifficultyHard,
	}

	var questions []Question
	for i := 0; i < numQ; i++ {
		idx := 0
		if i < len(sentences) {
			idx = i
		}

		qText := truncate(sentences[idx], 200)
		if len(qText) < 10 {
			if article.Summary != "" {
				qText = truncate(article.Summary, 200)
			} else {
				qText = truncate(article.Title, 200)
			}
		}

		correct := pickAnswer(rng, sentences[idx], article.Title)
		options := buildOptions(rng, correct, words)

		questions = append(questions, Question{
			Question:    qText + "?",
			Options:     options,
			Answer:      correct,
			Explanation: fmt.Sprintf("Based on the article text: '%s'.", strings.TrimSpace(truncate(sentences[idx], 120))),
			Difficulty:  difficulties[rng.Intn(len(difficulties))],
		})
	}

	return &Quiz{
		Title:         article.Title,
		Summary:       article.Summary,
		Quiz:          questions,
		RelatedTopics: relatedTopics(article.Sections, words),
	}
}

func splitSentences(text string) []string {
	var out []string
	for _, s := range strings.Split(text, ".") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// wordPool collects up to 50 distinct capitalized words from the first
// 20 sentences, used for fake options and related topics.
func wordPool(sentences []string) []string {
	seen := make(map[string]bool)
	var pool []string

	limit := len(sentences)
	if limit > 20 {
		limit = 20
	}
	for _, s := range sentences[:limit] {
		for _, w := range strings.Fields(s) {
			w = capitalize(strings.Trim(w, `,.()"`))
			if len(w) > 3 && !isNumeric(w) && !seen[w] {
				seen[w] = true
				pool = append(pool, w)
				if len(pool) == 50 {
					return pool
				}
			}
		}
	}
	return pool
}

func pickAnswer(rng *rand.Rand, sentence, title string) string {
	var candidates []string
	for _, t := range strings.Fields(sentence) {
		t = strings.Trim(t, `,.()"`)
		if len(t) > 3 && isTitleCase(t) {
			candidates = append(candidates, t)
		}
	}
	if len(candidates) > 0 {
		return candidates[rng.Intn(len(candidates))]
	}
	if parts := strings.Fields(sentence); len(parts) > 0 {
		return parts[0]
	}
	return title
}

func buildOptions(rng *rand.Rand, correct string, words []string) []string {
	options := []string{correct}
	attempts := 0
	for len(options) < 4 {
		var pick string
		if len(words) > 0 && attempts < 20 {
			pick = words[rng.Intn(len(words))]
		} else {
			pick = fmt.Sprintf("Option%d", rng.Intn(99)+1)
		}
		attempts++
		if !contains(options, pick) {
			options = append(options, pick)
		}
	}
	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}

func relatedTopics(sections, words []string) []string {
	var related []string
	limit := len(sections)
	if limit > 5 {
		limit = 5
	}
	for _, s := range sections[:limit] {
		if s != "" && !contains(related, s) {
			related = append(related, s)
		}
	}
	for _, w := range words {
		if len(related) >= 6 {
			break
		}
		if !contains(related, w) {
			related = append(related, w)
		}
	}
	return related
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(strings.ToLower(s))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func isTitleCase(s string) bool {
	r := []rune(s)
	return len(r) > 0 && unicode.IsUpper(r[0])
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimRight(string(r[:n]), " ")
}
