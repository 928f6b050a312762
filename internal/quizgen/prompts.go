package quizgen

import (
	"fmt"
	"strings"

	"github.com/ziadkadry99/wikiquiz/internal/scraper"
)

// systemPrompt frames the model as a quiz author restricted to the article.
const systemPrompt = `You are a quiz author. You write multiple-choice quizzes grounded strictly in the article text you are given. You respond with JSON only, no extra commentary.`

// quizPromptTemplate is the user prompt. %d slots are the question bounds.
const quizPromptTemplate = `You are given the cleaned text of a Wikipedia article and its title.
Generate a quiz of %d to %d questions grounded in the article content. For each question provide:
- question: text
- options: list of four option texts
- answer: the correct option text
- explanation: a short factual explanation grounded in the article
- difficulty: one of [easy, medium, hard]

Also return a list of suggested related Wikipedia topics (3-6 items) based on subjects mentioned in the article.

Return valid JSON matching the following structure:
{
  "title": "...",
  "summary": "...",
  "quiz": [ {question objects} ... ],
  "related_topics": ["...", ...]
}

Use only information present in the article text. If the article does not contain enough facts for a question, skip that question.
Output JSON only, no extra commentary.`

// maxArticleChars bounds the article text sent to the model so overly
// long pages do not blow the context window.
const maxArticleChars = 24000

func buildPrompt(article *scraper.Article, minQ, maxQ int) string {
	text := article.CleanText
	if text == "" {
		text = article.Summary
	}
	if len(text) > maxArticleChars {
		text = text[:maxArticleChars]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, quizPromptTemplate, minQ, maxQ)
	sb.WriteString("\n\nARTICLE_TITLE:\n")
	sb.WriteString(article.Title)
	sb.WriteString("\n\nARTICLE_TEXT:\n")
	sb.WriteString(text)
	return sb.String()
}
