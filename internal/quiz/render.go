package quiz

import (
	"fmt"
	"html/template"
	"io"
	"strings"
)

// RenderHTML writes a standalone HTML document for the quiz, used by
// the export command. Text fields pass through the template engine's
// escaping, so scraped content cannot inject markup.
func RenderHTML(result *Result, w io.Writer) error {
	if err := quizTemplate.Execute(w, result); err != nil {
		return fmt.Errorf("rendering quiz: %w", err)
	}
	return nil
}

var quizTemplate = template.Must(template.New("quiz").Funcs(template.FuncMap{
	"add1": func(i int) int { return i + 1 },
	"join": func(items []string) string { return strings.Join(items, ", ") },
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}} - Quiz</title>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="summary">{{.Summary}}</p>
{{range $i, $q := .Quiz}}<div class="question">
<h3>Question {{add1 $i}} <span class="difficulty">({{$q.Difficulty}})</span></h3>
<p>{{$q.Question}}</p>
<ol>
{{range $q.Options}}<li>{{.}}</li>
{{end}}</ol>
<p class="answer">Answer: {{$q.Answer}}</p>
<p class="explanation">{{$q.Explanation}}</p>
</div>
{{end}}{{if .RelatedTopics}}<p class="related">Related topics: {{join .RelatedTopics}}</p>
{{end}}</body>
</html>
`))
