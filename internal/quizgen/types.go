package quizgen

// Difficulty levels recognized for questions.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Question is a single multiple-choice question.
type Question struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
	Difficulty  string   `json:"difficulty"`
}

// Quiz is the generated quiz payload for one article.
type Quiz struct {
	Title         string     `json:"title"`
	Summary       string     `json:"summary"`
	Quiz          []Question `json:"quiz"`
	RelatedTopics []string   `json:"related_topics"`
}
