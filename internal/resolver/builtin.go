package resolver

import "github.com/saulo-duarte/quizmaster-lambda/internal/quiz"

// DefaultCategory is played when a category id is not recognized.
const DefaultCategory = "general"

type Category struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Difficulty    quiz.Difficulty `json:"difficulty"`
	QuestionCount int             `json:"questionCount"`
}

var categories = []Category{
	{
		ID:            "general",
		Title:         "General Knowledge",
		Description:   "Test your knowledge across various topics",
		Difficulty:    quiz.DifficultyMedium,
		QuestionCount: 10,
	},
	{
		ID:            "science",
		Title:         "Science & Nature",
		Description:   "Explore the wonders of science",
		Difficulty:    quiz.DifficultyHard,
		QuestionCount: 15,
	},
	{
		ID:            "history",
		Title:         "History",
		Description:   "Journey through time and events",
		Difficulty:    quiz.DifficultyMedium,
		QuestionCount: 12,
	},
	{
		ID:            "sports",
		Title:         "Sports",
		Description:   "Challenge your sports knowledge",
		Difficulty:    quiz.DifficultyEasy,
		QuestionCount: 8,
	},
}

var sampleQuestions = map[string][]quiz.Question{
	"general": {
		{ID: "1", Text: "What is the capital of France?", Options: []string{"London", "Berlin", "Paris", "Madrid"}, CorrectAnswer: 2},
		{ID: "2", Text: "Which planet is known as the Red Planet?", Options: []string{"Venus", "Mars", "Jupiter", "Saturn"}, CorrectAnswer: 1},
		{ID: "3", Text: "What is the largest mammal in the world?", Options: []string{"Elephant", "Blue Whale", "Giraffe", "Hippopotamus"}, CorrectAnswer: 1},
	},
	"science": {
		{ID: "1", Text: "What is the chemical symbol for gold?", Options: []string{"Go", "Gd", "Au", "Ag"}, CorrectAnswer: 2},
		{ID: "2", Text: "How many bones are in the adult human body?", Options: []string{"206", "208", "210", "204"}, CorrectAnswer: 0},
	},
	"history": {
		{ID: "1", Text: "In which year did World War II end?", Options: []string{"1944", "1945", "1946", "1947"}, CorrectAnswer: 1},
		{ID: "2", Text: "Who was the first person to walk on the moon?", Options: []string{"Buzz Aldrin", "Neil Armstrong", "John Glenn", "Alan Shepard"}, CorrectAnswer: 1},
	},
	"sports": {
		{ID: "1", Text: "How many players are on a basketball team on the court?", Options: []string{"4", "5", "6", "7"}, CorrectAnswer: 1},
		{ID: "2", Text: "In which sport would you perform a slam dunk?", Options: []string{"Tennis", "Football", "Basketball", "Baseball"}, CorrectAnswer: 2},
	},
}

// Categories returns the built-in categories in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// FindCategory looks up a built-in category by id.
func FindCategory(id string) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

func builtinQuestions(categoryID string) ([]quiz.Question, bool) {
	qs, ok := sampleQuestions[categoryID]
	if !ok {
		return nil, false
	}
	return cloneQuestions(qs), true
}

func cloneQuestions(qs []quiz.Question) []quiz.Question {
	out := make([]quiz.Question, len(qs))
	for i, q := range qs {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out
}
