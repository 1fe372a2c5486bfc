package aiquiz

import "fmt"

const promptTemplate = `Generate %[1]d multiple choice quiz questions about %[2]s with %[3]s difficulty level.

Return ONLY a valid JSON array with this exact structure:
[
  {
    "question": "What is the capital of France?",
    "options": ["Paris", "London", "Berlin", "Madrid"],
    "correctAnswer": 0
  }
]

Requirements:
- Each question should be clear and unambiguous
- Provide exactly 4 options for each question
- correctAnswer should be the index (0-3) of the correct option
- Make questions engaging and educational
- Vary the difficulty appropriately for %[3]s level
- Focus specifically on %[2]s topic`

func BuildPrompt(req QuestionRequest) string {
	return fmt.Sprintf(promptTemplate, req.NumQuestions, req.Category, req.Difficulty)
}
