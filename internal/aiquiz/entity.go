package aiquiz

const (
	DefaultDifficulty   = "medium"
	DefaultNumQuestions = 10
)

// Question is the shape the model is asked to produce.
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

type QuestionRequest struct {
	Category     string `json:"category" validate:"required,max=200"`
	Difficulty   string `json:"difficulty" validate:"max=50"`
	NumQuestions int    `json:"numQuestions" validate:"min=1,max=50"`
}

// withDefaults fills the fields a caller may omit.
func (r QuestionRequest) withDefaults() QuestionRequest {
	if r.Difficulty == "" {
		r.Difficulty = DefaultDifficulty
	}
	if r.NumQuestions == 0 {
		r.NumQuestions = DefaultNumQuestions
	}
	return r
}

type QuestionResponse struct {
	Questions []Question `json:"questions"`
}
