package session

// Result is the final outcome of a completed session.
type Result struct {
	Score int `json:"score"`
	Total int `json:"total"`
}

func (r Result) Percentage() float64 {
	if r.Total <= 0 {
		return 0
	}
	return float64(r.Score) / float64(r.Total) * 100
}

func (r Result) Stars() int {
	p := r.Percentage()
	switch {
	case p >= 80:
		return 5
	case p >= 60:
		return 4
	case p >= 40:
		return 3
	case p >= 20:
		return 2
	default:
		return 1
	}
}

func (r Result) Message() string {
	p := r.Percentage()
	switch {
	case p >= 80:
		return "Outstanding!"
	case p >= 60:
		return "Well Done!"
	case p >= 40:
		return "Good Try!"
	default:
		return "Keep Practicing!"
	}
}

// Achievement returns the badge earned by the result, or "" when none.
func (r Result) Achievement() string {
	if r.Percentage() >= 80 {
		return "Quiz Master"
	}
	return ""
}
