package quiz

import "encoding/json"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

var AllDifficulties = []Difficulty{
	DifficultyEasy,
	DifficultyMedium,
	DifficultyHard,
}

func (d Difficulty) IsValid() bool {
	for _, v := range AllDifficulties {
		if d == v {
			return true
		}
	}
	return false
}

type Origin string

const (
	OriginBuiltIn   Origin = "builtin"
	OriginCustom    Origin = "custom"
	OriginGenerated Origin = "generated"
	OriginPreview   Origin = "preview"
)

// UnmarshalJSON leaves Origin empty for legacy records that carried the
// isCustom/isGenerated flags instead; Repository fills it from the id.
func (o *Origin) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	switch Origin(s) {
	case OriginBuiltIn, OriginCustom, OriginGenerated, OriginPreview:
		*o = Origin(s)
	default:
		*o = ""
	}
	return nil
}
