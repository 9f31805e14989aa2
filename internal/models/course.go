package models

// Level represents the difficulty level of a course
type Level string

const (
	LevelLow    Level = "L"
	LevelMedium Level = "M"
	LevelHigh   Level = "H"
)

// levelOrdinals maps level codes to their ordering (L < M < H)
var levelOrdinals = map[Level]int{
	LevelLow:    0,
	LevelMedium: 1,
	LevelHigh:   2,
}

// levelLabels maps level codes to Korean display names
var levelLabels = map[Level]string{
	LevelLow:    "초급",
	LevelMedium: "중급",
	LevelHigh:   "고급",
}

// ParseLevel converts a stored level code to a Level, falling back to
// LevelLow for unknown codes
func ParseLevel(code string) Level {
	level := Level(code)
	if _, ok := levelOrdinals[level]; !ok {
		return LevelLow
	}
	return level
}

// Ordinal returns the numeric ordering of the level (unknown levels rank lowest)
func (l Level) Ordinal() int {
	return levelOrdinals[l]
}

// Compare returns a negative, zero, or positive value depending on whether
// l orders before, equal to, or after other
func (l Level) Compare(other Level) int {
	return l.Ordinal() - other.Ordinal()
}

// Label returns the Korean display name for the level
func (l Level) Label() string {
	if label, ok := levelLabels[l]; ok {
		return label
	}
	return string(l)
}

// NextLevel returns the level to recommend after the current one.
// Progression is one step up by default and one step down on a difficulty
// signal, clamped at L and H.
func (l Level) NextLevel(difficult bool) Level {
	if difficult {
		switch l {
		case LevelHigh:
			return LevelMedium
		default:
			return LevelLow
		}
	}
	switch l {
	case LevelLow:
		return LevelMedium
	default:
		return LevelHigh
	}
}

// Course represents a course in the catalog
type Course struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Level       Level  `json:"level"`
	Category    string `json:"category"`
}
