package questions

import "strings"

// Label identifies one of the four answer options.
type Label string

const (
	LabelA Label = "A"
	LabelB Label = "B"
	LabelC Label = "C"
	LabelD Label = "D"
)

// Labels lists the option labels in display order.
var Labels = []Label{LabelA, LabelB, LabelC, LabelD}

// ParseLabel maps user input ("a", "B", "3") to a Label.
func ParseLabel(s string) (Label, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	switch s {
	case "A", "1":
		return LabelA, true
	case "B", "2":
		return LabelB, true
	case "C", "3":
		return LabelC, true
	case "D", "4":
		return LabelD, true
	}
	return "", false
}

// Valid reports whether l is one of A-D.
func (l Label) Valid() bool {
	switch l {
	case LabelA, LabelB, LabelC, LabelD:
		return true
	}
	return false
}

// Question is a single multiple-choice question. Questions are immutable
// once a set has been loaded.
type Question struct {
	ID            int              `json:"id"`
	Text          string           `json:"question"`
	Options       map[Label]string `json:"options"`
	CorrectAnswer Label            `json:"correct_answer"`
	Explanation   string           `json:"explanation,omitempty"`
}

// Option returns the text for the given label, or "" when absent.
func (q Question) Option(l Label) string {
	return q.Options[l]
}

// IsCorrect reports whether l is the correct answer.
func (q Question) IsCorrect(l Label) bool {
	return l == q.CorrectAnswer
}
