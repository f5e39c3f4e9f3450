package quiz

import "github.com/abhisek/quizdeck/internal/questions"

// loadedMsg carries the result of the question-set fetch.
type loadedMsg struct {
	sessionID string
	set       []questions.Question
	err       error
}

// totalTickMsg is one second of the whole-quiz countdown.
type totalTickMsg struct {
	sessionID string
}

// questionTickMsg is one second of the per-question countdown for the
// chain armed at epoch.
type questionTickMsg struct {
	sessionID string
	epoch     int
}

// autoAdvanceMsg fires after a question times out.
type autoAdvanceMsg struct {
	sessionID string
	epoch     int
}
