// Package scorecard models the client-driven quiz flow: ten rated
// statements, then contact details, then either results or a locked
// teaser. Single-threaded and cooperative; the server only trusts the
// final answers array, never the flow's own score.
package scorecard

import (
	"errors"

	"github.com/shipgate/site-api/internal/scoring"
)

// Step enumerates flow states.
type Step string

const (
	StepQuiz           Step = "quiz"
	StepContactDetails Step = "contact_details"
	StepTeaser         Step = "teaser"
	StepResults        Step = "results"
)

var (
	// ErrInvalidAnswer reports an answer outside [1,5].
	ErrInvalidAnswer = errors.New("scorecard: answer must be between 1 and 5")
	// ErrInvalidTransition reports a step change the flow does not allow.
	ErrInvalidTransition = errors.New("scorecard: transition not allowed in current step")
	// ErrIncomplete reports an attempt to leave the quiz with unanswered questions.
	ErrIncomplete = errors.New("scorecard: all questions must be answered")
)

// Flow tracks one quiz session.
type Flow struct {
	step     Step
	question int
	answers  []int // 0 marks unanswered
}

// NewFlow starts at the first question.
func NewFlow() *Flow {
	return &Flow{
		step:    StepQuiz,
		answers: make([]int, scoring.QuestionCount),
	}
}

// Step returns the current state.
func (f *Flow) Step() Step {
	return f.step
}

// Question returns the zero-based index of the current question.
func (f *Flow) Question() int {
	return f.question
}

// Answers returns a copy of the collected answers; unanswered slots are 0.
func (f *Flow) Answers() []int {
	out := make([]int, len(f.answers))
	copy(out, f.answers)
	return out
}

// Complete reports whether every question has an answer.
func (f *Flow) Complete() bool {
	for _, a := range f.answers {
		if a < 1 || a > 5 {
			return false
		}
	}
	return true
}

// Answer records a rating for the current question and advances. After
// the last question, and only once every slot is set, the flow moves to
// contact details.
func (f *Flow) Answer(value int) error {
	if f.step != StepQuiz {
		return ErrInvalidTransition
	}
	if value < 1 || value > 5 {
		return ErrInvalidAnswer
	}
	f.answers[f.question] = value

	if f.question < scoring.QuestionCount-1 {
		f.question++
		return nil
	}
	if !f.Complete() {
		return ErrIncomplete
	}
	f.step = StepContactDetails
	return nil
}

// Back moves to the previous question. Backward navigation is allowed
// only within the quiz.
func (f *Flow) Back() error {
	if f.step != StepQuiz || f.question == 0 {
		return ErrInvalidTransition
	}
	f.question--
	return nil
}

// Skip leaves contact details without submitting and shows the teaser.
func (f *Flow) Skip() error {
	if f.step != StepContactDetails {
		return ErrInvalidTransition
	}
	f.step = StepTeaser
	return nil
}

// Unlock returns from the teaser to contact details, its only exit.
func (f *Flow) Unlock() error {
	if f.step != StepTeaser {
		return ErrInvalidTransition
	}
	f.step = StepContactDetails
	return nil
}

// Finish moves to the terminal results state after a successful
// submission.
func (f *Flow) Finish() error {
	if f.step != StepContactDetails {
		return ErrInvalidTransition
	}
	if !f.Complete() {
		return ErrIncomplete
	}
	f.step = StepResults
	return nil
}
