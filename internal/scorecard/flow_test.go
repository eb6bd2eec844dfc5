package scorecard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answerAll(t *testing.T, f *Flow, value int) {
	t.Helper()
	for i := 0; i < 10; i++ {
		require.NoError(t, f.Answer(value))
	}
}

func TestFlowHappyPath(t *testing.T) {
	f := NewFlow()
	assert.Equal(t, StepQuiz, f.Step())

	answerAll(t, f, 4)
	assert.Equal(t, StepContactDetails, f.Step())
	assert.True(t, f.Complete())
	assert.Equal(t, []int{4, 4, 4, 4, 4, 4, 4, 4, 4, 4}, f.Answers())

	require.NoError(t, f.Finish())
	assert.Equal(t, StepResults, f.Step())
}

func TestFlowAdvancesThroughQuestions(t *testing.T) {
	f := NewFlow()
	for i := 0; i < 9; i++ {
		assert.Equal(t, i, f.Question())
		require.NoError(t, f.Answer(3))
	}
	assert.Equal(t, 9, f.Question())
	assert.Equal(t, StepQuiz, f.Step())

	require.NoError(t, f.Answer(3))
	assert.Equal(t, StepContactDetails, f.Step())
}

func TestFlowBackOnlyWithinQuiz(t *testing.T) {
	f := NewFlow()
	assert.ErrorIs(t, f.Back(), ErrInvalidTransition)

	require.NoError(t, f.Answer(2))
	require.NoError(t, f.Back())
	assert.Equal(t, 0, f.Question())

	answerAll(t, f, 2)
	assert.Equal(t, StepContactDetails, f.Step())
	assert.ErrorIs(t, f.Back(), ErrInvalidTransition)
}

func TestFlowRejectsOutOfRangeAnswer(t *testing.T) {
	f := NewFlow()
	assert.ErrorIs(t, f.Answer(0), ErrInvalidAnswer)
	assert.ErrorIs(t, f.Answer(6), ErrInvalidAnswer)
	assert.Equal(t, 0, f.Question())
}

func TestFlowTeaserRoundTrip(t *testing.T) {
	f := NewFlow()
	assert.ErrorIs(t, f.Skip(), ErrInvalidTransition)

	answerAll(t, f, 5)
	require.NoError(t, f.Skip())
	assert.Equal(t, StepTeaser, f.Step())

	// The teaser's only exit is back to contact details.
	assert.ErrorIs(t, f.Skip(), ErrInvalidTransition)
	assert.ErrorIs(t, f.Finish(), ErrInvalidTransition)
	require.NoError(t, f.Unlock())
	assert.Equal(t, StepContactDetails, f.Step())

	require.NoError(t, f.Finish())
	assert.Equal(t, StepResults, f.Step())
}

func TestFlowAnswerAfterQuizRejected(t *testing.T) {
	f := NewFlow()
	answerAll(t, f, 1)
	assert.ErrorIs(t, f.Answer(3), ErrInvalidTransition)
}

func TestFlowBackAndReanswer(t *testing.T) {
	f := NewFlow()
	for i := 0; i < 10; i++ {
		require.NoError(t, f.Answer(1))
		if i < 9 {
			require.NoError(t, f.Back())
			require.NoError(t, f.Answer(5))
		}
	}
	assert.Equal(t, StepContactDetails, f.Step())
	answers := f.Answers()
	assert.Equal(t, 5, answers[0])
	assert.Equal(t, 1, answers[9])
}
