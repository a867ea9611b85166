package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyCompletionFirstTime(t *testing.T) {
	p := UserProgress{UserID: 1, LevelID: 1, Status: ProgressNotStarted}

	p.ApplyCompletion(50)

	assert.Equal(t, ProgressCompleted, p.Status)
	assert.Equal(t, 50, p.Score)
}

func TestApplyCompletionNoDowngrade(t *testing.T) {
	p := UserProgress{UserID: 1, LevelID: 1, Status: ProgressNotStarted}
	p.ApplyCompletion(50)
	p.ApplyCompletion(30)

	assert.Equal(t, 50, p.Score)
}

func TestApplyCompletionHigherResubmissionWins(t *testing.T) {
	p := UserProgress{UserID: 1, LevelID: 1, Status: ProgressNotStarted}
	p.ApplyCompletion(30)
	p.ApplyCompletion(50)

	assert.Equal(t, ProgressCompleted, p.Status)
	assert.Equal(t, 50, p.Score)
}
