package statemachine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedTransitions(t *testing.T) {
	sm := NewSubmissionStateMachine()

	allowed := []SubmissionTransition{
		{StatusDraft, StatusSubmitted},
		{StatusSubmitted, StatusApproved},
		{StatusSubmitted, StatusRejected},
		{StatusRejected, StatusDraft},
		{StatusApproved, StatusArchived},
	}
	for _, tr := range allowed {
		assert.True(t, sm.CanTransition(tr.From, tr.To), "%s -> %s", tr.From, tr.To)
	}
}

func TestRejectedTransitions(t *testing.T) {
	sm := NewSubmissionStateMachine()

	rejected := []SubmissionTransition{
		{StatusDraft, StatusApproved},
		{StatusDraft, StatusArchived},
		{StatusApproved, StatusDraft},
		{StatusArchived, StatusDraft},
		{StatusDraft, StatusDraft}, // 状态不变也拒绝
	}
	for _, tr := range rejected {
		assert.False(t, sm.CanTransition(tr.From, tr.To), "%s -> %s", tr.From, tr.To)
	}
}

func TestValidateTransitionError(t *testing.T) {
	sm := NewSubmissionStateMachine()

	err := sm.ValidateTransition(StatusDraft, StatusApproved)
	assert.Error(t, err)

	var invalid *InvalidStateTransitionError
	assert.ErrorAs(t, err, &invalid)
	assert.Equal(t, "draft", invalid.From)
	assert.Equal(t, "approved", invalid.To)
}
