package statemachine

import (
	"fmt"

	"k8s.io/klog/v2"
)

// SubmissionStatus 填报单的所有可能状态
type SubmissionStatus string

const (
	StatusDraft     SubmissionStatus = "draft"     // 编辑中
	StatusSubmitted SubmissionStatus = "submitted" // 已提交待审
	StatusApproved  SubmissionStatus = "approved"  // 审批通过
	StatusRejected  SubmissionStatus = "rejected"  // 审批退回
	StatusArchived  SubmissionStatus = "archived"  // 归档
)

// SubmissionTransition 定义状态迁移
type SubmissionTransition struct {
	From SubmissionStatus
	To   SubmissionStatus
}

// SubmissionStateMachine 填报单状态机
type SubmissionStateMachine struct {
	allowedTransitions map[SubmissionTransition]bool
}

func NewSubmissionStateMachine() *SubmissionStateMachine {
	sm := &SubmissionStateMachine{
		allowedTransitions: make(map[SubmissionTransition]bool),
	}

	// draft -> submitted -> approved/rejected
	// rejected -> draft（退回后继续编辑）
	// approved -> archived
	transitions := []SubmissionTransition{
		{StatusDraft, StatusSubmitted},
		{StatusSubmitted, StatusApproved},
		{StatusSubmitted, StatusRejected},
		{StatusRejected, StatusDraft},
		{StatusApproved, StatusArchived},
	}

	for _, t := range transitions {
		sm.allowedTransitions[t] = true
	}

	return sm
}

// CanTransition 检查状态迁移是否合法
func (sm *SubmissionStateMachine) CanTransition(from, to SubmissionStatus) bool {
	if from == to {
		return false // 不允许状态不变
	}
	return sm.allowedTransitions[SubmissionTransition{From: from, To: to}]
}

// ValidateTransition 验证状态迁移并返回错误
func (sm *SubmissionStateMachine) ValidateTransition(from, to SubmissionStatus) error {
	if !sm.CanTransition(from, to) {
		return &InvalidStateTransitionError{
			From: string(from),
			To:   string(to),
		}
	}
	return nil
}

// Transition 执行状态迁移（带日志）
func (sm *SubmissionStateMachine) Transition(from, to SubmissionStatus, submissionID uint) error {
	if err := sm.ValidateTransition(from, to); err != nil {
		klog.V(6).Infof("填报单状态迁移被拒绝: submissionID=%d, %s -> %s, error=%v",
			submissionID, from, to, err)
		return err
	}
	klog.V(6).Infof("填报单状态迁移: submissionID=%d, %s -> %s", submissionID, from, to)
	return nil
}

// InvalidStateTransitionError 非法状态迁移
type InvalidStateTransitionError struct {
	From string
	To   string
}

func (e *InvalidStateTransitionError) Error() string {
	return fmt.Sprintf("invalid state transition: %s -> %s", e.From, e.To)
}
