package subscriber

import (
	"context"

	"github.com/safedocs/backend/internal/eventbus"
	"github.com/safedocs/backend/internal/model"
	"github.com/safedocs/backend/internal/repository"
	"github.com/safedocs/backend/internal/utils"
	"k8s.io/klog/v2"
)

// SubmissionEventSubscriber 把填报事件落成审计流水
type SubmissionEventSubscriber struct {
	auditRepo repository.AuditRepository
}

func NewSubmissionEventSubscriber(auditRepo repository.AuditRepository) *SubmissionEventSubscriber {
	return &SubmissionEventSubscriber{auditRepo: auditRepo}
}

func (s *SubmissionEventSubscriber) Register(bus *eventbus.SubmissionEventBus) {
	if bus == nil {
		return
	}
	bus.Subscribe(eventbus.SubmissionEventSaved, s.handle)
	bus.Subscribe(eventbus.SubmissionEventStatusChanged, s.handle)
	bus.Subscribe(eventbus.SubmissionEventExported, s.handle)
}

func (s *SubmissionEventSubscriber) handle(ctx context.Context, event eventbus.SubmissionEvent) error {
	entry := &model.AuditLog{
		SubmissionID: event.SubmissionID,
		Action:       string(event.Type),
		Detail:       utils.ToJSON(event),
	}
	if err := s.auditRepo.Create(entry); err != nil {
		klog.Errorf("审计记录写入失败: type=%s, id=%d, error=%v", event.Type, event.SubmissionID, err)
		return err
	}
	klog.V(6).Infof("审计记录已写入: type=%s, id=%d", event.Type, event.SubmissionID)
	return nil
}
