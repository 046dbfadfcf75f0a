package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/safedocs/backend/internal/capture"
	"github.com/safedocs/backend/internal/engine/export"
	"github.com/safedocs/backend/internal/eventbus"
	"github.com/safedocs/backend/internal/model"
	"github.com/safedocs/backend/internal/repository"
	"github.com/safedocs/backend/internal/service/orchestrator"
	"k8s.io/klog/v2"
)

// ExportService PDF 导出
// 同步导出直接返回产物字节流；后台导出把产物写入附件存储并发事件。
// 导出从不被校验结果阻断：缺失的必填项照原样落纸。
type ExportService struct {
	submissionRepo repository.SubmissionRepository
	attachmentRepo repository.AttachmentRepository
	store          *capture.Store
	bus            *eventbus.SubmissionEventBus
	orchestrator   *orchestrator.Orchestrator
}

func NewExportService(
	submissionRepo repository.SubmissionRepository,
	attachmentRepo repository.AttachmentRepository,
	store *capture.Store,
	bus *eventbus.SubmissionEventBus,
) *ExportService {
	return &ExportService{
		submissionRepo: submissionRepo,
		attachmentRepo: attachmentRepo,
		store:          store,
		bus:            bus,
	}
}

// SetOrchestrator 设置导出编排器
// 编排器的 worker 回调本服务，构造时二者互相引用，这里后置注入
func (s *ExportService) SetOrchestrator(o *orchestrator.Orchestrator) {
	s.orchestrator = o
}

// Render 同步导出，产物直接返回给调用方
func (s *ExportService) Render(ref string) (*export.Artifact, error) {
	sub, err := s.submissionRepo.GetByRef(ref)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to load submission: %w", err)
	}
	return export.Render(sub.DocumentText, sub.Ref)
}

// Enqueue 把导出任务提交到后台队列
func (s *ExportService) Enqueue(ref string) error {
	sub, err := s.submissionRepo.GetByRef(ref)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSubmissionNotFound
		}
		return fmt.Errorf("failed to load submission: %w", err)
	}
	if s.orchestrator == nil {
		return errors.New("export orchestrator not configured")
	}
	return s.orchestrator.Enqueue(orchestrator.NewExportJob(sub.ID))
}

// ExportSubmission 后台导出，由编排器 worker 调用
// 产物写入附件存储并登记 Attachment 记录，随后发导出完成事件
func (s *ExportService) ExportSubmission(ctx context.Context, submissionID uint) error {
	sub, err := s.submissionRepo.Get(submissionID)
	if err != nil {
		return fmt.Errorf("failed to load submission: %w", err)
	}

	artifact, err := export.Render(sub.DocumentText, sub.Ref)
	if err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}

	artifactRef, err := s.store.Put(artifact.Filename, artifact.Data)
	if err != nil {
		return fmt.Errorf("failed to store export artifact: %w", err)
	}

	path, err := s.store.Resolve(artifactRef)
	if err != nil {
		return fmt.Errorf("failed to resolve export artifact: %w", err)
	}

	// 重复导出覆盖同名产物，附件记录跟着更新
	att, err := s.attachmentRepo.GetByRef(artifactRef)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("failed to look up export artifact: %w", err)
	}
	if att == nil {
		att = &model.Attachment{Ref: artifactRef, SubmissionID: &sub.ID, Kind: "export"}
	}
	att.Path = path
	att.MimeType = "application/pdf"
	att.Size = int64(len(artifact.Data))
	if att.ID == 0 {
		err = s.attachmentRepo.Create(att)
	} else {
		err = s.attachmentRepo.Save(att)
	}
	if err != nil {
		return fmt.Errorf("failed to record export artifact: %w", err)
	}

	if s.bus != nil {
		event := eventbus.SubmissionEvent{
			Type:         eventbus.SubmissionEventExported,
			SubmissionID: sub.ID,
			Ref:          sub.Ref,
			Kind:         sub.Kind,
			Status:       sub.Status,
			ArtifactRef:  artifactRef,
		}
		if err := s.bus.Publish(ctx, eventbus.SubmissionEventExported, event); err != nil {
			klog.Errorf("导出事件发布失败: id=%d, error=%v", sub.ID, err)
		}
	}

	klog.V(6).Infof("后台导出完成: id=%d, artifact=%s", sub.ID, artifactRef)
	return nil
}
