package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/safedocs/backend/internal/engine"
	"github.com/safedocs/backend/internal/eventbus"
	"github.com/safedocs/backend/internal/model"
	"github.com/safedocs/backend/internal/repository"
	"github.com/safedocs/backend/internal/service/statemachine"
	"github.com/safedocs/backend/internal/utils"
	"k8s.io/klog/v2"
)

var (
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrSessionNotFound    = errors.New("editing session not found")
	ErrPersonNotFound     = errors.New("person not found")
)

// editSession 一条打开的填报会话
// 同一会话内的编辑串行化，跨会话互不影响
type editSession struct {
	mu           sync.Mutex
	token        string
	submissionID uint // 0 表示尚未保存过
	session      *engine.Session
}

type SubmissionService struct {
	submissionRepo repository.SubmissionRepository
	templateRepo   repository.TemplateRepository
	rosterRepo     repository.RosterRepository
	stateMachine   *statemachine.SubmissionStateMachine
	bus            *eventbus.SubmissionEventBus

	mu       sync.RWMutex
	sessions map[string]*editSession
}

func NewSubmissionService(
	submissionRepo repository.SubmissionRepository,
	templateRepo repository.TemplateRepository,
	rosterRepo repository.RosterRepository,
	bus *eventbus.SubmissionEventBus,
) *SubmissionService {
	return &SubmissionService{
		submissionRepo: submissionRepo,
		templateRepo:   templateRepo,
		rosterRepo:     rosterRepo,
		stateMachine:   statemachine.NewSubmissionStateMachine(),
		bus:            bus,
		sessions:       make(map[string]*editSession),
	}
}

// SessionDTO 会话视图
type SessionDTO struct {
	Token        string                   `json:"token"`
	SubmissionID uint                     `json:"submission_id,omitempty"`
	Kind         string                   `json:"kind"`
	DocumentText string                   `json:"document_text"`
	Values       engine.ValueMap          `json:"values"`
	Fields       []engine.FieldDefinition `json:"fields"`
}

// SubmissionDTO 填报列表视图
type SubmissionDTO struct {
	ID     uint   `json:"id"`
	Ref    string `json:"ref"`
	Kind   string `json:"kind"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

// OpenNew 基于模板原文开启新的填报会话
// 模板正文取落库版本，分类由引擎完成
func (s *SubmissionService) OpenNew(kind string) (*SessionDTO, error) {
	tpl, err := s.templateRepo.GetByKind(kind)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to load template: %w", err)
	}

	sess, err := engine.NewSession(tpl.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to open session: %w", err)
	}

	es := &editSession{token: uuid.New().String(), session: sess}
	s.mu.Lock()
	s.sessions[es.token] = es
	s.mu.Unlock()

	klog.V(6).Infof("新建填报会话: token=%s, kind=%s", es.token, sess.Kind())
	return s.toSessionDTO(es), nil
}

// OpenExisting 重新打开已保存的填报
// 持久化的 {DocumentText, ValueMap} 按原样重建会话，落库文本即新的对比基线
func (s *SubmissionService) OpenExisting(ref string) (*SessionDTO, error) {
	sub, err := s.submissionRepo.GetByRef(ref)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to load submission: %w", err)
	}

	values, err := utils.MapFromJSON(sub.ValueMap)
	if err != nil {
		return nil, fmt.Errorf("failed to decode value map: %w", err)
	}

	sess, err := engine.OpenSession(sub.DocumentText, values)
	if err != nil {
		return nil, fmt.Errorf("failed to reopen session: %w", err)
	}

	es := &editSession{token: uuid.New().String(), submissionID: sub.ID, session: sess}
	s.mu.Lock()
	s.sessions[es.token] = es
	s.mu.Unlock()

	klog.V(6).Infof("重开填报会话: token=%s, ref=%s", es.token, ref)
	return s.toSessionDTO(es), nil
}

// Bind 写入单个字段值
func (s *SubmissionService) Bind(token, key, value string) (*SessionDTO, error) {
	es, err := s.lookup(token)
	if err != nil {
		return nil, err
	}
	es.mu.Lock()
	defer es.mu.Unlock()

	if err := es.session.Bind(key, value); err != nil {
		return nil, err
	}
	return s.toSessionDTOLocked(es), nil
}

// BindPerson 从人员名册取人，展开到人员行字段
func (s *SubmissionService) BindPerson(token, key string, personID uint) (*SessionDTO, error) {
	es, err := s.lookup(token)
	if err != nil {
		return nil, err
	}

	p, err := s.rosterRepo.Person(personID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPersonNotFound
		}
		return nil, fmt.Errorf("failed to load person: %w", err)
	}

	es.mu.Lock()
	defer es.mu.Unlock()

	person := engine.Person{Name: p.Name, Ident: p.IdentNo, Company: p.Company}
	if err := es.session.BindPerson(key, person); err != nil {
		return nil, err
	}
	return s.toSessionDTOLocked(es), nil
}

// Validate 校验报告，从不阻断保存或导出
func (s *SubmissionService) Validate(token string) ([]engine.Diagnostic, error) {
	es, err := s.lookup(token)
	if err != nil {
		return nil, err
	}
	es.mu.Lock()
	defer es.mu.Unlock()
	return es.session.Validate(), nil
}

// Diff 当前文本与会话基线的逐行对比
func (s *SubmissionService) Diff(token string) ([]engine.DiffLine, error) {
	es, err := s.lookup(token)
	if err != nil {
		return nil, err
	}
	es.mu.Lock()
	defer es.mu.Unlock()
	return es.session.Diff(), nil
}

// Save 持久化 {DocumentText, ValueMap} 数据对并关闭会话
func (s *SubmissionService) Save(ctx context.Context, token, title string) (*SubmissionDTO, error) {
	es, err := s.lookup(token)
	if err != nil {
		return nil, err
	}
	es.mu.Lock()
	defer es.mu.Unlock()

	var sub *model.Submission
	if es.submissionID == 0 {
		sub = &model.Submission{
			Ref:    uuid.New().String(),
			Kind:   string(es.session.Kind()),
			Status: string(statemachine.StatusDraft),
		}
	} else {
		sub, err = s.submissionRepo.Get(es.submissionID)
		if err != nil {
			return nil, fmt.Errorf("failed to load submission: %w", err)
		}
	}

	if title != "" {
		sub.Title = title
	}
	sub.DocumentText = es.session.Text()
	sub.ValueMap = utils.ToJSON(es.session.Values())

	if es.submissionID == 0 {
		if err := s.submissionRepo.Create(sub); err != nil {
			return nil, fmt.Errorf("failed to create submission: %w", err)
		}
		es.submissionID = sub.ID
	} else {
		if err := s.submissionRepo.Save(sub); err != nil {
			return nil, fmt.Errorf("failed to save submission: %w", err)
		}
	}

	s.drop(token)
	s.publish(ctx, eventbus.SubmissionEventSaved, sub, "")
	klog.V(6).Infof("填报已保存: id=%d, ref=%s", sub.ID, sub.Ref)
	return toSubmissionDTO(sub), nil
}

// Cancel 丢弃会话，不触碰已落库数据
func (s *SubmissionService) Cancel(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[token]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, token)
	klog.V(6).Infof("填报会话已取消: token=%s", token)
	return nil
}

// ChangeStatus 按状态机迁移填报状态
func (s *SubmissionService) ChangeStatus(ctx context.Context, ref, status string) (*SubmissionDTO, error) {
	sub, err := s.submissionRepo.GetByRef(ref)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to load submission: %w", err)
	}

	from := statemachine.SubmissionStatus(sub.Status)
	to := statemachine.SubmissionStatus(status)
	if err := s.stateMachine.Transition(from, to, sub.ID); err != nil {
		return nil, err
	}

	if err := s.submissionRepo.UpdateStatus(sub.ID, status); err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}
	sub.Status = status

	s.publish(ctx, eventbus.SubmissionEventStatusChanged, sub, "")
	return toSubmissionDTO(sub), nil
}

// List 填报列表，kind 为空时返回全部
func (s *SubmissionService) List(kind string) ([]SubmissionDTO, error) {
	var (
		subs []model.Submission
		err  error
	)
	if kind == "" {
		subs, err = s.submissionRepo.List()
	} else {
		subs, err = s.submissionRepo.ListByKind(kind)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	result := make([]SubmissionDTO, len(subs))
	for i := range subs {
		result[i] = *toSubmissionDTO(&subs[i])
	}
	return result, nil
}

// Get 按 ref 获取单条填报
func (s *SubmissionService) Get(ref string) (*model.Submission, error) {
	sub, err := s.submissionRepo.GetByRef(ref)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}
	return sub, nil
}

func (s *SubmissionService) lookup(token string) (*editSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	es, ok := s.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return es, nil
}

func (s *SubmissionService) drop(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

func (s *SubmissionService) publish(ctx context.Context, eventType eventbus.SubmissionEventType, sub *model.Submission, artifactRef string) {
	if s.bus == nil {
		return
	}
	event := eventbus.SubmissionEvent{
		Type:         eventType,
		SubmissionID: sub.ID,
		Ref:          sub.Ref,
		Kind:         sub.Kind,
		Status:       sub.Status,
		ArtifactRef:  artifactRef,
	}
	if err := s.bus.Publish(ctx, eventType, event); err != nil {
		klog.Errorf("填报事件发布失败: type=%s, id=%d, error=%v", eventType, sub.ID, err)
	}
}

func (s *SubmissionService) toSessionDTO(es *editSession) *SessionDTO {
	es.mu.Lock()
	defer es.mu.Unlock()
	return s.toSessionDTOLocked(es)
}

func (s *SubmissionService) toSessionDTOLocked(es *editSession) *SessionDTO {
	return &SessionDTO{
		Token:        es.token,
		SubmissionID: es.submissionID,
		Kind:         string(es.session.Kind()),
		DocumentText: es.session.Text(),
		Values:       es.session.Values(),
		Fields:       es.session.Fields(),
	}
}

func toSubmissionDTO(sub *model.Submission) *SubmissionDTO {
	return &SubmissionDTO{
		ID:     sub.ID,
		Ref:    sub.Ref,
		Kind:   sub.Kind,
		Title:  sub.Title,
		Status: sub.Status,
	}
}
