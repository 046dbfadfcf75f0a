package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/safedocs/backend/internal/engine"
	"github.com/safedocs/backend/internal/service"
	"github.com/safedocs/backend/internal/service/orchestrator"
	"github.com/safedocs/backend/internal/service/statemachine"
)

// SubmissionHandler 填报 Handler
// 会话内的编辑走 token 路由，落库的填报走 ref 路由
type SubmissionHandler struct {
	submissionService *service.SubmissionService
	exportService     *service.ExportService
}

func NewSubmissionHandler(submissionService *service.SubmissionService, exportService *service.ExportService) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
		exportService:     exportService,
	}
}

// OpenRequest 开启新会话请求
type OpenRequest struct {
	Kind string `json:"kind" binding:"required"`
}

// BindRequest 字段写入请求
type BindRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

// BindPersonRequest 人员行写入请求
type BindPersonRequest struct {
	Key      string `json:"key" binding:"required"`
	PersonID uint   `json:"person_id" binding:"required"`
}

// SaveRequest 保存请求
type SaveRequest struct {
	Title string `json:"title"`
}

// StatusRequest 状态迁移请求
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Open 基于模板开启新的填报会话
func (h *SubmissionHandler) Open(c *gin.Context) {
	var req OpenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dto, err := h.submissionService.OpenNew(req.Kind)
	if err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "template not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": dto})
}

// Reopen 重新打开已保存的填报
func (h *SubmissionHandler) Reopen(c *gin.Context) {
	dto, err := h.submissionService.OpenExisting(c.Param("ref"))
	if err != nil {
		if errors.Is(err, service.ErrSubmissionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "submission not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": dto})
}

// List 填报列表
func (h *SubmissionHandler) List(c *gin.Context) {
	subs, err := h.submissionService.List(c.Query("kind"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": subs})
}

// Get 单条填报
func (h *SubmissionHandler) Get(c *gin.Context) {
	sub, err := h.submissionService.Get(c.Param("ref"))
	if err != nil {
		if errors.Is(err, service.ErrSubmissionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "submission not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": sub})
}

// Bind 写入字段值
func (h *SubmissionHandler) Bind(c *gin.Context) {
	var req BindRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dto, err := h.submissionService.Bind(c.Param("token"), req.Key, req.Value)
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": dto})
}

// BindPerson 人员行写入
func (h *SubmissionHandler) BindPerson(c *gin.Context) {
	var req BindPersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dto, err := h.submissionService.BindPerson(c.Param("token"), req.Key, req.PersonID)
	if err != nil {
		if errors.Is(err, service.ErrPersonNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "person not found"})
			return
		}
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": dto})
}

// Validate 校验报告，只提示不阻断
func (h *SubmissionHandler) Validate(c *gin.Context) {
	diags, err := h.submissionService.Validate(c.Param("token"))
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": diags})
}

// Diff 会话文本与基线的逐行对比
func (h *SubmissionHandler) Diff(c *gin.Context) {
	diff, err := h.submissionService.Diff(c.Param("token"))
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": diff})
}

// Save 落库并关闭会话
func (h *SubmissionHandler) Save(c *gin.Context) {
	var req SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dto, err := h.submissionService.Save(c.Request.Context(), c.Param("token"), req.Title)
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": dto})
}

// Cancel 丢弃会话
func (h *SubmissionHandler) Cancel(c *gin.Context) {
	if err := h.submissionService.Cancel(c.Param("token")); err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cancelled"})
}

// ChangeStatus 状态迁移
func (h *SubmissionHandler) ChangeStatus(c *gin.Context) {
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dto, err := h.submissionService.ChangeStatus(c.Request.Context(), c.Param("ref"), req.Status)
	if err != nil {
		if errors.Is(err, service.ErrSubmissionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "submission not found"})
			return
		}
		var invalid *statemachine.InvalidStateTransitionError
		if errors.As(err, &invalid) {
			c.JSON(http.StatusConflict, gin.H{"error": invalid.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": dto})
}

// Export 同步导出，直接下载 PDF
func (h *SubmissionHandler) Export(c *gin.Context) {
	artifact, err := h.exportService.Render(c.Param("ref"))
	if err != nil {
		if errors.Is(err, service.ErrSubmissionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "submission not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+artifact.Filename)
	c.Data(http.StatusOK, "application/pdf", artifact.Data)
}

// EnqueueExport 后台导出
func (h *SubmissionHandler) EnqueueExport(c *gin.Context) {
	if err := h.exportService.Enqueue(c.Param("ref")); err != nil {
		if errors.Is(err, service.ErrSubmissionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "submission not found"})
			return
		}
		if errors.Is(err, orchestrator.ErrQueueFull) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "export queue is full"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "export queued"})
}

func (h *SubmissionHandler) sessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "editing session not found"})
	case errors.Is(err, engine.ErrUnknownField), errors.Is(err, engine.ErrPersonRowField),
		errors.Is(err, engine.ErrCheckboxValue):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
