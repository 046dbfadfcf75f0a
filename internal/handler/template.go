package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/safedocs/backend/internal/service"
)

// TemplateHandler 模板 Handler
type TemplateHandler struct {
	templateService *service.TemplateService
}

func NewTemplateHandler(templateService *service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

// List 获取模板列表
func (h *TemplateHandler) List(c *gin.Context) {
	templates, err := h.templateService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": templates})
}

// Get 获取模板详情（含字段目录）
func (h *TemplateHandler) Get(c *gin.Context) {
	detail, err := h.templateService.GetByKind(c.Param("kind"))
	if err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "template not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": detail})
}
