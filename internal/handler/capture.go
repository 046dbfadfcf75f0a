package handler

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/safedocs/backend/internal/capture"
)

// CaptureHandler 签名采集与图片上传
// 返回的引用串交由客户端绑定到签名/图片字段
type CaptureHandler struct {
	signatures *capture.SignatureAdapter
	images     *capture.ImageAdapter
	store      *capture.Store
}

func NewCaptureHandler(signatures *capture.SignatureAdapter, images *capture.ImageAdapter, store *capture.Store) *CaptureHandler {
	return &CaptureHandler{signatures: signatures, images: images, store: store}
}

// Signature 接收手绘签名位图
func (h *CaptureHandler) Signature(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ref, err := h.signatures.Capture(c.Request.Context(), data)
	if err != nil {
		if errors.Is(err, capture.ErrEmptyPayload) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "empty signature payload"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ref": ref})
}

// Image 接收实拍照片
func (h *CaptureHandler) Image(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})
		return
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	ref, err := h.images.Upload(c.Request.Context(), data, ext)
	if err != nil {
		if errors.Is(err, capture.ErrEmptyPayload) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "empty image payload"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ref": ref})
}

// Fetch 按引用串取回附件文件
func (h *CaptureHandler) Fetch(c *gin.Context) {
	ref := c.Query("ref")
	path, err := h.store.Resolve(ref)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "attachment not found"})
		return
	}
	c.File(path)
}
