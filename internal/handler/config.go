package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/safedocs/backend/config"
)

// ConfigHandler 运行配置查询
type ConfigHandler struct {
	cfg *config.Config
}

func NewConfigHandler(cfg *config.Config) *ConfigHandler {
	return &ConfigHandler{cfg: cfg}
}

// Get 返回非敏感的运行配置
func (h *ConfigHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"server_mode":    h.cfg.Server.Mode,
		"database_type":  h.cfg.Database.Type,
		"export_workers": h.cfg.Export.Workers,
	})
}
