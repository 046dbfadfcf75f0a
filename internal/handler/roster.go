package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/safedocs/backend/internal/service"
)

// RosterHandler 名册 Handler，只读
type RosterHandler struct {
	rosterService *service.RosterService
}

func NewRosterHandler(rosterService *service.RosterService) *RosterHandler {
	return &RosterHandler{rosterService: rosterService}
}

func (h *RosterHandler) Jobs(c *gin.Context) {
	jobs, err := h.rosterService.Jobs()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": jobs})
}

func (h *RosterHandler) People(c *gin.Context) {
	people, err := h.rosterService.People()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": people})
}

func (h *RosterHandler) Locations(c *gin.Context) {
	locations, err := h.rosterService.Locations()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": locations})
}

func (h *RosterHandler) Categories(c *gin.Context) {
	categories, err := h.rosterService.Categories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": categories})
}
