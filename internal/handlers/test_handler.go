package handlers

import (
	"context"
	"errors"
	"net/http"

	"test-service/internal/models"
	"test-service/internal/service"

	"github.com/gin-gonic/gin"
)

type TestHandler struct {
	Service *service.TestService
}

func NewTestHandler(s *service.TestService) *TestHandler {
	return &TestHandler{Service: s}
}

type upsertTestRequest struct {
	TestID    string            `json:"testId" binding:"required"`
	Title     string            `json:"title" binding:"required"`
	Duration  float64           `json:"duration" binding:"required"`
	Questions []models.Question `json:"questions" binding:"required"`
}

func (h *TestHandler) UpsertTest(c *gin.Context) {
	var req upsertTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}
	test := &models.Test{
		TestID:    req.TestID,
		Title:     req.Title,
		Duration:  req.Duration,
		Questions: req.Questions,
	}
	if err := h.Service.UpsertTest(context.Background(), test); err != nil {
		if errors.Is(err, service.ErrInvalidPayload) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "testId": req.TestID})
}

func (h *TestHandler) GetTest(c *gin.Context) {
	id := c.Param("id")
	test, err := h.Service.GetTest(context.Background(), id)
	if err != nil {
		if errors.Is(err, service.ErrTestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Test not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, test)
}
