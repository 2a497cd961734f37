package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"test-service/internal/service"

	"github.com/gin-gonic/gin"
)

type SubmissionHandler struct {
	Service *service.SubmissionService
}

func NewSubmissionHandler(s *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{Service: s}
}

type submitRequest struct {
	StudentName string    `json:"studentName"`
	StudentID   string    `json:"studentId"`
	Answers     []any     `json:"answers"`
	StartedAt   time.Time `json:"startedAt"`
	SubmittedAt time.Time `json:"submittedAt"`
}

func (h *SubmissionHandler) Submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	record, err := h.Service.Submit(context.Background(), c.Param("id"), service.SubmitRequest{
		StudentName: req.StudentName,
		StudentID:   req.StudentID,
		Answers:     req.Answers,
		StartedAt:   req.StartedAt,
		SubmittedAt: req.SubmittedAt,
	})
	if err != nil {
		if errors.Is(err, service.ErrTestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Test not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"score":   record.Score,
		"maxAuto": record.MaxAuto,
		"results": record.Results,
	})
}

func (h *SubmissionHandler) ListSubmissions(c *gin.Context) {
	records, err := h.Service.ListSubmissions(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}
