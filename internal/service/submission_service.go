package service

import (
	"context"
	"time"

	"test-service/internal/grader"
	"test-service/internal/models"
)

// SubmissionStore is the persistence contract for per-test submission lists.
// Append preserves arrival order; FindByTest returns an empty slice for an
// unknown test id.
type SubmissionStore interface {
	EnsureList(ctx context.Context, testID string) error
	Append(ctx context.Context, testID string, record *models.SubmissionRecord) error
	FindByTest(ctx context.Context, testID string) ([]models.SubmissionRecord, error)
}

type SubmitRequest struct {
	StudentName string
	StudentID   string
	Answers     []any
	StartedAt   time.Time
	SubmittedAt time.Time
}

type SubmissionService struct {
	Tests TestStore
	Subs  SubmissionStore
}

func NewSubmissionService(tests TestStore, subs SubmissionStore) *SubmissionService {
	return &SubmissionService{Tests: tests, Subs: subs}
}

// Submit grades the answers against the stored test and appends the resulting
// record to that test's submission list. An unknown test id fails with
// ErrTestNotFound before anything is written. Repeat submissions by the same
// student are kept as independent records.
func (s *SubmissionService) Submit(ctx context.Context, testID string, req SubmitRequest) (*models.SubmissionRecord, error) {
	test, err := s.Tests.FindByID(ctx, testID)
	if err != nil {
		return nil, err
	}
	if test == nil {
		return nil, ErrTestNotFound
	}

	score, maxAuto, results := grader.Grade(test.Questions, req.Answers)

	record := &models.SubmissionRecord{
		StudentName: req.StudentName,
		StudentID:   req.StudentID,
		TestID:      testID,
		Score:       score,
		MaxAuto:     maxAuto,
		StartedAt:   req.StartedAt,
		SubmittedAt: req.SubmittedAt,
		Answers:     req.Answers,
		Results:     results,
	}
	if err := s.Subs.Append(ctx, testID, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *SubmissionService) ListSubmissions(ctx context.Context, testID string) ([]models.SubmissionRecord, error) {
	return s.Subs.FindByTest(ctx, testID)
}
