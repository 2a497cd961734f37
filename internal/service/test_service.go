package service

import (
	"context"

	"test-service/internal/models"
)

// TestStore is the persistence contract for test definitions. FindByID
// reports an absent test as (nil, nil); any error is a storage failure.
type TestStore interface {
	Upsert(ctx context.Context, test *models.Test) error
	FindByID(ctx context.Context, id string) (*models.Test, error)
}

type TestService struct {
	Tests TestStore
	Subs  SubmissionStore
}

func NewTestService(tests TestStore, subs SubmissionStore) *TestService {
	return &TestService{Tests: tests, Subs: subs}
}

// UpsertTest fully overwrites the test under its id and makes sure a
// submission list exists for it.
func (s *TestService) UpsertTest(ctx context.Context, test *models.Test) error {
	if test.TestID == "" || test.Title == "" || test.Duration == 0 || test.Questions == nil {
		return ErrInvalidPayload
	}
	if err := s.Tests.Upsert(ctx, test); err != nil {
		return err
	}
	return s.Subs.EnsureList(ctx, test.TestID)
}

func (s *TestService) GetTest(ctx context.Context, id string) (*models.Test, error) {
	test, err := s.Tests.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if test == nil {
		return nil, ErrTestNotFound
	}
	return test, nil
}
