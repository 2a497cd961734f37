package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"test-service/internal/models"
)

// In-memory stores standing in for the mongo repositories.

type memTestStore struct {
	mu    sync.RWMutex
	tests map[string]*models.Test
}

func newMemTestStore() *memTestStore {
	return &memTestStore{tests: map[string]*models.Test{}}
}

func (m *memTestStore) Upsert(ctx context.Context, test *models.Test) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tests[test.TestID] = test
	return nil
}

func (m *memTestStore) FindByID(ctx context.Context, id string) (*models.Test, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tests[id], nil
}

type memSubmissionStore struct {
	mu    sync.Mutex
	lists map[string][]models.SubmissionRecord
}

func newMemSubmissionStore() *memSubmissionStore {
	return &memSubmissionStore{lists: map[string][]models.SubmissionRecord{}}
}

func (m *memSubmissionStore) EnsureList(ctx context.Context, testID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.lists[testID]; !ok {
		m.lists[testID] = []models.SubmissionRecord{}
	}
	return nil
}

func (m *memSubmissionStore) Append(ctx context.Context, testID string, record *models.SubmissionRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists[testID] = append(m.lists[testID], *record)
	return nil
}

func (m *memSubmissionStore) FindByTest(ctx context.Context, testID string) ([]models.SubmissionRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	records, ok := m.lists[testID]
	if !ok {
		return []models.SubmissionRecord{}, nil
	}
	return records, nil
}

func sampleTest() *models.Test {
	return &models.Test{
		TestID:   "t1",
		Title:    "Geography",
		Duration: 30,
		Questions: []models.Question{
			{Type: "mcq", Marks: 5, Answer: "A"},
			{Type: "fill", Marks: 3, Answer: "cat"},
		},
	}
}

func TestSubmitUnknownTest(t *testing.T) {
	tests := newMemTestStore()
	subs := newMemSubmissionStore()
	svc := NewSubmissionService(tests, subs)

	record, err := svc.Submit(context.Background(), "missing", SubmitRequest{
		StudentName: "Ann",
		StudentID:   "s1",
		Answers:     []any{"A"},
	})
	if !errors.Is(err, ErrTestNotFound) {
		t.Fatalf("expected ErrTestNotFound, got %v", err)
	}
	if record != nil {
		t.Errorf("expected no record on failure, got %+v", record)
	}
	if len(subs.lists) != 0 {
		t.Errorf("expected no side effects, lists=%v", subs.lists)
	}
}

func TestSubmitAssemblesRecord(t *testing.T) {
	tests := newMemTestStore()
	subs := newMemSubmissionStore()
	tests.Upsert(context.Background(), sampleTest())
	svc := NewSubmissionService(tests, subs)

	started := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	submitted := started.Add(25 * time.Minute)

	record, err := svc.Submit(context.Background(), "t1", SubmitRequest{
		StudentName: "Ann",
		StudentID:   "s1",
		Answers:     []any{"A", "Cat"},
		StartedAt:   started,
		SubmittedAt: submitted,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Score != 8 || record.MaxAuto != 8 {
		t.Errorf("expected score=8 maxAuto=8, got %v/%v", record.Score, record.MaxAuto)
	}
	if record.StudentName != "Ann" || record.StudentID != "s1" || record.TestID != "t1" {
		t.Errorf("identity fields wrong: %+v", record)
	}
	if !record.StartedAt.Equal(started) || !record.SubmittedAt.Equal(submitted) {
		t.Errorf("timestamps not recorded as supplied: %v %v", record.StartedAt, record.SubmittedAt)
	}
	if len(record.Answers) != 2 || record.Answers[0] != "A" {
		t.Errorf("raw answers not preserved: %v", record.Answers)
	}
	if len(record.Results) != 2 {
		t.Errorf("expected 2 results, got %d", len(record.Results))
	}
}

func TestSubmitKeepsArrivalOrderAndDuplicates(t *testing.T) {
	tests := newMemTestStore()
	subs := newMemSubmissionStore()
	tests.Upsert(context.Background(), sampleTest())
	svc := NewSubmissionService(tests, subs)

	for _, student := range []string{"s1", "s2", "s1"} {
		_, err := svc.Submit(context.Background(), "t1", SubmitRequest{
			StudentID: student,
			Answers:   []any{"A"},
		})
		if err != nil {
			t.Fatalf("submit failed for %s: %v", student, err)
		}
	}

	records, err := svc.ListSubmissions(context.Background(), "t1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i, want := range []string{"s1", "s2", "s1"} {
		if records[i].StudentID != want {
			t.Errorf("record %d: expected student %s, got %s", i, want, records[i].StudentID)
		}
	}
}

func TestListSubmissionsUnknownTest(t *testing.T) {
	svc := NewSubmissionService(newMemTestStore(), newMemSubmissionStore())

	records, err := svc.ListSubmissions(context.Background(), "missing")
	if err != nil {
		t.Fatalf("expected empty list, got error %v", err)
	}
	if records == nil || len(records) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", records)
	}
}

type failingTestStore struct{}

func (failingTestStore) Upsert(ctx context.Context, test *models.Test) error {
	return errors.New("write failed")
}

func (failingTestStore) FindByID(ctx context.Context, id string) (*models.Test, error) {
	return nil, errors.New("read failed")
}

func TestSubmitSurfacesStorageErrors(t *testing.T) {
	svc := NewSubmissionService(failingTestStore{}, newMemSubmissionStore())

	_, err := svc.Submit(context.Background(), "t1", SubmitRequest{})
	if err == nil || errors.Is(err, ErrTestNotFound) {
		t.Fatalf("expected a storage error, got %v", err)
	}
}
