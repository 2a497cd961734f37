package models

import "time"

// QuestionResult is the grading outcome for one question position. Correct is
// nil for questions that are not auto-graded (long answers, unknown types).
type QuestionResult struct {
	Index    int     `bson:"index" json:"index"`
	Type     string  `bson:"type" json:"type"`
	Marks    float64 `bson:"marks" json:"marks"`
	Response any     `bson:"response" json:"response"`
	Correct  *bool   `bson:"correct" json:"correct"`
	Awarded  float64 `bson:"awarded" json:"awarded"`
}

type SubmissionRecord struct {
	StudentName string           `bson:"student_name" json:"studentName"`
	StudentID   string           `bson:"student_id" json:"studentId"`
	TestID      string           `bson:"test_id" json:"testId"`
	Score       float64          `bson:"score" json:"score"`
	MaxAuto     float64          `bson:"max_auto" json:"maxAuto"`
	StartedAt   time.Time        `bson:"started_at" json:"startedAt"`
	SubmittedAt time.Time        `bson:"submitted_at" json:"submittedAt"`
	Answers     []any            `bson:"answers" json:"answers"`
	Results     []QuestionResult `bson:"results" json:"results"`
}

// SubmissionList is the stored per-test document: all submissions for one
// test id, in arrival order. Records are only ever appended.
type SubmissionList struct {
	TestID  string             `bson:"_id" json:"testId"`
	Records []SubmissionRecord `bson:"records" json:"records"`
}
