package repository

import (
	"context"
	"errors"

	"test-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SubmissionRepository keeps one document per test id holding that test's
// submissions in arrival order. Appends go through $push, so question order
// inside a record and record order inside the list are both preserved without
// any read-modify-write cycle.
type SubmissionRepository struct {
	Col *mongo.Collection
}

func NewSubmissionRepository(db *mongo.Database) *SubmissionRepository {
	return &SubmissionRepository{Col: db.Collection("submissions")}
}

// EnsureList creates an empty submission list for the test id if none exists.
func (r *SubmissionRepository) EnsureList(ctx context.Context, testID string) error {
	opts := options.Update().SetUpsert(true)
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": testID},
		bson.M{"$setOnInsert": bson.M{"records": []models.SubmissionRecord{}}}, opts)
	return err
}

func (r *SubmissionRepository) Append(ctx context.Context, testID string, record *models.SubmissionRecord) error {
	opts := options.Update().SetUpsert(true)
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": testID},
		bson.M{"$push": bson.M{"records": record}}, opts)
	return err
}

// FindByTest returns the test's submissions in arrival order, or an empty
// slice when the test id is unknown or has no list yet.
func (r *SubmissionRepository) FindByTest(ctx context.Context, testID string) ([]models.SubmissionRecord, error) {
	var list models.SubmissionList
	err := r.Col.FindOne(ctx, bson.M{"_id": testID}).Decode(&list)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return []models.SubmissionRecord{}, nil
	}
	if err != nil {
		return nil, err
	}
	if list.Records == nil {
		list.Records = []models.SubmissionRecord{}
	}
	return list.Records, nil
}
