package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cv360/marketplace/internal/core/domain"
)

const applicationCollection = "applications"

// MongoApplicationRepository persists job applications. Application IDs
// are generated by the service (uuid), not by Mongo, so _id is a string.
type MongoApplicationRepository struct {
	coll *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) *MongoApplicationRepository {
	return &MongoApplicationRepository{coll: db.Collection(applicationCollection)}
}

type mongoApplication struct {
	ID        string `bson:"_id"`
	JobID     string `bson:"job_id"`
	WorkerID  string `bson:"worker_id"`
	Status    string `bson:"status"`
	Message   string `bson:"message,omitempty"`
	AppliedAt int64  `bson:"applied_at"`
}

func (r *MongoApplicationRepository) Create(ctx context.Context, application *domain.Application) error {
	doc := mongoApplication{
		ID:        application.ID,
		JobID:     application.JobID,
		WorkerID:  application.WorkerID,
		Status:    string(application.Status),
		Message:   application.Message,
		AppliedAt: application.AppliedAt.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAlreadyApplied
		}
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

func (r *MongoApplicationRepository) Exists(ctx context.Context, jobID, workerID string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"job_id": jobID, "worker_id": workerID})
	if err != nil {
		return false, fmt.Errorf("check application: %w", err)
	}
	return n > 0, nil
}

func (r *MongoApplicationRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count applications: %w", err)
	}
	return n, nil
}
