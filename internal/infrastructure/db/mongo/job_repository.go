package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cv360/marketplace/internal/core/domain"
)

const jobCollection = "jobs"

type MongoJobRepository struct {
	coll *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *MongoJobRepository {
	return &MongoJobRepository{coll: db.Collection(jobCollection)}
}

type mongoJob struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	EmployerID      string             `bson:"employer_id"`
	EmployerName    string             `bson:"employer_name"`
	Title           string             `bson:"title"`
	Description     string             `bson:"description"`
	Location        string             `bson:"location"`
	SalaryRange     string             `bson:"salary_range"`
	JobType         string             `bson:"job_type"`
	Requirements    string             `bson:"requirements,omitempty"`
	IsInternational bool               `bson:"is_international"`
	IsApproved      bool               `bson:"is_approved"`
	Deadline        *time.Time         `bson:"deadline,omitempty"`
	CreatedAt       int64              `bson:"created_at"`
}

func (r *MongoJobRepository) Create(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	doc := mongoJob{
		EmployerID:      job.EmployerID,
		EmployerName:    job.EmployerName,
		Title:           job.Title,
		Description:     job.Description,
		Location:        job.Location,
		SalaryRange:     job.SalaryRange,
		JobType:         job.JobType,
		Requirements:    job.Requirements,
		IsInternational: job.IsInternational,
		IsApproved:      job.IsApproved,
		Deadline:        job.Deadline,
		CreatedAt:       job.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert job: %w", err)
	}

	created := *job
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoJobRepository) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrJobNotFound
	}

	var mj mongoJob
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mj); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	return mj.toDomain(), nil
}

func (r *MongoJobRepository) FindByEmployer(ctx context.Context, employerID string) ([]domain.Job, error) {
	return r.find(ctx, bson.M{"employer_id": employerID})
}

func (r *MongoJobRepository) FindApproved(ctx context.Context) ([]domain.Job, error) {
	return r.find(ctx, bson.M{"is_approved": true})
}

func (r *MongoJobRepository) find(ctx context.Context, filter bson.M) ([]domain.Job, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer cur.Close(ctx)

	var jobs []domain.Job
	for cur.Next(ctx) {
		var mj mongoJob
		if err := cur.Decode(&mj); err != nil {
			return nil, fmt.Errorf("decode job: %w", err)
		}
		jobs = append(jobs, *mj.toDomain())
	}
	return jobs, cur.Err()
}

func (r *MongoJobRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count jobs: %w", err)
	}
	return n, nil
}

func (r *MongoJobRepository) CountUnapproved(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"is_approved": false})
	if err != nil {
		return 0, fmt.Errorf("count unapproved jobs: %w", err)
	}
	return n, nil
}

func (mj *mongoJob) toDomain() *domain.Job {
	return &domain.Job{
		ID:              mj.ID.Hex(),
		EmployerID:      mj.EmployerID,
		EmployerName:    mj.EmployerName,
		Title:           mj.Title,
		Description:     mj.Description,
		Location:        mj.Location,
		SalaryRange:     mj.SalaryRange,
		JobType:         mj.JobType,
		Requirements:    mj.Requirements,
		IsInternational: mj.IsInternational,
		IsApproved:      mj.IsApproved,
		Deadline:        mj.Deadline,
		CreatedAt:       unixToTime(mj.CreatedAt),
	}
}
