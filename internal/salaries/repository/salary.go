package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	mongostore "hoteldesk/pkg/db/mongo"
	"hoteldesk/pkg/model"
)

const (
	CollectionName = "salaries"
)

var (
	ErrNotFound  = mongostore.ErrNotFound
	ErrInvalidID = mongostore.ErrInvalidID
	ErrRejected  = mongostore.ErrRejected
)

var newestFirst = bson.D{{Key: "date", Value: -1}}

type SalaryRepository interface {
	FindAll(ctx context.Context) ([]*model.Salary, error)
	// FindByDateRange returns records dated within [start, end], newest first.
	FindByDateRange(ctx context.Context, start, end time.Time) ([]*model.Salary, error)
	Create(ctx context.Context, salary *model.Salary) error
	Update(ctx context.Context, id string, updates *model.SalaryUpdate) (*model.Salary, error)
	Delete(ctx context.Context, id string) error
}

type mongoSalaryRepository struct {
	collection *mongostore.Collection[model.Salary]
}

func NewMongoSalaryRepository(db *mongo.Database, timeouts mongostore.Timeouts) SalaryRepository {
	return &mongoSalaryRepository{
		collection: mongostore.NewCollection[model.Salary](db, CollectionName, timeouts),
	}
}

func (r *mongoSalaryRepository) FindAll(ctx context.Context) ([]*model.Salary, error) {
	return r.collection.List(ctx, nil, newestFirst)
}

func (r *mongoSalaryRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]*model.Salary, error) {
	filter := bson.M{"date": bson.M{"$gte": start, "$lte": end}}
	return r.collection.List(ctx, filter, newestFirst)
}

func (r *mongoSalaryRepository) Create(ctx context.Context, salary *model.Salary) error {
	salary.ID = ""
	salary.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)

	id, err := r.collection.Insert(ctx, salary)
	if err != nil {
		return err
	}
	salary.ID = id
	return nil
}

func (r *mongoSalaryRepository) Update(ctx context.Context, id string, updates *model.SalaryUpdate) (*model.Salary, error) {
	set, err := mongostore.SetFields(updates)
	if err != nil {
		return nil, err
	}
	return r.collection.UpdateByID(ctx, id, set)
}

func (r *mongoSalaryRepository) Delete(ctx context.Context, id string) error {
	return r.collection.DeleteByID(ctx, id)
}
