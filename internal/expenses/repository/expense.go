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
	CollectionName = "expenses"
)

var (
	ErrNotFound  = mongostore.ErrNotFound
	ErrInvalidID = mongostore.ErrInvalidID
	ErrRejected  = mongostore.ErrRejected
)

var newestFirst = bson.D{{Key: "date", Value: -1}}

type ExpenseRepository interface {
	FindAll(ctx context.Context) ([]*model.Expense, error)
	// FindByDateRange returns records dated within [start, end], newest first.
	FindByDateRange(ctx context.Context, start, end time.Time) ([]*model.Expense, error)
	Create(ctx context.Context, expense *model.Expense) error
	Update(ctx context.Context, id string, updates *model.ExpenseUpdate) (*model.Expense, error)
	Delete(ctx context.Context, id string) error
}

type mongoExpenseRepository struct {
	collection *mongostore.Collection[model.Expense]
}

func NewMongoExpenseRepository(db *mongo.Database, timeouts mongostore.Timeouts) ExpenseRepository {
	return &mongoExpenseRepository{
		collection: mongostore.NewCollection[model.Expense](db, CollectionName, timeouts),
	}
}

func (r *mongoExpenseRepository) FindAll(ctx context.Context) ([]*model.Expense, error) {
	return r.collection.List(ctx, nil, newestFirst)
}

func (r *mongoExpenseRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]*model.Expense, error) {
	filter := bson.M{"date": bson.M{"$gte": start, "$lte": end}}
	return r.collection.List(ctx, filter, newestFirst)
}

func (r *mongoExpenseRepository) Create(ctx context.Context, expense *model.Expense) error {
	expense.ID = ""
	expense.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)

	id, err := r.collection.Insert(ctx, expense)
	if err != nil {
		return err
	}
	expense.ID = id
	return nil
}

func (r *mongoExpenseRepository) Update(ctx context.Context, id string, updates *model.ExpenseUpdate) (*model.Expense, error) {
	set, err := mongostore.SetFields(updates)
	if err != nil {
		return nil, err
	}
	return r.collection.UpdateByID(ctx, id, set)
}

func (r *mongoExpenseRepository) Delete(ctx context.Context, id string) error {
	return r.collection.DeleteByID(ctx, id)
}
