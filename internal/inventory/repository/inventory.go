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
	CollectionName = "inventories"
)

var (
	ErrNotFound  = mongostore.ErrNotFound
	ErrInvalidID = mongostore.ErrInvalidID
	ErrRejected  = mongostore.ErrRejected
)

type InventoryRepository interface {
	FindAll(ctx context.Context) ([]*model.InventoryItem, error)
	FindByName(ctx context.Context, itemName string) (*model.InventoryItem, error)
	Create(ctx context.Context, item *model.InventoryItem) error
	// AddQuantity atomically adds delta to the stored quantity and stamps
	// uploaded_time, returning the item after the write.
	AddQuantity(ctx context.Context, id string, delta int, uploadedAt time.Time) (*model.InventoryItem, error)
	Update(ctx context.Context, id string, updates *model.InventoryUpdate, uploadedAt time.Time) (*model.InventoryItem, error)
	Delete(ctx context.Context, id string) error
}

type mongoInventoryRepository struct {
	collection *mongostore.Collection[model.InventoryItem]
}

func NewMongoInventoryRepository(db *mongo.Database, timeouts mongostore.Timeouts) InventoryRepository {
	return &mongoInventoryRepository{
		collection: mongostore.NewCollection[model.InventoryItem](db, CollectionName, timeouts),
	}
}

func (r *mongoInventoryRepository) FindAll(ctx context.Context) ([]*model.InventoryItem, error) {
	return r.collection.List(ctx, nil, nil)
}

func (r *mongoInventoryRepository) FindByName(ctx context.Context, itemName string) (*model.InventoryItem, error) {
	return r.collection.FindOne(ctx, bson.M{"item_name": itemName})
}

func (r *mongoInventoryRepository) Create(ctx context.Context, item *model.InventoryItem) error {
	item.ID = ""

	id, err := r.collection.Insert(ctx, item)
	if err != nil {
		return err
	}
	item.ID = id
	return nil
}

func (r *mongoInventoryRepository) AddQuantity(ctx context.Context, id string, delta int, uploadedAt time.Time) (*model.InventoryItem, error) {
	return r.collection.IncrementByID(ctx, id,
		bson.M{"quantity": delta},
		bson.M{"uploaded_time": uploadedAt},
	)
}

func (r *mongoInventoryRepository) Update(ctx context.Context, id string, updates *model.InventoryUpdate, uploadedAt time.Time) (*model.InventoryItem, error) {
	set, err := mongostore.SetFields(updates)
	if err != nil {
		return nil, err
	}
	set["uploaded_time"] = uploadedAt
	return r.collection.UpdateByID(ctx, id, set)
}

func (r *mongoInventoryRepository) Delete(ctx context.Context, id string) error {
	return r.collection.DeleteByID(ctx, id)
}
