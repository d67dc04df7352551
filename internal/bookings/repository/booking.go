package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	mongostore "hoteldesk/pkg/db/mongo"
	"hoteldesk/pkg/model"
)

const (
	CollectionName = "bookings"
)

var (
	ErrNotFound  = mongostore.ErrNotFound
	ErrInvalidID = mongostore.ErrInvalidID
	ErrRejected  = mongostore.ErrRejected
)

type BookingRepository interface {
	FindAll(ctx context.Context) ([]*model.Booking, error)
	Create(ctx context.Context, booking *model.Booking) error
	Update(ctx context.Context, id string, updates *model.BookingUpdate) (*model.Booking, error)
	Delete(ctx context.Context, id string) error
}

type mongoBookingRepository struct {
	collection *mongostore.Collection[model.Booking]
}

func NewMongoBookingRepository(db *mongo.Database, timeouts mongostore.Timeouts) BookingRepository {
	return &mongoBookingRepository{
		collection: mongostore.NewCollection[model.Booking](db, CollectionName, timeouts),
	}
}

// FindAll returns bookings in insertion order.
func (r *mongoBookingRepository) FindAll(ctx context.Context) ([]*model.Booking, error) {
	return r.collection.List(ctx, nil, nil)
}

func (r *mongoBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	booking.ID = ""
	booking.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)

	id, err := r.collection.Insert(ctx, booking)
	if err != nil {
		return err
	}
	booking.ID = id
	return nil
}

func (r *mongoBookingRepository) Update(ctx context.Context, id string, updates *model.BookingUpdate) (*model.Booking, error) {
	set, err := mongostore.SetFields(updates)
	if err != nil {
		return nil, err
	}
	return r.collection.UpdateByID(ctx, id, set)
}

func (r *mongoBookingRepository) Delete(ctx context.Context, id string) error {
	return r.collection.DeleteByID(ctx, id)
}
