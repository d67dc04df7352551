package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrNotFound = errors.New("record not found")

	ErrInvalidID = errors.New("invalid record ID format")

	// ErrRejected is returned when the server refuses a document, e.g. a
	// collection validator failing on insert or update.
	ErrRejected = errors.New("record rejected by store")
)

// mongo server code for "Document failed validation"
const codeDocumentValidationFailure = 121

type Timeouts struct {
	Read  time.Duration
	Write time.Duration
}

// Collection is a typed view over one MongoDB collection. T must decode from
// the stored documents and carry an `_id` string field tagged omitempty so
// the server generates the identifier on insert.
type Collection[T any] struct {
	coll     *mongo.Collection
	timeouts Timeouts
}

func NewCollection[T any](db *mongo.Database, name string, timeouts Timeouts) *Collection[T] {
	return &Collection[T]{
		coll:     db.Collection(name),
		timeouts: timeouts,
	}
}

func (c *Collection[T]) Name() string {
	return c.coll.Name()
}

// withTimeout bounds ctx by timeout, or by the caller's deadline when that
// comes first.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	deadline, hasDeadline := ctx.Deadline()
	if !hasDeadline {
		return context.WithTimeout(ctx, timeout)
	}

	remaining := time.Until(deadline)
	if remaining < timeout {
		return context.WithTimeout(ctx, remaining)
	}

	return context.WithTimeout(ctx, timeout)
}

// List returns every document matching filter, ordered by sort when given.
// No match yields an empty, non-nil slice.
func (c *Collection[T]) List(ctx context.Context, filter bson.M, sort bson.D) ([]*T, error) {
	ctx, cancel := withTimeout(ctx, c.timeouts.Read)
	defer cancel()

	if filter == nil {
		filter = bson.M{}
	}
	opts := options.Find()
	if len(sort) > 0 {
		opts.SetSort(sort)
	}

	cursor, err := c.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", c.Name(), err)
	}
	defer cursor.Close(ctx)

	records := make([]*T, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", c.Name(), err)
	}

	return records, nil
}

func (c *Collection[T]) FindByID(ctx context.Context, id string) (*T, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidID, id)
	}

	return c.FindOne(ctx, bson.M{"_id": objectID})
}

func (c *Collection[T]) FindOne(ctx context.Context, filter bson.M) (*T, error) {
	ctx, cancel := withTimeout(ctx, c.timeouts.Read)
	defer cancel()

	var record T
	err := c.coll.FindOne(ctx, filter).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find in %s: %w", c.Name(), err)
	}

	return &record, nil
}

// Insert stores record and returns the generated identifier as hex.
func (c *Collection[T]) Insert(ctx context.Context, record *T) (string, error) {
	ctx, cancel := withTimeout(ctx, c.timeouts.Write)
	defer cancel()

	result, err := c.coll.InsertOne(ctx, record)
	if err != nil {
		return "", c.writeError("insert into", err)
	}

	switch id := result.InsertedID.(type) {
	case primitive.ObjectID:
		return id.Hex(), nil
	case string:
		return id, nil
	default:
		return fmt.Sprint(id), nil
	}
}

// UpdateByID applies $set and returns the document as it is after the update.
func (c *Collection[T]) UpdateByID(ctx context.Context, id string, set bson.M) (*T, error) {
	return c.findOneAndUpdate(ctx, id, bson.M{"$set": set})
}

// IncrementByID applies $inc (and $set when non-empty) in a single atomic
// write and returns the post-update document.
func (c *Collection[T]) IncrementByID(ctx context.Context, id string, inc bson.M, set bson.M) (*T, error) {
	update := bson.M{"$inc": inc}
	if len(set) > 0 {
		update["$set"] = set
	}
	return c.findOneAndUpdate(ctx, id, update)
}

func (c *Collection[T]) findOneAndUpdate(ctx context.Context, id string, update bson.M) (*T, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidID, id)
	}

	ctx, cancel := withTimeout(ctx, c.timeouts.Write)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var record T
	err = c.coll.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, update, opts).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, c.writeError("update in", err)
	}

	return &record, nil
}

func (c *Collection[T]) DeleteByID(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidID, id)
	}

	ctx, cancel := withTimeout(ctx, c.timeouts.Write)
	defer cancel()

	result, err := c.coll.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", c.Name(), err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	return nil
}

func (c *Collection[T]) writeError(op string, err error) error {
	var writeErr mongo.WriteException
	if errors.As(err, &writeErr) {
		for _, we := range writeErr.WriteErrors {
			if we.Code == codeDocumentValidationFailure {
				return fmt.Errorf("%w: %s", ErrRejected, we.Message)
			}
		}
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Code == codeDocumentValidationFailure {
		return fmt.Errorf("%w: %s", ErrRejected, cmdErr.Message)
	}

	return fmt.Errorf("failed to %s %s: %w", op, c.Name(), err)
}

// SetFields converts an update struct into a $set document. Fields must be
// pointers tagged omitempty so that only the ones the caller supplied are
// written.
func SetFields(update any) (bson.M, error) {
	raw, err := bson.Marshal(update)
	if err != nil {
		return nil, fmt.Errorf("failed to encode update: %w", err)
	}

	set := bson.M{}
	if err := bson.Unmarshal(raw, &set); err != nil {
		return nil, fmt.Errorf("failed to decode update: %w", err)
	}

	return set, nil
}
