package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// DefaultMongoCollection is the collection barriers are stored in unless
// overridden.
const DefaultMongoCollection = "idempotency_barriers"

// MongoStore implements Store on MongoDB. The barrier key doubles as the
// document _id, so the collection's primary index arbitrates concurrent
// acquisitions: a racing upsert on a live document fails with a duplicate
// key error, which maps to a conflict.
type MongoStore struct {
	collection *mongo.Collection
}

type mongoBarrier struct {
	Key       string    `bson:"_id"`
	Operation string    `bson:"operation"`
	Token     string    `bson:"token"`
	Result    []byte    `bson:"result,omitempty"`
	ExpiresAt time.Time `bson:"expires_at"`
	CreatedAt time.Time `bson:"created_at"`
}

// NewMongoStore creates a barrier store backed by the given database.
func NewMongoStore(db *mongo.Database, collection string) (*MongoStore, error) {
	if db == nil {
		return nil, ErrClientNil
	}
	if collection == "" {
		collection = DefaultMongoCollection
	}

	return &MongoStore{
		collection: db.Collection(collection),
	}, nil
}

func (ms *MongoStore) Acquire(ctx context.Context, key, operation string, ttl time.Duration) (Acquisition, error) {
	if err := validateAcquire(key, operation, ttl); err != nil {
		return Acquisition{}, err
	}

	now := time.Now().UTC()

	// Matches only an expired document; a missing one triggers the
	// upsert insert, and a live one triggers a duplicate key error.
	filter := bson.M{
		"_id":        key,
		"expires_at": bson.M{"$lte": now},
	}
	update := bson.M{
		"$set": bson.M{
			"operation":  operation,
			"token":      uuid.New().String(),
			"expires_at": now.Add(ttl),
			"created_at": now,
		},
		"$unset": bson.M{"result": ""},
	}

	_, err := ms.collection.UpdateOne(ctx, filter, update, options.UpdateOne().SetUpsert(true))
	if err == nil {
		return Acquisition{Acquired: true}, nil
	}
	if !mongo.IsDuplicateKeyError(err) {
		return Acquisition{}, err
	}

	var existing mongoBarrier
	err = ms.collection.FindOne(ctx, bson.M{
		"_id":        key,
		"expires_at": bson.M{"$gt": now},
	}).Decode(&existing)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Acquisition{Acquired: false}, nil
		}
		return Acquisition{}, err
	}

	return Acquisition{Acquired: false, Result: existing.Result}, nil
}

func (ms *MongoStore) Complete(ctx context.Context, key string, result json.RawMessage) error {
	if key == "" {
		return ErrKeyEmpty
	}

	res, err := ms.collection.UpdateOne(ctx,
		bson.M{
			"_id":        key,
			"expires_at": bson.M{"$gt": time.Now().UTC()},
		},
		bson.M{"$set": bson.M{"result": []byte(result)}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrBarrierNotFound
	}

	return nil
}
