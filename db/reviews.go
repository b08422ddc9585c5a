package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bangladeshiit/cms-backend/internal"
)

// AddReview inserts the review in the database and returns the generated ID.
func (ms *MongoStorage) AddReview(review *Review) (internal.ObjectID, error) {
	ms.keysLock.Lock()
	defer ms.keysLock.Unlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	result, err := ms.reviews.InsertOne(ctx, review)
	if err != nil {
		return internal.NilObjectID, err
	}
	return internal.ObjectID(result.InsertedID.(primitive.ObjectID)), nil
}

// Reviews returns every review in the database, store-native order.
func (ms *MongoStorage) Reviews() ([]Review, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	reviews := []Review{}
	if err := decodeAll(ctx, ms.reviews, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// DelReview deletes the review with the given ID and returns the deleted count.
func (ms *MongoStorage) DelReview(id internal.ObjectID) (int64, error) {
	ms.keysLock.Lock()
	defer ms.keysLock.Unlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	result, err := ms.reviews.DeleteOne(ctx, bson.M{"_id": primitive.ObjectID(id)})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
