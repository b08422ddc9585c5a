package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bangladeshiit/cms-backend/internal"
)

// AddReviewVideo inserts the review video in the database and returns the
// generated ID.
func (ms *MongoStorage) AddReviewVideo(video *ReviewVideo) (internal.ObjectID, error) {
	ms.keysLock.Lock()
	defer ms.keysLock.Unlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	result, err := ms.reviewVideos.InsertOne(ctx, video)
	if err != nil {
		return internal.NilObjectID, err
	}
	return internal.ObjectID(result.InsertedID.(primitive.ObjectID)), nil
}

// ReviewVideos returns every review video in the database, store-native order.
func (ms *MongoStorage) ReviewVideos() ([]ReviewVideo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	videos := []ReviewVideo{}
	if err := decodeAll(ctx, ms.reviewVideos, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

// DelReviewVideo deletes the review video with the given ID and returns the
// deleted count.
func (ms *MongoStorage) DelReviewVideo(id internal.ObjectID) (int64, error) {
	ms.keysLock.Lock()
	defer ms.keysLock.Unlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	result, err := ms.reviewVideos.DeleteOne(ctx, bson.M{"_id": primitive.ObjectID(id)})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
