package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bangladeshiit/cms-backend/internal"
)

// AddFreeCourse inserts the free course in the database and returns the
// generated ID.
func (ms *MongoStorage) AddFreeCourse(course *FreeCourse) (internal.ObjectID, error) {
	ms.keysLock.Lock()
	defer ms.keysLock.Unlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	result, err := ms.freeCourses.InsertOne(ctx, course)
	if err != nil {
		return internal.NilObjectID, err
	}
	return internal.ObjectID(result.InsertedID.(primitive.ObjectID)), nil
}

// FreeCourses returns every free course in the database, store-native order.
func (ms *MongoStorage) FreeCourses() ([]FreeCourse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	courses := []FreeCourse{}
	if err := decodeAll(ctx, ms.freeCourses, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// FreeCourse returns the free course with the given ID, or ErrNotFound.
func (ms *MongoStorage) FreeCourse(id internal.ObjectID) (*FreeCourse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	result := ms.freeCourses.FindOne(ctx, bson.M{"_id": primitive.ObjectID(id)})
	course := &FreeCourse{}
	if err := result.Decode(course); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return course, nil
}

// DelFreeCourse deletes the free course with the given ID and returns the
// deleted count.
func (ms *MongoStorage) DelFreeCourse(id internal.ObjectID) (int64, error) {
	ms.keysLock.Lock()
	defer ms.keysLock.Unlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	result, err := ms.freeCourses.DeleteOne(ctx, bson.M{"_id": primitive.ObjectID(id)})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
