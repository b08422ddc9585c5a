package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bangladeshiit/cms-backend/internal"
)

// AddEnrollment inserts the enrollment in the database and returns the
// generated ID.
func (ms *MongoStorage) AddEnrollment(enrollment *Enrollment) (internal.ObjectID, error) {
	ms.keysLock.Lock()
	defer ms.keysLock.Unlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	result, err := ms.enrollments.InsertOne(ctx, enrollment)
	if err != nil {
		return internal.NilObjectID, err
	}
	return internal.ObjectID(result.InsertedID.(primitive.ObjectID)), nil
}

// Enrollments returns the enrollments in the database. When email is not
// empty, the result is scoped to the documents whose email field matches
// exactly (case-sensitive, no filter DSL).
func (ms *MongoStorage) Enrollments(email string) ([]Enrollment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	filter := bson.D{}
	if email != "" {
		filter = bson.D{{Key: "email", Value: email}}
	}
	cur, err := ms.enrollments.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()
	enrollments := []Enrollment{}
	if err := cur.All(ctx, &enrollments); err != nil {
		return nil, err
	}
	return enrollments, nil
}

// DelEnrollment deletes the enrollment with the given ID and returns the
// deleted count.
func (ms *MongoStorage) DelEnrollment(id internal.ObjectID) (int64, error) {
	ms.keysLock.Lock()
	defer ms.keysLock.Unlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	result, err := ms.enrollments.DeleteOne(ctx, bson.M{"_id": primitive.ObjectID(id)})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
