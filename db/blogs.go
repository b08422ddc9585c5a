package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bangladeshiit/cms-backend/internal"
)

// AddBlog inserts the blog in the database and returns the generated ID.
func (ms *MongoStorage) AddBlog(blog *Blog) (internal.ObjectID, error) {
	ms.keysLock.Lock()
	defer ms.keysLock.Unlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	result, err := ms.blogs.InsertOne(ctx, blog)
	if err != nil {
		return internal.NilObjectID, err
	}
	return internal.ObjectID(result.InsertedID.(primitive.ObjectID)), nil
}

// Blogs returns every blog in the database, store-native order.
func (ms *MongoStorage) Blogs() ([]Blog, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	blogs := []Blog{}
	if err := decodeAll(ctx, ms.blogs, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

// Blog returns the blog with the given ID, or ErrNotFound.
func (ms *MongoStorage) Blog(id internal.ObjectID) (*Blog, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	result := ms.blogs.FindOne(ctx, bson.M{"_id": primitive.ObjectID(id)})
	blog := &Blog{}
	if err := result.Decode(blog); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return blog, nil
}

// DelBlog deletes the blog with the given ID and returns the deleted count.
func (ms *MongoStorage) DelBlog(id internal.ObjectID) (int64, error) {
	ms.keysLock.Lock()
	defer ms.keysLock.Unlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	result, err := ms.blogs.DeleteOne(ctx, bson.M{"_id": primitive.ObjectID(id)})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
