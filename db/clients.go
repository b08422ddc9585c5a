package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bangladeshiit/cms-backend/internal"
)

// AddClient inserts the client in the database and returns the generated ID.
func (ms *MongoStorage) AddClient(client *Client) (internal.ObjectID, error) {
	ms.keysLock.Lock()
	defer ms.keysLock.Unlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	result, err := ms.clients.InsertOne(ctx, client)
	if err != nil {
		return internal.NilObjectID, err
	}
	return internal.ObjectID(result.InsertedID.(primitive.ObjectID)), nil
}

// Clients returns every client in the database, store-native order.
func (ms *MongoStorage) Clients() ([]Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	clients := []Client{}
	if err := decodeAll(ctx, ms.clients, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// DelClient deletes the client with the given ID and returns the deleted count.
func (ms *MongoStorage) DelClient(id internal.ObjectID) (int64, error) {
	ms.keysLock.Lock()
	defer ms.keysLock.Unlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	result, err := ms.clients.DeleteOne(ctx, bson.M{"_id": primitive.ObjectID(id)})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
