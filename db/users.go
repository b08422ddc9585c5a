package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bangladeshiit/cms-backend/internal"
)

// AddUser inserts the user in the database and returns the generated ID. If a
// user with the same email already exists it returns ErrAlreadyExists, both
// when the pre-check finds the document and when the unique index on email
// rejects the insert (two concurrent submissions can both pass the check).
func (ms *MongoStorage) AddUser(user *User) (internal.ObjectID, error) {
	if user.Email == "" {
		return internal.NilObjectID, ErrInvalidData
	}
	ms.keysLock.Lock()
	defer ms.keysLock.Unlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	// check if a user with the same email already exists
	count, err := ms.users.CountDocuments(ctx, bson.M{"email": user.Email})
	if err != nil {
		return internal.NilObjectID, err
	}
	if count > 0 {
		return internal.NilObjectID, ErrAlreadyExists
	}
	result, err := ms.users.InsertOne(ctx, user)
	if err != nil {
		if isDuplicateKeyError(err) {
			return internal.NilObjectID, ErrAlreadyExists
		}
		return internal.NilObjectID, err
	}
	return internal.ObjectID(result.InsertedID.(primitive.ObjectID)), nil
}

// Users returns every user in the database, store-native order.
func (ms *MongoStorage) Users() ([]User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	users := []User{}
	if err := decodeAll(ctx, ms.users, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UserByEmail returns the user with the given email. If the user doesn't
// exist, it returns ErrNotFound.
func (ms *MongoStorage) UserByEmail(email string) (*User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result := ms.users.FindOne(ctx, bson.M{"email": email})
	user := &User{}
	if err := result.Decode(user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// UserRoleByEmail returns the stored role of the user with the given email,
// which may be empty if the user never got one assigned. If no user has that
// email, it returns ErrNotFound.
func (ms *MongoStorage) UserRoleByEmail(email string) (UserRole, error) {
	user, err := ms.UserByEmail(email)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

// SetUserRole sets the role of the user with the given ID and returns the
// modified count, which is zero when no user has that ID.
func (ms *MongoStorage) SetUserRole(id internal.ObjectID, role UserRole) (int64, error) {
	ms.keysLock.Lock()
	defer ms.keysLock.Unlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	updateDoc := bson.M{"$set": bson.M{"role": role}}
	result, err := ms.users.UpdateOne(ctx, bson.M{"_id": primitive.ObjectID(id)}, updateDoc)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

// DelUser deletes the user with the given ID and returns the deleted count.
// Deleting a non-existent ID is not an error, the count is just zero.
func (ms *MongoStorage) DelUser(id internal.ObjectID) (int64, error) {
	ms.keysLock.Lock()
	defer ms.keysLock.Unlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	result, err := ms.users.DeleteOne(ctx, bson.M{"_id": primitive.ObjectID(id)})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
