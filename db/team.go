package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bangladeshiit/cms-backend/internal"
)

// teamUpdateFields are the tags set verbatim on every team member update,
// even when they hold their zero value. The caller supplies the previous
// image path when the image is not being replaced.
var teamUpdateFields = []string{"name", "position", "facebook", "github", "linkedin", "image"}

// AddTeamMember inserts the team member in the database and returns the
// generated ID. The member's image path must already point to a persisted
// file; this method never touches the filesystem.
func (ms *MongoStorage) AddTeamMember(member *TeamMember) (internal.ObjectID, error) {
	ms.keysLock.Lock()
	defer ms.keysLock.Unlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	result, err := ms.team.InsertOne(ctx, member)
	if err != nil {
		return internal.NilObjectID, err
	}
	return internal.ObjectID(result.InsertedID.(primitive.ObjectID)), nil
}

// TeamMembers returns every team member in the database, store-native order.
func (ms *MongoStorage) TeamMembers() ([]TeamMember, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	members := []TeamMember{}
	if err := decodeAll(ctx, ms.team, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// UpdateTeamMember replaces the named profile fields of the member with the
// given ID and returns the modified count. Concurrent updates to the same
// member interleave arbitrarily; the last write wins.
func (ms *MongoStorage) UpdateTeamMember(id internal.ObjectID, member *TeamMember) (int64, error) {
	ms.keysLock.Lock()
	defer ms.keysLock.Unlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	updateDoc, err := dynamicUpdateDocument(member, teamUpdateFields)
	if err != nil {
		return 0, err
	}
	result, err := ms.team.UpdateOne(ctx, bson.M{"_id": primitive.ObjectID(id)}, updateDoc)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

// DelTeamMember deletes the team member with the given ID and returns the
// deleted count. The member's image file, if any, is left on disk.
func (ms *MongoStorage) DelTeamMember(id internal.ObjectID) (int64, error) {
	ms.keysLock.Lock()
	defer ms.keysLock.Unlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	result, err := ms.team.DeleteOne(ctx, bson.M{"_id": primitive.ObjectID(id)})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
