package db

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// initCollections creates the collections in the MongoDB database if they
// don't exist and binds them to the MongoStorage fields.
func (ms *MongoStorage) initCollections(database string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	// get the current collections names to create only the missing ones
	currentCollections, err := ms.collectionNames(ctx, database)
	if err != nil {
		return err
	}
	// aux method to get a collection if it exists, or create it if it doesn't
	getCollection := func(name string) (*mongo.Collection, error) {
		alreadyCreated := false
		for _, c := range currentCollections {
			if c == name {
				alreadyCreated = true
				break
			}
		}
		if !alreadyCreated {
			if err := ms.client.Database(database).CreateCollection(ctx, name); err != nil {
				return nil, err
			}
		}
		return ms.client.Database(database).Collection(name), nil
	}
	if ms.users, err = getCollection(usersCollectionName); err != nil {
		return err
	}
	if ms.blogs, err = getCollection(blogsCollectionName); err != nil {
		return err
	}
	if ms.team, err = getCollection(teamCollectionName); err != nil {
		return err
	}
	if ms.reviews, err = getCollection(reviewsCollectionName); err != nil {
		return err
	}
	if ms.reviewVideos, err = getCollection(reviewVideosCollectionName); err != nil {
		return err
	}
	if ms.clients, err = getCollection(clientsCollectionName); err != nil {
		return err
	}
	if ms.freeCourses, err = getCollection(freeCoursesCollectionName); err != nil {
		return err
	}
	if ms.enrollments, err = getCollection(enrollmentsCollectionName); err != nil {
		return err
	}
	return nil
}

// collectionNames returns the names of the collections in the given database.
func (ms *MongoStorage) collectionNames(ctx context.Context, database string) ([]string, error) {
	return ms.client.Database(database).ListCollectionNames(ctx, bson.D{})
}

// collections returns every bound collection, in a fixed order.
func (ms *MongoStorage) collections() []*mongo.Collection {
	return []*mongo.Collection{
		ms.users, ms.blogs, ms.team, ms.reviews,
		ms.reviewVideos, ms.clients, ms.freeCourses, ms.enrollments,
	}
}

// createIndexes creates the indexes for the collections in the MongoDB
// database. Add more indexes here as needed.
func (ms *MongoStorage) createIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	// create a unique index for the 'email' field on users, so two concurrent
	// registrations with the same email cannot both succeed
	userEmailIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}}, // 1 for ascending order
		Options: options.Index().SetUnique(true),
	}
	if _, err := ms.users.Indexes().CreateOne(ctx, userEmailIndex); err != nil {
		return fmt.Errorf("failed to create index on email for users: %w", err)
	}
	// create an index for the 'email' field on enrollments, used by the
	// per-user enrollment listing
	enrollmentEmailIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}}, // 1 for ascending order
	}
	if _, err := ms.enrollments.Indexes().CreateOne(ctx, enrollmentEmailIndex); err != nil {
		return fmt.Errorf("failed to create index on email for enrollments: %w", err)
	}
	return nil
}

// decodeAll runs an unfiltered Find on the collection and decodes every
// document into out, preserving the store-native order.
func decodeAll[T any](ctx context.Context, col *mongo.Collection, out *[]T) error {
	cur, err := col.Find(ctx, bson.D{})
	if err != nil {
		return err
	}
	defer func() { _ = cur.Close(ctx) }()
	return cur.All(ctx, out)
}

// upsertByID sets the whole document for the given id, creating it if missing.
func upsertByID(ctx context.Context, col *mongo.Collection, id primitive.ObjectID, doc any) error {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": doc}
	opts := options.Update().SetUpsert(true)
	_, err := col.UpdateOne(ctx, filter, update, opts)
	return err
}

// isDuplicateKeyError reports whether the insert failed against a unique
// index, which the callers treat as the "already exists" branch.
func isDuplicateKeyError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate key error")
}

// dynamicUpdateDocument creates a BSON update document from a struct, including only non-zero fields.
// It uses reflection to iterate over the struct fields and create the update document.
// The struct fields must have a bson tag to be included in the update document.
// The _id field is skipped. Tags listed in alwaysUpdateTags are set even when
// the field holds its zero value.
func dynamicUpdateDocument(item interface{}, alwaysUpdateTags []string) (bson.M, error) {
	val := reflect.ValueOf(item)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if !val.IsValid() || val.Kind() != reflect.Struct {
		return nil, fmt.Errorf("input must be a valid struct")
	}
	update := bson.M{}
	typ := val.Type()
	// create a map for quick lookup
	alwaysUpdateMap := make(map[string]bool, len(alwaysUpdateTags))
	for _, tag := range alwaysUpdateTags {
		alwaysUpdateMap[tag] = true
	}
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		if !field.CanInterface() {
			continue
		}
		fieldType := typ.Field(i)
		tag, _, _ := strings.Cut(fieldType.Tag.Get("bson"), ",")
		if tag == "" || tag == "-" || tag == "_id" {
			continue
		}
		// check if the field should always be updated or is not the zero value
		_, alwaysUpdate := alwaysUpdateMap[tag]
		if alwaysUpdate || !reflect.DeepEqual(field.Interface(), reflect.Zero(field.Type()).Interface()) {
			update[tag] = field.Interface()
		}
	}
	return bson.M{"$set": update}, nil
}
