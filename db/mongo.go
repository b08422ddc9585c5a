package db

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.vocdoni.io/dvote/log"
)

// MongoStorage uses an external MongoDB service for storing the content
// collections of the CMS: users, blogs, team members, reviews, review videos,
// clients, free courses and enrollments.
type MongoStorage struct {
	client   *mongo.Client
	keysLock sync.RWMutex

	users        *mongo.Collection
	blogs        *mongo.Collection
	team         *mongo.Collection
	reviews      *mongo.Collection
	reviewVideos *mongo.Collection
	clients      *mongo.Collection
	freeCourses  *mongo.Collection
	enrollments  *mongo.Collection
}

// New connects to the MongoDB server, initializes the collections and
// creates the indexes. If the CMS_MONGO_RESET_DB environment variable is set,
// the database is dropped and recreated from scratch.
func New(url, database string) (*MongoStorage, error) {
	var err error
	ms := &MongoStorage{}
	if url == "" {
		return nil, fmt.Errorf("mongo URL is not defined")
	}
	if database == "" {
		return nil, fmt.Errorf("mongo database is not defined")
	}
	log.Infow("connecting to mongodb", "url", url, "database", database)
	// preparing connection
	opts := options.Client()
	opts.ApplyURI(url)
	opts.SetMaxConnecting(200)
	timeout := time.Second * 10
	opts.ConnectTimeout = &timeout
	// create a new client with the connection options
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to mongodb: %w", err)
	}
	// check if the connection is successful
	ctx, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	err = client.Ping(ctx, readpref.Primary())
	if err != nil {
		return nil, fmt.Errorf("cannot connect to mongodb: %w", err)
	}
	// init the collections
	ms.client = client
	if err := ms.initCollections(database); err != nil {
		return nil, err
	}
	// if reset flag is enabled, Reset drops the database documents and recreates indexes
	// else, just createIndexes
	if reset := os.Getenv("CMS_MONGO_RESET_DB"); reset != "" {
		err := ms.Reset()
		if err != nil {
			return nil, err
		}
	} else {
		err := ms.createIndexes()
		if err != nil {
			return nil, err
		}
	}
	return ms, nil
}

func (ms *MongoStorage) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := ms.client.Disconnect(ctx); err != nil {
		log.Warn(err)
	}
}

// Reset drops every collection and recreates the indexes.
func (ms *MongoStorage) Reset() error {
	log.Infof("resetting database")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, col := range ms.collections() {
		if err := col.Drop(ctx); err != nil {
			return err
		}
	}
	if err := ms.createIndexes(); err != nil {
		return err
	}
	return nil
}

// String returns the whole content database as a JSON document, suitable for
// backups or for feeding Import on another instance.
func (ms *MongoStorage) String() string {
	const contextTimeout = 30 * time.Second
	ms.keysLock.RLock()
	defer ms.keysLock.RUnlock()

	ctx, cancel := context.WithTimeout(context.Background(), contextTimeout)
	defer cancel()

	var export Collection
	if err := decodeAll(ctx, ms.users, &export.Users); err != nil {
		log.Warn(err)
	}
	if err := decodeAll(ctx, ms.blogs, &export.Blogs); err != nil {
		log.Warn(err)
	}
	if err := decodeAll(ctx, ms.team, &export.Team); err != nil {
		log.Warn(err)
	}
	if err := decodeAll(ctx, ms.reviews, &export.Reviews); err != nil {
		log.Warn(err)
	}
	if err := decodeAll(ctx, ms.reviewVideos, &export.ReviewVideos); err != nil {
		log.Warn(err)
	}
	if err := decodeAll(ctx, ms.clients, &export.Clients); err != nil {
		log.Warn(err)
	}
	if err := decodeAll(ctx, ms.freeCourses, &export.FreeCourses); err != nil {
		log.Warn(err)
	}
	if err := decodeAll(ctx, ms.enrollments, &export.Enrollments); err != nil {
		log.Warn(err)
	}

	data, err := json.Marshal(&export)
	if err != nil {
		log.Warn(err)
	}
	return string(data)
}

// Import imports a JSON dataset produced by String() into the database.
func (ms *MongoStorage) Import(jsonData []byte) error {
	ms.keysLock.RLock()
	defer ms.keysLock.RUnlock()

	log.Infof("importing database")
	var collection Collection
	err := json.Unmarshal(jsonData, &collection)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	log.Infow("importing users", "count", len(collection.Users))
	for _, user := range collection.Users {
		if err := upsertByID(ctx, ms.users, user.ID, user); err != nil {
			log.Warnw("error upserting user", "err", err, "user", user.ID.Hex())
		}
	}
	log.Infow("importing blogs", "count", len(collection.Blogs))
	for _, blog := range collection.Blogs {
		if err := upsertByID(ctx, ms.blogs, blog.ID, blog); err != nil {
			log.Warnw("error upserting blog", "err", err, "blog", blog.ID.Hex())
		}
	}
	log.Infow("importing team members", "count", len(collection.Team))
	for _, member := range collection.Team {
		if err := upsertByID(ctx, ms.team, member.ID, member); err != nil {
			log.Warnw("error upserting team member", "err", err, "member", member.ID.Hex())
		}
	}
	log.Infow("importing reviews", "count", len(collection.Reviews))
	for _, review := range collection.Reviews {
		if err := upsertByID(ctx, ms.reviews, review.ID, review); err != nil {
			log.Warnw("error upserting review", "err", err, "review", review.ID.Hex())
		}
	}
	log.Infow("importing review videos", "count", len(collection.ReviewVideos))
	for _, video := range collection.ReviewVideos {
		if err := upsertByID(ctx, ms.reviewVideos, video.ID, video); err != nil {
			log.Warnw("error upserting review video", "err", err, "video", video.ID.Hex())
		}
	}
	log.Infow("importing clients", "count", len(collection.Clients))
	for _, client := range collection.Clients {
		if err := upsertByID(ctx, ms.clients, client.ID, client); err != nil {
			log.Warnw("error upserting client", "err", err, "client", client.ID.Hex())
		}
	}
	log.Infow("importing free courses", "count", len(collection.FreeCourses))
	for _, course := range collection.FreeCourses {
		if err := upsertByID(ctx, ms.freeCourses, course.ID, course); err != nil {
			log.Warnw("error upserting free course", "err", err, "course", course.ID.Hex())
		}
	}
	log.Infow("importing enrollments", "count", len(collection.Enrollments))
	for _, enrollment := range collection.Enrollments {
		if err := upsertByID(ctx, ms.enrollments, enrollment.ID, enrollment); err != nil {
			log.Warnw("error upserting enrollment", "err", err, "enrollment", enrollment.ID.Hex())
		}
	}

	log.Infof("imported database!")
	return nil
}
