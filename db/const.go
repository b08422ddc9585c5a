package db

import "time"

const (
	// user roles
	AdminRole UserRole = "admin"

	// collection names, matching what the production frontend already queries
	usersCollectionName        = "users"
	blogsCollectionName        = "blogs"
	teamCollectionName         = "team"
	reviewsCollectionName      = "reviews"
	reviewVideosCollectionName = "reviewVideos"
	clientsCollectionName      = "clients"
	freeCoursesCollectionName  = "freeCourses"
	enrollmentsCollectionName  = "enrollments"

	// defaultTimeout bounds every single database operation
	defaultTimeout = 10 * time.Second
)
