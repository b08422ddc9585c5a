// Package api provides the HTTP API for the CMS backend: CRUD over the
// content collections, user role resolution and team image upload/serving.
package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.vocdoni.io/dvote/log"

	"github.com/bangladeshiit/cms-backend/db"
	"github.com/bangladeshiit/cms-backend/uploads"
)

type Config struct {
	Host    string
	Port    int
	DB      *db.MongoStorage
	Storage *uploads.Storage
}

// API type represents the API HTTP server.
type API struct {
	db      *db.MongoStorage
	storage *uploads.Storage
	host    string
	port    int
	router  *chi.Mux
}

// New creates a new API HTTP server. It does not start the server. Use Start() for that.
func New(conf *Config) *API {
	if conf == nil {
		return nil
	}
	return &API{
		db:      conf.DB,
		storage: conf.Storage,
		host:    conf.Host,
		port:    conf.Port,
	}
}

// Start starts the API HTTP server (non blocking).
func (a *API) Start() {
	go func() {
		if err := http.ListenAndServe(fmt.Sprintf("%s:%d", a.host, a.port), a.initRouter()); err != nil {
			log.Fatalf("failed to start the API server: %v", err)
		}
	}()
}

// initRouter creates the router with all the routes and middleware.
func (a *API) initRouter() http.Handler {
	// Create the router with a basic middleware stack
	r := chi.NewRouter()
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}).Handler)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Throttle(100))
	r.Use(middleware.ThrottleBacklog(5000, 40000, 60*time.Second))
	r.Use(middleware.Timeout(45 * time.Second))

	r.Get(rootEndpoint, func(w http.ResponseWriter, _ *http.Request) {
		if _, err := w.Write([]byte("Welcome to you in Bangladeshi IT page")); err != nil {
			log.Warnw("failed to write root response", "error", err)
		}
	})
	r.Get(pingEndpoint, func(w http.ResponseWriter, _ *http.Request) {
		if _, err := w.Write([]byte(".")); err != nil {
			log.Warnw("failed to write ping response", "error", err)
		}
	})

	// user routes
	log.Infow("new route", "method", "POST", "path", usersEndpoint)
	r.Post(usersEndpoint, a.addUserHandler)
	log.Infow("new route", "method", "GET", "path", usersEndpoint)
	r.Get(usersEndpoint, a.usersHandler)
	log.Infow("new route", "method", "GET", "path", usersRoleEndpoint)
	r.Get(usersRoleEndpoint, a.userRoleHandler)
	log.Infow("new route", "method", "PATCH", "path", usersAdminEndpoint)
	r.Patch(usersAdminEndpoint, a.makeAdminHandler)
	log.Infow("new route", "method", "DELETE", "path", userEndpoint)
	r.Delete(userEndpoint, a.deleteUserHandler)

	// blog routes
	log.Infow("new route", "method", "POST", "path", blogsEndpoint)
	r.Post(blogsEndpoint, a.addBlogHandler)
	log.Infow("new route", "method", "GET", "path", blogsEndpoint)
	r.Get(blogsEndpoint, a.blogsHandler)
	log.Infow("new route", "method", "GET", "path", blogEndpoint)
	r.Get(blogEndpoint, a.blogInfoHandler)
	log.Infow("new route", "method", "DELETE", "path", blogEndpoint)
	r.Delete(blogEndpoint, a.deleteBlogHandler)

	// review routes
	log.Infow("new route", "method", "POST", "path", reviewsEndpoint)
	r.Post(reviewsEndpoint, a.addReviewHandler)
	log.Infow("new route", "method", "GET", "path", reviewsEndpoint)
	r.Get(reviewsEndpoint, a.reviewsHandler)
	log.Infow("new route", "method", "DELETE", "path", reviewEndpoint)
	r.Delete(reviewEndpoint, a.deleteReviewHandler)

	// team routes, the only ones accepting multipart forms with an image
	log.Infow("new route", "method", "POST", "path", teamEndpoint)
	r.Post(teamEndpoint, a.addTeamMemberHandler)
	log.Infow("new route", "method", "GET", "path", teamEndpoint)
	r.Get(teamEndpoint, a.teamMembersHandler)
	log.Infow("new route", "method", "PUT", "path", teamMemberEndpoint)
	r.Put(teamMemberEndpoint, a.updateTeamMemberHandler)
	log.Infow("new route", "method", "DELETE", "path", teamMemberEndpoint)
	r.Delete(teamMemberEndpoint, a.deleteTeamMemberHandler)

	// review video routes
	log.Infow("new route", "method", "POST", "path", reviewVideosEndpoint)
	r.Post(reviewVideosEndpoint, a.addReviewVideoHandler)
	log.Infow("new route", "method", "GET", "path", reviewVideosEndpoint)
	r.Get(reviewVideosEndpoint, a.reviewVideosHandler)
	log.Infow("new route", "method", "DELETE", "path", reviewVideoEndpoint)
	r.Delete(reviewVideoEndpoint, a.deleteReviewVideoHandler)

	// client routes
	log.Infow("new route", "method", "POST", "path", clientsEndpoint)
	r.Post(clientsEndpoint, a.addClientHandler)
	log.Infow("new route", "method", "GET", "path", clientsEndpoint)
	r.Get(clientsEndpoint, a.clientsHandler)
	log.Infow("new route", "method", "DELETE", "path", clientEndpoint)
	r.Delete(clientEndpoint, a.deleteClientHandler)

	// free course routes
	log.Infow("new route", "method", "POST", "path", freeCoursesEndpoint)
	r.Post(freeCoursesEndpoint, a.addFreeCourseHandler)
	log.Infow("new route", "method", "GET", "path", freeCoursesEndpoint)
	r.Get(freeCoursesEndpoint, a.freeCoursesHandler)
	log.Infow("new route", "method", "GET", "path", freeCourseEndpoint)
	r.Get(freeCourseEndpoint, a.freeCourseInfoHandler)
	log.Infow("new route", "method", "DELETE", "path", freeCourseEndpoint)
	r.Delete(freeCourseEndpoint, a.deleteFreeCourseHandler)

	// enrollment routes
	log.Infow("new route", "method", "POST", "path", enrollmentsEndpoint)
	r.Post(enrollmentsEndpoint, a.addEnrollmentHandler)
	log.Infow("new route", "method", "GET", "path", enrollmentsEndpoint)
	r.Get(enrollmentsEndpoint, a.enrollmentsHandler)
	log.Infow("new route", "method", "DELETE", "path", enrollmentEndpoint)
	r.Delete(enrollmentEndpoint, a.deleteEnrollmentHandler)

	// static team images
	log.Infow("new route", "method", "GET", "path", uploadsEndpoint)
	r.Get(uploadsEndpoint, a.storage.ServeFileHandler)

	a.router = r
	return r
}
