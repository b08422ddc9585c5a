package api

const (
	// GET / welcome message
	rootEndpoint = "/"
	// GET /ping liveness check
	pingEndpoint = "/ping"

	// user routes

	// POST /users to register a new user, GET /users to list them
	usersEndpoint = "/users"
	// GET /users/role?email= to resolve the stored role of a user
	usersRoleEndpoint = "/users/role"
	// PATCH /users/admin/{id} to grant the admin role
	usersAdminEndpoint = "/users/admin/{id}"
	// DELETE /users/{id} to remove a user
	userEndpoint = "/users/{id}"

	// content routes

	// POST/GET /blogs
	blogsEndpoint = "/blogs"
	// GET/DELETE /blogs/{id}
	blogEndpoint = "/blogs/{id}"
	// POST/GET /reviews
	reviewsEndpoint = "/reviews"
	// DELETE /reviews/{id}
	reviewEndpoint = "/reviews/{id}"
	// POST/GET /team (multipart form with optional image file)
	teamEndpoint = "/team"
	// PUT/DELETE /team/{id}
	teamMemberEndpoint = "/team/{id}"
	// POST/GET /review-videos
	reviewVideosEndpoint = "/review-videos"
	// DELETE /review-videos/{id}
	reviewVideoEndpoint = "/review-videos/{id}"
	// POST/GET /clients
	clientsEndpoint = "/clients"
	// DELETE /clients/{id}
	clientEndpoint = "/clients/{id}"
	// POST/GET /free-courses
	freeCoursesEndpoint = "/free-courses"
	// GET/DELETE /free-courses/{id}
	freeCourseEndpoint = "/free-courses/{id}"
	// POST/GET /enrollments (GET accepts an optional ?email= filter)
	enrollmentsEndpoint = "/enrollments"
	// DELETE /enrollments/{id}
	enrollmentEndpoint = "/enrollments/{id}"

	// GET /uploads/teamImages/{filename} static team images
	uploadsEndpoint = "/uploads/teamImages/{filename}"
)
