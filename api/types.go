package api

import (
	"github.com/bangladeshiit/cms-backend/db"
	"github.com/bangladeshiit/cms-backend/internal"
)

// InsertResult mirrors the driver insert result shape the frontend already
// consumes. InsertedID is a pointer so the duplicate-user branch can reply
// with an explicit null.
type InsertResult struct {
	Acknowledged bool               `json:"acknowledged"`
	InsertedID   *internal.ObjectID `json:"insertedId"`
	Message      string             `json:"message,omitempty"`
}

// UpdateResult mirrors the driver update result shape.
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult mirrors the driver delete result shape. A zero count is a
// success: deleting a non-existent id is idempotent, not an error.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// RoleResponse is the payload of the role lookup. Role is null on a miss so
// the frontend can tell "no such user" apart from a transport failure.
type RoleResponse struct {
	Role    *db.UserRole `json:"role"`
	Message string       `json:"message,omitempty"`
}
