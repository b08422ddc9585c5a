package api

import (
	"encoding/json"
	"net/http"

	"github.com/bangladeshiit/cms-backend/db"
	"github.com/bangladeshiit/cms-backend/errors"
)

// addUserHandler handles the request to register a new user. A duplicate
// submission is not an error: when a user with the same email already exists
// the handler replies 200 with a sentinel payload and a null insertedId, so
// the frontend can re-submit login payloads without a distinct error path.
func (a *API) addUserHandler(w http.ResponseWriter, r *http.Request) {
	user := &db.User{}
	if err := json.NewDecoder(r.Body).Decode(user); err != nil {
		errors.ErrMalformedBody.Write(w)
		return
	}
	if user.Email == "" {
		errors.ErrInvalidUserData.With("email is empty").Write(w)
		return
	}
	id, err := a.db.AddUser(user)
	if err != nil {
		if err == db.ErrAlreadyExists {
			httpWriteJSON(w, &InsertResult{Message: "User already exists", InsertedID: nil})
			return
		}
		writeStoreError(w, err)
		return
	}
	writeInsertResult(w, id)
}

// usersHandler handles the request to list every user.
func (a *API) usersHandler(w http.ResponseWriter, _ *http.Request) {
	users, err := a.db.Users()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpWriteJSON(w, users)
}

// userRoleHandler handles the request to resolve the stored role of the user
// with the given email. A miss is a 404 carrying an explicit null role.
func (a *API) userRoleHandler(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	role, err := a.db.UserRoleByEmail(email)
	if err != nil {
		if err == db.ErrNotFound {
			httpWriteJSONWithStatus(w, http.StatusNotFound, &RoleResponse{Role: nil, Message: "User not found"})
			return
		}
		writeStoreError(w, err)
		return
	}
	httpWriteJSON(w, &RoleResponse{Role: &role})
}

// makeAdminHandler handles the request to grant the admin role to the user
// with the given ID. The role is stored, never enforced.
func (a *API) makeAdminHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDFromURLParam(r)
	if err != nil {
		errors.ErrMalformedURLParam.WithErr(err).Write(w)
		return
	}
	modified, err := a.db.SetUserRole(id, db.AdminRole)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpWriteJSON(w, &UpdateResult{Acknowledged: true, ModifiedCount: modified})
}

// deleteUserHandler handles the request to remove a user by ID.
func (a *API) deleteUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDFromURLParam(r)
	if err != nil {
		errors.ErrMalformedURLParam.WithErr(err).Write(w)
		return
	}
	deleted, err := a.db.DelUser(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpWriteJSON(w, &DeleteResult{Acknowledged: true, DeletedCount: deleted})
}
