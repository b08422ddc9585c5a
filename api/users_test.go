package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/bangladeshiit/cms-backend/db"
	"github.com/bangladeshiit/cms-backend/errors"
)

func TestAddUserHandler(t *testing.T) {
	c := qt.New(t)
	defer func() {
		if err := testDB.Reset(); err != nil {
			c.Logf("error resetting test database: %v", err)
		}
	}()

	// Test invalid body
	resp, code := testRequest(t, http.MethodPost, usersEndpoint, []byte("invalid body"))
	c.Assert(code, qt.Equals, http.StatusBadRequest)
	c.Assert(string(resp), qt.Equals, string(mustMarshal(errors.ErrMalformedBody)))

	// Test empty email
	_, code = testRequest(t, http.MethodPost, usersEndpoint, &db.User{Name: "No Email"})
	c.Assert(code, qt.Equals, http.StatusBadRequest)

	// Test valid registration
	resp, code = testRequest(t, http.MethodPost, usersEndpoint, &db.User{Email: testUserEmail, Name: "User"})
	c.Assert(code, qt.Equals, http.StatusOK)
	var inserted InsertResult
	c.Assert(json.Unmarshal(resp, &inserted), qt.IsNil)
	c.Assert(inserted.Acknowledged, qt.IsTrue)
	c.Assert(inserted.InsertedID, qt.IsNotNil)

	// Test duplicate user, the reply is a 200 with a sentinel payload and a
	// null insertedId instead of an error
	resp, code = testRequest(t, http.MethodPost, usersEndpoint, &db.User{Email: testUserEmail})
	c.Assert(code, qt.Equals, http.StatusOK)
	var duplicated InsertResult
	c.Assert(json.Unmarshal(resp, &duplicated), qt.IsNil)
	c.Assert(duplicated.Acknowledged, qt.IsFalse)
	c.Assert(duplicated.InsertedID, qt.IsNil)
	c.Assert(duplicated.Message, qt.Equals, "User already exists")

	// the collection must not have grown
	resp, code = testRequest(t, http.MethodGet, usersEndpoint, nil)
	c.Assert(code, qt.Equals, http.StatusOK)
	var users []db.User
	c.Assert(json.Unmarshal(resp, &users), qt.IsNil)
	c.Assert(users, qt.HasLen, 1)
}

func TestUserRoleHandler(t *testing.T) {
	c := qt.New(t)
	defer func() {
		if err := testDB.Reset(); err != nil {
			c.Logf("error resetting test database: %v", err)
		}
	}()

	// Test role lookup for a missing user, a 404 with an explicit null role
	resp, code := testRequest(t, http.MethodGet, usersRoleEndpoint+"?email="+testUserEmail, nil)
	c.Assert(code, qt.Equals, http.StatusNotFound)
	var missing RoleResponse
	c.Assert(json.Unmarshal(resp, &missing), qt.IsNil)
	c.Assert(missing.Role, qt.IsNil)
	c.Assert(missing.Message, qt.Equals, "User not found")

	// register a user without a role
	resp, code = testRequest(t, http.MethodPost, usersEndpoint, &db.User{Email: testUserEmail})
	c.Assert(code, qt.Equals, http.StatusOK)
	var inserted InsertResult
	c.Assert(json.Unmarshal(resp, &inserted), qt.IsNil)
	c.Assert(inserted.InsertedID, qt.IsNotNil)

	// the role resolves to an empty string, not a null
	resp, code = testRequest(t, http.MethodGet, usersRoleEndpoint+"?email="+testUserEmail, nil)
	c.Assert(code, qt.Equals, http.StatusOK)
	var role RoleResponse
	c.Assert(json.Unmarshal(resp, &role), qt.IsNil)
	c.Assert(role.Role, qt.IsNotNil)
	c.Assert(*role.Role, qt.Equals, db.UserRole(""))

	// Test malformed id on the admin grant
	_, code = testRequest(t, http.MethodPatch, "/users/admin/not-an-id", nil)
	c.Assert(code, qt.Equals, http.StatusBadRequest)

	// grant the admin role and check it back
	resp, code = testRequest(t, http.MethodPatch,
		fmt.Sprintf("/users/admin/%s", inserted.InsertedID.Hex()), nil)
	c.Assert(code, qt.Equals, http.StatusOK)
	var updated UpdateResult
	c.Assert(json.Unmarshal(resp, &updated), qt.IsNil)
	c.Assert(updated.ModifiedCount, qt.Equals, int64(1))

	resp, code = testRequest(t, http.MethodGet, usersRoleEndpoint+"?email="+testUserEmail, nil)
	c.Assert(code, qt.Equals, http.StatusOK)
	c.Assert(json.Unmarshal(resp, &role), qt.IsNil)
	c.Assert(role.Role, qt.IsNotNil)
	c.Assert(*role.Role, qt.Equals, db.AdminRole)
}

func TestDeleteUserHandler(t *testing.T) {
	c := qt.New(t)
	defer func() {
		if err := testDB.Reset(); err != nil {
			c.Logf("error resetting test database: %v", err)
		}
	}()

	resp, code := testRequest(t, http.MethodPost, usersEndpoint, &db.User{Email: testUserEmail})
	c.Assert(code, qt.Equals, http.StatusOK)
	var inserted InsertResult
	c.Assert(json.Unmarshal(resp, &inserted), qt.IsNil)
	c.Assert(inserted.InsertedID, qt.IsNotNil)

	// Test malformed id
	_, code = testRequest(t, http.MethodDelete, "/users/not-an-id", nil)
	c.Assert(code, qt.Equals, http.StatusBadRequest)

	// first delete removes the document, the second is a zero count
	resp, code = testRequest(t, http.MethodDelete,
		fmt.Sprintf("/users/%s", inserted.InsertedID.Hex()), nil)
	c.Assert(code, qt.Equals, http.StatusOK)
	var deleted DeleteResult
	c.Assert(json.Unmarshal(resp, &deleted), qt.IsNil)
	c.Assert(deleted.DeletedCount, qt.Equals, int64(1))

	resp, code = testRequest(t, http.MethodDelete,
		fmt.Sprintf("/users/%s", inserted.InsertedID.Hex()), nil)
	c.Assert(code, qt.Equals, http.StatusOK)
	c.Assert(json.Unmarshal(resp, &deleted), qt.IsNil)
	c.Assert(deleted.DeletedCount, qt.Equals, int64(0))
}
