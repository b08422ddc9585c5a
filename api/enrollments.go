package api

import (
	"encoding/json"
	"net/http"

	"github.com/bangladeshiit/cms-backend/db"
	"github.com/bangladeshiit/cms-backend/errors"
)

// addEnrollmentHandler handles the request to add an enrollment.
func (a *API) addEnrollmentHandler(w http.ResponseWriter, r *http.Request) {
	enrollment := &db.Enrollment{}
	if err := json.NewDecoder(r.Body).Decode(enrollment); err != nil {
		errors.ErrMalformedBody.Write(w)
		return
	}
	id, err := a.db.AddEnrollment(enrollment)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeInsertResult(w, id)
}

// enrollmentsHandler handles the request to list enrollments. An optional
// ?email= query parameter scopes the result to exact email matches.
func (a *API) enrollmentsHandler(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	enrollments, err := a.db.Enrollments(email)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpWriteJSON(w, enrollments)
}

// deleteEnrollmentHandler handles the request to remove an enrollment by ID.
func (a *API) deleteEnrollmentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDFromURLParam(r)
	if err != nil {
		errors.ErrMalformedURLParam.WithErr(err).Write(w)
		return
	}
	deleted, err := a.db.DelEnrollment(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpWriteJSON(w, &DeleteResult{Acknowledged: true, DeletedCount: deleted})
}
