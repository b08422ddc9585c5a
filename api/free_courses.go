package api

import (
	"encoding/json"
	"net/http"

	"github.com/bangladeshiit/cms-backend/db"
	"github.com/bangladeshiit/cms-backend/errors"
)

// addFreeCourseHandler handles the request to add a free course.
func (a *API) addFreeCourseHandler(w http.ResponseWriter, r *http.Request) {
	course := &db.FreeCourse{}
	if err := json.NewDecoder(r.Body).Decode(course); err != nil {
		errors.ErrMalformedBody.Write(w)
		return
	}
	id, err := a.db.AddFreeCourse(course)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeInsertResult(w, id)
}

// freeCoursesHandler handles the request to list every free course.
func (a *API) freeCoursesHandler(w http.ResponseWriter, _ *http.Request) {
	courses, err := a.db.FreeCourses()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpWriteJSON(w, courses)
}

// freeCourseInfoHandler handles the request to get a single free course by ID.
func (a *API) freeCourseInfoHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDFromURLParam(r)
	if err != nil {
		errors.ErrMalformedURLParam.WithErr(err).Write(w)
		return
	}
	course, err := a.db.FreeCourse(id)
	if err != nil {
		if err == db.ErrNotFound {
			errors.ErrCourseNotFound.Write(w)
			return
		}
		writeStoreError(w, err)
		return
	}
	httpWriteJSON(w, course)
}

// deleteFreeCourseHandler handles the request to remove a free course by ID.
func (a *API) deleteFreeCourseHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDFromURLParam(r)
	if err != nil {
		errors.ErrMalformedURLParam.WithErr(err).Write(w)
		return
	}
	deleted, err := a.db.DelFreeCourse(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpWriteJSON(w, &DeleteResult{Acknowledged: true, DeletedCount: deleted})
}
