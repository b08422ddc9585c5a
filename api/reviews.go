package api

import (
	"encoding/json"
	"net/http"

	"github.com/bangladeshiit/cms-backend/db"
	"github.com/bangladeshiit/cms-backend/errors"
)

// addReviewHandler handles the request to add a review.
func (a *API) addReviewHandler(w http.ResponseWriter, r *http.Request) {
	review := &db.Review{}
	if err := json.NewDecoder(r.Body).Decode(review); err != nil {
		errors.ErrMalformedBody.Write(w)
		return
	}
	id, err := a.db.AddReview(review)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeInsertResult(w, id)
}

// reviewsHandler handles the request to list every review.
func (a *API) reviewsHandler(w http.ResponseWriter, _ *http.Request) {
	reviews, err := a.db.Reviews()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpWriteJSON(w, reviews)
}

// deleteReviewHandler handles the request to remove a review by ID.
func (a *API) deleteReviewHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDFromURLParam(r)
	if err != nil {
		errors.ErrMalformedURLParam.WithErr(err).Write(w)
		return
	}
	deleted, err := a.db.DelReview(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpWriteJSON(w, &DeleteResult{Acknowledged: true, DeletedCount: deleted})
}
