package api

import (
	"encoding/json"
	"net/http"

	"github.com/bangladeshiit/cms-backend/db"
	"github.com/bangladeshiit/cms-backend/errors"
)

// addReviewVideoHandler handles the request to add a review video.
func (a *API) addReviewVideoHandler(w http.ResponseWriter, r *http.Request) {
	video := &db.ReviewVideo{}
	if err := json.NewDecoder(r.Body).Decode(video); err != nil {
		errors.ErrMalformedBody.Write(w)
		return
	}
	id, err := a.db.AddReviewVideo(video)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeInsertResult(w, id)
}

// reviewVideosHandler handles the request to list every review video.
func (a *API) reviewVideosHandler(w http.ResponseWriter, _ *http.Request) {
	videos, err := a.db.ReviewVideos()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpWriteJSON(w, videos)
}

// deleteReviewVideoHandler handles the request to remove a review video by ID.
func (a *API) deleteReviewVideoHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDFromURLParam(r)
	if err != nil {
		errors.ErrMalformedURLParam.WithErr(err).Write(w)
		return
	}
	deleted, err := a.db.DelReviewVideo(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpWriteJSON(w, &DeleteResult{Acknowledged: true, DeletedCount: deleted})
}
