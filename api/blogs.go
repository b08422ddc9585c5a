package api

import (
	"encoding/json"
	"net/http"

	"github.com/bangladeshiit/cms-backend/db"
	"github.com/bangladeshiit/cms-backend/errors"
)

// addBlogHandler handles the request to add a blog.
func (a *API) addBlogHandler(w http.ResponseWriter, r *http.Request) {
	blog := &db.Blog{}
	if err := json.NewDecoder(r.Body).Decode(blog); err != nil {
		errors.ErrMalformedBody.Write(w)
		return
	}
	id, err := a.db.AddBlog(blog)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeInsertResult(w, id)
}

// blogsHandler handles the request to list every blog.
func (a *API) blogsHandler(w http.ResponseWriter, _ *http.Request) {
	blogs, err := a.db.Blogs()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpWriteJSON(w, blogs)
}

// blogInfoHandler handles the request to get a single blog by ID.
func (a *API) blogInfoHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDFromURLParam(r)
	if err != nil {
		errors.ErrMalformedURLParam.WithErr(err).Write(w)
		return
	}
	blog, err := a.db.Blog(id)
	if err != nil {
		if err == db.ErrNotFound {
			errors.ErrBlogNotFound.Write(w)
			return
		}
		writeStoreError(w, err)
		return
	}
	httpWriteJSON(w, blog)
}

// deleteBlogHandler handles the request to remove a blog by ID.
func (a *API) deleteBlogHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDFromURLParam(r)
	if err != nil {
		errors.ErrMalformedURLParam.WithErr(err).Write(w)
		return
	}
	deleted, err := a.db.DelBlog(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpWriteJSON(w, &DeleteResult{Acknowledged: true, DeletedCount: deleted})
}
