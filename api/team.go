package api

import (
	errs "errors"
	"net/http"

	"github.com/bangladeshiit/cms-backend/db"
	"github.com/bangladeshiit/cms-backend/errors"
	"github.com/bangladeshiit/cms-backend/uploads"
)

// 32 MB is the default used by FormFile() function
const maxUploadFormSize = 32 << 20

// resolveImage resolves the optional image of a team member request. When the
// form carries an "image" file, the file bytes are persisted first and the
// generated public path is returned; a document must never reference a file
// that is not on disk, so persistence failures abort the request before any
// database write. When no file is present, the "image" form field is used
// verbatim: on update the caller is trusted to supply the prior path.
func (a *API) resolveImage(w http.ResponseWriter, r *http.Request) (string, bool) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if errs.Is(err, http.ErrMissingFile) {
			return r.FormValue("image"), true
		}
		errors.ErrMalformedForm.WithErr(err).Write(w)
		return "", false
	}
	defer func() { _ = file.Close() }()
	path, err := a.storage.Put(file, header.Filename)
	if err != nil {
		if errs.Is(err, uploads.ErrWriteFailed) {
			errors.ErrStorageWriteFailed.WithErr(err).Write(w)
			return "", false
		}
		errors.ErrMalformedForm.WithErr(err).Write(w)
		return "", false
	}
	return path, true
}

// addTeamMemberHandler handles the request to add a team member from a
// multipart form with an optional image file.
func (a *API) addTeamMemberHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadFormSize); err != nil {
		errors.ErrMalformedForm.Withf("could not parse form: %v", err).Write(w)
		return
	}
	image, ok := a.resolveImage(w, r)
	if !ok {
		return
	}
	member := &db.TeamMember{
		Name:     r.FormValue("name"),
		Position: r.FormValue("position"),
		Facebook: r.FormValue("facebook"),
		Github:   r.FormValue("github"),
		Linkedin: r.FormValue("linkedin"),
		Email:    r.FormValue("email"),
		Image:    image,
	}
	id, err := a.db.AddTeamMember(member)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeInsertResult(w, id)
}

// teamMembersHandler handles the request to list every team member.
func (a *API) teamMembersHandler(w http.ResponseWriter, _ *http.Request) {
	members, err := a.db.TeamMembers()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpWriteJSON(w, members)
}

// updateTeamMemberHandler handles the request to update a team member. When
// the form has no new image file, the "image" form field is stored verbatim,
// preserving the previous path the caller sends back.
func (a *API) updateTeamMemberHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDFromURLParam(r)
	if err != nil {
		errors.ErrMalformedURLParam.WithErr(err).Write(w)
		return
	}
	if err := r.ParseMultipartForm(maxUploadFormSize); err != nil {
		errors.ErrMalformedForm.Withf("could not parse form: %v", err).Write(w)
		return
	}
	image, ok := a.resolveImage(w, r)
	if !ok {
		return
	}
	member := &db.TeamMember{
		Name:     r.FormValue("name"),
		Position: r.FormValue("position"),
		Facebook: r.FormValue("facebook"),
		Github:   r.FormValue("github"),
		Linkedin: r.FormValue("linkedin"),
		Image:    image,
	}
	modified, err := a.db.UpdateTeamMember(id, member)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpWriteJSON(w, &UpdateResult{Acknowledged: true, ModifiedCount: modified})
}

// deleteTeamMemberHandler handles the request to remove a team member by ID.
// The image file, if any, stays on disk.
func (a *API) deleteTeamMemberHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDFromURLParam(r)
	if err != nil {
		errors.ErrMalformedURLParam.WithErr(err).Write(w)
		return
	}
	deleted, err := a.db.DelTeamMember(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpWriteJSON(w, &DeleteResult{Acknowledged: true, DeletedCount: deleted})
}
