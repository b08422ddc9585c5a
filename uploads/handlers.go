package uploads

import (
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"

	"github.com/bangladeshiit/cms-backend/errors"
)

// isFileNameRgx matches the names Put generates. Anything else (including
// path traversal attempts) is rejected before touching the disk.
var isFileNameRgx = regexp.MustCompile(`^\d+-[a-f0-9]+(\.[a-zA-Z0-9]+)?$`)

// ServeFileHandler serves a stored team image inline by its generated name.
func (s *Storage) ServeFileHandler(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")
	if filename == "" {
		errors.ErrMalformedURLParam.With("filename is required").Write(w)
		return
	}
	if !isFileNameRgx.MatchString(filename) {
		errors.ErrMalformedURLParam.With("invalid filename").Write(w)
		return
	}
	data, err := s.File(filename)
	if err != nil {
		if err == ErrFileNotFound {
			errors.ErrFileNotFound.Write(w)
			return
		}
		errors.ErrGenericInternalServerError.WithErr(err).Write(w)
		return
	}
	w.Header().Set("Content-Type", http.DetectContentType(data))
	w.Header().Set("Content-Disposition", "inline")
	if _, err := w.Write(data); err != nil {
		errors.ErrGenericInternalServerError.WithErr(err).Write(w)
		return
	}
}
