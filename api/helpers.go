package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.vocdoni.io/dvote/log"

	"github.com/bangladeshiit/cms-backend/errors"
	"github.com/bangladeshiit/cms-backend/internal"
)

// objectIDFromURLParam decodes the {id} URL parameter into a store
// identifier. Every route with an id goes through here, so a malformed id
// always produces a 400 instead of reaching the database.
func objectIDFromURLParam(r *http.Request) (internal.ObjectID, error) {
	return internal.ObjectIDFromHex(chi.URLParam(r, "id"))
}

// httpWriteJSON helper function allows to write a JSON response.
func httpWriteJSON(w http.ResponseWriter, data any) {
	httpWriteJSONWithStatus(w, http.StatusOK, data)
}

// httpWriteJSONWithStatus writes a JSON response with an explicit status
// code, for the routes whose miss payload carries data the frontend inspects
// (e.g. the role lookup replying 404 with an explicit null role).
func httpWriteJSONWithStatus(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if _, err := w.Write([]byte("\n")); err != nil {
		log.Warnw("failed to write on response", "error", err)
	}
}

// writeInsertResult writes the result of a successful insert.
func writeInsertResult(w http.ResponseWriter, id internal.ObjectID) {
	httpWriteJSON(w, &InsertResult{Acknowledged: true, InsertedID: &id})
}

// writeStoreError maps an unexpected database failure to a 500 response.
func writeStoreError(w http.ResponseWriter, err error) {
	errors.ErrGenericInternalServerError.WithErr(err).Write(w)
}
