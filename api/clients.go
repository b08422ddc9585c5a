package api

import (
	"encoding/json"
	"net/http"

	"github.com/bangladeshiit/cms-backend/db"
	"github.com/bangladeshiit/cms-backend/errors"
)

// addClientHandler handles the request to add a client.
func (a *API) addClientHandler(w http.ResponseWriter, r *http.Request) {
	client := &db.Client{}
	if err := json.NewDecoder(r.Body).Decode(client); err != nil {
		errors.ErrMalformedBody.Write(w)
		return
	}
	id, err := a.db.AddClient(client)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeInsertResult(w, id)
}

// clientsHandler handles the request to list every client.
func (a *API) clientsHandler(w http.ResponseWriter, _ *http.Request) {
	clients, err := a.db.Clients()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpWriteJSON(w, clients)
}

// deleteClientHandler handles the request to remove a client by ID.
func (a *API) deleteClientHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDFromURLParam(r)
	if err != nil {
		errors.ErrMalformedURLParam.WithErr(err).Write(w)
		return
	}
	deleted, err := a.db.DelClient(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpWriteJSON(w, &DeleteResult{Acknowledged: true, DeletedCount: deleted})
}
