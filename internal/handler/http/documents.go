package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/able-wong/firekit/internal/logger"
	"github.com/able-wong/firekit/internal/utils"
	"github.com/able-wong/firekit/models"
)

// listCollection serves GET /api/db/{collection}: the whole collection
// in store order, no filtering.
func (h *Handler) listCollection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	collection := chi.URLParam(r, "collection")

	documents, err := h.store.FetchCollection(ctx, collection, models.Query{})
	if err != nil {
		log.Err(err).Str("collection", collection).Msg("collection listing failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	logSubject(r, log.Debug().Str("collection", collection).Int("count", len(documents))).
		Msg("collection listed")

	utils.WriteJSON(w, documents, http.StatusOK)
}

// queryCollection serves POST /api/db/{collection}/query: the body is a
// query descriptor, answered with the matching documents.
func (h *Handler) queryCollection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	collection := chi.URLParam(r, "collection")

	var query models.Query
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	documents, err := h.store.FetchCollection(ctx, collection, query)
	if err != nil {
		log.Err(err).Str("collection", collection).Msg("collection query failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	logSubject(r, log.Debug().Str("collection", collection).Int("count", len(documents))).
		Msg("collection queried")

	utils.WriteJSON(w, documents, http.StatusOK)
}

// createDocument serves POST /api/db/{collection}: the body is the new
// document's data, returned back with its server-assigned identity.
func (h *Handler) createDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	collection := chi.URLParam(r, "collection")

	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	document, err := h.store.CreateDocument(ctx, collection, payload)
	if err != nil {
		log.Err(err).Str("collection", collection).Msg("document creation failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	logSubject(r, log.Info().Str("collection", collection).Str("id", document.ID)).
		Msg("document created")

	utils.WriteJSON(w, document, http.StatusCreated)
}

// getDocument serves GET /api/db/doc/*: a single document by its
// collection-relative path.
func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	path := chi.URLParam(r, "*")

	document, err := h.store.FetchDocument(ctx, path)
	if err != nil {
		log.Err(err).Str("path", path).Msg("document fetch failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, document, http.StatusOK)
}

// updateDocument serves PATCH /api/db/doc/*: the body holds the fields
// to merge into the document.
func (h *Handler) updateDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	path := chi.URLParam(r, "*")

	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	document, err := h.store.UpdateDocument(ctx, path, payload)
	if err != nil {
		log.Err(err).Str("path", path).Msg("document update failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	logSubject(r, log.Info().Str("path", path)).Msg("document updated")

	utils.WriteJSON(w, document, http.StatusOK)
}

// deleteDocument serves DELETE /api/db/doc/*.
func (h *Handler) deleteDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	path := chi.URLParam(r, "*")

	if err := h.store.DeleteDocument(ctx, path); err != nil {
		log.Err(err).Str("path", path).Msg("document deletion failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	logSubject(r, log.Info().Str("path", path)).Msg("document deleted")

	w.WriteHeader(http.StatusNoContent)
}
