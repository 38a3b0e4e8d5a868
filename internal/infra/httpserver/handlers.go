package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	domain "github.com/bryanwahyu/textlens/internal/domain/analysis"
	"github.com/bryanwahyu/textlens/internal/middleware"
)

const maxBodyBytes = 1 << 20

// GET /api/analyze
// With ?id= returns a single record; without it, the {analyses: [...]} list.
func (r *Router) handleRead(w http.ResponseWriter, req *http.Request) error {
	id := req.URL.Query().Get("id")
	if id == "" {
		items, err := r.svc.List(req.Context())
		if err != nil {
			return err
		}
		writeJSON(w, http.StatusOK, listResponse{Analyses: items})
		return nil
	}

	rec, err := r.svc.Get(req.Context(), domain.RecordID(id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &notFoundError{id: id}
		}
		return err
	}
	writeJSON(w, http.StatusOK, rec)
	return nil
}

// POST /api/analyze
// Body: {"text": "..."} → 201 + record + Location header.
func (r *Router) handleCreate(w http.ResponseWriter, req *http.Request) error {
	req.Body = http.MaxBytesReader(w, req.Body, maxBodyBytes)
	var body createRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body.", err)
		return nil
	}
	if err := body.Validate(); err != nil {
		return err
	}

	rec, err := r.svc.Create(req.Context(), body.Text)
	if err != nil {
		return err
	}
	middleware.IncrementAnalyses()

	w.Header().Set("Location", fmt.Sprintf("/api/analyze?id=%s", rec.ID))
	writeJSON(w, http.StatusCreated, rec)
	return nil
}

// PUT /api/analyze
// Body: {"id": "...", "text": "..."} → 200 + updated record.
func (r *Router) handleUpdate(w http.ResponseWriter, req *http.Request) error {
	req.Body = http.MaxBytesReader(w, req.Body, maxBodyBytes)
	var body updateRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body.", err)
		return nil
	}
	if err := body.Validate(); err != nil {
		return err
	}

	rec, err := r.svc.Update(req.Context(), domain.RecordID(body.ID), body.Text)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &notFoundError{id: body.ID}
		}
		return err
	}
	middleware.IncrementAnalyses()

	writeJSON(w, http.StatusOK, rec)
	return nil
}

// DELETE /api/analyze
// The id comes from the query parameter or, failing that, a JSON body.
func (r *Router) handleDelete(w http.ResponseWriter, req *http.Request) error {
	id := req.URL.Query().Get("id")
	if id == "" {
		var body deleteRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err == nil {
			id = body.ID
		}
	}
	if id == "" {
		return domain.ErrMissingID
	}

	if err := r.svc.Delete(req.Context(), domain.RecordID(id)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &notFoundError{id: id}
		}
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}
