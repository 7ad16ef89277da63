package notes

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"example.com/listnotes-api/internal/stringsx"
)

// Response bodies are bare JSON strings, as existing clients expect.
const (
	msgNotFound     = "Note does not exist"
	msgInvalidInput = "Please enter a title and at least one list item"
	msgInvalidJSON  = "Request body must be valid JSON"
)

var errTrailingData = errors.New("unexpected data after JSON object")

// logTitleMax bounds how much of a title ends up in log lines.
const logTitleMax = 64

type Handlers struct {
	store NoteStore
	log   zerolog.Logger
}

// NoteStore is implemented by *Store.
// Handlers depend on it so they can be tested with a stub.
type NoteStore interface {
	List() []Note
	Get(id string) (Note, error)
	Create(in NoteInput) (Note, error)
	Update(id string, in NoteInput) error
	Delete(id string) error
}

func NewHandlers(store NoteStore, log zerolog.Logger) *Handlers {
	return &Handlers{store: store, log: log}
}

func (h *Handlers) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1/notes", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.get)
			r.Put("/", h.update)
			r.Delete("/", h.delete)
		})
	})

	return r
}

func (h *Handlers) list(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.List())
}

func (h *Handlers) get(w http.ResponseWriter, r *http.Request) {
	n, err := h.store.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (h *Handlers) create(w http.ResponseWriter, r *http.Request) {
	req, err := decodeInput(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	n, err := h.store.Create(req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.log.Debug().
		Str("id", n.ID).
		Str("title", stringsx.Clip(n.Title, logTitleMax)).
		Int("items", len(n.ListItems)).
		Msg("note created")
	writeJSON(w, http.StatusCreated, n)
}

func (h *Handlers) update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	req, err := decodeInput(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	if err := h.store.Update(id, req); err != nil {
		h.writeError(w, err)
		return
	}
	h.log.Debug().
		Str("id", id).
		Str("title", stringsx.Clip(req.Title, logTitleMax)).
		Int("items", len(req.ListItems)).
		Msg("note updated")
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.store.Delete(id); err != nil {
		h.writeError(w, err)
		return
	}
	h.log.Debug().Str("id", id).Msg("note deleted")
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		writeJSON(w, http.StatusNotFound, msgNotFound)
	case errors.Is(err, ErrInvalidInput):
		writeJSON(w, http.StatusUnprocessableEntity, msgInvalidInput)
	default:
		h.log.Error().Err(err).Msg("note store failure")
		writeJSON(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}

// decodeInput reads a single JSON object from body. An empty body decodes to
// the zero NoteInput so the store decides between not-found and invalid input.
func decodeInput(body io.Reader) (NoteInput, error) {
	var in NoteInput
	dec := json.NewDecoder(body)
	if err := dec.Decode(&in); err != nil {
		if errors.Is(err, io.EOF) {
			return NoteInput{}, nil
		}
		return NoteInput{}, err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return NoteInput{}, errTrailingData
	}
	return in, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
