package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/gridster/pkg/buildinfo"
	"github.com/matzehuels/gridster/pkg/errors"
	"github.com/matzehuels/gridster/pkg/grid"
	"github.com/matzehuels/gridster/pkg/layout"
)

// =============================================================================
// Request Bodies
// =============================================================================

type positionRequest struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

type sizeRequest struct {
	SizeX int `json:"size_x"`
	SizeY int `json:"size_y"`
}

type containerRequest struct {
	Width float64 `json:"width"`
}

type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Build: buildinfo.Get()})
}

func (s *Server) getLayout(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.layout.Snapshot())
}

func (s *Server) getDocument(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.layout.Document())
}

func (s *Server) resizeContainer(w http.ResponseWriter, r *http.Request) {
	var req containerRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Width <= 0 {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "width must be positive"))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.layout.Engine
	if _, err := e.ResizeContainer(req.Width); err != nil {
		writeError(w, err)
		return
	}
	e.Settle()
	writeJSON(w, http.StatusOK, s.layout.Snapshot())
}

func (s *Server) addItem(w http.ResponseWriter, r *http.Request) {
	var spec layout.ItemSpec
	if err := decode(r, &spec); err != nil {
		writeError(w, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	it, err := s.layout.Add(spec)
	if err != nil {
		writeError(w, err)
		return
	}
	s.logger.Info("added item", "item", it.ID, "row", it.Row, "col", it.Col)
	writeJSON(w, http.StatusCreated, s.layout.Snapshot())
}

func (s *Server) moveItem(w http.ResponseWriter, r *http.Request) {
	var req positionRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Row == nil || req.Col == nil {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "row and col are required"))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	it, err := s.item(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	e := s.layout.Engine
	e.PlaceAt(it, *req.Row, *req.Col)
	e.Settle()
	writeJSON(w, http.StatusOK, s.layout.Snapshot())
}

func (s *Server) resizeItem(w http.ResponseWriter, r *http.Request) {
	var req sizeRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	it, err := s.item(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	e := s.layout.Engine
	e.Resize(it, req.SizeX, req.SizeY)
	e.Settle()
	writeJSON(w, http.StatusOK, s.layout.Snapshot())
}

func (s *Server) removeItem(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := chi.URLParam(r, "id")
	if !s.layout.Remove(id) {
		writeError(w, errors.New(errors.ErrCodeNotFound, "no item %q", id))
		return
	}
	writeJSON(w, http.StatusOK, s.layout.Snapshot())
}

// swapItems trades the cells of two items. Swap itself checks nothing, so
// only items of the same size are accepted here.
func (s *Server) swapItems(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, err := s.item(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	b, err := s.item(r, "other")
	if err != nil {
		writeError(w, err)
		return
	}
	if a.SizeX != b.SizeX || a.SizeY != b.SizeY {
		writeError(w, errors.New(errors.ErrCodeInvalidInput,
			"cannot swap %s (%dx%d) with %s (%dx%d)", a.ID, a.SizeX, a.SizeY, b.ID, b.SizeX, b.SizeY))
		return
	}

	e := s.layout.Engine
	e.Swap(a, b)
	e.PlaceAt(a, a.Row, a.Col)
	e.PlaceAt(b, b.Row, b.Col)
	e.Settle()
	writeJSON(w, http.StatusOK, s.layout.Snapshot())
}

func (s *Server) compact(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.layout.Engine
	e.FloatAll()
	e.Settle()
	writeJSON(w, http.StatusOK, s.layout.Snapshot())
}

// =============================================================================
// Helpers
// =============================================================================

// item looks up the item named by a URL parameter. The caller holds s.mu.
func (s *Server) item(r *http.Request, param string) (*grid.Item, error) {
	id := chi.URLParam(r, param)
	it := s.layout.Item(id)
	if it == nil {
		return nil, errors.New(errors.ErrCodeNotFound, "no item %q", id)
	}
	return it, nil
}

func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode request body")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, statusFor(code), errorResponse{Code: code, Message: errors.UserMessage(err)})
}

func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidConfig:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeGridFull:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
