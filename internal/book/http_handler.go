package book

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"math"
	"net/http"
	"strings"

	"bookregistry/internal/httpx"
)

const (
	msgNotFound        = "Book not found"
	msgCreateRequired  = "Both title and author are required"
	msgUpdateRequired  = "Provide title and/or author to update"
	msgInvalidJSON     = "Invalid JSON body"
	msgBodyTooLarge    = "Request body too large"
	msgInternalFailure = "Internal server error"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Register mounts the book routes on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /books", h.List)
	mux.HandleFunc("GET /books/{$}", h.List)
	mux.HandleFunc("POST /books", h.Create)
	mux.HandleFunc("POST /books/{$}", h.Create)
	mux.HandleFunc("GET /books/{id}", h.Get)
	mux.HandleFunc("PUT /books/{id}", h.Update)
	mux.HandleFunc("DELETE /books/{id}", h.Delete)
}

// List handles GET /books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.List(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, books)
}

// Get handles GET /books/{id}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.Get(r.Context(), parseID(r.PathValue("id")))
	if err != nil {
		h.writeError(w, r, err, "")
		return
	}
	httpx.JSON(w, http.StatusOK, b)
}

// Create handles POST /books
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in CreateInput
	if !decodeBody(w, r, &in) {
		return
	}

	b, err := h.service.Create(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err, msgCreateRequired)
		return
	}
	httpx.JSON(w, http.StatusCreated, b)
}

// Update handles PUT /books/{id}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := parseID(r.PathValue("id"))

	var in UpdateInput
	if !decodeBody(w, r, &in) {
		return
	}

	b, err := h.service.Update(r.Context(), id, in)
	if err != nil {
		h.writeError(w, r, err, msgUpdateRequired)
		return
	}
	httpx.JSON(w, http.StatusOK, b)
}

// Delete handles DELETE /books/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), parseID(r.PathValue("id"))); err != nil {
		h.writeError(w, r, err, "")
		return
	}
	httpx.NoContent(w)
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error, invalidMsg string) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.JSONError(w, http.StatusNotFound, msgNotFound)
	case errors.Is(err, ErrInvalidArgument) && invalidMsg != "":
		httpx.JSONError(w, http.StatusBadRequest, invalidMsg)
	default:
		h.internalError(w, r, err)
	}
}

func (h *HTTPHandler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("book handler error: method=%s path=%s request_id=%s error=%v",
		r.Method, r.URL.Path, httpx.RequestIDFrom(r), err)
	httpx.JSONError(w, http.StatusInternalServerError, msgInternalFailure)
}

// decodeBody reads a JSON object into dst. An empty body leaves dst zeroed.
// On failure it writes the response and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		httpx.JSONError(w, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
		return false
	}
	httpx.JSONError(w, http.StatusBadRequest, msgInvalidJSON)
	return false
}

// parseID reads a base-10 integer the lenient way: leading whitespace and a
// sign are accepted and anything after the leading digits is ignored. Input
// without leading digits, or out of range, yields 0, which never matches a
// stored id.
func parseID(raw string) int {
	s := strings.TrimLeft(raw, " \t\n\v\f\r")

	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	n, digits := 0, 0
	for ; digits < len(s) && s[digits] >= '0' && s[digits] <= '9'; digits++ {
		d := int(s[digits] - '0')
		if n > (math.MaxInt-d)/10 {
			return 0
		}
		n = n*10 + d
	}
	if digits == 0 {
		return 0
	}
	if neg {
		return -n
	}
	return n
}
