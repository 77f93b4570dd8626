package book

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"bookshelf/internal/httpx"

	"github.com/google/uuid"
)

type HTTPHandler struct {
	repo Repository
}

func NewHTTPHandler(repo Repository) *HTTPHandler {
	return &HTTPHandler{repo: repo}
}

// bookRequest is the body shape shared by create and update. Required
// fields first so validation failures surface in contract order.
type bookRequest struct {
	Title         string  `json:"title" validate:"required"`
	Author        string  `json:"author" validate:"required"`
	ListType      string  `json:"listType" validate:"required,oneof=owned want"`
	Genre         *string `json:"genre"`
	YearPublished *int    `json:"yearPublished"`
	Rating        *int    `json:"rating"`
	Notes         *string `json:"notes"`
}

// List handles GET /api/books.
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.repo.List(r.Context())
	if err != nil {
		log.Printf("list books failed: request_id=%s err=%v", httpx.RequestIDFrom(r), err)
		httpx.Error(w, http.StatusInternalServerError, "Error fetching books from database")
		return
	}
	httpx.JSON(w, http.StatusOK, books)
}

// Get handles GET /api/books/{id}.
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	b, err := h.repo.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "Book not found")
			return
		}
		log.Printf("get book failed: request_id=%s id=%s err=%v", httpx.RequestIDFrom(r), id, err)
		httpx.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	httpx.JSON(w, http.StatusOK, b)
}

// Create handles POST /api/books.
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if verrs := validateBookRequest(req); len(verrs) > 0 {
		httpx.Error(w, http.StatusBadRequest, verrs[0].Message)
		return
	}

	b := Book{
		ID:            uuid.NewString(),
		Title:         req.Title,
		Author:        req.Author,
		Genre:         req.Genre,
		YearPublished: req.YearPublished,
		Rating:        req.Rating,
		Notes:         req.Notes,
		ListType:      req.ListType,
		DateAdded:     time.Now().UTC(),
	}
	if err := h.repo.Create(r.Context(), &b); err != nil {
		log.Printf("create book failed: request_id=%s err=%v", httpx.RequestIDFrom(r), err)
		httpx.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	httpx.JSON(w, http.StatusCreated, b)
}

// Update handles PUT /api/books/{id}. Full-replace semantics: every
// mutable field is overwritten from the request body.
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if verrs := validateBookRequest(req); len(verrs) > 0 {
		httpx.Error(w, http.StatusBadRequest, verrs[0].Message)
		return
	}

	b := Book{
		Title:         req.Title,
		Author:        req.Author,
		Genre:         req.Genre,
		YearPublished: req.YearPublished,
		Rating:        req.Rating,
		Notes:         req.Notes,
		ListType:      req.ListType,
	}
	updated, err := h.repo.Update(r.Context(), id, &b)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "Book not found")
			return
		}
		log.Printf("update book failed: request_id=%s id=%s err=%v", httpx.RequestIDFrom(r), id, err)
		httpx.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	httpx.JSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/books/{id}.
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "Book not found")
			return
		}
		log.Printf("delete book failed: request_id=%s id=%s err=%v", httpx.RequestIDFrom(r), id, err)
		httpx.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	httpx.NoContent(w)
}
