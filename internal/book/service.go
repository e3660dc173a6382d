package book

import (
	"context"
	"strings"
)

// CreateInput is the request to add a book. Both fields are trimmed before validation.
type CreateInput struct {
	Title  string `json:"title" validate:"required"`
	Author string `json:"author" validate:"required"`
}

func (in *CreateInput) normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Author = strings.TrimSpace(in.Author)
}

// UpdateInput is a partial update. An empty field counts as absent.
type UpdateInput struct {
	Title  string `json:"title" validate:"required_without=Author"`
	Author string `json:"author" validate:"required_without=Title"`
}

func (in *UpdateInput) normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Author = strings.TrimSpace(in.Author)
}

func (in UpdateInput) changes() Changes {
	var c Changes
	if in.Title != "" {
		c.Title = &in.Title
	}
	if in.Author != "" {
		c.Author = &in.Author
	}
	return c
}

// Service provides book registry business logic.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every book in insertion order.
func (s *Service) List(ctx context.Context) ([]Book, error) {
	return s.repo.List(ctx)
}

// Get returns a book by its id.
func (s *Service) Get(ctx context.Context, id int) (Book, error) {
	return s.repo.Get(ctx, id)
}

// Create stores a new book with trimmed fields and returns it.
func (s *Service) Create(ctx context.Context, in CreateInput) (Book, error) {
	in.normalize()
	if err := validateInput(in); err != nil {
		return Book{}, err
	}
	return s.repo.Create(ctx, in.Title, in.Author)
}

// Update overwrites the supplied fields of a book. An unknown id wins over
// an empty request.
func (s *Service) Update(ctx context.Context, id int, in UpdateInput) (Book, error) {
	in.normalize()
	if err := validateInput(in); err != nil {
		if _, getErr := s.repo.Get(ctx, id); getErr != nil {
			return Book{}, getErr
		}
		return Book{}, err
	}
	return s.repo.Update(ctx, id, in.changes())
}

// Delete removes a book by its id.
func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
