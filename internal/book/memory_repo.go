package book

import (
	"context"
	"slices"
	"sync"
)

// MemoryRepo keeps books in process memory, in insertion order.
// Every operation holds mu for its whole scan-then-mutate sequence.
type MemoryRepo struct {
	mu    sync.Mutex
	books []Book
}

// NewMemoryRepo returns a registry holding a copy of seed.
func NewMemoryRepo(seed ...Book) *MemoryRepo {
	return &MemoryRepo{books: slices.Clone(seed)}
}

func (r *MemoryRepo) List(ctx context.Context) ([]Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Book, len(r.books))
	copy(out, r.books)
	return out, nil
}

func (r *MemoryRepo) Get(ctx context.Context, id int) (Book, error) {
	if err := ctx.Err(); err != nil {
		return Book{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return Book{}, ErrNotFound
	}
	return r.books[i], nil
}

func (r *MemoryRepo) Create(ctx context.Context, title, author string) (Book, error) {
	if err := ctx.Err(); err != nil {
		return Book{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	b := Book{ID: r.nextID(), Title: title, Author: author}
	r.books = append(r.books, b)
	return b, nil
}

func (r *MemoryRepo) Update(ctx context.Context, id int, c Changes) (Book, error) {
	if err := ctx.Err(); err != nil {
		return Book{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return Book{}, ErrNotFound
	}
	updated := r.books[i]
	if c.Title != nil {
		updated.Title = *c.Title
	}
	if c.Author != nil {
		updated.Author = *c.Author
	}
	r.books[i] = updated
	return updated, nil
}

func (r *MemoryRepo) Delete(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	r.books = slices.Delete(r.books, i, i+1)
	return nil
}

func (r *MemoryRepo) indexOf(id int) int {
	return slices.IndexFunc(r.books, func(b Book) bool { return b.ID == id })
}

// nextID is one past the current maximum id, so the id of a deleted
// highest record is handed out again.
func (r *MemoryRepo) nextID() int {
	maxID := 0
	for _, b := range r.books {
		if b.ID > maxID {
			maxID = b.ID
		}
	}
	return maxID + 1
}
