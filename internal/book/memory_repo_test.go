package book

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestMemoryRepo_Seed(t *testing.T) {
	seed := DefaultSeed()
	repo := NewMemoryRepo(seed...)

	books, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultSeed(), books)

	books[0].Title = "changed"
	seed[1].Title = "changed"
	again, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "The Hobbit", again[0].Title)
	assert.Equal(t, "1984", again[1].Title)
}

func TestMemoryRepo_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("empty registry starts at 1", func(t *testing.T) {
		repo := NewMemoryRepo()
		b, err := repo.Create(ctx, "Dune", "Frank Herbert")
		require.NoError(t, err)
		assert.Equal(t, Book{ID: 1, Title: "Dune", Author: "Frank Herbert"}, b)
	})

	t.Run("next id is max plus one", func(t *testing.T) {
		repo := NewMemoryRepo(Book{ID: 7, Title: "a", Author: "b"}, Book{ID: 3, Title: "c", Author: "d"})
		b, err := repo.Create(ctx, "Dune", "Frank Herbert")
		require.NoError(t, err)
		assert.Equal(t, 8, b.ID)
	})

	t.Run("id of deleted highest record is reused", func(t *testing.T) {
		repo := NewMemoryRepo(DefaultSeed()...)
		require.NoError(t, repo.Delete(ctx, 2))
		b, err := repo.Create(ctx, "Foo", "Bar")
		require.NoError(t, err)
		assert.Equal(t, 2, b.ID)
	})
}

func TestMemoryRepo_Get(t *testing.T) {
	repo := NewMemoryRepo(DefaultSeed()...)

	b, err := repo.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "George Orwell", b.Author)

	_, err = repo.Get(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepo_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo(DefaultSeed()...)

	title := "The Hobbit, or There and Back Again"
	b, err := repo.Update(ctx, 1, Changes{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, Book{ID: 1, Title: title, Author: "J.R.R. Tolkien"}, b)

	books, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, b, books[0], "update keeps position")

	_, err = repo.Update(ctx, 99, Changes{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepo_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo(DefaultSeed()...)

	require.NoError(t, repo.Delete(ctx, 1))
	_, err := repo.Get(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, 1), ErrNotFound)

	books, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Book{{ID: 2, Title: "1984", Author: "George Orwell"}}, books)
}

func TestMemoryRepo_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	repo := NewMemoryRepo(DefaultSeed()...)

	_, err := repo.Create(ctx, "x", "y")
	assert.ErrorIs(t, err, context.Canceled)

	books, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, books, 2)
}

func TestMemoryRepo_ConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()

	const n = 100
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Create(ctx, "t", "a")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	books, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, books, n)
	seen := make(map[int]bool, n)
	for _, b := range books {
		assert.False(t, seen[b.ID], "duplicate id %d", b.ID)
		seen[b.ID] = true
	}
}

// TestMemoryRepo_IDsUniqueAndOrdered is a property-based test using rapid.
// Random create/delete sequences must never produce duplicate ids, and List
// must reflect creation order.
func TestMemoryRepo_IDsUniqueAndOrdered(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		ctx := context.Background()
		repo := NewMemoryRepo(DefaultSeed()...)
		expected := DefaultSeed()

		steps := rapid.IntRange(1, 50).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			if len(expected) > 0 && rapid.Bool().Draw(rt, "delete") {
				idx := rapid.IntRange(0, len(expected)-1).Draw(rt, "idx")
				if err := repo.Delete(ctx, expected[idx].ID); err != nil {
					rt.Fatalf("delete %d: %v", expected[idx].ID, err)
				}
				expected = append(expected[:idx], expected[idx+1:]...)
				continue
			}

			title := rapid.StringMatching(`[A-Za-z]{1,12}`).Draw(rt, "title")
			b, err := repo.Create(ctx, title, "author")
			if err != nil {
				rt.Fatalf("create: %v", err)
			}
			for _, existing := range expected {
				if existing.ID == b.ID {
					rt.Fatalf("id %d already in use", b.ID)
				}
			}
			expected = append(expected, b)
		}

		books, err := repo.List(ctx)
		if err != nil {
			rt.Fatalf("list: %v", err)
		}
		if len(books) != len(expected) {
			rt.Fatalf("got %d books, want %d", len(books), len(expected))
		}
		for i := range books {
			if books[i] != expected[i] {
				rt.Fatalf("position %d: got %+v, want %+v", i, books[i], expected[i])
			}
		}
	})
}
