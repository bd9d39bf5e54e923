package repository

import (
	"errors"
	"sync"
	"testing"

	"bookstore-catalog/internal/domains/catalog/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBook(title string) model.Book {
	return model.NewBook(title, "images/"+title+".jpg", decimal.RequireFromString("10.50"), "about "+title, "isbn-"+title)
}

func TestMemoryCatalog_AddCategory(t *testing.T) {
	c := NewMemoryCatalog()

	html := c.AddCategory("html5", "HTML 5")
	js := c.AddCategory("javascript", "JavaScript")
	again := c.AddCategory("html5", "Renamed")

	assert.Equal(t, int64(1), html.ID)
	assert.Equal(t, int64(2), js.ID)
	assert.Equal(t, html, again, "re-registering a name is a no-op")

	assert.Equal(t, []model.Category{html, js}, c.GetCategories())
}

func TestMemoryCatalog_Resolve(t *testing.T) {
	c := NewMemoryCatalog()
	html := c.AddCategory("html5", "HTML 5")

	got, err := c.ResolveByName("html5")
	require.NoError(t, err)
	assert.Equal(t, html, got)

	_, err = c.ResolveByName("cobol")
	assert.True(t, errors.Is(err, model.ErrCategoryNotFound))
	assert.Equal(t, "Unknown book category cobol", err.Error())

	got, err = c.ResolveCategory(html)
	require.NoError(t, err)
	assert.Equal(t, html, got)

	// A category from another catalog is not a reference into this one.
	other := NewMemoryCatalog(WithCategorySequence(model.NewSequence(50)))
	foreign := other.AddCategory("html5", "HTML 5")
	_, err = c.ResolveCategory(foreign)
	assert.True(t, errors.Is(err, model.ErrCategoryNotFound))
}

func TestMemoryCatalog_BooksInInsertionOrder(t *testing.T) {
	c := NewMemoryCatalog()
	html := c.AddCategory("html5", "HTML 5")
	js := c.AddCategory("javascript", "JavaScript")

	a, err := c.AddBook(html, newBook("a"))
	require.NoError(t, err)
	b, err := c.AddBook(js, newBook("b"))
	require.NoError(t, err)
	d, err := c.AddBook(html, newBook("d"))
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 2, 3}, []int64{a.ID, b.ID, d.ID}, "book ids are global, not per category")

	books, err := c.GetBooks(html)
	require.NoError(t, err)
	assert.Equal(t, []model.Book{a, d}, books)

	asMap, err := c.GetBooksAsMap(html)
	require.NoError(t, err)
	assert.Len(t, asMap, 2)
	assert.Equal(t, d, asMap[d.ID])

	owner, ok := c.GetCategoryOf(b.ID)
	require.True(t, ok)
	assert.Equal(t, js, owner)

	_, ok = c.GetCategoryOf(999)
	assert.False(t, ok)

	assert.Equal(t, 3, c.CountBooks())
}

func TestMemoryCatalog_EmptyCategoryListsNoBooks(t *testing.T) {
	c := NewMemoryCatalog()
	empty := c.AddCategory("css", "CSS")

	books, err := c.GetBooks(empty)
	require.NoError(t, err)
	assert.NotNil(t, books)
	assert.Empty(t, books)
}

func TestMemoryCatalog_AddBookUnknownCategory(t *testing.T) {
	c := NewMemoryCatalog()

	_, err := c.AddBook(model.Category{Name: "ghost", ID: 1}, newBook("x"))
	assert.True(t, errors.Is(err, model.ErrCategoryNotFound))
	assert.Equal(t, 0, c.CountBooks())

	// A failed insert does not burn an id.
	cat := c.AddCategory("real", "Real")
	b, err := c.AddBook(cat, newBook("y"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), b.ID)
}

func TestMemoryCatalog_AddBookIgnoresCallerID(t *testing.T) {
	c := NewMemoryCatalog()
	cat := c.AddCategory("html5", "HTML 5")

	in := newBook("x")
	in.ID = 77
	out, err := c.AddBook(cat, in)
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)

	_, err = c.GetBook(77)
	assert.True(t, errors.Is(err, model.ErrBookNotFound))
}

func TestMemoryCatalog_UpdateBook(t *testing.T) {
	c := NewMemoryCatalog()
	cat := c.AddCategory("html5", "HTML 5")
	stored, err := c.AddBook(cat, newBook("old"))
	require.NoError(t, err)

	replacement := newBook("new")
	updated, err := c.UpdateBook(stored.ID, replacement)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, updated.ID)
	assert.Equal(t, "new", updated.Title)

	got, err := c.GetBook(stored.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	owner, ok := c.GetCategoryOf(stored.ID)
	require.True(t, ok)
	assert.Equal(t, cat, owner)

	_, err = c.UpdateBook(999, replacement)
	assert.True(t, errors.Is(err, model.ErrBookNotFound))
}

func TestMemoryCatalog_DeleteBook(t *testing.T) {
	c := NewMemoryCatalog()
	cat := c.AddCategory("html5", "HTML 5")
	a, _ := c.AddBook(cat, newBook("a"))
	b, _ := c.AddBook(cat, newBook("b"))

	require.NoError(t, c.DeleteBook(a.ID))

	_, err := c.GetBook(a.ID)
	assert.True(t, errors.Is(err, model.ErrBookNotFound))
	_, ok := c.GetCategoryOf(a.ID)
	assert.False(t, ok)

	books, err := c.GetBooks(cat)
	require.NoError(t, err)
	assert.Equal(t, []model.Book{b}, books)

	err = c.DeleteBook(a.ID)
	assert.True(t, errors.Is(err, model.ErrBookNotFound), "second delete reports not found")
}

func TestMemoryCatalog_IDsNeverReused(t *testing.T) {
	c := NewMemoryCatalog()
	cat := c.AddCategory("html5", "HTML 5")

	var last int64
	for i := 0; i < 50; i++ {
		b, err := c.AddBook(cat, newBook("x"))
		require.NoError(t, err)
		assert.Greater(t, b.ID, last)
		last = b.ID
		require.NoError(t, c.DeleteBook(b.ID))
	}
	assert.Equal(t, int64(50), last)
	assert.Equal(t, 0, c.CountBooks())
}

func TestMemoryCatalog_InjectedSequences(t *testing.T) {
	c := NewMemoryCatalog(
		WithCategorySequence(model.NewSequence(10)),
		WithBookSequence(model.NewSequence(500)),
	)

	cat := c.AddCategory("html5", "HTML 5")
	b, err := c.AddBook(cat, newBook("x"))
	require.NoError(t, err)

	assert.Equal(t, int64(10), cat.ID)
	assert.Equal(t, int64(500), b.ID)
}

func TestMemoryCatalog_ReturnsCopies(t *testing.T) {
	c := NewMemoryCatalog()
	cat := c.AddCategory("html5", "HTML 5")
	b, _ := c.AddBook(cat, newBook("a"))

	books, _ := c.GetBooks(cat)
	books[0].Title = "mutated"
	asMap, _ := c.GetBooksAsMap(cat)
	delete(asMap, b.ID)

	got, err := c.GetBook(b.ID)
	require.NoError(t, err)
	assert.Equal(t, "a", got.Title)
	assert.Equal(t, 1, c.CountBooks())
}

func TestMemoryCatalog_ConcurrentAdds(t *testing.T) {
	c := NewMemoryCatalog()
	cat := c.AddCategory("html5", "HTML 5")

	const workers, perWorker = 8, 25
	ids := make(chan int64, workers*perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				b, err := c.AddBook(cat, newBook("x"))
				if err == nil {
					ids <- b.ID
				}
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers*perWorker)
	assert.Equal(t, workers*perWorker, c.CountBooks())
}
