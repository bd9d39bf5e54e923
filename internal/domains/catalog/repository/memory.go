package repository

import (
	"slices"
	"sync"

	"bookstore-catalog/internal/domains/catalog/model"
)

// shelf is the book collection of one category, kept in insertion order.
type shelf struct {
	category model.Category
	order    []int64
	books    map[int64]model.Book
}

func (s *shelf) list() []model.Book {
	out := make([]model.Book, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.books[id])
	}
	return out
}

func (s *shelf) remove(id int64) {
	delete(s.books, id)
	if i := slices.Index(s.order, id); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
}

// MemoryCatalog keeps the whole catalog in process memory.
//
// One RWMutex guards the shelves, the name lookup and the book index, so
// id assignment and the collection/index updates of a mutation are atomic.
type MemoryCatalog struct {
	mu sync.RWMutex

	categoryIDs *model.Sequence
	bookIDs     *model.Sequence

	shelves []*shelf          // registration order
	byName  map[string]*shelf // category name -> shelf
	owner   map[int64]*shelf  // book id -> owning shelf
}

type Option func(*MemoryCatalog)

// WithCategorySequence injects the generator for category ids.
func WithCategorySequence(seq *model.Sequence) Option {
	return func(c *MemoryCatalog) { c.categoryIDs = seq }
}

// WithBookSequence injects the generator for book ids.
func WithBookSequence(seq *model.Sequence) Option {
	return func(c *MemoryCatalog) { c.bookIDs = seq }
}

// NewMemoryCatalog returns an empty catalog. Both id sequences start at 1
// unless overridden.
func NewMemoryCatalog(opts ...Option) *MemoryCatalog {
	c := &MemoryCatalog{
		categoryIDs: model.NewSequence(1),
		bookIDs:     model.NewSequence(1),
		byName:      make(map[string]*shelf),
		owner:       make(map[int64]*shelf),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ Catalog = (*MemoryCatalog)(nil)

// ========== CATEGORIES ==========

// AddCategory registers a category. Registering a known name again is a
// no-op and returns the existing category unchanged.
func (c *MemoryCatalog) AddCategory(name, title string) model.Category {
	c.mu.Lock()
	defer c.mu.Unlock()

	if s, ok := c.byName[name]; ok {
		return s.category
	}

	s := &shelf{
		category: model.Category{Name: name, Title: title, ID: c.categoryIDs.Next()},
		books:    make(map[int64]model.Book),
	}
	c.shelves = append(c.shelves, s)
	c.byName[name] = s
	return s.category
}

func (c *MemoryCatalog) GetCategories() []model.Category {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]model.Category, 0, len(c.shelves))
	for _, s := range c.shelves {
		out = append(out, s.category)
	}
	return out
}

func (c *MemoryCatalog) ResolveByName(name string) (model.Category, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s, ok := c.byName[name]
	if !ok {
		return model.Category{}, model.NewCategoryNotFound(name)
	}
	return s.category, nil
}

func (c *MemoryCatalog) ResolveCategory(category model.Category) (model.Category, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s, err := c.shelfOf(category)
	if err != nil {
		return model.Category{}, err
	}
	return s.category, nil
}

// shelfOf requires c.mu to be held.
func (c *MemoryCatalog) shelfOf(category model.Category) (*shelf, error) {
	s, ok := c.byName[category.Name]
	if !ok || s.category.ID != category.ID {
		return nil, model.NewCategoryNotFound(category.Name)
	}
	return s, nil
}

// ========== BOOK QUERIES ==========

func (c *MemoryCatalog) GetBooksAsMap(category model.Category) (map[int64]model.Book, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s, err := c.shelfOf(category)
	if err != nil {
		return nil, err
	}

	out := make(map[int64]model.Book, len(s.books))
	for id, b := range s.books {
		out[id] = b
	}
	return out, nil
}

func (c *MemoryCatalog) GetBooks(category model.Category) ([]model.Book, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s, err := c.shelfOf(category)
	if err != nil {
		return nil, err
	}
	return s.list(), nil
}

func (c *MemoryCatalog) GetCategoryOf(bookID int64) (model.Category, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s, ok := c.owner[bookID]
	if !ok {
		return model.Category{}, false
	}
	return s.category, true
}

func (c *MemoryCatalog) GetBook(id int64) (model.Book, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s, ok := c.owner[id]
	if !ok {
		return model.Book{}, model.NewBookNotFound(id)
	}
	return s.books[id], nil
}

func (c *MemoryCatalog) CountBooks() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.owner)
}

// ========== BOOK MUTATIONS ==========

// AddBook stores book in category under a freshly issued id. Any id on
// the incoming book is ignored.
func (c *MemoryCatalog) AddBook(category model.Category, book model.Book) (model.Book, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, err := c.shelfOf(category)
	if err != nil {
		return model.Book{}, err
	}

	book.ID = c.bookIDs.Next()
	s.books[book.ID] = book
	s.order = append(s.order, book.ID)
	c.owner[book.ID] = s
	return book, nil
}

// UpdateBook replaces the stored fields of book id. The id and the owning
// category are kept.
func (c *MemoryCatalog) UpdateBook(id int64, book model.Book) (model.Book, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.owner[id]
	if !ok {
		return model.Book{}, model.NewBookNotFound(id)
	}

	book.ID = id
	s.books[id] = book
	return book, nil
}

func (c *MemoryCatalog) DeleteBook(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.owner[id]
	if !ok {
		return model.NewBookNotFound(id)
	}

	s.remove(id)
	delete(c.owner, id)
	return nil
}
