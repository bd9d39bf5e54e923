package repository

import "bookstore-catalog/internal/domains/catalog/model"

// Catalog owns the categories and, within each, its books.
//
// Category references come in two explicit forms: a name, resolved with
// ResolveByName, or an already-resolved model.Category which the
// category-taking methods pass through after checking it is registered.
type Catalog interface {
	AddCategory(name, title string) model.Category
	GetCategories() []model.Category
	ResolveByName(name string) (model.Category, error)
	ResolveCategory(category model.Category) (model.Category, error)

	GetBooksAsMap(category model.Category) (map[int64]model.Book, error)
	GetBooks(category model.Category) ([]model.Book, error)
	GetCategoryOf(bookID int64) (model.Category, bool)
	GetBook(id int64) (model.Book, error)
	CountBooks() int

	AddBook(category model.Category, book model.Book) (model.Book, error)
	UpdateBook(id int64, book model.Book) (model.Book, error)
	DeleteBook(id int64) error
}
