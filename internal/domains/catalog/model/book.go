package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

func init() {
	// The storefront script does arithmetic on price, so it travels as a JSON number.
	decimal.MarshalJSONWithoutQuotes = true
}

// ============================================================
// ENTITY: Book
// ============================================================
// Book is a sellable item. ID is global across all categories and is
// only ever assigned by the catalog.
type Book struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Cover       string          `json:"cover"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	ISBN        string          `json:"isbn"`
}

// NewBook builds a book without an id; the catalog assigns one on insert.
func NewBook(title, cover string, price decimal.Decimal, description, isbn string) Book {
	return Book{
		Title:       title,
		Cover:       cover,
		Price:       price,
		Description: description,
		ISBN:        isbn,
	}
}

// Equal compares all fields, using decimal equality for the price
// (24.8 and 24.80 are the same price).
func (b Book) Equal(other Book) bool {
	return b.ID == other.ID &&
		b.Title == other.Title &&
		b.Cover == other.Cover &&
		b.Price.Equal(other.Price) &&
		b.Description == other.Description &&
		b.ISBN == other.ISBN
}

func (b Book) String() string {
	return fmt.Sprintf("Book{ID: %d, Title: %s, ISBN: %s, Price: %s}", b.ID, b.Title, b.ISBN, b.Price)
}
