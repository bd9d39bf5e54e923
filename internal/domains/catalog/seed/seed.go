package seed

import (
	"bookstore-catalog/internal/domains/catalog/model"
	"bookstore-catalog/internal/domains/catalog/repository"

	"github.com/shopspring/decimal"
)

type entry struct {
	name  string
	title string
	books []model.Book
}

var defaults = []entry{
	{
		name:  "html5",
		title: "HTML 5",
		books: []model.Book{
			model.NewBook("Html5: Up And Running", "images/HTML5_Up_And_Running.jpg", decimal.RequireFromString("24.80"),
				"If you don't know about the new features available in HTML5, now's the time to find out. This book provides practical information about how and why the latest version of this markup language will significantly change the way you develop for the Web.",
				"978-0596806026"),
			model.NewBook("HTML5: Pocket Reference", "images/HTML5_Pocket_Reference.jpg", decimal.RequireFromString("15.90"),
				"Need help finding the right HTML5 element or attribute for your web page or application? HTML5 Pocket Reference is the classic reference that web designers and developers have been keeping close at hand for more than thirteen years.",
				"978-1449363352"),
		},
	},
	{
		name:  "javascript",
		title: "JavaScript",
		books: []model.Book{
			model.NewBook("JavaScript: The Definitive Guide", "images/JavaScript_The_Definitive_Guide.jfif", decimal.RequireFromString("47.30"),
				"This Fifth Edition is completely revised and expanded to cover JavaScript as it is used in today's Web 2.0 applications. This book is both an example-driven programmer's guide and a keep-on-your-desk reference, with new chapters that explain everything you need to know to get the most out of JavaScript.",
				"9781449308162"),
			model.NewBook("JavaScript: The Good Parts", "images/JavaScript_The_Good_Parts.jfif", decimal.RequireFromString("23.90"),
				"Most programming languages contain good and bad parts, but JavaScript has more than its share of the bad, having been developed and released in a hurry before it could be refined.",
				"0596517742"),
		},
	},
}

// Defaults registers the storefront's starter categories and books.
// On an empty catalog this yields categories 1-2 and books 1-4.
func Defaults(catalog repository.Catalog) error {
	for _, e := range defaults {
		category := catalog.AddCategory(e.name, e.title)
		for _, b := range e.books {
			if _, err := catalog.AddBook(category, b); err != nil {
				return err
			}
		}
	}
	return nil
}
