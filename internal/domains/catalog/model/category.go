package model

import "fmt"

// ============================================================
// ENTITY: Category
// ============================================================
// Category groups books under a stable URL name.
//
// Name is the unique key and never changes after registration.
// ID is assigned by the catalog when the category is first registered.
type Category struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	ID    int64  `json:"id"`
}

func (c Category) String() string {
	return fmt.Sprintf("Category{ID: %d, Name: %s, Title: %s}", c.ID, c.Name, c.Title)
}
