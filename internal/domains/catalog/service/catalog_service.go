package service

import (
	"context"
	"slices"
	"strings"

	"bookstore-catalog/internal/domains/catalog/model"
	"bookstore-catalog/internal/domains/catalog/repository"

	"github.com/rs/zerolog/log"
)

type catalogService struct {
	catalog repository.Catalog
}

// NewCatalogService - Constructor with DI
func NewCatalogService(catalog repository.Catalog) CatalogService {
	return &catalogService{catalog: catalog}
}

// ============================================================
// QUERIES
// ============================================================

func (s *catalogService) ListCategories(ctx context.Context) []model.Category {
	return s.catalog.GetCategories()
}

func (s *catalogService) ListBooks(ctx context.Context, categoryName string) ([]model.Book, error) {
	category, err := s.catalog.ResolveByName(categoryName)
	if err != nil {
		return nil, err
	}
	return s.catalog.GetBooks(category)
}

func (s *catalogService) GetBook(ctx context.Context, rawID string) (model.Book, error) {
	id, err := model.ParseBookID(rawID)
	if err != nil {
		return model.Book{}, err
	}
	return s.catalog.GetBook(id)
}

func (s *catalogService) CountBooks(ctx context.Context) int {
	return s.catalog.CountBooks()
}

// ============================================================
// COMMANDS
// ============================================================

// CreateBook adds the payload to the named category and returns it with
// its assigned id.
func (s *catalogService) CreateBook(ctx context.Context, categoryName string, payload model.BookPayload) (model.Book, error) {
	// ========== Validate ==========
	if err := checkBookProperties(payload, false); err != nil {
		return model.Book{}, err
	}
	category, err := s.catalog.ResolveByName(categoryName)
	if err != nil {
		return model.Book{}, err
	}

	// ========== Mutate ==========
	book, err := s.catalog.AddBook(category, payload.Book)
	if err != nil {
		return model.Book{}, err
	}

	log.Info().
		Int64("book_id", book.ID).
		Str("category", category.Name).
		Msg("Book created")

	return book, nil
}

// UpdateBook replaces the book at rawID. The body must carry the same id.
func (s *catalogService) UpdateBook(ctx context.Context, rawID string, payload model.BookPayload) (model.Book, error) {
	id, err := model.ParseBookID(rawID)
	if err != nil {
		return model.Book{}, err
	}

	if err := checkBookProperties(payload, true); err != nil {
		return model.Book{}, err
	}
	if payload.Book.ID != id {
		return model.Book{}, model.NewValidationError(
			"Book data can only be updated if the id in the path (%d) and the id in the body (%d) match.",
			id, payload.Book.ID,
		)
	}

	book, err := s.catalog.UpdateBook(id, payload.Book)
	if err != nil {
		return model.Book{}, err
	}

	log.Info().Int64("book_id", id).Msg("Book updated")
	return book, nil
}

func (s *catalogService) DeleteBook(ctx context.Context, rawID string) error {
	id, err := model.ParseBookID(rawID)
	if err != nil {
		return err
	}

	if err := s.catalog.DeleteBook(id); err != nil {
		return err
	}

	log.Info().Int64("book_id", id).Msg("Book deleted")
	return nil
}

// checkBookProperties verifies that every mandatory field (plus id when
// withID is set) was supplied. Only presence is checked, not values.
func checkBookProperties(payload model.BookPayload, withID bool) error {
	mandatory := slices.Clone(model.MandatoryFields)
	if withID {
		mandatory = append(mandatory, model.FieldID)
	}

	contained := make([]string, 0, len(mandatory))
	for _, field := range mandatory {
		if payload.Has(field) {
			contained = append(contained, field)
		}
	}

	if len(contained) == len(mandatory) {
		return nil
	}

	present := "none of those"
	if len(contained) > 0 {
		present = "only " + strings.Join(contained, ", ")
	}
	return model.NewValidationError("Book data must include %s, but %s present.", strings.Join(mandatory, ", "), present)
}
