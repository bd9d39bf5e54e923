package service

import (
	"context"
	"io"

	"bookstore-catalog/internal/domains/catalog/model"

	"github.com/xuri/excelize/v2"
)

// CatalogService is the request-facing side of the catalog. Every
// mutating call validates its input fully before touching the catalog.
type CatalogService interface {
	ListCategories(ctx context.Context) []model.Category
	ListBooks(ctx context.Context, categoryName string) ([]model.Book, error)
	GetBook(ctx context.Context, rawID string) (model.Book, error)
	CreateBook(ctx context.Context, categoryName string, payload model.BookPayload) (model.Book, error)
	UpdateBook(ctx context.Context, rawID string, payload model.BookPayload) (model.Book, error)
	DeleteBook(ctx context.Context, rawID string) error
	CountBooks(ctx context.Context) int

	// Workbook exchange
	ExportBooks(ctx context.Context, categoryName string) (*excelize.File, error)
	ImportWorkbook(ctx context.Context, r io.Reader) (*ImportResult, error)
}

// ImportResult summarizes a workbook import.
type ImportResult struct {
	Categories int `json:"categories"`
	Books      int `json:"books"`
}
