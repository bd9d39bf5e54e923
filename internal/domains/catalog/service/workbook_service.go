package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"bookstore-catalog/internal/domains/catalog/model"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// WorkbookSheet is the sheet written by ExportBooks and preferred by
// ImportWorkbook. Imports fall back to the first sheet.
const WorkbookSheet = "Books"

const (
	columnCategory      = "category"
	columnCategoryTitle = "category_title"
)

var exportHeaders = []string{
	columnCategory,
	columnCategoryTitle,
	model.FieldID,
	model.FieldTitle,
	model.FieldCover,
	model.FieldPrice,
	model.FieldDescription,
	model.FieldISBN,
}

// workbookRow is one parsed, validated data row.
type workbookRow struct {
	category      string
	categoryTitle string
	payload       model.BookPayload
}

// ============================================================
// EXPORT
// ============================================================

// ExportBooks writes the books of one category into a new workbook.
// The layout is accepted back by ImportWorkbook.
func (s *catalogService) ExportBooks(ctx context.Context, categoryName string) (*excelize.File, error) {
	category, err := s.catalog.ResolveByName(categoryName)
	if err != nil {
		return nil, err
	}
	books, err := s.catalog.GetBooks(category)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", WorkbookSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	header := make([]any, len(exportHeaders))
	for i, h := range exportHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(WorkbookSheet, "A1", &header); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, b := range books {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		row := []any{category.Name, category.Title, b.ID, b.Title, b.Cover, b.Price.InexactFloat64(), b.Description, b.ISBN}
		if err := f.SetSheetRow(WorkbookSheet, cell, &row); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	return f, nil
}

// ============================================================
// IMPORT
// ============================================================

// ImportWorkbook loads categories and books from a workbook. The header
// row names the columns; category and the mandatory book fields are
// required. Every row is validated before anything is written, so a bad
// row leaves the catalog untouched.
func (s *catalogService) ImportWorkbook(ctx context.Context, r io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		log.Debug().Err(err).Msg("Workbook could not be opened")
		return nil, model.NewValidationError("Upload is not a readable xlsx workbook.")
	}
	defer f.Close()

	sheet := WorkbookSheet
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, model.NewValidationError("Workbook has no sheets.")
		}
		sheet = sheets[0]
	}

	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	if len(records) < 2 {
		return nil, model.NewValidationError("Workbook sheet %s has no data rows.", sheet)
	}

	// ========== Parse + validate all rows ==========
	colMap := buildColumnIndexMap(records[0])
	if _, ok := colMap[columnCategory]; !ok {
		return nil, model.NewValidationError("Workbook must have a %s column.", columnCategory)
	}

	rows := make([]workbookRow, 0, len(records)-1)
	for i, record := range records[1:] {
		rowNum := i + 2
		if isBlank(record) {
			continue
		}
		row, err := parseWorkbookRow(record, colMap, rowNum)
		if err != nil {
			return nil, err
		}
		if err := checkBookProperties(row.payload, false); err != nil {
			return nil, model.NewValidationError("Row %d: %s", rowNum, err.Error())
		}
		rows = append(rows, row)
	}

	// ========== Apply ==========
	result := &ImportResult{}
	seen := make(map[string]model.Category)
	for _, row := range rows {
		category, ok := seen[row.category]
		if !ok {
			if _, err := s.catalog.ResolveByName(row.category); err != nil {
				result.Categories++
			}
			category = s.catalog.AddCategory(row.category, row.categoryTitle)
			seen[row.category] = category
		}
		if _, err := s.catalog.AddBook(category, row.payload.Book); err != nil {
			return result, err
		}
		result.Books++
	}

	log.Info().
		Str("sheet", sheet).
		Int("categories", result.Categories).
		Int("books", result.Books).
		Msg("Workbook imported")

	return result, nil
}

// buildColumnIndexMap maps lower-cased header names to column indexes.
func buildColumnIndexMap(header []string) map[string]int {
	colMap := make(map[string]int, len(header))
	for i, name := range header {
		colMap[strings.TrimSpace(strings.ToLower(name))] = i
	}
	return colMap
}

func parseWorkbookRow(record []string, colMap map[string]int, rowNum int) (workbookRow, error) {
	getCol := func(name string) string {
		if idx, ok := colMap[name]; ok && idx < len(record) {
			return strings.TrimSpace(record[idx])
		}
		return ""
	}

	row := workbookRow{
		category:      getCol(columnCategory),
		categoryTitle: getCol(columnCategoryTitle),
	}
	if row.category == "" {
		return row, model.NewValidationError("Row %d: category is empty.", rowNum)
	}
	if row.categoryTitle == "" {
		row.categoryTitle = row.category
	}

	var book model.Book
	var fields []string
	for _, field := range model.MandatoryFields {
		if _, ok := colMap[field]; ok {
			fields = append(fields, field)
		}
	}

	book.Title = getCol(model.FieldTitle)
	book.Cover = getCol(model.FieldCover)
	book.Description = getCol(model.FieldDescription)
	book.ISBN = getCol(model.FieldISBN)

	// An empty price cell reads like a JSON null: present and zero.
	if raw := getCol(model.FieldPrice); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return row, model.NewValidationError("Row %d: price %q is malformed.", rowNum, raw)
		}
		book.Price = price
	}

	row.payload = model.NewBookPayload(book, fields...)
	return row, nil
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
