package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"bookstore-catalog/internal/domains/catalog/model"
	"bookstore-catalog/internal/domains/catalog/service"
	"bookstore-catalog/internal/shared/response"
	"bookstore-catalog/internal/shared/utils"
	"bookstore-catalog/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// maxBodyBytes caps book request bodies.
const maxBodyBytes = 1 << 20

// ============================================================
// HANDLER STRUCT
// ============================================================
type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(svc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: svc}
}

// ========== GET /categories ==========
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.ListCategories(c.Request.Context()))
}

// ========== GET /categories/:category/books ==========
func (h *CatalogHandler) ListBooks(c *gin.Context) {
	books, err := h.service.ListBooks(c.Request.Context(), c.Param("category"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, books)
}

// ========== GET /categories/:category/books/export ==========
func (h *CatalogHandler) ExportBooks(c *gin.Context) {
	name := c.Param("category")

	f, err := h.service.ExportBooks(c.Request.Context(), name)
	if err != nil {
		h.fail(c, err)
		return
	}
	defer f.Close()

	filename := utils.GenerateSlug(name) + "-books.xlsx"
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		logger.Error("Failed to stream workbook", err, map[string]interface{}{"category": name})
	}
}

// ========== POST /categories/import ==========
// Multipart upload, form field "file".
func (h *CatalogHandler) ImportBooks(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Workbook upload must carry a file field.")
		return
	}

	file, err := header.Open()
	if err != nil {
		h.fail(c, err)
		return
	}
	defer file.Close()

	log.Info().
		Str("file_name", header.Filename).
		Int64("file_size", header.Size).
		Msg("Workbook import requested")

	result, err := h.service.ImportWorkbook(c.Request.Context(), file)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, result)
}

// ========== GET /books/:id ==========
func (h *CatalogHandler) GetBook(c *gin.Context) {
	book, err := h.service.GetBook(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, book)
}

// ========== POST /categories/:category/books ==========
func (h *CatalogHandler) CreateBook(c *gin.Context) {
	payload, err := readPayload(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	book, err := h.service.CreateBook(c.Request.Context(), c.Param("category"), payload)
	if err != nil {
		// An unknown category in the path of a create is a bad request,
		// not a missing resource.
		if errors.Is(err, model.ErrCategoryNotFound) {
			response.BadRequest(c, model.Message(err))
			return
		}
		h.fail(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, book)
}

// ========== PUT /books/:id ==========
func (h *CatalogHandler) UpdateBook(c *gin.Context) {
	payload, err := readPayload(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	book, err := h.service.UpdateBook(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.JSON(c, http.StatusOK, book)
}

// ========== DELETE /books/:id ==========
func (h *CatalogHandler) DeleteBook(c *gin.Context) {
	if err := h.service.DeleteBook(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	response.NoContent(c)
}

// readPayload decodes the JSON body, remembering which fields were sent.
func readPayload(c *gin.Context) (model.BookPayload, error) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		return model.BookPayload{}, model.NewValidationError("Book data could not be read.")
	}
	return model.DecodeBookPayload(body)
}

// fail answers with the status and plain-text message for err.
func (h *CatalogHandler) fail(c *gin.Context, err error) {
	status := model.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error("Catalog request failed", err, map[string]interface{}{
			"request_id": c.GetString("request_id"),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
		})
	}
	response.Text(c, status, model.Message(err))
}
