package seed

import (
	"testing"

	"bookstore-catalog/internal/domains/catalog/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	catalog := repository.NewMemoryCatalog()
	require.NoError(t, Defaults(catalog))

	categories := catalog.GetCategories()
	require.Len(t, categories, 2)
	assert.Equal(t, "html5", categories[0].Name)
	assert.Equal(t, "HTML 5", categories[0].Title)
	assert.Equal(t, int64(1), categories[0].ID)
	assert.Equal(t, "javascript", categories[1].Name)
	assert.Equal(t, int64(2), categories[1].ID)

	html, err := catalog.GetBooks(categories[0])
	require.NoError(t, err)
	require.Len(t, html, 2)
	assert.Equal(t, int64(1), html[0].ID)
	assert.Equal(t, "Html5: Up And Running", html[0].Title)
	assert.Equal(t, "24.8", html[0].Price.String())

	js, err := catalog.GetBooks(categories[1])
	require.NoError(t, err)
	require.Len(t, js, 2)
	assert.Equal(t, int64(4), js[1].ID)
	assert.Equal(t, "0596517742", js[1].ISBN)
}

func TestDefaults_Idempotent(t *testing.T) {
	catalog := repository.NewMemoryCatalog()
	require.NoError(t, Defaults(catalog))
	require.NoError(t, Defaults(catalog))

	// Categories are registered once, books are added again.
	assert.Len(t, catalog.GetCategories(), 2)
	assert.Equal(t, 8, catalog.CountBooks())
}
