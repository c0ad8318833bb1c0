package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/storefront/internal/models"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ParsesProducts(t *testing.T) {
	path := writeCatalogFile(t, `[
		{"id":"p1","title":"Headphones","category":"audio","tags":["bluetooth"],"price":120,"rating":4.7},
		{"id":"p2","title":"Speaker","category":"audio","tags":[],"price":55,"rating":4.3,"desc":"compact"}
	]`)

	cat, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cat.Len())
	p, ok := cat.ByID("p2")
	require.True(t, ok)
	assert.Equal(t, "compact", p.Desc)
}

func TestLoad_MalformedDocumentFails(t *testing.T) {
	path := writeCatalogFile(t, `{"not":"a list"}`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_RejectsProductWithoutID(t *testing.T) {
	path := writeCatalogFile(t, `[{"title":"Ghost","price":10}]`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "without an id")
}

func TestLoad_RejectsNegativePrice(t *testing.T) {
	path := writeCatalogFile(t, `[{"id":"p1","title":"Broken","price":-1}]`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "negative price")
}

func TestNew_DropsLaterDuplicates(t *testing.T) {
	cat := New([]models.Product{
		{ID: "p1", Title: "first"},
		{ID: "p1", Title: "second"},
	})

	assert.Equal(t, 1, cat.Len())
	p, _ := cat.ByID("p1")
	assert.Equal(t, "first", p.Title)
}

func TestCategories_SortedAndUnique(t *testing.T) {
	cat := New([]models.Product{
		{ID: "p1", Category: "peripherals"},
		{ID: "p2", Category: "audio"},
		{ID: "p3", Category: "audio"},
		{ID: "p4", Category: "accessories"},
	})

	assert.Equal(t, []string{"accessories", "audio", "peripherals"}, cat.Categories())
	assert.True(t, cat.HasCategory("audio"))
	assert.False(t, cat.HasCategory("Audio"))
}
