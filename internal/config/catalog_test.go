package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vasiliy-maslov/craftcart/internal/config"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadCatalog(t *testing.T) {
	path := writeFile(t, "catalog.yaml", `
products:
  - id: 201
    name: clay pot
    price: "149.50"
  - id: 202
    name: jute bag
    price: 90
`)

	products, err := config.LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, 201, products[0].ID)
	assert.Equal(t, "clay pot", products[0].Name)
	assert.Equal(t, "149.50", products[0].Price.StringFixed(2))
	assert.Equal(t, "90.00", products[1].Price.StringFixed(2))
}

func TestLoadCatalog_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{name: "bad_price", content: "products:\n  - id: 1\n    name: a\n    price: cheap\n", wantMsg: "invalid price"},
		{name: "empty", content: "products: []\n", wantMsg: "no products"},
		{name: "bad_yaml", content: "products: [\n", wantMsg: "invalid catalog file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.LoadCatalog(writeFile(t, "catalog.yaml", tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}

	_, err := config.LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
