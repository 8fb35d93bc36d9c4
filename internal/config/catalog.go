package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/vasiliy-maslov/craftcart/internal/catalog"
	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Products []struct {
		ID    int    `yaml:"id"`
		Name  string `yaml:"name"`
		Price string `yaml:"price"`
	} `yaml:"products"`
}

// LoadCatalog decodes a product list from a YAML file. Prices are read as
// decimal strings so they keep their exact value.
func LoadCatalog(path string) ([]catalog.Product, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer file.Close()

	var raw catalogFile
	if err := yaml.NewDecoder(file).Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid catalog file %s: %w", path, err)
	}
	if len(raw.Products) == 0 {
		return nil, errors.New("catalog file has no products")
	}

	products := make([]catalog.Product, 0, len(raw.Products))
	for _, p := range raw.Products {
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			return nil, fmt.Errorf("invalid price %q for product %d: %w", p.Price, p.ID, err)
		}
		products = append(products, catalog.Product{ID: p.ID, Name: p.Name, Price: price})
	}

	return products, nil
}
