package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"

	"github.com/rogerio-castellano/storefront/internal/models"
)

// Catalog is the immutable product set for the lifetime of the process.
type Catalog struct {
	products []models.Product
	byID     map[string]models.Product
}

// New builds a catalog from a product list. Products are unique by id; later
// duplicates are dropped.
func New(products []models.Product) *Catalog {
	c := &Catalog{byID: make(map[string]models.Product, len(products))}
	for _, p := range products {
		if _, seen := c.byID[p.ID]; seen {
			continue
		}
		c.byID[p.ID] = p
		c.products = append(c.products, p)
	}
	return c
}

// Load fetches and parses the catalog document. src may be a local file path
// or an http(s) URL. Any failure here is fatal to startup; there is no
// fallback catalog.
func Load(src string) (*Catalog, error) {
	data, err := fetch(src)
	if err != nil {
		return nil, err
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("could not parse catalog document: %w", err)
	}
	for _, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("catalog document contains a product without an id")
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("product %q has a negative price", p.ID)
		}
	}
	return New(products), nil
}

func fetch(src string) ([]byte, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		resp, err := http.Get(src)
		if err != nil {
			return nil, fmt.Errorf("could not fetch catalog: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("could not fetch catalog: status %d", resp.StatusCode)
		}
		return io.ReadAll(resp.Body)
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("could not read catalog: %w", err)
	}
	return data, nil
}

// Products returns the catalog in load order. Callers must not modify the
// returned slice.
func (c *Catalog) Products() []models.Product {
	return c.products
}

// ByID looks a product up by its id.
func (c *Catalog) ByID(id string) (models.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

func (c *Catalog) Len() int {
	return len(c.products)
}

// Categories returns the distinct product categories, sorted.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, p := range c.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			cats = append(cats, p.Category)
		}
	}
	sort.Strings(cats)
	return cats
}

// HasCategory reports whether any product belongs to category.
func (c *Catalog) HasCategory(category string) bool {
	for _, p := range c.products {
		if p.Category == category {
			return true
		}
	}
	return false
}
