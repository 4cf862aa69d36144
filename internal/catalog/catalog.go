package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/kannangrocery/storefront/internal/model"
)

//go:embed products.yaml
var productsYAML []byte

// Catalog is the immutable set of products available in the store
type Catalog struct {
	products []model.Product
	byID     map[string]model.Product
}

type catalogFile struct {
	Products []model.Product `yaml:"products"`
}

// Load decodes the embedded product data into a Catalog
func Load() (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(productsYAML, &file); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if len(file.Products) == 0 {
		return nil, fmt.Errorf("catalog contains no products")
	}

	byID := make(map[string]model.Product, len(file.Products))
	for _, p := range file.Products {
		if p.ID == "" {
			return nil, fmt.Errorf("catalog product %q has empty id", p.Name.Default)
		}
		if _, exists := byID[p.ID]; exists {
			return nil, fmt.Errorf("catalog contains duplicate product id: %s", p.ID)
		}
		byID[p.ID] = p
	}

	return &Catalog{products: file.Products, byID: byID}, nil
}

// Products returns all products in catalog order
func (c *Catalog) Products() []model.Product {
	products := make([]model.Product, len(c.products))
	copy(products, c.products)
	return products
}

// FindByID returns the product with the given id
func (c *Catalog) FindByID(id string) (model.Product, bool) {
	p, exists := c.byID[id]
	return p, exists
}

// Len returns the number of products in the catalog
func (c *Catalog) Len() int {
	return len(c.products)
}

// Categories returns distinct categories in first-seen catalog order
func (c *Catalog) Categories() []model.LocalizedText {
	var categories []model.LocalizedText
	seen := make(map[string]bool)
	for _, p := range c.products {
		if !seen[p.Category.Default] {
			seen[p.Category.Default] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}

// ProductsByCategory returns products whose default category name matches
func (c *Catalog) ProductsByCategory(category string) []model.Product {
	var products []model.Product
	for _, p := range c.products {
		if p.Category.Default == category {
			products = append(products, p)
		}
	}
	return products
}
