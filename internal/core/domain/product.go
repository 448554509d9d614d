package domain

import (
	"github.com/google/uuid"
	"github.com/govalues/decimal"
)

type ProductCategory string

const (
	ProductCategorySandwich ProductCategory = "SANDWICH"
	ProductCategorySide     ProductCategory = "SIDE"
	ProductCategoryDrink    ProductCategory = "DRINK"
	ProductCategoryDessert  ProductCategory = "DESSERT"
)

var productCategories = map[ProductCategory]struct{}{
	ProductCategorySandwich: {},
	ProductCategorySide:     {},
	ProductCategoryDrink:    {},
	ProductCategoryDessert:  {},
}

func (c ProductCategory) Known() bool {
	_, ok := productCategories[c]
	return ok
}

// Product is a catalog item. A product is usable in an order only while it
// validates cleanly.
type Product struct {
	Notifiable
	ID          uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	Category    ProductCategory
}

func NewProduct(name, description string, price decimal.Decimal, category ProductCategory) *Product {
	return &Product{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Price:       price,
		Category:    category,
	}
}

// Validate rebuilds the notification ledger. Every rule is checked, one
// notification per failure.
func (p *Product) Validate() {
	p.reset()

	if p.Name == "" {
		p.AddNotification("product name is required")
	}
	if !p.Category.Known() {
		p.AddNotification("product category is unknown")
	}
	if p.Price.Cmp(decimal.Zero) <= 0 {
		p.AddNotification("product price must be greater than zero")
	}
}
