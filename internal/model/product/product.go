// Package product defines the product listing record.
package product

import (
	"fmt"
	"strings"

	"github.com/deppfellow/intake/internal/validation"
)

const (
	CategoryElectronics = "electronics"
	CategoryClothing    = "clothing"
	CategoryBooks       = "books"
)

// Categories is the fixed set of accepted categories. It must stay in sync
// with the oneof rule on CreateProductPayload.Category.
var Categories = []string{CategoryElectronics, CategoryClothing, CategoryBooks}

const (
	// DiscountFreePriceThreshold is the price above which no discount is
	// allowed.
	DiscountFreePriceThreshold = 10000.0

	// MaxElectronicsDiscount caps the discount (percent) on electronics.
	MaxElectronicsDiscount = 30
)

// CreateProductPayload is the body of POST /product.
type CreateProductPayload struct {
	Name        *string  `json:"name" validate:"required"`
	Price       *float64 `json:"price" validate:"required,gt=0"`
	Category    *string  `json:"category" validate:"required,oneof=electronics clothing books"`
	Discount    *int     `json:"discount" validate:"required,gt=0,lt=90"`
	Description *string  `json:"description" validate:"required,max=200"`
}

// Product is a validated, normalized product listing.
type Product struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Discount    int     `json:"discount"`
	Description string  `json:"description"`
}

func (p *CreateProductPayload) Validate(v *validation.Validator) error {
	return v.Validate(p, p.noDiscountAbovePriceThreshold, p.electronicsDiscountCap)
}

func (p *CreateProductPayload) noDiscountAbovePriceThreshold() string {
	if *p.Price > DiscountFreePriceThreshold && *p.Discount > 0 {
		return fmt.Sprintf("discounts are not allowed for products priced above %.0f", DiscountFreePriceThreshold)
	}
	return ""
}

func (p *CreateProductPayload) electronicsDiscountCap() string {
	if *p.Category == CategoryElectronics && *p.Discount > MaxElectronicsDiscount {
		return fmt.Sprintf("discount for category '%s' must not exceed %d%%", CategoryElectronics, MaxElectronicsDiscount)
	}
	return ""
}

// Normalize returns the record with surrounding whitespace stripped from the
// name. It must only be called on a payload that passed Validate.
func (p *CreateProductPayload) Normalize() Product {
	return Product{
		Name:        strings.TrimSpace(*p.Name),
		Price:       *p.Price,
		Category:    *p.Category,
		Discount:    *p.Discount,
		Description: *p.Description,
	}
}

// CreatedResponse confirms an accepted product.
type CreatedResponse struct {
	Message string  `json:"message"`
	Product Product `json:"product"`
}
