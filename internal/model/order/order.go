// Package order defines the order placement record.
package order

import (
	"time"

	"github.com/deppfellow/intake/internal/validation"
)

const (
	StatusPending = "pending"
	StatusPaid    = "paid"
	StatusShipped = "shipped"
)

// Statuses is the fixed set of accepted statuses. It must stay in sync with
// the oneof rule on CreateOrderPayload.Status.
var Statuses = []string{StatusPending, StatusPaid, StatusShipped}

// CreateOrderPayload is the body of POST /order.
//
// Items holds pointers so that a null element is rejected instead of being
// read as a zero price.
type CreateOrderPayload struct {
	Items      []*float64 `json:"items" validate:"required,dive,required"`
	TotalPrice *float64   `json:"total_price" validate:"required"`
	Status     *string    `json:"status" validate:"required,oneof=pending paid shipped"`
	CreatedAt  *time.Time `json:"created_at" validate:"required,notfuture"`
}

// Order is a validated order.
type Order struct {
	Items      []float64 `json:"items"`
	TotalPrice float64   `json:"total_price"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func (p *CreateOrderPayload) Validate(v *validation.Validator) error {
	return v.Validate(p, p.totalMatchesItems)
}

// totalMatchesItems requires the total to equal the item sum exactly.
func (p *CreateOrderPayload) totalMatchesItems() string {
	if *p.TotalPrice != Sum(p.prices()) {
		return "total price does not match the sum of items"
	}
	return ""
}

// Sum adds prices left to right.
func Sum(prices []float64) float64 {
	var total float64
	for _, price := range prices {
		total += price
	}
	return total
}

// prices dereferences Items. It must only be called once every item passed
// its required rule.
func (p *CreateOrderPayload) prices() []float64 {
	prices := make([]float64, len(p.Items))
	for i, item := range p.Items {
		prices[i] = *item
	}
	return prices
}

// Normalize must only be called on a payload that passed Validate.
func (p *CreateOrderPayload) Normalize() Order {
	return Order{
		Items:      p.prices(),
		TotalPrice: *p.TotalPrice,
		Status:     *p.Status,
		CreatedAt:  *p.CreatedAt,
	}
}

// CreatedResponse confirms an accepted order.
type CreatedResponse struct {
	Message string `json:"message"`
	Order   Order  `json:"order"`
}
