package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/deppfellow/intake/internal/model/product"
	"github.com/deppfellow/intake/internal/server"
	"github.com/deppfellow/intake/internal/validation"
)

const ProductCreatedMessage = "Product created!"

type ProductService struct {
	server *server.Server
}

func NewProductService(s *server.Server) *ProductService {
	return &ProductService{server: s}
}

// CreateProduct validates payload and confirms the normalized product.
// A rejected record returns validation.Failures.
func (s *ProductService) CreateProduct(ctx context.Context, payload *product.CreateProductPayload) (*product.CreatedResponse, error) {
	p, err := validation.Normalize[product.Product](s.server.Validator, payload)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("category", p.Category).
		Float64("price", p.Price).
		Int("discount", p.Discount).
		Msg("product accepted")

	return &product.CreatedResponse{
		Message: ProductCreatedMessage,
		Product: p,
	}, nil
}
