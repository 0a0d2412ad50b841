package handler

import (
	"github.com/deppfellow/intake/internal/server"
	"github.com/deppfellow/intake/internal/service"
)

// Handlers groups all HTTP handlers so the router receives a single value.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler

	Users    *UserHandler
	Products *ProductHandler
	Cars     *CarHandler
	Orders   *OrderHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s),
		OpenAPI:  NewOpenAPIHandler(s),
		Users:    NewUserHandler(services.Users),
		Products: NewProductHandler(services.Products),
		Cars:     NewCarHandler(services.Cars),
		Orders:   NewOrderHandler(services.Orders),
	}
}
