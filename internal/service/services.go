package service

import (
	"github.com/deppfellow/intake/internal/server"
)

// Services groups one service per record kind.
type Services struct {
	Users    *UserService
	Products *ProductService
	Cars     *CarService
	Orders   *OrderService
}

func NewServices(s *server.Server) *Services {
	return &Services{
		Users:    NewUserService(s),
		Products: NewProductService(s),
		Cars:     NewCarService(s),
		Orders:   NewOrderService(s),
	}
}
