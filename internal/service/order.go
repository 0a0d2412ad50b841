package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/deppfellow/intake/internal/model/order"
	"github.com/deppfellow/intake/internal/server"
	"github.com/deppfellow/intake/internal/validation"
)

const OrderCreatedMessage = "Order created!"

type OrderService struct {
	server *server.Server
}

func NewOrderService(s *server.Server) *OrderService {
	return &OrderService{server: s}
}

// CreateOrder validates payload and confirms the normalized order.
// A rejected record returns validation.Failures.
func (s *OrderService) CreateOrder(ctx context.Context, payload *order.CreateOrderPayload) (*order.CreatedResponse, error) {
	o, err := validation.Normalize[order.Order](s.server.Validator, payload)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("status", o.Status).
		Int("items", len(o.Items)).
		Float64("total_price", o.TotalPrice).
		Msg("order accepted")

	return &order.CreatedResponse{
		Message: OrderCreatedMessage,
		Order:   o,
	}, nil
}
