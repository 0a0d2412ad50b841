package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/intake/internal/model/car"
	"github.com/deppfellow/intake/internal/model/order"
	"github.com/deppfellow/intake/internal/model/product"
	"github.com/deppfellow/intake/internal/model/user"
	"github.com/deppfellow/intake/internal/service"
)

type UserHandler struct {
	service *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{service: svc}
}

func (h *UserHandler) CreateUser(c echo.Context, payload *user.CreateUserPayload) (*user.CreatedResponse, error) {
	return h.service.CreateUser(c.Request().Context(), payload)
}

type ProductHandler struct {
	service *service.ProductService
}

func NewProductHandler(svc *service.ProductService) *ProductHandler {
	return &ProductHandler{service: svc}
}

func (h *ProductHandler) CreateProduct(c echo.Context, payload *product.CreateProductPayload) (*product.CreatedResponse, error) {
	return h.service.CreateProduct(c.Request().Context(), payload)
}

type CarHandler struct {
	service *service.CarService
}

func NewCarHandler(svc *service.CarService) *CarHandler {
	return &CarHandler{service: svc}
}

func (h *CarHandler) CreateCar(c echo.Context, payload *car.CreateCarPayload) (*car.CreatedResponse, error) {
	return h.service.CreateCar(c.Request().Context(), payload)
}

type OrderHandler struct {
	service *service.OrderService
}

func NewOrderHandler(svc *service.OrderService) *OrderHandler {
	return &OrderHandler{service: svc}
}

func (h *OrderHandler) CreateOrder(c echo.Context, payload *order.CreateOrderPayload) (*order.CreatedResponse, error) {
	return h.service.CreateOrder(c.Request().Context(), payload)
}
