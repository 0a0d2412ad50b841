package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/intake/internal/handler"
)

// registerRecordRoutes registers one POST route per record kind. Trailing
// slashes are stripped before routing, so "/users/" works too.
func registerRecordRoutes(r *echo.Echo, h *handler.Handlers) {
	r.POST("/users", handler.Handle(h.Users.CreateUser, http.StatusOK))
	r.POST("/product", handler.Handle(h.Products.CreateProduct, http.StatusOK))
	r.POST("/car", handler.Handle(h.Cars.CreateCar, http.StatusOK))
	r.POST("/order", handler.Handle(h.Orders.CreateOrder, http.StatusOK))
}
