package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/intake/internal/config"
	"github.com/deppfellow/intake/internal/errs"
	"github.com/deppfellow/intake/internal/handler"
	"github.com/deppfellow/intake/internal/middleware"
	"github.com/deppfellow/intake/internal/model/car"
	"github.com/deppfellow/intake/internal/model/order"
	"github.com/deppfellow/intake/internal/model/product"
	"github.com/deppfellow/intake/internal/model/user"
	"github.com/deppfellow/intake/internal/server"
	"github.com/deppfellow/intake/internal/service"
	"github.com/deppfellow/intake/internal/validation"
)

var now = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()
	return newTestRouterWith(t, zerolog.Nop(), 1000)
}

func newTestRouterWith(t *testing.T, logger zerolog.Logger, rateLimit float64) *echo.Echo {
	t.Helper()

	cfg := &config.Config{
		Primary:       config.Primary{Env: "test"},
		Server:        config.DefaultServerConfig(),
		Observability: config.DefaultObservabilityConfig(),
	}
	cfg.Server.RateLimit = rateLimit

	s, err := server.New(cfg, &logger, nil, validation.WithClock(func() time.Time { return now }))
	require.NoError(t, err)

	return NewRouter(s, handler.NewHandlers(s, service.NewServices(s)))
}

func do(r *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()

	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

const (
	validUser    = `{"username":"JohnDoe","email":"john@example.com","password":"password1","confirm_password":"password1"}`
	validProduct = `{"name":"  Laptop ","price":999.99,"category":"electronics","discount":10,"description":"A light laptop"}`
	validCar     = `{"first_letter":"А","last_letter":"ВС","city_num":77,"plate_number":"А123ВС77","year":2015,"mileage":120000}`
	validOrder   = `{"items":[10.0,20.0],"total_price":30.0,"status":"pending","created_at":"2025-06-15T11:00:00Z"}`
)

func TestCreateUser(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/users", "/users/"} {
		t.Run(path, func(t *testing.T) {
			rec := do(r, http.MethodPost, path, validUser)
			require.Equal(t, http.StatusOK, rec.Code)

			var body user.CreatedResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "User created!", body.Message)
			assert.Equal(t, "johndoe", body.User.Username)
			assert.Equal(t, "john@example.com", body.User.Email)
		})
	}
}

func TestCreateProduct(t *testing.T) {
	rec := do(newTestRouter(t), http.MethodPost, "/product", validProduct)
	require.Equal(t, http.StatusOK, rec.Code)

	var body product.CreatedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Product created!", body.Message)
	assert.Equal(t, "Laptop", body.Product.Name)
	assert.Equal(t, 10, body.Product.Discount)
}

func TestCreateCar(t *testing.T) {
	rec := do(newTestRouter(t), http.MethodPost, "/car", validCar)
	require.Equal(t, http.StatusOK, rec.Code)

	var body car.CreatedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Car created!", body.Message)
	assert.Equal(t, "А123ВС77", body.Car.PlateNumber)
}

func TestCreateOrder(t *testing.T) {
	rec := do(newTestRouter(t), http.MethodPost, "/order", validOrder)
	require.Equal(t, http.StatusOK, rec.Code)

	var body order.CreatedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Order created!", body.Message)
	assert.Equal(t, []float64{10, 20}, body.Order.Items)
	assert.True(t, body.Order.CreatedAt.Equal(now.Add(-time.Hour)))
}

func TestRecordRoutes_Rejections(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name   string
		path   string
		body   string
		status int
		code   string
		errors []errs.FieldError
	}{
		{
			name:   "malformed json",
			path:   "/users",
			body:   `{"username":`,
			status: http.StatusBadRequest,
			code:   "BAD_REQUEST",
		},
		{
			name:   "wrong type",
			path:   "/product",
			body:   `{"name":"Laptop","price":"cheap","category":"books","discount":5,"description":"x"}`,
			status: http.StatusBadRequest,
			code:   "BAD_REQUEST",
		},
		{
			name:   "username with a space",
			path:   "/users",
			body:   `{"username":"john doe","email":"john@example.com","password":"password1","confirm_password":"password1"}`,
			status: http.StatusUnprocessableEntity,
			code:   errs.CodeValidationFailed,
			errors: []errs.FieldError{{Field: "username", Error: "must not contain spaces"}},
		},
		{
			name:   "passwords differ",
			path:   "/users",
			body:   `{"username":"john","email":"john@example.com","password":"password1","confirm_password":"password2"}`,
			status: http.StatusUnprocessableEntity,
			code:   errs.CodeValidationFailed,
			errors: []errs.FieldError{{Field: validation.CrossField, Error: "passwords do not match"}},
		},
		{
			name:   "empty body",
			path:   "/users",
			body:   `{}`,
			status: http.StatusUnprocessableEntity,
			code:   errs.CodeValidationFailed,
			errors: []errs.FieldError{
				{Field: "username", Error: "is required"},
				{Field: "email", Error: "is required"},
				{Field: "password", Error: "is required"},
				{Field: "confirm_password", Error: "is required"},
			},
		},
		{
			name:   "discount above price threshold",
			path:   "/product",
			body:   `{"name":"TV","price":15000,"category":"books","discount":10,"description":"Big"}`,
			status: http.StatusUnprocessableEntity,
			code:   errs.CodeValidationFailed,
			errors: []errs.FieldError{{Field: validation.CrossField, Error: "discounts are not allowed for products priced above 10000"}},
		},
		{
			name:   "electronics discount above cap",
			path:   "/product",
			body:   `{"name":"TV","price":500,"category":"electronics","discount":31,"description":"Big"}`,
			status: http.StatusUnprocessableEntity,
			code:   errs.CodeValidationFailed,
			errors: []errs.FieldError{{Field: validation.CrossField, Error: "discount for category 'electronics' must not exceed 30%"}},
		},
		{
			name:   "latin plate",
			path:   "/car",
			body:   `{"first_letter":"A","last_letter":"BC","city_num":77,"plate_number":"A123BC77","year":2015,"mileage":1}`,
			status: http.StatusUnprocessableEntity,
			code:   errs.CodeValidationFailed,
			errors: []errs.FieldError{{Field: "plate_number", Error: "must match format 'А123ВС77'"}},
		},
		{
			name:   "total mismatch",
			path:   "/order",
			body:   `{"items":[10.0,20.0],"total_price":31.0,"status":"pending","created_at":"2025-06-15T11:00:00Z"}`,
			status: http.StatusUnprocessableEntity,
			code:   errs.CodeValidationFailed,
			errors: []errs.FieldError{{Field: validation.CrossField, Error: "total price does not match the sum of items"}},
		},
		{
			name:   "null item",
			path:   "/order",
			body:   `{"items":[null,10.0],"total_price":10.0,"status":"pending","created_at":"2025-06-15T11:00:00Z"}`,
			status: http.StatusUnprocessableEntity,
			code:   errs.CodeValidationFailed,
			errors: []errs.FieldError{{Field: "items[0]", Error: "is required"}},
		},
		{
			name:   "year far out of range",
			path:   "/car",
			body:   `{"first_letter":"А","last_letter":"ВС","city_num":77,"plate_number":"А123ВС77","year":-9223372036854775808,"mileage":1}`,
			status: http.StatusUnprocessableEntity,
			code:   errs.CodeValidationFailed,
			errors: []errs.FieldError{{Field: "year", Error: "car age must not exceed 30 years"}},
		},
		{
			name:   "created in the future",
			path:   "/order",
			body:   `{"items":[10.0,20.0],"total_price":30.0,"status":"pending","created_at":"2025-06-15T12:00:01Z"}`,
			status: http.StatusUnprocessableEntity,
			code:   errs.CodeValidationFailed,
			errors: []errs.FieldError{{Field: "created_at", Error: "creation date cannot be in the future"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(r, http.MethodPost, tt.path, tt.body)
			require.Equal(t, tt.status, rec.Code)

			body := decodeError(t, rec)
			assert.Equal(t, tt.status, body.Status)
			assert.Equal(t, tt.code, body.Code)
			assert.NotEmpty(t, body.Message)
			if tt.errors != nil {
				assert.Equal(t, tt.errors, body.Errors)
			}
		})
	}
}

func TestSystemRoutes(t *testing.T) {
	r := newTestRouter(t)

	t.Run("status", func(t *testing.T) {
		rec := do(r, http.MethodGet, "/status", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("unknown route", func(t *testing.T) {
		rec := do(r, http.MethodPost, "/cars", validCar)
		require.Equal(t, http.StatusNotFound, rec.Code)

		body := decodeError(t, rec)
		assert.Equal(t, "NOT_FOUND", body.Code)
		assert.Equal(t, "Route not found", body.Message)
	})

	t.Run("wrong method", func(t *testing.T) {
		rec := do(r, http.MethodGet, "/users", "")
		require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Equal(t, "METHOD_NOT_ALLOWED", decodeError(t, rec).Code)
	})
}

func TestConcurrentRequestsDoNotShareState(t *testing.T) {
	r := newTestRouter(t)

	const n = 20

	var wg sync.WaitGroup
	results := make([]string, n)

	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()

			body := fmt.Sprintf(`{"username":"User%02d","email":"u@example.com","password":"password1","confirm_password":"password1"}`, i)
			rec := do(r, http.MethodPost, "/users", body)
			if rec.Code != http.StatusOK {
				return
			}

			var res user.CreatedResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &res); err == nil {
				results[i] = res.User.Username
			}
		}()
	}
	wg.Wait()

	for i, got := range results {
		assert.Equal(t, fmt.Sprintf("user%02d", i), got)
	}
}

func TestKeysMatchIgnoringCase(t *testing.T) {
	rec := do(newTestRouter(t), http.MethodPost, "/users",
		`{"USERNAME":"JohnDoe","Email":"john@example.com","PASSWORD":"password1","confirm_password":"password1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body user.CreatedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "johndoe", body.User.Username)
}

func TestRateLimitDenialCarriesRequestID(t *testing.T) {
	var buf strings.Builder
	r := newTestRouterWith(t, zerolog.New(&buf), 1)

	send := func(requestID string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/status", nil)
		req.Header.Set(middleware.RequestIDHeader, requestID)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	require.Equal(t, http.StatusOK, send("req-1").Code)

	denied := send("req-2")
	require.Equal(t, http.StatusTooManyRequests, denied.Code)
	assert.Equal(t, "req-2", denied.Header().Get(middleware.RequestIDHeader))
	assert.Contains(t, buf.String(), `"request_id":"req-2"`)
	assert.Contains(t, buf.String(), "rate limit exceeded")
}

func TestEveryRecordRouteHasAKind(t *testing.T) {
	r := newTestRouter(t)

	posts := 0
	for _, route := range r.Routes() {
		if route.Method != http.MethodPost {
			continue
		}
		posts++

		c := r.NewContext(httptest.NewRequest(route.Method, route.Path, nil), httptest.NewRecorder())
		c.SetPath(route.Path)
		assert.NotEmpty(t, middleware.RecordKind(c), route.Path)
	}
	assert.Equal(t, 4, posts)
}
