package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/deppfellow/intake/internal/model/car"
	"github.com/deppfellow/intake/internal/server"
	"github.com/deppfellow/intake/internal/validation"
)

const CarCreatedMessage = "Car created!"

type CarService struct {
	server *server.Server
}

func NewCarService(s *server.Server) *CarService {
	return &CarService{server: s}
}

// CreateCar validates payload and confirms the normalized car.
// A rejected record returns validation.Failures.
func (s *CarService) CreateCar(ctx context.Context, payload *car.CreateCarPayload) (*car.CreatedResponse, error) {
	c, err := validation.Normalize[car.Car](s.server.Validator, payload)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("plate_number", c.PlateNumber).
		Int("year", c.Year).
		Msg("car accepted")

	return &car.CreatedResponse{
		Message: CarCreatedMessage,
		Car:     c,
	}, nil
}
