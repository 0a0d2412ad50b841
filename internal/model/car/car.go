// Package car defines the vehicle registration record.
package car

import (
	"github.com/deppfellow/intake/internal/validation"
)

// MaxAgeYears is how many years before the current one a car may have been
// built. It must stay in sync with the maxage rule on CreateCarPayload.Year.
const MaxAgeYears = 30

// CreateCarPayload is the body of POST /car.
//
// Car has no cross-field rule: the plate number is not checked against the
// separate letter and region fields.
type CreateCarPayload struct {
	FirstLetter *string `json:"first_letter" validate:"required,len=1"`
	LastLetter  *string `json:"last_letter" validate:"required,len=2"`
	CityNum     *int    `json:"city_num" validate:"required"`
	PlateNumber *string `json:"plate_number" validate:"required,plate"`
	Year        *int    `json:"year" validate:"required,maxage=30"`
	Mileage     *int    `json:"mileage" validate:"required,gt=0"`
}

// Car is a validated vehicle registration.
type Car struct {
	FirstLetter string `json:"first_letter"`
	LastLetter  string `json:"last_letter"`
	CityNum     int    `json:"city_num"`
	PlateNumber string `json:"plate_number"`
	Year        int    `json:"year"`
	Mileage     int    `json:"mileage"`
}

func (p *CreateCarPayload) Validate(v *validation.Validator) error {
	return v.Validate(p)
}

// Normalize must only be called on a payload that passed Validate.
func (p *CreateCarPayload) Normalize() Car {
	return Car{
		FirstLetter: *p.FirstLetter,
		LastLetter:  *p.LastLetter,
		CityNum:     *p.CityNum,
		PlateNumber: *p.PlateNumber,
		Year:        *p.Year,
		Mileage:     *p.Mileage,
	}
}

// CreatedResponse confirms an accepted car.
type CreatedResponse struct {
	Message string `json:"message"`
	Car     Car    `json:"car"`
}
