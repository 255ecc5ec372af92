package teetime

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is shared; validator instances cache struct metadata.
var validate = validator.New(validator.WithRequiredStructEnabled())

// SearchParams holds per-search filter criteria. The url tags drive query
// serialization when the params are sent to a platform's search API.
type SearchParams struct {
	Location string  `url:"location" validate:"required"`
	Date     string  `url:"date" validate:"required,datetime=2006-01-02"`
	Players  int     `url:"players,omitempty" validate:"omitempty,min=1,max=4"`
	MinHoles int     `url:"min_holes,omitempty" validate:"omitempty,oneof=9 18"`
	MaxHoles int     `url:"max_holes,omitempty" validate:"omitempty,oneof=9 18"`
	MinPrice float64 `url:"min_price,omitempty" validate:"omitempty,gte=0"`
	MaxPrice float64 `url:"max_price,omitempty" validate:"omitempty,gte=0"`
}

// Validate checks the params before any network call is made.
func (p SearchParams) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invalid search params: %w", err)
	}
	if p.MinHoles > 0 && p.MaxHoles > 0 && p.MinHoles > p.MaxHoles {
		return fmt.Errorf("invalid search params: min_holes %d exceeds max_holes %d", p.MinHoles, p.MaxHoles)
	}
	if p.MinPrice > 0 && p.MaxPrice > 0 && p.MinPrice > p.MaxPrice {
		return fmt.Errorf("invalid search params: min_price %.2f exceeds max_price %.2f", p.MinPrice, p.MaxPrice)
	}
	return nil
}
