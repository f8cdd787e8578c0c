package packing

import "errors"

// Validation errors returned by Pack.
var (
	ErrInvalidVehicle = errors.New("invalid vehicle")
	ErrInvalidProduct = errors.New("invalid product")
)
