// Package core has core logic for building, styling and serving shot distribution charts.
package core

import "errors"

var (
	// ErrUnknownColumn is returned when a size or color column is not a numeric measure.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrInvalidRecord is returned when a record breaks a dataset invariant.
	ErrInvalidRecord = errors.New("invalid record")

	// ErrUnknownColorScale is returned when a color scale name is not supported.
	ErrUnknownColorScale = errors.New("unknown color scale")
)
