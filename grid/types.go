package grid

import "errors"

// Sentinel errors for grid validation.
var (
	// ErrEmptyGrid indicates an array with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: array must have at least one sample in every dimension")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrShapeMismatch indicates two arrays whose shapes differ.
	ErrShapeMismatch = errors.New("grid: arrays must have identical shapes")
)
