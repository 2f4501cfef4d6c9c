package curves

import (
	"errors"
	"fmt"
)

// Domain errors for sample-based queries.
var (
	// ErrOutOfDomain indicates a query outside the sampled x range.
	ErrOutOfDomain = errors.New("curves: x outside sampled domain")

	// ErrLength indicates x and y (or error bar) sequences of different lengths.
	ErrLength = errors.New("curves: mismatched sequence lengths")

	// ErrEmpty indicates a zero-length sample sequence.
	ErrEmpty = errors.New("curves: empty sample sequence")

	// ErrTooFewSamples indicates fewer than two samples where interpolation is needed.
	ErrTooFewSamples = errors.New("curves: at least two samples required")

	// ErrUnsorted indicates x values that are not strictly increasing.
	ErrUnsorted = errors.New("curves: x values must be strictly increasing")

	// ErrNoOverlap indicates two sample sets whose domains do not overlap.
	ErrNoOverlap = errors.New("curves: domains do not overlap")

	// ErrGridMismatch indicates scatter operands sampled on different x grids.
	ErrGridMismatch = errors.New("curves: operands sampled on different x grids")

	// ErrBins indicates a histogram bin count below one.
	ErrBins = errors.New("curves: number of bins must be positive")

	// ErrNonFinite indicates NaN or infinite values in data that must be binned.
	ErrNonFinite = errors.New("curves: NaN or infinite value in sample data")
)

// QueryError wraps an error with the query that produced it.
type QueryError struct {
	Op       string
	X        float64
	Min, Max float64
	Err      error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s(%g): %v [%g, %g]", e.Op, e.X, e.Err, e.Min, e.Max)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
