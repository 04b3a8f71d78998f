// Package errs defines the sentinel errors returned by golinfit packages.
//
// Concrete failures wrap one of these with fmt.Errorf("%w: ...") so callers
// can test the category with errors.Is and still read the violated condition.
package errs

import "errors"

var (
	// ErrInvalidInput reports malformed or degenerate estimator input:
	// mismatched lengths, too few points, non-finite values, zero x-variance
	// or a significance level outside (0, 1).
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoData reports a data source that yielded no usable rows.
	ErrNoData = errors.New("no data")

	// ErrColumnNotFound reports a requested CSV column missing from the header.
	ErrColumnNotFound = errors.New("column not found")

	// ErrUnknownDataset reports a built-in dataset name that does not exist.
	ErrUnknownDataset = errors.New("unknown dataset")
)
