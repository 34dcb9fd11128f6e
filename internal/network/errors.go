package network

import "errors"

var (
	// ErrMissingColumn reports an input table whose header row lacks one of
	// the required endpoint columns, or that has no header row at all.
	ErrMissingColumn = errors.New("required endpoint column missing")

	// ErrMalformedRow reports a data row with fewer fields than the header
	// requires for the endpoint columns.
	ErrMalformedRow = errors.New("malformed data row")
)
