package service

import "errors"

var (
	// ErrDateParse indicates a present timestamp field that does not parse.
	// Absent timestamps are not an error; they propagate as missing values.
	ErrDateParse = errors.New("unparsable timestamp")

	// ErrSchemaMismatch indicates the derived features do not cover the
	// canonical column list. This is an upstream contract violation and is
	// never patched by reordering or zero-filling.
	ErrSchemaMismatch = errors.New("derived features do not match canonical columns")
)
