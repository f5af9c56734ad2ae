package domain

import (
	"fmt"
	"strings"
)

// ReadError reports a workbook that could not be opened or read at all.
// Fatal for that year's ingestion.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read workbook %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// SchemaError reports a workbook that opened fine but whose header row
// does not cover every required canonical column. Distinct from ReadError
// so callers can tell "wrong shape" from "could not open".
type SchemaError struct {
	Year    int
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("year %d sheet: required columns not found: %s",
		e.Year, strings.Join(e.Missing, ", "))
}

// UnknownMetricError reports a metric name outside the canonical set.
type UnknownMetricError struct {
	Name string
}

func (e *UnknownMetricError) Error() string {
	return fmt.Sprintf("unknown metric %q", e.Name)
}
