package jsonmapper

import (
	"errors"
	"fmt"

	"github.com/viant/jsonmapper/unmarshal"
)

// ErrInvalidTarget is returned when decode destination is nil or not a non nil pointer
var ErrInvalidTarget = errors.New("invalid decode target: expected non nil pointer")

type (
	//ConversionError reports a token that can not be parsed as its declared type
	ConversionError = unmarshal.ConversionError
	//MaterializationError reports a shape that could not be constructed or populated
	MaterializationError = unmarshal.MaterializationError
)

// MapperError wraps the first failure of an operation
type MapperError struct {
	Op  string
	Err error
}

func (e *MapperError) Error() string {
	return fmt.Sprintf("jsonmapper: %s failed: %v", e.Op, e.Err)
}

func (e *MapperError) Unwrap() error {
	return e.Err
}
