package unmarshal

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/viant/jsonmapper/shape"
)

var (
	errArrayExpected  = errors.New("expected array literal")
	errObjectExpected = errors.New("expected object literal")
	errNestedArray    = errors.New("nested arrays are not supported")
	errEmptyChar      = errors.New("empty char literal")
	errNullValue      = errors.New("null is not allowed for non nullable field")
	errMissingValue   = errors.New("missing value for non nullable field")
)

// ConversionError reports a token that can not be parsed as its declared type
type ConversionError struct {
	Token string
	Tag   shape.TypeTag
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("failed to convert %q to %s: %v", e.Token, e.Tag.String(), e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// MaterializationError reports a shape that could not be constructed or populated
type MaterializationError struct {
	Type  reflect.Type
	Field string
	Err   error
}

func (e *MaterializationError) Error() string {
	typeName := "<nil>"
	if e.Type != nil {
		typeName = e.Type.String()
	}
	if e.Field != "" {
		return fmt.Sprintf("failed to materialize %s.%s: %v", typeName, e.Field, e.Err)
	}
	return fmt.Sprintf("failed to materialize %s: %v", typeName, e.Err)
}

func (e *MaterializationError) Unwrap() error {
	return e.Err
}
