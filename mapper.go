package jsonmapper

import (
	jsonmarshal "github.com/viant/jsonmapper/marshal"
	jsonunmarshal "github.com/viant/jsonmapper/unmarshal"
)

// Mapper binds encoding and decoding to a single shape type T
type Mapper[T any] struct {
	marshaller   *jsonmarshal.Engine
	unmarshaller *jsonunmarshal.Engine
}

// NewMapper creates a mapper for T, options are resolved once
func NewMapper[T any](opts ...Option) *Mapper[T] {
	return &Mapper[T]{
		marshaller:   marshalEngine(opts),
		unmarshaller: unmarshalEngine(opts),
	}
}

// ToJSON returns object literal of supplied value
func (m *Mapper[T]) ToJSON(value T) string {
	return m.marshaller.Marshal(value)
}

// ToObject materializes a new T from object literal
func (m *Mapper[T]) ToObject(data string) (T, error) {
	var result T
	if err := m.unmarshaller.Unmarshal(data, &result); err != nil {
		var zero T
		return zero, &MapperError{Op: "decode", Err: err}
	}
	return result, nil
}
