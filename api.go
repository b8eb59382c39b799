package jsonmapper

import (
	"reflect"

	jsonmarshal "github.com/viant/jsonmapper/marshal"
	"github.com/viant/jsonmapper/shape"
	"github.com/viant/jsonmapper/split"
	jsonunmarshal "github.com/viant/jsonmapper/unmarshal"
)

var (
	defaultMarshalEngine   = jsonmarshal.New(shape.Default(), "", nil, nil)
	defaultUnmarshalEngine = jsonunmarshal.New(shape.Default(), "", jsonunmarshal.CompatNulls, split.KeepKeyWhitespace, nil)
)

// Encode returns compact JSON object literal of supplied shape, nil and non shape values yield {}
func Encode(value interface{}, opts ...Option) string {
	return marshalEngine(opts).Marshal(value)
}

// Marshal is a byte oriented Encode, it never returns an error
func Marshal(value interface{}, opts ...Option) ([]byte, error) {
	return marshalEngine(opts).MarshalTo(nil, value), nil
}

// Decode materializes object literal into dest, dest has to be a non nil pointer to a struct.
// dest is assigned only when decoding succeeds.
func Decode(data string, dest interface{}, opts ...Option) error {
	if !isValidTarget(dest) {
		return ErrInvalidTarget
	}
	if err := unmarshalEngine(opts).Unmarshal(data, dest); err != nil {
		return &MapperError{Op: "decode", Err: err}
	}
	return nil
}

// Unmarshal is a byte oriented Decode
func Unmarshal(data []byte, dest interface{}, opts ...Option) error {
	return Decode(string(data), dest, opts...)
}

// RegisterConstructor registers a positional constructor with the default registry, its result type becomes a fixed shape
func RegisterConstructor(fn interface{}) error {
	return shape.Default().RegisterConstructor(fn)
}

func marshalEngine(opts []Option) *jsonmarshal.Engine {
	if len(opts) == 0 {
		return defaultMarshalEngine
	}
	cfg := resolveOptions(opts)
	if cfg.isDefault() {
		return defaultMarshalEngine
	}
	return jsonmarshal.New(cfg.Registry, cfg.CaseFormat, cfg.Renderer, cfg.Logger)
}

func unmarshalEngine(opts []Option) *jsonunmarshal.Engine {
	if len(opts) == 0 {
		return defaultUnmarshalEngine
	}
	cfg := resolveOptions(opts)
	if cfg.isDefault() {
		return defaultUnmarshalEngine
	}
	return jsonunmarshal.New(cfg.Registry, cfg.CaseFormat, jsonunmarshal.NullPolicy(cfg.NullPolicy), split.KeyPolicy(cfg.KeyPolicy), cfg.Logger)
}

func isValidTarget(dest interface{}) bool {
	if dest == nil {
		return false
	}
	rv := reflect.ValueOf(dest)
	return rv.Kind() == reflect.Ptr && !rv.IsNil()
}
