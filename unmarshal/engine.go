package unmarshal

import (
	"encoding"
	stdjson "encoding/json"
	"fmt"
	"reflect"

	"github.com/viant/jsonmapper/shape"
	"github.com/viant/jsonmapper/split"
	"github.com/viant/jsonmapper/value"
	"github.com/viant/tagly/format/text"
	"go.uber.org/zap"
)

var (
	rawMessageType    = reflect.TypeOf(stdjson.RawMessage(nil))
	textUnmarshalType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

type NullPolicy int

const (
	//CompatNulls assigns zero values for null or absent fields
	CompatNulls NullPolicy = iota
	//StrictNulls rejects null or absent values for non optional fields
	StrictNulls
)

type Engine struct {
	Registry   *shape.Registry
	CaseFormat text.CaseFormat
	NullPolicy NullPolicy
	KeyPolicy  split.KeyPolicy
	Logger     *zap.Logger
}

func New(registry *shape.Registry, caseFormat text.CaseFormat, nulls NullPolicy, keys split.KeyPolicy, logger *zap.Logger) *Engine {
	if registry == nil {
		registry = shape.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		Registry:   registry,
		CaseFormat: caseFormat,
		NullPolicy: nulls,
		KeyPolicy:  keys,
		Logger:     logger,
	}
}

// Unmarshal materializes object literal into dest, dest has to be a non nil pointer to a struct or to a struct pointer.
// dest is only assigned when the whole object was materialized
func (e *Engine) Unmarshal(data string, dest interface{}) error {
	if dest == nil {
		return fmt.Errorf("nil destination")
	}
	target := reflect.ValueOf(dest)
	if target.Kind() != reflect.Ptr || target.IsNil() {
		return fmt.Errorf("invalid destination: %T, expected non nil pointer", dest)
	}
	target = target.Elem()
	structType := shape.EnsureStructType(target.Type())
	if structType == nil {
		return &MaterializationError{Type: target.Type(), Err: fmt.Errorf("unsupported destination, expected struct")}
	}
	result, err := e.Materialize(data, structType)
	if err != nil {
		return err
	}
	return assignShape(target, structType, result)
}

// Materialize builds a new instance of supplied struct type from object literal
func (e *Engine) Materialize(literal string, rType reflect.Type) (reflect.Value, error) {
	d, err := e.Registry.Resolve(rType, e.CaseFormat)
	if err != nil {
		return reflect.Value{}, &MaterializationError{Type: rType, Err: err}
	}
	if !split.IsObject(literal) {
		e.Logger.Debug("jsonmapper: malformed object literal, no fields assigned", zap.String("shape", d.Type.String()), zap.Int("length", len(literal)))
	}
	tokens := split.Fields(literal, e.KeyPolicy)
	e.logUnknown(d, tokens)
	values := split.Lookup(tokens)
	if d.Kind == shape.FixedShape {
		return e.materializeFixed(d, values)
	}
	return e.materializeMutable(d, values)
}

func (e *Engine) materializeFixed(d *shape.Descriptor, values map[string]string) (reflect.Value, error) {
	if !d.HasConstructor() {
		return reflect.Value{}, &MaterializationError{Type: d.Type, Err: fmt.Errorf("%w found for shape: %s", shape.ErrNoConstructor, d.Type.String())}
	}
	args := make([]reflect.Value, len(d.Fields))
	for i, field := range d.Fields {
		raw, ok := values[field.Name]
		if !ok {
			if e.NullPolicy == StrictNulls && !field.Optional {
				return reflect.Value{}, &MaterializationError{Type: d.Type, Field: field.Name, Err: errMissingValue}
			}
			args[i] = reflect.Zero(field.Type)
			continue
		}
		arg := reflect.New(field.Type).Elem()
		if err := e.decodeField(arg, field, raw); err != nil {
			return reflect.Value{}, &MaterializationError{Type: d.Type, Field: field.Name, Err: err}
		}
		args[i] = arg
	}
	result, err := d.Construct(args)
	if err != nil {
		return reflect.Value{}, &MaterializationError{Type: d.Type, Err: err}
	}
	return result, nil
}

func (e *Engine) materializeMutable(d *shape.Descriptor, values map[string]string) (reflect.Value, error) {
	result := reflect.New(d.Type).Elem()
	structPtr := result.Addr().UnsafePointer()
	for _, field := range d.Fields {
		raw, ok := values[field.Name]
		if !ok {
			continue
		}
		if err := e.decodeField(field.Value(structPtr), field, raw); err != nil {
			return reflect.Value{}, &MaterializationError{Type: d.Type, Field: field.Name, Err: err}
		}
	}
	return result, nil
}

func (e *Engine) decodeField(dst reflect.Value, field *shape.Field, raw string) error {
	if raw == "null" {
		if e.NullPolicy == StrictNulls && !field.Optional {
			return &ConversionError{Token: raw, Tag: field.Tag, Err: errNullValue}
		}
		dst.Set(reflect.Zero(dst.Type()))
		return nil
	}
	return e.decodeValue(dst, field.Tag, raw)
}

func (e *Engine) decodeValue(dst reflect.Value, tag shape.TypeTag, raw string) error {
	if dst.Kind() == reflect.Ptr {
		if raw == "null" {
			dst.Set(reflect.Zero(dst.Type()))
			return nil
		}
		elem := reflect.New(dst.Type().Elem())
		if err := e.decodeValue(elem.Elem(), tag, raw); err != nil {
			return err
		}
		dst.Set(elem)
		return nil
	}
	if tag.Kind.IsContainer() {
		return e.decodeArray(dst, tag, raw)
	}
	if tag.Kind == shape.Opaque && dst.Type() == rawMessageType {
		if raw == "null" {
			dst.SetBytes(nil)
			return nil
		}
		dst.SetBytes([]byte(raw))
		return nil
	}
	v, err := ConvertScalar(raw, tag)
	if err != nil {
		return err
	}
	if err = assign(dst, v); err != nil {
		return &ConversionError{Token: raw, Tag: tag, Err: err}
	}
	return nil
}

func (e *Engine) logUnknown(d *shape.Descriptor, tokens []split.Token) {
	ce := e.Logger.Check(zap.DebugLevel, "jsonmapper: ignored undeclared key")
	if ce == nil {
		return
	}
	var unknown []string
	for _, token := range tokens {
		if d.Lookup(token.Key) == nil {
			unknown = append(unknown, token.Key)
		}
	}
	if len(unknown) > 0 {
		ce.Write(zap.String("shape", d.Type.String()), zap.Strings("keys", unknown))
	}
}

func assignShape(dst reflect.Value, structType reflect.Type, result reflect.Value) error {
	if dst.Kind() == reflect.Ptr {
		ptr := reflect.New(structType)
		ptr.Elem().Set(result)
		dst.Set(ptr)
		return nil
	}
	dst.Set(result)
	return nil
}

func assign(dst reflect.Value, v value.Value) error {
	switch v.Kind() {
	case value.Null:
		dst.Set(reflect.Zero(dst.Type()))
		return nil
	case value.Opaque:
		raw, _ := v.Raw()
		return assignRaw(dst, raw)
	}
	switch dst.Kind() {
	case reflect.String:
		dst.SetString(v.Text())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := v.Int()
		if v.Kind() == value.Char {
			n = int64(v.Char())
		}
		if dst.OverflowInt(n) {
			return fmt.Errorf("value %d overflows %s", n, dst.Type())
		}
		dst.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n := v.Uint()
		if dst.OverflowUint(n) {
			return fmt.Errorf("value %d overflows %s", n, dst.Type())
		}
		dst.SetUint(n)
	case reflect.Float32, reflect.Float64:
		dst.SetFloat(v.Float())
	case reflect.Bool:
		dst.SetBool(v.Bool())
	default:
		return fmt.Errorf("unable to assign %s to %s", v.Kind(), dst.Type())
	}
	return nil
}

// assignRaw assigns opaque token to string, interface{} or encoding.TextUnmarshaler destination
func assignRaw(dst reflect.Value, raw string) error {
	if dst.CanAddr() && reflect.PtrTo(dst.Type()).Implements(textUnmarshalType) {
		return dst.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(raw))
	}
	switch {
	case dst.Kind() == reflect.String:
		dst.SetString(raw)
	case dst.Kind() == reflect.Interface && dst.NumMethod() == 0:
		dst.Set(reflect.ValueOf(raw))
	default:
		return fmt.Errorf("unable to assign raw token to %s", dst.Type())
	}
	return nil
}
