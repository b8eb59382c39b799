package unmarshal

import (
	"fmt"
	"reflect"

	"github.com/viant/jsonmapper/shape"
	"github.com/viant/jsonmapper/split"
)

// decodeArray materializes array literal into go array (FixedArray) or slice (Sequence)
func (e *Engine) decodeArray(dst reflect.Value, tag shape.TypeTag, raw string) error {
	if !split.IsArray(raw) {
		return &ConversionError{Token: raw, Tag: tag, Err: errArrayExpected}
	}
	if tag.Elem == nil || tag.Elem.Kind.IsContainer() {
		return &ConversionError{Token: raw, Tag: tag, Err: errNestedArray}
	}
	elemTag := *tag.Elem
	elements := split.Elements(raw)
	switch dst.Kind() {
	case reflect.Array:
		if len(elements) > dst.Len() {
			return &ConversionError{Token: raw, Tag: tag, Err: fmt.Errorf("%d elements exceed array length %d", len(elements), dst.Len())}
		}
		fresh := reflect.New(dst.Type()).Elem()
		for i, element := range elements {
			if err := e.decodeElement(fresh.Index(i), elemTag, element); err != nil {
				return err
			}
		}
		dst.Set(fresh)
	case reflect.Slice:
		slice := reflect.MakeSlice(dst.Type(), len(elements), len(elements))
		for i, element := range elements {
			if err := e.decodeElement(slice.Index(i), elemTag, element); err != nil {
				return err
			}
		}
		dst.Set(slice)
	default:
		return &ConversionError{Token: raw, Tag: tag, Err: fmt.Errorf("unsupported container %s", dst.Type())}
	}
	return nil
}

func (e *Engine) decodeElement(dst reflect.Value, tag shape.TypeTag, raw string) error {
	if tag.Kind != shape.Opaque {
		return e.decodeValue(dst, tag, raw)
	}
	structType := shape.EnsureStructType(dst.Type())
	if structType == nil || reflect.PtrTo(structType).Implements(textUnmarshalType) {
		return e.decodeValue(dst, tag, raw)
	}
	if raw == "null" {
		dst.Set(reflect.Zero(dst.Type()))
		return nil
	}
	if !split.IsObject(raw) {
		return &ConversionError{Token: raw, Tag: tag, Err: errObjectExpected}
	}
	result, err := e.Materialize(raw, structType)
	if err != nil {
		return err
	}
	return assignShape(dst, structType, result)
}
