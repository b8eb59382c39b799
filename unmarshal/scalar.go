package unmarshal

import (
	"strconv"
	"unicode/utf8"

	"github.com/viant/jsonmapper/shape"
	"github.com/viant/jsonmapper/value"
)

// ConvertScalar converts a single JSON literal token into a value of supplied type tag.
// null yields a null value, quoted tokens are unquoted and unescaped before parsing,
// opaque tags pass the token through as a raw string.
func ConvertScalar(token string, tag shape.TypeTag) (value.Value, error) {
	if token == "null" {
		return value.NullOf(), nil
	}
	text := token
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = value.Unescape(text[1 : len(text)-1])
	}
	switch tag.Kind {
	case shape.String:
		return value.StringOf(text), nil
	case shape.Int8, shape.Int16, shape.Int32, shape.Int64:
		i, err := strconv.ParseInt(text, 10, tag.Kind.BitSize())
		if err != nil {
			return value.Value{}, &ConversionError{Token: token, Tag: tag, Err: err}
		}
		return value.IntOf(i), nil
	case shape.Uint8, shape.Uint16, shape.Uint32, shape.Uint64:
		u, err := strconv.ParseUint(text, 10, tag.Kind.BitSize())
		if err != nil {
			return value.Value{}, &ConversionError{Token: token, Tag: tag, Err: err}
		}
		return value.UintOf(u), nil
	case shape.Float32, shape.Float64:
		bits := tag.Kind.BitSize()
		f, err := strconv.ParseFloat(trimFloatSuffix(text, bits), bits)
		if err != nil {
			return value.Value{}, &ConversionError{Token: token, Tag: tag, Err: err}
		}
		return value.FloatOf(f, bits), nil
	case shape.Bool:
		return value.BoolOf(text == "true"), nil
	case shape.CharKind:
		r, size := utf8.DecodeRuneInString(text)
		if size == 0 {
			return value.Value{}, &ConversionError{Token: token, Tag: tag, Err: errEmptyChar}
		}
		return value.CharOf(r), nil
	case shape.FixedArray, shape.Sequence:
		return value.Value{}, &ConversionError{Token: token, Tag: tag, Err: errArrayExpected}
	}
	return value.OpaqueOf(text), nil
}

// trimFloatSuffix removes f/F (32 bit) or d/D (64 bit) type suffix following a digit or dot
func trimFloatSuffix(text string, bits int) string {
	if len(text) < 2 {
		return text
	}
	last := text[len(text)-1]
	switch {
	case bits == 32 && (last == 'f' || last == 'F'):
	case bits == 64 && (last == 'd' || last == 'D'):
	default:
		return text
	}
	if prev := text[len(text)-2]; (prev >= '0' && prev <= '9') || prev == '.' {
		return text[:len(text)-1]
	}
	return text
}
