package value

import (
	"encoding"
	"fmt"
	"strconv"
)

// Renderer renders opaque values, the result is quoted verbatim
type Renderer func(v interface{}) string

// DefaultRenderer uses encoding.TextMarshaler, fmt.Stringer, error or %v formatting
func DefaultRenderer(v interface{}) string {
	switch actual := v.(type) {
	case nil:
		return ""
	case string:
		return actual
	case encoding.TextMarshaler:
		if text, err := actual.MarshalText(); err == nil {
			return string(text)
		}
	case fmt.Stringer:
		return actual.String()
	case error:
		return actual.Error()
	}
	return fmt.Sprintf("%v", v)
}

// Append appends JSON literal of supplied value
func Append(dst []byte, v Value, render Renderer) []byte {
	switch v.kind {
	case Null:
		return append(dst, "null"...)
	case String:
		return AppendQuoted(dst, v.text)
	case Int:
		return strconv.AppendInt(dst, v.i, 10)
	case Uint:
		return strconv.AppendUint(dst, v.u, 10)
	case Float:
		return strconv.AppendFloat(dst, v.f, 'g', -1, v.bits)
	case Bool:
		return strconv.AppendBool(dst, v.b)
	case Char:
		return AppendQuoted(dst, string(v.r))
	case Array:
		dst = append(dst, '[')
		for i, item := range v.items {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = Append(dst, item, render)
		}
		return append(dst, ']')
	}
	if render == nil {
		render = DefaultRenderer
	}
	dst = append(dst, '"')
	dst = append(dst, render(v.opaque)...)
	return append(dst, '"')
}

// Render returns JSON literal of supplied value
func Render(v Value, render Renderer) string {
	return string(Append(make([]byte, 0, 16), v, render))
}
