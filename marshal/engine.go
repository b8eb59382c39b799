package marshal

import (
	stdjson "encoding/json"
	"reflect"
	"sync"
	"unsafe"

	"github.com/viant/jsonmapper/shape"
	"github.com/viant/jsonmapper/value"
	"github.com/viant/tagly/format/text"
	"github.com/viant/xunsafe"
	"go.uber.org/zap"
)

// Engine serializes shapes into compact JSON object literals.
type Engine struct {
	Registry   *shape.Registry
	CaseFormat text.CaseFormat
	Render     value.Renderer
	Logger     *zap.Logger
}

type encoderSession struct {
	buf []byte
}

var (
	sessionPool    = sync.Pool{New: func() interface{} { return &encoderSession{buf: make([]byte, 0, 256)} }}
	charType       = reflect.TypeOf(shape.Char(0))
	rawMessageType = reflect.TypeOf(stdjson.RawMessage{})
)

func New(registry *shape.Registry, caseFormat text.CaseFormat, render value.Renderer, logger *zap.Logger) *Engine {
	if registry == nil {
		registry = shape.Default()
	}
	if render == nil {
		render = value.DefaultRenderer
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		Registry:   registry,
		CaseFormat: caseFormat,
		Render:     render,
		Logger:     logger,
	}
}

// Marshal returns object literal of supplied shape, nil or non shape roots yield {}
func (e *Engine) Marshal(v interface{}) string {
	sess := acquireSession()
	defer releaseSession(sess)
	sess.buf = e.MarshalTo(sess.buf, v)
	return string(sess.buf)
}

// MarshalTo appends object literal of supplied shape to dst and returns the resulting slice.
func (e *Engine) MarshalTo(dst []byte, v interface{}) []byte {
	rType, ptr := e.rootPointer(v)
	if ptr == nil {
		return append(dst, "{}"...)
	}
	d, err := e.Registry.Resolve(rType, e.CaseFormat)
	if err != nil {
		e.Logger.Debug("jsonmapper: unable to resolve root shape", zap.String("type", rType.String()), zap.Error(err))
		return append(dst, "{}"...)
	}
	return e.appendShape(dst, d, ptr)
}

func (e *Engine) rootPointer(v interface{}) (reflect.Type, unsafe.Pointer) {
	if v == nil {
		return nil, nil
	}
	rType := reflect.TypeOf(v)
	switch {
	case rType.Kind() == reflect.Struct:
		holder := reflect.New(rType)
		holder.Elem().Set(reflect.ValueOf(v))
		return rType, holder.UnsafePointer()
	case rType.Kind() == reflect.Ptr && rType.Elem().Kind() == reflect.Struct:
		return rType.Elem(), xunsafe.AsPointer(v)
	}
	e.Logger.Debug("jsonmapper: non shape root encoded as empty object", zap.String("type", rType.String()))
	return nil, nil
}

func (e *Engine) appendShape(dst []byte, d *shape.Descriptor, structPtr unsafe.Pointer) []byte {
	dst = append(dst, '{')
	for i, field := range d.Fields {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = value.AppendQuoted(dst, field.Name)
		dst = append(dst, ':')
		dst = value.Append(dst, e.valueOf(field.Value(structPtr)), e.Render)
	}
	return append(dst, '}')
}

// valueOf converts by runtime kind, containers recurse, everything else is opaque
func (e *Engine) valueOf(rv reflect.Value) value.Value {
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return value.NullOf()
		}
		elem := e.valueOf(rv.Elem())
		if elem.Kind() == value.Opaque && rv.CanInterface() {
			//keep outer value so pointer receiver methods are visible to the renderer
			return value.OpaqueOf(rv.Interface())
		}
		return elem
	case reflect.String:
		return value.StringOf(rv.String())
	case reflect.Int32:
		if rv.Type() == charType {
			return value.CharOf(rune(rv.Int()))
		}
		return value.IntOf(rv.Int())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int64:
		return value.IntOf(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return value.UintOf(rv.Uint())
	case reflect.Float32:
		return value.FloatOf(rv.Float(), 32)
	case reflect.Float64:
		return value.FloatOf(rv.Float(), 64)
	case reflect.Bool:
		return value.BoolOf(rv.Bool())
	case reflect.Slice:
		if rv.IsNil() {
			return value.NullOf()
		}
		if rv.Type() == rawMessageType {
			return value.OpaqueOf(string(rv.Bytes()))
		}
		return e.arrayOf(rv)
	case reflect.Array:
		return e.arrayOf(rv)
	case reflect.Invalid:
		return value.NullOf()
	}
	if !rv.CanInterface() {
		return value.OpaqueOf(nil)
	}
	return value.OpaqueOf(rv.Interface())
}

func (e *Engine) arrayOf(rv reflect.Value) value.Value {
	items := make([]value.Value, rv.Len())
	for i := range items {
		items[i] = e.valueOf(rv.Index(i))
	}
	return value.ArrayOf(items)
}

func acquireSession() *encoderSession {
	s := sessionPool.Get().(*encoderSession)
	s.buf = s.buf[:0]
	return s
}

func releaseSession(s *encoderSession) {
	const maxPooledCap = 64 << 10
	if cap(s.buf) > maxPooledCap {
		s.buf = make([]byte, 0, 256)
	}
	s.buf = s.buf[:0]
	sessionPool.Put(s)
}
