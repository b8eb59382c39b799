package jsonmapper

import (
	"github.com/viant/jsonmapper/shape"
	"github.com/viant/jsonmapper/value"
	"github.com/viant/tagly/format/text"
	"go.uber.org/zap"
)

// Char represents a single character field, encoded as a one character JSON string.
type Char = shape.Char

// NullPolicy controls null and absent value handling.
type NullPolicy int

const (
	CompatNulls NullPolicy = iota
	StrictNulls
)

// KeyPolicy controls whitespace handling in object keys.
type KeyPolicy int

const (
	KeepKeyWhitespace KeyPolicy = iota
	StripKeyWhitespace
)

type Option interface{ apply(*Options) }

// Options defines runtime behavior.
type Options struct {
	CaseFormat text.CaseFormat
	NullPolicy NullPolicy
	KeyPolicy  KeyPolicy
	Registry   *shape.Registry
	Logger     *zap.Logger
	Renderer   value.Renderer
}

func (o *Options) isDefault() bool {
	return o.CaseFormat == "" &&
		o.NullPolicy == CompatNulls &&
		o.KeyPolicy == KeepKeyWhitespace &&
		o.Registry == shape.Default() &&
		o.Logger == nil &&
		o.Renderer == nil
}
