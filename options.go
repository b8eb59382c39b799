package jsonmapper

import (
	"github.com/viant/jsonmapper/shape"
	"github.com/viant/jsonmapper/value"
	"github.com/viant/tagly/format/text"
	"go.uber.org/zap"
)

type optionFn func(*Options)

func (o optionFn) apply(opts *Options) { o(opts) }

// WithCaseFormat formats JSON names of fields without explicit json or format name
func WithCaseFormat(caseFormat text.CaseFormat) Option {
	return optionFn(func(o *Options) { o.CaseFormat = caseFormat })
}

func WithNullPolicy(policy NullPolicy) Option {
	return optionFn(func(o *Options) { o.NullPolicy = policy })
}

func WithKeyPolicy(policy KeyPolicy) Option {
	return optionFn(func(o *Options) { o.KeyPolicy = policy })
}

// WithRegistry uses supplied shape registry instead of the process wide one
func WithRegistry(registry *shape.Registry) Option {
	return optionFn(func(o *Options) {
		if registry != nil {
			o.Registry = registry
		}
	})
}

func WithLogger(logger *zap.Logger) Option {
	return optionFn(func(o *Options) { o.Logger = logger })
}

// WithOpaqueRenderer sets renderer for values without JSON representation (structs, maps, time)
func WithOpaqueRenderer(renderer value.Renderer) Option {
	return optionFn(func(o *Options) { o.Renderer = renderer })
}

func defaultOptions() Options {
	return Options{
		CaseFormat: text.CaseFormatUndefined,
		NullPolicy: CompatNulls,
		KeyPolicy:  KeepKeyWhitespace,
		Registry:   shape.Default(),
	}
}

func resolveOptions(opts []Option) Options {
	result := defaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.apply(&result)
	}
	return result
}
