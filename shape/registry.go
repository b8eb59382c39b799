package shape

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/viant/jsonmapper/internal/tagutil"
	"github.com/viant/tagly/format/text"
	"github.com/viant/xunsafe"
)

type cacheKey struct {
	rType      reflect.Type
	caseFormat text.CaseFormat
}

// Registry resolves and caches shape descriptors, once published a descriptor is never mutated
type Registry struct {
	mu           sync.RWMutex
	shapes       map[cacheKey]*Descriptor
	constructors map[reflect.Type]*constructor
}

var defaultRegistry = NewRegistry()

// Default returns process wide registry
func Default() *Registry {
	return defaultRegistry
}

// NewRegistry creates a registry
func NewRegistry() *Registry {
	return &Registry{
		shapes:       map[cacheKey]*Descriptor{},
		constructors: map[reflect.Type]*constructor{},
	}
}

// RegisterConstructor registers a positional constructor, its result type becomes a fixed shape.
// Supported signatures: func(...) T, func(...) *T, func(...) (T, error), func(...) (*T, error)
func (r *Registry) RegisterConstructor(fn interface{}) error {
	rType, ctor, err := newConstructor(fn)
	if err != nil {
		return err
	}
	if err = ctor.validate(rType, deriveFields(rType, "", true)); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.constructors[rType]; ok {
		return fmt.Errorf("constructor for %s was already registered", rType.String())
	}
	for key := range r.shapes {
		if key.rType == rType {
			return fmt.Errorf("shape %s was already resolved, register constructor before first use", rType.String())
		}
	}
	r.constructors[rType] = ctor
	return nil
}

// Resolve returns a shape descriptor for supplied struct type (or pointer to struct)
func (r *Registry) Resolve(rType reflect.Type, caseFormat text.CaseFormat) (*Descriptor, error) {
	structType := EnsureStructType(rType)
	if structType == nil {
		return nil, fmt.Errorf("unsupported shape type: %v, expected struct", rType)
	}
	key := cacheKey{rType: structType, caseFormat: caseFormat}
	r.mu.RLock()
	if d := r.shapes[key]; d != nil {
		r.mu.RUnlock()
		return d, nil
	}
	ctor := r.constructors[structType]
	r.mu.RUnlock()

	d := buildDescriptor(structType, caseFormat, ctor)
	r.mu.Lock()
	if prev := r.shapes[key]; prev != nil {
		r.mu.Unlock()
		return prev, nil
	}
	if latest := r.constructors[structType]; latest != ctor {
		//constructor registered while descriptor was built
		d = buildDescriptor(structType, caseFormat, latest)
	}
	r.shapes[key] = d
	r.mu.Unlock()
	return d, nil
}

func buildDescriptor(rType reflect.Type, caseFormat text.CaseFormat, ctor *constructor) *Descriptor {
	if ctor != nil || isFixed(rType) {
		return newDescriptor(rType, FixedShape, deriveFields(rType, caseFormat, true), ctor)
	}
	return newDescriptor(rType, MutableShape, deriveFields(rType, caseFormat, false), nil)
}

// deriveFields collects fields in declaration order, fixed shapes include unexported record components
func deriveFields(rType reflect.Type, caseFormat text.CaseFormat, fixed bool) []*Field {
	fields := make([]*Field, 0, rType.NumField())
	for i := 0; i < rType.NumField(); i++ {
		sf := rType.Field(i)
		if sf.PkgPath != "" && !fixed {
			continue
		}
		if sf.Name == "_" {
			continue
		}
		resolved := tagutil.ResolveFieldTag(sf)
		if resolved.Ignore {
			continue
		}
		name := resolved.Name
		if !resolved.Explicit && caseFormat != "" {
			name = tagutil.FormatName(name, caseFormat)
		}
		fields = append(fields, &Field{
			Name:     name,
			GoName:   sf.Name,
			Tag:      TagOf(sf.Type),
			Ordinal:  len(fields),
			Type:     sf.Type,
			Optional: sf.Type.Kind() == reflect.Ptr || resolved.Nullable,
			xField:   xunsafe.NewField(sf),
		})
	}
	return fields
}
