package copier

import "reflect"

type (
	// ValueConverter converts matching source property value, bypassing registry conversion
	ValueConverter interface {
		Matches(key string) bool
		Transform(value interface{}, target reflect.Type) (interface{}, error)
	}

	// TransformFunc transforms property value into target slot type
	TransformFunc func(value interface{}, target reflect.Type) (interface{}, error)

	valueConverter struct {
		matches   func(key string) bool
		transform TransformFunc
	}
)

func (v *valueConverter) Matches(key string) bool {
	return v.matches(key)
}

func (v *valueConverter) Transform(value interface{}, target reflect.Type) (interface{}, error) {
	return v.transform(value, target)
}

// NewValueConverter creates value converter
func NewValueConverter(matches func(key string) bool, transform TransformFunc) ValueConverter {
	return &valueConverter{matches: matches, transform: transform}
}

// ForProperties creates value converter matching listed source property names
func ForProperties(transform TransformFunc, names ...string) ValueConverter {
	index := make(map[string]bool, len(names))
	for _, name := range names {
		index[name] = true
	}
	return NewValueConverter(func(key string) bool {
		return index[key]
	}, transform)
}
