package conv

import (
	"fmt"
	"reflect"
)

// DefaultDateLayout is the layout used when rendering time as text
const DefaultDateLayout = "2006-01-02 15:04:05"

type (
	// Converter converts value into target type, nil target type is inferred from default value
	Converter interface {
		Convert(value interface{}, target reflect.Type, defaultValue interface{}) (interface{}, error)
	}

	// Func adapts a function to Converter
	Func func(value interface{}, target reflect.Type, defaultValue interface{}) (interface{}, error)

	// Transformer copies source record or map into target struct pointer or map
	Transformer interface {
		Transform(source interface{}, target interface{}) error
	}
)

// Convert converts value
func (f Func) Convert(value interface{}, target reflect.Type, defaultValue interface{}) (interface{}, error) {
	return f(value, target, defaultValue)
}

// Quietly converts value returning default value on any failure
func Quietly(converter Converter, value interface{}, target reflect.Type, defaultValue interface{}) (result interface{}) {
	defer func() {
		if r := recover(); r != nil {
			result = defaultValue
		}
	}()
	converted, err := converter.Convert(value, target, defaultValue)
	if err != nil {
		return defaultValue
	}
	return converted
}

// To converts value into T
func To[T any](converter Converter, value interface{}, defaultValue T) (T, error) {
	target := reflect.TypeOf((*T)(nil)).Elem()
	result, err := converter.Convert(value, target, defaultValue)
	if err != nil {
		return defaultValue, err
	}
	if result == nil {
		var zero T
		return zero, nil
	}
	typed, ok := result.(T)
	if !ok {
		return defaultValue, conversionError(value, target, fmt.Errorf("unexpected result type %T", result))
	}
	return typed, nil
}

// Zero returns zero value for supplied type, nil for nil type or nillable types
func Zero(t reflect.Type) interface{} {
	if t == nil {
		return nil
	}
	return reflect.Zero(t).Interface()
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rValue.IsNil()
	}
	return false
}

// IsNil returns true for nil and nil pointer, map, slice, interface values
func IsNil(value interface{}) bool {
	return isNil(value)
}
