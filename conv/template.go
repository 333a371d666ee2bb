package conv

import (
	"reflect"
)

// algorithm converts non nil value that does not satisfy target type yet,
// nil result means unconvertible value and yields the default
type algorithm func(value interface{}, target reflect.Type) (interface{}, error)

// template implements strict conversion steps shared by all builtin converters
type template struct {
	target    reflect.Type
	algorithm algorithm
}

// Convert converts value into target type
func (t *template) Convert(value interface{}, target reflect.Type, defaultValue interface{}) (interface{}, error) {
	if target == nil {
		if defaultValue == nil {
			return nil, &AmbiguousTargetError{Value: value}
		}
		target = reflect.TypeOf(defaultValue)
	}
	if isNil(value) {
		return defaultValue, nil
	}
	if defaultValue != nil && !reflect.TypeOf(defaultValue).AssignableTo(target) {
		return nil, &TypeMismatchError{Target: target, Default: defaultValue}
	}
	if target.Kind() != reflect.Map {
		for {
			if reflect.TypeOf(value).AssignableTo(target) {
				return value, nil
			}
			rValue := reflect.ValueOf(value)
			if rValue.Kind() != reflect.Ptr {
				break
			}
			if rValue.IsNil() {
				return defaultValue, nil
			}
			value = rValue.Elem().Interface()
		}
	} else if rValue := reflect.ValueOf(value); rValue.Kind() == reflect.Ptr {
		value = rValue.Elem().Interface()
	}
	result, err := t.algorithm(value, target)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return defaultValue, nil
	}
	return result, nil
}

// Target returns type the converter was created for
func (t *template) Target() reflect.Type {
	return t.target
}

func newTemplate(target reflect.Type, fn algorithm) *template {
	return &template{target: target, algorithm: fn}
}

// as converts basic value to named target type sharing its kind
func as(value interface{}, target reflect.Type) interface{} {
	rValue := reflect.ValueOf(value)
	if rValue.Type() == target {
		return value
	}
	return rValue.Convert(target).Interface()
}
