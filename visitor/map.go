package visitor

import (
	"fmt"
	"reflect"
)

// AnyMapVisitorOf dynamically creates a visitor from any map value.
func AnyMapVisitorOf(value interface{}) (Visitor[any, any], error) {
	switch actual := value.(type) {
	case map[string]interface{}:
		return AnyTypedMapVisitorOf[string, interface{}](actual), nil
	case map[string]string:
		return AnyTypedMapVisitorOf[string, string](actual), nil
	case map[string]int:
		return AnyTypedMapVisitorOf[string, int](actual), nil
	case map[string]bool:
		return AnyTypedMapVisitorOf[string, bool](actual), nil
	case map[interface{}]interface{}:
		return AnyTypedMapVisitorOf[interface{}, interface{}](actual), nil
	}
	val := reflect.ValueOf(value)
	if val.Kind() != reflect.Map {
		return nil, fmt.Errorf("expected map, got %T", value)
	}
	visitor := &AnyMapVisitor{data: val}
	return visitor.Visit, nil
}

// AnyTypedMapVisitorOf returns untyped visitor over typed map
func AnyTypedMapVisitorOf[K comparable, V any](aMap map[K]V) Visitor[any, any] {
	return func(f func(key any, element any) (bool, error)) error {
		for k, e := range aMap {
			continueVisit, err := f(k, e)
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}
}

// AnyMapVisitor defines any map visitor
type AnyMapVisitor struct {
	data reflect.Value
}

// Visit iterates over the map via reflection and calls f for each entry.
func (v *AnyMapVisitor) Visit(f func(key any, element any) (bool, error)) error {
	iter := v.data.MapRange()
	for iter.Next() {
		continueVisit, err := f(iter.Key().Interface(), iter.Value().Interface())
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}
