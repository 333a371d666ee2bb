package visitor

import (
	"fmt"
	"reflect"
)

// AnySliceVisitorOf dynamically creates a visitor from any slice or array value.
func AnySliceVisitorOf(value interface{}) (Visitor[int, any], error) {
	switch actual := value.(type) {
	case []interface{}:
		return AnyTypedSliceVisitorOf[interface{}](actual), nil
	case []map[string]interface{}:
		return AnyTypedSliceVisitorOf[map[string]interface{}](actual), nil
	case []string:
		return AnyTypedSliceVisitorOf[string](actual), nil
	}
	val := reflect.ValueOf(value)
	if val.Kind() == reflect.Ptr && !val.IsNil() {
		val = val.Elem()
	}
	if val.Kind() != reflect.Slice && val.Kind() != reflect.Array {
		return nil, fmt.Errorf("expected slice, got %T", value)
	}
	visitor := &AnySliceVisitor{data: val}
	return visitor.Visit, nil
}

// AnyTypedSliceVisitorOf return visitor
func AnyTypedSliceVisitorOf[E any](slice []E) Visitor[int, any] {
	return func(f func(key int, element any) (bool, error)) error {
		for i, e := range slice {
			continueVisit, err := f(i, e)
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

// AnySliceVisitor implements Visitor[int, any] for slices and arrays of any type.
type AnySliceVisitor struct {
	data reflect.Value
}

// Visit iterates over any slice type via reflection.
func (v *AnySliceVisitor) Visit(f func(key int, element any) (bool, error)) error {
	for i := 0; i < v.data.Len(); i++ {
		continueVisit, err := f(i, v.data.Index(i).Interface())
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}
