package visitor

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/viant/xconv/introspect"
)

// RecordVisitor implements Visitor[string, interface{}] for records using cached accessors.
type RecordVisitor struct {
	ptr        unsafe.Pointer
	descriptor *introspect.Descriptor
}

// RecordVisitorOf creates a RecordVisitor from any struct value or pointer, struct values are copied.
func RecordVisitorOf(value interface{}) (Visitor[string, interface{}], error) {
	return RecordVisitorWith(introspect.Default(), value)
}

// RecordVisitorWith creates a RecordVisitor using supplied accessor cache.
func RecordVisitorWith(cache *introspect.Cache, value interface{}) (Visitor[string, interface{}], error) {
	ptr, structType, ok := introspect.Pointer(value)
	if !ok {
		return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
	}
	visitor := &RecordVisitor{
		ptr:        ptr,
		descriptor: cache.Get(structType),
	}
	return visitor.Visit, nil
}

// Visit iterates over record properties, calling the provided function with each property name and value.
func (w *RecordVisitor) Visit(f func(key string, element interface{}) (bool, error)) error {
	for _, accessor := range w.descriptor.Items {
		continueVisit, err := f(accessor.Name, accessor.Value(w.ptr))
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}

// PropertyVisitorOf creates a name keyed visitor for a record or a map, map keys are rendered as text.
func PropertyVisitorOf(value interface{}) (Visitor[string, interface{}], error) {
	return PropertyVisitorWith(introspect.Default(), value)
}

// PropertyVisitorWith creates a name keyed visitor using supplied accessor cache for records.
func PropertyVisitorWith(cache *introspect.Cache, value interface{}) (Visitor[string, interface{}], error) {
	if value == nil {
		return nil, fmt.Errorf("expected record or map, got nil")
	}
	valueType := reflect.TypeOf(value)
	if introspect.IsMap(valueType) {
		rValue := reflect.Indirect(reflect.ValueOf(value))
		if !rValue.IsValid() {
			return nil, fmt.Errorf("expected record or map, got nil %T", value)
		}
		mapVisitor, err := AnyMapVisitorOf(rValue.Interface())
		if err != nil {
			return nil, err
		}
		return func(f func(key string, element interface{}) (bool, error)) error {
			return mapVisitor(func(key any, element any) (bool, error) {
				return f(keyText(key), element)
			})
		}, nil
	}
	return RecordVisitorWith(cache, value)
}

func keyText(key any) string {
	switch actual := key.(type) {
	case string:
		return actual
	case fmt.Stringer:
		return actual.String()
	}
	return fmt.Sprint(key)
}
