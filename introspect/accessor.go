package introspect

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/viant/xunsafe"
)

// Accessor represents a named struct field reader/writer
type Accessor struct {
	Name      string
	FieldName string
	Type      reflect.Type
	Tag       reflect.StructTag
	Index     int
	// DateFormat and TimeLayout come from format or timeLayout field tag
	DateFormat string
	TimeLayout string
	field      *xunsafe.Field
	ancestors  []*xunsafe.Field
	kind       reflect.Kind
}

// Nullable returns true if accessor zero value is nil
func (a *Accessor) Nullable() bool {
	switch a.kind {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	}
	return false
}

func (a *Accessor) holder(ptr unsafe.Pointer) unsafe.Pointer {
	for _, ancestor := range a.ancestors {
		ptr = ancestor.Pointer(ptr)
	}
	return ptr
}

// Pointer returns field address for supplied struct pointer
func (a *Accessor) Pointer(structPtr unsafe.Pointer) unsafe.Pointer {
	return a.field.Pointer(a.holder(structPtr))
}

// Value returns field value for supplied struct pointer
func (a *Accessor) Value(structPtr unsafe.Pointer) interface{} {
	if a.kind == reflect.Interface {
		return reflect.NewAt(a.Type, a.Pointer(structPtr)).Elem().Interface()
	}
	return a.field.Value(a.holder(structPtr))
}

// Set sets field value, value has to be assignable or convertible to the field type, nil sets zero value
func (a *Accessor) Set(structPtr unsafe.Pointer, value interface{}) error {
	if value != nil && a.kind != reflect.Interface && reflect.TypeOf(value) == a.Type {
		a.field.SetValue(a.holder(structPtr), value)
		return nil
	}
	target := reflect.NewAt(a.Type, a.Pointer(structPtr)).Elem()
	if value == nil {
		target.Set(reflect.Zero(a.Type))
		return nil
	}
	rValue := reflect.ValueOf(value)
	switch {
	case rValue.Type().AssignableTo(a.Type):
		target.Set(rValue)
	case rValue.Type().ConvertibleTo(a.Type) && (a.Type.Kind() != reflect.String || rValue.Kind() == reflect.String):
		target.Set(rValue.Convert(a.Type))
	default:
		return fmt.Errorf("failed to set %v: %T is not assignable to %v", a.Name, value, a.Type)
	}
	return nil
}
