package introspect

import (
	"reflect"
	"time"
	"unsafe"
)

var timeType = reflect.TypeOf(time.Time{})

func isTimeType(candidate reflect.Type) bool {
	return candidate == timeType
}

// EnsureStructType returns struct type for struct or struct pointer type, nil otherwise
func EnsureStructType(t reflect.Type) reflect.Type {
	if t == nil {
		return nil
	}
	switch t.Kind() {
	case reflect.Struct:
		return t
	case reflect.Ptr:
		if t.Elem().Kind() == reflect.Struct {
			return t.Elem()
		}
	}
	return nil
}

// EnsureMapType returns map type for map or map pointer type, nil otherwise
func EnsureMapType(t reflect.Type) reflect.Type {
	if t == nil {
		return nil
	}
	switch t.Kind() {
	case reflect.Map:
		return t
	case reflect.Ptr:
		if t.Elem().Kind() == reflect.Map {
			return t.Elem()
		}
	}
	return nil
}

// IsRecord returns true if type is a struct (or struct pointer) exposing at least one exported field;
// time.Time is never a record
func IsRecord(t reflect.Type) bool {
	structType := EnsureStructType(t)
	if structType == nil || isTimeType(structType) {
		return false
	}
	return hasAccessor(structType)
}

// hasAccessor scans fields the way descriptor does without building or caching it
func hasAccessor(t reflect.Type) bool {
	for i := 0; i < t.NumField(); i++ {
		sField := t.Field(i)
		_, ignore, explicit := fieldName(sField)
		if ignore {
			continue
		}
		if sField.Anonymous && !explicit && sField.Type.Kind() == reflect.Struct && !isTimeType(sField.Type) {
			if hasAccessor(sField.Type) {
				return true
			}
			continue
		}
		if sField.IsExported() {
			return true
		}
	}
	return false
}

// IsMap returns true if type is a map or map pointer
func IsMap(t reflect.Type) bool {
	return EnsureMapType(t) != nil
}

// Pointer returns struct pointer for struct or struct pointer value, struct values are copied,
// second result is false for nil or non struct value
func Pointer(value interface{}) (unsafe.Pointer, reflect.Type, bool) {
	if value == nil {
		return nil, nil, false
	}
	valueType := reflect.TypeOf(value)
	structType := EnsureStructType(valueType)
	if structType == nil {
		return nil, nil, false
	}
	if valueType.Kind() == reflect.Ptr {
		ptr := reflect.ValueOf(value).UnsafePointer()
		return ptr, structType, ptr != nil
	}
	rPointer := reflect.New(structType)
	rPointer.Elem().Set(reflect.ValueOf(value))
	return rPointer.UnsafePointer(), structType, true
}
