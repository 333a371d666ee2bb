package copier

import (
	"fmt"
	"reflect"
	"time"
	"unsafe"

	"github.com/viant/xconv/conv"
	"github.com/viant/xconv/format/text"
	ftime "github.com/viant/xconv/format/time"
	"github.com/viant/xconv/introspect"
)

var (
	timeType    = reflect.TypeOf(time.Time{})
	timePtrType = reflect.PointerTo(timeType)
)

type (
	// holder represents copy destination
	holder interface {
		// slot returns destination type for property name, false if destination does not accept it
		slot(name string) (reflect.Type, bool)
		// set writes converted value, nil writes zero value
		set(name string, value interface{}) error
		// parseTime parses text with destination declared time format, false if none applies
		parseTime(name string, value interface{}) (interface{}, bool, error)
	}

	recordHolder struct {
		ptr        unsafe.Pointer
		descriptor *introspect.Descriptor
	}

	mapHolder struct {
		converter conv.Converter
		value     reflect.Value
		keyType   reflect.Type
		elemType  reflect.Type
	}
)

func (h *recordHolder) slot(name string) (reflect.Type, bool) {
	accessor := h.descriptor.Lookup(name)
	if accessor == nil {
		return nil, false
	}
	return accessor.Type, true
}

func (h *recordHolder) set(name string, value interface{}) error {
	accessor := h.descriptor.Lookup(name)
	if accessor == nil {
		return nil
	}
	if err := accessor.Set(h.ptr, value); err != nil {
		return &conv.ReflectiveAccessError{Type: h.descriptor.Type, Op: "set " + name, Cause: err}
	}
	return nil
}

func (h *recordHolder) parseTime(name string, value interface{}) (interface{}, bool, error) {
	literal, ok := value.(string)
	if !ok || text.IsBlank(literal) {
		return nil, false, nil
	}
	accessor := h.descriptor.Lookup(name)
	if accessor == nil || (accessor.DateFormat == "" && accessor.TimeLayout == "") {
		return nil, false, nil
	}
	if accessor.Type != timeType && accessor.Type != timePtrType {
		return nil, false, nil
	}
	var ts time.Time
	var err error
	if accessor.DateFormat != "" {
		ts, err = ftime.ParseFormat(accessor.DateFormat, literal)
	} else {
		ts, err = ftime.ParseLayout(accessor.TimeLayout, literal)
	}
	if err != nil {
		return nil, true, &conv.ConversionError{Value: value, Target: accessor.Type, Cause: err}
	}
	if accessor.Type == timePtrType {
		return &ts, true, nil
	}
	return ts, true, nil
}

func (h *mapHolder) slot(string) (reflect.Type, bool) {
	return h.elemType, true
}

func (h *mapHolder) parseTime(string, interface{}) (interface{}, bool, error) {
	return nil, false, nil
}

func (h *mapHolder) set(name string, value interface{}) error {
	key := reflect.ValueOf(name)
	if h.keyType != key.Type() {
		converted, err := h.converter.Convert(name, h.keyType, nil)
		if err != nil {
			return err
		}
		if converted == nil {
			return fmt.Errorf("unsupported map key %q", name)
		}
		key = reflect.ValueOf(converted)
	}
	item := reflect.Zero(h.elemType)
	if value != nil {
		item = reflect.ValueOf(value)
	}
	h.value.SetMapIndex(key, item)
	return nil
}

// newHolder creates destination holder for struct pointer, map or map pointer
func (e *Engine) newHolder(target interface{}) (holder, error) {
	if target == nil {
		return nil, fmt.Errorf("copy target was nil")
	}
	rValue := reflect.ValueOf(target)
	targetType := rValue.Type()
	switch {
	case targetType.Kind() == reflect.Map:
		if rValue.IsNil() {
			return nil, fmt.Errorf("copy target map was nil")
		}
		return e.newMapHolder(rValue), nil
	case targetType.Kind() == reflect.Ptr && targetType.Elem().Kind() == reflect.Map:
		if rValue.IsNil() {
			return nil, fmt.Errorf("copy target %T was nil", target)
		}
		if rValue.Elem().IsNil() {
			rValue.Elem().Set(reflect.MakeMap(targetType.Elem()))
		}
		return e.newMapHolder(rValue.Elem()), nil
	case targetType.Kind() == reflect.Ptr && targetType.Elem().Kind() == reflect.Struct:
		if rValue.IsNil() {
			return nil, fmt.Errorf("copy target %T was nil", target)
		}
		return &recordHolder{ptr: rValue.UnsafePointer(), descriptor: e.cache.Get(targetType)}, nil
	}
	return nil, &conv.UnsupportedConversionError{Target: targetType, Message: "copy target has to be struct pointer or map"}
}

func (e *Engine) newMapHolder(value reflect.Value) *mapHolder {
	return &mapHolder{converter: e.converter, value: value, keyType: value.Type().Key(), elemType: value.Type().Elem()}
}
