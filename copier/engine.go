package copier

import (
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/viant/xconv/conv"
	"github.com/viant/xconv/internal/logger"
	"github.com/viant/xconv/introspect"
	"github.com/viant/xconv/visitor"
)

type (
	// Engine copies properties between records and maps
	Engine struct {
		converter conv.Converter
		cache     *introspect.Cache
		logger    logger.Logger
	}

	// EngineOption represents engine option
	EngineOption func(e *Engine)
)

// WithCache sets accessor cache
func WithCache(cache *introspect.Cache) EngineOption {
	return func(e *Engine) {
		e.cache = cache
	}
}

// WithLogger sets engine logger
func WithLogger(l logger.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = l
	}
}

// RecordToMap projects record properties into a new map, nil values are skipped with ignoreNullValue
func (e *Engine) RecordToMap(source interface{}, ignoreNullValue bool) map[string]interface{} {
	visit, err := visitor.RecordVisitorWith(e.cache, source)
	if err != nil {
		return nil
	}
	ret := map[string]interface{}{}
	_ = visit(func(key string, value interface{}) (bool, error) {
		if conv.IsNil(value) {
			if ignoreNullValue {
				return true, nil
			}
			value = nil
		}
		ret[key] = value
		return true, nil
	})
	return ret
}

// Copy copies source record or map properties into target struct pointer or map
func (e *Engine) Copy(source, target interface{}, opts ...Option) error {
	return e.copy(source, target, NewOptions(opts...))
}

// Transform copies source into target with default options
func (e *Engine) Transform(source, target interface{}) error {
	return e.copy(source, target, &Options{})
}

func (e *Engine) copy(source, target interface{}, options *Options) error {
	if conv.IsNil(source) {
		return nil
	}
	dest, err := e.newHolder(target)
	if err != nil {
		return err
	}
	visit, err := visitor.PropertyVisitorWith(e.cache, source)
	if err != nil {
		return &conv.UnsupportedConversionError{Source: reflect.TypeOf(source), Target: reflect.TypeOf(target), Message: err.Error()}
	}
	if _, ok := dest.(*recordHolder); ok {
		return e.copyToRecord(visit, dest, options)
	}
	return visit(func(key string, value interface{}) (bool, error) {
		name := options.destination(key)
		if err := e.copyProperty(dest, key, name, value, options); err != nil {
			return false, err
		}
		return true, nil
	})
}

// copyToRecord iterates destination fields, taking values from source properties matched by destination name
func (e *Engine) copyToRecord(visit visitor.Visitor[string, interface{}], dest holder, options *Options) error {
	record := dest.(*recordHolder)
	type property struct {
		key   string
		value interface{}
	}
	properties := make(map[string]property, record.descriptor.Len())
	_ = visit(func(key string, value interface{}) (bool, error) {
		name := options.destination(key)
		if _, ok := properties[name]; !ok || name == key {
			properties[name] = property{key: key, value: value}
		}
		return true, nil
	})
	for _, accessor := range record.descriptor.Items {
		prop, ok := properties[accessor.Name]
		if !ok {
			continue
		}
		if err := e.copyProperty(dest, prop.key, accessor.Name, prop.value, options); err != nil {
			return err
		}
	}
	return nil
}

// copyProperty applies copy policy to a single property
func (e *Engine) copyProperty(dest holder, key, name string, value interface{}, options *Options) error {
	if options.ignored(key, name) {
		return nil
	}
	slot, ok := dest.slot(name)
	if !ok {
		return nil
	}
	if conv.IsNil(value) {
		if options.IgnoreNullValue {
			return nil
		}
		return e.wrap(name, dest.set(name, nil))
	}
	if text, ok := value.(string); ok && options.IgnoreEmptyString && text == "" {
		return nil
	}
	var converted interface{}
	var err error
	if valueConverter := options.valueConverter(key); valueConverter != nil {
		converted, err = valueConverter.Transform(value, slot)
	} else {
		var parsed bool
		if converted, parsed, err = dest.parseTime(name, value); !parsed {
			converted, err = e.converter.Convert(value, slot, nil)
		}
	}
	if err != nil {
		return e.wrap(name, err)
	}
	return e.wrap(name, dest.set(name, converted))
}

func (e *Engine) wrap(name string, err error) error {
	if err == nil {
		return nil
	}
	e.log().Debug("failed to copy property", "property", name, "error", err)
	return fmt.Errorf("failed to copy property %v: %w", name, err)
}

// CopyTo creates instance of target type (struct, struct pointer or map) and copies source into it
func (e *Engine) CopyTo(source interface{}, targetType reflect.Type, opts ...Option) (interface{}, error) {
	if conv.IsNil(source) || targetType == nil {
		return nil, nil
	}
	return e.copyTo(source, targetType, NewOptions(opts...))
}

func (e *Engine) copyTo(source interface{}, targetType reflect.Type, options *Options) (interface{}, error) {
	switch targetType.Kind() {
	case reflect.Struct:
		target := reflect.New(targetType)
		if err := e.copy(source, target.Interface(), options); err != nil {
			return nil, err
		}
		return target.Elem().Interface(), nil
	case reflect.Ptr:
		if targetType.Elem().Kind() == reflect.Struct {
			target := reflect.New(targetType.Elem())
			if err := e.copy(source, target.Interface(), options); err != nil {
				return nil, err
			}
			return target.Interface(), nil
		}
	case reflect.Map:
		target := reflect.MakeMap(targetType)
		if err := e.copy(source, target.Interface(), options); err != nil {
			return nil, err
		}
		return target.Interface(), nil
	}
	return nil, &conv.ReflectiveAccessError{Type: targetType, Op: "instantiate"}
}

// CopyAll copies each source element into a new instance of target type, returns []targetType
func (e *Engine) CopyAll(sources interface{}, targetType reflect.Type, opts ...Option) (interface{}, error) {
	if conv.IsNil(sources) || targetType == nil {
		return nil, nil
	}
	visit, err := visitor.AnySliceVisitorOf(sources)
	if err != nil {
		return nil, &conv.UnsupportedConversionError{Source: reflect.TypeOf(sources), Target: reflect.SliceOf(targetType), Message: err.Error()}
	}
	options := NewOptions(opts...)
	result := reflect.MakeSlice(reflect.SliceOf(targetType), 0, reflect.Indirect(reflect.ValueOf(sources)).Len())
	err = visit(func(index int, element any) (bool, error) {
		item := reflect.Zero(targetType)
		if !conv.IsNil(element) {
			copied, err := e.copyTo(element, targetType, options)
			if err != nil {
				return false, fmt.Errorf("failed to copy item %d: %w", index, err)
			}
			item = reflect.ValueOf(copied)
		}
		result = reflect.Append(result, item)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return result.Interface(), nil
}

// FlattenToStringMap renders record or map properties as text, numbers as decimal text and time as epoch milliseconds
func (e *Engine) FlattenToStringMap(source interface{}, ignoreNullValue bool) map[string]string {
	if conv.IsNil(source) {
		return nil
	}
	visit, err := visitor.PropertyVisitorWith(e.cache, source)
	if err != nil {
		return nil
	}
	ret := map[string]string{}
	_ = visit(func(key string, value interface{}) (bool, error) {
		if conv.IsNil(value) {
			if !ignoreNullValue {
				ret[key] = ""
			}
			return true, nil
		}
		ret[key] = flatText(value)
		return true, nil
	})
	return ret
}

func flatText(value interface{}) string {
	switch actual := value.(type) {
	case string:
		return actual
	case time.Time:
		return strconv.FormatInt(actual.UnixMilli(), 10)
	case *time.Time:
		return strconv.FormatInt(actual.UnixMilli(), 10)
	case conv.Date:
		return strconv.FormatInt(actual.Time(nil).UnixMilli(), 10)
	case *big.Int:
		return actual.String()
	case big.Int:
		return actual.String()
	case decimal.Decimal:
		return actual.String()
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rValue.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rValue.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rValue.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rValue.Float(), 'f', -1, 64)
	case reflect.Ptr:
		return flatText(rValue.Elem().Interface())
	}
	return fmt.Sprint(value)
}

func (e *Engine) log() logger.Logger {
	if e.logger != nil {
		return e.logger
	}
	return logger.Default()
}

// CopyAs copies source into a new T
func CopyAs[T any](e *Engine, source interface{}, opts ...Option) (T, error) {
	var zero T
	result, err := e.CopyTo(source, reflect.TypeOf((*T)(nil)).Elem(), opts...)
	if err != nil || result == nil {
		return zero, err
	}
	return result.(T), nil
}

// CopyAllAs copies each source element into a new T
func CopyAllAs[T any](e *Engine, sources interface{}, opts ...Option) ([]T, error) {
	result, err := e.CopyAll(sources, reflect.TypeOf((*T)(nil)).Elem(), opts...)
	if err != nil || result == nil {
		return nil, err
	}
	return result.([]T), nil
}

// New creates an engine converting property values with supplied converter;
// nil converter creates a registry using this engine as its transformer
func New(converter conv.Converter, opts ...EngineOption) *Engine {
	ret := &Engine{converter: converter}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.cache == nil {
		ret.cache = introspect.Default()
	}
	if ret.converter == nil {
		ret.converter = conv.NewRegistry(conv.WithTransformer(ret), conv.WithLogger(ret.logger))
	}
	return ret
}
