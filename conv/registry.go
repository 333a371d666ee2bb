package conv

import (
	"math/big"
	"net/url"
	"reflect"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/viant/xconv/internal/logger"
	"github.com/viant/xconv/introspect"
	"github.com/viant/xconv/singleton"
)

type (
	// Registry maps target types to converters and dispatches permissive conversion
	Registry struct {
		builtin     map[reflect.Type]Converter
		kinds       map[reflect.Kind]Converter
		custom      sync.Map // map[reflect.Type]Converter
		derived     sync.Map // map[reflect.Type]Converter
		transformer atomic.Pointer[transformerHolder]
		logger      logger.Logger
	}

	transformerHolder struct {
		Transformer
	}

	// Option represents registry option
	Option func(r *Registry)

	builtinKey struct {
		target reflect.Type
	}
)

// WithTransformer sets record transformer used by compound and map converters
func WithTransformer(transformer Transformer) Option {
	return func(r *Registry) {
		r.SetTransformer(transformer)
	}
}

// WithLogger sets registry logger
func WithLogger(l logger.Logger) Option {
	return func(r *Registry) {
		r.logger = l
	}
}

// Register registers custom converter for target type, replacing previous one
func (r *Registry) Register(target reflect.Type, converter Converter) *Registry {
	_, replaced := r.custom.Swap(target, converter)
	r.log().Debug("registered converter", "type", target.String(), "replaced", replaced)
	return r
}

// RegisterFunc registers custom converter function for target type
func (r *Registry) RegisterFunc(target reflect.Type, fn func(value interface{}, target reflect.Type, defaultValue interface{}) (interface{}, error)) *Registry {
	return r.Register(target, Func(fn))
}

// Resolve returns converter registered for exact target type, nil if none
func (r *Registry) Resolve(target reflect.Type, preferCustom bool) Converter {
	if target == nil {
		return nil
	}
	if preferCustom {
		if converter := r.lookupCustom(target); converter != nil {
			return converter
		}
		return r.builtin[target]
	}
	if converter, ok := r.builtin[target]; ok {
		return converter
	}
	return r.lookupCustom(target)
}

// Convert converts value into target type, custom converters take precedence
func (r *Registry) Convert(value interface{}, target reflect.Type, defaultValue interface{}) (interface{}, error) {
	return r.ConvertWith(value, target, defaultValue, true)
}

// ConvertWith converts value into target type. Unlike strict converters missing target type and default
// returns value unchanged and nil value returns default
func (r *Registry) ConvertWith(value interface{}, target reflect.Type, defaultValue interface{}, preferCustom bool) (interface{}, error) {
	if target == nil {
		if defaultValue == nil {
			return value, nil
		}
		target = reflect.TypeOf(defaultValue)
	}
	if isNil(value) {
		return defaultValue, nil
	}
	if reflect.TypeOf(value).AssignableTo(target) {
		return value, nil
	}
	if converter := r.Resolve(target, preferCustom); converter != nil {
		return converter.Convert(value, target, defaultValue)
	}
	if converter := r.derive(target); converter != nil {
		return converter.Convert(value, target, defaultValue)
	}
	return nil, &UnsupportedConversionError{Source: reflect.TypeOf(value), Target: target}
}

// SetTransformer sets record transformer
func (r *Registry) SetTransformer(transformer Transformer) {
	if transformer == nil {
		r.transformer.Store(nil)
		return
	}
	r.transformer.Store(&transformerHolder{Transformer: transformer})
}

// Transformer returns record transformer or nil
func (r *Registry) Transformer() Transformer {
	if holder := r.transformer.Load(); holder != nil {
		return holder.Transformer
	}
	return nil
}

func (r *Registry) lookupCustom(target reflect.Type) Converter {
	if v, ok := r.custom.Load(target); ok {
		return v.(Converter)
	}
	return nil
}

// derive returns converter for named basic, pointer, collection or record types
func (r *Registry) derive(target reflect.Type) Converter {
	if converter, ok := r.kinds[target.Kind()]; ok {
		return converter
	}
	if v, ok := r.derived.Load(target); ok {
		return v.(Converter)
	}
	var converter Converter
	switch target.Kind() {
	case reflect.Ptr:
		converter = r.newPointerConverter(target)
	case reflect.Slice, reflect.Array:
		converter = r.newSliceConverter(target)
	case reflect.Map:
		converter = r.newMapConverter(target)
	case reflect.Struct:
		if !introspect.IsRecord(target) {
			return nil
		}
		r.log().Debug("using compound converter", "type", target.String())
		converter = r.NewCompound(target)
	default:
		return nil
	}
	v, _ := r.derived.LoadOrStore(target, converter)
	return v.(Converter)
}

func (r *Registry) log() logger.Logger {
	if r.logger != nil {
		return r.logger
	}
	return logger.Default()
}

// Builtin returns shared builtin converter for exact target type, nil if none
func Builtin(target reflect.Type) Converter {
	return builtins()[target]
}

var builtins = sync.OnceValue(func() map[reflect.Type]Converter {
	ret := map[reflect.Type]Converter{}
	register := func(sample interface{}, ctor func(target reflect.Type) Converter) {
		target := reflect.TypeOf(sample)
		ret[target] = singleton.Of(builtinKey{target: target}, func() Converter {
			return ctor(target)
		})
	}
	register(false, newBoolConverter)
	for _, sample := range []interface{}{int(0), int8(0), int16(0), int32(0), int64(0),
		uint(0), uint8(0), uint16(0), uint32(0), uint64(0), uintptr(0)} {
		register(sample, newIntegerConverter)
	}
	register(float32(0), newFloatConverter)
	register(float64(0), newFloatConverter)
	register("", newStringConverter)
	register(Char(0), newCharConverter)
	register((*big.Int)(nil), newBigIntConverter)
	register(decimal.Decimal{}, newDecimalConverter)
	register(time.Time{}, newTimeConverter)
	register(Date{}, newTimeConverter)
	register(TimeOfDay{}, newTimeConverter)
	register(time.Duration(0), newDurationConverter)
	register(uuid.UUID{}, newUUIDConverter)
	register((*url.URL)(nil), newURLConverter)
	return ret
})

// kindConverters returns builtin converters serving named types by kind
func kindConverters() map[reflect.Kind]Converter {
	ret := map[reflect.Kind]Converter{}
	for target, converter := range builtins() {
		switch target.Kind() {
		case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
			reflect.Float32, reflect.Float64, reflect.String:
			if target.PkgPath() == "" {
				ret[target.Kind()] = converter
			}
		}
	}
	return ret
}

// NewRegistry creates a registry with builtin converters
func NewRegistry(opts ...Option) *Registry {
	ret := &Registry{builtin: builtins(), kinds: kindConverters()}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}
