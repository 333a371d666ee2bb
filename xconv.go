package xconv

import (
	"reflect"

	"github.com/viant/xconv/config"
	"github.com/viant/xconv/conv"
	"github.com/viant/xconv/copier"
	"github.com/viant/xconv/internal/logger"
	"github.com/viant/xconv/introspect"
	"github.com/viant/xconv/singleton"
)

// Toolkit wires conversion registry with transformation engine
type Toolkit struct {
	Config   *config.Config
	Registry *conv.Registry
	Engine   *copier.Engine
	Cache    *introspect.Cache
}

type defaultKey struct{}

// Convert converts value into target type, nil target is inferred from default value
func (t *Toolkit) Convert(value interface{}, target reflect.Type, defaultValue interface{}) (interface{}, error) {
	return t.Registry.Convert(value, target, defaultValue)
}

// ConvertQuietly converts value returning default value on any failure
func (t *Toolkit) ConvertQuietly(value interface{}, target reflect.Type, defaultValue interface{}) interface{} {
	return conv.Quietly(t.Registry, value, target, defaultValue)
}

// Register registers custom converter for target type
func (t *Toolkit) Register(target reflect.Type, converter conv.Converter) *Toolkit {
	t.Registry.Register(target, converter)
	return t
}

// Copy copies source record or map into target struct pointer or map
func (t *Toolkit) Copy(source, target interface{}, opts ...copier.Option) error {
	return t.Engine.Copy(source, target, opts...)
}

// CopyTo copies source into a new instance of target type
func (t *Toolkit) CopyTo(source interface{}, targetType reflect.Type, opts ...copier.Option) (interface{}, error) {
	return t.Engine.CopyTo(source, targetType, opts...)
}

// CopyAll copies each source element into a new instance of target type
func (t *Toolkit) CopyAll(sources interface{}, targetType reflect.Type, opts ...copier.Option) (interface{}, error) {
	return t.Engine.CopyAll(sources, targetType, opts...)
}

// RecordToMap projects record properties into a map
func (t *Toolkit) RecordToMap(source interface{}, ignoreNullValue bool) map[string]interface{} {
	return t.Engine.RecordToMap(source, ignoreNullValue)
}

// FlattenToStringMap renders record or map properties as text
func (t *Toolkit) FlattenToStringMap(source interface{}, ignoreNullValue bool) map[string]string {
	return t.Engine.FlattenToStringMap(source, ignoreNullValue)
}

// New creates a toolkit, nil config uses defaults
func New(cfg *config.Config) *Toolkit {
	if cfg == nil {
		cfg = config.Default()
	}
	l := cfg.Logger()
	cache := introspect.NewCache(introspect.WithCapacity(cfg.CacheCapacity), introspect.WithLogger(l))
	registry := conv.NewRegistry(conv.WithLogger(l))
	engine := copier.New(registry, copier.WithCache(cache), copier.WithLogger(l))
	registry.SetTransformer(engine)
	return &Toolkit{Config: cfg, Registry: registry, Engine: engine, Cache: cache}
}

// Default returns process-wide toolkit configured from environment
func Default() *Toolkit {
	return singleton.Of(defaultKey{}, func() *Toolkit {
		cfg, err := config.Load()
		if err != nil {
			logger.Default().Warn("failed to load configuration, using defaults", "error", err)
			cfg = config.Default()
		}
		if err = cfg.Apply(); err != nil {
			logger.Default().Warn("failed to apply configuration", "error", err)
		}
		return New(cfg)
	})
}

// Convert converts value with the default toolkit
func Convert(value interface{}, target reflect.Type, defaultValue interface{}) (interface{}, error) {
	return Default().Convert(value, target, defaultValue)
}

// ConvertQuietly converts value with the default toolkit returning default value on failure
func ConvertQuietly(value interface{}, target reflect.Type, defaultValue interface{}) interface{} {
	return Default().ConvertQuietly(value, target, defaultValue)
}

// To converts value into T with the default toolkit
func To[T any](value interface{}, defaultValue T) (T, error) {
	return conv.To(Default().Registry, value, defaultValue)
}

// Register registers custom converter with the default toolkit
func Register(target reflect.Type, converter conv.Converter) {
	Default().Register(target, converter)
}

// Copy copies source into target with the default toolkit
func Copy(source, target interface{}, opts ...copier.Option) error {
	return Default().Copy(source, target, opts...)
}

// CopyAs copies source into a new T with the default toolkit
func CopyAs[T any](source interface{}, opts ...copier.Option) (T, error) {
	return copier.CopyAs[T](Default().Engine, source, opts...)
}

// CopyAll copies each source element into a new instance of target type with the default toolkit
func CopyAll(sources interface{}, targetType reflect.Type, opts ...copier.Option) (interface{}, error) {
	return Default().CopyAll(sources, targetType, opts...)
}

// CopyAllAs copies each source element into a new T with the default toolkit
func CopyAllAs[T any](sources interface{}, opts ...copier.Option) ([]T, error) {
	return copier.CopyAllAs[T](Default().Engine, sources, opts...)
}

// RecordToMap projects record properties into a map with the default toolkit
func RecordToMap(source interface{}, ignoreNullValue bool) map[string]interface{} {
	return Default().RecordToMap(source, ignoreNullValue)
}

// FlattenToStringMap renders record or map properties as text with the default toolkit
func FlattenToStringMap(source interface{}, ignoreNullValue bool) map[string]string {
	return Default().FlattenToStringMap(source, ignoreNullValue)
}
