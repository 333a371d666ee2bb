package introspect

import (
	"reflect"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/viant/xconv/internal/logger"
)

type (
	//Cache represents per type accessor descriptor cache
	Cache struct {
		entries  sync.Map // map[reflect.Type]*Descriptor
		bounded  *lru.Cache[reflect.Type, *Descriptor]
		capacity int
		logger   logger.Logger
	}

	//Option represents cache option
	Option func(c *Cache)
)

// WithCapacity bounds cache with LRU eviction
func WithCapacity(capacity int) Option {
	return func(c *Cache) {
		c.capacity = capacity
	}
}

// WithLogger sets cache logger
func WithLogger(l logger.Logger) Option {
	return func(c *Cache) {
		c.logger = l
	}
}

// Get returns descriptor for supplied type, struct pointers are dereferenced, nil for non struct
func (c *Cache) Get(t reflect.Type) *Descriptor {
	if t = EnsureStructType(t); t == nil {
		return nil
	}
	if c.bounded != nil {
		if descriptor, ok := c.bounded.Get(t); ok {
			return descriptor
		}
		descriptor := c.introspect(t)
		c.bounded.Add(t, descriptor)
		return descriptor
	}
	if v, ok := c.entries.Load(t); ok {
		return v.(*Descriptor)
	}
	v, _ := c.entries.LoadOrStore(t, c.introspect(t))
	return v.(*Descriptor)
}

// GetAsMap returns name indexed accessors, returned map is shared and must not be modified
func (c *Cache) GetAsMap(t reflect.Type) map[string]*Accessor {
	descriptor := c.Get(t)
	if descriptor == nil {
		return nil
	}
	return descriptor.byName
}

// Len returns cached type count
func (c *Cache) Len() int {
	if c.bounded != nil {
		return c.bounded.Len()
	}
	count := 0
	c.entries.Range(func(_, _ any) bool {
		count++
		return true
	})
	return count
}

func (c *Cache) introspect(t reflect.Type) *Descriptor {
	descriptor := NewDescriptor(t)
	c.log().Debug("introspected type", "type", t.String(), "accessors", descriptor.Len())
	return descriptor
}

func (c *Cache) log() logger.Logger {
	if c.logger != nil {
		return c.logger
	}
	return logger.Default()
}

// NewCache creates a cache, unbounded unless WithCapacity is used
func NewCache(opts ...Option) *Cache {
	ret := &Cache{}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.capacity > 0 {
		ret.bounded, _ = lru.New[reflect.Type, *Descriptor](ret.capacity)
	}
	return ret
}

var defaultCache = NewCache()

// Default returns process-wide cache
func Default() *Cache {
	return defaultCache
}

// Get returns descriptor from process-wide cache
func Get(t reflect.Type) *Descriptor {
	return defaultCache.Get(t)
}

// GetAsMap returns name indexed accessors from process-wide cache
func GetAsMap(t reflect.Type) map[string]*Accessor {
	return defaultCache.GetAsMap(t)
}
