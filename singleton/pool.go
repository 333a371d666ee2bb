// Package singleton provides a process-wide, lazily populated instance pool.
// Each key maps to exactly one instance; construction happens at most once per key
// even when several goroutines race on the first Get.
package singleton

import "sync"

type (
	//Pool represents keyed instance pool
	Pool struct {
		instances sync.Map // map[any]interface{}
		locks     sync.Map // map[any]*sync.Mutex
	}

	//Constructor creates an instance on first use
	Constructor func() interface{}
)

var defaultPool = New()

// Get returns an instance for supplied key, constructing it on first use
func (p *Pool) Get(key any, ctor Constructor) interface{} {
	if v, ok := p.instances.Load(key); ok {
		return v
	}
	mux := p.lock(key)
	mux.Lock()
	defer mux.Unlock()
	if v, ok := p.instances.Load(key); ok {
		return v
	}
	instance := ctor()
	p.instances.Store(key, instance)
	return instance
}

// Put replaces or sets an instance for supplied key
func (p *Pool) Put(key any, instance interface{}) {
	mux := p.lock(key)
	mux.Lock()
	p.instances.Store(key, instance)
	mux.Unlock()
}

// Lookup returns an instance without constructing it
func (p *Pool) Lookup(key any) (interface{}, bool) {
	return p.instances.Load(key)
}

// Remove removes instance for supplied key
func (p *Pool) Remove(key any) {
	mux := p.lock(key)
	mux.Lock()
	p.instances.Delete(key)
	mux.Unlock()
}

// Keys returns all pooled keys
func (p *Pool) Keys() []any {
	var result []any
	p.instances.Range(func(key, _ any) bool {
		result = append(result, key)
		return true
	})
	return result
}

// Destroy removes all pooled instances
func (p *Pool) Destroy() {
	p.instances.Range(func(key, _ any) bool {
		p.Remove(key)
		return true
	})
}

func (p *Pool) lock(key any) *sync.Mutex {
	if mux, ok := p.locks.Load(key); ok {
		return mux.(*sync.Mutex)
	}
	mux, _ := p.locks.LoadOrStore(key, &sync.Mutex{})
	return mux.(*sync.Mutex)
}

// New creates a pool
func New() *Pool {
	return &Pool{}
}

// Default returns process-wide pool
func Default() *Pool {
	return defaultPool
}

// Get returns process-wide instance for supplied key
func Get(key any, ctor Constructor) interface{} {
	return defaultPool.Get(key, ctor)
}

// Put sets process-wide instance for supplied key
func Put(key any, instance interface{}) {
	defaultPool.Put(key, instance)
}

// Remove removes process-wide instance for supplied key
func Remove(key any) {
	defaultPool.Remove(key)
}

// Destroy resets process-wide pool
func Destroy() {
	defaultPool.Destroy()
}

// Of returns typed process-wide instance for supplied key
func Of[T any](key any, ctor func() T) T {
	return defaultPool.Get(key, func() interface{} { return ctor() }).(T)
}
