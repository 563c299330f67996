package loader

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/clientkit/pkg/singleflight"
	"github.com/dmitrymomot/clientkit/pkg/ttlcache"
)

// Func produces the resource for one registered key.
type Func[V any] func(ctx context.Context) (V, error)

// Registry maps keys to loader functions and resolves them through a
// lookup table, keeping the set of loadable resources open for extension:
// adding a resource is a Register call, not a new branch in a dispatcher.
//
// Loads for one key are coalesced, so a burst of Load calls while a
// resource is being produced runs its loader once. With a cache attached,
// successful results are memoized and served without invoking the loader
// at all.
type Registry[K comparable, V any] struct {
	mu      sync.RWMutex
	loaders map[K]Func[V]
	flights *singleflight.Group[K, V]
	cache   *ttlcache.Cache[K, V]
	log     *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry[K comparable, V any](opts ...Option[K, V]) *Registry[K, V] {
	r := &Registry[K, V]{
		loaders: make(map[K]Func[V]),
		flights: singleflight.New[K, V](),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Option configures a Registry at construction time.
type Option[K comparable, V any] func(*Registry[K, V])

// WithCache memoizes successful loads in c. Failed loads are never cached.
func WithCache[K comparable, V any](c *ttlcache.Cache[K, V]) Option[K, V] {
	return func(r *Registry[K, V]) { r.cache = c }
}

// WithLogger reports load failures to log at debug level. The registry
// stays silent without it.
func WithLogger[K comparable, V any](log *slog.Logger) Option[K, V] {
	return func(r *Registry[K, V]) { r.log = log }
}

// Register binds key to fn. Registering a key twice returns
// ErrAlreadyRegistered; a nil fn returns ErrNilLoader.
func (r *Registry[K, V]) Register(key K, fn Func[V]) error {
	if fn == nil {
		return ErrNilLoader
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.loaders[key]; exists {
		return fmt.Errorf("%w: %v", ErrAlreadyRegistered, key)
	}
	r.loaders[key] = fn
	return nil
}

// Keys returns the registered keys in unspecified order.
func (r *Registry[K, V]) Keys() []K {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]K, 0, len(r.loaders))
	for k := range r.loaders {
		keys = append(keys, k)
	}
	return keys
}

// Load resolves key: cache hit if one is attached, otherwise the registered
// loader, with concurrent loads for the same key collapsed into one
// execution. Unknown keys return ErrNotRegistered.
func (r *Registry[K, V]) Load(ctx context.Context, key K) (V, error) {
	r.mu.RLock()
	fn, ok := r.loaders[key]
	r.mu.RUnlock()
	if !ok {
		var zero V
		return zero, fmt.Errorf("%w: %v", ErrNotRegistered, key)
	}

	if r.cache != nil {
		if v, hit := r.cache.Get(key); hit {
			return v, nil
		}
	}

	flight := r.flights.Do(ctx, key, func(ctx context.Context) (V, error) {
		v, err := fn(ctx)
		if err != nil {
			if r.log != nil {
				r.log.DebugContext(ctx, "resource load failed",
					slog.Any("key", key),
					slog.Any("error", err),
				)
			}
			var zero V
			return zero, err
		}
		if r.cache != nil {
			r.cache.Set(key, v)
		}
		return v, nil
	})

	return flight.AwaitContext(ctx)
}
