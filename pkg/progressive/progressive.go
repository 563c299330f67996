package progressive

import "fmt"

// Config controls how quickly a Loader reveals its collection.
type Config struct {
	// InitialCount is how many items are visible immediately.
	InitialCount int `env:"PROGRESSIVE_INITIAL_COUNT" envDefault:"20"`
	// Increment is how many more items each Advance reveals.
	Increment int `env:"PROGRESSIVE_INCREMENT" envDefault:"20"`
	// MaxCount caps the number of items ever revealed, regardless of the
	// collection length.
	MaxCount int `env:"PROGRESSIVE_MAX_COUNT" envDefault:"1000"`
}

func (c Config) validate() error {
	if c.InitialCount < 0 {
		return fmt.Errorf("%w: initial count must not be negative, got %d", ErrInvalidConfig, c.InitialCount)
	}
	if c.Increment <= 0 {
		return fmt.Errorf("%w: increment must be positive, got %d", ErrInvalidConfig, c.Increment)
	}
	if c.MaxCount < 0 {
		return fmt.Errorf("%w: max count must not be negative, got %d", ErrInvalidConfig, c.MaxCount)
	}
	return nil
}

// Loader exposes an incrementally growing prefix of an in-memory
// collection. It is pure state: no timers, no goroutines, no re-fetching.
// The visible count never decreases until Reset.
//
// Loader is not safe for concurrent use; it models per-view UI state and
// belongs to a single owner.
type Loader[T any] struct {
	items   []T
	visible int
	config  Config
}

// New creates a Loader over items. The initial visible count is
// InitialCount clamped to both MaxCount and the collection length.
func New[T any](items []T, cfg Config) (*Loader[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	l := &Loader[T]{config: cfg}
	l.Reset(items)
	return l, nil
}

// Reset replaces the backing collection and restarts from the initial
// count.
func (l *Loader[T]) Reset(items []T) {
	l.items = items
	l.visible = l.clamp(l.config.InitialCount)
}

// Advance reveals up to Increment more items. It reports whether the
// visible prefix grew; once the ceiling is reached further calls are
// no-ops.
func (l *Loader[T]) Advance() bool {
	next := l.clamp(l.visible + l.config.Increment)
	if next == l.visible {
		return false
	}
	l.visible = next
	return true
}

// Visible returns a copy of the currently revealed prefix.
func (l *Loader[T]) Visible() []T {
	out := make([]T, l.visible)
	copy(out, l.items[:l.visible])
	return out
}

// Count returns the number of currently revealed items.
func (l *Loader[T]) Count() int { return l.visible }

// Total returns the length of the backing collection.
func (l *Loader[T]) Total() int { return len(l.items) }

// HasMore reports whether Advance can reveal anything further.
func (l *Loader[T]) HasMore() bool {
	return l.visible < l.ceiling()
}

func (l *Loader[T]) ceiling() int {
	return min(l.config.MaxCount, len(l.items))
}

func (l *Loader[T]) clamp(n int) int {
	return min(n, l.ceiling())
}
