package singleflight

// Metrics receives deduplication events. Implementations must be safe for
// concurrent use.
type Metrics interface {
	// Led records a caller that started a new underlying operation.
	Led()
	// Joined records a caller that attached to an in-flight operation.
	Joined()
}

// NoopMetrics is the default Metrics implementation; it does nothing.
type NoopMetrics struct{}

func (NoopMetrics) Led()    {}
func (NoopMetrics) Joined() {}

var _ Metrics = NoopMetrics{}

// Option configures a Group at construction time.
type Option[K comparable, V any] func(*Group[K, V])

// WithMetrics attaches a metrics recorder. Nil recorders are ignored.
func WithMetrics[K comparable, V any](m Metrics) Option[K, V] {
	return func(g *Group[K, V]) {
		if m != nil {
			g.metrics = m
		}
	}
}
