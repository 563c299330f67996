package ttlcache

// EvictReason says why an entry left the cache.
type EvictReason int

const (
	// EvictReasonCapacity marks an eviction forced by a new insertion at
	// capacity.
	EvictReasonCapacity EvictReason = iota
	// EvictReasonExpired marks removal of an entry found past its TTL.
	EvictReasonExpired
	// EvictReasonDeleted marks an explicit Delete.
	EvictReasonDeleted
)

// String returns a stable label for the reason, suitable for metric labels.
func (r EvictReason) String() string {
	switch r {
	case EvictReasonCapacity:
		return "capacity"
	case EvictReasonExpired:
		return "expired"
	case EvictReasonDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// Metrics receives cache events. Implementations must be safe for
// concurrent use.
type Metrics interface {
	Hit()
	Miss()
	Evict(reason EvictReason)
}

// NoopMetrics is the default Metrics implementation; it does nothing.
type NoopMetrics struct{}

func (NoopMetrics) Hit()                {}
func (NoopMetrics) Miss()               {}
func (NoopMetrics) Evict(_ EvictReason) {}

var _ Metrics = NoopMetrics{}
