package window

import (
	"fmt"
	"math"
)

// Request describes the geometry of one windowing calculation. Extents and
// the scroll offset share a unit (typically pixels); indices are item
// positions in the backing collection.
type Request struct {
	// Offset is the scroll position. Negative values clamp to zero.
	Offset float64
	// ItemExtent is the size of one item along the scroll axis. Must be
	// positive.
	ItemExtent float64
	// ViewportExtent is the visible size along the scroll axis.
	ViewportExtent float64
	// Overscan is the number of extra items rendered on each side of the
	// visible range to absorb fast scrolling.
	Overscan int
	// TotalItems is the length of the backing collection.
	TotalItems int
}

func (r Request) validate() error {
	if r.ItemExtent <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidItemExtent, r.ItemExtent)
	}
	if r.ViewportExtent < 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidViewport, r.ViewportExtent)
	}
	if r.Overscan < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidOverscan, r.Overscan)
	}
	if r.TotalItems < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidTotal, r.TotalItems)
	}
	return nil
}

// Window is the index range to render. For a non-empty result
// 0 <= Start <= End < TotalItems; the empty range is Start 0, End -1.
type Window struct {
	// Start is the first index to render, overscan included.
	Start int
	// End is the last index to render, inclusive.
	End int
	// VisibleCount is how many items fit in the viewport, before overscan
	// and clamping.
	VisibleCount int
	// LeadingOffset is the extent consumed by the items before Start,
	// i.e. the translation to apply ahead of the rendered slice.
	LeadingOffset float64
}

// IsEmpty reports whether the window contains no indices.
func (w Window) IsEmpty() bool { return w.End < w.Start }

// Len returns the number of indices in the window.
func (w Window) Len() int {
	if w.IsEmpty() {
		return 0
	}
	return w.End - w.Start + 1
}

// Compute maps a scroll position onto the index range to render. It is a
// pure function of its input: no measurement, no observers, just the
// arithmetic.
func Compute(req Request) (Window, error) {
	if err := req.validate(); err != nil {
		return Window{}, err
	}

	if req.TotalItems == 0 {
		return Window{Start: 0, End: -1}, nil
	}

	offset := math.Max(req.Offset, 0)
	visible := int(math.Ceil(req.ViewportExtent / req.ItemExtent))

	start := int(math.Floor(offset/req.ItemExtent)) - req.Overscan
	if start < 0 {
		start = 0
	}
	if start > req.TotalItems-1 {
		start = req.TotalItems - 1
	}

	end := start + visible + 2*req.Overscan
	if end > req.TotalItems-1 {
		end = req.TotalItems - 1
	}

	return Window{
		Start:         start,
		End:           end,
		VisibleCount:  visible,
		LeadingOffset: float64(start) * req.ItemExtent,
	}, nil
}
