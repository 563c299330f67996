// Package window computes the visible index range for virtual scrolling:
// given a scroll offset, item size, viewport size, and an overscan margin,
// it returns which slice of a large ordered collection should be rendered
// and how far that slice sits from the top.
//
// The calculation is pure arithmetic. DOM measurement, scroll listeners,
// and rendering belong to the caller; this package only answers "which
// indices, at what leading offset".
//
//	w, err := window.Compute(window.Request{
//	    Offset:         1000,
//	    ItemExtent:     50,
//	    ViewportExtent: 500,
//	    Overscan:       2,
//	    TotalItems:     100,
//	})
//	// w.Start == 18, w.End == 32, w.LeadingOffset == 900
//
// An empty collection produces the canonical empty range Start 0, End -1;
// check Window.IsEmpty rather than comparing indices. A non-positive
// ItemExtent is a caller bug and is rejected with ErrInvalidItemExtent
// instead of silently dividing by zero. Negative scroll offsets (rubber-band
// scrolling) clamp to zero.
package window
