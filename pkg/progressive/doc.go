// Package progressive reveals an already-loaded collection in increments —
// the "show more" pattern. The data is all in memory; the loader only
// tracks how much of it the view has asked for, so rendering cost grows
// with user intent instead of collection size.
//
//	loader, err := progressive.New(rows, progressive.Config{
//	    InitialCount: 20,
//	    Increment:    20,
//	    MaxCount:     200,
//	})
//	if err != nil {
//	    return err
//	}
//
//	render(loader.Visible())
//	if loader.HasMore() {
//	    // show the "load more" affordance; on click:
//	    loader.Advance()
//	    render(loader.Visible())
//	}
//
// The visible count is monotonically non-decreasing and saturates at the
// smaller of MaxCount and the collection length; Advance at the ceiling is
// a no-op and returns false. Reset swaps the backing collection and starts
// over.
package progressive
