// Package batch drives a collection through an asynchronous transform in
// fixed-size slices: free concurrency inside a slice, strict sequencing
// between slices, and an optional pause between them so a large input does
// not monopolize the scheduler.
//
// # Usage
//
//	thumbs, err := batch.Process(ctx, photos, renderThumbnail,
//	    batch.WithSize(20),
//	    batch.WithInterval(10*time.Millisecond),
//	)
//
// Results always come back in input order, whatever order the individual
// transforms finished in. Slice N+1 never starts before every transform of
// slice N has settled.
//
// Failure is fail-fast: the first transform error cancels the rest of its
// slice via the group context, skips all later slices, and becomes the
// error of the whole Process call. There is no partial-results mode — a
// caller that wants to keep going wraps its own transform and folds errors
// into the result type:
//
//	results, _ := batch.Process(ctx, urls, func(ctx context.Context, u string) (fetchResult, error) {
//	    body, err := fetch(ctx, u)
//	    return fetchResult{Body: body, Err: err}, nil // never fails the batch
//	})
//
// ProcessAsync is a convenience wrapper returning an async.Future for call
// sites that want a handle instead of blocking.
package batch
