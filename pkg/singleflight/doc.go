// Package singleflight deduplicates concurrent operations by key: while an
// operation for a key is in flight, further calls under the same key attach
// to it instead of starting their own. One execution fans out to every
// caller.
//
// Unlike the x/sync singleflight, Do does not block. It returns a Flight
// handle immediately; callers decide when and how to wait (Await,
// AwaitContext, or select on Done). This fits fetch-style call sites that
// fire a request during rendering and collect the result later.
//
// # Usage
//
//	group := singleflight.New[string, *Profile]()
//
//	// Any number of concurrent callers; fetchProfile runs once.
//	flight := group.Do(ctx, userID, func(ctx context.Context) (*Profile, error) {
//	    return fetchProfile(ctx, userID)
//	})
//	profile, err := flight.Await()
//
// # Behaviour Guarantees
//
//   - At most one operation per key is in flight at any instant.
//   - Every handle for one execution settles with the identical value and
//     error; results are fanned out, never re-ordered.
//   - The key registration is removed when the operation settles, success
//     or failure alike. A failed operation never poisons its key.
//   - There is no cancellation of a running operation. A caller that stops
//     waiting (AwaitContext) abandons only its own wait. Forget detaches a
//     key early so the next Do starts fresh, but the old operation still
//     runs to completion for its holders.
package singleflight
