// Package async provides generic helpers for running computations
// asynchronously and sharing their eventual results.
//
// The package is centred around the generic Future type that represents the
// outcome of an asynchronous operation. A Future is obtained from Async,
// which starts the supplied function in its own goroutine and immediately
// returns the handle. Any number of goroutines may hold the same Future and
// wait on it with Await, block with a deadline via AwaitWithTimeout, or poll
// with IsComplete; they all observe the identical settled result.
//
// A Future settles exactly once. Panics inside the asynchronous function are
// recovered and surface as an error wrapping ErrPanicked, so callers can rely
// on every Future settling eventually.
//
// # Usage
//
//	future := async.Async(ctx, userID, func(ctx context.Context, id string) (User, error) {
//	    return fetchUser(ctx, id)
//	})
//
//	// do other work …
//	user, err := future.Await()
//
// WaitAll coordinates several futures of the same result type:
//
//	results, err := async.WaitAll(f1, f2, f3)
package async
