// Package async provides the promise-style primitive behind asynchronous
// validation.
//
// The package is centred around the generic type Future that represents the
// eventual result of a computation. A Future is obtained from Run, which
// starts the supplied function on its own goroutine and returns immediately.
// The caller can then block with Await, bound the wait with
// AwaitWithTimeout, or poll with IsComplete. WaitAll coordinates several
// futures of the same result type.
//
// Run is context-aware: when the provided context is already done the
// goroutine exits without calling the function and the Future completes with
// the context error. Cancellation during the computation is the callback's
// responsibility, which validator callbacks honor by checking their context
// between rules.
//
// # Usage
//
//	future := async.Run(ctx, req, userValidator.ValidateContext)
//
//	// do other work …
//
//	result, err := future.Await()
//	if err != nil {
//	    return err
//	}
//	if !result.Valid() {
//	    return result.Err()
//	}
//
// # Error Handling
//
// The package introduces a single sentinel, ErrTimeout, returned by
// AwaitWithTimeout when the deadline passes first. Every other error comes
// from the user callback unchanged.
package async
