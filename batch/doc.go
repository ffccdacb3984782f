// Package batch validates slices of instances concurrently.
//
// A Pool wraps one validator and runs it across a bounded worker group.
// Results come back in input order, so callers can line them up with the
// instances they submitted. Cancellation aborts the whole batch without
// partial results, the same contract ValidateContext gives for a single
// instance.
//
// # Usage
//
//	pool, err := batch.New(userValidator, 8)
//	if err != nil {
//	    return err
//	}
//
//	results, err := pool.ValidateAll(ctx, users)
//	if err != nil {
//	    return err // cancelled before completion
//	}
//	for i, res := range results {
//	    if !res.Valid() {
//	        log.Printf("user %d: %v", i, res.Err())
//	    }
//	}
package batch
