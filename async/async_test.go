package async_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrymomot/rulekit/async"
)

// TestRunFunctionality tests the basic functionality of the Run helper.
func TestRunFunctionality(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Function that takes an int parameter and returns a string
	futureString := async.Run(ctx, 42, func(ctx context.Context, num int) (string, error) {
		// Simulate work
		time.Sleep(100 * time.Millisecond)
		return fmt.Sprintf("Number: %d", num), nil
	})

	// Function that takes a string parameter and returns a bool
	futureBool := async.Run(ctx, "test", func(ctx context.Context, s string) (bool, error) {
		// Simulate work
		time.Sleep(50 * time.Millisecond)
		return len(s) > 0, nil
	})

	// Function that takes a custom struct parameter and returns an int
	type MyStruct struct {
		A int
		B int
	}
	futureInt := async.Run(ctx, MyStruct{A: 10, B: 32}, func(ctx context.Context, data MyStruct) (int, error) {
		// Simulate work
		time.Sleep(70 * time.Millisecond)
		return data.A + data.B, nil
	})

	// Await the results
	resultString, errString := futureString.Await()
	resultBool, errBool := futureBool.Await()
	resultInt, errInt := futureInt.Await()

	// Check results
	if errString != nil || resultString != "Number: 42" {
		t.Errorf("Expected 'Number: 42', got '%s', error: %v", resultString, errString)
	}

	if errBool != nil || resultBool != true {
		t.Errorf("Expected true, got %v, error: %v", resultBool, errBool)
	}

	if errInt != nil || resultInt != 42 {
		t.Errorf("Expected 42, got %d, error: %v", resultInt, errInt)
	}
}

// TestRunContextCancellation tests that the Run helper handles context cancellation properly.
func TestRunContextCancellation(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	future := async.Run(ctx, 42, func(ctx context.Context, num int) (string, error) {
		// Simulate a task that takes longer than the context timeout
		select {
		case <-time.After(100 * time.Millisecond):
			return fmt.Sprintf("Number: %d", num), nil
		case <-ctx.Done():
			return "", ctx.Err()
		}
	})

	result, err := future.Await()

	// Check that the context cancellation is handled
	if err == nil || err != context.DeadlineExceeded {
		t.Errorf("Expected context deadline exceeded error, got: %v", err)
	}

	if result != "" {
		t.Errorf("Expected empty result due to cancellation, got: '%s'", result)
	}
}

// TestRunPreCancelledContext tests that Run never invokes the function when
// the context is already done.
func TestRunPreCancelledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var called atomic.Bool
	future := async.Run(ctx, 1, func(ctx context.Context, num int) (int, error) {
		called.Store(true)
		return num, nil
	})

	result, err := future.Await()

	if err == nil || err != context.Canceled {
		t.Errorf("Expected context canceled error, got: %v", err)
	}

	if result != 0 {
		t.Errorf("Expected zero result for pre-cancelled context, got: %d", result)
	}

	if called.Load() {
		t.Error("Expected function to not run for a pre-cancelled context")
	}
}

// TestRunErrorPropagation tests that errors from the asynchronous function are propagated correctly.
func TestRunErrorPropagation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	expectedErr := errors.New("an error occurred in the async function")

	future := async.Run(ctx, 42, func(ctx context.Context, num int) (int, error) {
		// Simulate work and return an error
		time.Sleep(50 * time.Millisecond)
		return 0, expectedErr
	})

	result, err := future.Await()

	// Check that the error is propagated
	if err == nil || err != expectedErr {
		t.Errorf("Expected error '%v', got: %v", expectedErr, err)
	}

	if result != 0 {
		t.Errorf("Expected result 0 due to error, got: %d", result)
	}
}

// TestRunConcurrency tests that multiple Run calls execute concurrently.
func TestRunConcurrency(t *testing.T) {
	t.Parallel()
	// Note: This test has timing assertions that might be sensitive to system load when run in parallel
	ctx := context.Background()
	startTime := time.Now()

	var mu sync.Mutex
	order := []string{}

	future1 := async.Run(ctx, 1, func(ctx context.Context, num int) (int, error) {
		time.Sleep(100 * time.Millisecond)
		mu.Lock()
		order = append(order, "first")
		mu.Unlock()
		return num, nil
	})

	future2 := async.Run(ctx, 2, func(ctx context.Context, num int) (int, error) {
		time.Sleep(50 * time.Millisecond)
		mu.Lock()
		order = append(order, "second")
		mu.Unlock()
		return num, nil
	})

	future3 := async.Run(ctx, 3, func(ctx context.Context, num int) (int, error) {
		time.Sleep(70 * time.Millisecond)
		mu.Lock()
		order = append(order, "third")
		mu.Unlock()
		return num, nil
	})

	// Await the results
	_, _ = future1.Await()
	_, _ = future2.Await()
	_, _ = future3.Await()

	duration := time.Since(startTime)

	// The total duration should be slightly longer than the longest sleep (100ms)
	if duration > 150*time.Millisecond {
		t.Errorf("Expected duration around 100ms, got %v", duration)
	}

	// Check the order of completion
	expectedOrder := []string{"second", "third", "first"}
	for i, v := range expectedOrder {
		if order[i] != v {
			t.Errorf("Expected order %v, got %v", expectedOrder, order)
			break
		}
	}
}

// TestIsComplete tests the IsComplete method of Future.
func TestIsComplete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Create a future that will take some time to complete
	future := async.Run(ctx, 100, func(ctx context.Context, ms int) (bool, error) {
		time.Sleep(time.Duration(ms) * time.Millisecond)
		return true, nil
	})

	// Initially, the future should not be complete
	if future.IsComplete() {
		t.Error("Expected future to not be complete immediately")
	}

	// After waiting for the future to complete, IsComplete should return true
	_, err := future.Await()
	if err != nil {
		t.Errorf("Unexpected error waiting for future: %v", err)
	}

	if !future.IsComplete() {
		t.Error("Expected future to be complete after Await")
	}
}

// TestAwaitWithTimeout tests the AwaitWithTimeout method of Future.
func TestAwaitWithTimeout(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Test case 1: Future completes before timeout
	fastFuture := async.Run(ctx, 50, func(ctx context.Context, ms int) (string, error) {
		time.Sleep(time.Duration(ms) * time.Millisecond)
		return "success", nil
	})

	result, err := fastFuture.AwaitWithTimeout(100 * time.Millisecond)
	if err != nil {
		t.Errorf("Expected no error for fast future, got: %v", err)
	}
	if result != "success" {
		t.Errorf("Expected 'success', got: %s", result)
	}

	// Test case 2: Future does not complete before timeout
	slowFuture := async.Run(ctx, 200, func(ctx context.Context, ms int) (string, error) {
		time.Sleep(time.Duration(ms) * time.Millisecond)
		return "too late", nil
	})

	result, err = slowFuture.AwaitWithTimeout(100 * time.Millisecond)
	if err == nil || err != async.ErrTimeout {
		t.Errorf("Expected timeout error for slow future, got: %v", err)
	}
	if result != "" {
		t.Errorf("Expected empty result for timeout, got: %s", result)
	}

	// Test case 3: The computation keeps running after a timeout and a later
	// Await still observes its outcome
	result, err = slowFuture.Await()
	if err != nil {
		t.Errorf("Unexpected error after timed-out await: %v", err)
	}
	if result != "too late" {
		t.Errorf("Expected 'too late' from the second await, got: %s", result)
	}
}

// TestWaitAll tests the WaitAll function.
func TestWaitAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Create multiple futures
	future1 := async.Run(ctx, 50, func(ctx context.Context, ms int) (int, error) {
		time.Sleep(time.Duration(ms) * time.Millisecond)
		return 1, nil
	})

	future2 := async.Run(ctx, 100, func(ctx context.Context, ms int) (int, error) {
		time.Sleep(time.Duration(ms) * time.Millisecond)
		return 2, nil
	})

	future3 := async.Run(ctx, 150, func(ctx context.Context, ms int) (int, error) {
		time.Sleep(time.Duration(ms) * time.Millisecond)
		return 3, nil
	})

	// Wait for all futures to complete
	startTime := time.Now()
	results, err := async.WaitAll(future1, future2, future3)
	duration := time.Since(startTime)

	// Verify results
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	if len(results) != 3 {
		t.Errorf("Expected 3 results, got %d", len(results))
	}

	expectedResults := []int{1, 2, 3}
	for i, result := range results {
		if result != expectedResults[i] {
			t.Errorf("Expected result[%d] to be %d, got %d", i, expectedResults[i], result)
		}
	}

	// Verify that WaitAll waited for the slowest future
	if duration < 150*time.Millisecond {
		t.Errorf("Expected duration to be at least 150ms, got %v", duration)
	}
}

// TestWaitAllErrorPropagation tests that WaitAll returns the first error it encounters.
func TestWaitAllErrorPropagation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	expectedErr := errors.New("second future failed")

	future1 := async.Run(ctx, 1, func(ctx context.Context, num int) (int, error) {
		return num, nil
	})

	future2 := async.Run(ctx, 2, func(ctx context.Context, num int) (int, error) {
		time.Sleep(20 * time.Millisecond)
		return 0, expectedErr
	})

	future3 := async.Run(ctx, 3, func(ctx context.Context, num int) (int, error) {
		return num, nil
	})

	results, err := async.WaitAll(future1, future2, future3)

	if err == nil || err != expectedErr {
		t.Errorf("Expected error '%v', got: %v", expectedErr, err)
	}

	// Results collected before the failure are kept
	if len(results) != 3 || results[0] != 1 {
		t.Errorf("Expected results[0] to be 1, got %v", results)
	}
}
