// Package rulekit provides a fluent, declarative validation engine for Go
// structs and values.
//
// Rules are declared once per shape through a Schema, compiled into an
// immutable Validator, and evaluated against any number of instances. Rule
// outcomes accumulate into a Result instead of aborting on the first
// problem, so callers can report everything wrong with an instance at once.
//
// Key Features:
//
//   - Type-safe rule chains using generics, no reflection or struct tags
//   - Per-chain cascade control: collect every failure or stop at the first
//   - Cross-property rules with read access to earlier failures
//   - Synchronous, context-aware, and promise-style execution
//   - Configuration errors surface at build time, never at validation time
//   - Crashed rules become tagged fault failures instead of panics
//
// Basic Usage:
//
//	type SignupRequest struct {
//		FirstName string
//		Email     string
//		Age       int
//	}
//
//	s := rulekit.NewSchema[SignupRequest]("SignupRequest")
//	rulekit.Property(s, "FirstName", func(r SignupRequest) string { return r.FirstName }).
//		Rule(rules.NotEmpty())
//	rulekit.Property(s, "Email", func(r SignupRequest) string { return r.Email }).
//		Rule(rules.NotEmpty(), rules.Email())
//	rulekit.Property(s, "Age", func(r SignupRequest) int { return r.Age }).
//		Rule(rules.Between(18, 65))
//
//	v, err := s.Build()
//	if err != nil {
//		// configuration problem: empty property name, inverted range, ...
//		log.Fatal(err)
//	}
//
//	result := v.Validate(SignupRequest{Email: "not-an-email", Age: 10})
//	for _, f := range result.Failures() {
//		fmt.Printf("%s: %s\n", f.Property, f.Message)
//	}
//
// Custom Rules:
//
// Anonymous predicates attach directly to a chain; Message, Code, and
// AsWarning adjust the most recently attached rule:
//
//	rulekit.Property(s, "Username", func(r SignupRequest) string { return r.Username }).
//		Must(func(v string) bool { return !strings.HasPrefix(v, "admin") }).
//		Message("must not start with a reserved prefix").
//		Code("reserved_prefix")
//
// Checks that consult external state take a context and participate in
// cancellation:
//
//	rulekit.Property(s, "Email", func(r SignupRequest) string { return r.Email }).
//		MustCtx(func(ctx context.Context, v string) (bool, error) {
//			return store.EmailAvailable(ctx, v)
//		})
//
// Cross-property rules bind to the whole instance and always run after the
// property chains:
//
//	s.Object("PasswordPair").
//		Must(func(r SignupRequest) bool { return r.Password == r.Confirm }).
//		Message("passwords do not match")
//
// Execution Modes:
//
// Validate is synchronous and deterministic. ValidateContext honors
// cancellation and returns (nil, *CancelledError) when the context ends
// early; it never returns a partial result. ValidateAsync wraps
// ValidateContext in an async.Future. Validators built with
// WithConcurrentChains evaluate property chains concurrently under
// ValidateContext while keeping failures in declaration order, so all modes
// produce structurally identical results for the same instance.
//
// The engine follows these principles:
//   - Declaration mistakes fail the build, not the validation
//   - Invalid data is a result, not an error
//   - One validator, any number of goroutines
package rulekit
