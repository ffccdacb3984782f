// Package registry holds the process-wide map from shape names to built
// validators.
//
// Validators are immutable and meant to be built once and reused; the
// registry gives that shared set a home and lets code at transport
// boundaries pick a validator by name after decoding a payload, through
// rulekit.AnyValidator. Code that knows the concrete type statically should
// hold the *rulekit.Validator[T] directly, or retrieve it with the typed
// Lookup helper.
//
// # Usage
//
//	reg := registry.New()
//	reg.MustRegister(userValidator)
//	reg.MustRegister(orderValidator)
//
//	// type known at compile time
//	uv, err := registry.Lookup[User](reg, "User")
//
//	// type known only at runtime
//	result, err := reg.Validate(ctx, shapeName, decoded)
package registry
