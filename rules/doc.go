// Package rules provides the built-in rule set for the rulekit validation
// engine: generic, type-safe factories for common data types such as
// strings, numbers, collections, timestamps, UUIDs, and patterns.
//
// Every factory constructs and returns a plain rulekit.Rule value carrying a
// boolean Check function together with a machine-readable code and the
// parameters needed for message rendering and localization. Factories hold
// no hidden state, so the package is completely stateless and
// goroutine-safe.
//
// # Architecture
//
// Each source file groups a family of rules for one domain
// (`string_rules.go`, `numeric_rules.go`, `time_rules.go`, etc.). Factories
// validate their own parameters eagerly: a rule declared with impossible
// parameters (an inverted Between range, an unparsable pattern) is marked
// misconfigured and rejected by Schema.Build before any instance is ever
// validated.
//
// # Usage
//
//	s := rulekit.NewSchema[User]("User")
//	rulekit.Property(s, "Email", func(u User) string { return u.Email }).
//	    Rule(rules.NotEmpty(), rules.Email())
//	rulekit.Property(s, "Age", func(u User) int { return u.Age }).
//	    Rule(rules.Between(18, 65))
//
// # Performance Considerations
//
// All checks are simple comparisons or pattern matches. Regular expressions
// compile once at declaration time, never per validated instance. Expensive
// checks that consult external state belong in a custom rule with CheckCtx
// so they participate in cancellation.
package rules
