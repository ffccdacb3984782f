package rulekit

import (
	"context"
	"errors"
	"fmt"
)

// CascadeMode controls whether a chain keeps evaluating rules after one of
// them fails.
type CascadeMode int

const (
	// Continue evaluates every rule in the chain and reports all failures.
	Continue CascadeMode = iota

	// StopOnFirstFailure stops the chain at its first failing rule; later
	// rules are not evaluated and contribute no failures. Other chains are
	// unaffected.
	StopOnFirstFailure
)

func (m CascadeMode) String() string {
	if m == StopOnFirstFailure {
		return "stop_on_first_failure"
	}
	return "continue"
}

// Chain is an ordered list of rules bound to one property of T. Chains are
// declared through Property and configured fluently. Configuration problems
// are collected silently and reported together by Schema.Build, so a
// declaration block never needs inline error handling.
type Chain[T, P any] struct {
	name       string
	accessor   func(T) P
	rules      []boundRule[T, P]
	cascade    CascadeMode
	cascadeSet bool
	cond       func(T) bool
	errs       []error
}

// boundRule pairs a rule with the optional context-aware predicate that
// Rule[P] itself cannot carry (its closure takes *Context[T] too).
type boundRule[T, P any] struct {
	rule Rule[P]
	with func(*Context[T], P) bool
}

// Property declares a rule chain for one property of T and registers it on
// the schema. name is the property's exposed name on failures; accessor
// extracts the property value from an instance. Rules attach in evaluation
// order.
//
// Property is a free function because Go methods cannot introduce new type
// parameters.
func Property[T, P any](s *Schema[T], name string, accessor func(T) P) *Chain[T, P] {
	if s == nil {
		panic("rulekit: Property called with a nil schema")
	}
	c := &Chain[T, P]{name: name, accessor: accessor}
	s.addChain(c)
	return c
}

// Rule appends prebuilt rules to the chain.
func (c *Chain[T, P]) Rule(rules ...Rule[P]) *Chain[T, P] {
	for _, r := range rules {
		c.rules = append(c.rules, boundRule[T, P]{rule: r})
	}
	return c
}

// Must appends an anonymous predicate rule. The emitted failure uses the
// code "must" unless overridden with Code.
func (c *Chain[T, P]) Must(fn func(P) bool) *Chain[T, P] {
	if fn == nil {
		c.errs = append(c.errs, errors.New("Must requires a non-nil predicate"))
		return c
	}
	c.rules = append(c.rules, boundRule[T, P]{rule: Rule[P]{
		Code:    CodeMust,
		Message: "is not valid",
		Check:   fn,
	}})
	return c
}

// MustWith appends a predicate that receives the validation context alongside
// the property value, for checks that depend on sibling properties.
func (c *Chain[T, P]) MustWith(fn func(*Context[T], P) bool) *Chain[T, P] {
	if fn == nil {
		c.errs = append(c.errs, errors.New("MustWith requires a non-nil predicate"))
		return c
	}
	c.rules = append(c.rules, boundRule[T, P]{
		rule: Rule[P]{Code: CodeMust, Message: "is not valid"},
		with: fn,
	})
	return c
}

// MustCtx appends a context-aware predicate for checks that consult external
// state. The predicate must return promptly once ctx is done.
func (c *Chain[T, P]) MustCtx(fn func(context.Context, P) (bool, error)) *Chain[T, P] {
	if fn == nil {
		c.errs = append(c.errs, errors.New("MustCtx requires a non-nil predicate"))
		return c
	}
	c.rules = append(c.rules, boundRule[T, P]{rule: Rule[P]{
		Code:     CodeMust,
		Message:  "is not valid",
		CheckCtx: fn,
	}})
	return c
}

// Message replaces the failure message of the most recently attached rule.
// Occurrences of %{name} are filled from the rule's Meta plus the reserved
// parameters "property" and "value".
func (c *Chain[T, P]) Message(msg string) *Chain[T, P] {
	if len(c.rules) == 0 {
		c.errs = append(c.errs, errors.New("Message requires a preceding rule"))
		return c
	}
	c.rules[len(c.rules)-1].rule.Message = msg
	return c
}

// Code replaces the failure code of the most recently attached rule.
func (c *Chain[T, P]) Code(code string) *Chain[T, P] {
	if len(c.rules) == 0 {
		c.errs = append(c.errs, errors.New("Code requires a preceding rule"))
		return c
	}
	c.rules[len(c.rules)-1].rule.Code = code
	return c
}

// AsWarning downgrades the most recently attached rule to Warning severity,
// so its failures are reported without making the result invalid.
func (c *Chain[T, P]) AsWarning() *Chain[T, P] {
	if len(c.rules) == 0 {
		c.errs = append(c.errs, errors.New("AsWarning requires a preceding rule"))
		return c
	}
	c.rules[len(c.rules)-1].rule.Severity = SeverityWarning
	return c
}

// StopOnFirstFailure makes this chain stop at its first failing rule instead
// of collecting every failure.
func (c *Chain[T, P]) StopOnFirstFailure() *Chain[T, P] {
	return c.Cascade(StopOnFirstFailure)
}

// Cascade sets the chain's cascade mode explicitly, overriding the schema
// default.
func (c *Chain[T, P]) Cascade(mode CascadeMode) *Chain[T, P] {
	c.cascade = mode
	c.cascadeSet = true
	return c
}

// When gates the whole chain on a per-instance condition. When fn returns
// false the chain is skipped and contributes no failures.
func (c *Chain[T, P]) When(fn func(T) bool) *Chain[T, P] {
	if fn == nil {
		c.errs = append(c.errs, errors.New("When requires a non-nil condition"))
		return c
	}
	c.cond = fn
	return c
}

func (c *Chain[T, P]) propertyName() string {
	return c.name
}

// compile validates the chain's configuration and freezes it into a runner.
// The snapshot keeps later mutations of the builder from leaking into built
// validators.
func (c *Chain[T, P]) compile(shape string, defaultCascade CascadeMode) (runner[T], []error) {
	errs := c.configErrors(shape)
	if len(errs) > 0 {
		return nil, errs
	}

	cc := &compiledChain[T, P]{
		name:     c.name,
		accessor: c.accessor,
		rules:    make([]boundRule[T, P], len(c.rules)),
		cascade:  c.cascade,
		cond:     c.cond,
	}
	copy(cc.rules, c.rules)
	if !c.cascadeSet {
		cc.cascade = defaultCascade
	}
	return cc, nil
}

func (c *Chain[T, P]) configErrors(shape string) []error {
	var errs []error
	fail := func(rule, reason string) {
		errs = append(errs, &ConfigError{Shape: shape, Property: c.name, Rule: rule, Reason: reason})
	}

	if c.name == "" {
		errs = append(errs, &ConfigError{Shape: shape, Reason: "property name is empty"})
	}
	if c.accessor == nil {
		fail("", "accessor is nil")
	}
	for _, err := range c.errs {
		fail("", err.Error())
	}

	for i := range c.rules {
		b := &c.rules[i]
		if b.rule.err != nil {
			// The factory error supersedes derived problems like a missing
			// predicate.
			fail(b.rule.Code, b.rule.err.Error())
			continue
		}

		predicates := 0
		if b.with != nil {
			predicates++
		}
		if b.rule.Check != nil {
			predicates++
		}
		if b.rule.CheckCtx != nil {
			predicates++
		}
		switch {
		case predicates == 0:
			fail(b.rule.Code, fmt.Sprintf("rule #%d has no predicate", i+1))
		case predicates > 1:
			fail(b.rule.Code, fmt.Sprintf("rule #%d sets more than one predicate", i+1))
		}

		if s := b.rule.Severity; s != "" && s != SeverityError && s != SeverityWarning {
			fail(b.rule.Code, fmt.Sprintf("unknown severity %q", s))
		}
	}
	return errs
}

// compiledChain is the immutable, built form of a Chain that validators
// execute.
type compiledChain[T, P any] struct {
	name     string
	accessor func(T) P
	rules    []boundRule[T, P]
	cascade  CascadeMode
	cond     func(T) bool
}

func (c *compiledChain[T, P]) property() string {
	return c.name
}

// run evaluates the chain against target and returns its failures in rule
// attachment order. The returned error is non-nil only when ctx ended before
// the chain finished.
func (c *compiledChain[T, P]) run(ctx context.Context, target T) ([]Failure, error) {
	if c.cond != nil && !c.cond(target) {
		return nil, nil
	}

	value, accessFault := c.extract(target)
	if accessFault != nil {
		return []Failure{*accessFault}, nil
	}

	vctx := &Context[T]{target: target, property: c.name}
	var failures []Failure
	for i := range c.rules {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		pass, fault, cancel := c.eval(ctx, &c.rules[i], vctx, value)
		if cancel != nil {
			return nil, cancel
		}
		if pass {
			continue
		}

		f := c.failure(&c.rules[i].rule, value)
		if fault != nil {
			f = *fault
		}
		failures = append(failures, f)
		vctx.failures = failures

		if c.cascade == StopOnFirstFailure {
			break
		}
	}
	return failures, nil
}

// eval runs one rule, recovering panics into fault failures. cancel is
// non-nil only when the validation context ended during evaluation.
func (c *compiledChain[T, P]) eval(ctx context.Context, b *boundRule[T, P], vctx *Context[T], value P) (pass bool, fault *Failure, cancel error) {
	defer func() {
		if r := recover(); r != nil {
			pass = false
			fault = &Failure{
				Property:       c.name,
				Code:           CodeRulePanic,
				Message:        fmt.Sprintf("rule %q panicked: %v", b.rule.Code, r),
				AttemptedValue: value,
				Severity:       SeverityError,
				Fault:          true,
				Meta:           map[string]any{"rule": b.rule.Code, "panic": fmt.Sprint(r)},
			}
		}
	}()

	switch {
	case b.with != nil:
		return b.with(vctx, value), nil, nil
	case b.rule.CheckCtx != nil:
		ok, err := b.rule.CheckCtx(ctx, value)
		if err != nil {
			// Cancellation of the run wins over whatever the rule reported.
			if ctx.Err() != nil {
				return false, nil, ctx.Err()
			}
			return false, &Failure{
				Property:       c.name,
				Code:           CodeRuleError,
				Message:        fmt.Sprintf("rule %q failed: %v", b.rule.Code, err),
				AttemptedValue: value,
				Severity:       SeverityError,
				Fault:          true,
				Meta:           map[string]any{"rule": b.rule.Code, "error": err.Error()},
			}, nil
		}
		return ok, nil, nil
	default:
		return b.rule.Check(value), nil, nil
	}
}

// extract reads the property value, converting an accessor panic into a
// single synthetic fault so the rest of the instance still validates.
func (c *compiledChain[T, P]) extract(target T) (value P, fault *Failure) {
	defer func() {
		if r := recover(); r != nil {
			fault = &Failure{
				Property: c.name,
				Code:     CodeAccessorPanic,
				Message:  fmt.Sprintf("could not read property: %v", r),
				Severity: SeverityError,
				Fault:    true,
				Meta:     map[string]any{"panic": fmt.Sprint(r)},
			}
		}
	}()
	return c.accessor(target), nil
}

func (c *compiledChain[T, P]) failure(r *Rule[P], value P) Failure {
	sev := r.Severity
	if sev == "" {
		sev = SeverityError
	}
	msg := r.Message
	if msg == "" {
		msg = "is not valid"
	}
	return Failure{
		Property:       c.name,
		Code:           r.Code,
		Message:        renderMessage(msg, c.name, value, r.Meta),
		AttemptedValue: value,
		Severity:       sev,
		Meta:           r.Meta,
	}
}
