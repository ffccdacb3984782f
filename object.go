package rulekit

import (
	"context"
	"errors"
	"fmt"
)

// ObjectChain holds rules that inspect the whole instance rather than a
// single property, such as "start date precedes end date". Object rules
// always run after every property chain, in declaration order, and may read
// previously recorded failures through the validation context. Their
// failures carry no attempted value.
type ObjectChain[T any] struct {
	name  string
	rules []boundObjectRule[T]
	cond  func(T) bool
	errs  []error
}

type boundObjectRule[T any] struct {
	rule Rule[T]
	with func(*Context[T]) bool
}

// Rule appends prebuilt whole-instance rules to the chain.
func (o *ObjectChain[T]) Rule(rules ...Rule[T]) *ObjectChain[T] {
	for _, r := range rules {
		o.rules = append(o.rules, boundObjectRule[T]{rule: r})
	}
	return o
}

// Must appends an anonymous whole-instance predicate.
func (o *ObjectChain[T]) Must(fn func(T) bool) *ObjectChain[T] {
	if fn == nil {
		o.errs = append(o.errs, errors.New("Must requires a non-nil predicate"))
		return o
	}
	o.rules = append(o.rules, boundObjectRule[T]{rule: Rule[T]{
		Code:    CodeMust,
		Message: "is not valid",
		Check:   fn,
	}})
	return o
}

// MustWith appends a predicate that receives the validation context, with
// every failure recorded so far visible through Context.Failures.
func (o *ObjectChain[T]) MustWith(fn func(*Context[T]) bool) *ObjectChain[T] {
	if fn == nil {
		o.errs = append(o.errs, errors.New("MustWith requires a non-nil predicate"))
		return o
	}
	o.rules = append(o.rules, boundObjectRule[T]{
		rule: Rule[T]{Code: CodeMust, Message: "is not valid"},
		with: fn,
	})
	return o
}

// MustCtx appends a context-aware whole-instance predicate.
func (o *ObjectChain[T]) MustCtx(fn func(context.Context, T) (bool, error)) *ObjectChain[T] {
	if fn == nil {
		o.errs = append(o.errs, errors.New("MustCtx requires a non-nil predicate"))
		return o
	}
	o.rules = append(o.rules, boundObjectRule[T]{rule: Rule[T]{
		Code:     CodeMust,
		Message:  "is not valid",
		CheckCtx: fn,
	}})
	return o
}

// Message replaces the failure message of the most recently attached rule.
func (o *ObjectChain[T]) Message(msg string) *ObjectChain[T] {
	if len(o.rules) == 0 {
		o.errs = append(o.errs, errors.New("Message requires a preceding rule"))
		return o
	}
	o.rules[len(o.rules)-1].rule.Message = msg
	return o
}

// Code replaces the failure code of the most recently attached rule.
func (o *ObjectChain[T]) Code(code string) *ObjectChain[T] {
	if len(o.rules) == 0 {
		o.errs = append(o.errs, errors.New("Code requires a preceding rule"))
		return o
	}
	o.rules[len(o.rules)-1].rule.Code = code
	return o
}

// AsWarning downgrades the most recently attached rule to Warning severity.
func (o *ObjectChain[T]) AsWarning() *ObjectChain[T] {
	if len(o.rules) == 0 {
		o.errs = append(o.errs, errors.New("AsWarning requires a preceding rule"))
		return o
	}
	o.rules[len(o.rules)-1].rule.Severity = SeverityWarning
	return o
}

// When gates the whole chain on a per-instance condition.
func (o *ObjectChain[T]) When(fn func(T) bool) *ObjectChain[T] {
	if fn == nil {
		o.errs = append(o.errs, errors.New("When requires a non-nil condition"))
		return o
	}
	o.cond = fn
	return o
}

func (o *ObjectChain[T]) compile(shape string) (*compiledObject[T], []error) {
	var errs []error
	fail := func(rule, reason string) {
		errs = append(errs, &ConfigError{Shape: shape, Property: o.name, Rule: rule, Reason: reason})
	}

	for _, err := range o.errs {
		fail("", err.Error())
	}
	for i := range o.rules {
		b := &o.rules[i]
		if b.rule.err != nil {
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
	if len(errs) > 0 {
		return nil, errs
	}

	co := &compiledObject[T]{
		name:  o.name,
		rules: make([]boundObjectRule[T], len(o.rules)),
		cond:  o.cond,
	}
	copy(co.rules, o.rules)
	return co, nil
}

// compiledObject is the immutable, built form of an ObjectChain.
type compiledObject[T any] struct {
	name  string
	rules []boundObjectRule[T]
	cond  func(T) bool
}

// run evaluates the object rules against target. seen holds every failure
// recorded earlier in the run; it is copied before being exposed, so object
// rules can read but never rewrite history.
func (o *compiledObject[T]) run(ctx context.Context, target T, seen []Failure) ([]Failure, error) {
	if o.cond != nil && !o.cond(target) {
		return nil, nil
	}

	visible := make([]Failure, len(seen), len(seen)+len(o.rules))
	copy(visible, seen)
	vctx := &Context[T]{target: target, property: o.name, failures: visible}

	var failures []Failure
	for i := range o.rules {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		pass, fault, cancel := o.eval(ctx, &o.rules[i], vctx, target)
		if cancel != nil {
			return nil, cancel
		}
		if pass {
			continue
		}

		f := o.failure(&o.rules[i].rule, target)
		if fault != nil {
			f = *fault
		}
		failures = append(failures, f)
		visible = append(visible, f)
		vctx.failures = visible
	}
	return failures, nil
}

func (o *compiledObject[T]) eval(ctx context.Context, b *boundObjectRule[T], vctx *Context[T], target T) (pass bool, fault *Failure, cancel error) {
	defer func() {
		if r := recover(); r != nil {
			pass = false
			fault = &Failure{
				Property: o.name,
				Code:     CodeRulePanic,
				Message:  fmt.Sprintf("rule %q panicked: %v", b.rule.Code, r),
				Severity: SeverityError,
				Fault:    true,
				Meta:     map[string]any{"rule": b.rule.Code, "panic": fmt.Sprint(r)},
			}
		}
	}()

	switch {
	case b.with != nil:
		return b.with(vctx), nil, nil
	case b.rule.CheckCtx != nil:
		ok, err := b.rule.CheckCtx(ctx, target)
		if err != nil {
			if ctx.Err() != nil {
				return false, nil, ctx.Err()
			}
			return false, &Failure{
				Property: o.name,
				Code:     CodeRuleError,
				Message:  fmt.Sprintf("rule %q failed: %v", b.rule.Code, err),
				Severity: SeverityError,
				Fault:    true,
				Meta:     map[string]any{"rule": b.rule.Code, "error": err.Error()},
			}, nil
		}
		return ok, nil, nil
	default:
		return b.rule.Check(target), nil, nil
	}
}

func (o *compiledObject[T]) failure(r *Rule[T], target T) Failure {
	sev := r.Severity
	if sev == "" {
		sev = SeverityError
	}
	msg := r.Message
	if msg == "" {
		msg = "is not valid"
	}
	return Failure{
		Property: o.name,
		Code:     r.Code,
		Message:  renderMessage(msg, o.name, target, r.Meta),
		Severity: sev,
		Meta:     r.Meta,
	}
}
