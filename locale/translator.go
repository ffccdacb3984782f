package locale

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/rulekit"
)

// DefaultLanguage is the fallback language when no requested language
// matches a loaded catalog.
const DefaultLanguage = "en"

// Translator renders validation failures in the best-matching language from
// its loaded catalogs. A Translator is immutable after New and safe for
// concurrent use.
type Translator struct {
	catalogs map[string]map[string]string
	langs    []string
	tags     []language.Tag
	matcher  language.Matcher
	fallback string
	logger   *slog.Logger
}

// Option configures a Translator during construction.
type Option func(*Translator)

// WithFallback sets the language used when matching fails. Defaults to
// DefaultLanguage.
func WithFallback(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.fallback = lang
		}
	}
}

// WithLogger sets the logger for catalog diagnostics. The default discards
// everything.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// New builds a Translator from the source's catalogs. Every catalog language
// must be a parseable BCP 47 code; language matching is delegated to
// golang.org/x/text, so requests like "en-US" resolve to an "en" catalog.
func New(ctx context.Context, src Source, opts ...Option) (*Translator, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	t := &Translator{
		fallback: DefaultLanguage,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)), // Nope-logger by default
	}
	for _, opt := range opts {
		opt(t)
	}

	catalogs, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(catalogs) == 0 {
		return nil, ErrNoCatalogs
	}

	langs := make([]string, 0, len(catalogs))
	for lang := range catalogs {
		langs = append(langs, lang)
	}
	sort.Strings(langs)

	tags := make([]language.Tag, 0, len(langs))
	for _, lang := range langs {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, errors.Join(ErrInvalidLanguage, fmt.Errorf("%q: %w", lang, err))
		}
		tags = append(tags, tag)
	}

	t.catalogs = catalogs
	t.langs = langs
	t.tags = tags
	t.matcher = language.NewMatcher(tags)
	t.logger.InfoContext(ctx, "message catalogs loaded", slog.Any("languages", langs))
	return t, nil
}

// MustNew is New that panics on error, for translators built from embedded
// catalogs that cannot fail at runtime.
func MustNew(ctx context.Context, src Source, opts ...Option) *Translator {
	t, err := New(ctx, src, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Languages returns the loaded catalog languages in sorted order.
func (t *Translator) Languages() []string {
	out := make([]string, len(t.langs))
	copy(out, t.langs)
	return out
}

// Match returns the loaded catalog language best matching the requested
// BCP 47 codes, in preference order. Unparseable or unmatched requests fall
// back to the fallback language.
func (t *Translator) Match(requested ...string) string {
	desired := make([]language.Tag, 0, len(requested))
	for _, r := range requested {
		if tag, err := language.Parse(r); err == nil {
			desired = append(desired, tag)
		}
	}
	if len(desired) == 0 {
		return t.fallback
	}

	_, idx, conf := t.matcher.Match(desired...)
	if conf == language.No {
		return t.fallback
	}
	return t.langs[idx]
}

// Message returns the template for a failure code in lang, consulting the
// fallback catalog when lang has no entry. ok is false when neither catalog
// knows the code.
func (t *Translator) Message(lang, code string) (string, bool) {
	if catalog, ok := t.catalogs[lang]; ok {
		if tmpl, ok := catalog[code]; ok {
			return tmpl, true
		}
	}
	if lang != t.fallback {
		if catalog, ok := t.catalogs[t.fallback]; ok {
			if tmpl, ok := catalog[code]; ok {
				return tmpl, true
			}
		}
	}
	return "", false
}

// Localize returns a copy of the result's failures with messages re-rendered
// for the language best matching the requested codes. Failures whose code
// has no catalog entry keep their original message. The result itself is
// never mutated.
func (t *Translator) Localize(res *rulekit.Result, requested ...string) []rulekit.Failure {
	if res == nil {
		return nil
	}

	lang := t.Match(requested...)
	failures := res.Failures()
	for i := range failures {
		f := &failures[i]
		tmpl, ok := t.Message(lang, f.Code)
		if !ok {
			continue
		}
		f.Message = substitute(tmpl, f)
	}
	return failures
}

// Regex to find named parameters in the form %{name}
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute fills %{name} placeholders from the failure's Meta plus the
// reserved parameters "property" and "value". Unknown placeholders stay
// verbatim so missing parameters remain visible.
func substitute(tmpl string, f *rulekit.Failure) string {
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		switch name {
		case "property":
			return f.Property
		case "value":
			return fmt.Sprint(f.AttemptedValue)
		}
		if v, ok := f.Meta[name]; ok {
			return fmt.Sprint(v)
		}
		return match
	})
}
