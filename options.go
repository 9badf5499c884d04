package trie

import (
	"unicode/utf8"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

type config struct {
	caseSensitive bool
	lang          language.Tag
	form          *norm.Form
	logger        zerolog.Logger

	rlockFn   ReadLockFn
	runlockFn ReadUnlockFn
	wlockFn   WriteLockFn
	unlockFn  UnlockFn
}

func defaultConfig() config {
	return config{
		caseSensitive: true,
		lang:          language.Und,
		logger:        zerolog.Nop(),
	}
}

// Option configures a Trie at construction time.
type Option func(*config)

// WithCaseSensitive sets the case policy. When false every input is
// lower-cased before it touches the tree. Default is true.
func WithCaseSensitive(sensitive bool) Option {
	return func(c *config) {
		c.caseSensitive = sensitive
	}
}

// WithLanguage sets the language used for lower-casing in case-insensitive
// mode, e.g. language.Turkish for dotted/dotless i.
func WithLanguage(tag language.Tag) Option {
	return func(c *config) {
		c.lang = tag
	}
}

// WithNormalization applies the given Unicode normalization form to every
// input before case folding.
func WithNormalization(form norm.Form) Option {
	return func(c *config) {
		c.form = &form
	}
}

func withoutNormalization() Option {
	return func(c *config) {
		c.form = nil
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func withLockHandlers(rlockFn ReadLockFn, runlockFn ReadUnlockFn, wlockFn WriteLockFn, unlockFn UnlockFn) Option {
	return func(c *config) {
		c.rlockFn = rlockFn
		c.runlockFn = runlockFn
		c.wlockFn = wlockFn
		c.unlockFn = unlockFn
	}
}

// normalizer turns raw input into the string whose runes are walked.
type normalizer struct {
	caseSensitive bool
	lang          language.Tag
	form          *norm.Form
}

func newNormalizer(c config) normalizer {
	return normalizer{
		caseSensitive: c.caseSensitive,
		lang:          c.lang,
		form:          c.form,
	}
}

// apply returns the walkable form of s. ok is false for input that is not
// valid UTF-8: every invalid byte would decode to utf8.RuneError and share
// one path with unrelated input.
func (n normalizer) apply(s string) (string, bool) {
	if !utf8.ValidString(s) {
		return "", false
	}

	if nil != n.form {
		s = n.form.String(s)
	}

	if n.caseSensitive {
		return s, true
	}

	// A Caser is stateful, so one is built per call rather than shared
	// between readers holding only the read lock.
	return cases.Lower(n.lang).String(s), true
}
