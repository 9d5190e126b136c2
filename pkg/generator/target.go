package generator

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptySuffix is returned by Target.Validate for a blank suffix.
var ErrEmptySuffix = errors.New("suffix must not be empty")

// TargetKind tells how a Target is evaluated.
type TargetKind int

const (
	KindSuffix        TargetKind = iota // Address ends with one suffix
	KindAnyOfSuffixes                   // Address ends with either of two suffixes
)

// String returns the kind name.
func (k TargetKind) String() string {
	switch k {
	case KindSuffix:
		return "Suffix"
	case KindAnyOfSuffixes:
		return "AnyOfSuffixes"
	default:
		return "Unknown"
	}
}

// Match reports which alternatives of a Target an address satisfied.
type Match uint8

const (
	MatchA Match = 1 << iota // First (or only) suffix
	MatchB                   // Second suffix, AnyOfSuffixes only

	NoMatch Match = 0
)

// Has reports whether m includes alt.
func (m Match) Has(alt Match) bool {
	return m&alt != 0
}

// Target describes the predicate a search must satisfy.
// Matching is case-sensitive and byte-exact.
type Target struct {
	Kind TargetKind
	A    string
	B    string // Only used by KindAnyOfSuffixes
}

// Suffix returns a Target matching addresses that end with s.
func Suffix(s string) Target {
	return Target{Kind: KindSuffix, A: s}
}

// AnyOfSuffixes returns a Target matching addresses that end with a or b.
func AnyOfSuffixes(a, b string) Target {
	return Target{Kind: KindAnyOfSuffixes, A: a, B: b}
}

// Match evaluates the target against address. The result has MatchA set
// when the address ends with A and, for AnyOfSuffixes, MatchB set when it
// ends with B. It does not allocate.
func (t Target) Match(address string) Match {
	m := NoMatch
	if strings.HasSuffix(address, t.A) {
		m |= MatchA
	}
	if t.Kind == KindAnyOfSuffixes && strings.HasSuffix(address, t.B) {
		m |= MatchB
	}
	return m
}

// Matches reports whether address satisfies the target at all.
func (t Target) Matches(address string) bool {
	return t.Match(address) != NoMatch
}

// Validate checks that every suffix of the target is set.
func (t Target) Validate() error {
	if t.A == "" {
		return ErrEmptySuffix
	}
	if t.Kind == KindAnyOfSuffixes && t.B == "" {
		return ErrEmptySuffix
	}
	return nil
}

// Suffixes returns the suffixes the target searches for, in order.
func (t Target) Suffixes() []string {
	if t.Kind == KindAnyOfSuffixes {
		return []string{t.A, t.B}
	}
	return []string{t.A}
}

// String returns a human-readable description of the target.
func (t Target) String() string {
	if t.Kind == KindAnyOfSuffixes {
		return fmt.Sprintf("'%s' or '%s'", t.A, t.B)
	}
	return fmt.Sprintf("'%s'", t.A)
}
