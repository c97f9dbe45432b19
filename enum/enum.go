// Package enum provides the table that binds the variants of a closed-set
// string enumeration to their canonical wire tokens.
//
// A Set is either closed or extensible. Parsing a token outside a closed Set
// fails with an UnknownTokenError. Parsing one outside an extensible Set
// succeeds and retains the token, so responses carrying variants added to the
// API after this package was written still decode. Such values are never
// encoded back onto the wire.
package enum

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// UnknownTokenError is returned when a token is not one of the canonical
// tokens of an enumeration.
type UnknownTokenError struct {
	Enum  string
	Token string
}

// Set is the table of canonical tokens for the enumeration T. Tokens are
// compared byte for byte.
type Set[T ~string] struct {
	name       string
	extensible bool
	tokens     []T
	index      map[string]struct{}
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("enum: unknown %s token %q", e.Enum, e.Token)
}

func newSet[T ~string](name string, extensible bool, tokens []T) *Set[T] {
	s := &Set[T]{
		name:       name,
		extensible: extensible,
		tokens:     tokens,
		index:      make(map[string]struct{}, len(tokens)),
	}

	for _, tok := range tokens {
		if tok == "" {
			panic("enum: empty " + name + " token")
		}

		if _, ok := s.index[string(tok)]; ok {
			panic("enum: duplicate " + name + " token " + strconv.Quote(string(tok)))
		}
		s.index[string(tok)] = struct{}{}
	}
	return s
}

// New returns a closed Set with the given tokens. This panics if a token is
// empty or repeated.
func New[T ~string](name string, tokens ...T) *Set[T] { return newSet(name, false, tokens) }

// Extensible returns an extensible Set with the given tokens. This panics if a
// token is empty or repeated.
func Extensible[T ~string](name string, tokens ...T) *Set[T] { return newSet(name, true, tokens) }

func (s *Set[T]) Name() string { return s.name }

func (s *Set[T]) IsExtensible() bool { return s.extensible }

// Tokens returns the canonical tokens in declaration order.
func (s *Set[T]) Tokens() []T {
	tokens := make([]T, len(s.tokens))
	copy(tokens, s.tokens)
	return tokens
}

// Known reports whether the given value is one of the canonical tokens.
func (s *Set[T]) Known(v T) bool {
	_, ok := s.index[string(v)]
	return ok
}

// Parse returns the variant for the given token. For an extensible Set an
// unknown token is returned as is.
func (s *Set[T]) Parse(tok string) (T, error) {
	if _, ok := s.index[tok]; ok || s.extensible {
		return T(tok), nil
	}

	var zero T

	return zero, &UnknownTokenError{
		Enum:  s.name,
		Token: tok,
	}
}

// Encode returns the canonical token for the given value. Values that are not
// canonical tokens, including unknown variants decoded through an extensible
// Set, are refused.
func (s *Set[T]) Encode(v T) (string, error) {
	if !s.Known(v) {
		return "", &UnknownTokenError{
			Enum:  s.name,
			Token: string(v),
		}
	}
	return string(v), nil
}

// Unmarshal decodes the JSON string in b into dst. A JSON null leaves dst
// untouched.
func (s *Set[T]) Unmarshal(dst *T, b []byte) error {
	if string(b) == "null" {
		return nil
	}

	var tok string

	if err := json.Unmarshal(b, &tok); err != nil {
		return err
	}

	v, err := s.Parse(tok)

	if err != nil {
		return err
	}

	*dst = v
	return nil
}
