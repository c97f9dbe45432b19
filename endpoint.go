package stripeapi

import (
	"context"
	"strings"

	"github.com/andrewpillar/stripeapi/form"
)

// Endpoint binds an HTTP method and a path template to the parameter tree P
// sent to it and the result R decoded from it. Path templates name their
// placeholders in braces, for example /subscriptions/{id}/resume.
type Endpoint[P, R any] struct {
	Method string
	Path   string
}

// FormatPath substitutes the given identifiers into the placeholders of the
// given path template, in order. Every placeholder must be given exactly one
// non-empty identifier, and an identifier may not contain a /. Bytes outside
// the unreserved URI set are percent-encoded.
func FormatPath(tmpl string, ids ...string) (string, error) {
	var b strings.Builder

	rest := tmpl
	n := 0

	for {
		i := strings.IndexByte(rest, '{')

		if i < 0 {
			b.WriteString(rest)
			break
		}

		j := strings.IndexByte(rest[i:], '}')

		if j < 0 {
			return "", &PathError{Template: tmpl, Err: ErrMalformedTemplate}
		}

		param := rest[i+1 : i+j]

		b.WriteString(rest[:i])

		if n >= len(ids) {
			return "", &PathError{Template: tmpl, Param: param, Err: ErrMissingID}
		}

		id := ids[n]
		n++

		if id == "" {
			return "", &PathError{Template: tmpl, Param: param, Err: ErrEmptyID}
		}

		if strings.Contains(id, "/") {
			return "", &PathError{Template: tmpl, Param: param, Value: id, Err: ErrSlashInID}
		}

		b.WriteString(escapeID(id))
		rest = rest[i+j+1:]
	}

	if n != len(ids) {
		return "", &PathError{Template: tmpl, Err: ErrUnusedID}
	}
	return b.String(), nil
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '.', c == '_', c == '~':
		return true
	}
	return false
}

func escapeID(id string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder

	for i := 0; i < len(id); i++ {
		c := id[i]

		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&15])
	}
	return b.String()
}

// EncodeParams validates and encodes the given parameter tree. A nil tree
// encodes to an empty set of values.
func EncodeParams(params interface{}) (*form.Values, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}
	return form.Encode(params)
}

// Call substitutes the given identifiers into the path template, encodes the
// params, and sends the request through the given Backend.
func (e Endpoint[P, R]) Call(ctx context.Context, b Backend, params P, ids ...string) (*R, error) {
	path, err := FormatPath(e.Path, ids...)

	if err != nil {
		return nil, err
	}

	vals, err := EncodeParams(params)

	if err != nil {
		return nil, err
	}
	return e.send(ctx, b, path, vals)
}

// Send is like Call, but sends no parameters.
func (e Endpoint[P, R]) Send(ctx context.Context, b Backend, ids ...string) (*R, error) {
	path, err := FormatPath(e.Path, ids...)

	if err != nil {
		return nil, err
	}
	return e.send(ctx, b, path, nil)
}

func (e Endpoint[P, R]) send(ctx context.Context, b Backend, path string, vals *form.Values) (*R, error) {
	r := new(R)

	if err := b.Call(withPathTemplate(ctx, e.Path), e.Method, path, vals, r); err != nil {
		return nil, err
	}
	return r, nil
}
