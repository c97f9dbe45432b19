package form

import (
	"net/url"
	"strings"
)

type pair struct {
	key   string
	value string
}

// Values is an ordered set of encoded key/value pairs. Pairs are kept in the
// order they were added, which for an encoded struct is field order.
type Values struct {
	pairs []pair
}

func escapeKey(key string) string {
	s := url.QueryEscape(key)
	s = strings.ReplaceAll(s, "%5B", "[")
	return strings.ReplaceAll(s, "%5D", "]")
}

func (p pair) encode() string { return escapeKey(p.key) + "=" + url.QueryEscape(p.value) }

// Add appends the given pair.
func (v *Values) Add(key, value string) {
	v.pairs = append(v.pairs, pair{
		key:   key,
		value: value,
	})
}

// Get returns every value recorded against the given key.
func (v *Values) Get(key string) []string {
	if v == nil {
		return nil
	}

	vals := make([]string, 0)

	for _, p := range v.pairs {
		if p.key == key {
			vals = append(vals, p.value)
		}
	}
	return vals
}

// Has reports whether any pair has the given key, or a key nested beneath it.
func (v *Values) Has(key string) bool {
	for _, k := range v.Keys() {
		if k == key || strings.HasPrefix(k, key+"[") {
			return true
		}
	}
	return false
}

// Keys returns the keys of every pair in order.
func (v *Values) Keys() []string {
	if v == nil {
		return nil
	}

	keys := make([]string, 0, len(v.pairs))

	for _, p := range v.pairs {
		keys = append(keys, p.key)
	}
	return keys
}

func (v *Values) Len() int {
	if v == nil {
		return 0
	}
	return len(v.pairs)
}

func (v *Values) Empty() bool { return v.Len() == 0 }

// Encode returns the x-www-form-urlencoded string for the pairs. Brackets in
// keys are left unescaped.
func (v *Values) Encode() string {
	if v == nil {
		return ""
	}

	encoded := make([]string, 0, len(v.pairs))

	for _, p := range v.pairs {
		encoded = append(encoded, p.encode())
	}
	return strings.Join(encoded, "&")
}

// ToValues returns the pairs as url.Values. Ordering between keys is lost.
func (v *Values) ToValues() url.Values {
	vals := make(url.Values)

	if v == nil {
		return vals
	}

	for _, p := range v.pairs {
		vals.Add(p.key, p.value)
	}
	return vals
}
