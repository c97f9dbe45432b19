// Package form implements the application/x-www-form-urlencoded encoding
// understood by the Stripe API. Nested values are flattened into bracketed
// keys, so a field parent.child.leaf is sent as parent[child][leaf].
//
// Parameter trees are plain structs whose fields carry a form tag,
//
//     type ItemParams struct {
//         Price    *string `form:"price"`
//         Quantity *int64  `form:"quantity"`
//     }
//
// A nil pointer, slice, map or interface is omitted from the encoding. A
// present but empty slice, map or struct is sent as key= which the API treats
// as an instruction to unset the field. Non-pointer scalars are always sent.
package form

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Marshaler is implemented by values that encode to a single form value, such
// as enumerations.
type Marshaler interface {
	MarshalForm() (string, error)
}

// Appender is implemented by values that write their own pairs beneath the
// given key. Values whose wire form depends on the variant they hold use this,
// for example a range query that is either a timestamp or a set of bounds.
type Appender interface {
	AppendForm(v *Values, keyParts []string) error
}

// EncodingError records the key of the value that could not be encoded.
type EncodingError struct {
	Key string
	Err error
}

type field struct {
	name  string
	index []int
}

var (
	appenderType      = reflect.TypeOf((*Appender)(nil)).Elem()
	marshalerType     = reflect.TypeOf((*Marshaler)(nil)).Elem()
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()

	fieldCache sync.Map // map[reflect.Type][]field
)

func (e *EncodingError) Error() string {
	if e.Key == "" {
		return "form: " + e.Err.Error()
	}
	return "form: cannot encode " + e.Key + ": " + e.Err.Error()
}

func (e *EncodingError) Unwrap() error { return e.Err }

// FormatKey joins the given key parts into a single bracketed key, for
// example []string{"items", "0", "price"} becomes items[0][price].
func FormatKey(parts []string) string {
	if len(parts) == 0 {
		return ""
	}

	var b strings.Builder

	b.WriteString(parts[0])

	for _, p := range parts[1:] {
		b.WriteByte('[')
		b.WriteString(p)
		b.WriteByte(']')
	}
	return b.String()
}

// Encode encodes the given parameter tree into a new set of Values. A nil
// tree encodes to an empty set of Values.
func Encode(v interface{}) (*Values, error) {
	vals := &Values{}

	if err := AppendTo(vals, nil, v); err != nil {
		return nil, err
	}
	return vals, nil
}

// AppendTo encodes the given value beneath the given key parts and appends
// the resulting pairs to vals.
func AppendTo(vals *Values, keyParts []string, v interface{}) error {
	if v == nil {
		return nil
	}
	return encodeValue(vals, keyParts, reflect.ValueOf(v))
}

func appendPart(parts []string, p string) []string {
	return append(parts[:len(parts):len(parts)], p)
}

func wrapErr(parts []string, err error) error {
	var encErr *EncodingError

	if errors.As(err, &encErr) {
		return err
	}
	return &EncodingError{
		Key: FormatKey(parts),
		Err: err,
	}
}

// hook returns the value as the first of the given interface types it
// implements, either directly or through its address.
func hook(rv reflect.Value, typ reflect.Type) (interface{}, bool) {
	if rv.Type().Implements(typ) {
		return rv.Interface(), true
	}

	if rv.CanAddr() && reflect.PointerTo(rv.Type()).Implements(typ) {
		return rv.Addr().Interface(), true
	}
	return nil, false
}

func encodeValue(vals *Values, parts []string, rv reflect.Value) error {
	if !rv.IsValid() {
		return nil
	}

	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map:
		if rv.IsNil() {
			return nil
		}
	}

	if h, ok := hook(rv, appenderType); ok {
		if err := h.(Appender).AppendForm(vals, parts); err != nil {
			return wrapErr(parts, err)
		}
		return nil
	}

	if h, ok := hook(rv, marshalerType); ok {
		s, err := h.(Marshaler).MarshalForm()

		if err != nil {
			return wrapErr(parts, err)
		}
		return addLeaf(vals, parts, s)
	}

	if h, ok := hook(rv, textMarshalerType); ok {
		b, err := h.(encoding.TextMarshaler).MarshalText()

		if err != nil {
			return wrapErr(parts, err)
		}
		return addLeaf(vals, parts, string(b))
	}

	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		return encodeValue(vals, parts, rv.Elem())
	case reflect.Struct:
		return encodeStruct(vals, parts, rv)
	case reflect.Slice, reflect.Array:
		if rv.Len() == 0 {
			addEmpty(vals, parts)
			return nil
		}

		for i := 0; i < rv.Len(); i++ {
			if err := encodeValue(vals, appendPart(parts, strconv.Itoa(i)), rv.Index(i)); err != nil {
				return err
			}
		}
		return nil
	case reflect.Map:
		return encodeMap(vals, parts, rv)
	case reflect.String:
		return addLeaf(vals, parts, rv.String())
	case reflect.Bool:
		return addLeaf(vals, parts, strconv.FormatBool(rv.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return addLeaf(vals, parts, strconv.FormatInt(rv.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return addLeaf(vals, parts, strconv.FormatUint(rv.Uint(), 10))
	case reflect.Float32:
		return addLeaf(vals, parts, strconv.FormatFloat(rv.Float(), 'f', -1, 32))
	case reflect.Float64:
		return addLeaf(vals, parts, strconv.FormatFloat(rv.Float(), 'f', -1, 64))
	}
	return &EncodingError{
		Key: FormatKey(parts),
		Err: fmt.Errorf("unsupported type %s", rv.Type()),
	}
}

func addLeaf(vals *Values, parts []string, s string) error {
	if len(parts) == 0 {
		return &EncodingError{
			Err: errors.New("cannot encode a scalar without a key"),
		}
	}
	vals.Add(FormatKey(parts), s)
	return nil
}

// addEmpty records a present but empty aggregate. At the top level there is
// no key to send, so nothing is recorded.
func addEmpty(vals *Values, parts []string) {
	if len(parts) > 0 {
		vals.Add(FormatKey(parts), "")
	}
}

func encodeMap(vals *Values, parts []string, rv reflect.Value) error {
	if rv.Type().Key().Kind() != reflect.String {
		return &EncodingError{
			Key: FormatKey(parts),
			Err: fmt.Errorf("unsupported map key type %s", rv.Type().Key()),
		}
	}

	if rv.Len() == 0 {
		addEmpty(vals, parts)
		return nil
	}

	keys := rv.MapKeys()

	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})

	for _, k := range keys {
		if err := encodeValue(vals, appendPart(parts, k.String()), rv.MapIndex(k)); err != nil {
			return err
		}
	}
	return nil
}

func encodeStruct(vals *Values, parts []string, rv reflect.Value) error {
	n := vals.Len()

	for _, f := range cachedFields(rv.Type()) {
		if err := encodeValue(vals, appendPart(parts, f.name), rv.FieldByIndex(f.index)); err != nil {
			return err
		}
	}

	if vals.Len() == n {
		addEmpty(vals, parts)
	}
	return nil
}

func cachedFields(t reflect.Type) []field {
	if f, ok := fieldCache.Load(t); ok {
		return f.([]field)
	}

	f, _ := fieldCache.LoadOrStore(t, dominantFields(typeFields(t, nil)))
	return f.([]field)
}

// dominantFields drops the fields hidden by another of the same name, as Go
// does for promoted fields. The shallowest field wins, and names shared by
// more than one field at that depth are dropped entirely.
func dominantFields(fields []field) []field {
	type dominance struct {
		depth int
		count int
	}

	names := make(map[string]dominance)

	for _, f := range fields {
		d, ok := names[f.name]

		switch {
		case !ok || len(f.index) < d.depth:
			names[f.name] = dominance{depth: len(f.index), count: 1}
		case len(f.index) == d.depth:
			d.count++
			names[f.name] = d
		}
	}

	dominant := make([]field, 0, len(fields))

	for _, f := range fields {
		d := names[f.name]

		if len(f.index) == d.depth && d.count == 1 {
			dominant = append(dominant, f)
		}
	}
	return dominant
}

// typeFields returns the encodable fields of the given struct type. Embedded
// structs without a tag are flattened into the parent.
func typeFields(t reflect.Type, index []int) []field {
	fields := make([]field, 0, t.NumField())

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag := sf.Tag.Get("form")

		idx := append(index[:len(index):len(index)], i)

		if sf.Anonymous && tag == "" && sf.Type.Kind() == reflect.Struct {
			fields = append(fields, typeFields(sf.Type, idx)...)
			continue
		}

		if !sf.IsExported() || tag == "" || tag == "-" {
			continue
		}

		name, _, _ := strings.Cut(tag, ",")

		fields = append(fields, field{
			name:  name,
			index: idx,
		})
	}
	return fields
}
