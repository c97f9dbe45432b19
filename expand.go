package stripeapi

import "encoding/json"

// Expandable is a field of a response that holds either the ID of a related
// object, or the object itself when the field was named in the expand
// parameter of the request.
type Expandable[T any] struct {
	ID     string
	Object *T
}

func (e *Expandable[T]) IsExpanded() bool { return e.Object != nil }

func (e Expandable[T]) MarshalJSON() ([]byte, error) {
	if e.Object != nil {
		return json.Marshal(e.Object)
	}
	return json.Marshal(e.ID)
}

// UnmarshalJSON decodes either an ID string or an object, chosen by the first
// token. The ID of a decoded object is taken from its id field.
func (e *Expandable[T]) UnmarshalJSON(b []byte) error {
	switch peek(b) {
	case 'n':
		return nil
	case '"':
		*e = Expandable[T]{}
		return json.Unmarshal(b, &e.ID)
	}

	var ref struct {
		ID string `json:"id"`
	}

	if err := json.Unmarshal(b, &ref); err != nil {
		return err
	}

	obj := new(T)

	if err := json.Unmarshal(b, obj); err != nil {
		return err
	}

	*e = Expandable[T]{
		ID:     ref.ID,
		Object: obj,
	}
	return nil
}
