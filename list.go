package stripeapi

import (
	"context"
	"iter"
	"net/http"

	"github.com/andrewpillar/stripeapi/enum"
)

// ListObject is the object discriminator of a list envelope.
type ListObject string

const ListObjectList ListObject = "list"

var listObjectEnum = enum.New("ListObject", ListObjectList)

// List is a single page of objects returned from a list endpoint.
type List[T any] struct {
	Object  ListObject `json:"object"`
	Data    []T        `json:"data"`
	HasMore bool       `json:"has_more"`
	URL     string     `json:"url"`
}

// ListParams are the cursor parameters shared by every list endpoint. They are
// embedded in the list parameters of each resource.
type ListParams struct {
	EndingBefore  *string  `form:"ending_before"`
	Expand        []string `form:"expand"`
	Limit         *int64   `form:"limit"`
	StartingAfter *string  `form:"starting_after"`
}

// ListParamsContainer is implemented by every list parameter tree through the
// embedded ListParams.
type ListParamsContainer interface {
	GetListParams() *ListParams
}

// Resource is an object with an identifier, as returned by list endpoints.
type Resource interface {
	GetID() string
}

// Iter is a lazy cursor over the objects of a list endpoint. Pages are
// requested one at a time, as the objects of the previous page are consumed.
// An Iter is single-pass, once exhausted it must be recreated to iterate
// again.
//
//     it := subscription.List(ctx, client, params)
//
//     for it.Next() {
//         sub := it.Current()
//     }
//
//     if err := it.Err(); err != nil {
//         // handle error
//     }
//
// If EndingBefore is set on the initial parameters then the list is walked
// backwards, and each page is yielded in reverse.
type Iter[T Resource] struct {
	ctx      context.Context
	params   *ListParams
	fetch    func(context.Context) (*List[T], error)
	backward bool

	page  *List[T]
	items []T
	cur   T
	err   error
	done  bool
}

// ListEndpoint binds the path template of a list endpoint to its parameter
// tree P and the objects T it returns.
type ListEndpoint[P ListParamsContainer, T Resource] struct {
	Path string
}

func (o ListObject) String() string { return string(o) }

func (o *ListObject) UnmarshalJSON(b []byte) error { return listObjectEnum.Unmarshal(o, b) }

// GetListParams implements the ListParamsContainer interface.
func (p *ListParams) GetListParams() *ListParams { return p }

// NewIter returns an Iter that calls fetch for each page. The cursor fields of
// the given params are updated between calls to fetch, which is expected to
// encode them into its request.
func NewIter[T Resource](ctx context.Context, params *ListParams, fetch func(context.Context) (*List[T], error)) *Iter[T] {
	return &Iter[T]{
		ctx:      ctx,
		params:   params,
		fetch:    fetch,
		backward: params.EndingBefore != nil,
	}
}

func reversed[T any](s []T) []T {
	r := make([]T, len(s))

	for i, v := range s {
		r[len(s)-1-i] = v
	}
	return r
}

// advance moves the cursor past the most recently fetched page.
func (it *Iter[T]) advance() {
	data := it.page.Data

	if it.backward {
		id := data[0].GetID()
		it.params.EndingBefore = &id
		return
	}

	id := data[len(data)-1].GetID()
	it.params.StartingAfter = &id
}

// Next advances to the next object, fetching the next page if needed. It
// returns false once the list is exhausted, or an error occurs.
func (it *Iter[T]) Next() bool {
	for len(it.items) == 0 {
		if it.done || it.err != nil {
			return false
		}

		if it.page != nil {
			if !it.page.HasMore || len(it.page.Data) == 0 {
				it.done = true
				return false
			}
			it.advance()
		}

		if err := it.ctx.Err(); err != nil {
			it.err = err
			return false
		}

		page, err := it.fetch(it.ctx)

		if err != nil {
			it.err = err
			return false
		}

		it.page = page
		it.items = page.Data

		if it.backward {
			it.items = reversed(page.Data)
		}
	}

	it.cur = it.items[0]
	it.items = it.items[1:]
	return true
}

// Current returns the object Next advanced to.
func (it *Iter[T]) Current() T { return it.cur }

// Err returns the error that stopped iteration, if any.
func (it *Iter[T]) Err() error { return it.err }

// List returns the most recently fetched page.
func (it *Iter[T]) List() *List[T] { return it.page }

// All returns the remaining objects as a sequence. Iteration stops at the
// first error, which is yielded with the zero value of T.
func (it *Iter[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for it.Next() {
			if !yield(it.Current(), nil) {
				return
			}
		}

		if it.err != nil {
			var zero T
			yield(zero, it.err)
		}
	}
}

// Page requests a single page from the endpoint.
func (e ListEndpoint[P, T]) Page(ctx context.Context, b Backend, params P, ids ...string) (*List[T], error) {
	return Endpoint[P, List[T]]{
		Method: http.MethodGet,
		Path:   e.Path,
	}.Call(ctx, b, params, ids...)
}

// Iter returns an Iter over every object of the endpoint. The given params
// must not be nil, and have their cursor fields updated as iteration
// proceeds.
func (e ListEndpoint[P, T]) Iter(ctx context.Context, b Backend, params P, ids ...string) *Iter[T] {
	return NewIter(ctx, params.GetListParams(), func(ctx context.Context) (*List[T], error) {
		return e.Page(ctx, b, params, ids...)
	})
}
