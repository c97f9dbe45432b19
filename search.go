package stripeapi

import (
	"context"
	"iter"
	"net/http"
	"reflect"

	"github.com/andrewpillar/stripeapi/enum"
)

// SearchResultObject is the object discriminator of a search envelope.
type SearchResultObject string

const SearchResultObjectSearchResult SearchResultObject = "search_result"

var searchResultObjectEnum = enum.New("SearchResultObject", SearchResultObjectSearchResult)

// SearchResult is a single page of objects returned from a search endpoint.
// TotalCount is only set when requested through expand.
type SearchResult[T any] struct {
	Object     SearchResultObject `json:"object"`
	Data       []T                `json:"data"`
	HasMore    bool               `json:"has_more"`
	NextPage   *string            `json:"next_page"`
	TotalCount *uint64            `json:"total_count"`
	URL        string             `json:"url"`
}

// SearchParams are the parameters shared by every search endpoint. Query is
// written in the Stripe search query language.
type SearchParams struct {
	Query  string   `form:"query"`
	Expand []string `form:"expand"`
	Limit  *int64   `form:"limit"`
	Page   *string  `form:"page"`
}

type SearchParamsContainer interface {
	GetSearchParams() *SearchParams
}

// SearchIter is a lazy cursor over the objects of a search endpoint. It
// advances by passing the next_page token of each result as the page
// parameter of the next request.
type SearchIter[T any] struct {
	ctx    context.Context
	params *SearchParams
	fetch  func(context.Context) (*SearchResult[T], error)

	page  *SearchResult[T]
	items []T
	cur   T
	err   error
	done  bool
}

// SearchEndpoint binds the path template of a search endpoint to its
// parameter tree P and the objects T it returns.
type SearchEndpoint[P SearchParamsContainer, T any] struct {
	Path string
}

func (o SearchResultObject) String() string { return string(o) }

func (o *SearchResultObject) UnmarshalJSON(b []byte) error {
	return searchResultObjectEnum.Unmarshal(o, b)
}

// GetSearchParams implements the SearchParamsContainer interface.
func (p *SearchParams) GetSearchParams() *SearchParams { return p }

// NewSearchIter returns a SearchIter that calls fetch for each page.
func NewSearchIter[T any](ctx context.Context, params *SearchParams, fetch func(context.Context) (*SearchResult[T], error)) *SearchIter[T] {
	return &SearchIter[T]{
		ctx:    ctx,
		params: params,
		fetch:  fetch,
	}
}

// Next advances to the next object, fetching the next page if needed.
func (it *SearchIter[T]) Next() bool {
	for len(it.items) == 0 {
		if it.done || it.err != nil {
			return false
		}

		if it.page != nil {
			if !it.page.HasMore || it.page.NextPage == nil || *it.page.NextPage == "" {
				it.done = true
				return false
			}
			it.params.Page = it.page.NextPage
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
	}

	it.cur = it.items[0]
	it.items = it.items[1:]
	return true
}

func (it *SearchIter[T]) Current() T { return it.cur }

func (it *SearchIter[T]) Err() error { return it.err }

// SearchResult returns the most recently fetched page.
func (it *SearchIter[T]) SearchResult() *SearchResult[T] { return it.page }

// All returns the remaining objects as a sequence. Iteration stops at the
// first error, which is yielded with the zero value of T.
func (it *SearchIter[T]) All() iter.Seq2[T, error] {
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
func (e SearchEndpoint[P, T]) Page(ctx context.Context, b Backend, params P) (*SearchResult[T], error) {
	return Endpoint[P, SearchResult[T]]{
		Method: http.MethodGet,
		Path:   e.Path,
	}.Call(ctx, b, params)
}

// Iter returns a SearchIter over every object matching the query. If params is
// nil no request is made, and the iterator fails with ErrMissingQuery.
func (e SearchEndpoint[P, T]) Iter(ctx context.Context, b Backend, params P) *SearchIter[T] {
	if nilParams(params) {
		return &SearchIter[T]{ctx: ctx, err: ErrMissingQuery}
	}
	return NewSearchIter(ctx, params.GetSearchParams(), func(ctx context.Context) (*SearchResult[T], error) {
		return e.Page(ctx, b, params)
	})
}

func nilParams(params any) bool {
	rv := reflect.ValueOf(params)

	return !rv.IsValid() || (rv.Kind() == reflect.Ptr && rv.IsNil())
}
