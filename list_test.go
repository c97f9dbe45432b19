package stripeapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gorilla/schema"
)

type cursorQuery struct {
	EndingBefore  string `schema:"ending_before"`
	StartingAfter string `schema:"starting_after"`
	Limit         int    `schema:"limit"`
	Page          string `schema:"page"`
	Query         string `schema:"query"`
}

var queryDecoder = func() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return dec
}()

// paginate serves the subscriptions with the given IDs as a list endpoint,
// honouring the cursor parameters of each request.
func paginate(t *testing.T, ids []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var q cursorQuery

		if err := queryDecoder.Decode(&q, r.URL.Query()); err != nil {
			t.Errorf("failed to decode query: %s\n", err)
		}

		if q.Limit == 0 {
			q.Limit = 10
		}

		start, end := 0, len(ids)

		for i, id := range ids {
			if id == q.StartingAfter {
				start = i + 1
			}
			if id == q.EndingBefore {
				end = i
			}
		}

		var page []string

		if q.EndingBefore != "" {
			start = end - q.Limit

			if start < 0 {
				start = 0
			}
			page = ids[start:end]
		} else {
			if start+q.Limit < end {
				end = start + q.Limit
			}
			page = ids[start:end]
		}

		data := make([]map[string]string, 0, len(page))

		for _, id := range page {
			data = append(data, map[string]string{
				"id":     id,
				"object": "subscription",
			})
		}

		hasMore := end < len(ids)

		if q.EndingBefore != "" {
			hasMore = start > 0
		}

		w.Header().Set("Content-Type", "application/json")

		json.NewEncoder(w).Encode(map[string]interface{}{
			"object":   "list",
			"data":     data,
			"has_more": hasMore,
			"url":      "/v1/subscriptions",
		})
	}
}

var subscriptionList = ListEndpoint[*SubscriptionListParams, *Subscription]{
	Path: "/subscriptions",
}

func collect(it *Iter[*Subscription]) ([]string, error) {
	ids := make([]string, 0)

	for sub, err := range it.All() {
		if err != nil {
			return ids, err
		}
		ids = append(ids, sub.ID)
	}
	return ids, nil
}

func Test_Iter(t *testing.T) {
	ids := []string{"sub_1", "sub_2", "sub_3", "sub_4", "sub_5"}

	tests := []struct {
		ids      []string
		params   ListParams
		expected []string
		requests int
	}{
		{ids, ListParams{Limit: Int64(2)}, ids, 3},
		{ids, ListParams{Limit: Int64(5)}, ids, 1},
		{ids, ListParams{Limit: Int64(2), StartingAfter: String("sub_3")}, []string{"sub_4", "sub_5"}, 1},
		{ids, ListParams{Limit: Int64(2), EndingBefore: String("sub_4")}, []string{"sub_3", "sub_2", "sub_1"}, 2},
		{nil, ListParams{}, []string{}, 1},
	}

	for i, test := range tests {
		client, requests := newTestClient(t, paginate(t, test.ids))

		params := &SubscriptionListParams{
			ListParams: test.params,
		}

		got, err := collect(subscriptionList.Iter(context.Background(), client, params))

		if err != nil {
			t.Fatalf("tests[%d] - %s\n", i, err)
		}

		if len(got) != len(test.expected) {
			t.Fatalf("tests[%d] - unexpected number of items, expected=%d, got=%d\n", i, len(test.expected), len(got))
		}

		for j := range test.expected {
			if got[j] != test.expected[j] {
				t.Errorf("tests[%d] - unexpected item at %d, expected=%q, got=%q\n", i, j, test.expected[j], got[j])
			}
		}

		if n := len(requests()); n != test.requests {
			t.Errorf("tests[%d] - unexpected number of requests, expected=%d, got=%d\n", i, test.requests, n)
		}
	}
}

func Test_IterCancel(t *testing.T) {
	ids := []string{"sub_1", "sub_2", "sub_3", "sub_4"}

	client, requests := newTestClient(t, paginate(t, ids))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	params := &SubscriptionListParams{
		ListParams: ListParams{
			Limit: Int64(2),
		},
	}

	it := subscriptionList.Iter(ctx, client, params)

	n := 0

	for it.Next() {
		n++

		if n == 2 {
			cancel()
		}
	}

	if n != 2 {
		t.Errorf("unexpected number of items, expected=%d, got=%d\n", 2, n)
	}

	if !errors.Is(it.Err(), context.Canceled) {
		t.Errorf("unexpected error, expected=%q, got=%q\n", context.Canceled, it.Err())
	}

	if n := len(requests()); n != 1 {
		t.Errorf("unexpected number of requests, expected=%d, got=%d\n", 1, n)
	}
}

func Test_IterError(t *testing.T) {
	client, _ := newTestClient(t, respond(http.StatusUnauthorized, `{"error":{"type":"invalid_request_error","message":"Invalid API Key provided"}}`))

	it := subscriptionList.Iter(context.Background(), client, &SubscriptionListParams{})

	if it.Next() {
		t.Fatal("expected iteration to stop")
	}

	var apiErr *Error

	if !errors.As(it.Err(), &apiErr) {
		t.Fatalf("expected *Error, got=%T\n", it.Err())
	}

	if apiErr.HTTPStatusCode != http.StatusUnauthorized {
		t.Errorf("unexpected status, expected=%d, got=%d\n", http.StatusUnauthorized, apiErr.HTTPStatusCode)
	}
}

func Test_SearchIter(t *testing.T) {
	pages := map[string]string{
		"":       `{"object":"search_result","data":[{"id":"sub_1"},{"id":"sub_2"}],"has_more":true,"next_page":"page_2","url":"/v1/subscriptions/search"}`,
		"page_2": `{"object":"search_result","data":[{"id":"sub_3"}],"has_more":false,"next_page":null,"url":"/v1/subscriptions/search"}`,
	}

	client, requests := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var q cursorQuery

		if err := queryDecoder.Decode(&q, r.URL.Query()); err != nil {
			t.Errorf("failed to decode query: %s\n", err)
		}

		if q.Query != "status:'active'" {
			t.Errorf("unexpected query, expected=%q, got=%q\n", "status:'active'", q.Query)
		}
		respond(http.StatusOK, pages[q.Page])(w, r)
	})

	endpoint := SearchEndpoint[*SubscriptionSearchParams, *Subscription]{
		Path: "/subscriptions/search",
	}

	it := endpoint.Iter(context.Background(), client, NewSubscriptionSearchParams("status:'active'"))

	ids := make([]string, 0)

	for it.Next() {
		ids = append(ids, it.Current().ID)
	}

	if err := it.Err(); err != nil {
		t.Fatal(err)
	}

	expected := []string{"sub_1", "sub_2", "sub_3"}

	if len(ids) != len(expected) {
		t.Fatalf("unexpected number of items, expected=%d, got=%d\n", len(expected), len(ids))
	}

	for i := range expected {
		if ids[i] != expected[i] {
			t.Errorf("unexpected item at %d, expected=%q, got=%q\n", i, expected[i], ids[i])
		}
	}

	if n := len(requests()); n != 2 {
		t.Errorf("unexpected number of requests, expected=%d, got=%d\n", 2, n)
	}
}

func Test_SearchIterNilParams(t *testing.T) {
	client, requests := newTestClient(t, respond(http.StatusOK, `{"object":"search_result","data":[]}`))

	endpoint := SearchEndpoint[*SubscriptionSearchParams, *Subscription]{
		Path: "/subscriptions/search",
	}

	it := endpoint.Iter(context.Background(), client, nil)

	if it.Next() {
		t.Fatal("expected iteration to stop")
	}

	if !errors.Is(it.Err(), ErrMissingQuery) {
		t.Errorf("unexpected error, expected=%q, got=%q\n", ErrMissingQuery, it.Err())
	}

	if n := len(requests()); n != 0 {
		t.Errorf("unexpected number of requests, expected=%d, got=%d\n", 0, n)
	}
}
