package session

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/andrewpillar/stripeapi"
	"github.com/andrewpillar/stripeapi/form"
)

type recorder struct {
	method string
	path   string
	body   string
}

func (r *recorder) Call(_ context.Context, method, path string, params *form.Values, v interface{}) error {
	r.method = method
	r.path = path
	r.body = params.Encode()

	if v == nil {
		return nil
	}
	return json.Unmarshal([]byte(`{}`), v)
}

func Test_Routes(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		call   func(b stripeapi.Backend) error
		method string
		path   string
		body   string
	}{
		{
			func(b stripeapi.Backend) error {
				params := stripeapi.NewCheckoutSessionCreateParams("https://example.com/ok", "https://example.com/cancel")
				params.Mode = stripeapi.Ptr(stripeapi.CheckoutSessionModeSubscription)

				_, err := New(ctx, b, params)
				return err
			},
			http.MethodPost, "/checkout/sessions", "success_url=https%3A%2F%2Fexample.com%2Fok&cancel_url=https%3A%2F%2Fexample.com%2Fcancel&mode=subscription",
		},
		{
			func(b stripeapi.Backend) error {
				_, err := Get(ctx, b, "cs_test_123", nil)
				return err
			},
			http.MethodGet, "/checkout/sessions/cs_test_123", "",
		},
		{
			func(b stripeapi.Backend) error {
				_, err := Expire(ctx, b, "cs_test_123", nil)
				return err
			},
			http.MethodPost, "/checkout/sessions/cs_test_123/expire", "",
		},
		{
			func(b stripeapi.Backend) error {
				it := List(ctx, b, nil)
				it.Next()
				return it.Err()
			},
			http.MethodGet, "/checkout/sessions", "",
		},
		{
			func(b stripeapi.Backend) error {
				it := ListLineItems(ctx, b, "cs_test_123", &stripeapi.LineItemListParams{
					ListParams: stripeapi.ListParams{
						Limit: stripeapi.Int64(100),
					},
				})
				it.Next()
				return it.Err()
			},
			http.MethodGet, "/checkout/sessions/cs_test_123/line_items", "limit=100",
		},
	}

	for i, test := range tests {
		var r recorder

		if err := test.call(&r); err != nil {
			t.Fatalf("tests[%d] - %s\n", i, err)
		}

		if r.method != test.method {
			t.Errorf("tests[%d] - unexpected method, expected=%q, got=%q\n", i, test.method, r.method)
		}

		if r.path != test.path {
			t.Errorf("tests[%d] - unexpected path, expected=%q, got=%q\n", i, test.path, r.path)
		}

		if r.body != test.body {
			t.Errorf("tests[%d] - unexpected body, expected=%q, got=%q\n", i, test.body, r.body)
		}
	}
}
