package price

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
				params := stripeapi.NewPriceCreateParams(stripeapi.CurrencyGBP)
				params.Product = stripeapi.String("prod_123")
				params.UnitAmount = stripeapi.Int64(1000)

				_, err := New(ctx, b, params)
				return err
			},
			http.MethodPost, "/prices", "currency=gbp&product=prod_123&unit_amount=1000",
		},
		{
			func(b stripeapi.Backend) error {
				_, err := Get(ctx, b, "price_123", nil)
				return err
			},
			http.MethodGet, "/prices/price_123", "",
		},
		{
			func(b stripeapi.Backend) error {
				_, err := Update(ctx, b, "price_123", &stripeapi.PriceUpdateParams{
					Active:   stripeapi.Bool(false),
					Metadata: stripeapi.Metadata{"plan": ""},
				})
				return err
			},
			http.MethodPost, "/prices/price_123", "active=false&metadata[plan]=",
		},
		{
			func(b stripeapi.Backend) error {
				it := List(ctx, b, &stripeapi.PriceListParams{
					LookupKeys: []string{"basic", "pro"},
				})
				it.Next()
				return it.Err()
			},
			http.MethodGet, "/prices", "lookup_keys[0]=basic&lookup_keys[1]=pro",
		},
		{
			func(b stripeapi.Backend) error {
				it := Search(ctx, b, stripeapi.NewPriceSearchParams("active:'true'"))
				it.Next()
				return it.Err()
			},
			http.MethodGet, "/prices/search", "query=active%3A%27true%27",
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
