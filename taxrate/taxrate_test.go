package taxrate

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
				_, err := New(ctx, b, stripeapi.NewTaxRateCreateParams("VAT", false, 20))
				return err
			},
			http.MethodPost, "/tax_rates", "display_name=VAT&inclusive=false&percentage=20",
		},
		{
			func(b stripeapi.Backend) error {
				_, err := Get(ctx, b, "txr_123", nil)
				return err
			},
			http.MethodGet, "/tax_rates/txr_123", "",
		},
		{
			func(b stripeapi.Backend) error {
				_, err := Update(ctx, b, "txr_123", &stripeapi.TaxRateUpdateParams{Active: stripeapi.Bool(false)})
				return err
			},
			http.MethodPost, "/tax_rates/txr_123", "active=false",
		},
		{
			func(b stripeapi.Backend) error {
				it := List(ctx, b, &stripeapi.TaxRateListParams{
					Created: &stripeapi.RangeQuery{GTE: stripeapi.Ptr(stripeapi.Timestamp(1700000000))},
				})
				it.Next()
				return it.Err()
			},
			http.MethodGet, "/tax_rates", "created[gte]=1700000000",
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
