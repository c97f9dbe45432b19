package paymentmethod

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
				_, err := New(ctx, b, stripeapi.NewPaymentMethodCreateParams(stripeapi.PaymentMethodTypeCard))
				return err
			},
			http.MethodPost, "/payment_methods", "type=card",
		},
		{
			func(b stripeapi.Backend) error {
				_, err := Get(ctx, b, "pm_123", nil)
				return err
			},
			http.MethodGet, "/payment_methods/pm_123", "",
		},
		{
			func(b stripeapi.Backend) error {
				_, err := Update(ctx, b, "pm_123", &stripeapi.PaymentMethodUpdateParams{
					Metadata: stripeapi.Metadata{"order": "6735"},
				})
				return err
			},
			http.MethodPost, "/payment_methods/pm_123", "metadata[order]=6735",
		},
		{
			func(b stripeapi.Backend) error {
				_, err := Attach(ctx, b, "pm_123", stripeapi.NewPaymentMethodAttachParams("cus_123"))
				return err
			},
			http.MethodPost, "/payment_methods/pm_123/attach", "customer=cus_123",
		},
		{
			func(b stripeapi.Backend) error {
				_, err := Detach(ctx, b, "pm_123", nil)
				return err
			},
			http.MethodPost, "/payment_methods/pm_123/detach", "",
		},
		{
			func(b stripeapi.Backend) error {
				it := List(ctx, b, &stripeapi.PaymentMethodListParams{
					Customer: stripeapi.String("cus_123"),
					Type:     stripeapi.Ptr(stripeapi.PaymentMethodTypeCard),
				})
				it.Next()
				return it.Err()
			},
			http.MethodGet, "/payment_methods", "customer=cus_123&type=card",
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
