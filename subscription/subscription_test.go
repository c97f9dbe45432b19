package subscription

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
				params := stripeapi.NewSubscriptionCreateParams("cus_ABC")
				params.Items = []*stripeapi.SubscriptionItemsParams{
					{Price: stripeapi.String("price_X"), Quantity: stripeapi.Int64(2)},
				}
				params.TrialEnd = stripeapi.TrialEndNow()

				_, err := New(ctx, b, params)
				return err
			},
			http.MethodPost, "/subscriptions", "customer=cus_ABC&items[0][price]=price_X&items[0][quantity]=2&trial_end=now",
		},
		{
			func(b stripeapi.Backend) error {
				_, err := Get(ctx, b, "sub_123", &stripeapi.RetrieveParams{Expand: []string{"latest_invoice.payment_intent"}})
				return err
			},
			http.MethodGet, "/subscriptions/sub_123", "expand[0]=latest_invoice.payment_intent",
		},
		{
			func(b stripeapi.Backend) error {
				_, err := Update(ctx, b, "sub_123", &stripeapi.SubscriptionUpdateParams{
					CancelAtPeriodEnd: stripeapi.Bool(true),
					DefaultTaxRates:   form.Clear[[]string](),
				})
				return err
			},
			http.MethodPost, "/subscriptions/sub_123", "cancel_at_period_end=true&default_tax_rates=",
		},
		{
			func(b stripeapi.Backend) error {
				_, err := Cancel(ctx, b, "sub_123", &stripeapi.SubscriptionCancelParams{InvoiceNow: stripeapi.Bool(true)})
				return err
			},
			http.MethodDelete, "/subscriptions/sub_123", "invoice_now=true",
		},
		{
			func(b stripeapi.Backend) error {
				_, err := Resume(ctx, b, "sub_123", &stripeapi.SubscriptionResumeParams{
					BillingCycleAnchor: stripeapi.Ptr(stripeapi.SubscriptionBillingCycleAnchorUnchanged),
				})
				return err
			},
			http.MethodPost, "/subscriptions/sub_123/resume", "billing_cycle_anchor=unchanged",
		},
		{
			func(b stripeapi.Backend) error {
				_, err := DeleteDiscount(ctx, b, "sub_123")
				return err
			},
			http.MethodDelete, "/subscriptions/sub_123/discount", "",
		},
		{
			func(b stripeapi.Backend) error {
				it := List(ctx, b, &stripeapi.SubscriptionListParams{
					Customer: stripeapi.String("cus_ABC"),
					Status:   stripeapi.Ptr(stripeapi.SubscriptionListStatusAll),
				})
				it.Next()
				return it.Err()
			},
			http.MethodGet, "/subscriptions", "customer=cus_ABC&status=all",
		},
		{
			func(b stripeapi.Backend) error {
				it := Search(ctx, b, stripeapi.NewSubscriptionSearchParams("status:'active'"))
				it.Next()
				return it.Err()
			},
			http.MethodGet, "/subscriptions/search", "query=status%3A%27active%27",
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

func Test_SearchNilParams(t *testing.T) {
	var r recorder

	it := Search(context.Background(), &r, nil)

	if it.Next() {
		t.Fatal("expected iteration to stop")
	}

	if it.Err() != stripeapi.ErrMissingQuery {
		t.Errorf("unexpected error, expected=%q, got=%q\n", stripeapi.ErrMissingQuery, it.Err())
	}

	if r.path != "" {
		t.Errorf("unexpected request to %q\n", r.path)
	}
}
