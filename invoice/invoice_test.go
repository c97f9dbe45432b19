package invoice

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
				_, err := New(ctx, b, &stripeapi.InvoiceCreateParams{Customer: stripeapi.String("cus_123")})
				return err
			},
			http.MethodPost, "/invoices", "customer=cus_123",
		},
		{
			func(b stripeapi.Backend) error {
				_, err := Get(ctx, b, "in_123", nil)
				return err
			},
			http.MethodGet, "/invoices/in_123", "",
		},
		{
			func(b stripeapi.Backend) error {
				_, err := Update(ctx, b, "in_123", &stripeapi.InvoiceUpdateParams{Description: form.Set("March")})
				return err
			},
			http.MethodPost, "/invoices/in_123", "description=March",
		},
		{
			func(b stripeapi.Backend) error {
				_, err := Del(ctx, b, "in_123")
				return err
			},
			http.MethodDelete, "/invoices/in_123", "",
		},
		{
			func(b stripeapi.Backend) error {
				_, err := Pay(ctx, b, "in_123", &stripeapi.InvoicePayParams{PaidOutOfBand: stripeapi.Bool(true)})
				return err
			},
			http.MethodPost, "/invoices/in_123/pay", "paid_out_of_band=true",
		},
		{
			func(b stripeapi.Backend) error {
				_, err := Finalize(ctx, b, "in_123", nil)
				return err
			},
			http.MethodPost, "/invoices/in_123/finalize", "",
		},
		{
			func(b stripeapi.Backend) error {
				_, err := Send(ctx, b, "in_123", nil)
				return err
			},
			http.MethodPost, "/invoices/in_123/send", "",
		},
		{
			func(b stripeapi.Backend) error {
				_, err := MarkUncollectible(ctx, b, "in_123", nil)
				return err
			},
			http.MethodPost, "/invoices/in_123/mark_uncollectible", "",
		},
		{
			func(b stripeapi.Backend) error {
				_, err := Void(ctx, b, "in_123", nil)
				return err
			},
			http.MethodPost, "/invoices/in_123/void", "",
		},
		{
			func(b stripeapi.Backend) error {
				_, err := Upcoming(ctx, b, &stripeapi.InvoiceUpcomingParams{
					Customer:                       stripeapi.String("cus_123"),
					SubscriptionBillingCycleAnchor: stripeapi.BillingCycleAnchorOf(stripeapi.SubscriptionBillingCycleAnchorNow),
					SubscriptionItems: []*stripeapi.SubscriptionItemsParams{
						{Price: stripeapi.String("price_X")},
					},
					SubscriptionTrialEnd: stripeapi.TrialEndAt(1700000000),
				})
				return err
			},
			http.MethodGet, "/invoices/upcoming", "customer=cus_123&subscription_billing_cycle_anchor=now&subscription_items[0][price]=price_X&subscription_trial_end=1700000000",
		},
		{
			func(b stripeapi.Backend) error {
				it := UpcomingLines(ctx, b, &stripeapi.InvoiceUpcomingLinesParams{
					ListParams: stripeapi.ListParams{
						Limit: stripeapi.Int64(5),
					},
					InvoiceUpcomingParams: stripeapi.InvoiceUpcomingParams{
						Customer: stripeapi.String("cus_123"),
					},
				})
				it.Next()
				return it.Err()
			},
			http.MethodGet, "/invoices/upcoming/lines", "limit=5&customer=cus_123",
		},
		{
			func(b stripeapi.Backend) error {
				it := Lines(ctx, b, "in_123", nil)
				it.Next()
				return it.Err()
			},
			http.MethodGet, "/invoices/in_123/lines", "",
		},
		{
			func(b stripeapi.Backend) error {
				it := List(ctx, b, &stripeapi.InvoiceListParams{Status: stripeapi.Ptr(stripeapi.InvoiceListStatusOpen)})
				it.Next()
				return it.Err()
			},
			http.MethodGet, "/invoices", "status=open",
		},
		{
			func(b stripeapi.Backend) error {
				it := Search(ctx, b, stripeapi.NewInvoiceSearchParams("total>1000"))
				it.Next()
				return it.Err()
			},
			http.MethodGet, "/invoices/search", "query=total%3E1000",
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
