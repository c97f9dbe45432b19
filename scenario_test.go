package stripeapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/andrewpillar/stripeapi"
	"github.com/andrewpillar/stripeapi/checkout/session"
	"github.com/andrewpillar/stripeapi/form"
	"github.com/andrewpillar/stripeapi/invoice"
	"github.com/andrewpillar/stripeapi/subscription"
)

type call struct {
	method string
	path   string
	body   string
}

// recorder is a Backend that records each call made through it, and responds
// with an empty object.
type recorder struct {
	calls []call
}

func (r *recorder) Call(_ context.Context, method, path string, params *form.Values, v interface{}) error {
	r.calls = append(r.calls, call{
		method: method,
		path:   path,
		body:   params.Encode(),
	})

	if v == nil {
		return nil
	}
	return json.Unmarshal([]byte(`{}`), v)
}

func (r *recorder) last(t *testing.T) call {
	if len(r.calls) == 0 {
		t.Fatal("expected a call to be made")
	}
	return r.calls[len(r.calls)-1]
}

func Test_CreateSubscription(t *testing.T) {
	var b recorder

	if _, err := subscription.New(context.Background(), &b, stripeapi.NewSubscriptionCreateParams("cus_ABC")); err != nil {
		t.Fatal(err)
	}

	c := b.last(t)

	if c.method != http.MethodPost {
		t.Errorf("unexpected method, expected=%q, got=%q\n", http.MethodPost, c.method)
	}

	if c.path != "/subscriptions" {
		t.Errorf("unexpected path, expected=%q, got=%q\n", "/subscriptions", c.path)
	}

	if c.body != "customer=cus_ABC" {
		t.Errorf("unexpected body, expected=%q, got=%q\n", "customer=cus_ABC", c.body)
	}
}

func Test_CreateCheckoutSession(t *testing.T) {
	params := stripeapi.NewCheckoutSessionCreateParams("https://example.com/ok", "https://example.com/cancel")
	params.Locale = stripeapi.Ptr(stripeapi.LocaleEnGB)
	params.LineItems = []*stripeapi.CheckoutSessionLineItemParams{
		stripeapi.NewCheckoutSessionLineItemParams("price_X", 2),
	}

	var b recorder

	if _, err := session.New(context.Background(), &b, params); err != nil {
		t.Fatal(err)
	}

	expected := "success_url=https%3A%2F%2Fexample.com%2Fok" +
		"&cancel_url=https%3A%2F%2Fexample.com%2Fcancel" +
		"&line_items[0][price]=price_X" +
		"&line_items[0][quantity]=2" +
		"&locale=en-GB"

	c := b.last(t)

	if c.path != "/checkout/sessions" {
		t.Errorf("unexpected path, expected=%q, got=%q\n", "/checkout/sessions", c.path)
	}

	if c.body != expected {
		t.Errorf("unexpected body, expected=%q, got=%q\n", expected, c.body)
	}
}

func Test_UpdateSubscriptionTrialEnd(t *testing.T) {
	tests := []struct {
		trialEnd *stripeapi.TrialEnd
		expected string
	}{
		{stripeapi.TrialEndNow(), "trial_end=now"},
		{stripeapi.TrialEndAt(1700000000), "trial_end=1700000000"},
	}

	for i, test := range tests {
		var b recorder

		params := &stripeapi.SubscriptionUpdateParams{
			TrialEnd: test.trialEnd,
		}

		if _, err := subscription.Update(context.Background(), &b, "sub_123", params); err != nil {
			t.Fatalf("tests[%d] - %s\n", i, err)
		}

		c := b.last(t)

		if c.path != "/subscriptions/sub_123" {
			t.Errorf("tests[%d] - unexpected path, expected=%q, got=%q\n", i, "/subscriptions/sub_123", c.path)
		}

		if c.body != test.expected {
			t.Errorf("tests[%d] - unexpected body, expected=%q, got=%q\n", i, test.expected, c.body)
		}
	}
}

func Test_DecodeList(t *testing.T) {
	body := `{
		"object": "list",
		"data": [
			{"id": "sub_1", "object": "subscription"},
			{"id": "sub_2", "object": "subscription"},
			{"id": "sub_3", "object": "subscription"}
		],
		"has_more": true,
		"url": "/v1/subscriptions"
	}`

	var l stripeapi.List[*stripeapi.Subscription]

	if err := json.Unmarshal([]byte(body), &l); err != nil {
		t.Fatal(err)
	}

	if l.Object != stripeapi.ListObjectList {
		t.Errorf("unexpected object, expected=%q, got=%q\n", stripeapi.ListObjectList, l.Object)
	}

	if len(l.Data) != 3 {
		t.Fatalf("unexpected number of items, expected=%d, got=%d\n", 3, len(l.Data))
	}

	if !l.HasMore {
		t.Errorf("expected has_more to be true\n")
	}

	if l.Data[2].ID != "sub_3" {
		t.Errorf("unexpected id, expected=%q, got=%q\n", "sub_3", l.Data[2].ID)
	}
}

func Test_DecodeSearchResult(t *testing.T) {
	body := `{"object":"search_result","data":[],"has_more":false,"next_page":null,"url":"/v1/subscriptions/search"}`

	var res stripeapi.SearchResult[*stripeapi.Subscription]

	if err := json.Unmarshal([]byte(body), &res); err != nil {
		t.Fatal(err)
	}

	if res.NextPage != nil {
		t.Errorf("expected next_page to be absent, got=%q\n", *res.NextPage)
	}

	if res.TotalCount != nil {
		t.Errorf("expected total_count to be absent, got=%d\n", *res.TotalCount)
	}

	if res.URL != "/v1/subscriptions/search" {
		t.Errorf("unexpected url, expected=%q, got=%q\n", "/v1/subscriptions/search", res.URL)
	}
}

func Test_UnknownPaymentMethodType(t *testing.T) {
	body := `{"id":"sub_123","object":"subscription","payment_settings":{"payment_method_types":["card","foo_bar"]}}`

	var sub stripeapi.Subscription

	if err := json.Unmarshal([]byte(body), &sub); err != nil {
		t.Fatal(err)
	}

	types := sub.PaymentSettings.PaymentMethodTypes

	if len(types) != 2 {
		t.Fatalf("unexpected number of types, expected=%d, got=%d\n", 2, len(types))
	}

	if types[0] != stripeapi.PaymentMethodTypeCard || !types[0].Known() {
		t.Errorf("unexpected type, expected=%q, got=%q\n", stripeapi.PaymentMethodTypeCard, types[0])
	}

	if types[1].Known() {
		t.Errorf("expected %q to be unknown\n", types[1])
	}

	if types[1].String() != "foo_bar" {
		t.Errorf("unexpected token, expected=%q, got=%q\n", "foo_bar", types[1])
	}

	params := &stripeapi.SubscriptionUpdateParams{
		PaymentSettings: &stripeapi.SubscriptionPaymentSettingsParams{
			PaymentMethodTypes: form.Set(types),
		},
	}

	var b recorder

	_, err := subscription.Update(context.Background(), &b, "sub_123", params)

	var encErr *stripeapi.EncodingError

	if !errors.As(err, &encErr) {
		t.Fatalf("expected *EncodingError, got=%T\n", err)
	}

	if encErr.Key != "payment_settings[payment_method_types][1]" {
		t.Errorf("unexpected key, expected=%q, got=%q\n", "payment_settings[payment_method_types][1]", encErr.Key)
	}

	if len(b.calls) != 0 {
		t.Errorf("unexpected number of calls, expected=%d, got=%d\n", 0, len(b.calls))
	}
}

func Test_RetrieveInvoice(t *testing.T) {
	var b recorder

	if _, err := invoice.Get(context.Background(), &b, "in_123", nil); err != nil {
		t.Fatal(err)
	}

	c := b.last(t)

	if c.method != http.MethodGet || c.path != "/invoices/in_123" {
		t.Errorf("unexpected request, expected=%q, got=%q\n", "GET /invoices/in_123", c.method+" "+c.path)
	}

	_, err := invoice.Get(context.Background(), &b, "in/123", nil)

	if !errors.Is(err, stripeapi.ErrSlashInID) {
		t.Errorf("unexpected error, expected=%q, got=%q\n", stripeapi.ErrSlashInID, err)
	}

	if len(b.calls) != 1 {
		t.Errorf("unexpected number of calls, expected=%d, got=%d\n", 1, len(b.calls))
	}
}
