package stripeapi

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/andrewpillar/stripeapi/form"
)

func Test_RangeQueryForm(t *testing.T) {
	tests := []struct {
		q        *RangeQuery
		expected string
	}{
		{Exactly(1700000000), "created=1700000000"},
		{&RangeQuery{GTE: Ptr(Timestamp(100)), LT: Ptr(Timestamp(200))}, "created[gte]=100&created[lt]=200"},
		{&RangeQuery{GT: Ptr(Timestamp(1)), GTE: Ptr(Timestamp(2)), LT: Ptr(Timestamp(3)), LTE: Ptr(Timestamp(4))}, "created[gt]=1&created[gte]=2&created[lt]=3&created[lte]=4"},
		{&RangeQuery{}, ""},
		{nil, ""},
	}

	for i, test := range tests {
		params := struct {
			Created *RangeQuery `form:"created"`
		}{test.q}

		vals, err := form.Encode(params)

		if err != nil {
			t.Fatalf("tests[%d] - %s\n", i, err)
		}

		if s := vals.Encode(); s != test.expected {
			t.Errorf("tests[%d] - unexpected encoding, expected=%q, got=%q\n", i, test.expected, s)
		}
	}
}

func Test_RangeQueryAmbiguous(t *testing.T) {
	params := struct {
		Created *RangeQuery `form:"created"`
	}{
		&RangeQuery{At: Ptr(Timestamp(1)), GT: Ptr(Timestamp(0))},
	}

	_, err := form.Encode(params)

	var encErr *EncodingError

	if !errors.As(err, &encErr) {
		t.Fatalf("expected *EncodingError, got=%T\n", err)
	}

	if encErr.Key != "created" {
		t.Errorf("unexpected key, expected=%q, got=%q\n", "created", encErr.Key)
	}

	if !errors.Is(err, errRangeQueryAmbiguous) {
		t.Errorf("unexpected error, expected=%q, got=%q\n", errRangeQueryAmbiguous, err)
	}
}

func Test_RangeQueryJSON(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{`1700000000`, `1700000000`},
		{`{"gte":100,"lte":200}`, `{"gte":100,"lte":200}`},
		{`{}`, `{}`},
	}

	for i, test := range tests {
		var q RangeQuery

		if err := json.Unmarshal([]byte(test.in), &q); err != nil {
			t.Fatalf("tests[%d] - %s\n", i, err)
		}

		b, err := json.Marshal(q)

		if err != nil {
			t.Fatalf("tests[%d] - %s\n", i, err)
		}

		if string(b) != test.expected {
			t.Errorf("tests[%d] - unexpected json, expected=%q, got=%q\n", i, test.expected, string(b))
		}
	}
}

func Test_TrialEnd(t *testing.T) {
	tests := []struct {
		in   string
		now  bool
		at   Timestamp
		form string
	}{
		{`"now"`, true, 0, "now"},
		{`1700000000`, false, 1700000000, "1700000000"},
	}

	for i, test := range tests {
		var te TrialEnd

		if err := json.Unmarshal([]byte(test.in), &te); err != nil {
			t.Fatalf("tests[%d] - %s\n", i, err)
		}

		if te.IsNow() != test.now {
			t.Errorf("tests[%d] - unexpected now, expected=%v, got=%v\n", i, test.now, te.IsNow())
		}

		if at, ok := te.Timestamp(); ok && at != test.at {
			t.Errorf("tests[%d] - unexpected timestamp, expected=%d, got=%d\n", i, test.at, at)
		}

		s, err := te.MarshalForm()

		if err != nil {
			t.Fatalf("tests[%d] - %s\n", i, err)
		}

		if s != test.form {
			t.Errorf("tests[%d] - unexpected form value, expected=%q, got=%q\n", i, test.form, s)
		}

		b, err := json.Marshal(te)

		if err != nil {
			t.Fatalf("tests[%d] - %s\n", i, err)
		}

		if string(b) != test.in {
			t.Errorf("tests[%d] - unexpected json, expected=%q, got=%q\n", i, test.in, string(b))
		}
	}

	var te TrialEnd

	if err := json.Unmarshal([]byte(`"later"`), &te); err == nil {
		t.Errorf("expected error for invalid trial end\n")
	}
}

func Test_BillingCycleAnchor(t *testing.T) {
	tests := []struct {
		anchor   *BillingCycleAnchor
		expected string
	}{
		{BillingCycleAnchorOf(SubscriptionBillingCycleAnchorNow), "now"},
		{BillingCycleAnchorOf(SubscriptionBillingCycleAnchorUnchanged), "unchanged"},
		{BillingCycleAnchorAt(1700000000), "1700000000"},
	}

	for i, test := range tests {
		s, err := test.anchor.MarshalForm()

		if err != nil {
			t.Fatalf("tests[%d] - %s\n", i, err)
		}

		if s != test.expected {
			t.Errorf("tests[%d] - unexpected form value, expected=%q, got=%q\n", i, test.expected, s)
		}

		b, err := json.Marshal(test.anchor)

		if err != nil {
			t.Fatalf("tests[%d] - %s\n", i, err)
		}

		var decoded BillingCycleAnchor

		if err := json.Unmarshal(b, &decoded); err != nil {
			t.Fatalf("tests[%d] - %s\n", i, err)
		}

		if decoded != *test.anchor {
			t.Errorf("tests[%d] - unexpected anchor, expected=%+v, got=%+v\n", i, *test.anchor, decoded)
		}
	}

	var a BillingCycleAnchor

	err := json.Unmarshal([]byte(`"tomorrow"`), &a)

	var tokErr *UnknownTokenError

	if !errors.As(err, &tokErr) {
		t.Errorf("expected *UnknownTokenError, got=%T\n", err)
	}
}
