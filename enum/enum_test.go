package enum

import (
	"encoding/json"
	"errors"
	"testing"
)

type interval string

type paymentMethodType string

var (
	intervals = New[interval]("Interval", "day", "week", "month", "year")

	paymentMethodTypes = Extensible[paymentMethodType]("PaymentMethodType", "card", "sepa_debit", "konbini")
)

func (i *interval) UnmarshalJSON(b []byte) error { return intervals.Unmarshal(i, b) }

func (p *paymentMethodType) UnmarshalJSON(b []byte) error { return paymentMethodTypes.Unmarshal(p, b) }

func Test_RoundTrip(t *testing.T) {
	for _, tok := range intervals.Tokens() {
		v, err := intervals.Parse(string(tok))

		if err != nil {
			t.Fatalf("unexpected error parsing %q: %s\n", tok, err)
		}

		enc, err := intervals.Encode(v)

		if err != nil {
			t.Fatalf("unexpected error encoding %q: %s\n", v, err)
		}

		if enc != string(tok) {
			t.Errorf("unexpected token, expected=%q, got=%q\n", tok, enc)
		}
	}
}

func Test_Parse(t *testing.T) {
	tests := []struct {
		tok         string
		expectedErr bool
	}{
		{"month", false},
		{"Month", true},
		{"months", true},
		{"", true},
		{" month", true},
	}

	for i, test := range tests {
		_, err := intervals.Parse(test.tok)

		if test.expectedErr {
			var tokErr *UnknownTokenError

			if !errors.As(err, &tokErr) {
				t.Errorf("tests[%d] - expected *UnknownTokenError, got=%v\n", i, err)
				continue
			}

			if tokErr.Token != test.tok || tokErr.Enum != "Interval" {
				t.Errorf("tests[%d] - unexpected error fields, got=%+v\n", i, tokErr)
			}
			continue
		}

		if err != nil {
			t.Errorf("tests[%d] - unexpected error: %s\n", i, err)
		}
	}
}

func Test_Extensible(t *testing.T) {
	var types []paymentMethodType

	if err := json.Unmarshal([]byte(`["card","foo_bar"]`), &types); err != nil {
		t.Fatal(err)
	}

	if len(types) != 2 {
		t.Fatalf("unexpected number of types, expected=%d, got=%d\n", 2, len(types))
	}

	if !paymentMethodTypes.Known(types[0]) {
		t.Errorf("expected %q to be known\n", types[0])
	}

	if paymentMethodTypes.Known(types[1]) {
		t.Errorf("expected %q to be unknown\n", types[1])
	}

	if types[1] != "foo_bar" {
		t.Errorf("expected unknown token to be retained, got=%q\n", types[1])
	}

	if _, err := paymentMethodTypes.Encode(types[1]); err == nil {
		t.Errorf("expected encoding an unknown variant to fail\n")
	}
}

func Test_Unmarshal(t *testing.T) {
	v := interval("day")

	if err := json.Unmarshal([]byte(`null`), &v); err != nil {
		t.Fatal(err)
	}

	if v != "day" {
		t.Fatalf("expected null to leave value untouched, got=%q\n", v)
	}

	var tokErr *UnknownTokenError

	if err := json.Unmarshal([]byte(`"fortnight"`), &v); !errors.As(err, &tokErr) {
		t.Fatalf("expected *UnknownTokenError, got=%v\n", err)
	}

	if err := json.Unmarshal([]byte(`12`), &v); err == nil {
		t.Fatalf("expected error decoding a number\n")
	}
}

func Test_NewPanicsOnDuplicate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected duplicate token to panic\n")
		}
	}()
	New[interval]("Interval", "day", "day")
}
