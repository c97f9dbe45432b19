package stripeapi

import (
	"testing"

	"github.com/andrewpillar/stripeapi/form"
)

func Test_ParseDecimalAmount(t *testing.T) {
	tests := []struct {
		in       string
		expected string
		fails    bool
	}{
		{"12.5", "12.5", false},
		{"0.000000000001", "0.000000000001", false},
		{"0.0000000000001", "", true},
		{"0.1000000000000", "0.1", false},
		{"12.500000000000000000", "12.5", false},
		{"0.0000000000010", "0.000000000001", false},
		{"ten", "", true},
	}

	for i, test := range tests {
		d, err := ParseDecimalAmount(test.in)

		if test.fails {
			if err == nil {
				t.Errorf("tests[%d] - expected error for %q\n", i, test.in)
			}
			continue
		}

		if err != nil {
			t.Fatalf("tests[%d] - %s\n", i, err)
		}

		if s := d.String(); s != test.expected {
			t.Errorf("tests[%d] - unexpected amount, expected=%q, got=%q\n", i, test.expected, s)
		}
	}
}

func Test_DecimalAmountForm(t *testing.T) {
	d, err := ParseDecimalAmount("12.5")

	if err != nil {
		t.Fatal(err)
	}

	params := &PriceCreateParams{
		Currency:          CurrencyUSD,
		UnitAmountDecimal: d,
	}

	vals, err := form.Encode(params)

	if err != nil {
		t.Fatal(err)
	}

	if s := vals.Encode(); s != "currency=usd&unit_amount_decimal=12.5" {
		t.Errorf("unexpected encoding, expected=%q, got=%q\n", "currency=usd&unit_amount_decimal=12.5", s)
	}
}
