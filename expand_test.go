package stripeapi

import (
	"encoding/json"
	"testing"
)

func Test_Expandable(t *testing.T) {
	tests := []struct {
		in       string
		id       string
		expanded bool
	}{
		{`{"customer":"cus_123"}`, "cus_123", false},
		{`{"customer":{"id":"cus_123","object":"customer","email":"me@example.com"}}`, "cus_123", true},
		{`{"customer":null}`, "", false},
		{`{}`, "", false},
	}

	for i, test := range tests {
		var v struct {
			Customer *Expandable[Customer] `json:"customer"`
		}

		if err := json.Unmarshal([]byte(test.in), &v); err != nil {
			t.Fatalf("tests[%d] - %s\n", i, err)
		}

		if v.Customer == nil {
			if test.id != "" {
				t.Errorf("tests[%d] - expected customer to be decoded\n", i)
			}
			continue
		}

		if v.Customer.ID != test.id {
			t.Errorf("tests[%d] - unexpected id, expected=%q, got=%q\n", i, test.id, v.Customer.ID)
		}

		if v.Customer.IsExpanded() != test.expanded {
			t.Errorf("tests[%d] - unexpected expanded, expected=%v, got=%v\n", i, test.expanded, v.Customer.IsExpanded())
		}

		if test.expanded && v.Customer.Object.ID != test.id {
			t.Errorf("tests[%d] - unexpected object id, expected=%q, got=%q\n", i, test.id, v.Customer.Object.ID)
		}
	}
}

func Test_ExpandableMarshal(t *testing.T) {
	tests := []struct {
		e        Expandable[Coupon]
		expected string
	}{
		{Expandable[Coupon]{ID: "co_123"}, `"co_123"`},
	}

	for i, test := range tests {
		b, err := json.Marshal(test.e)

		if err != nil {
			t.Fatalf("tests[%d] - %s\n", i, err)
		}

		if string(b) != test.expected {
			t.Errorf("tests[%d] - unexpected json, expected=%q, got=%q\n", i, test.expected, string(b))
		}
	}
}
