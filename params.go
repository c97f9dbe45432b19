package stripeapi

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Metadata is a set of key/value pairs attached to an object. On update, a key
// set to the empty string is removed from the object.
type Metadata map[string]string

// RetrieveParams are the parameters for retrieving a single object.
type RetrieveParams struct {
	Expand []string `form:"expand"`
}

// DeletedResource is returned when an object is deleted.
type DeletedResource struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Deleted bool   `json:"deleted"`
}

// maxDecimalPlaces is the precision of decimal amounts accepted by the API.
const maxDecimalPlaces = 12

func Ptr[T any](v T) *T { return &v }

func String(s string) *string { return &s }

func Int64(i int64) *int64 { return &i }

func Bool(b bool) *bool { return &b }

func Float64(f float64) *float64 { return &f }

func (d *DeletedResource) GetID() string { return d.ID }

// ParseDecimalAmount parses an amount in the minor unit of a currency, such as
// 12.5 cents, for use in a unit_amount_decimal parameter. At most 12 decimal
// places are accepted.
func ParseDecimalAmount(s string) (*decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)

	if err != nil {
		return nil, err
	}

	// Trailing zeros carry no precision, so only significant places count.
	if !d.Equal(d.Truncate(maxDecimalPlaces)) {
		return nil, fmt.Errorf("stripeapi: decimal amount %s has more than %d decimal places", s, maxDecimalPlaces)
	}
	return &d, nil
}
