package stripeapi

import (
	"github.com/andrewpillar/stripeapi/enum"
	"github.com/andrewpillar/stripeapi/form"
)

// TaxExempt is the tax exemption status of a customer.
type TaxExempt string

const (
	TaxExemptExempt  TaxExempt = "exempt"
	TaxExemptNone    TaxExempt = "none"
	TaxExemptReverse TaxExempt = "reverse"
)

var taxExemptEnum = enum.New("TaxExempt",
	TaxExemptExempt,
	TaxExemptNone,
	TaxExemptReverse,
)

func (t TaxExempt) String() string { return string(t) }

func (t TaxExempt) Known() bool { return taxExemptEnum.Known(t) }

// MarshalForm implements the form.Marshaler interface.
func (t TaxExempt) MarshalForm() (string, error) { return taxExemptEnum.Encode(t) }

func (t *TaxExempt) UnmarshalJSON(b []byte) error { return taxExemptEnum.Unmarshal(t, b) }

// ParseTaxExempt returns the TaxExempt for the given token.
func ParseTaxExempt(s string) (TaxExempt, error) { return taxExemptEnum.Parse(s) }

// Customer is a customer of the business, against which subscriptions,
// invoices and payment methods are recorded. A deleted customer is returned
// with only its ID and Deleted set.
type Customer struct {
	ID               string                   `json:"id"`
	Object           string                   `json:"object"`
	Address          *Address                 `json:"address"`
	Balance          int64                    `json:"balance"`
	Created          Timestamp                `json:"created"`
	Currency         *Currency                `json:"currency"`
	DefaultSource    *string                  `json:"default_source"`
	Deleted          bool                     `json:"deleted"`
	Delinquent       *bool                    `json:"delinquent"`
	Description      *string                  `json:"description"`
	Discount         *Discount                `json:"discount"`
	Email            *string                  `json:"email"`
	InvoicePrefix    *string                  `json:"invoice_prefix"`
	InvoiceSettings  *CustomerInvoiceSettings `json:"invoice_settings"`
	Livemode         bool                     `json:"livemode"`
	Metadata         Metadata                 `json:"metadata"`
	Name             *string                  `json:"name"`
	Phone            *string                  `json:"phone"`
	PreferredLocales []string                 `json:"preferred_locales"`
	Shipping         *Shipping                `json:"shipping"`
	TaxExempt        *TaxExempt               `json:"tax_exempt"`
	TestClock        *string                  `json:"test_clock"`
}

type Address struct {
	City       *string `json:"city"`
	Country    *string `json:"country"`
	Line1      *string `json:"line1"`
	Line2      *string `json:"line2"`
	PostalCode *string `json:"postal_code"`
	State      *string `json:"state"`
}

type Shipping struct {
	Address *Address `json:"address"`
	Name    string   `json:"name"`
	Phone   *string  `json:"phone"`
}

type CustomerInvoiceSettings struct {
	DefaultPaymentMethod *Expandable[PaymentMethod] `json:"default_payment_method"`
	Footer               *string                    `json:"footer"`
}

type AddressParams struct {
	City       *string `form:"city"`
	Country    *string `form:"country"`
	Line1      *string `form:"line1"`
	Line2      *string `form:"line2"`
	PostalCode *string `form:"postal_code"`
	State      *string `form:"state"`
}

type ShippingParams struct {
	Address AddressParams `form:"address"`
	Name    string        `form:"name"`
	Phone   *string       `form:"phone"`
}

type CustomFieldParams struct {
	Name  string `form:"name"`
	Value string `form:"value"`
}

type CustomerInvoiceSettingsParams struct {
	CustomFields         *form.Clearable[[]CustomFieldParams] `form:"custom_fields"`
	DefaultPaymentMethod *string                              `form:"default_payment_method"`
	Footer               *string                              `form:"footer"`
}

type CustomerCreateParams struct {
	Address          *form.Clearable[AddressParams]  `form:"address"`
	Balance          *int64                          `form:"balance"`
	Coupon           *string                         `form:"coupon"`
	Description      *string                         `form:"description"`
	Email            *string                         `form:"email"`
	Expand           []string                        `form:"expand"`
	InvoicePrefix    *string                         `form:"invoice_prefix"`
	InvoiceSettings  *CustomerInvoiceSettingsParams  `form:"invoice_settings"`
	Metadata         Metadata                        `form:"metadata"`
	Name             *string                         `form:"name"`
	PaymentMethod    *string                         `form:"payment_method"`
	Phone            *string                         `form:"phone"`
	PreferredLocales []string                        `form:"preferred_locales"`
	PromotionCode    *string                         `form:"promotion_code"`
	Shipping         *form.Clearable[ShippingParams] `form:"shipping"`
	TaxExempt        *form.Clearable[TaxExempt]      `form:"tax_exempt"`
	TestClock        *string                         `form:"test_clock"`
}

type CustomerUpdateParams struct {
	Address          *form.Clearable[AddressParams]  `form:"address"`
	Balance          *int64                          `form:"balance"`
	Coupon           *form.Clearable[string]         `form:"coupon"`
	DefaultSource    *string                         `form:"default_source"`
	Description      *string                         `form:"description"`
	Email            *string                         `form:"email"`
	Expand           []string                        `form:"expand"`
	InvoicePrefix    *string                         `form:"invoice_prefix"`
	InvoiceSettings  *CustomerInvoiceSettingsParams  `form:"invoice_settings"`
	Metadata         Metadata                        `form:"metadata"`
	Name             *string                         `form:"name"`
	Phone            *string                         `form:"phone"`
	PreferredLocales []string                        `form:"preferred_locales"`
	PromotionCode    *form.Clearable[string]         `form:"promotion_code"`
	Shipping         *form.Clearable[ShippingParams] `form:"shipping"`
	TaxExempt        *form.Clearable[TaxExempt]      `form:"tax_exempt"`
}

type CustomerListParams struct {
	ListParams

	Created   *RangeQuery `form:"created"`
	Email     *string     `form:"email"`
	TestClock *string     `form:"test_clock"`
}

type CustomerSearchParams struct {
	SearchParams
}

func (c *Customer) GetID() string { return c.ID }

func NewCustomerSearchParams(query string) *CustomerSearchParams {
	return &CustomerSearchParams{
		SearchParams: SearchParams{
			Query: query,
		},
	}
}
