package stripeapi

import (
	"github.com/andrewpillar/stripeapi/enum"

	"github.com/shopspring/decimal"
)

// PriceType is whether a price is charged once or on a recurring basis.
type PriceType string

const (
	PriceTypeOneTime   PriceType = "one_time"
	PriceTypeRecurring PriceType = "recurring"
)

var priceTypeEnum = enum.New("PriceType",
	PriceTypeOneTime,
	PriceTypeRecurring,
)

func (p PriceType) String() string { return string(p) }

func (p PriceType) Known() bool { return priceTypeEnum.Known(p) }

// MarshalForm implements the form.Marshaler interface.
func (p PriceType) MarshalForm() (string, error) { return priceTypeEnum.Encode(p) }

func (p *PriceType) UnmarshalJSON(b []byte) error { return priceTypeEnum.Unmarshal(p, b) }

// ParsePriceType returns the PriceType for the given token.
func ParsePriceType(s string) (PriceType, error) { return priceTypeEnum.Parse(s) }

// TaxBehavior is whether a price is inclusive or exclusive of tax.
type TaxBehavior string

const (
	TaxBehaviorExclusive   TaxBehavior = "exclusive"
	TaxBehaviorInclusive   TaxBehavior = "inclusive"
	TaxBehaviorUnspecified TaxBehavior = "unspecified"
)

var taxBehaviorEnum = enum.New("TaxBehavior",
	TaxBehaviorExclusive,
	TaxBehaviorInclusive,
	TaxBehaviorUnspecified,
)

func (t TaxBehavior) String() string { return string(t) }

func (t TaxBehavior) Known() bool { return taxBehaviorEnum.Known(t) }

// MarshalForm implements the form.Marshaler interface.
func (t TaxBehavior) MarshalForm() (string, error) { return taxBehaviorEnum.Encode(t) }

func (t *TaxBehavior) UnmarshalJSON(b []byte) error { return taxBehaviorEnum.Unmarshal(t, b) }

// ParseTaxBehavior returns the TaxBehavior for the given token.
func ParseTaxBehavior(s string) (TaxBehavior, error) { return taxBehaviorEnum.Parse(s) }

// RecurringInterval is the frequency at which a recurring price is billed.
type RecurringInterval string

const (
	RecurringIntervalDay   RecurringInterval = "day"
	RecurringIntervalMonth RecurringInterval = "month"
	RecurringIntervalWeek  RecurringInterval = "week"
	RecurringIntervalYear  RecurringInterval = "year"
)

var recurringIntervalEnum = enum.New("RecurringInterval",
	RecurringIntervalDay,
	RecurringIntervalMonth,
	RecurringIntervalWeek,
	RecurringIntervalYear,
)

func (r RecurringInterval) String() string { return string(r) }

func (r RecurringInterval) Known() bool { return recurringIntervalEnum.Known(r) }

// MarshalForm implements the form.Marshaler interface.
func (r RecurringInterval) MarshalForm() (string, error) { return recurringIntervalEnum.Encode(r) }

func (r *RecurringInterval) UnmarshalJSON(b []byte) error { return recurringIntervalEnum.Unmarshal(r, b) }

// ParseRecurringInterval returns the RecurringInterval for the given token.
func ParseRecurringInterval(s string) (RecurringInterval, error) { return recurringIntervalEnum.Parse(s) }

// BillingScheme is how the amount of a price is computed.
type BillingScheme string

const (
	BillingSchemePerUnit BillingScheme = "per_unit"
	BillingSchemeTiered  BillingScheme = "tiered"
)

var billingSchemeEnum = enum.New("BillingScheme",
	BillingSchemePerUnit,
	BillingSchemeTiered,
)

func (b BillingScheme) String() string { return string(b) }

func (b BillingScheme) Known() bool { return billingSchemeEnum.Known(b) }

// MarshalForm implements the form.Marshaler interface.
func (b BillingScheme) MarshalForm() (string, error) { return billingSchemeEnum.Encode(b) }

func (b *BillingScheme) UnmarshalJSON(b []byte) error { return billingSchemeEnum.Unmarshal(b, b) }

// ParseBillingScheme returns the BillingScheme for the given token.
func ParseBillingScheme(s string) (BillingScheme, error) { return billingSchemeEnum.Parse(s) }

// UsageType is how the quantity of a recurring price is determined.
type UsageType string

const (
	UsageTypeLicensed UsageType = "licensed"
	UsageTypeMetered  UsageType = "metered"
)

var usageTypeEnum = enum.New("UsageType",
	UsageTypeLicensed,
	UsageTypeMetered,
)

func (u UsageType) String() string { return string(u) }

func (u UsageType) Known() bool { return usageTypeEnum.Known(u) }

// MarshalForm implements the form.Marshaler interface.
func (u UsageType) MarshalForm() (string, error) { return usageTypeEnum.Encode(u) }

func (u *UsageType) UnmarshalJSON(b []byte) error { return usageTypeEnum.Unmarshal(u, b) }

// ParseUsageType returns the UsageType for the given token.
func ParseUsageType(s string) (UsageType, error) { return usageTypeEnum.Parse(s) }

// Price is the amount and cadence at which a product is charged.
type Price struct {
	ID                string               `json:"id"`
	Object            string               `json:"object"`
	Active            bool                 `json:"active"`
	BillingScheme     BillingScheme        `json:"billing_scheme"`
	Created           Timestamp            `json:"created"`
	Currency          Currency             `json:"currency"`
	Livemode          bool                 `json:"livemode"`
	LookupKey         *string              `json:"lookup_key"`
	Metadata          Metadata             `json:"metadata"`
	Nickname          *string              `json:"nickname"`
	Product           *Expandable[Product] `json:"product"`
	Recurring         *PriceRecurring      `json:"recurring"`
	TaxBehavior       *TaxBehavior         `json:"tax_behavior"`
	Type              PriceType            `json:"type"`
	UnitAmount        *int64               `json:"unit_amount"`
	UnitAmountDecimal *decimal.Decimal     `json:"unit_amount_decimal"`
}

type PriceRecurring struct {
	Interval      RecurringInterval `json:"interval"`
	IntervalCount int64             `json:"interval_count"`
	UsageType     UsageType         `json:"usage_type"`
}

// Product is a good or service that prices are attached to.
type Product struct {
	ID           string             `json:"id"`
	Object       string             `json:"object"`
	Active       bool               `json:"active"`
	Created      Timestamp          `json:"created"`
	DefaultPrice *Expandable[Price] `json:"default_price"`
	Description  *string            `json:"description"`
	Livemode     bool               `json:"livemode"`
	Metadata     Metadata           `json:"metadata"`
	Name         string             `json:"name"`
	UnitLabel    *string            `json:"unit_label"`
	Updated      Timestamp          `json:"updated"`
}

type PriceRecurringParams struct {
	Interval      RecurringInterval `form:"interval"`
	IntervalCount *int64            `form:"interval_count"`
	UsageType     *UsageType        `form:"usage_type"`
}

type PriceProductDataParams struct {
	Name                string   `form:"name"`
	Active              *bool    `form:"active"`
	Metadata            Metadata `form:"metadata"`
	StatementDescriptor *string  `form:"statement_descriptor"`
	TaxCode             *string  `form:"tax_code"`
	UnitLabel           *string  `form:"unit_label"`
}

// PriceCreateParams are the parameters for creating a price. Only one of
// Product and ProductData, and one of UnitAmount and UnitAmountDecimal, may be
// set.
type PriceCreateParams struct {
	Currency          Currency                `form:"currency"`
	Active            *bool                   `form:"active"`
	BillingScheme     *BillingScheme          `form:"billing_scheme"`
	Expand            []string                `form:"expand"`
	LookupKey         *string                 `form:"lookup_key"`
	Metadata          Metadata                `form:"metadata"`
	Nickname          *string                 `form:"nickname"`
	Product           *string                 `form:"product" validate:"excluded_with=ProductData"`
	ProductData       *PriceProductDataParams `form:"product_data"`
	Recurring         *PriceRecurringParams   `form:"recurring"`
	TaxBehavior       *TaxBehavior            `form:"tax_behavior"`
	TransferLookupKey *bool                   `form:"transfer_lookup_key"`
	UnitAmount        *int64                  `form:"unit_amount" validate:"excluded_with=UnitAmountDecimal"`
	UnitAmountDecimal *decimal.Decimal        `form:"unit_amount_decimal"`
}

type PriceUpdateParams struct {
	Active            *bool        `form:"active"`
	Expand            []string     `form:"expand"`
	LookupKey         *string      `form:"lookup_key"`
	Metadata          Metadata     `form:"metadata"`
	Nickname          *string      `form:"nickname"`
	TaxBehavior       *TaxBehavior `form:"tax_behavior"`
	TransferLookupKey *bool        `form:"transfer_lookup_key"`
}

type PriceListRecurringParams struct {
	Interval  *RecurringInterval `form:"interval"`
	UsageType *UsageType         `form:"usage_type"`
}

type PriceListParams struct {
	ListParams

	Active     *bool                     `form:"active"`
	Created    *RangeQuery               `form:"created"`
	Currency   *Currency                 `form:"currency"`
	LookupKeys []string                  `form:"lookup_keys"`
	Product    *string                   `form:"product"`
	Recurring  *PriceListRecurringParams `form:"recurring"`
	Type       *PriceType                `form:"type"`
}

type PriceSearchParams struct {
	SearchParams
}

func (p *Price) GetID() string { return p.ID }

func (p *Product) GetID() string { return p.ID }

// NewPriceCreateParams returns the parameters for creating a price in the
// given currency.
func NewPriceCreateParams(currency Currency) *PriceCreateParams {
	return &PriceCreateParams{
		Currency: currency,
	}
}

func NewPriceSearchParams(query string) *PriceSearchParams {
	return &PriceSearchParams{
		SearchParams: SearchParams{
			Query: query,
		},
	}
}
