package stripeapi

import "github.com/andrewpillar/stripeapi/enum"

// TaxType is the type of tax a tax rate applies.
type TaxType string

const (
	TaxTypeAmusementTax      TaxType = "amusement_tax"
	TaxTypeCommunicationsTax TaxType = "communications_tax"
	TaxTypeGst               TaxType = "gst"
	TaxTypeHst               TaxType = "hst"
	TaxTypeIgst              TaxType = "igst"
	TaxTypeJct               TaxType = "jct"
	TaxTypeLeaseTax          TaxType = "lease_tax"
	TaxTypePst               TaxType = "pst"
	TaxTypeQst               TaxType = "qst"
	TaxTypeRst               TaxType = "rst"
	TaxTypeSalesTax          TaxType = "sales_tax"
	TaxTypeVat               TaxType = "vat"
)

var taxTypeEnum = enum.Extensible("TaxType",
	TaxTypeAmusementTax,
	TaxTypeCommunicationsTax,
	TaxTypeGst,
	TaxTypeHst,
	TaxTypeIgst,
	TaxTypeJct,
	TaxTypeLeaseTax,
	TaxTypePst,
	TaxTypeQst,
	TaxTypeRst,
	TaxTypeSalesTax,
	TaxTypeVat,
)

func (t TaxType) String() string { return string(t) }

func (t TaxType) Known() bool { return taxTypeEnum.Known(t) }

// MarshalForm implements the form.Marshaler interface.
func (t TaxType) MarshalForm() (string, error) { return taxTypeEnum.Encode(t) }

func (t *TaxType) UnmarshalJSON(b []byte) error { return taxTypeEnum.Unmarshal(t, b) }

// ParseTaxType returns the TaxType for the given token.
func ParseTaxType(s string) (TaxType, error) { return taxTypeEnum.Parse(s) }

// AutomaticTaxStatus is the outcome of calculating tax automatically.
type AutomaticTaxStatus string

const (
	AutomaticTaxStatusComplete               AutomaticTaxStatus = "complete"
	AutomaticTaxStatusFailed                 AutomaticTaxStatus = "failed"
	AutomaticTaxStatusRequiresLocationInputs AutomaticTaxStatus = "requires_location_inputs"
)

var automaticTaxStatusEnum = enum.Extensible("AutomaticTaxStatus",
	AutomaticTaxStatusComplete,
	AutomaticTaxStatusFailed,
	AutomaticTaxStatusRequiresLocationInputs,
)

func (a AutomaticTaxStatus) String() string { return string(a) }

func (a AutomaticTaxStatus) Known() bool { return automaticTaxStatusEnum.Known(a) }

// MarshalForm implements the form.Marshaler interface.
func (a AutomaticTaxStatus) MarshalForm() (string, error) { return automaticTaxStatusEnum.Encode(a) }

func (a *AutomaticTaxStatus) UnmarshalJSON(b []byte) error { return automaticTaxStatusEnum.Unmarshal(a, b) }

// ParseAutomaticTaxStatus returns the AutomaticTaxStatus for the given token.
func ParseAutomaticTaxStatus(s string) (AutomaticTaxStatus, error) { return automaticTaxStatusEnum.Parse(s) }

// AutomaticTax is the automatic tax settings of a subscription, invoice or
// checkout session.
type AutomaticTax struct {
	Enabled bool                `json:"enabled"`
	Status  *AutomaticTaxStatus `json:"status"`
}

// TaxRate is a tax applied to invoices, subscriptions and checkout sessions
// for a given jurisdiction.
type TaxRate struct {
	ID           string    `json:"id"`
	Object       string    `json:"object"`
	Active       bool      `json:"active"`
	Country      *string   `json:"country"`
	Created      Timestamp `json:"created"`
	Description  *string   `json:"description"`
	DisplayName  string    `json:"display_name"`
	Inclusive    bool      `json:"inclusive"`
	Jurisdiction *string   `json:"jurisdiction"`
	Livemode     bool      `json:"livemode"`
	Metadata     Metadata  `json:"metadata"`
	Percentage   float64   `json:"percentage"`
	State        *string   `json:"state"`
	TaxType      *TaxType  `json:"tax_type"`
}

type TaxRateCreateParams struct {
	DisplayName  string   `form:"display_name"`
	Inclusive    bool     `form:"inclusive"`
	Percentage   float64  `form:"percentage"`
	Active       *bool    `form:"active"`
	Country      *string  `form:"country"`
	Description  *string  `form:"description"`
	Expand       []string `form:"expand"`
	Jurisdiction *string  `form:"jurisdiction"`
	Metadata     Metadata `form:"metadata"`
	State        *string  `form:"state"`
	TaxType      *TaxType `form:"tax_type"`
}

type TaxRateUpdateParams struct {
	Active       *bool    `form:"active"`
	Country      *string  `form:"country"`
	Description  *string  `form:"description"`
	DisplayName  *string  `form:"display_name"`
	Expand       []string `form:"expand"`
	Jurisdiction *string  `form:"jurisdiction"`
	Metadata     Metadata `form:"metadata"`
	State        *string  `form:"state"`
	TaxType      *TaxType `form:"tax_type"`
}

type TaxRateListParams struct {
	ListParams

	Active    *bool       `form:"active"`
	Created   *RangeQuery `form:"created"`
	Inclusive *bool       `form:"inclusive"`
}

func (tr *TaxRate) GetID() string { return tr.ID }

// NewTaxRateCreateParams returns the parameters for creating a tax rate.
func NewTaxRateCreateParams(displayName string, inclusive bool, percentage float64) *TaxRateCreateParams {
	return &TaxRateCreateParams{
		DisplayName: displayName,
		Inclusive:   inclusive,
		Percentage:  percentage,
	}
}
