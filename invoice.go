package stripeapi

import (
	"github.com/andrewpillar/stripeapi/enum"
	"github.com/andrewpillar/stripeapi/form"
)

// InvoiceStatus is the state of an invoice in its lifecycle.
type InvoiceStatus string

const (
	InvoiceStatusDraft         InvoiceStatus = "draft"
	InvoiceStatusOpen          InvoiceStatus = "open"
	InvoiceStatusPaid          InvoiceStatus = "paid"
	InvoiceStatusUncollectible InvoiceStatus = "uncollectible"
	InvoiceStatusVoid          InvoiceStatus = "void"
)

var invoiceStatusEnum = enum.Extensible("InvoiceStatus",
	InvoiceStatusDraft,
	InvoiceStatusOpen,
	InvoiceStatusPaid,
	InvoiceStatusUncollectible,
	InvoiceStatusVoid,
)

func (i InvoiceStatus) String() string { return string(i) }

func (i InvoiceStatus) Known() bool { return invoiceStatusEnum.Known(i) }

// MarshalForm implements the form.Marshaler interface.
func (i InvoiceStatus) MarshalForm() (string, error) { return invoiceStatusEnum.Encode(i) }

func (i *InvoiceStatus) UnmarshalJSON(b []byte) error { return invoiceStatusEnum.Unmarshal(i, b) }

// ParseInvoiceStatus returns the InvoiceStatus for the given token.
func ParseInvoiceStatus(s string) (InvoiceStatus, error) { return invoiceStatusEnum.Parse(s) }

// InvoiceListStatus filters the invoices returned from a list.
type InvoiceListStatus string

const (
	InvoiceListStatusDraft         InvoiceListStatus = "draft"
	InvoiceListStatusOpen          InvoiceListStatus = "open"
	InvoiceListStatusPaid          InvoiceListStatus = "paid"
	InvoiceListStatusUncollectible InvoiceListStatus = "uncollectible"
	InvoiceListStatusVoid          InvoiceListStatus = "void"
)

var invoiceListStatusEnum = enum.New("InvoiceListStatus",
	InvoiceListStatusDraft,
	InvoiceListStatusOpen,
	InvoiceListStatusPaid,
	InvoiceListStatusUncollectible,
	InvoiceListStatusVoid,
)

func (i InvoiceListStatus) String() string { return string(i) }

func (i InvoiceListStatus) Known() bool { return invoiceListStatusEnum.Known(i) }

// MarshalForm implements the form.Marshaler interface.
func (i InvoiceListStatus) MarshalForm() (string, error) { return invoiceListStatusEnum.Encode(i) }

func (i *InvoiceListStatus) UnmarshalJSON(b []byte) error { return invoiceListStatusEnum.Unmarshal(i, b) }

// ParseInvoiceListStatus returns the InvoiceListStatus for the given token.
func ParseInvoiceListStatus(s string) (InvoiceListStatus, error) { return invoiceListStatusEnum.Parse(s) }

// InvoiceBillingReason is why an invoice was created.
type InvoiceBillingReason string

const (
	InvoiceBillingReasonAutomaticPendingInvoiceItemInvoice InvoiceBillingReason = "automatic_pending_invoice_item_invoice"
	InvoiceBillingReasonManual                             InvoiceBillingReason = "manual"
	InvoiceBillingReasonQuoteAccept                        InvoiceBillingReason = "quote_accept"
	InvoiceBillingReasonSubscription                       InvoiceBillingReason = "subscription"
	InvoiceBillingReasonSubscriptionCreate                 InvoiceBillingReason = "subscription_create"
	InvoiceBillingReasonSubscriptionCycle                  InvoiceBillingReason = "subscription_cycle"
	InvoiceBillingReasonSubscriptionThreshold              InvoiceBillingReason = "subscription_threshold"
	InvoiceBillingReasonSubscriptionUpdate                 InvoiceBillingReason = "subscription_update"
	InvoiceBillingReasonUpcoming                           InvoiceBillingReason = "upcoming"
)

var invoiceBillingReasonEnum = enum.Extensible("InvoiceBillingReason",
	InvoiceBillingReasonAutomaticPendingInvoiceItemInvoice,
	InvoiceBillingReasonManual,
	InvoiceBillingReasonQuoteAccept,
	InvoiceBillingReasonSubscription,
	InvoiceBillingReasonSubscriptionCreate,
	InvoiceBillingReasonSubscriptionCycle,
	InvoiceBillingReasonSubscriptionThreshold,
	InvoiceBillingReasonSubscriptionUpdate,
	InvoiceBillingReasonUpcoming,
)

func (i InvoiceBillingReason) String() string { return string(i) }

func (i InvoiceBillingReason) Known() bool { return invoiceBillingReasonEnum.Known(i) }

// MarshalForm implements the form.Marshaler interface.
func (i InvoiceBillingReason) MarshalForm() (string, error) { return invoiceBillingReasonEnum.Encode(i) }

func (i *InvoiceBillingReason) UnmarshalJSON(b []byte) error { return invoiceBillingReasonEnum.Unmarshal(i, b) }

// ParseInvoiceBillingReason returns the InvoiceBillingReason for the given token.
func ParseInvoiceBillingReason(s string) (InvoiceBillingReason, error) { return invoiceBillingReasonEnum.Parse(s) }

// InvoiceLineItemType is the source of a line item on an invoice.
type InvoiceLineItemType string

const (
	InvoiceLineItemTypeInvoiceitem  InvoiceLineItemType = "invoiceitem"
	InvoiceLineItemTypeSubscription InvoiceLineItemType = "subscription"
)

var invoiceLineItemTypeEnum = enum.Extensible("InvoiceLineItemType",
	InvoiceLineItemTypeInvoiceitem,
	InvoiceLineItemTypeSubscription,
)

func (i InvoiceLineItemType) String() string { return string(i) }

func (i InvoiceLineItemType) Known() bool { return invoiceLineItemTypeEnum.Known(i) }

// MarshalForm implements the form.Marshaler interface.
func (i InvoiceLineItemType) MarshalForm() (string, error) { return invoiceLineItemTypeEnum.Encode(i) }

func (i *InvoiceLineItemType) UnmarshalJSON(b []byte) error { return invoiceLineItemTypeEnum.Unmarshal(i, b) }

// ParseInvoiceLineItemType returns the InvoiceLineItemType for the given token.
func ParseInvoiceLineItemType(s string) (InvoiceLineItemType, error) { return invoiceLineItemTypeEnum.Parse(s) }

// PendingInvoiceItemsBehavior controls whether pending invoice items are
// included in a new invoice.
type PendingInvoiceItemsBehavior string

const (
	PendingInvoiceItemsBehaviorExclude PendingInvoiceItemsBehavior = "exclude"
	PendingInvoiceItemsBehaviorInclude PendingInvoiceItemsBehavior = "include"
)

var pendingInvoiceItemsBehaviorEnum = enum.New("PendingInvoiceItemsBehavior",
	PendingInvoiceItemsBehaviorExclude,
	PendingInvoiceItemsBehaviorInclude,
)

func (p PendingInvoiceItemsBehavior) String() string { return string(p) }

func (p PendingInvoiceItemsBehavior) Known() bool { return pendingInvoiceItemsBehaviorEnum.Known(p) }

// MarshalForm implements the form.Marshaler interface.
func (p PendingInvoiceItemsBehavior) MarshalForm() (string, error) { return pendingInvoiceItemsBehaviorEnum.Encode(p) }

func (p *PendingInvoiceItemsBehavior) UnmarshalJSON(b []byte) error { return pendingInvoiceItemsBehaviorEnum.Unmarshal(p, b) }

// ParsePendingInvoiceItemsBehavior returns the PendingInvoiceItemsBehavior for the given token.
func ParsePendingInvoiceItemsBehavior(s string) (PendingInvoiceItemsBehavior, error) { return pendingInvoiceItemsBehaviorEnum.Parse(s) }

// Invoice is a statement of amounts owed by a customer, created either
// manually or by a subscription.
type Invoice struct {
	ID                   string                     `json:"id"`
	Object               string                     `json:"object"`
	AccountCountry       *string                    `json:"account_country"`
	AccountName          *string                    `json:"account_name"`
	AmountDue            int64                      `json:"amount_due"`
	AmountPaid           int64                      `json:"amount_paid"`
	AmountRemaining      int64                      `json:"amount_remaining"`
	AttemptCount         int64                      `json:"attempt_count"`
	Attempted            bool                       `json:"attempted"`
	AutoAdvance          *bool                      `json:"auto_advance"`
	AutomaticTax         *AutomaticTax              `json:"automatic_tax"`
	BillingReason        *InvoiceBillingReason      `json:"billing_reason"`
	CollectionMethod     CollectionMethod           `json:"collection_method"`
	Created              Timestamp                  `json:"created"`
	Currency             Currency                   `json:"currency"`
	Customer             *Expandable[Customer]      `json:"customer"`
	CustomerEmail        *string                    `json:"customer_email"`
	CustomerName         *string                    `json:"customer_name"`
	DefaultPaymentMethod *Expandable[PaymentMethod] `json:"default_payment_method"`
	DefaultTaxRates      []*TaxRate                 `json:"default_tax_rates"`
	Description          *string                    `json:"description"`
	Discount             *Discount                  `json:"discount"`
	DueDate              *Timestamp                 `json:"due_date"`
	EndingBalance        *int64                     `json:"ending_balance"`
	Footer               *string                    `json:"footer"`
	HostedInvoiceURL     *string                    `json:"hosted_invoice_url"`
	InvoicePDF           *string                    `json:"invoice_pdf"`
	Lines                *List[*InvoiceLineItem]    `json:"lines"`
	Livemode             bool                       `json:"livemode"`
	Metadata             Metadata                   `json:"metadata"`
	Number               *string                    `json:"number"`
	Paid                 bool                       `json:"paid"`
	PaidOutOfBand        bool                       `json:"paid_out_of_band"`
	PeriodEnd            Timestamp                  `json:"period_end"`
	PeriodStart          Timestamp                  `json:"period_start"`
	StartingBalance      int64                      `json:"starting_balance"`
	Status               *InvoiceStatus             `json:"status"`
	StatusTransitions    *InvoiceStatusTransitions  `json:"status_transitions"`
	Subscription         *Expandable[Subscription]  `json:"subscription"`
	Subtotal             int64                      `json:"subtotal"`
	Tax                  *int64                     `json:"tax"`
	Total                int64                      `json:"total"`
	TotalTaxAmounts      []*InvoiceTaxAmount        `json:"total_tax_amounts"`
}

type InvoiceStatusTransitions struct {
	FinalizedAt           *Timestamp `json:"finalized_at"`
	MarkedUncollectibleAt *Timestamp `json:"marked_uncollectible_at"`
	PaidAt                *Timestamp `json:"paid_at"`
	VoidedAt              *Timestamp `json:"voided_at"`
}

type InvoiceTaxAmount struct {
	Amount    int64                `json:"amount"`
	Inclusive bool                 `json:"inclusive"`
	TaxRate   *Expandable[TaxRate] `json:"tax_rate"`
}

// InvoiceLineItem is a single line of an invoice.
type InvoiceLineItem struct {
	ID               string                 `json:"id"`
	Object           string                 `json:"object"`
	Amount           int64                  `json:"amount"`
	Currency         Currency               `json:"currency"`
	Description      *string                `json:"description"`
	Discountable     bool                   `json:"discountable"`
	InvoiceItem      *string                `json:"invoice_item"`
	Livemode         bool                   `json:"livemode"`
	Metadata         Metadata               `json:"metadata"`
	Period           *InvoiceLineItemPeriod `json:"period"`
	Price            *Price                 `json:"price"`
	Proration        bool                   `json:"proration"`
	Quantity         *int64                 `json:"quantity"`
	Subscription     *string                `json:"subscription"`
	SubscriptionItem *string                `json:"subscription_item"`
	TaxAmounts       []*InvoiceTaxAmount    `json:"tax_amounts"`
	TaxRates         []*TaxRate             `json:"tax_rates"`
	Type             InvoiceLineItemType    `json:"type"`
}

type InvoiceLineItemPeriod struct {
	End   Timestamp `json:"end"`
	Start Timestamp `json:"start"`
}

type InvoicePaymentSettingsParams struct {
	DefaultMandate       *form.Clearable[string]                 `form:"default_mandate"`
	PaymentMethodOptions *SubscriptionPaymentMethodOptionsParams `form:"payment_method_options"`
	PaymentMethodTypes   *form.Clearable[[]PaymentMethodType]    `form:"payment_method_types"`
}

// InvoiceCreateParams are the parameters for creating a draft invoice.
type InvoiceCreateParams struct {
	AutoAdvance                 *bool                         `form:"auto_advance"`
	AutomaticTax                *AutomaticTaxParams           `form:"automatic_tax"`
	CollectionMethod            *CollectionMethod             `form:"collection_method"`
	Currency                    *Currency                     `form:"currency"`
	CustomFields                []CustomFieldParams           `form:"custom_fields"`
	Customer                    *string                       `form:"customer"`
	DaysUntilDue                *int64                        `form:"days_until_due"`
	DefaultPaymentMethod        *string                       `form:"default_payment_method"`
	DefaultTaxRates             []string                      `form:"default_tax_rates"`
	Description                 *string                       `form:"description"`
	DueDate                     *Timestamp                    `form:"due_date"`
	Expand                      []string                      `form:"expand"`
	Footer                      *string                       `form:"footer"`
	Metadata                    Metadata                      `form:"metadata"`
	OnBehalfOf                  *string                       `form:"on_behalf_of"`
	PaymentSettings             *InvoicePaymentSettingsParams `form:"payment_settings"`
	PendingInvoiceItemsBehavior *PendingInvoiceItemsBehavior  `form:"pending_invoice_items_behavior"`
	Subscription                *string                       `form:"subscription"`
	TransferData                *TransferDataParams           `form:"transfer_data"`
}

// InvoiceUpdateParams are the parameters for updating an invoice. Fields that
// can be unset on the server are Clearable.
type InvoiceUpdateParams struct {
	AutoAdvance          *bool                                `form:"auto_advance"`
	AutomaticTax         *AutomaticTaxParams                  `form:"automatic_tax"`
	CollectionMethod     *CollectionMethod                    `form:"collection_method"`
	CustomFields         *form.Clearable[[]CustomFieldParams] `form:"custom_fields"`
	DaysUntilDue         *int64                               `form:"days_until_due"`
	DefaultPaymentMethod *form.Clearable[string]              `form:"default_payment_method"`
	DefaultTaxRates      *form.Clearable[[]string]            `form:"default_tax_rates"`
	Description          *form.Clearable[string]              `form:"description"`
	DueDate              *Timestamp                           `form:"due_date"`
	Expand               []string                             `form:"expand"`
	Footer               *form.Clearable[string]              `form:"footer"`
	Metadata             Metadata                             `form:"metadata"`
	OnBehalfOf           *form.Clearable[string]              `form:"on_behalf_of"`
	PaymentSettings      *InvoicePaymentSettingsParams        `form:"payment_settings"`
	TransferData         *form.Clearable[TransferDataParams]  `form:"transfer_data"`
}

// InvoiceListParams are the parameters for listing invoices.
type InvoiceListParams struct {
	ListParams

	CollectionMethod *CollectionMethod  `form:"collection_method"`
	Created          *RangeQuery        `form:"created"`
	Customer         *string            `form:"customer"`
	DueDate          *RangeQuery        `form:"due_date"`
	Status           *InvoiceListStatus `form:"status"`
	Subscription     *string            `form:"subscription"`
}

type InvoiceSearchParams struct {
	SearchParams
}

// InvoicePayParams are the parameters for attempting payment on an invoice
// outside of the normal collection schedule.
type InvoicePayParams struct {
	Expand        []string `form:"expand"`
	Forgive       *bool    `form:"forgive"`
	Mandate       *string  `form:"mandate"`
	OffSession    *bool    `form:"off_session"`
	PaidOutOfBand *bool    `form:"paid_out_of_band"`
	PaymentMethod *string  `form:"payment_method"`
	Source        *string  `form:"source"`
}

type InvoiceFinalizeParams struct {
	AutoAdvance *bool    `form:"auto_advance"`
	Expand      []string `form:"expand"`
}

type InvoiceSendParams struct {
	Expand []string `form:"expand"`
}

type InvoiceMarkUncollectibleParams struct {
	Expand []string `form:"expand"`
}

type InvoiceVoidParams struct {
	Expand []string `form:"expand"`
}

// InvoiceUpcomingParams are the parameters for previewing the upcoming
// invoice of a customer, optionally with changes to a subscription applied.
type InvoiceUpcomingParams struct {
	AutomaticTax                   *AutomaticTaxParams        `form:"automatic_tax"`
	Coupon                         *form.Clearable[string]    `form:"coupon"`
	Currency                       *Currency                  `form:"currency"`
	Customer                       *string                    `form:"customer"`
	Expand                         []string                   `form:"expand"`
	Schedule                       *string                    `form:"schedule"`
	Subscription                   *string                    `form:"subscription"`
	SubscriptionBillingCycleAnchor *BillingCycleAnchor        `form:"subscription_billing_cycle_anchor"`
	SubscriptionCancelAt           *form.Clearable[Timestamp] `form:"subscription_cancel_at"`
	SubscriptionCancelAtPeriodEnd  *bool                      `form:"subscription_cancel_at_period_end"`
	SubscriptionCancelNow          *bool                      `form:"subscription_cancel_now"`
	SubscriptionDefaultTaxRates    *form.Clearable[[]string]  `form:"subscription_default_tax_rates"`
	SubscriptionItems              []*SubscriptionItemsParams `form:"subscription_items" validate:"dive"`
	SubscriptionProrationBehavior  *ProrationBehavior         `form:"subscription_proration_behavior"`
	SubscriptionProrationDate      *Timestamp                 `form:"subscription_proration_date"`
	SubscriptionStartDate          *Timestamp                 `form:"subscription_start_date"`
	SubscriptionTrialEnd           *TrialEnd                  `form:"subscription_trial_end"`
	SubscriptionTrialFromPlan      *bool                      `form:"subscription_trial_from_plan" validate:"excluded_with=SubscriptionTrialEnd"`
}

// InvoiceUpcomingLinesParams are the parameters for listing the line items
// of an upcoming invoice. Expand is declared here so it hides the Expand of
// both embedded trees.
type InvoiceUpcomingLinesParams struct {
	ListParams
	InvoiceUpcomingParams

	Expand []string `form:"expand"`
}

type InvoiceLineItemListParams struct {
	ListParams
}

func (i *Invoice) GetID() string { return i.ID }

func (li *InvoiceLineItem) GetID() string { return li.ID }

// NewInvoiceSearchParams returns the parameters for searching invoices with
// the given query.
func NewInvoiceSearchParams(query string) *InvoiceSearchParams {
	return &InvoiceSearchParams{
		SearchParams: SearchParams{
			Query: query,
		},
	}
}
