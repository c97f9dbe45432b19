package stripeapi

import (
	"github.com/andrewpillar/stripeapi/enum"
	"github.com/andrewpillar/stripeapi/form"

	"github.com/shopspring/decimal"
)

// SubscriptionStatus is the status of a subscription.
type SubscriptionStatus string

const (
	SubscriptionStatusActive            SubscriptionStatus = "active"
	SubscriptionStatusCanceled          SubscriptionStatus = "canceled"
	SubscriptionStatusIncomplete        SubscriptionStatus = "incomplete"
	SubscriptionStatusIncompleteExpired SubscriptionStatus = "incomplete_expired"
	SubscriptionStatusPastDue           SubscriptionStatus = "past_due"
	SubscriptionStatusPaused            SubscriptionStatus = "paused"
	SubscriptionStatusTrialing          SubscriptionStatus = "trialing"
	SubscriptionStatusUnpaid            SubscriptionStatus = "unpaid"
)

var subscriptionStatusEnum = enum.Extensible("SubscriptionStatus",
	SubscriptionStatusActive,
	SubscriptionStatusCanceled,
	SubscriptionStatusIncomplete,
	SubscriptionStatusIncompleteExpired,
	SubscriptionStatusPastDue,
	SubscriptionStatusPaused,
	SubscriptionStatusTrialing,
	SubscriptionStatusUnpaid,
)

func (s SubscriptionStatus) String() string { return string(s) }

func (s SubscriptionStatus) Known() bool { return subscriptionStatusEnum.Known(s) }

// MarshalForm implements the form.Marshaler interface.
func (s SubscriptionStatus) MarshalForm() (string, error) { return subscriptionStatusEnum.Encode(s) }

func (s *SubscriptionStatus) UnmarshalJSON(b []byte) error { return subscriptionStatusEnum.Unmarshal(s, b) }

// ParseSubscriptionStatus returns the SubscriptionStatus for the given token.
func ParseSubscriptionStatus(s string) (SubscriptionStatus, error) { return subscriptionStatusEnum.Parse(s) }

// SubscriptionListStatus filters the subscriptions returned from a list. The
// all and ended statuses match on more than one SubscriptionStatus.
type SubscriptionListStatus string

const (
	SubscriptionListStatusActive            SubscriptionListStatus = "active"
	SubscriptionListStatusAll               SubscriptionListStatus = "all"
	SubscriptionListStatusCanceled          SubscriptionListStatus = "canceled"
	SubscriptionListStatusEnded             SubscriptionListStatus = "ended"
	SubscriptionListStatusIncomplete        SubscriptionListStatus = "incomplete"
	SubscriptionListStatusIncompleteExpired SubscriptionListStatus = "incomplete_expired"
	SubscriptionListStatusPastDue           SubscriptionListStatus = "past_due"
	SubscriptionListStatusPaused            SubscriptionListStatus = "paused"
	SubscriptionListStatusTrialing          SubscriptionListStatus = "trialing"
	SubscriptionListStatusUnpaid            SubscriptionListStatus = "unpaid"
)

var subscriptionListStatusEnum = enum.New("SubscriptionListStatus",
	SubscriptionListStatusActive,
	SubscriptionListStatusAll,
	SubscriptionListStatusCanceled,
	SubscriptionListStatusEnded,
	SubscriptionListStatusIncomplete,
	SubscriptionListStatusIncompleteExpired,
	SubscriptionListStatusPastDue,
	SubscriptionListStatusPaused,
	SubscriptionListStatusTrialing,
	SubscriptionListStatusUnpaid,
)

func (s SubscriptionListStatus) String() string { return string(s) }

func (s SubscriptionListStatus) Known() bool { return subscriptionListStatusEnum.Known(s) }

// MarshalForm implements the form.Marshaler interface.
func (s SubscriptionListStatus) MarshalForm() (string, error) { return subscriptionListStatusEnum.Encode(s) }

func (s *SubscriptionListStatus) UnmarshalJSON(b []byte) error { return subscriptionListStatusEnum.Unmarshal(s, b) }

// ParseSubscriptionListStatus returns the SubscriptionListStatus for the given token.
func ParseSubscriptionListStatus(s string) (SubscriptionListStatus, error) { return subscriptionListStatusEnum.Parse(s) }

// CollectionMethod is how an invoice is paid, either by charging the default
// payment method or by emailing the customer.
type CollectionMethod string

const (
	CollectionMethodChargeAutomatically CollectionMethod = "charge_automatically"
	CollectionMethodSendInvoice         CollectionMethod = "send_invoice"
)

var collectionMethodEnum = enum.New("CollectionMethod",
	CollectionMethodChargeAutomatically,
	CollectionMethodSendInvoice,
)

func (c CollectionMethod) String() string { return string(c) }

func (c CollectionMethod) Known() bool { return collectionMethodEnum.Known(c) }

// MarshalForm implements the form.Marshaler interface.
func (c CollectionMethod) MarshalForm() (string, error) { return collectionMethodEnum.Encode(c) }

func (c *CollectionMethod) UnmarshalJSON(b []byte) error { return collectionMethodEnum.Unmarshal(c, b) }

// ParseCollectionMethod returns the CollectionMethod for the given token.
func ParseCollectionMethod(s string) (CollectionMethod, error) { return collectionMethodEnum.Parse(s) }

// PaymentBehavior controls how the first payment of a subscription is handled.
type PaymentBehavior string

const (
	PaymentBehaviorAllowIncomplete     PaymentBehavior = "allow_incomplete"
	PaymentBehaviorDefaultIncomplete   PaymentBehavior = "default_incomplete"
	PaymentBehaviorErrorIfIncomplete   PaymentBehavior = "error_if_incomplete"
	PaymentBehaviorPendingIfIncomplete PaymentBehavior = "pending_if_incomplete"
)

var paymentBehaviorEnum = enum.New("PaymentBehavior",
	PaymentBehaviorAllowIncomplete,
	PaymentBehaviorDefaultIncomplete,
	PaymentBehaviorErrorIfIncomplete,
	PaymentBehaviorPendingIfIncomplete,
)

func (p PaymentBehavior) String() string { return string(p) }

func (p PaymentBehavior) Known() bool { return paymentBehaviorEnum.Known(p) }

// MarshalForm implements the form.Marshaler interface.
func (p PaymentBehavior) MarshalForm() (string, error) { return paymentBehaviorEnum.Encode(p) }

func (p *PaymentBehavior) UnmarshalJSON(b []byte) error { return paymentBehaviorEnum.Unmarshal(p, b) }

// ParsePaymentBehavior returns the PaymentBehavior for the given token.
func ParsePaymentBehavior(s string) (PaymentBehavior, error) { return paymentBehaviorEnum.Parse(s) }

// ProrationBehavior controls whether prorations are created when billing
// changes.
type ProrationBehavior string

const (
	ProrationBehaviorAlwaysInvoice    ProrationBehavior = "always_invoice"
	ProrationBehaviorCreateProrations ProrationBehavior = "create_prorations"
	ProrationBehaviorNone             ProrationBehavior = "none"
)

var prorationBehaviorEnum = enum.New("ProrationBehavior",
	ProrationBehaviorAlwaysInvoice,
	ProrationBehaviorCreateProrations,
	ProrationBehaviorNone,
)

func (p ProrationBehavior) String() string { return string(p) }

func (p ProrationBehavior) Known() bool { return prorationBehaviorEnum.Known(p) }

// MarshalForm implements the form.Marshaler interface.
func (p ProrationBehavior) MarshalForm() (string, error) { return prorationBehaviorEnum.Encode(p) }

func (p *ProrationBehavior) UnmarshalJSON(b []byte) error { return prorationBehaviorEnum.Unmarshal(p, b) }

// ParseProrationBehavior returns the ProrationBehavior for the given token.
func ParseProrationBehavior(s string) (ProrationBehavior, error) { return prorationBehaviorEnum.Parse(s) }

// SubscriptionBillingCycleAnchor either resets the billing cycle to now, or
// leaves it unchanged.
type SubscriptionBillingCycleAnchor string

const (
	SubscriptionBillingCycleAnchorNow       SubscriptionBillingCycleAnchor = "now"
	SubscriptionBillingCycleAnchorUnchanged SubscriptionBillingCycleAnchor = "unchanged"
)

var subscriptionBillingCycleAnchorEnum = enum.New("SubscriptionBillingCycleAnchor",
	SubscriptionBillingCycleAnchorNow,
	SubscriptionBillingCycleAnchorUnchanged,
)

func (s SubscriptionBillingCycleAnchor) String() string { return string(s) }

func (s SubscriptionBillingCycleAnchor) Known() bool { return subscriptionBillingCycleAnchorEnum.Known(s) }

// MarshalForm implements the form.Marshaler interface.
func (s SubscriptionBillingCycleAnchor) MarshalForm() (string, error) { return subscriptionBillingCycleAnchorEnum.Encode(s) }

func (s *SubscriptionBillingCycleAnchor) UnmarshalJSON(b []byte) error { return subscriptionBillingCycleAnchorEnum.Unmarshal(s, b) }

// ParseSubscriptionBillingCycleAnchor returns the SubscriptionBillingCycleAnchor for the given token.
func ParseSubscriptionBillingCycleAnchor(s string) (SubscriptionBillingCycleAnchor, error) { return subscriptionBillingCycleAnchorEnum.Parse(s) }

// CancellationFeedback is the reason a customer gave for canceling.
type CancellationFeedback string

const (
	CancellationFeedbackCustomerService CancellationFeedback = "customer_service"
	CancellationFeedbackLowQuality      CancellationFeedback = "low_quality"
	CancellationFeedbackMissingFeatures CancellationFeedback = "missing_features"
	CancellationFeedbackOther           CancellationFeedback = "other"
	CancellationFeedbackSwitchedService CancellationFeedback = "switched_service"
	CancellationFeedbackTooComplex      CancellationFeedback = "too_complex"
	CancellationFeedbackTooExpensive    CancellationFeedback = "too_expensive"
	CancellationFeedbackUnused          CancellationFeedback = "unused"
)

var cancellationFeedbackEnum = enum.New("CancellationFeedback",
	CancellationFeedbackCustomerService,
	CancellationFeedbackLowQuality,
	CancellationFeedbackMissingFeatures,
	CancellationFeedbackOther,
	CancellationFeedbackSwitchedService,
	CancellationFeedbackTooComplex,
	CancellationFeedbackTooExpensive,
	CancellationFeedbackUnused,
)

func (c CancellationFeedback) String() string { return string(c) }

func (c CancellationFeedback) Known() bool { return cancellationFeedbackEnum.Known(c) }

// MarshalForm implements the form.Marshaler interface.
func (c CancellationFeedback) MarshalForm() (string, error) { return cancellationFeedbackEnum.Encode(c) }

func (c *CancellationFeedback) UnmarshalJSON(b []byte) error { return cancellationFeedbackEnum.Unmarshal(c, b) }

// ParseCancellationFeedback returns the CancellationFeedback for the given token.
func ParseCancellationFeedback(s string) (CancellationFeedback, error) { return cancellationFeedbackEnum.Parse(s) }

// CancellationReason is why a subscription was canceled.
type CancellationReason string

const (
	CancellationReasonCancellationRequested CancellationReason = "cancellation_requested"
	CancellationReasonPaymentDisputed       CancellationReason = "payment_disputed"
	CancellationReasonPaymentFailed         CancellationReason = "payment_failed"
)

var cancellationReasonEnum = enum.Extensible("CancellationReason",
	CancellationReasonCancellationRequested,
	CancellationReasonPaymentDisputed,
	CancellationReasonPaymentFailed,
)

func (c CancellationReason) String() string { return string(c) }

func (c CancellationReason) Known() bool { return cancellationReasonEnum.Known(c) }

// MarshalForm implements the form.Marshaler interface.
func (c CancellationReason) MarshalForm() (string, error) { return cancellationReasonEnum.Encode(c) }

func (c *CancellationReason) UnmarshalJSON(b []byte) error { return cancellationReasonEnum.Unmarshal(c, b) }

// ParseCancellationReason returns the CancellationReason for the given token.
func ParseCancellationReason(s string) (CancellationReason, error) { return cancellationReasonEnum.Parse(s) }

// MissingPaymentMethod is what happens to a subscription whose trial ends
// without a payment method.
type MissingPaymentMethod string

const (
	MissingPaymentMethodCancel        MissingPaymentMethod = "cancel"
	MissingPaymentMethodCreateInvoice MissingPaymentMethod = "create_invoice"
	MissingPaymentMethodPause         MissingPaymentMethod = "pause"
)

var missingPaymentMethodEnum = enum.New("MissingPaymentMethod",
	MissingPaymentMethodCancel,
	MissingPaymentMethodCreateInvoice,
	MissingPaymentMethodPause,
)

func (m MissingPaymentMethod) String() string { return string(m) }

func (m MissingPaymentMethod) Known() bool { return missingPaymentMethodEnum.Known(m) }

// MarshalForm implements the form.Marshaler interface.
func (m MissingPaymentMethod) MarshalForm() (string, error) { return missingPaymentMethodEnum.Encode(m) }

func (m *MissingPaymentMethod) UnmarshalJSON(b []byte) error { return missingPaymentMethodEnum.Unmarshal(m, b) }

// ParseMissingPaymentMethod returns the MissingPaymentMethod for the given token.
func ParseMissingPaymentMethod(s string) (MissingPaymentMethod, error) { return missingPaymentMethodEnum.Parse(s) }

// SaveDefaultPaymentMethod controls whether a successful payment method
// becomes the subscription default.
type SaveDefaultPaymentMethod string

const (
	SaveDefaultPaymentMethodOff            SaveDefaultPaymentMethod = "off"
	SaveDefaultPaymentMethodOnSubscription SaveDefaultPaymentMethod = "on_subscription"
)

var saveDefaultPaymentMethodEnum = enum.New("SaveDefaultPaymentMethod",
	SaveDefaultPaymentMethodOff,
	SaveDefaultPaymentMethodOnSubscription,
)

func (s SaveDefaultPaymentMethod) String() string { return string(s) }

func (s SaveDefaultPaymentMethod) Known() bool { return saveDefaultPaymentMethodEnum.Known(s) }

// MarshalForm implements the form.Marshaler interface.
func (s SaveDefaultPaymentMethod) MarshalForm() (string, error) { return saveDefaultPaymentMethodEnum.Encode(s) }

func (s *SaveDefaultPaymentMethod) UnmarshalJSON(b []byte) error { return saveDefaultPaymentMethodEnum.Unmarshal(s, b) }

// ParseSaveDefaultPaymentMethod returns the SaveDefaultPaymentMethod for the given token.
func ParseSaveDefaultPaymentMethod(s string) (SaveDefaultPaymentMethod, error) { return saveDefaultPaymentMethodEnum.Parse(s) }

// PauseCollectionBehavior is what happens to invoices created while collection
// is paused.
type PauseCollectionBehavior string

const (
	PauseCollectionBehaviorKeepAsDraft       PauseCollectionBehavior = "keep_as_draft"
	PauseCollectionBehaviorMarkUncollectible PauseCollectionBehavior = "mark_uncollectible"
	PauseCollectionBehaviorVoid              PauseCollectionBehavior = "void"
)

var pauseCollectionBehaviorEnum = enum.New("PauseCollectionBehavior",
	PauseCollectionBehaviorKeepAsDraft,
	PauseCollectionBehaviorMarkUncollectible,
	PauseCollectionBehaviorVoid,
)

func (p PauseCollectionBehavior) String() string { return string(p) }

func (p PauseCollectionBehavior) Known() bool { return pauseCollectionBehaviorEnum.Known(p) }

// MarshalForm implements the form.Marshaler interface.
func (p PauseCollectionBehavior) MarshalForm() (string, error) { return pauseCollectionBehaviorEnum.Encode(p) }

func (p *PauseCollectionBehavior) UnmarshalJSON(b []byte) error { return pauseCollectionBehaviorEnum.Unmarshal(p, b) }

// ParsePauseCollectionBehavior returns the PauseCollectionBehavior for the given token.
func ParsePauseCollectionBehavior(s string) (PauseCollectionBehavior, error) { return pauseCollectionBehaviorEnum.Parse(s) }

// RequestThreeDSecure controls when 3D Secure is requested for card payments.
type RequestThreeDSecure string

const (
	RequestThreeDSecureAny       RequestThreeDSecure = "any"
	RequestThreeDSecureAutomatic RequestThreeDSecure = "automatic"
	RequestThreeDSecureChallenge RequestThreeDSecure = "challenge"
)

var requestThreeDSecureEnum = enum.New("RequestThreeDSecure",
	RequestThreeDSecureAny,
	RequestThreeDSecureAutomatic,
	RequestThreeDSecureChallenge,
)

func (r RequestThreeDSecure) String() string { return string(r) }

func (r RequestThreeDSecure) Known() bool { return requestThreeDSecureEnum.Known(r) }

// MarshalForm implements the form.Marshaler interface.
func (r RequestThreeDSecure) MarshalForm() (string, error) { return requestThreeDSecureEnum.Encode(r) }

func (r *RequestThreeDSecure) UnmarshalJSON(b []byte) error { return requestThreeDSecureEnum.Unmarshal(r, b) }

// ParseRequestThreeDSecure returns the RequestThreeDSecure for the given token.
func ParseRequestThreeDSecure(s string) (RequestThreeDSecure, error) { return requestThreeDSecureEnum.Parse(s) }

// Subscription is a recurring charge for a customer.
type Subscription struct {
	ID                    string                         `json:"id"`
	Object                string                         `json:"object"`
	ApplicationFeePercent *float64                       `json:"application_fee_percent"`
	AutomaticTax          *AutomaticTax                  `json:"automatic_tax"`
	BillingCycleAnchor    Timestamp                      `json:"billing_cycle_anchor"`
	BillingThresholds     *SubscriptionBillingThresholds `json:"billing_thresholds"`
	CancelAt              *Timestamp                     `json:"cancel_at"`
	CancelAtPeriodEnd     bool                           `json:"cancel_at_period_end"`
	CanceledAt            *Timestamp                     `json:"canceled_at"`
	CancellationDetails   *CancellationDetails           `json:"cancellation_details"`
	CollectionMethod      CollectionMethod               `json:"collection_method"`
	Created               Timestamp                      `json:"created"`
	Currency              Currency                       `json:"currency"`
	CurrentPeriodEnd      Timestamp                      `json:"current_period_end"`
	CurrentPeriodStart    Timestamp                      `json:"current_period_start"`
	Customer              *Expandable[Customer]          `json:"customer"`
	DaysUntilDue          *int64                         `json:"days_until_due"`
	DefaultPaymentMethod  *Expandable[PaymentMethod]     `json:"default_payment_method"`
	DefaultTaxRates       []*TaxRate                     `json:"default_tax_rates"`
	Description           *string                        `json:"description"`
	Discount              *Discount                      `json:"discount"`
	EndedAt               *Timestamp                     `json:"ended_at"`
	Items                 *List[*SubscriptionItem]       `json:"items"`
	LatestInvoice         *Expandable[Invoice]           `json:"latest_invoice"`
	Livemode              bool                           `json:"livemode"`
	Metadata              Metadata                       `json:"metadata"`
	PauseCollection       *SubscriptionPauseCollection   `json:"pause_collection"`
	PaymentSettings       *SubscriptionPaymentSettings   `json:"payment_settings"`
	StartDate             Timestamp                      `json:"start_date"`
	Status                SubscriptionStatus             `json:"status"`
	TransferData          *TransferData                  `json:"transfer_data"`
	TrialEnd              *Timestamp                     `json:"trial_end"`
	TrialSettings         *SubscriptionTrialSettings     `json:"trial_settings"`
	TrialStart            *Timestamp                     `json:"trial_start"`
}

// SubscriptionItem is a single price within a subscription.
type SubscriptionItem struct {
	ID                string                             `json:"id"`
	Object            string                             `json:"object"`
	BillingThresholds *SubscriptionItemBillingThresholds `json:"billing_thresholds"`
	Created           Timestamp                          `json:"created"`
	Metadata          Metadata                           `json:"metadata"`
	Price             *Price                             `json:"price"`
	Quantity          *int64                             `json:"quantity"`
	Subscription      string                             `json:"subscription"`
	TaxRates          []*TaxRate                         `json:"tax_rates"`
}

type SubscriptionBillingThresholds struct {
	AmountGTE               *int64 `json:"amount_gte"`
	ResetBillingCycleAnchor *bool  `json:"reset_billing_cycle_anchor"`
}

type SubscriptionItemBillingThresholds struct {
	UsageGTE *int64 `json:"usage_gte"`
}

type CancellationDetails struct {
	Comment  *string               `json:"comment"`
	Feedback *CancellationFeedback `json:"feedback"`
	Reason   *CancellationReason   `json:"reason"`
}

type SubscriptionPauseCollection struct {
	Behavior  PauseCollectionBehavior `json:"behavior"`
	ResumesAt *Timestamp              `json:"resumes_at"`
}

type SubscriptionPaymentSettings struct {
	PaymentMethodTypes       []PaymentMethodType       `json:"payment_method_types"`
	SaveDefaultPaymentMethod *SaveDefaultPaymentMethod `json:"save_default_payment_method"`
}

type SubscriptionTrialSettings struct {
	EndBehavior struct {
		MissingPaymentMethod MissingPaymentMethod `json:"missing_payment_method"`
	} `json:"end_behavior"`
}

// TransferData is where the funds of a payment are transferred to, for
// payments made on behalf of a connected account.
type TransferData struct {
	AmountPercent *float64 `json:"amount_percent"`
	Destination   string   `json:"destination"`
}

type AutomaticTaxParams struct {
	Enabled bool `form:"enabled"`
}

type TransferDataParams struct {
	AmountPercent *float64 `form:"amount_percent"`
	Destination   string   `form:"destination"`
}

type SubscriptionBillingThresholdsParams struct {
	AmountGTE               *int64 `form:"amount_gte"`
	ResetBillingCycleAnchor *bool  `form:"reset_billing_cycle_anchor"`
}

type SubscriptionItemBillingThresholdsParams struct {
	UsageGTE int64 `form:"usage_gte"`
}

// SubscriptionItemPriceDataParams describes a price to create inline for a
// subscription item. Only one of UnitAmount and UnitAmountDecimal may be set.
type SubscriptionItemPriceDataParams struct {
	Currency          Currency             `form:"currency"`
	Product           string               `form:"product"`
	Recurring         PriceRecurringParams `form:"recurring"`
	TaxBehavior       *TaxBehavior         `form:"tax_behavior"`
	UnitAmount        *int64               `form:"unit_amount" validate:"excluded_with=UnitAmountDecimal"`
	UnitAmountDecimal *decimal.Decimal     `form:"unit_amount_decimal"`
}

// SubscriptionItemsParams describes an item of a subscription. On update, an
// item is matched to an existing one by ID, and removed if Deleted is set.
// Only one of Price and PriceData may be set.
type SubscriptionItemsParams struct {
	ID                *string                                                  `form:"id"`
	BillingThresholds *form.Clearable[SubscriptionItemBillingThresholdsParams] `form:"billing_thresholds"`
	ClearUsage        *bool                                                    `form:"clear_usage"`
	Deleted           *bool                                                    `form:"deleted"`
	Metadata          Metadata                                                 `form:"metadata"`
	Price             *string                                                  `form:"price" validate:"excluded_with=PriceData"`
	PriceData         *SubscriptionItemPriceDataParams                         `form:"price_data"`
	Quantity          *int64                                                   `form:"quantity"`
	TaxRates          *form.Clearable[[]string]                                `form:"tax_rates"`
}

// InvoiceItemPriceDataParams describes a one-off price to create inline for
// an invoice item. Only one of UnitAmount and UnitAmountDecimal may be set.
type InvoiceItemPriceDataParams struct {
	Currency          Currency         `form:"currency"`
	Product           string           `form:"product"`
	TaxBehavior       *TaxBehavior     `form:"tax_behavior"`
	UnitAmount        *int64           `form:"unit_amount" validate:"excluded_with=UnitAmountDecimal"`
	UnitAmountDecimal *decimal.Decimal `form:"unit_amount_decimal"`
}

// SubscriptionAddInvoiceItemParams is a one-off item added to the next
// invoice of a subscription. Only one of Price and PriceData may be set.
type SubscriptionAddInvoiceItemParams struct {
	Price     *string                     `form:"price" validate:"excluded_with=PriceData"`
	PriceData *InvoiceItemPriceDataParams `form:"price_data"`
	Quantity  *int64                      `form:"quantity"`
	TaxRates  *form.Clearable[[]string]   `form:"tax_rates"`
}

type CardPaymentMethodOptionsParams struct {
	RequestThreeDSecure *RequestThreeDSecure `form:"request_three_d_secure"`
}

type SubscriptionPaymentMethodOptionsParams struct {
	Card *form.Clearable[CardPaymentMethodOptionsParams] `form:"card"`
}

type SubscriptionPaymentSettingsParams struct {
	PaymentMethodOptions     *SubscriptionPaymentMethodOptionsParams `form:"payment_method_options"`
	PaymentMethodTypes       *form.Clearable[[]PaymentMethodType]    `form:"payment_method_types"`
	SaveDefaultPaymentMethod *SaveDefaultPaymentMethod               `form:"save_default_payment_method"`
}

type PendingInvoiceItemIntervalParams struct {
	Interval      RecurringInterval `form:"interval"`
	IntervalCount *int64            `form:"interval_count"`
}

type TrialSettingsParams struct {
	EndBehavior struct {
		MissingPaymentMethod MissingPaymentMethod `form:"missing_payment_method"`
	} `form:"end_behavior"`
}

type CancellationDetailsParams struct {
	Comment  *form.Clearable[string]               `form:"comment"`
	Feedback *form.Clearable[CancellationFeedback] `form:"feedback"`
}

type PauseCollectionParams struct {
	Behavior  PauseCollectionBehavior `form:"behavior"`
	ResumesAt *Timestamp              `form:"resumes_at"`
}

// SubscriptionCreateParams are the parameters for creating a subscription.
type SubscriptionCreateParams struct {
	Customer                   string                                               `form:"customer"`
	AddInvoiceItems            []*SubscriptionAddInvoiceItemParams                  `form:"add_invoice_items" validate:"dive"`
	ApplicationFeePercent      *float64                                             `form:"application_fee_percent"`
	AutomaticTax               *AutomaticTaxParams                                  `form:"automatic_tax"`
	BackdateStartDate          *Timestamp                                           `form:"backdate_start_date"`
	BillingCycleAnchor         *Timestamp                                           `form:"billing_cycle_anchor"`
	BillingThresholds          *form.Clearable[SubscriptionBillingThresholdsParams] `form:"billing_thresholds"`
	CancelAt                   *Timestamp                                           `form:"cancel_at"`
	CancelAtPeriodEnd          *bool                                                `form:"cancel_at_period_end"`
	CollectionMethod           *CollectionMethod                                    `form:"collection_method"`
	Coupon                     *string                                              `form:"coupon"`
	Currency                   *Currency                                            `form:"currency"`
	DaysUntilDue               *int64                                               `form:"days_until_due"`
	DefaultPaymentMethod       *string                                              `form:"default_payment_method"`
	DefaultSource              *string                                              `form:"default_source"`
	DefaultTaxRates            *form.Clearable[[]string]                            `form:"default_tax_rates"`
	Description                *string                                              `form:"description"`
	Expand                     []string                                             `form:"expand"`
	Items                      []*SubscriptionItemsParams                           `form:"items" validate:"dive"`
	Metadata                   Metadata                                             `form:"metadata"`
	OffSession                 *bool                                                `form:"off_session"`
	OnBehalfOf                 *form.Clearable[string]                              `form:"on_behalf_of"`
	PaymentBehavior            *PaymentBehavior                                     `form:"payment_behavior"`
	PaymentSettings            *SubscriptionPaymentSettingsParams                   `form:"payment_settings"`
	PendingInvoiceItemInterval *form.Clearable[PendingInvoiceItemIntervalParams]    `form:"pending_invoice_item_interval"`
	PromotionCode              *string                                              `form:"promotion_code"`
	ProrationBehavior          *ProrationBehavior                                   `form:"proration_behavior"`
	TransferData               *TransferDataParams                                  `form:"transfer_data"`
	TrialEnd                   *TrialEnd                                            `form:"trial_end"`
	TrialFromPlan              *bool                                                `form:"trial_from_plan"`
	TrialPeriodDays            *int64                                               `form:"trial_period_days"`
	TrialSettings              *TrialSettingsParams                                 `form:"trial_settings"`
}

// SubscriptionUpdateParams are the parameters for updating a subscription.
// Fields that can be unset on the server are Clearable.
type SubscriptionUpdateParams struct {
	AddInvoiceItems            []*SubscriptionAddInvoiceItemParams                  `form:"add_invoice_items" validate:"dive"`
	ApplicationFeePercent      *float64                                             `form:"application_fee_percent"`
	AutomaticTax               *AutomaticTaxParams                                  `form:"automatic_tax"`
	BillingCycleAnchor         *SubscriptionBillingCycleAnchor                      `form:"billing_cycle_anchor"`
	BillingThresholds          *form.Clearable[SubscriptionBillingThresholdsParams] `form:"billing_thresholds"`
	CancelAt                   *form.Clearable[Timestamp]                           `form:"cancel_at"`
	CancelAtPeriodEnd          *bool                                                `form:"cancel_at_period_end"`
	CancellationDetails        *CancellationDetailsParams                           `form:"cancellation_details"`
	CollectionMethod           *CollectionMethod                                    `form:"collection_method"`
	Coupon                     *form.Clearable[string]                              `form:"coupon"`
	DaysUntilDue               *int64                                               `form:"days_until_due"`
	DefaultPaymentMethod       *form.Clearable[string]                              `form:"default_payment_method"`
	DefaultSource              *form.Clearable[string]                              `form:"default_source"`
	DefaultTaxRates            *form.Clearable[[]string]                            `form:"default_tax_rates"`
	Description                *form.Clearable[string]                              `form:"description"`
	Expand                     []string                                             `form:"expand"`
	Items                      []*SubscriptionItemsParams                           `form:"items" validate:"dive"`
	Metadata                   Metadata                                             `form:"metadata"`
	OffSession                 *bool                                                `form:"off_session"`
	OnBehalfOf                 *form.Clearable[string]                              `form:"on_behalf_of"`
	PauseCollection            *form.Clearable[PauseCollectionParams]               `form:"pause_collection"`
	PaymentBehavior            *PaymentBehavior                                     `form:"payment_behavior"`
	PaymentSettings            *SubscriptionPaymentSettingsParams                   `form:"payment_settings"`
	PendingInvoiceItemInterval *form.Clearable[PendingInvoiceItemIntervalParams]    `form:"pending_invoice_item_interval"`
	PromotionCode              *form.Clearable[string]                              `form:"promotion_code"`
	ProrationBehavior          *ProrationBehavior                                   `form:"proration_behavior"`
	ProrationDate              *Timestamp                                           `form:"proration_date"`
	TransferData               *form.Clearable[TransferDataParams]                  `form:"transfer_data"`
	TrialEnd                   *TrialEnd                                            `form:"trial_end"`
	TrialFromPlan              *bool                                                `form:"trial_from_plan"`
	TrialSettings              *TrialSettingsParams                                 `form:"trial_settings"`
}

// SubscriptionListParams are the parameters for listing subscriptions.
type SubscriptionListParams struct {
	ListParams

	CollectionMethod   *CollectionMethod       `form:"collection_method"`
	Created            *RangeQuery             `form:"created"`
	CurrentPeriodEnd   *RangeQuery             `form:"current_period_end"`
	CurrentPeriodStart *RangeQuery             `form:"current_period_start"`
	Customer           *string                 `form:"customer"`
	Price              *string                 `form:"price"`
	Status             *SubscriptionListStatus `form:"status"`
	TestClock          *string                 `form:"test_clock"`
}

type SubscriptionSearchParams struct {
	SearchParams
}

// SubscriptionCancelParams are the parameters for canceling a subscription
// immediately.
type SubscriptionCancelParams struct {
	CancellationDetails *CancellationDetailsParams `form:"cancellation_details"`
	Expand              []string                   `form:"expand"`
	InvoiceNow          *bool                      `form:"invoice_now"`
	Prorate             *bool                      `form:"prorate"`
}

// SubscriptionResumeParams are the parameters for resuming a paused
// subscription.
type SubscriptionResumeParams struct {
	BillingCycleAnchor *SubscriptionBillingCycleAnchor `form:"billing_cycle_anchor"`
	Expand             []string                        `form:"expand"`
	ProrationBehavior  *ProrationBehavior              `form:"proration_behavior"`
	ProrationDate      *Timestamp                      `form:"proration_date"`
}

func (s *Subscription) GetID() string { return s.ID }

func (si *SubscriptionItem) GetID() string { return si.ID }

// NewSubscriptionCreateParams returns the parameters for creating a
// subscription for the given customer.
func NewSubscriptionCreateParams(customer string) *SubscriptionCreateParams {
	return &SubscriptionCreateParams{
		Customer: customer,
	}
}

// NewSubscriptionSearchParams returns the parameters for searching
// subscriptions with the given query.
func NewSubscriptionSearchParams(query string) *SubscriptionSearchParams {
	return &SubscriptionSearchParams{
		SearchParams: SearchParams{
			Query: query,
		},
	}
}

// NewSubscriptionItemPriceDataParams returns an inline price for a
// subscription item.
func NewSubscriptionItemPriceDataParams(currency Currency, product string, interval RecurringInterval) *SubscriptionItemPriceDataParams {
	return &SubscriptionItemPriceDataParams{
		Currency: currency,
		Product:  product,
		Recurring: PriceRecurringParams{
			Interval: interval,
		},
	}
}

// NewTransferDataParams returns transfer data for the given destination
// account.
func NewTransferDataParams(destination string) *TransferDataParams {
	return &TransferDataParams{
		Destination: destination,
	}
}
