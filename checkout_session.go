package stripeapi

import (
	"github.com/andrewpillar/stripeapi/enum"
	"github.com/shopspring/decimal"
)

// CheckoutSessionMode is what a checkout session collects payment for.
type CheckoutSessionMode string

const (
	CheckoutSessionModePayment      CheckoutSessionMode = "payment"
	CheckoutSessionModeSetup        CheckoutSessionMode = "setup"
	CheckoutSessionModeSubscription CheckoutSessionMode = "subscription"
)

var checkoutSessionModeEnum = enum.New("CheckoutSessionMode",
	CheckoutSessionModePayment,
	CheckoutSessionModeSetup,
	CheckoutSessionModeSubscription,
)

func (c CheckoutSessionMode) String() string { return string(c) }

func (c CheckoutSessionMode) Known() bool { return checkoutSessionModeEnum.Known(c) }

// MarshalForm implements the form.Marshaler interface.
func (c CheckoutSessionMode) MarshalForm() (string, error) { return checkoutSessionModeEnum.Encode(c) }

func (c *CheckoutSessionMode) UnmarshalJSON(b []byte) error { return checkoutSessionModeEnum.Unmarshal(c, b) }

// ParseCheckoutSessionMode returns the CheckoutSessionMode for the given token.
func ParseCheckoutSessionMode(s string) (CheckoutSessionMode, error) { return checkoutSessionModeEnum.Parse(s) }

// CheckoutSessionStatus is the state of a checkout session.
type CheckoutSessionStatus string

const (
	CheckoutSessionStatusComplete CheckoutSessionStatus = "complete"
	CheckoutSessionStatusExpired  CheckoutSessionStatus = "expired"
	CheckoutSessionStatusOpen     CheckoutSessionStatus = "open"
)

var checkoutSessionStatusEnum = enum.Extensible("CheckoutSessionStatus",
	CheckoutSessionStatusComplete,
	CheckoutSessionStatusExpired,
	CheckoutSessionStatusOpen,
)

func (c CheckoutSessionStatus) String() string { return string(c) }

func (c CheckoutSessionStatus) Known() bool { return checkoutSessionStatusEnum.Known(c) }

// MarshalForm implements the form.Marshaler interface.
func (c CheckoutSessionStatus) MarshalForm() (string, error) { return checkoutSessionStatusEnum.Encode(c) }

func (c *CheckoutSessionStatus) UnmarshalJSON(b []byte) error { return checkoutSessionStatusEnum.Unmarshal(c, b) }

// ParseCheckoutSessionStatus returns the CheckoutSessionStatus for the given token.
func ParseCheckoutSessionStatus(s string) (CheckoutSessionStatus, error) { return checkoutSessionStatusEnum.Parse(s) }

// CheckoutSessionPaymentStatus is whether the payment of a checkout session
// has been collected.
type CheckoutSessionPaymentStatus string

const (
	CheckoutSessionPaymentStatusNoPaymentRequired CheckoutSessionPaymentStatus = "no_payment_required"
	CheckoutSessionPaymentStatusPaid              CheckoutSessionPaymentStatus = "paid"
	CheckoutSessionPaymentStatusUnpaid            CheckoutSessionPaymentStatus = "unpaid"
)

var checkoutSessionPaymentStatusEnum = enum.Extensible("CheckoutSessionPaymentStatus",
	CheckoutSessionPaymentStatusNoPaymentRequired,
	CheckoutSessionPaymentStatusPaid,
	CheckoutSessionPaymentStatusUnpaid,
)

func (c CheckoutSessionPaymentStatus) String() string { return string(c) }

func (c CheckoutSessionPaymentStatus) Known() bool { return checkoutSessionPaymentStatusEnum.Known(c) }

// MarshalForm implements the form.Marshaler interface.
func (c CheckoutSessionPaymentStatus) MarshalForm() (string, error) { return checkoutSessionPaymentStatusEnum.Encode(c) }

func (c *CheckoutSessionPaymentStatus) UnmarshalJSON(b []byte) error { return checkoutSessionPaymentStatusEnum.Unmarshal(c, b) }

// ParseCheckoutSessionPaymentStatus returns the CheckoutSessionPaymentStatus for the given token.
func ParseCheckoutSessionPaymentStatus(s string) (CheckoutSessionPaymentStatus, error) { return checkoutSessionPaymentStatusEnum.Parse(s) }

// Locale is the language a checkout page is displayed in. Some tokens carry a
// region, such as en-GB.
type Locale string

const (
	LocaleAuto  Locale = "auto"
	LocaleBg    Locale = "bg"
	LocaleCs    Locale = "cs"
	LocaleDa    Locale = "da"
	LocaleDe    Locale = "de"
	LocaleEl    Locale = "el"
	LocaleEn    Locale = "en"
	LocaleEnGB  Locale = "en-GB"
	LocaleEs    Locale = "es"
	LocaleEs419 Locale = "es-419"
	LocaleEt    Locale = "et"
	LocaleFi    Locale = "fi"
	LocaleFil   Locale = "fil"
	LocaleFr    Locale = "fr"
	LocaleFrCA  Locale = "fr-CA"
	LocaleHr    Locale = "hr"
	LocaleHu    Locale = "hu"
	LocaleID    Locale = "id"
	LocaleIt    Locale = "it"
	LocaleJa    Locale = "ja"
	LocaleKo    Locale = "ko"
	LocaleLt    Locale = "lt"
	LocaleLv    Locale = "lv"
	LocaleMs    Locale = "ms"
	LocaleMt    Locale = "mt"
	LocaleNb    Locale = "nb"
	LocaleNl    Locale = "nl"
	LocalePl    Locale = "pl"
	LocalePt    Locale = "pt"
	LocalePtBR  Locale = "pt-BR"
	LocaleRo    Locale = "ro"
	LocaleRu    Locale = "ru"
	LocaleSk    Locale = "sk"
	LocaleSl    Locale = "sl"
	LocaleSv    Locale = "sv"
	LocaleTh    Locale = "th"
	LocaleTr    Locale = "tr"
	LocaleVi    Locale = "vi"
	LocaleZh    Locale = "zh"
	LocaleZhHK  Locale = "zh-HK"
	LocaleZhTW  Locale = "zh-TW"
)

var localeEnum = enum.New("Locale",
	LocaleAuto,
	LocaleBg,
	LocaleCs,
	LocaleDa,
	LocaleDe,
	LocaleEl,
	LocaleEn,
	LocaleEnGB,
	LocaleEs,
	LocaleEs419,
	LocaleEt,
	LocaleFi,
	LocaleFil,
	LocaleFr,
	LocaleFrCA,
	LocaleHr,
	LocaleHu,
	LocaleID,
	LocaleIt,
	LocaleJa,
	LocaleKo,
	LocaleLt,
	LocaleLv,
	LocaleMs,
	LocaleMt,
	LocaleNb,
	LocaleNl,
	LocalePl,
	LocalePt,
	LocalePtBR,
	LocaleRo,
	LocaleRu,
	LocaleSk,
	LocaleSl,
	LocaleSv,
	LocaleTh,
	LocaleTr,
	LocaleVi,
	LocaleZh,
	LocaleZhHK,
	LocaleZhTW,
)

func (l Locale) String() string { return string(l) }

func (l Locale) Known() bool { return localeEnum.Known(l) }

// MarshalForm implements the form.Marshaler interface.
func (l Locale) MarshalForm() (string, error) { return localeEnum.Encode(l) }

func (l *Locale) UnmarshalJSON(b []byte) error { return localeEnum.Unmarshal(l, b) }

// ParseLocale returns the Locale for the given token.
func ParseLocale(s string) (Locale, error) { return localeEnum.Parse(s) }

// BillingAddressCollection controls whether a checkout page collects the
// billing address of a customer.
type BillingAddressCollection string

const (
	BillingAddressCollectionAuto     BillingAddressCollection = "auto"
	BillingAddressCollectionRequired BillingAddressCollection = "required"
)

var billingAddressCollectionEnum = enum.New("BillingAddressCollection",
	BillingAddressCollectionAuto,
	BillingAddressCollectionRequired,
)

func (b BillingAddressCollection) String() string { return string(b) }

func (b BillingAddressCollection) Known() bool { return billingAddressCollectionEnum.Known(b) }

// MarshalForm implements the form.Marshaler interface.
func (b BillingAddressCollection) MarshalForm() (string, error) { return billingAddressCollectionEnum.Encode(b) }

func (b *BillingAddressCollection) UnmarshalJSON(b []byte) error { return billingAddressCollectionEnum.Unmarshal(b, b) }

// ParseBillingAddressCollection returns the BillingAddressCollection for the given token.
func ParseBillingAddressCollection(s string) (BillingAddressCollection, error) { return billingAddressCollectionEnum.Parse(s) }

// SubmitType is the text of the submit button on a checkout page.
type SubmitType string

const (
	SubmitTypeAuto   SubmitType = "auto"
	SubmitTypeBook   SubmitType = "book"
	SubmitTypeDonate SubmitType = "donate"
	SubmitTypePay    SubmitType = "pay"
)

var submitTypeEnum = enum.New("SubmitType",
	SubmitTypeAuto,
	SubmitTypeBook,
	SubmitTypeDonate,
	SubmitTypePay,
)

func (s SubmitType) String() string { return string(s) }

func (s SubmitType) Known() bool { return submitTypeEnum.Known(s) }

// MarshalForm implements the form.Marshaler interface.
func (s SubmitType) MarshalForm() (string, error) { return submitTypeEnum.Encode(s) }

func (s *SubmitType) UnmarshalJSON(b []byte) error { return submitTypeEnum.Unmarshal(s, b) }

// ParseSubmitType returns the SubmitType for the given token.
func ParseSubmitType(s string) (SubmitType, error) { return submitTypeEnum.Parse(s) }

// CustomerCreation controls when a checkout session creates a customer.
type CustomerCreation string

const (
	CustomerCreationAlways     CustomerCreation = "always"
	CustomerCreationIfRequired CustomerCreation = "if_required"
)

var customerCreationEnum = enum.New("CustomerCreation",
	CustomerCreationAlways,
	CustomerCreationIfRequired,
)

func (c CustomerCreation) String() string { return string(c) }

func (c CustomerCreation) Known() bool { return customerCreationEnum.Known(c) }

// MarshalForm implements the form.Marshaler interface.
func (c CustomerCreation) MarshalForm() (string, error) { return customerCreationEnum.Encode(c) }

func (c *CustomerCreation) UnmarshalJSON(b []byte) error { return customerCreationEnum.Unmarshal(c, b) }

// ParseCustomerCreation returns the CustomerCreation for the given token.
func ParseCustomerCreation(s string) (CustomerCreation, error) { return customerCreationEnum.Parse(s) }

// CustomerUpdateBehavior controls whether details collected by a checkout
// session are saved to the customer.
type CustomerUpdateBehavior string

const (
	CustomerUpdateBehaviorAuto  CustomerUpdateBehavior = "auto"
	CustomerUpdateBehaviorNever CustomerUpdateBehavior = "never"
)

var customerUpdateBehaviorEnum = enum.New("CustomerUpdateBehavior",
	CustomerUpdateBehaviorAuto,
	CustomerUpdateBehaviorNever,
)

func (c CustomerUpdateBehavior) String() string { return string(c) }

func (c CustomerUpdateBehavior) Known() bool { return customerUpdateBehaviorEnum.Known(c) }

// MarshalForm implements the form.Marshaler interface.
func (c CustomerUpdateBehavior) MarshalForm() (string, error) { return customerUpdateBehaviorEnum.Encode(c) }

func (c *CustomerUpdateBehavior) UnmarshalJSON(b []byte) error { return customerUpdateBehaviorEnum.Unmarshal(c, b) }

// ParseCustomerUpdateBehavior returns the CustomerUpdateBehavior for the given token.
func ParseCustomerUpdateBehavior(s string) (CustomerUpdateBehavior, error) { return customerUpdateBehaviorEnum.Parse(s) }

// SetupFutureUsage is how a payment method is intended to be used in the
// future.
type SetupFutureUsage string

const (
	SetupFutureUsageNone       SetupFutureUsage = "none"
	SetupFutureUsageOffSession SetupFutureUsage = "off_session"
	SetupFutureUsageOnSession  SetupFutureUsage = "on_session"
)

var setupFutureUsageEnum = enum.New("SetupFutureUsage",
	SetupFutureUsageNone,
	SetupFutureUsageOffSession,
	SetupFutureUsageOnSession,
)

func (s SetupFutureUsage) String() string { return string(s) }

func (s SetupFutureUsage) Known() bool { return setupFutureUsageEnum.Known(s) }

// MarshalForm implements the form.Marshaler interface.
func (s SetupFutureUsage) MarshalForm() (string, error) { return setupFutureUsageEnum.Encode(s) }

func (s *SetupFutureUsage) UnmarshalJSON(b []byte) error { return setupFutureUsageEnum.Unmarshal(s, b) }

// ParseSetupFutureUsage returns the SetupFutureUsage for the given token.
func ParseSetupFutureUsage(s string) (SetupFutureUsage, error) { return setupFutureUsageEnum.Parse(s) }

// CaptureMethod is when the funds of a payment are captured.
type CaptureMethod string

const (
	CaptureMethodAutomatic      CaptureMethod = "automatic"
	CaptureMethodAutomaticAsync CaptureMethod = "automatic_async"
	CaptureMethodManual         CaptureMethod = "manual"
)

var captureMethodEnum = enum.New("CaptureMethod",
	CaptureMethodAutomatic,
	CaptureMethodAutomaticAsync,
	CaptureMethodManual,
)

func (c CaptureMethod) String() string { return string(c) }

func (c CaptureMethod) Known() bool { return captureMethodEnum.Known(c) }

// MarshalForm implements the form.Marshaler interface.
func (c CaptureMethod) MarshalForm() (string, error) { return captureMethodEnum.Encode(c) }

func (c *CaptureMethod) UnmarshalJSON(b []byte) error { return captureMethodEnum.Unmarshal(c, b) }

// ParseCaptureMethod returns the CaptureMethod for the given token.
func ParseCaptureMethod(s string) (CaptureMethod, error) { return captureMethodEnum.Parse(s) }

// CheckoutSession is a hosted payment page for a customer, created once per
// payment attempt.
type CheckoutSession struct {
	ID                        string                          `json:"id"`
	Object                    string                          `json:"object"`
	AllowPromotionCodes       *bool                           `json:"allow_promotion_codes"`
	AmountSubtotal            *int64                          `json:"amount_subtotal"`
	AmountTotal               *int64                          `json:"amount_total"`
	AutomaticTax              *AutomaticTax                   `json:"automatic_tax"`
	BillingAddressCollection  *BillingAddressCollection       `json:"billing_address_collection"`
	CancelURL                 *string                         `json:"cancel_url"`
	ClientReferenceID         *string                         `json:"client_reference_id"`
	Created                   Timestamp                       `json:"created"`
	Currency                  *Currency                       `json:"currency"`
	Customer                  *Expandable[Customer]           `json:"customer"`
	CustomerCreation          *CustomerCreation               `json:"customer_creation"`
	CustomerDetails           *CheckoutSessionCustomerDetails `json:"customer_details"`
	CustomerEmail             *string                         `json:"customer_email"`
	ExpiresAt                 Timestamp                       `json:"expires_at"`
	Invoice                   *Expandable[Invoice]            `json:"invoice"`
	LineItems                 *List[*LineItem]                `json:"line_items"`
	Livemode                  bool                            `json:"livemode"`
	Locale                    *Locale                         `json:"locale"`
	Metadata                  Metadata                        `json:"metadata"`
	Mode                      CheckoutSessionMode             `json:"mode"`
	PaymentMethodTypes        []PaymentMethodType             `json:"payment_method_types"`
	PaymentStatus             CheckoutSessionPaymentStatus    `json:"payment_status"`
	ShippingAddressCollection *ShippingAddressCollection      `json:"shipping_address_collection"`
	Status                    *CheckoutSessionStatus          `json:"status"`
	SubmitType                *SubmitType                     `json:"submit_type"`
	Subscription              *Expandable[Subscription]       `json:"subscription"`
	SuccessURL                *string                         `json:"success_url"`
	TotalDetails              *CheckoutSessionTotalDetails    `json:"total_details"`
	URL                       *string                         `json:"url"`
}

type CheckoutSessionCustomerDetails struct {
	Address   *Address   `json:"address"`
	Email     *string    `json:"email"`
	Name      *string    `json:"name"`
	Phone     *string    `json:"phone"`
	TaxExempt *TaxExempt `json:"tax_exempt"`
}

type CheckoutSessionTotalDetails struct {
	AmountDiscount int64  `json:"amount_discount"`
	AmountShipping *int64 `json:"amount_shipping"`
	AmountTax      int64  `json:"amount_tax"`
}

type ShippingAddressCollection struct {
	AllowedCountries []Country `json:"allowed_countries"`
}

// LineItem is a single item purchased through a checkout session.
type LineItem struct {
	ID             string   `json:"id"`
	Object         string   `json:"object"`
	AmountDiscount int64    `json:"amount_discount"`
	AmountSubtotal int64    `json:"amount_subtotal"`
	AmountTax      int64    `json:"amount_tax"`
	AmountTotal    int64    `json:"amount_total"`
	Currency       Currency `json:"currency"`
	Description    string   `json:"description"`
	Price          *Price   `json:"price"`
	Quantity       *int64   `json:"quantity"`
}

type CheckoutSessionProductDataParams struct {
	Name        string   `form:"name"`
	Description *string  `form:"description"`
	Images      []string `form:"images"`
	Metadata    Metadata `form:"metadata"`
}

// CheckoutSessionPriceDataParams describes a price to create inline for a
// line item. Only one of Product and ProductData, and one of UnitAmount and
// UnitAmountDecimal may be set.
type CheckoutSessionPriceDataParams struct {
	Currency          Currency                          `form:"currency"`
	Product           *string                           `form:"product" validate:"excluded_with=ProductData"`
	ProductData       *CheckoutSessionProductDataParams `form:"product_data"`
	Recurring         *PriceRecurringParams             `form:"recurring"`
	TaxBehavior       *TaxBehavior                      `form:"tax_behavior"`
	UnitAmount        *int64                            `form:"unit_amount" validate:"excluded_with=UnitAmountDecimal"`
	UnitAmountDecimal *decimal.Decimal                  `form:"unit_amount_decimal"`
}

type AdjustableQuantityParams struct {
	Enabled bool   `form:"enabled"`
	Maximum *int64 `form:"maximum"`
	Minimum *int64 `form:"minimum"`
}

// CheckoutSessionLineItemParams is a single item to purchase. Only one of
// Price and PriceData may be set.
type CheckoutSessionLineItemParams struct {
	AdjustableQuantity *AdjustableQuantityParams       `form:"adjustable_quantity"`
	DynamicTaxRates    []string                        `form:"dynamic_tax_rates"`
	Price              *string                         `form:"price" validate:"excluded_with=PriceData"`
	PriceData          *CheckoutSessionPriceDataParams `form:"price_data"`
	Quantity           *int64                          `form:"quantity"`
	TaxRates           []string                        `form:"tax_rates"`
}

type CheckoutSessionDiscountParams struct {
	Coupon        *string `form:"coupon"`
	PromotionCode *string `form:"promotion_code"`
}

type CheckoutSessionCustomerUpdateParams struct {
	Address  *CustomerUpdateBehavior `form:"address"`
	Name     *CustomerUpdateBehavior `form:"name"`
	Shipping *CustomerUpdateBehavior `form:"shipping"`
}

type PaymentIntentTransferDataParams struct {
	Amount      *int64 `form:"amount"`
	Destination string `form:"destination"`
}

type CheckoutSessionPaymentIntentDataParams struct {
	ApplicationFeeAmount      *int64                           `form:"application_fee_amount"`
	CaptureMethod             *CaptureMethod                   `form:"capture_method"`
	Description               *string                          `form:"description"`
	Metadata                  Metadata                         `form:"metadata"`
	OnBehalfOf                *string                          `form:"on_behalf_of"`
	ReceiptEmail              *string                          `form:"receipt_email"`
	SetupFutureUsage          *SetupFutureUsage                `form:"setup_future_usage"`
	Shipping                  *ShippingParams                  `form:"shipping"`
	StatementDescriptor       *string                          `form:"statement_descriptor"`
	StatementDescriptorSuffix *string                          `form:"statement_descriptor_suffix"`
	TransferData              *PaymentIntentTransferDataParams `form:"transfer_data"`
	TransferGroup             *string                          `form:"transfer_group"`
}

// VoucherPaymentMethodOptionsParams configures a payment method paid by a
// voucher, such as konbini or OXXO, that expires some days after creation.
type VoucherPaymentMethodOptionsParams struct {
	ExpiresAfterDays *int64            `form:"expires_after_days"`
	SetupFutureUsage *SetupFutureUsage `form:"setup_future_usage"`
}

type CheckoutSessionPaymentMethodOptionsParams struct {
	Boleto  *VoucherPaymentMethodOptionsParams `form:"boleto"`
	Konbini *VoucherPaymentMethodOptionsParams `form:"konbini"`
	OXXO    *VoucherPaymentMethodOptionsParams `form:"oxxo"`
}

type ShippingAddressCollectionParams struct {
	AllowedCountries []Country `form:"allowed_countries"`
}

type CheckoutSessionSubscriptionDataParams struct {
	ApplicationFeePercent *float64             `form:"application_fee_percent"`
	BillingCycleAnchor    *Timestamp           `form:"billing_cycle_anchor"`
	DefaultTaxRates       []string             `form:"default_tax_rates"`
	Description           *string              `form:"description"`
	Metadata              Metadata             `form:"metadata"`
	OnBehalfOf            *string              `form:"on_behalf_of"`
	ProrationBehavior     *ProrationBehavior   `form:"proration_behavior"`
	TransferData          *TransferDataParams  `form:"transfer_data"`
	TrialEnd              *Timestamp           `form:"trial_end"`
	TrialPeriodDays       *int64               `form:"trial_period_days"`
	TrialSettings         *TrialSettingsParams `form:"trial_settings"`
}

type TaxIDCollectionParams struct {
	Enabled bool `form:"enabled"`
}

// CheckoutSessionCreateParams are the parameters for creating a checkout
// session. The customer is sent to SuccessURL once payment completes, and to
// CancelURL if they leave the page.
type CheckoutSessionCreateParams struct {
	SuccessURL                string                                     `form:"success_url"`
	CancelURL                 string                                     `form:"cancel_url"`
	AllowPromotionCodes       *bool                                      `form:"allow_promotion_codes"`
	AutomaticTax              *AutomaticTaxParams                        `form:"automatic_tax"`
	BillingAddressCollection  *BillingAddressCollection                  `form:"billing_address_collection"`
	ClientReferenceID         *string                                    `form:"client_reference_id"`
	Currency                  *Currency                                  `form:"currency"`
	Customer                  *string                                    `form:"customer"`
	CustomerCreation          *CustomerCreation                          `form:"customer_creation"`
	CustomerEmail             *string                                    `form:"customer_email"`
	CustomerUpdate            *CheckoutSessionCustomerUpdateParams       `form:"customer_update"`
	Discounts                 []*CheckoutSessionDiscountParams           `form:"discounts"`
	Expand                    []string                                   `form:"expand"`
	ExpiresAt                 *Timestamp                                 `form:"expires_at"`
	LineItems                 []*CheckoutSessionLineItemParams           `form:"line_items" validate:"dive"`
	Locale                    *Locale                                    `form:"locale"`
	Metadata                  Metadata                                   `form:"metadata"`
	Mode                      *CheckoutSessionMode                       `form:"mode"`
	PaymentIntentData         *CheckoutSessionPaymentIntentDataParams    `form:"payment_intent_data"`
	PaymentMethodOptions      *CheckoutSessionPaymentMethodOptionsParams `form:"payment_method_options"`
	PaymentMethodTypes        []PaymentMethodType                        `form:"payment_method_types"`
	ShippingAddressCollection *ShippingAddressCollectionParams           `form:"shipping_address_collection"`
	SubmitType                *SubmitType                                `form:"submit_type"`
	SubscriptionData          *CheckoutSessionSubscriptionDataParams     `form:"subscription_data"`
	TaxIDCollection           *TaxIDCollectionParams                     `form:"tax_id_collection"`
}

// CheckoutSessionListParams are the parameters for listing checkout sessions.
type CheckoutSessionListParams struct {
	ListParams

	Created       *RangeQuery            `form:"created"`
	Customer      *string                `form:"customer"`
	PaymentIntent *string                `form:"payment_intent"`
	Status        *CheckoutSessionStatus `form:"status"`
	Subscription  *string                `form:"subscription"`
}

type CheckoutSessionExpireParams struct {
	Expand []string `form:"expand"`
}

type LineItemListParams struct {
	ListParams
}

func (cs *CheckoutSession) GetID() string { return cs.ID }

func (li *LineItem) GetID() string { return li.ID }

// NewCheckoutSessionCreateParams returns the parameters for creating a
// checkout session that redirects to the given URLs.
func NewCheckoutSessionCreateParams(successURL, cancelURL string) *CheckoutSessionCreateParams {
	return &CheckoutSessionCreateParams{
		SuccessURL: successURL,
		CancelURL:  cancelURL,
	}
}

// NewCheckoutSessionLineItemParams returns a line item for the given quantity
// of an existing price.
func NewCheckoutSessionLineItemParams(price string, quantity int64) *CheckoutSessionLineItemParams {
	return &CheckoutSessionLineItemParams{
		Price:    &price,
		Quantity: &quantity,
	}
}
