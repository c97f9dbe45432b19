package stripeapi

import "github.com/andrewpillar/stripeapi/enum"

// PaymentMethodType is the type of a payment method. New types are added to
// the API over time, so tokens outside this list decode without error but are
// never sent.
type PaymentMethodType string

const (
	PaymentMethodTypeACHCreditTransfer  PaymentMethodType = "ach_credit_transfer"
	PaymentMethodTypeACHDebit           PaymentMethodType = "ach_debit"
	PaymentMethodTypeACSSDebit          PaymentMethodType = "acss_debit"
	PaymentMethodTypeAffirm             PaymentMethodType = "affirm"
	PaymentMethodTypeAfterpayClearpay   PaymentMethodType = "afterpay_clearpay"
	PaymentMethodTypeAlipay             PaymentMethodType = "alipay"
	PaymentMethodTypeAmazonPay          PaymentMethodType = "amazon_pay"
	PaymentMethodTypeAUBECSDebit        PaymentMethodType = "au_becs_debit"
	PaymentMethodTypeBACSDebit          PaymentMethodType = "bacs_debit"
	PaymentMethodTypeBancontact         PaymentMethodType = "bancontact"
	PaymentMethodTypeBlik               PaymentMethodType = "blik"
	PaymentMethodTypeBoleto             PaymentMethodType = "boleto"
	PaymentMethodTypeCard               PaymentMethodType = "card"
	PaymentMethodTypeCardPresent        PaymentMethodType = "card_present"
	PaymentMethodTypeCashapp            PaymentMethodType = "cashapp"
	PaymentMethodTypeCustomerBalance    PaymentMethodType = "customer_balance"
	PaymentMethodTypeEPS                PaymentMethodType = "eps"
	PaymentMethodTypeFPX                PaymentMethodType = "fpx"
	PaymentMethodTypeGiropay            PaymentMethodType = "giropay"
	PaymentMethodTypeGrabpay            PaymentMethodType = "grabpay"
	PaymentMethodTypeIdeal              PaymentMethodType = "ideal"
	PaymentMethodTypeInteracPresent     PaymentMethodType = "interac_present"
	PaymentMethodTypeKlarna             PaymentMethodType = "klarna"
	PaymentMethodTypeKonbini            PaymentMethodType = "konbini"
	PaymentMethodTypeLink               PaymentMethodType = "link"
	PaymentMethodTypeMobilepay          PaymentMethodType = "mobilepay"
	PaymentMethodTypeOxxo               PaymentMethodType = "oxxo"
	PaymentMethodTypeP24                PaymentMethodType = "p24"
	PaymentMethodTypePaynow             PaymentMethodType = "paynow"
	PaymentMethodTypePaypal             PaymentMethodType = "paypal"
	PaymentMethodTypePix                PaymentMethodType = "pix"
	PaymentMethodTypePromptpay          PaymentMethodType = "promptpay"
	PaymentMethodTypeRevolutPay         PaymentMethodType = "revolut_pay"
	PaymentMethodTypeSEPACreditTransfer PaymentMethodType = "sepa_credit_transfer"
	PaymentMethodTypeSEPADebit          PaymentMethodType = "sepa_debit"
	PaymentMethodTypeSofort             PaymentMethodType = "sofort"
	PaymentMethodTypeSwish              PaymentMethodType = "swish"
	PaymentMethodTypeUSBankAccount      PaymentMethodType = "us_bank_account"
	PaymentMethodTypeWechatPay          PaymentMethodType = "wechat_pay"
	PaymentMethodTypeZip                PaymentMethodType = "zip"
)

var paymentMethodTypeEnum = enum.Extensible("PaymentMethodType",
	PaymentMethodTypeACHCreditTransfer,
	PaymentMethodTypeACHDebit,
	PaymentMethodTypeACSSDebit,
	PaymentMethodTypeAffirm,
	PaymentMethodTypeAfterpayClearpay,
	PaymentMethodTypeAlipay,
	PaymentMethodTypeAmazonPay,
	PaymentMethodTypeAUBECSDebit,
	PaymentMethodTypeBACSDebit,
	PaymentMethodTypeBancontact,
	PaymentMethodTypeBlik,
	PaymentMethodTypeBoleto,
	PaymentMethodTypeCard,
	PaymentMethodTypeCardPresent,
	PaymentMethodTypeCashapp,
	PaymentMethodTypeCustomerBalance,
	PaymentMethodTypeEPS,
	PaymentMethodTypeFPX,
	PaymentMethodTypeGiropay,
	PaymentMethodTypeGrabpay,
	PaymentMethodTypeIdeal,
	PaymentMethodTypeInteracPresent,
	PaymentMethodTypeKlarna,
	PaymentMethodTypeKonbini,
	PaymentMethodTypeLink,
	PaymentMethodTypeMobilepay,
	PaymentMethodTypeOxxo,
	PaymentMethodTypeP24,
	PaymentMethodTypePaynow,
	PaymentMethodTypePaypal,
	PaymentMethodTypePix,
	PaymentMethodTypePromptpay,
	PaymentMethodTypeRevolutPay,
	PaymentMethodTypeSEPACreditTransfer,
	PaymentMethodTypeSEPADebit,
	PaymentMethodTypeSofort,
	PaymentMethodTypeSwish,
	PaymentMethodTypeUSBankAccount,
	PaymentMethodTypeWechatPay,
	PaymentMethodTypeZip,
)

func (p PaymentMethodType) String() string { return string(p) }

func (p PaymentMethodType) Known() bool { return paymentMethodTypeEnum.Known(p) }

// MarshalForm implements the form.Marshaler interface.
func (p PaymentMethodType) MarshalForm() (string, error) { return paymentMethodTypeEnum.Encode(p) }

func (p *PaymentMethodType) UnmarshalJSON(b []byte) error { return paymentMethodTypeEnum.Unmarshal(p, b) }

// ParsePaymentMethodType returns the PaymentMethodType for the given token.
func ParsePaymentMethodType(s string) (PaymentMethodType, error) { return paymentMethodTypeEnum.Parse(s) }

// CardBrand is the brand of a card.
type CardBrand string

const (
	CardBrandAmex       CardBrand = "amex"
	CardBrandDiners     CardBrand = "diners"
	CardBrandDiscover   CardBrand = "discover"
	CardBrandEftposAU   CardBrand = "eftpos_au"
	CardBrandJcb        CardBrand = "jcb"
	CardBrandMastercard CardBrand = "mastercard"
	CardBrandUnionpay   CardBrand = "unionpay"
	CardBrandUnknown    CardBrand = "unknown"
	CardBrandVisa       CardBrand = "visa"
)

var cardBrandEnum = enum.Extensible("CardBrand",
	CardBrandAmex,
	CardBrandDiners,
	CardBrandDiscover,
	CardBrandEftposAU,
	CardBrandJcb,
	CardBrandMastercard,
	CardBrandUnionpay,
	CardBrandUnknown,
	CardBrandVisa,
)

func (c CardBrand) String() string { return string(c) }

func (c CardBrand) Known() bool { return cardBrandEnum.Known(c) }

// MarshalForm implements the form.Marshaler interface.
func (c CardBrand) MarshalForm() (string, error) { return cardBrandEnum.Encode(c) }

func (c *CardBrand) UnmarshalJSON(b []byte) error { return cardBrandEnum.Unmarshal(c, b) }

// ParseCardBrand returns the CardBrand for the given token.
func ParseCardBrand(s string) (CardBrand, error) { return cardBrandEnum.Parse(s) }

// PaymentMethod is a means of paying, such as a card, that may be attached
// to a customer.
type PaymentMethod struct {
	ID             string                `json:"id"`
	Object         string                `json:"object"`
	BillingDetails *BillingDetails       `json:"billing_details"`
	Card           *PaymentMethodCard    `json:"card"`
	Created        Timestamp             `json:"created"`
	Customer       *Expandable[Customer] `json:"customer"`
	Livemode       bool                  `json:"livemode"`
	Metadata       Metadata              `json:"metadata"`
	Type           PaymentMethodType     `json:"type"`
}

type BillingDetails struct {
	Address *Address `json:"address"`
	Email   *string  `json:"email"`
	Name    *string  `json:"name"`
	Phone   *string  `json:"phone"`
}

type PaymentMethodCard struct {
	Brand       CardBrand `json:"brand"`
	Country     *string   `json:"country"`
	ExpMonth    int64     `json:"exp_month"`
	ExpYear     int64     `json:"exp_year"`
	Fingerprint *string   `json:"fingerprint"`
	Funding     string    `json:"funding"`
	Last4       string    `json:"last4"`
}

type BillingDetailsParams struct {
	Address *AddressParams `form:"address"`
	Email   *string        `form:"email"`
	Name    *string        `form:"name"`
	Phone   *string        `form:"phone"`
}

// PaymentMethodCardParams describes a card, either by its details or by a
// token created client side.
type PaymentMethodCardParams struct {
	CVC      *string `form:"cvc"`
	ExpMonth *int64  `form:"exp_month"`
	ExpYear  *int64  `form:"exp_year"`
	Number   *string `form:"number"`
	Token    *string `form:"token"`
}

type PaymentMethodCreateParams struct {
	Type           PaymentMethodType        `form:"type"`
	BillingDetails *BillingDetailsParams    `form:"billing_details"`
	Card           *PaymentMethodCardParams `form:"card"`
	Expand         []string                 `form:"expand"`
	Metadata       Metadata                 `form:"metadata"`
}

type PaymentMethodCardUpdateParams struct {
	ExpMonth *int64 `form:"exp_month"`
	ExpYear  *int64 `form:"exp_year"`
}

type PaymentMethodUpdateParams struct {
	BillingDetails *BillingDetailsParams          `form:"billing_details"`
	Card           *PaymentMethodCardUpdateParams `form:"card"`
	Expand         []string                       `form:"expand"`
	Metadata       Metadata                       `form:"metadata"`
}

type PaymentMethodListParams struct {
	ListParams

	Customer *string            `form:"customer"`
	Type     *PaymentMethodType `form:"type"`
}

// PaymentMethodAttachParams are the parameters for attaching a payment method
// to a customer.
type PaymentMethodAttachParams struct {
	Customer string   `form:"customer"`
	Expand   []string `form:"expand"`
}

func (pm *PaymentMethod) GetID() string { return pm.ID }

func NewPaymentMethodCreateParams(typ PaymentMethodType) *PaymentMethodCreateParams {
	return &PaymentMethodCreateParams{
		Type: typ,
	}
}

func NewPaymentMethodAttachParams(customer string) *PaymentMethodAttachParams {
	return &PaymentMethodAttachParams{
		Customer: customer,
	}
}
