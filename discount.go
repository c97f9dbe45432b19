package stripeapi

import "github.com/andrewpillar/stripeapi/enum"

// CouponDuration is how long a coupon applies once redeemed.
type CouponDuration string

const (
	CouponDurationForever   CouponDuration = "forever"
	CouponDurationOnce      CouponDuration = "once"
	CouponDurationRepeating CouponDuration = "repeating"
)

var couponDurationEnum = enum.New("CouponDuration",
	CouponDurationForever,
	CouponDurationOnce,
	CouponDurationRepeating,
)

func (c CouponDuration) String() string { return string(c) }

func (c CouponDuration) Known() bool { return couponDurationEnum.Known(c) }

// MarshalForm implements the form.Marshaler interface.
func (c CouponDuration) MarshalForm() (string, error) { return couponDurationEnum.Encode(c) }

func (c *CouponDuration) UnmarshalJSON(b []byte) error { return couponDurationEnum.Unmarshal(c, b) }

// ParseCouponDuration returns the CouponDuration for the given token.
func ParseCouponDuration(s string) (CouponDuration, error) { return couponDurationEnum.Parse(s) }

// Discount is a coupon applied to a customer or a subscription.
type Discount struct {
	ID            string                `json:"id"`
	Object        string                `json:"object"`
	Coupon        *Coupon               `json:"coupon"`
	Customer      *Expandable[Customer] `json:"customer"`
	End           *Timestamp            `json:"end"`
	Invoice       *string               `json:"invoice"`
	InvoiceItem   *string               `json:"invoice_item"`
	PromotionCode *string               `json:"promotion_code"`
	Start         Timestamp             `json:"start"`
	Subscription  *string               `json:"subscription"`
}

// Coupon is a fixed or percentage reduction applied through a Discount.
type Coupon struct {
	ID               string         `json:"id"`
	Object           string         `json:"object"`
	AmountOff        *int64         `json:"amount_off"`
	Created          Timestamp      `json:"created"`
	Currency         *Currency      `json:"currency"`
	Duration         CouponDuration `json:"duration"`
	DurationInMonths *int64         `json:"duration_in_months"`
	Livemode         bool           `json:"livemode"`
	MaxRedemptions   *int64         `json:"max_redemptions"`
	Metadata         Metadata       `json:"metadata"`
	Name             *string        `json:"name"`
	PercentOff       *float64       `json:"percent_off"`
	RedeemBy         *Timestamp     `json:"redeem_by"`
	TimesRedeemed    int64          `json:"times_redeemed"`
	Valid            bool           `json:"valid"`
}

func (d *Discount) GetID() string { return d.ID }

func (c *Coupon) GetID() string { return c.ID }
