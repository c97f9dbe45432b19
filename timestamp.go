package stripeapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/andrewpillar/stripeapi/form"
)

// Timestamp is a point in time as seconds since the Unix epoch.
type Timestamp int64

// RangeQuery filters on a timestamp, either by an exact value via At, or by
// any combination of the bounds. Setting At alongside a bound is an error.
//
//     params.Created = &stripeapi.RangeQuery{
//         GTE: stripeapi.Ptr(stripeapi.TimestampOf(since)),
//     }
type RangeQuery struct {
	At  *Timestamp
	GT  *Timestamp
	GTE *Timestamp
	LT  *Timestamp
	LTE *Timestamp
}

type rangeBounds struct {
	GT  *Timestamp `json:"gt,omitempty"`
	GTE *Timestamp `json:"gte,omitempty"`
	LT  *Timestamp `json:"lt,omitempty"`
	LTE *Timestamp `json:"lte,omitempty"`
}

// TrialEnd is either the literal now, which ends a trial immediately, or the
// time at which a trial ends.
type TrialEnd struct {
	now bool
	at  Timestamp
}

var errRangeQueryAmbiguous = errors.New("range query sets both an exact timestamp and bounds")

// TimestampOf returns the Timestamp for the given time, truncated to the
// second.
func TimestampOf(t time.Time) Timestamp { return Timestamp(t.Unix()) }

func (t Timestamp) Time() time.Time { return time.Unix(int64(t), 0).UTC() }

func (t Timestamp) String() string { return strconv.FormatInt(int64(t), 10) }

// Exactly returns a RangeQuery matching the given Timestamp only.
func Exactly(ts Timestamp) *RangeQuery {
	return &RangeQuery{
		At: &ts,
	}
}

func (q RangeQuery) bounds() rangeBounds {
	return rangeBounds{
		GT:  q.GT,
		GTE: q.GTE,
		LT:  q.LT,
		LTE: q.LTE,
	}
}

func (q RangeQuery) hasBounds() bool {
	return q.GT != nil || q.GTE != nil || q.LT != nil || q.LTE != nil
}

// AppendForm implements the form.Appender interface. An exact query is sent
// as key=ts, and bounds as key[gte]=ts and so on.
func (q RangeQuery) AppendForm(vals *form.Values, keyParts []string) error {
	if q.At != nil {
		if q.hasBounds() {
			return errRangeQueryAmbiguous
		}
		vals.Add(form.FormatKey(keyParts), q.At.String())
		return nil
	}
	return form.AppendTo(vals, keyParts, map[string]*Timestamp{
		"gt":  q.GT,
		"gte": q.GTE,
		"lt":  q.LT,
		"lte": q.LTE,
	})
}

func (q RangeQuery) MarshalJSON() ([]byte, error) {
	if q.At != nil {
		if q.hasBounds() {
			return nil, errRangeQueryAmbiguous
		}
		return json.Marshal(*q.At)
	}
	return json.Marshal(q.bounds())
}

// UnmarshalJSON decodes either a number or an object of bounds, chosen by the
// first token.
func (q *RangeQuery) UnmarshalJSON(b []byte) error {
	switch peek(b) {
	case 'n':
		return nil
	case '{':
		var bounds rangeBounds

		if err := json.Unmarshal(b, &bounds); err != nil {
			return err
		}

		*q = RangeQuery{
			GT:  bounds.GT,
			GTE: bounds.GTE,
			LT:  bounds.LT,
			LTE: bounds.LTE,
		}
		return nil
	}

	var ts Timestamp

	if err := json.Unmarshal(b, &ts); err != nil {
		return err
	}

	*q = RangeQuery{
		At: &ts,
	}
	return nil
}

// TrialEndNow returns a TrialEnd that ends the trial immediately.
func TrialEndNow() *TrialEnd {
	return &TrialEnd{
		now: true,
	}
}

// TrialEndAt returns a TrialEnd that ends the trial at the given time.
func TrialEndAt(ts Timestamp) *TrialEnd {
	return &TrialEnd{
		at: ts,
	}
}

func (t TrialEnd) IsNow() bool { return t.now }

// Timestamp returns the time the trial ends at, if it does not end now.
func (t TrialEnd) Timestamp() (Timestamp, bool) { return t.at, !t.now }

func (t TrialEnd) String() string {
	if t.now {
		return "now"
	}
	return t.at.String()
}

// MarshalForm implements the form.Marshaler interface.
func (t TrialEnd) MarshalForm() (string, error) { return t.String(), nil }

func (t TrialEnd) MarshalJSON() ([]byte, error) {
	if t.now {
		return []byte(`"now"`), nil
	}
	return json.Marshal(t.at)
}

// UnmarshalJSON decodes either the string now, or a number.
func (t *TrialEnd) UnmarshalJSON(b []byte) error {
	switch peek(b) {
	case 'n':
		return nil
	case '"':
		var s string

		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}

		if s != "now" {
			return fmt.Errorf("stripeapi: invalid trial end %q", s)
		}

		*t = TrialEnd{now: true}
		return nil
	}

	var ts Timestamp

	if err := json.Unmarshal(b, &ts); err != nil {
		return err
	}

	*t = TrialEnd{at: ts}
	return nil
}

// BillingCycleAnchor is either one of the SubscriptionBillingCycleAnchor
// tokens, or the time a new billing cycle is anchored to.
type BillingCycleAnchor struct {
	anchor SubscriptionBillingCycleAnchor
	at     Timestamp
}

// BillingCycleAnchorOf returns a BillingCycleAnchor for the given token.
func BillingCycleAnchorOf(a SubscriptionBillingCycleAnchor) *BillingCycleAnchor {
	return &BillingCycleAnchor{
		anchor: a,
	}
}

// BillingCycleAnchorAt returns a BillingCycleAnchor at the given time.
func BillingCycleAnchorAt(ts Timestamp) *BillingCycleAnchor {
	return &BillingCycleAnchor{
		at: ts,
	}
}

// Anchor returns the token of the anchor, if it is not a timestamp.
func (a BillingCycleAnchor) Anchor() (SubscriptionBillingCycleAnchor, bool) {
	return a.anchor, a.anchor != ""
}

func (a BillingCycleAnchor) Timestamp() (Timestamp, bool) { return a.at, a.anchor == "" }

// MarshalForm implements the form.Marshaler interface.
func (a BillingCycleAnchor) MarshalForm() (string, error) {
	if a.anchor != "" {
		return a.anchor.MarshalForm()
	}
	return a.at.String(), nil
}

func (a BillingCycleAnchor) MarshalJSON() ([]byte, error) {
	if a.anchor != "" {
		s, err := a.anchor.MarshalForm()

		if err != nil {
			return nil, err
		}
		return json.Marshal(s)
	}
	return json.Marshal(a.at)
}

// UnmarshalJSON decodes either one of the anchor tokens, or a number.
func (a *BillingCycleAnchor) UnmarshalJSON(b []byte) error {
	switch peek(b) {
	case 'n':
		return nil
	case '"':
		var s string

		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}

		anchor, err := ParseSubscriptionBillingCycleAnchor(s)

		if err != nil {
			return err
		}

		*a = BillingCycleAnchor{anchor: anchor}
		return nil
	}

	var ts Timestamp

	if err := json.Unmarshal(b, &ts); err != nil {
		return err
	}

	*a = BillingCycleAnchor{at: ts}
	return nil
}

// peek returns the first non-whitespace byte of the given JSON.
func peek(b []byte) byte {
	b = bytes.TrimLeft(b, " \t\r\n")

	if len(b) == 0 {
		return 0
	}
	return b[0]
}
