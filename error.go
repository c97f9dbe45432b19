package stripeapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/andrewpillar/stripeapi/enum"
	"github.com/andrewpillar/stripeapi/form"
)

// ErrorType is the kind of error reported by the Stripe API.
type ErrorType string

const (
	ErrorTypeAPI            ErrorType = "api_error"
	ErrorTypeCard           ErrorType = "card_error"
	ErrorTypeIdempotency    ErrorType = "idempotency_error"
	ErrorTypeInvalidRequest ErrorType = "invalid_request_error"
)

var errorTypeEnum = enum.Extensible("ErrorType",
	ErrorTypeAPI,
	ErrorTypeCard,
	ErrorTypeIdempotency,
	ErrorTypeInvalidRequest,
)

// ErrorCode is the short string identifying an error reported by the Stripe
// API. Codes not listed here are retained as they were received.
type ErrorCode string

const (
	ErrorCodeAmountTooLarge               ErrorCode = "amount_too_large"
	ErrorCodeAmountTooSmall               ErrorCode = "amount_too_small"
	ErrorCodeAPIKeyExpired                ErrorCode = "api_key_expired"
	ErrorCodeAuthenticationRequired       ErrorCode = "authentication_required"
	ErrorCodeCardDeclined                 ErrorCode = "card_declined"
	ErrorCodeCouponExpired                ErrorCode = "coupon_expired"
	ErrorCodeCustomerMaxSubscriptions     ErrorCode = "customer_max_subscriptions"
	ErrorCodeEmailInvalid                 ErrorCode = "email_invalid"
	ErrorCodeExpiredCard                  ErrorCode = "expired_card"
	ErrorCodeIdempotencyKeyInUse          ErrorCode = "idempotency_key_in_use"
	ErrorCodeIncorrectCVC                 ErrorCode = "incorrect_cvc"
	ErrorCodeIncorrectNumber              ErrorCode = "incorrect_number"
	ErrorCodeInsufficientFunds            ErrorCode = "insufficient_funds"
	ErrorCodeInvoiceNoCustomerLineItems   ErrorCode = "invoice_no_customer_line_items"
	ErrorCodeInvoiceNotEditable           ErrorCode = "invoice_not_editable"
	ErrorCodeInvoicePaymentIntentRequired ErrorCode = "invoice_payment_intent_requires_action"
	ErrorCodeInvoiceUpcomingNone          ErrorCode = "invoice_upcoming_none"
	ErrorCodeLivemodeMismatch             ErrorCode = "livemode_mismatch"
	ErrorCodeLockTimeout                  ErrorCode = "lock_timeout"
	ErrorCodeMissing                      ErrorCode = "missing"
	ErrorCodeParameterInvalidEmpty        ErrorCode = "parameter_invalid_empty"
	ErrorCodeParameterInvalidInteger      ErrorCode = "parameter_invalid_integer"
	ErrorCodeParameterMissing             ErrorCode = "parameter_missing"
	ErrorCodeParameterUnknown             ErrorCode = "parameter_unknown"
	ErrorCodeParametersExclusive          ErrorCode = "parameters_exclusive"
	ErrorCodePaymentIntentActionRequired  ErrorCode = "payment_intent_action_required"
	ErrorCodePaymentMethodUnactivated     ErrorCode = "payment_method_unactivated"
	ErrorCodeRateLimit                    ErrorCode = "rate_limit"
	ErrorCodeResourceAlreadyExists        ErrorCode = "resource_already_exists"
	ErrorCodeResourceMissing              ErrorCode = "resource_missing"
	ErrorCodeSecretKeyRequired            ErrorCode = "secret_key_required"
	ErrorCodeTestmodeChargesOnly          ErrorCode = "testmode_charges_only"
	ErrorCodeURLInvalid                   ErrorCode = "url_invalid"
)

var errorCodeEnum = enum.Extensible("ErrorCode",
	ErrorCodeAmountTooLarge,
	ErrorCodeAmountTooSmall,
	ErrorCodeAPIKeyExpired,
	ErrorCodeAuthenticationRequired,
	ErrorCodeCardDeclined,
	ErrorCodeCouponExpired,
	ErrorCodeCustomerMaxSubscriptions,
	ErrorCodeEmailInvalid,
	ErrorCodeExpiredCard,
	ErrorCodeIdempotencyKeyInUse,
	ErrorCodeIncorrectCVC,
	ErrorCodeIncorrectNumber,
	ErrorCodeInsufficientFunds,
	ErrorCodeInvoiceNoCustomerLineItems,
	ErrorCodeInvoiceNotEditable,
	ErrorCodeInvoicePaymentIntentRequired,
	ErrorCodeInvoiceUpcomingNone,
	ErrorCodeLivemodeMismatch,
	ErrorCodeLockTimeout,
	ErrorCodeMissing,
	ErrorCodeParameterInvalidEmpty,
	ErrorCodeParameterInvalidInteger,
	ErrorCodeParameterMissing,
	ErrorCodeParameterUnknown,
	ErrorCodeParametersExclusive,
	ErrorCodePaymentIntentActionRequired,
	ErrorCodePaymentMethodUnactivated,
	ErrorCodeRateLimit,
	ErrorCodeResourceAlreadyExists,
	ErrorCodeResourceMissing,
	ErrorCodeSecretKeyRequired,
	ErrorCodeTestmodeChargesOnly,
	ErrorCodeURLInvalid,
)

// Error is an error returned by the Stripe API in response to a request. It is
// decoded from the error envelope in the response body, along with details
// taken from the response itself.
type Error struct {
	// HTTPStatusCode is the status code of the response.
	HTTPStatusCode int `json:"-"`

	// RequestID is the value of the Request-Id header of the response.
	RequestID string `json:"-"`

	// ShouldRetry is the value of the Stripe-Should-Retry header, if sent.
	ShouldRetry *bool `json:"-"`

	Type              ErrorType `json:"type"`
	Code              ErrorCode `json:"code,omitempty"`
	DeclineCode       string    `json:"decline_code,omitempty"`
	DocURL            string    `json:"doc_url,omitempty"`
	Message           string    `json:"message,omitempty"`
	Param             string    `json:"param,omitempty"`
	PaymentMethodType string    `json:"payment_method_type,omitempty"`
	RequestLogURL     string    `json:"request_log_url,omitempty"`
	Charge            string    `json:"charge,omitempty"`
}

// TransportError is returned when a request fails before a response is
// received, for example on a failed connection, a timeout, or a cancelled
// context.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

// DecodingError is returned when a response body cannot be decoded into the
// expected type. Offset and Field are set where the underlying decoder
// reports them.
type DecodingError struct {
	Offset int64
	Field  string
	Err    error
}

// PathError is returned when identifiers cannot be substituted into a path
// template.
type PathError struct {
	Template string
	Param    string
	Value    string
	Err      error
}

// EncodingError is returned when a parameter tree cannot be encoded.
type EncodingError = form.EncodingError

// UnknownTokenError is returned when a token is not part of a closed-set
// enumeration.
type UnknownTokenError = enum.UnknownTokenError

var (
	ErrMissingID         = errors.New("missing identifier")
	ErrEmptyID           = errors.New("empty identifier")
	ErrSlashInID         = errors.New("identifier contains a path separator")
	ErrUnusedID          = errors.New("too many identifiers")
	ErrMalformedTemplate = errors.New("malformed path template")
	ErrMissingQuery      = errors.New("missing search query")
)

func (t ErrorType) String() string { return string(t) }

func (t ErrorType) Known() bool { return errorTypeEnum.Known(t) }

func (t *ErrorType) UnmarshalJSON(b []byte) error { return errorTypeEnum.Unmarshal(t, b) }

func (c ErrorCode) String() string { return string(c) }

func (c ErrorCode) Known() bool { return errorCodeEnum.Known(c) }

func (c *ErrorCode) UnmarshalJSON(b []byte) error { return errorCodeEnum.Unmarshal(c, b) }

func (e *Error) Error() string {
	s := "stripeapi: " + strconv.Itoa(e.HTTPStatusCode) + " " + string(e.Type)

	if e.Code != "" {
		s += " (" + string(e.Code) + ")"
	}

	if e.Message != "" {
		s += ": " + e.Message
	}

	if e.RequestID != "" {
		s += " [" + e.RequestID + "]"
	}
	return s
}

// Transient reports whether the error was caused by a failure on the side of
// the Stripe API, as opposed to a problem with the request.
func (e *Error) Transient() bool { return e.HTTPStatusCode >= 500 }

func (e *TransportError) Error() string {
	return "stripeapi: " + e.Method + " " + e.Path + ": " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *DecodingError) Error() string {
	s := "stripeapi: cannot decode response"

	if e.Field != "" {
		s += " field " + e.Field
	}

	if e.Offset > 0 {
		s += " at offset " + strconv.FormatInt(e.Offset, 10)
	}
	return s + ": " + e.Err.Error()
}

func (e *DecodingError) Unwrap() error { return e.Err }

func (e *PathError) Error() string {
	s := "stripeapi: " + e.Template

	if e.Param != "" {
		s += " {" + e.Param + "}"
	}

	if e.Value != "" {
		s += " " + strconv.Quote(e.Value)
	}
	return s + ": " + e.Err.Error()
}

func (e *PathError) Unwrap() error { return e.Err }

func newDecodingError(err error) *DecodingError {
	e := &DecodingError{
		Err: err,
	}

	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)

	switch {
	case errors.As(err, &syntaxErr):
		e.Offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		e.Offset = typeErr.Offset
		e.Field = typeErr.Field
	}
	return e
}

// decodeError builds an Error from a non-2xx response. A body that does not
// hold an error envelope still yields an Error carrying the status.
func decodeError(resp *http.Response, body []byte) *Error {
	var envelope struct {
		Error *Error `json:"error"`
	}

	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error == nil {
		envelope.Error = &Error{
			Type:    ErrorTypeAPI,
			Message: http.StatusText(resp.StatusCode),
		}
	}

	e := envelope.Error
	e.HTTPStatusCode = resp.StatusCode
	e.RequestID = resp.Header.Get("Request-Id")

	if retry := resp.Header.Get("Stripe-Should-Retry"); retry != "" {
		if b, err := strconv.ParseBool(retry); err == nil {
			e.ShouldRetry = &b
		}
	}
	return e
}

// errorKind returns the kind of the given error for reporting to observers.
func errorKind(err error) string {
	var (
		apiErr       *Error
		transportErr *TransportError
		decodingErr  *DecodingError
	)

	switch {
	case err == nil:
		return ""
	case errors.As(err, &apiErr):
		return "status"
	case errors.As(err, &transportErr):
		return "transport"
	case errors.As(err, &decodingErr):
		return "decoding"
	}
	return "other"
}
