// Package session provides the operations on checkout sessions.
package session

import (
	"context"
	"net/http"

	"github.com/andrewpillar/stripeapi"
)

var (
	createEndpoint = stripeapi.Endpoint[*stripeapi.CheckoutSessionCreateParams, stripeapi.CheckoutSession]{
		Method: http.MethodPost,
		Path:   "/checkout/sessions",
	}

	retrieveEndpoint = stripeapi.Endpoint[*stripeapi.RetrieveParams, stripeapi.CheckoutSession]{
		Method: http.MethodGet,
		Path:   "/checkout/sessions/{session}",
	}

	expireEndpoint = stripeapi.Endpoint[*stripeapi.CheckoutSessionExpireParams, stripeapi.CheckoutSession]{
		Method: http.MethodPost,
		Path:   "/checkout/sessions/{session}/expire",
	}

	listEndpoint = stripeapi.ListEndpoint[*stripeapi.CheckoutSessionListParams, *stripeapi.CheckoutSession]{
		Path: "/checkout/sessions",
	}

	lineItemsEndpoint = stripeapi.ListEndpoint[*stripeapi.LineItemListParams, *stripeapi.LineItem]{
		Path: "/checkout/sessions/{session}/line_items",
	}
)

// New creates a checkout session. The URL of the returned session is where
// the customer should be redirected to pay.
func New(ctx context.Context, b stripeapi.Backend, params *stripeapi.CheckoutSessionCreateParams) (*stripeapi.CheckoutSession, error) {
	return createEndpoint.Call(ctx, b, params)
}

// Get retrieves the checkout session with the given ID. The params may be
// nil.
func Get(ctx context.Context, b stripeapi.Backend, id string, params *stripeapi.RetrieveParams) (*stripeapi.CheckoutSession, error) {
	return retrieveEndpoint.Call(ctx, b, params, id)
}

// Expire expires the open checkout session with the given ID, so the customer
// can no longer complete it. The params may be nil.
func Expire(ctx context.Context, b stripeapi.Backend, id string, params *stripeapi.CheckoutSessionExpireParams) (*stripeapi.CheckoutSession, error) {
	return expireEndpoint.Call(ctx, b, params, id)
}

// List returns an iterator over the checkout sessions matching the given
// params. The params may be nil.
func List(ctx context.Context, b stripeapi.Backend, params *stripeapi.CheckoutSessionListParams) *stripeapi.Iter[*stripeapi.CheckoutSession] {
	if params == nil {
		params = &stripeapi.CheckoutSessionListParams{}
	}
	return listEndpoint.Iter(ctx, b, params)
}

// ListLineItems returns an iterator over the line items of the checkout
// session with the given ID. The params may be nil.
func ListLineItems(ctx context.Context, b stripeapi.Backend, id string, params *stripeapi.LineItemListParams) *stripeapi.Iter[*stripeapi.LineItem] {
	if params == nil {
		params = &stripeapi.LineItemListParams{}
	}
	return lineItemsEndpoint.Iter(ctx, b, params, id)
}
