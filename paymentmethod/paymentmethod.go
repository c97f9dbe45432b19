// Package paymentmethod provides the operations on payment methods.
package paymentmethod

import (
	"context"
	"net/http"

	"github.com/andrewpillar/stripeapi"
)

var (
	createEndpoint = stripeapi.Endpoint[*stripeapi.PaymentMethodCreateParams, stripeapi.PaymentMethod]{
		Method: http.MethodPost,
		Path:   "/payment_methods",
	}

	retrieveEndpoint = stripeapi.Endpoint[*stripeapi.RetrieveParams, stripeapi.PaymentMethod]{
		Method: http.MethodGet,
		Path:   "/payment_methods/{payment_method}",
	}

	updateEndpoint = stripeapi.Endpoint[*stripeapi.PaymentMethodUpdateParams, stripeapi.PaymentMethod]{
		Method: http.MethodPost,
		Path:   "/payment_methods/{payment_method}",
	}

	attachEndpoint = stripeapi.Endpoint[*stripeapi.PaymentMethodAttachParams, stripeapi.PaymentMethod]{
		Method: http.MethodPost,
		Path:   "/payment_methods/{payment_method}/attach",
	}

	detachEndpoint = stripeapi.Endpoint[*stripeapi.RetrieveParams, stripeapi.PaymentMethod]{
		Method: http.MethodPost,
		Path:   "/payment_methods/{payment_method}/detach",
	}

	listEndpoint = stripeapi.ListEndpoint[*stripeapi.PaymentMethodListParams, *stripeapi.PaymentMethod]{
		Path: "/payment_methods",
	}
)

// New creates a payment method. Most payment methods are created client side,
// this is typically only used for testing.
func New(ctx context.Context, b stripeapi.Backend, params *stripeapi.PaymentMethodCreateParams) (*stripeapi.PaymentMethod, error) {
	return createEndpoint.Call(ctx, b, params)
}

func Get(ctx context.Context, b stripeapi.Backend, id string, params *stripeapi.RetrieveParams) (*stripeapi.PaymentMethod, error) {
	return retrieveEndpoint.Call(ctx, b, params, id)
}

// Update updates the payment method with the given ID. A payment method must
// be attached to a customer to be updated.
func Update(ctx context.Context, b stripeapi.Backend, id string, params *stripeapi.PaymentMethodUpdateParams) (*stripeapi.PaymentMethod, error) {
	return updateEndpoint.Call(ctx, b, params, id)
}

// Attach attaches the payment method with the given ID to the customer in the
// params.
func Attach(ctx context.Context, b stripeapi.Backend, id string, params *stripeapi.PaymentMethodAttachParams) (*stripeapi.PaymentMethod, error) {
	return attachEndpoint.Call(ctx, b, params, id)
}

// Detach detaches the payment method with the given ID from its customer. A
// detached payment method cannot be used again. The params may be nil.
func Detach(ctx context.Context, b stripeapi.Backend, id string, params *stripeapi.RetrieveParams) (*stripeapi.PaymentMethod, error) {
	return detachEndpoint.Call(ctx, b, params, id)
}

// List returns an iterator over the payment methods matching the given params.
// The params may be nil.
func List(ctx context.Context, b stripeapi.Backend, params *stripeapi.PaymentMethodListParams) *stripeapi.Iter[*stripeapi.PaymentMethod] {
	if params == nil {
		params = &stripeapi.PaymentMethodListParams{}
	}
	return listEndpoint.Iter(ctx, b, params)
}
