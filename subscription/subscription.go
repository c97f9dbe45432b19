// Package subscription provides the operations on subscriptions.
package subscription

import (
	"context"
	"net/http"

	"github.com/andrewpillar/stripeapi"
)

var (
	createEndpoint = stripeapi.Endpoint[*stripeapi.SubscriptionCreateParams, stripeapi.Subscription]{
		Method: http.MethodPost,
		Path:   "/subscriptions",
	}

	retrieveEndpoint = stripeapi.Endpoint[*stripeapi.RetrieveParams, stripeapi.Subscription]{
		Method: http.MethodGet,
		Path:   "/subscriptions/{subscription}",
	}

	updateEndpoint = stripeapi.Endpoint[*stripeapi.SubscriptionUpdateParams, stripeapi.Subscription]{
		Method: http.MethodPost,
		Path:   "/subscriptions/{subscription}",
	}

	cancelEndpoint = stripeapi.Endpoint[*stripeapi.SubscriptionCancelParams, stripeapi.Subscription]{
		Method: http.MethodDelete,
		Path:   "/subscriptions/{subscription}",
	}

	resumeEndpoint = stripeapi.Endpoint[*stripeapi.SubscriptionResumeParams, stripeapi.Subscription]{
		Method: http.MethodPost,
		Path:   "/subscriptions/{subscription}/resume",
	}

	deleteDiscountEndpoint = stripeapi.Endpoint[struct{}, stripeapi.DeletedResource]{
		Method: http.MethodDelete,
		Path:   "/subscriptions/{subscription}/discount",
	}

	listEndpoint = stripeapi.ListEndpoint[*stripeapi.SubscriptionListParams, *stripeapi.Subscription]{
		Path: "/subscriptions",
	}

	searchEndpoint = stripeapi.SearchEndpoint[*stripeapi.SubscriptionSearchParams, *stripeapi.Subscription]{
		Path: "/subscriptions/search",
	}
)

// New creates a subscription for an existing customer.
func New(ctx context.Context, b stripeapi.Backend, params *stripeapi.SubscriptionCreateParams) (*stripeapi.Subscription, error) {
	return createEndpoint.Call(ctx, b, params)
}

// Get retrieves the subscription with the given ID. The params may be nil.
func Get(ctx context.Context, b stripeapi.Backend, id string, params *stripeapi.RetrieveParams) (*stripeapi.Subscription, error) {
	return retrieveEndpoint.Call(ctx, b, params, id)
}

// Update updates the subscription with the given ID. Only the fields set in
// the params are changed.
func Update(ctx context.Context, b stripeapi.Backend, id string, params *stripeapi.SubscriptionUpdateParams) (*stripeapi.Subscription, error) {
	return updateEndpoint.Call(ctx, b, params, id)
}

// Cancel cancels the subscription with the given ID immediately. To cancel at
// the end of the current period use Update with CancelAtPeriodEnd. The params
// may be nil.
func Cancel(ctx context.Context, b stripeapi.Backend, id string, params *stripeapi.SubscriptionCancelParams) (*stripeapi.Subscription, error) {
	return cancelEndpoint.Call(ctx, b, params, id)
}

// Resume resumes a paused subscription. The params may be nil.
func Resume(ctx context.Context, b stripeapi.Backend, id string, params *stripeapi.SubscriptionResumeParams) (*stripeapi.Subscription, error) {
	return resumeEndpoint.Call(ctx, b, params, id)
}

// DeleteDiscount removes the discount applied to the subscription with the
// given ID.
func DeleteDiscount(ctx context.Context, b stripeapi.Backend, id string) (*stripeapi.DeletedResource, error) {
	return deleteDiscountEndpoint.Send(ctx, b, id)
}

// List returns an iterator over the subscriptions matching the given params.
// If params is nil, every subscription that is not canceled is listed.
func List(ctx context.Context, b stripeapi.Backend, params *stripeapi.SubscriptionListParams) *stripeapi.Iter[*stripeapi.Subscription] {
	if params == nil {
		params = &stripeapi.SubscriptionListParams{}
	}
	return listEndpoint.Iter(ctx, b, params)
}

// Search returns an iterator over the subscriptions matching the query of the
// given params. If params is nil the iterator fails with
// stripeapi.ErrMissingQuery.
func Search(ctx context.Context, b stripeapi.Backend, params *stripeapi.SubscriptionSearchParams) *stripeapi.SearchIter[*stripeapi.Subscription] {
	return searchEndpoint.Iter(ctx, b, params)
}
