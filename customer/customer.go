// Package customer provides the operations on customers.
package customer

import (
	"context"
	"net/http"

	"github.com/andrewpillar/stripeapi"
)

var (
	createEndpoint = stripeapi.Endpoint[*stripeapi.CustomerCreateParams, stripeapi.Customer]{
		Method: http.MethodPost,
		Path:   "/customers",
	}

	retrieveEndpoint = stripeapi.Endpoint[*stripeapi.RetrieveParams, stripeapi.Customer]{
		Method: http.MethodGet,
		Path:   "/customers/{customer}",
	}

	updateEndpoint = stripeapi.Endpoint[*stripeapi.CustomerUpdateParams, stripeapi.Customer]{
		Method: http.MethodPost,
		Path:   "/customers/{customer}",
	}

	deleteEndpoint = stripeapi.Endpoint[struct{}, stripeapi.DeletedResource]{
		Method: http.MethodDelete,
		Path:   "/customers/{customer}",
	}

	deleteDiscountEndpoint = stripeapi.Endpoint[struct{}, stripeapi.DeletedResource]{
		Method: http.MethodDelete,
		Path:   "/customers/{customer}/discount",
	}

	listEndpoint = stripeapi.ListEndpoint[*stripeapi.CustomerListParams, *stripeapi.Customer]{
		Path: "/customers",
	}

	searchEndpoint = stripeapi.SearchEndpoint[*stripeapi.CustomerSearchParams, *stripeapi.Customer]{
		Path: "/customers/search",
	}
)

// New creates a customer. The params may be nil.
func New(ctx context.Context, b stripeapi.Backend, params *stripeapi.CustomerCreateParams) (*stripeapi.Customer, error) {
	return createEndpoint.Call(ctx, b, params)
}

// Get retrieves the customer with the given ID. A deleted customer is
// returned with Deleted set. The params may be nil.
func Get(ctx context.Context, b stripeapi.Backend, id string, params *stripeapi.RetrieveParams) (*stripeapi.Customer, error) {
	return retrieveEndpoint.Call(ctx, b, params, id)
}

func Update(ctx context.Context, b stripeapi.Backend, id string, params *stripeapi.CustomerUpdateParams) (*stripeapi.Customer, error) {
	return updateEndpoint.Call(ctx, b, params, id)
}

// Del deletes the customer with the given ID, and cancels any of their active
// subscriptions.
func Del(ctx context.Context, b stripeapi.Backend, id string) (*stripeapi.DeletedResource, error) {
	return deleteEndpoint.Send(ctx, b, id)
}

// DeleteDiscount removes the discount applied to the customer with the given
// ID.
func DeleteDiscount(ctx context.Context, b stripeapi.Backend, id string) (*stripeapi.DeletedResource, error) {
	return deleteDiscountEndpoint.Send(ctx, b, id)
}

// List returns an iterator over the customers matching the given params. The
// params may be nil.
func List(ctx context.Context, b stripeapi.Backend, params *stripeapi.CustomerListParams) *stripeapi.Iter[*stripeapi.Customer] {
	if params == nil {
		params = &stripeapi.CustomerListParams{}
	}
	return listEndpoint.Iter(ctx, b, params)
}

// Search returns an iterator over the customers matching the query of the
// given params. If params is nil the iterator fails with
// stripeapi.ErrMissingQuery.
func Search(ctx context.Context, b stripeapi.Backend, params *stripeapi.CustomerSearchParams) *stripeapi.SearchIter[*stripeapi.Customer] {
	return searchEndpoint.Iter(ctx, b, params)
}
