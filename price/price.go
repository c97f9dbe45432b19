// Package price provides the operations on prices.
package price

import (
	"context"
	"net/http"

	"github.com/andrewpillar/stripeapi"
)

var (
	createEndpoint = stripeapi.Endpoint[*stripeapi.PriceCreateParams, stripeapi.Price]{
		Method: http.MethodPost,
		Path:   "/prices",
	}

	retrieveEndpoint = stripeapi.Endpoint[*stripeapi.RetrieveParams, stripeapi.Price]{
		Method: http.MethodGet,
		Path:   "/prices/{price}",
	}

	updateEndpoint = stripeapi.Endpoint[*stripeapi.PriceUpdateParams, stripeapi.Price]{
		Method: http.MethodPost,
		Path:   "/prices/{price}",
	}

	listEndpoint = stripeapi.ListEndpoint[*stripeapi.PriceListParams, *stripeapi.Price]{
		Path: "/prices",
	}

	searchEndpoint = stripeapi.SearchEndpoint[*stripeapi.PriceSearchParams, *stripeapi.Price]{
		Path: "/prices/search",
	}
)

// New creates a price for a product. Only one of UnitAmount and
// UnitAmountDecimal may be set in the params.
func New(ctx context.Context, b stripeapi.Backend, params *stripeapi.PriceCreateParams) (*stripeapi.Price, error) {
	return createEndpoint.Call(ctx, b, params)
}

func Get(ctx context.Context, b stripeapi.Backend, id string, params *stripeapi.RetrieveParams) (*stripeapi.Price, error) {
	return retrieveEndpoint.Call(ctx, b, params, id)
}

// Update updates the price with the given ID. The amount of a price cannot be
// changed once created.
func Update(ctx context.Context, b stripeapi.Backend, id string, params *stripeapi.PriceUpdateParams) (*stripeapi.Price, error) {
	return updateEndpoint.Call(ctx, b, params, id)
}

// List returns an iterator over the prices matching the given params. The
// params may be nil.
func List(ctx context.Context, b stripeapi.Backend, params *stripeapi.PriceListParams) *stripeapi.Iter[*stripeapi.Price] {
	if params == nil {
		params = &stripeapi.PriceListParams{}
	}
	return listEndpoint.Iter(ctx, b, params)
}

func Search(ctx context.Context, b stripeapi.Backend, params *stripeapi.PriceSearchParams) *stripeapi.SearchIter[*stripeapi.Price] {
	return searchEndpoint.Iter(ctx, b, params)
}
