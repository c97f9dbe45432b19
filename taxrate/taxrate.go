// Package taxrate provides the operations on tax rates, along with helpers
// for loading a known set of tax rates at start up.
package taxrate

import (
	"context"
	"net/http"

	"github.com/andrewpillar/stripeapi"
)

var (
	createEndpoint = stripeapi.Endpoint[*stripeapi.TaxRateCreateParams, stripeapi.TaxRate]{
		Method: http.MethodPost,
		Path:   "/tax_rates",
	}

	retrieveEndpoint = stripeapi.Endpoint[*stripeapi.RetrieveParams, stripeapi.TaxRate]{
		Method: http.MethodGet,
		Path:   "/tax_rates/{tax_rate}",
	}

	updateEndpoint = stripeapi.Endpoint[*stripeapi.TaxRateUpdateParams, stripeapi.TaxRate]{
		Method: http.MethodPost,
		Path:   "/tax_rates/{tax_rate}",
	}

	listEndpoint = stripeapi.ListEndpoint[*stripeapi.TaxRateListParams, *stripeapi.TaxRate]{
		Path: "/tax_rates",
	}
)

// New creates a tax rate. The percentage and inclusivity of a tax rate cannot
// be changed once created.
func New(ctx context.Context, b stripeapi.Backend, params *stripeapi.TaxRateCreateParams) (*stripeapi.TaxRate, error) {
	return createEndpoint.Call(ctx, b, params)
}

func Get(ctx context.Context, b stripeapi.Backend, id string, params *stripeapi.RetrieveParams) (*stripeapi.TaxRate, error) {
	return retrieveEndpoint.Call(ctx, b, params, id)
}

func Update(ctx context.Context, b stripeapi.Backend, id string, params *stripeapi.TaxRateUpdateParams) (*stripeapi.TaxRate, error) {
	return updateEndpoint.Call(ctx, b, params, id)
}

// List returns an iterator over the tax rates matching the given params. The
// params may be nil.
func List(ctx context.Context, b stripeapi.Backend, params *stripeapi.TaxRateListParams) *stripeapi.Iter[*stripeapi.TaxRate] {
	if params == nil {
		params = &stripeapi.TaxRateListParams{}
	}
	return listEndpoint.Iter(ctx, b, params)
}
