// Package invoice provides the operations on invoices, including the
// lifecycle actions that move an invoice from draft to paid or void, and the
// preview of a customer's upcoming invoice.
package invoice

import (
	"context"
	"net/http"

	"github.com/andrewpillar/stripeapi"
)

var (
	createEndpoint = stripeapi.Endpoint[*stripeapi.InvoiceCreateParams, stripeapi.Invoice]{
		Method: http.MethodPost,
		Path:   "/invoices",
	}

	retrieveEndpoint = stripeapi.Endpoint[*stripeapi.RetrieveParams, stripeapi.Invoice]{
		Method: http.MethodGet,
		Path:   "/invoices/{invoice}",
	}

	updateEndpoint = stripeapi.Endpoint[*stripeapi.InvoiceUpdateParams, stripeapi.Invoice]{
		Method: http.MethodPost,
		Path:   "/invoices/{invoice}",
	}

	deleteEndpoint = stripeapi.Endpoint[struct{}, stripeapi.DeletedResource]{
		Method: http.MethodDelete,
		Path:   "/invoices/{invoice}",
	}

	payEndpoint = stripeapi.Endpoint[*stripeapi.InvoicePayParams, stripeapi.Invoice]{
		Method: http.MethodPost,
		Path:   "/invoices/{invoice}/pay",
	}

	finalizeEndpoint = stripeapi.Endpoint[*stripeapi.InvoiceFinalizeParams, stripeapi.Invoice]{
		Method: http.MethodPost,
		Path:   "/invoices/{invoice}/finalize",
	}

	sendEndpoint = stripeapi.Endpoint[*stripeapi.InvoiceSendParams, stripeapi.Invoice]{
		Method: http.MethodPost,
		Path:   "/invoices/{invoice}/send",
	}

	markUncollectibleEndpoint = stripeapi.Endpoint[*stripeapi.InvoiceMarkUncollectibleParams, stripeapi.Invoice]{
		Method: http.MethodPost,
		Path:   "/invoices/{invoice}/mark_uncollectible",
	}

	voidEndpoint = stripeapi.Endpoint[*stripeapi.InvoiceVoidParams, stripeapi.Invoice]{
		Method: http.MethodPost,
		Path:   "/invoices/{invoice}/void",
	}

	upcomingEndpoint = stripeapi.Endpoint[*stripeapi.InvoiceUpcomingParams, stripeapi.Invoice]{
		Method: http.MethodGet,
		Path:   "/invoices/upcoming",
	}

	upcomingLinesEndpoint = stripeapi.ListEndpoint[*stripeapi.InvoiceUpcomingLinesParams, *stripeapi.InvoiceLineItem]{
		Path: "/invoices/upcoming/lines",
	}

	linesEndpoint = stripeapi.ListEndpoint[*stripeapi.InvoiceLineItemListParams, *stripeapi.InvoiceLineItem]{
		Path: "/invoices/{invoice}/lines",
	}

	listEndpoint = stripeapi.ListEndpoint[*stripeapi.InvoiceListParams, *stripeapi.Invoice]{
		Path: "/invoices",
	}

	searchEndpoint = stripeapi.SearchEndpoint[*stripeapi.InvoiceSearchParams, *stripeapi.Invoice]{
		Path: "/invoices/search",
	}
)

// New creates a draft invoice. The params may be nil.
func New(ctx context.Context, b stripeapi.Backend, params *stripeapi.InvoiceCreateParams) (*stripeapi.Invoice, error) {
	return createEndpoint.Call(ctx, b, params)
}

// Get retrieves the invoice with the given ID. The params may be nil.
func Get(ctx context.Context, b stripeapi.Backend, id string, params *stripeapi.RetrieveParams) (*stripeapi.Invoice, error) {
	return retrieveEndpoint.Call(ctx, b, params, id)
}

func Update(ctx context.Context, b stripeapi.Backend, id string, params *stripeapi.InvoiceUpdateParams) (*stripeapi.Invoice, error) {
	return updateEndpoint.Call(ctx, b, params, id)
}

// Del deletes the draft invoice with the given ID. Finalized invoices cannot
// be deleted, and should be voided instead.
func Del(ctx context.Context, b stripeapi.Backend, id string) (*stripeapi.DeletedResource, error) {
	return deleteEndpoint.Send(ctx, b, id)
}

// Pay attempts payment of the invoice with the given ID outside of the normal
// collection schedule. The params may be nil.
func Pay(ctx context.Context, b stripeapi.Backend, id string, params *stripeapi.InvoicePayParams) (*stripeapi.Invoice, error) {
	return payEndpoint.Call(ctx, b, params, id)
}

// Finalize finalizes the draft invoice with the given ID. The params may be
// nil.
func Finalize(ctx context.Context, b stripeapi.Backend, id string, params *stripeapi.InvoiceFinalizeParams) (*stripeapi.Invoice, error) {
	return finalizeEndpoint.Call(ctx, b, params, id)
}

// Send emails the invoice with the given ID to the customer. The params may be
// nil.
func Send(ctx context.Context, b stripeapi.Backend, id string, params *stripeapi.InvoiceSendParams) (*stripeapi.Invoice, error) {
	return sendEndpoint.Call(ctx, b, params, id)
}

// MarkUncollectible marks the invoice with the given ID as uncollectible. The
// params may be nil.
func MarkUncollectible(ctx context.Context, b stripeapi.Backend, id string, params *stripeapi.InvoiceMarkUncollectibleParams) (*stripeapi.Invoice, error) {
	return markUncollectibleEndpoint.Call(ctx, b, params, id)
}

// Void voids the finalized invoice with the given ID. The params may be nil.
func Void(ctx context.Context, b stripeapi.Backend, id string, params *stripeapi.InvoiceVoidParams) (*stripeapi.Invoice, error) {
	return voidEndpoint.Call(ctx, b, params, id)
}

// Upcoming previews the next invoice of a customer. The returned invoice has
// not been created, and has no ID.
func Upcoming(ctx context.Context, b stripeapi.Backend, params *stripeapi.InvoiceUpcomingParams) (*stripeapi.Invoice, error) {
	return upcomingEndpoint.Call(ctx, b, params)
}

// UpcomingLines returns an iterator over the line items of the upcoming
// invoice described by the given params.
func UpcomingLines(ctx context.Context, b stripeapi.Backend, params *stripeapi.InvoiceUpcomingLinesParams) *stripeapi.Iter[*stripeapi.InvoiceLineItem] {
	if params == nil {
		params = &stripeapi.InvoiceUpcomingLinesParams{}
	}
	return upcomingLinesEndpoint.Iter(ctx, b, params)
}

// Lines returns an iterator over the line items of the invoice with the given
// ID. The params may be nil.
func Lines(ctx context.Context, b stripeapi.Backend, id string, params *stripeapi.InvoiceLineItemListParams) *stripeapi.Iter[*stripeapi.InvoiceLineItem] {
	if params == nil {
		params = &stripeapi.InvoiceLineItemListParams{}
	}
	return linesEndpoint.Iter(ctx, b, params, id)
}

// List returns an iterator over the invoices matching the given params. The
// params may be nil.
func List(ctx context.Context, b stripeapi.Backend, params *stripeapi.InvoiceListParams) *stripeapi.Iter[*stripeapi.Invoice] {
	if params == nil {
		params = &stripeapi.InvoiceListParams{}
	}
	return listEndpoint.Iter(ctx, b, params)
}

// Search returns an iterator over the invoices matching the query of the
// given params. If params is nil the iterator fails with
// stripeapi.ErrMissingQuery.
func Search(ctx context.Context, b stripeapi.Backend, params *stripeapi.InvoiceSearchParams) *stripeapi.SearchIter[*stripeapi.Invoice] {
	return searchEndpoint.Iter(ctx, b, params)
}
