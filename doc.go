// Package stripeapi provides strongly typed bindings for the Stripe REST API.
// Each operation of the API is described by a parameter tree, which is encoded
// to the bracketed x-www-form-urlencoded format the API expects, and a response
// tree, which is decoded from the JSON the API returns.
//
// The operations themselves live in a package per resource, such as
// subscription, invoice, and checkout/session. Each operation takes a Backend
// to send its request through, the identifiers substituted into its path, and
// its parameters,
//
//     client := stripeapi.NewClient(stripeapi.Config{
//         Secret: os.Getenv("STRIPE_SECRET"),
//     })
//
//     params := stripeapi.NewSubscriptionCreateParams("cus_123456")
//     params.Items = []*stripeapi.SubscriptionItemsParams{
//         {Price: stripeapi.String("price_123456")},
//     }
//
//     sub, err := subscription.New(ctx, client, params)
//
//     if err != nil {
//         panic(err) // Handle the error properly.
//     }
//
// the above would send the following body to POST /v1/subscriptions,
//
//     customer=cus_123456&items[0][price]=price_123456
//
// Required parameters are plain fields, and are set by the New*Params
// constructors. Optional parameters are pointers, nil slices, or nil maps, and
// are omitted from the request when unset. Some optional parameters can also
// be unset on the server by sending them empty. These are typed as
// form.Clearable,
//
//     params := &stripeapi.SubscriptionUpdateParams{
//         DefaultTaxRates: form.Clear[[]string](),
//     }
//
// would be encoded to,
//
//     default_tax_rates=
//
// Enumerations are string types with a constant per token, for example
// stripeapi.CollectionMethodSendInvoice. Decoding a token the enumeration does
// not know fails for closed enumerations. Extensible enumerations, such as
// stripeapi.PaymentMethodType, retain the token so responses carrying values
// added to the API later still decode. Known reports whether a value is one of
// the declared tokens. A value that is not is never encoded into a request.
//
// List operations return an Iter, which requests pages lazily as it is
// advanced,
//
//     it := invoice.List(ctx, client, &stripeapi.InvoiceListParams{
//         Customer: stripeapi.String("cus_123456"),
//     })
//
//     for it.Next() {
//         inv := it.Current()
//     }
//
//     if err := it.Err(); err != nil {
//         // Handle error.
//     }
//
// Search operations return a SearchIter, which does the same by following the
// next_page token of each result.
//
// Errors returned by the API are decoded into an *Error. Failures before a
// response is received are returned as a *TransportError, and responses that
// cannot be decoded as a *DecodingError. Parameters that cannot be encoded are
// rejected with an *EncodingError before any request is sent. The Client never
// retries a request.
//
// The Idempotency-Key and Stripe-Account headers are set through the context
// given to an operation, via WithIdempotencyKey and WithStripeAccount.
//
// Observers registered with WithObserver are notified once each request
// completes. Metrics records Prometheus metrics for requests this way, and the
// journal package records request metadata in PostgreSQL.
package stripeapi
