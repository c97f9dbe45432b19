package stripeapi

import "context"

type ctxKey int

const (
	idempotencyKeyCtx ctxKey = iota
	stripeAccountCtx
	pathTemplateCtx
)

// WithIdempotencyKey returns a context that sends the given key in the
// Idempotency-Key header of the request made with it. Keys are chosen by the
// caller.
func WithIdempotencyKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, idempotencyKeyCtx, key)
}

// WithStripeAccount returns a context that sends the given connected account
// ID in the Stripe-Account header of the request made with it.
func WithStripeAccount(ctx context.Context, acct string) context.Context {
	return context.WithValue(ctx, stripeAccountCtx, acct)
}

func withPathTemplate(ctx context.Context, tmpl string) context.Context {
	return context.WithValue(ctx, pathTemplateCtx, tmpl)
}

func ctxString(ctx context.Context, key ctxKey) string {
	s, _ := ctx.Value(key).(string)
	return s
}
