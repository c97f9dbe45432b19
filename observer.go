package stripeapi

import (
	"context"
	"time"
)

// Record describes a single request made by a Client. Only request metadata
// is recorded, never parameters or response bodies.
type Record struct {
	Method         string
	Path           string // path template, e.g. /subscriptions/{id}
	StatusCode     int    // zero if no response was received
	RequestID      string
	IdempotencyKey string
	StripeAccount  string
	Duration       time.Duration
	Err            error
}

// Observer is notified of every request made by a Client once it completes.
// Observers are called synchronously, and must be safe for concurrent use.
type Observer interface {
	Observe(ctx context.Context, r Record)
}

// ObserverFunc adapts a function into an Observer.
type ObserverFunc func(ctx context.Context, r Record)

func (fn ObserverFunc) Observe(ctx context.Context, r Record) { fn(ctx, r) }

// ErrorKind returns the kind of error held in the Record, one of status,
// transport, decoding or other. It is empty for a successful request.
func (r Record) ErrorKind() string { return errorKind(r.Err) }
