// Package journal records the requests made through a stripeapi.Client in
// PostgreSQL. Only request metadata is journalled, so a request can be traced
// back by its ID, or its idempotency key, without storing any parameters or
// resource state.
package journal

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/andrewpillar/query"
	"github.com/andrewpillar/stripeapi"
)

// Entry is a single journalled request.
type Entry struct {
	RequestID      string
	Method         string
	Path           string // path template
	StatusCode     int
	IdempotencyKey string
	StripeAccount  string
	ErrorKind      string
	Duration       time.Duration
	CreatedAt      time.Time
}

// PSQL is an Observer that journals each request in PostgreSQL. Using it
// requires the following schema,
//
//     CREATE TABLE stripe_requests (
//         request_id      VARCHAR NOT NULL UNIQUE,
//         method          VARCHAR NOT NULL,
//         path            VARCHAR NOT NULL,
//         status          INT NOT NULL,
//         idempotency_key VARCHAR NULL,
//         stripe_account  VARCHAR NULL,
//         error_kind      VARCHAR NULL,
//         duration_ms     BIGINT NOT NULL,
//         created_at      TIMESTAMP NOT NULL
//     );
//
// Requests that received no response carry no request ID, and are not
// journalled.
type PSQL struct {
	*sql.DB

	// ErrorHandler is called with any error that occurs when journalling a
	// request from Observe. If nil, such errors are dropped.
	ErrorHandler func(error)

	// Timeout bounds how long Observe waits on the database. If zero,
	// DefaultTimeout is used.
	Timeout time.Duration
}

// DefaultTimeout is the time Observe waits on the database when no Timeout is
// set.
const DefaultTimeout = 5 * time.Second

var (
	_ stripeapi.Observer = (*PSQL)(nil)

	requestTable = "stripe_requests"

	// ErrRequestExists denotes when a request with the same ID has already
	// been journalled.
	ErrRequestExists = errors.New("request exists")
)

func nullString(s string) sql.NullString {
	return sql.NullString{
		String: s,
		Valid:  s != "",
	}
}

func scanEntry(sc interface{ Scan(...interface{}) error }) (*Entry, error) {
	var (
		e          Entry
		key        sql.NullString
		acct       sql.NullString
		kind       sql.NullString
		durationMs int64
	)

	err := sc.Scan(
		&e.RequestID,
		&e.Method,
		&e.Path,
		&e.StatusCode,
		&key,
		&acct,
		&kind,
		&durationMs,
		&e.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	e.IdempotencyKey = key.String
	e.StripeAccount = acct.String
	e.ErrorKind = kind.String
	e.Duration = time.Duration(durationMs) * time.Millisecond
	return &e, nil
}

// Log journals the given entry. If an entry with the same request ID already
// exists then ErrRequestExists is returned.
func (p *PSQL) Log(ctx context.Context, e *Entry) error {
	q := query.Select(
		query.Count("request_id"),
		query.From(requestTable),
		query.Where("request_id", "=", query.Arg(e.RequestID)),
	)

	var count int64

	if err := p.QueryRowContext(ctx, q.Build(), q.Args()...).Scan(&count); err != nil {
		return err
	}

	if count > 0 {
		return ErrRequestExists
	}

	q = query.Insert(
		requestTable,
		query.Columns("request_id", "method", "path", "status", "idempotency_key", "stripe_account", "error_kind", "duration_ms", "created_at"),
		query.Values(
			e.RequestID,
			e.Method,
			e.Path,
			e.StatusCode,
			nullString(e.IdempotencyKey),
			nullString(e.StripeAccount),
			nullString(e.ErrorKind),
			e.Duration.Milliseconds(),
			e.CreatedAt,
		),
	)

	_, err := p.ExecContext(ctx, q.Build(), q.Args()...)
	return err
}

// Observe implements the stripeapi.Observer interface.
func (p *PSQL) Observe(ctx context.Context, r stripeapi.Record) {
	if r.RequestID == "" {
		return
	}

	e := &Entry{
		RequestID:      r.RequestID,
		Method:         r.Method,
		Path:           r.Path,
		StatusCode:     r.StatusCode,
		IdempotencyKey: r.IdempotencyKey,
		StripeAccount:  r.StripeAccount,
		ErrorKind:      r.ErrorKind(),
		Duration:       r.Duration,
		CreatedAt:      time.Now().UTC(),
	}

	timeout := p.Timeout

	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	// The request's own context may already be done by the time it is
	// observed.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	if err := p.Log(ctx, e); err != nil {
		if p.ErrorHandler != nil {
			p.ErrorHandler(err)
		}
	}
}

// Lookup returns the entry for the given request ID, along with whether or not
// it could be found.
func (p *PSQL) Lookup(ctx context.Context, requestID string) (*Entry, bool, error) {
	q := query.Select(
		query.Columns("*"),
		query.From(requestTable),
		query.Where("request_id", "=", query.Arg(requestID)),
	)

	e, err := scanEntry(p.QueryRowContext(ctx, q.Build(), q.Args()...))

	if err != nil {
		if err != sql.ErrNoRows {
			return nil, false, err
		}
		return nil, false, nil
	}
	return e, true, nil
}

// Requests returns the entries for the given path template, most recent
// first.
func (p *PSQL) Requests(ctx context.Context, path string) ([]*Entry, error) {
	q := query.Select(
		query.Columns("*"),
		query.From(requestTable),
		query.Where("path", "=", query.Arg(path)),
		query.OrderDesc("created_at"),
	)

	rows, err := p.QueryContext(ctx, q.Build(), q.Args()...)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	ee := make([]*Entry, 0)

	for rows.Next() {
		e, err := scanEntry(rows)

		if err != nil {
			return nil, err
		}
		ee = append(ee, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ee, nil
}
