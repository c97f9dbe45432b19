package taxrate

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"
	"sync"

	"github.com/andrewpillar/stripeapi"
)

// ReadIDs reads the tax rate IDs from the given io.Reader. It is expected for
// each ID to be on its own separate line. Blank lines and comments (lines
// prefixed with #) are ignored.
func ReadIDs(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)

	ids := make([]string, 0)

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())

		if line == "" || line[0] == '#' {
			continue
		}
		ids = append(ids, line)
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

// RetrieveMany retrieves the tax rates with the given IDs concurrently. The
// number of requests in flight is bounded by GOMAXPROCS plus ten. Any error
// that occurs when retrieving a tax rate is passed to the given errh callback,
// and that tax rate is left out of the result. The tax rates that were
// retrieved are returned in the order of the given IDs.
func RetrieveMany(ctx context.Context, b stripeapi.Backend, ids []string, errh func(error)) []*stripeapi.TaxRate {
	sems := make(chan struct{}, runtime.GOMAXPROCS(0)+10)
	errs := make(chan error)

	rates := make([]*stripeapi.TaxRate, len(ids))

	var wg sync.WaitGroup
	wg.Add(len(ids))

	for i, id := range ids {
		go func(i int, id string) {
			sems <- struct{}{}
			defer func() {
				<-sems
				wg.Done()
			}()

			tr, err := Get(ctx, b, id, nil)

			if err != nil {
				errs <- fmt.Errorf("taxrate: retrieve %s: %w", id, err)
				return
			}
			rates[i] = tr
		}(i, id)
	}

	go func() {
		wg.Wait()
		close(errs)
	}()

	for err := range errs {
		if errh != nil {
			errh(err)
		}
	}

	loaded := make([]*stripeapi.TaxRate, 0, len(rates))

	for _, tr := range rates {
		if tr != nil {
			loaded = append(loaded, tr)
		}
	}
	return loaded
}

// ByJurisdiction indexes the given tax rates by their jurisdiction. Tax rates
// without a jurisdiction are skipped. If two tax rates share a jurisdiction,
// the first one is kept.
func ByJurisdiction(rates []*stripeapi.TaxRate) map[string]*stripeapi.TaxRate {
	m := make(map[string]*stripeapi.TaxRate)

	for _, tr := range rates {
		if tr.Jurisdiction == nil {
			continue
		}

		if _, ok := m[*tr.Jurisdiction]; !ok {
			m[*tr.Jurisdiction] = tr
		}
	}
	return m
}
