package taxrate

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/andrewpillar/stripeapi"
)

func Test_ReadIDs(t *testing.T) {
	s := `txr_1
txr_2

# comment
txr_3

   txr_4   
`

	expected := []string{
		"txr_1",
		"txr_2",
		"txr_3",
		"txr_4",
	}

	ids, err := ReadIDs(strings.NewReader(s))

	if err != nil {
		t.Fatal(err)
	}

	if len(expected) != len(ids) {
		t.Fatalf("unexpected number of ids read, expected=%d, got=%d\n", len(expected), len(ids))
	}

	for i, id := range expected {
		if ids[i] != id {
			t.Errorf("ids[%d] - unexpected id, expected=%q, got=%q\n", i, id, ids[i])
		}
	}
}

func newServer(t *testing.T, rates map[string]string) *stripeapi.Client {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		id := strings.TrimPrefix(r.URL.Path, "/v1/tax_rates/")

		body, ok := rates[id]

		if !ok {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":{"type":"invalid_request_error","code":"resource_missing","message":"No such tax rate"}}`))
			return
		}
		w.Write([]byte(body))
	}))

	t.Cleanup(srv.Close)

	return stripeapi.NewClient(stripeapi.Config{
		Secret:  "sk_test_123",
		BaseURL: srv.URL + "/v1",
	})
}

func Test_RetrieveMany(t *testing.T) {
	client := newServer(t, map[string]string{
		"txr_1": `{"id":"txr_1","object":"tax_rate","display_name":"VAT","jurisdiction":"GB","percentage":20}`,
		"txr_2": `{"id":"txr_2","object":"tax_rate","display_name":"VAT","jurisdiction":"DE","percentage":19}`,
		"txr_3": `{"id":"txr_3","object":"tax_rate","display_name":"GST","percentage":10}`,
	})

	var (
		mu   sync.Mutex
		errs []error
	)

	rates := RetrieveMany(context.Background(), client, []string{"txr_1", "txr_404", "txr_2", "txr_3"}, func(err error) {
		mu.Lock()
		defer mu.Unlock()
		errs = append(errs, err)
	})

	expected := []string{"txr_1", "txr_2", "txr_3"}

	if len(rates) != len(expected) {
		t.Fatalf("unexpected number of tax rates, expected=%d, got=%d\n", len(expected), len(rates))
	}

	for i, id := range expected {
		if rates[i].ID != id {
			t.Errorf("rates[%d] - unexpected id, expected=%q, got=%q\n", i, id, rates[i].ID)
		}
	}

	if len(errs) != 1 {
		t.Fatalf("unexpected number of errors, expected=%d, got=%d\n", 1, len(errs))
	}

	var apiErr *stripeapi.Error

	if !errors.As(errs[0], &apiErr) {
		t.Fatalf("unexpected error type, expected=%T, got=%T\n", apiErr, errs[0])
	}

	if apiErr.HTTPStatusCode != http.StatusNotFound {
		t.Errorf("unexpected status code, expected=%d, got=%d\n", http.StatusNotFound, apiErr.HTTPStatusCode)
	}

	byJurisdiction := ByJurisdiction(rates)

	if len(byJurisdiction) != 2 {
		t.Fatalf("unexpected number of jurisdictions, expected=%d, got=%d\n", 2, len(byJurisdiction))
	}

	if tr := byJurisdiction["DE"]; tr == nil || tr.Percentage != 19 {
		t.Errorf("unexpected tax rate for jurisdiction DE: %+v\n", tr)
	}
}
