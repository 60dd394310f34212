package fundbook

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

// serveQuote stands in for the quote service and routes every code to the
// given body.
func serveQuote(t *testing.T, body string) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	old := fundQuoteBase
	fundQuoteBase = srv.URL
	t.Cleanup(func() { fundQuoteBase = old })
}

func TestLookupFund(t *testing.T) {
	serveQuote(t, `jsonpgz({"fundcode":"005827","name":"易方达蓝筹精选混合","jzrq":"2025-08-29","dwjz":"2.4501","gsz":"2.4713","gszzl":"0.87","gztime":"2025-08-29 15:00"});`)

	quote, err := LookupFund(context.Background(), http.DefaultClient, "005827")
	if err != nil {
		t.Fatalf("LookupFund() failed: %v", err)
	}
	if quote == nil {
		t.Fatal("LookupFund() found nothing")
	}
	if quote.Code != "005827" || quote.Name != "易方达蓝筹精选混合" {
		t.Errorf("quote identity = %s %s", quote.Code, quote.Name)
	}
	if !quote.EstimatedValue.Equal(M(2.4713)) {
		t.Errorf("EstimatedValue = %s, want 2.4713", quote.EstimatedValue)
	}
	if !quote.OfficialValue.Equal(M(2.4501)) {
		t.Errorf("OfficialValue = %s, want 2.4501", quote.OfficialValue)
	}
	if !quote.Latest().Equal(M(2.4713)) {
		t.Errorf("Latest() = %s, want the intraday estimate", quote.Latest())
	}
}

func TestLookupFund_FallsBackToOfficialValue(t *testing.T) {
	serveQuote(t, `jsonpgz({"fundcode":"005827","name":"易方达蓝筹精选混合","dwjz":"2.4501"});`)

	quote, err := LookupFund(context.Background(), http.DefaultClient, "005827")
	if err != nil {
		t.Fatalf("LookupFund() failed: %v", err)
	}
	if quote == nil {
		t.Fatal("LookupFund() found nothing")
	}
	if !quote.Latest().Equal(M(2.4501)) {
		t.Errorf("Latest() = %s, want the official value", quote.Latest())
	}
}

// An unknown code, a broken envelope, or a nameless payload all mean "not
// found", never an error.
func TestLookupFund_NotFound(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{name: "no envelope", body: `<html>404</html>`},
		{name: "empty body", body: ``},
		{name: "bad json inside envelope", body: `jsonpgz({broken});`},
		{name: "payload without a name", body: `jsonpgz({"fundcode":"005827"});`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			serveQuote(t, tc.body)
			quote, err := LookupFund(context.Background(), http.DefaultClient, "005827")
			if err != nil {
				t.Fatalf("LookupFund() failed: %v", err)
			}
			if quote != nil {
				t.Errorf("LookupFund() = %+v, want nil", quote)
			}
		})
	}
}

// A canceled context must abort the request instead of letting it run to
// completion, so a multi-code fetch stays interruptible.
func TestLookupFund_CanceledContext(t *testing.T) {
	serveQuote(t, `jsonpgz({"fundcode":"005827","name":"易方达蓝筹精选混合","dwjz":"2.4501"});`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := LookupFund(ctx, http.DefaultClient, "005827"); err == nil {
		t.Error("LookupFund() ignored a canceled context")
	}
}

func TestLookupFund_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	old := fundQuoteBase
	fundQuoteBase = srv.URL
	t.Cleanup(func() { fundQuoteBase = old })

	if _, err := LookupFund(context.Background(), http.DefaultClient, "005827"); err == nil {
		t.Error("LookupFund() swallowed a transport failure")
	}
}
