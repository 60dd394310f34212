package fundbook

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// The fund quote service answers with a JSONP envelope wrapping the actual
// payload:
//
//	jsonpgz({"fundcode":"005827","name":"易方达蓝筹精选混合","gsz":"2.4713","dwjz":"2.4501",...});
//
// The JSON must be extracted through the envelope before parsing.

var fundQuoteBase = "https://fundgz.1234567.com.cn/js"

var jsonpEnvelopeRE = regexp.MustCompile(`jsonpgz\((.*)\)`)

// FundQuote is the answer of the fund lookup service for one fund code.
type FundQuote struct {
	Code           string
	Name           string
	EstimatedValue Money // intraday estimate (gsz)
	OfficialValue  Money // last official per-share value (dwjz)
}

// Latest returns the freshest known per-share value: the intraday estimate
// when present, the official value otherwise.
func (q FundQuote) Latest() Money {
	if !q.EstimatedValue.IsZero() {
		return q.EstimatedValue
	}
	return q.OfficialValue
}

// LookupFund queries the quote service for a fund code.
//
// It returns (nil, nil) when the service has no match or answers something
// that is not the expected envelope: an unknown fund is a normal outcome, not
// an error. Transport failures are returned as errors.
func LookupFund(ctx context.Context, client *http.Client, code string) (*FundQuote, error) {
	if client == nil {
		client = daily()
	}
	addr := fmt.Sprintf("%s/%s.js?rt=%d", fundQuoteBase, code, time.Now().UnixMilli())
	text, err := twget(ctx, client, addr)
	if err != nil {
		return nil, fmt.Errorf("could not query fund %q: %w", code, err)
	}

	match := jsonpEnvelopeRE.FindStringSubmatch(text)
	if match == nil {
		return nil, nil
	}
	var jobj any
	if err := json.Unmarshal([]byte(match[1]), &jobj); err != nil {
		return nil, nil
	}

	name, ok := jsonString(jobj, "$.name")
	if !ok {
		return nil, nil
	}
	quote := &FundQuote{Code: code, Name: name}
	if gsz, ok := jsonString(jobj, "$.gsz"); ok {
		if v, err := decimal.NewFromString(gsz); err == nil {
			quote.EstimatedValue = M(v)
		}
	}
	if dwjz, ok := jsonString(jobj, "$.dwjz"); ok {
		if v, err := decimal.NewFromString(dwjz); err == nil {
			quote.OfficialValue = M(v)
		}
	}
	return quote, nil
}

// jsonString extracts a string value from a decoded JSON document.
func jsonString(jobj any, path string) (string, bool) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", false
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	s, ok := jval.(string)
	return s, ok
}
