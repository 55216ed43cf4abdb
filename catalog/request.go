package catalog

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/carlmjohnson/requests"
	"golang.org/x/net/http/httpguts"
)

// Only the first page is ever requested, sorted by subject description.
const (
	SearchPageOffset    = "0"
	SearchSortColumn    = "subjectDescription"
	SearchSortDirection = "asc"
)

const acceptJSON = "application/json, text/javascript, */*; q=0.01"

// SearchRequest describes the single GET sent to the searchResults endpoint.
type SearchRequest struct {
	Endpoint string
	Host     string
	Params   url.Values
	Headers  http.Header
}

// NewSearchRequest assembles the search request from config and credentials.
// A credential that cannot be sent as a header value is ErrInvalidHeaderValue.
func NewSearchRequest(cfg Config, creds Credentials) (SearchRequest, error) {
	result := SearchRequest{
		Endpoint: cfg.API.Endpoint,
		Host:     cfg.API.Host,
		Params:   url.Values{},
		Headers:  http.Header{},
	}

	result.Params.Set("txt_term", cfg.Search.Term)
	result.Params.Set("startDatepicker", "")
	result.Params.Set("endDatepicker", "")
	result.Params.Set("pageOffset", SearchPageOffset)
	result.Params.Set("uniqueSessionId", creds.SessionID)
	result.Params.Set("sortColumn", SearchSortColumn)
	result.Params.Set("sortDirection", SearchSortDirection)

	headers := []struct {
		key   string
		value string
	}{
		{"Host", cfg.API.Host},
		{"User-Agent", cfg.API.UserAgent},
		{"Accept", acceptJSON},
		{"X-Synchronizer-Token", creds.SynchronizerToken},
		{"X-Requested-With", "XMLHttpRequest"},
		{"DNT", "1"},
		{"Sec-GPC", "1"},
		{"Connection", "keep-alive"},
		{"Referer", cfg.API.Referer},
		{"Cookie", creds.Cookie},
		{"Sec-Fetch-Dest", "empty"},
		{"Sec-Fetch-Mode", "cors"},
		{"Sec-Fetch-Site", "same-origin"},
		{"Priority", "u=0"},
		{"TE", "trailers"},
	}
	for _, h := range headers {
		if !httpguts.ValidHeaderFieldValue(h.value) {
			return result, fmt.Errorf("failed to set header %s %w", h.key, ErrInvalidHeaderValue)
		}
		result.Headers.Set(h.key, h.value)
	}
	return result, nil
}

// Builder returns a requests.Builder that sends r.
func (r SearchRequest) Builder(rc RunContext) *requests.Builder {
	var rt http.RoundTripper = http.DefaultTransport
	if rc.Transport != nil {
		rt = rc.Transport
	}
	if rc.RecordRequests {
		rt = requests.Record(rt, fmt.Sprintf("testdata/.requests/%s", rc.Config.Search.Term))
	}
	return r.builder(rt)
}

func (r SearchRequest) builder(rt http.RoundTripper) *requests.Builder {
	result := requests.
		URL(r.Endpoint).
		Client(&http.Client{Timeout: HTTPRequestTimeout}).
		Transport(virtualHost(r.Host, rt))
	for key, values := range r.Params {
		result = result.Param(key, values...)
	}
	for key, values := range r.Headers {
		if key == "Host" {
			continue
		}
		result = result.Header(key, values...)
	}
	return result
}

// virtualHost sets the Host line, which net/http takes from req.Host and
// never from the header map.
func virtualHost(host string, rt http.RoundTripper) requests.RoundTripFunc {
	return func(req *http.Request) (*http.Response, error) {
		if host != "" && req.Host != host {
			req = req.Clone(req.Context())
			req.Host = host
		}
		return rt.RoundTrip(req)
	}
}
