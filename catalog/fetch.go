package catalog

import (
	"bytes"
	"context"
	"fmt"
	"log"
)

// FetchSearchResults sends req once, buffers the whole body and decodes it.
// Transport and non-2xx failures are ErrTransport, body problems ErrDecode.
func FetchSearchResults(ctx context.Context, rc RunContext, req SearchRequest) (SearchResults, error) {
	var body bytes.Buffer
	err := req.Builder(rc).
		ToBytesBuffer(&body).
		Fetch(ctx)
	if err != nil {
		return SearchResults{}, fmt.Errorf("failed to fetch search results %w: %w", ErrTransport, err)
	}
	return decodeFetchedBody(rc, body.Bytes())
}

func decodeFetchedBody(rc RunContext, body []byte) (SearchResults, error) {
	result, err := DecodeSearchResults(body)
	if err != nil {
		return result, err
	}
	success, ok := result.Success.Get()
	switch {
	case ok && success:
	case rc.Config.Output.RequireSuccess:
		return result, fmt.Errorf("search results did not report success %w", ErrUnsuccessfulResponse)
	default:
		log.Printf("Warning: search results did not report success, exporting %d courses anyway", len(result.Data))
	}
	if total, ok := result.TotalCount.Get(); ok && total > int64(len(result.Data)) {
		log.Printf("Warning: only the first page was fetched, %d of %d courses", len(result.Data), total)
	}
	return result, nil
}
