package catalog

import (
	"context"
	"log"
)

// Summary reports what a run exported.
type Summary struct {
	Path       string
	Format     string
	Rows       int
	TotalCount Optional[int64]
	Success    Optional[bool]
}

// Run performs one export: load credentials, build and send the search
// request, decode the response and write the output file. The first error
// ends the run; nothing is retried.
func Run(ctx context.Context, rc RunContext) (Summary, error) {
	cfg := rc.Config
	summary := Summary{Path: cfg.Output.Path, Format: cfg.Output.Format}

	creds, err := LoadCredentials(cfg.Credentials)
	if err != nil {
		return summary, err
	}

	req, err := NewSearchRequest(cfg, creds)
	if err != nil {
		return summary, err
	}

	log.Printf("Fetching sections for term %s from %s", cfg.Search.Term, cfg.API.Endpoint)
	results, err := FetchSearchResults(ctx, rc, req)
	if err != nil {
		return summary, err
	}
	summary.TotalCount = results.TotalCount
	summary.Success = results.Success

	if err = ExportCourses(cfg.Output.Path, cfg.Output.Format, results.Data); err != nil {
		return summary, err
	}
	summary.Rows = len(results.Data)
	log.Printf("Wrote %d sections to %s", summary.Rows, summary.Path)

	return summary, nil
}
