package catalog

import "time"

// HTTPRequestTimeout is the timeout for the catalog search request.
const HTTPRequestTimeout = 60 * time.Second
