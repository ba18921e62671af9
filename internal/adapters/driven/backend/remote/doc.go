// Package remote implements driven.SearchBackend over HTTP.
//
// Requests are JSON POSTs to {base}/search:
//
//	{"query": "...", "magazines": ["All"], "page": 1}
//
// and responses carry results, total_hits, current_page and total_pages.
// The client throttles itself, honours Retry-After, traces requests through
// otelhttp and tags each request with an X-Request-ID.
package remote
