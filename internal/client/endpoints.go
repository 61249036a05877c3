package client

import "net/url"

const endpointSearch = "/_search"

// searchPath returns the search endpoint for every index starting with
// prefix. The wildcard is appended after escaping so it stays literal.
func searchPath(prefix string) string {
	return "/" + url.PathEscape(prefix) + "*" + endpointSearch
}
