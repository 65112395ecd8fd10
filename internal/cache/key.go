package cache

import (
	"net/http"
	"net/url"
	"sort"
	"strings"
)

// KeyFunc derives the store key for a request.
type KeyFunc func(r *http.Request) string

// PathKey keys on the request method and path only, for handlers that take
// no arguments.
//
// Format: cache:<method>:<path>
func PathKey(r *http.Request) string {
	return "cache:" + r.Method + ":" + r.URL.Path
}

// Key builds a deterministic key from the request method, path and query.
//
// Format: cache:<method>:<path>?<k1=v1&k2=v2>, query keys and values sorted.
func Key(r *http.Request) string {
	var b strings.Builder
	b.WriteString(PathKey(r))

	query := r.URL.Query()
	if len(query) == 0 {
		return b.String()
	}

	keys := make([]string, 0, len(query))
	for k := range query {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b.WriteString("?")
	for i, k := range keys {
		values := append([]string(nil), query[k]...)
		sort.Strings(values)
		for j, v := range values {
			if i > 0 || j > 0 {
				b.WriteString("&")
			}
			b.WriteString(url.QueryEscape(k))
			b.WriteString("=")
			b.WriteString(url.QueryEscape(v))
		}
	}
	return b.String()
}
