package shell

import (
	"net/url"
	"strings"
)

// componentEscaper undoes the url.QueryEscape differences from
// encodeURIComponent, which keeps !*'() and encodes space as %20.
var componentEscaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%2A", "*",
	"%27", "'",
	"%28", "(",
	"%29", ")",
)

// EscapeComponent escapes s the way browsers escape a URI component.
func EscapeComponent(s string) string {
	return componentEscaper.Replace(url.QueryEscape(s))
}

// SearchURL builds the navigation target for a search query.
func SearchURL(path, param, query string) string {
	return path + "?" + param + "=" + EscapeComponent(query)
}
