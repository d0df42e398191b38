package api

import (
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the Wordnik v4 API root.
const DefaultBaseURL = "https://api.wordnik.com/v4"

// SiteURL is the Wordnik website, credited as the source of definitions.
const SiteURL = "https://wordnik.com/"

// NewDefaultClient builds a client pointed at the default Wordnik API URL.
func NewDefaultClient(apiKey string, timeout ...time.Duration) *Client {
	return NewClient(DefaultBaseURL, apiKey, timeout...)
}

// WordURL returns the wordnik.com page for word. A blank word gives the site
// root.
func WordURL(word string) string {
	word = strings.TrimSpace(word)
	if word == "" {
		return SiteURL
	}
	return SiteURL + "words/" + url.PathEscape(word)
}
