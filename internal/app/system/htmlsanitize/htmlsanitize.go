// Package htmlsanitize strips unsafe HTML from user-authored content before
// it is surfaced in feeds (announcement bodies, message previews).
package htmlsanitize

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	once   sync.Once
	policy *bluemonday.Policy
)

// Sanitize returns s with scripts, event handlers, and javascript: URLs
// removed. Common formatting (paragraphs, emphasis, lists, tables, links)
// is preserved; links gain rel="nofollow".
func Sanitize(s string) string {
	once.Do(func() {
		policy = bluemonday.UGCPolicy()
	})
	return policy.Sanitize(s)
}
