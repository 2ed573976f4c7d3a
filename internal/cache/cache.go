// Package cache holds what the render cache implementations share.
package cache

import (
	"fmt"

	"github.com/sidereusnuntius/pageview/internal/domain"
)

// Key identifies one render. Latest keys point at the most recent render of a page's current revision for
// the given options; renders of older revisions never replace them.
func Key(page domain.PageRef, rev *domain.RevisionRef, opts domain.RenderOptions) string {
	if rev == nil {
		return fmt.Sprintf("%d:latest:%s", page.ID, opts.Key())
	}
	return fmt.Sprintf("%d:%d:%s", page.ID, rev.ID, opts.Key())
}

func LatestKey(page domain.PageRef, opts domain.RenderOptions) string {
	return Key(page, nil, opts)
}

// Keys lists the keys a render of rev is stored under.
func Keys(page domain.PageRef, rev domain.RevisionRef, opts domain.RenderOptions) []string {
	keys := []string{Key(page, &rev, opts)}
	if rev.Current {
		keys = append(keys, LatestKey(page, opts))
	}
	return keys
}
