package domain

import (
	"strconv"
	"time"
)

type RenderOptions struct {
	Printable bool
	Language  string
}

// Key is a stable representation of the options, used as part of render cache keys.
func (o RenderOptions) Key() string {
	return "lang=" + o.Language + "!printable=" + strconv.FormatBool(o.Printable)
}

type RenderedOutput struct {
	HTML       string
	PageID     int64
	RevisionID int64
	RenderedAt time.Time
	ExpiresAt  time.Time
}

// ValidFor reports whether the output can be served for the given revision at time now.
func (o RenderedOutput) ValidFor(revID int64, now time.Time) bool {
	if o.RevisionID != revID {
		return false
	}
	return o.ExpiresAt.IsZero() || now.Before(o.ExpiresAt)
}
