package view

import (
	"errors"

	"github.com/sidereusnuntius/pageview/internal/domain"
)

var (
	ErrNotFound         = domain.ErrNotFound
	ErrPermissionDenied = domain.ErrPermissionDenied
	ErrRenderFailed     = errors.New("render failed")
	ErrMisconfigured    = errors.New("misconfigured request")
)

// RenderError is returned by renderers. Degraded is set when the renderer gave up early, on a timeout for
// instance, and tells the controller to keep whatever it serves instead only briefly.
type RenderError struct {
	Err      error
	Degraded bool
}

func (e *RenderError) Error() string {
	if e.Degraded {
		return "render degraded: " + e.Err.Error()
	}
	return "render failed: " + e.Err.Error()
}

func (e *RenderError) Unwrap() []error {
	return []error{ErrRenderFailed, e.Err}
}

func isDegraded(err error) bool {
	var rerr *RenderError
	return errors.As(err, &rerr) && rerr.Degraded
}
