package view

import (
	"time"

	"github.com/sidereusnuntius/pageview/internal/domain"
)

// Recorder receives counts about what the controller did. It is implemented by the metrics package.
type Recorder interface {
	Plan(kind domain.PlanKind)
	CacheLookup(hit bool)
	Render(elapsed time.Duration, err error)
}

type nopRecorder struct{}

func (nopRecorder) Plan(domain.PlanKind)        {}
func (nopRecorder) CacheLookup(bool)            {}
func (nopRecorder) Render(time.Duration, error) {}
