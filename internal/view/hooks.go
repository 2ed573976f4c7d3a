package view

import (
	"context"

	"github.com/sidereusnuntius/pageview/internal/domain"
)

// Hooks are tried in order before any default view logic. The first one that handles the view wins.
type Hooks []ExtensionHook

func (h Hooks) Run(ctx context.Context, hc *domain.HookContext) (*domain.RenderedOutput, bool) {
	for _, hook := range h {
		if handled, out := hook.OnViewHeader(ctx, hc); handled {
			return out, true
		}
	}
	return nil, false
}

// HookFunc adapts a plain function to ExtensionHook.
type HookFunc func(ctx context.Context, hc *domain.HookContext) (bool, *domain.RenderedOutput)

func (f HookFunc) OnViewHeader(ctx context.Context, hc *domain.HookContext) (bool, *domain.RenderedOutput) {
	return f(ctx, hc)
}
