package render

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sidereusnuntius/pageview/internal/config"
	"github.com/sidereusnuntius/pageview/internal/domain"
	"github.com/sidereusnuntius/pageview/internal/view"
)

var (
	ctx  = context.Background()
	now  = time.Date(2025, 9, 25, 22, 0, 0, 0, time.UTC)
	foo  = domain.PageRef{ID: 1, Title: "Foo"}
	opts = domain.RenderOptions{Language: "en"}
)

type source map[int64][2]string

func (s source) GetContent(_ context.Context, revID int64) (string, string, error) {
	c, ok := s[revID]
	if !ok {
		return "", "", view.ErrNotFound
	}
	return c[0], c[1], nil
}

func newRenderer(s source) *Renderer {
	r := New(config.Configuration{RenderTimeout: time.Second, CacheTTL: time.Hour}, s)
	r.Now = func() time.Time { return now }
	return r
}

func TestRender(t *testing.T) {
	r := newRenderer(source{
		1: {"# Title\n\nSome *emphasis*.", config.Markdown},
		2: {"<script>alert(1)</script>", config.Text},
		3: {"<script>alert(1)</script>", config.Markdown},
	})

	cases := []struct {
		name     string
		rev      int64
		contains []string
		absent   []string
	}{
		{"markdown", 1, []string{`<h1 id="title">Title</h1>`, "<em>emphasis</em>", `lang="en"`}, nil},
		{"plain text", 2, []string{"<pre>&lt;script&gt;"}, []string{"<script>"}},
		{"raw html", 3, nil, []string{"<script>"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, err := r.Render(ctx, foo, domain.RevisionRef{ID: c.rev}, opts)
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			for _, s := range c.contains {
				if !strings.Contains(out.HTML, s) {
					t.Errorf("expected %q in %q", s, out.HTML)
				}
			}
			for _, s := range c.absent {
				if strings.Contains(out.HTML, s) {
					t.Errorf("unexpected %q in %q", s, out.HTML)
				}
			}
			if out.RevisionID != c.rev || out.PageID != foo.ID {
				t.Errorf("output is not tied to its revision: %+v", out)
			}
			if !out.RenderedAt.Equal(now) || !out.ExpiresAt.Equal(now.Add(time.Hour)) {
				t.Errorf("unexpected times %s, %s", out.RenderedAt, out.ExpiresAt)
			}
		})
	}
}

func TestRender_Printable(t *testing.T) {
	r := newRenderer(source{1: {"text", config.Markdown}})

	out, err := r.Render(ctx, foo, domain.RevisionRef{ID: 1}, domain.RenderOptions{Language: "en", Printable: true})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.HTML, "printable") {
		t.Errorf("printable class missing from %q", out.HTML)
	}
}

func TestRender_Errors(t *testing.T) {
	r := newRenderer(source{1: {"text", "application/x-unknown"}})

	cases := []struct {
		name     string
		ctx      func() context.Context
		rev      int64
		degraded bool
	}{
		{"missing content", func() context.Context { return ctx }, 2, false},
		{"unknown model", func() context.Context { return ctx }, 1, false},
		{"request gone", func() context.Context {
			c, cancel := context.WithCancel(ctx)
			cancel()
			return c
		}, 1, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := r.Render(c.ctx(), foo, domain.RevisionRef{ID: c.rev}, opts)

			var rerr *view.RenderError
			if !errors.As(err, &rerr) {
				t.Fatalf("expected a RenderError, got %v", err)
			}
			if rerr.Degraded != c.degraded {
				t.Errorf("expected degraded=%t, got %t", c.degraded, rerr.Degraded)
			}
			if !errors.Is(err, view.ErrRenderFailed) {
				t.Error("render errors must match ErrRenderFailed")
			}
		})
	}
}
