// Package render turns revision source into HTML.
package render

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/pageview/internal/config"
	"github.com/sidereusnuntius/pageview/internal/domain"
	"github.com/sidereusnuntius/pageview/internal/view"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

// ContentSource loads the source text of a revision.
type ContentSource interface {
	GetContent(ctx context.Context, revID int64) (content, model string, err error)
}

type Renderer struct {
	Content ContentSource
	// Timeout bounds a single conversion. Zero means no limit.
	Timeout time.Duration
	// TTL is how long the output stays valid once rendered.
	TTL      time.Duration
	Now      func() time.Time
	markdown goldmark.Markdown
}

func New(cfg config.Configuration, content ContentSource) *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Typographer,
			extension.Footnote,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			goldmarkhtml.WithHardWraps(),
			goldmarkhtml.WithXHTML(),
		),
	)

	return &Renderer{
		Content:  content,
		Timeout:  cfg.RenderTimeout,
		TTL:      cfg.CacheTTL,
		Now:      time.Now,
		markdown: md,
	}
}

type result struct {
	html string
	err  error
}

// Render converts the revision's content. Running out of time, or the request going away, yields a degraded
// RenderError.
func (r *Renderer) Render(ctx context.Context, page domain.PageRef, rev domain.RevisionRef, opts domain.RenderOptions) (domain.RenderedOutput, error) {
	content, model, err := r.Content.GetContent(ctx, rev.ID)
	if err != nil {
		return domain.RenderedOutput{}, &view.RenderError{Err: fmt.Errorf("loading revision %d: %w", rev.ID, err)}
	}

	if err := ctx.Err(); err != nil {
		return domain.RenderedOutput{}, &view.RenderError{Err: err, Degraded: true}
	}
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	done := make(chan result, 1)
	go func() {
		body, err := r.convert(content, model)
		done <- result{body, err}
	}()

	var res result
	select {
	case res = <-done:
	case <-ctx.Done():
		log.Warn().
			Str("title", page.Title).
			Int64("revision", rev.ID).
			Dur("timeout", r.Timeout).
			Msg("render ran out of time")
		return domain.RenderedOutput{}, &view.RenderError{Err: ctx.Err(), Degraded: true}
	}
	if res.err != nil {
		return domain.RenderedOutput{}, &view.RenderError{Err: res.err}
	}

	now := r.Now()
	out := domain.RenderedOutput{
		HTML:       wrap(res.html, opts),
		PageID:     page.ID,
		RevisionID: rev.ID,
		RenderedAt: now,
	}
	if r.TTL > 0 {
		out.ExpiresAt = now.Add(r.TTL)
	}
	return out, nil
}

func (r *Renderer) convert(content, model string) (string, error) {
	switch model {
	case config.Markdown:
		var buf bytes.Buffer
		if err := r.markdown.Convert([]byte(content), &buf); err != nil {
			return "", err
		}
		return buf.String(), nil
	case config.Text:
		return "<pre>" + html.EscapeString(content) + "</pre>", nil
	default:
		return "", fmt.Errorf("unsupported content model %q", model)
	}
}

func wrap(body string, opts domain.RenderOptions) string {
	class := "page-content"
	if opts.Printable {
		class += " printable"
	}
	return fmt.Sprintf(`<div class="%s" lang="%s">%s</div>`, class, html.EscapeString(opts.Language), body)
}
