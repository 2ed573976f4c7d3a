// Package diff renders the changes between two revisions.
package diff

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/sidereusnuntius/pageview/internal/domain"
	"github.com/sidereusnuntius/pageview/internal/render"
)

var dmp *diffmatchpatch.DiffMatchPatch

func init() {
	dmp = diffmatchpatch.New()
}

type Renderer struct {
	Content render.ContentSource
	Now     func() time.Time
}

func New(content render.ContentSource) *Renderer {
	return &Renderer{
		Content: content,
		Now:     time.Now,
	}
}

// RenderDiff produces an HTML diff of the source text. A nil old is compared as an empty page.
func (r *Renderer) RenderDiff(ctx context.Context, old *domain.RevisionRef, new domain.RevisionRef) (domain.RenderedOutput, error) {
	var before string
	if old != nil {
		var err error
		if before, _, err = r.Content.GetContent(ctx, old.ID); err != nil {
			return domain.RenderedOutput{}, fmt.Errorf("loading revision %d: %w", old.ID, err)
		}
	}
	after, _, err := r.Content.GetContent(ctx, new.ID)
	if err != nil {
		return domain.RenderedOutput{}, fmt.Errorf("loading revision %d: %w", new.ID, err)
	}

	var b strings.Builder
	b.WriteString(`<div class="diff">`)
	b.WriteString(Header(old, new))
	b.WriteString(`<pre class="diff-body">`)
	b.WriteString(Pretty(before, after))
	b.WriteString(`</pre></div>`)

	return domain.RenderedOutput{
		HTML:       b.String(),
		PageID:     new.PageID,
		RevisionID: new.ID,
		RenderedAt: r.Now(),
	}, nil
}

// Pretty returns the differences as HTML, with insertions in <ins> and deletions in <del>.
func Pretty(before, after string) string {
	diffs := dmp.DiffMain(before, after, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return dmp.DiffPrettyHtml(diffs)
}

func Header(old *domain.RevisionRef, new domain.RevisionRef) string {
	if old == nil {
		return fmt.Sprintf(`<p class="diff-header">Page created in revision %d</p>`, new.ID)
	}
	return fmt.Sprintf(`<p class="diff-header">Revision %d to %d</p>`, old.ID, new.ID)
}
