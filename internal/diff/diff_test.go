package diff

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sidereusnuntius/pageview/internal/domain"
)

type source map[int64]string

func (s source) GetContent(_ context.Context, revID int64) (string, string, error) {
	c, ok := s[revID]
	if !ok {
		return "", "", domain.ErrNotFound
	}
	return c, "text/markdown", nil
}

func TestRenderDiff(t *testing.T) {
	now := time.Date(2025, 9, 25, 22, 0, 0, 0, time.UTC)
	r := New(source{1: "the quick fox", 2: "the slow fox"})
	r.Now = func() time.Time { return now }

	old := domain.RevisionRef{ID: 1, PageID: 7}
	cur := domain.RevisionRef{ID: 2, PageID: 7}

	cases := []struct {
		name     string
		old      *domain.RevisionRef
		contains []string
	}{
		{"change", &old, []string{"Revision 1 to 2", "<del", "quick", "<ins", "slow"}},
		{"creation", nil, []string{"Page created in revision 2", "<ins", "the slow fox"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, err := r.RenderDiff(context.Background(), c.old, cur)
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			for _, s := range c.contains {
				if !strings.Contains(out.HTML, s) {
					t.Errorf("expected %q in %q", s, out.HTML)
				}
			}
			if out.RevisionID != 2 || out.PageID != 7 || !out.RenderedAt.Equal(now) {
				t.Errorf("unexpected output metadata %+v", out)
			}
		})
	}
}

func TestRenderDiff_MissingContent(t *testing.T) {
	r := New(source{2: "text"})
	old := domain.RevisionRef{ID: 1}

	_, err := r.RenderDiff(context.Background(), &old, domain.RevisionRef{ID: 2})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestPretty_Escapes(t *testing.T) {
	out := Pretty("", "<b>bold</b>")
	if strings.Contains(out, "<b>") {
		t.Errorf("markup was not escaped: %q", out)
	}
}
