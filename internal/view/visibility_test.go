package view

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sidereusnuntius/pageview/internal/domain"
)

func TestDecideDisplay(t *testing.T) {
	normal := DisplayDecision{Allowed: true, Mode: DisplayNormal}
	permission := DisplayDecision{Allowed: false, Mode: DisplayPermissionBanner}
	confirm := DisplayDecision{Allowed: false, Mode: DisplayUnhideConfirm}
	viewing := DisplayDecision{Allowed: true, Mode: DisplayViewingDeleted}

	cases := []struct {
		deleted, rights, unhide bool
		expected                DisplayDecision
	}{
		{false, false, false, normal},
		{false, false, true, normal},
		{false, true, false, normal},
		{false, true, true, normal},
		{true, false, false, permission},
		{true, false, true, permission},
		{true, true, false, confirm},
		{true, true, true, viewing},
	}

	seen := map[DisplayDecision]bool{}
	for _, c := range cases {
		t.Run(fmt.Sprintf("deleted=%t,rights=%t,unhide=%t", c.deleted, c.rights, c.unhide), func(t *testing.T) {
			d := DecideDisplay(c.deleted, c.rights, c.unhide)
			if diff := cmp.Diff(c.expected, d); diff != "" {
				t.Error(diff)
			}
			seen[d] = true
		})
	}

	if len(seen) != 4 {
		t.Errorf("expected 4 distinct outcomes, got %d", len(seen))
	}
}

func TestCheckFetch(t *testing.T) {
	store := newFakeStore()
	store.add(foo, 56, domain.DeletedText)
	store.add(foo, 57, domain.DeletedText|domain.DeletedRestricted)
	store.add(foo, 58, domain.DeletedComment)

	suppressor := fakeAuthority{read: true, suppressed: true}
	private := fakeAuthority{read: false, deleted: true}

	cases := []struct {
		name    string
		rev     int64
		auth    fakeAuthority
		failure domain.FetchFailure
	}{
		{"visible", 55, anonymous, domain.FetchOK},
		{"deleted text", 56, anonymous, domain.FetchPermission},
		{"deleted text as admin", 56, admin, domain.FetchOK},
		{"suppressed as admin", 57, admin, domain.FetchPermission},
		{"suppressed as suppressor", 57, suppressor, domain.FetchOK},
		{"only comment deleted", 58, anonymous, domain.FetchOK},
		{"read denied", 55, private, domain.FetchPermission},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			o := Gate{}.CheckFetch(ctx, foo, store.rev(c.rev), c.auth)
			if o.Failure != c.failure {
				t.Errorf("expected failure %q, got %q", c.failure, o.Failure)
			}
			if o.OK() == (c.failure != domain.FetchOK) {
				t.Errorf("OK() = %t disagrees with failure %q", o.OK(), o.Failure)
			}
			if !o.OK() && o.Revision != nil {
				t.Error("failed outcome carries a revision")
			}
			if o.Page != foo || o.RevID != c.rev {
				t.Errorf("outcome lost the page identity: %+v", o)
			}
		})
	}
}

func TestCheckDisplay_Suppressed(t *testing.T) {
	store := newFakeStore()
	store.add(foo, 57, domain.DeletedText|domain.DeletedRestricted)

	d := Gate{}.CheckDisplay(ctx, store.rev(57), admin, true)
	if d.Allowed || d.Mode != DisplayPermissionBanner || !d.Suppressed {
		t.Errorf("admins must not see suppressed text: %+v", d)
	}

	b := d.Banner("")
	if b.Kind != domain.BannerPermission || !b.Suppressed {
		t.Errorf("unexpected banner %+v", b)
	}
}
