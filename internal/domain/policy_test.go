package domain

import "testing"

func TestParseRobotPolicy(t *testing.T) {
	cases := []struct {
		in       string
		expected RobotPolicy
	}{
		{"index,follow", PolicyIndexFollow},
		{"noindex,nofollow", PolicyNoIndexNoFollow},
		{"noindex,follow", RobotPolicy{Index: NoIndex, Follow: Follow}},
		{"follow,noindex", RobotPolicy{Index: NoIndex, Follow: Follow}},
		{" NoIndex , Follow ", RobotPolicy{Index: NoIndex, Follow: Follow}},
		{"index,noindex", RobotPolicy{Index: NoIndex}},
		{"nofollow", RobotPolicy{Follow: NoFollow}},
		{"noarchive", RobotPolicy{}},
		{"", RobotPolicy{}},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			if p := ParseRobotPolicy(c.in); p != c.expected {
				t.Errorf("expected %+v, got %+v", c.expected, p)
			}
		})
	}
}

func TestRobotPolicy_String(t *testing.T) {
	for _, s := range []string{"index,follow", "noindex,nofollow", "noindex,follow", "index,nofollow", "noindex"} {
		if got := ParseRobotPolicy(s).String(); got != s {
			t.Errorf("%q does not survive a round trip: %q", s, got)
		}
	}

	if got := ParseRobotPolicy("follow,noindex").String(); got != "noindex,follow" {
		t.Errorf("expected index first, got %q", got)
	}
}

func TestRobotPolicy_Merge(t *testing.T) {
	p := RobotPolicy{Index: NoIndex}.Merge(PolicyIndexFollow)
	if p != (RobotPolicy{Index: NoIndex, Follow: Follow}) {
		t.Errorf("unexpected merge result %+v", p)
	}
	if PolicyNoIndexNoFollow.Merge(PolicyIndexFollow) != PolicyNoIndexNoFollow {
		t.Error("merge overwrote specified fields")
	}
}
