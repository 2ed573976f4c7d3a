package domain

import (
	"strings"
)

const (
	Index    = "index"
	NoIndex  = "noindex"
	Follow   = "follow"
	NoFollow = "nofollow"
)

// RobotPolicy holds the two halves of a robots meta policy. Empty fields are left unspecified.
type RobotPolicy struct {
	Index  string
	Follow string
}

var (
	PolicyIndexFollow     = RobotPolicy{Index: Index, Follow: Follow}
	PolicyNoIndexNoFollow = RobotPolicy{Index: NoIndex, Follow: NoFollow}
)

// ParseRobotPolicy reads a comma separated policy such as "noindex,follow". Order does not matter and
// unknown tokens are ignored; when a token repeats, the last one wins.
func ParseRobotPolicy(s string) RobotPolicy {
	var p RobotPolicy
	for _, tok := range strings.Split(s, ",") {
		switch tok = strings.ToLower(strings.TrimSpace(tok)); tok {
		case Index, NoIndex:
			p.Index = tok
		case Follow, NoFollow:
			p.Follow = tok
		}
	}
	return p
}

func (p RobotPolicy) String() string {
	parts := make([]string, 0, 2)
	if p.Index != "" {
		parts = append(parts, p.Index)
	}
	if p.Follow != "" {
		parts = append(parts, p.Follow)
	}
	return strings.Join(parts, ",")
}

// Merge fills the fields p leaves unspecified from fallback.
func (p RobotPolicy) Merge(fallback RobotPolicy) RobotPolicy {
	if p.Index == "" {
		p.Index = fallback.Index
	}
	if p.Follow == "" {
		p.Follow = fallback.Follow
	}
	return p
}
