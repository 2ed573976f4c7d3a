package domain

import "strings"

const (
	NamespaceMain    = 0
	NamespaceProject = 4
	NamespaceHelp    = 12
)

// PageRef identifies a page. The zero ID is reserved for pages that have never been created, so a PageRef
// built from a URL title alone does not exist until a lookup fills the ID in.
type PageRef struct {
	ID        int64
	Namespace int
	Title     string
}

func (p PageRef) Exists() bool {
	return p.ID != 0
}

// DBKey is the title as it is stored and used in URLs: spaces become underscores.
func (p PageRef) DBKey() string {
	return strings.ReplaceAll(p.Title, " ", "_")
}

// TitleFromKey reverses DBKey.
func TitleFromKey(key string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(key, "_", " ")), " ")
}
