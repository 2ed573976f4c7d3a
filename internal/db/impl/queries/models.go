package queries

import "database/sql"

type Page struct {
	ID        int64
	Namespace int64
	Title     string
	LatestRev sql.NullInt64
}

type Revision struct {
	ID           int64
	PageID       int64
	ParentID     sql.NullInt64
	Created      int64
	UserID       sql.NullInt64
	Username     string
	Comment      string
	Deleted      int64
	ContentModel string
	Current      bool
}

type AuthUser struct {
	UserID     int64
	AccountID  int64
	Username   string
	Email      string
	Password   string
	Admin      bool
	Suppressor bool
}
