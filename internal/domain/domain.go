package domain

// Account is what the login session stores about the caller.
type Account struct {
	UserID    int64
	AccountID int64
	Username  string
	Email     string
	Password  string
	Admin     bool
	// Suppressor accounts may see revisions hidden with DeletedRestricted.
	Suppressor bool
}
