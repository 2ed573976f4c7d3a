package queries

import "context"

const authUserByUsername = `SELECT u.id, a.id, u.username, a.email, a.password, a.admin, a.suppressor
FROM users u
JOIN accounts a ON a.user_id = u.id
WHERE u.username = ?`

func (q *Queries) AuthUserByUsername(ctx context.Context, username string) (AuthUser, error) {
	row := q.db.QueryRowContext(ctx, authUserByUsername, username)
	var i AuthUser
	err := row.Scan(&i.UserID, &i.AccountID, &i.Username, &i.Email, &i.Password, &i.Admin, &i.Suppressor)
	return i, err
}

const authUserByEmail = `SELECT u.id, a.id, u.username, a.email, a.password, a.admin, a.suppressor
FROM users u
JOIN accounts a ON a.user_id = u.id
WHERE a.email = ?`

func (q *Queries) AuthUserByEmail(ctx context.Context, email string) (AuthUser, error) {
	row := q.db.QueryRowContext(ctx, authUserByEmail, email)
	var i AuthUser
	err := row.Scan(&i.UserID, &i.AccountID, &i.Username, &i.Email, &i.Password, &i.Admin, &i.Suppressor)
	return i, err
}

const authUserByID = `SELECT u.id, a.id, u.username, a.email, a.password, a.admin, a.suppressor
FROM users u
JOIN accounts a ON a.user_id = u.id
WHERE u.id = ?`

func (q *Queries) AuthUserByID(ctx context.Context, id int64) (AuthUser, error) {
	row := q.db.QueryRowContext(ctx, authUserByID, id)
	var i AuthUser
	err := row.Scan(&i.UserID, &i.AccountID, &i.Username, &i.Email, &i.Password, &i.Admin, &i.Suppressor)
	return i, err
}

const createLocalUser = `INSERT INTO users (username, created) VALUES (?, ?) RETURNING id`

type CreateLocalUserParams struct {
	Username string
	Created  int64
}

func (q *Queries) CreateLocalUser(ctx context.Context, arg CreateLocalUserParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, createLocalUser, arg.Username, arg.Created)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const createAccount = `INSERT INTO accounts (user_id, email, password, admin, suppressor) VALUES (?, ?, ?, ?, ?)`

type CreateAccountParams struct {
	UserID     int64
	Email      string
	Password   string
	Admin      bool
	Suppressor bool
}

func (q *Queries) CreateAccount(ctx context.Context, arg CreateAccountParams) error {
	_, err := q.db.ExecContext(ctx, createAccount, arg.UserID, arg.Email, arg.Password, arg.Admin, arg.Suppressor)
	return err
}
