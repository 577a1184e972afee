package userrepo

import (
	"context"
	"database/sql"
	"fmt"

	"rentmart/model"
)

type Repo interface {
	Create(ctx context.Context, u *model.User) error
	ByEmail(ctx context.Context, email string) (*model.User, error)
	ByEmailAndRole(ctx context.Context, email, role string) (*model.User, error)
	ByID(ctx context.Context, id int64) (*model.User, error)
	List(ctx context.Context, limit, page int64) ([]model.User, error)
	Find(ctx context.Context, id int64, name, role string) ([]model.User, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

const userCols = `id, name, email, password_hash, role, status, created_at`

func (r *repo) Create(ctx context.Context, u *model.User) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO users(name, email, password_hash, role)
		VALUES ($1,$2,$3,$4)
		RETURNING id, status, created_at`,
		u.Name, u.Email, u.PasswordHash, u.Role,
	).Scan(&u.ID, &u.Status, &u.CreatedAt)
}

func (r *repo) ByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.one(ctx, `
		SELECT `+userCols+`
		FROM users
		WHERE lower(email) = lower($1)`, email)
}

func (r *repo) ByEmailAndRole(ctx context.Context, email, role string) (*model.User, error) {
	return r.one(ctx, `
		SELECT `+userCols+`
		FROM users
		WHERE lower(email) = lower($1) AND role = $2`, email, role)
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.User, error) {
	return r.one(ctx, `
		SELECT `+userCols+`
		FROM users
		WHERE id = $1`, id)
}

func (r *repo) one(ctx context.Context, q string, args ...any) (*model.User, error) {
	u := &model.User{}
	err := r.db.QueryRowContext(ctx, q, args...).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Status, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *repo) List(ctx context.Context, limit, page int64) ([]model.User, error) {
	q := `
		SELECT ` + userCols + `
		FROM users
		ORDER BY id`
	args := []any{}
	if limit > 0 && page > 0 {
		q += ` LIMIT $1 OFFSET $2`
		args = append(args, limit, (page-1)*limit)
	}
	return r.scanUsers(ctx, q, args...)
}

func (r *repo) Find(ctx context.Context, id int64, name, role string) ([]model.User, error) {
	q := `
		SELECT ` + userCols + `
		FROM users
		WHERE 1=1`
	args := []any{}
	add := func(cond string, v any) {
		args = append(args, v)
		q += fmt.Sprintf(cond, len(args))
	}
	if id > 0 {
		add(` AND id = $%d`, id)
	}
	if name != "" {
		add(` AND name = $%d`, name)
	}
	if role != "" {
		add(` AND role = $%d`, role)
	}
	q += ` ORDER BY id`
	return r.scanUsers(ctx, q, args...)
}

func (r *repo) scanUsers(ctx context.Context, q string, args ...any) ([]model.User, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Status, &u.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
