package categoryrepo

import (
	"context"
	"database/sql"
	"fmt"

	"rentmart/model"
)

type Repo interface {
	Create(ctx context.Context, c *model.Category) error
	ByName(ctx context.Context, name string) (*model.Category, error)
	ByID(ctx context.Context, id int64) (*model.Category, error)
	List(ctx context.Context, id int64, name string, limit, page int64) ([]model.Category, int64, error)
	Names(ctx context.Context) ([]string, error)
	Rename(ctx context.Context, id int64, name string) error
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, c *model.Category) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO categories(category_name)
		VALUES ($1)
		RETURNING id, created_at`,
		c.CategoryName,
	).Scan(&c.ID, &c.CreatedAt)
}

func (r *repo) ByName(ctx context.Context, name string) (*model.Category, error) {
	return r.one(ctx, `
		SELECT id, category_name, created_at
		FROM categories
		WHERE category_name = $1`, name)
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Category, error) {
	return r.one(ctx, `
		SELECT id, category_name, created_at
		FROM categories
		WHERE id = $1`, id)
}

func (r *repo) one(ctx context.Context, q string, args ...any) (*model.Category, error) {
	c := &model.Category{}
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&c.ID, &c.CategoryName, &c.CreatedAt); err != nil {
		return nil, err
	}
	return c, nil
}

// List filters by exact id and/or name substring, with limit/page pagination.
// The second return value is the total matching row count before pagination.
func (r *repo) List(ctx context.Context, id int64, name string, limit, page int64) ([]model.Category, int64, error) {
	where := ` WHERE 1=1`
	args := []any{}
	if id > 0 {
		args = append(args, id)
		where += fmt.Sprintf(` AND id = $%d`, len(args))
	}
	if name != "" {
		args = append(args, "%"+name+"%")
		where += fmt.Sprintf(` AND category_name ILIKE $%d`, len(args))
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	q := `
		SELECT id, category_name, created_at
		FROM categories` + where + `
		ORDER BY id`
	if limit > 0 && page > 0 {
		args = append(args, limit, (page-1)*limit)
		q += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.CategoryName, &c.CreatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, c)
	}
	return out, total, rows.Err()
}

func (r *repo) Names(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT category_name FROM categories ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *repo) Rename(ctx context.Context, id int64, name string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE categories SET category_name = $2, updated_at = NOW()
		WHERE id = $1`, id, name)
	return err
}
