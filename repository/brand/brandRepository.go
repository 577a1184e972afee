package brandrepo

import (
	"context"
	"database/sql"
	"fmt"

	"rentmart/model"
)

type Repo interface {
	Create(ctx context.Context, b *model.Brand) error
	ByName(ctx context.Context, name string) (*model.Brand, error)
	ByID(ctx context.Context, id int64) (*model.Brand, error)
	List(ctx context.Context, id int64, name string, categoryID, limit, page int64) ([]model.Brand, int64, error)
	Rename(ctx context.Context, id int64, name string) error
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, b *model.Brand) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO brands(brand_name, category_id)
		VALUES ($1,$2)
		RETURNING id, created_at`,
		b.BrandName, b.CategoryID,
	).Scan(&b.ID, &b.CreatedAt)
}

func (r *repo) ByName(ctx context.Context, name string) (*model.Brand, error) {
	return r.one(ctx, `
		SELECT id, brand_name, category_id, created_at
		FROM brands
		WHERE brand_name = $1`, name)
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Brand, error) {
	return r.one(ctx, `
		SELECT id, brand_name, category_id, created_at
		FROM brands
		WHERE id = $1`, id)
}

func (r *repo) one(ctx context.Context, q string, args ...any) (*model.Brand, error) {
	b := &model.Brand{}
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&b.ID, &b.BrandName, &b.CategoryID, &b.CreatedAt); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *repo) List(ctx context.Context, id int64, name string, categoryID, limit, page int64) ([]model.Brand, int64, error) {
	where := ` WHERE 1=1`
	args := []any{}
	if id > 0 {
		args = append(args, id)
		where += fmt.Sprintf(` AND id = $%d`, len(args))
	}
	if name != "" {
		args = append(args, "%"+name+"%")
		where += fmt.Sprintf(` AND brand_name ILIKE $%d`, len(args))
	}
	if categoryID > 0 {
		args = append(args, categoryID)
		where += fmt.Sprintf(` AND category_id = $%d`, len(args))
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM brands`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	q := `
		SELECT id, brand_name, category_id, created_at
		FROM brands` + where + `
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

	var out []model.Brand
	for rows.Next() {
		var b model.Brand
		if err := rows.Scan(&b.ID, &b.BrandName, &b.CategoryID, &b.CreatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, b)
	}
	return out, total, rows.Err()
}

func (r *repo) Rename(ctx context.Context, id int64, name string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE brands SET brand_name = $2, updated_at = NOW()
		WHERE id = $1`, id, name)
	return err
}
