package productrepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"rentmart/model"
)

// SearchRow is one product joined with its category and brand names, used by
// the cross-entity search endpoint.
type SearchRow struct {
	Category    string `json:"category"`
	ProductName string `json:"productName"`
	BrandID     int64  `json:"brandId"`
	BrandName   string `json:"brandName"`
}

// ItemRow is the admin item-management listing shape.
type ItemRow struct {
	ProductID int64     `json:"productId"`
	OwnerName string    `json:"ownerName"`
	CreatedAt time.Time `json:"created_at"`
}

// ItemStats aggregates order history for one product.
type ItemStats struct {
	Product     model.Product `json:"product"`
	TotalDays   int64         `json:"totalDays"`
	TimesRented int64         `json:"timesRented"`
	ItemsSold   int64         `json:"itemSold"`
}

// Update carries the patchable product fields; nil means leave unchanged.
type Update struct {
	ProductName        *string
	ProductDescription *string
	ProductPrice       *float64
	IsForSale          *bool
	IsForRent          *bool
	BrandID            *int64
	CategoryID         *int64
	EditedBy           int64
}

type Repo interface {
	Create(ctx context.Context, p *model.Product) error
	ByName(ctx context.Context, name string) (*model.Product, error)
	ByID(ctx context.Context, id int64) (*model.Product, error)
	List(ctx context.Context, id int64, name string, brandID, categoryID, limit, page int64) ([]model.Product, int64, error)
	Edit(ctx context.Context, id int64, u Update) (*model.Product, error)
	Delete(ctx context.Context, id int64) (int64, error)
	Search(ctx context.Context, search, productName, categoryName, brandName string, limit, page int64) ([]SearchRow, int64, error)
	SearchItems(ctx context.Context, id int64, ownerName, sortBy string, limit, page int64) ([]ItemRow, int64, error)
	Stats(ctx context.Context, id int64) (*ItemStats, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

const productCols = `id, product_name, product_description, product_price,
	is_for_sale, is_for_rent, brand_id, category_id, owner_id, edited_by, created_at`

func (r *repo) Create(ctx context.Context, p *model.Product) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO products(product_name, product_description, product_price,
			is_for_sale, is_for_rent, brand_id, category_id, owner_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id, created_at`,
		p.ProductName, p.ProductDescription, p.ProductPrice,
		p.IsForSale, p.IsForRent, p.BrandID, p.CategoryID, p.OwnerID,
	).Scan(&p.ID, &p.CreatedAt)
}

func (r *repo) ByName(ctx context.Context, name string) (*model.Product, error) {
	return r.one(ctx, `
		SELECT `+productCols+`
		FROM products
		WHERE product_name = $1`, name)
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Product, error) {
	return r.one(ctx, `
		SELECT `+productCols+`
		FROM products
		WHERE id = $1`, id)
}

func (r *repo) one(ctx context.Context, q string, args ...any) (*model.Product, error) {
	p := &model.Product{}
	err := r.db.QueryRowContext(ctx, q, args...).Scan(
		&p.ID, &p.ProductName, &p.ProductDescription, &p.ProductPrice,
		&p.IsForSale, &p.IsForRent, &p.BrandID, &p.CategoryID, &p.OwnerID, &p.EditedBy, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repo) List(ctx context.Context, id int64, name string, brandID, categoryID, limit, page int64) ([]model.Product, int64, error) {
	where := ` WHERE 1=1`
	args := []any{}
	if id > 0 {
		args = append(args, id)
		where += fmt.Sprintf(` AND id = $%d`, len(args))
	}
	if name != "" {
		args = append(args, "%"+name+"%")
		where += fmt.Sprintf(` AND product_name ILIKE $%d`, len(args))
	}
	if brandID > 0 {
		args = append(args, brandID)
		where += fmt.Sprintf(` AND brand_id = $%d`, len(args))
	}
	if categoryID > 0 {
		args = append(args, categoryID)
		where += fmt.Sprintf(` AND category_id = $%d`, len(args))
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	q := `
		SELECT ` + productCols + `
		FROM products` + where + `
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

	var out []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.ProductName, &p.ProductDescription, &p.ProductPrice,
			&p.IsForSale, &p.IsForRent, &p.BrandID, &p.CategoryID, &p.OwnerID, &p.EditedBy, &p.CreatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, p)
	}
	return out, total, rows.Err()
}

func (r *repo) Edit(ctx context.Context, id int64, u Update) (*model.Product, error) {
	set := `updated_at = NOW()`
	args := []any{id}
	add := func(col string, v any) {
		args = append(args, v)
		set += fmt.Sprintf(`, %s = $%d`, col, len(args))
	}
	if u.ProductName != nil {
		add("product_name", *u.ProductName)
	}
	if u.ProductDescription != nil {
		add("product_description", *u.ProductDescription)
	}
	if u.ProductPrice != nil {
		add("product_price", *u.ProductPrice)
	}
	if u.IsForSale != nil {
		add("is_for_sale", *u.IsForSale)
	}
	if u.IsForRent != nil {
		add("is_for_rent", *u.IsForRent)
	}
	if u.BrandID != nil {
		add("brand_id", *u.BrandID)
	}
	if u.CategoryID != nil {
		add("category_id", *u.CategoryID)
	}
	add("edited_by", u.EditedBy)

	res, err := r.db.ExecContext(ctx, `UPDATE products SET `+set+` WHERE id = $1`, args...)
	if err != nil {
		return nil, err
	}
	if aff, _ := res.RowsAffected(); aff == 0 {
		return nil, sql.ErrNoRows
	}
	return r.ByID(ctx, id)
}

func (r *repo) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *repo) Search(ctx context.Context, search, productName, categoryName, brandName string, limit, page int64) ([]SearchRow, int64, error) {
	where := ` WHERE 1=1`
	args := []any{}
	if search != "" {
		args = append(args, "%"+search+"%")
		n := len(args)
		where += fmt.Sprintf(` AND (p.product_name ILIKE $%d OR c.category_name ILIKE $%d OR b.brand_name ILIKE $%d)`, n, n, n)
	}
	if productName != "" {
		args = append(args, "%"+productName+"%")
		where += fmt.Sprintf(` AND p.product_name ILIKE $%d`, len(args))
	}
	if categoryName != "" {
		args = append(args, "%"+categoryName+"%")
		where += fmt.Sprintf(` AND c.category_name ILIKE $%d`, len(args))
	}
	if brandName != "" {
		args = append(args, "%"+brandName+"%")
		where += fmt.Sprintf(` AND b.brand_name ILIKE $%d`, len(args))
	}

	const from = `
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		LEFT JOIN brands b ON p.brand_id = b.id`

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(p.id)`+from+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	q := `
		SELECT c.category_name, p.product_name, b.id, b.brand_name` + from + where + `
		ORDER BY p.id`
	if limit > 0 && page > 0 {
		args = append(args, limit, (page-1)*limit)
		q += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []SearchRow
	for rows.Next() {
		var s SearchRow
		var cat, brand sql.NullString
		var brandID sql.NullInt64
		if err := rows.Scan(&cat, &s.ProductName, &brandID, &brand); err != nil {
			return nil, 0, err
		}
		s.Category = cat.String
		s.BrandID = brandID.Int64
		s.BrandName = brand.String
		out = append(out, s)
	}
	return out, total, rows.Err()
}

func (r *repo) SearchItems(ctx context.Context, id int64, ownerName, sortBy string, limit, page int64) ([]ItemRow, int64, error) {
	where := ` WHERE 1=1`
	args := []any{}
	if id > 0 {
		args = append(args, id)
		where += fmt.Sprintf(` AND p.id = $%d`, len(args))
	}
	if ownerName != "" {
		args = append(args, "%"+ownerName+"%")
		where += fmt.Sprintf(` AND u.name ILIKE $%d`, len(args))
	}

	const from = `
		FROM products p
		LEFT JOIN users u ON p.owner_id = u.id`

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(p.id)`+from+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	order := ` ORDER BY p.id ASC`
	if sortBy == "desc" {
		order = ` ORDER BY p.id DESC`
	}

	q := `
		SELECT p.id, COALESCE(u.name, ''), p.created_at` + from + where + order
	if limit > 0 && page > 0 {
		args = append(args, limit, (page-1)*limit)
		q += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []ItemRow
	for rows.Next() {
		var it ItemRow
		if err := rows.Scan(&it.ProductID, &it.OwnerName, &it.CreatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, it)
	}
	return out, total, rows.Err()
}

func (r *repo) Stats(ctx context.Context, id int64) (*ItemStats, error) {
	p, err := r.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	st := &ItemStats{Product: *p}
	err = r.db.QueryRowContext(ctx, `
		SELECT
			COALESCE(SUM(CASE WHEN o.order_type = 'rent' THEN o.total_days ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN o.order_type = 'rent' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN o.order_type = 'buy' THEN o.quantity ELSE 0 END), 0)
		FROM orders o
		WHERE o.product_id = $1`, id,
	).Scan(&st.TotalDays, &st.TimesRented, &st.ItemsSold)
	if err != nil {
		return nil, err
	}
	return st, nil
}
