// repository/order/orderRepository.go
package orderrepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"rentmart/model"
)

// ListRow is the joined listing shape for order-type and my-list queries.
// Status is filled in by the service for rent rows.
type ListRow struct {
	ID          int64              `json:"id"`
	UserName    string             `json:"name"`
	ProductName string             `json:"productName"`
	OrderDate   time.Time          `json:"orderDate"`
	RentStart   *time.Time         `json:"rentStart,omitempty"`
	RentEnd     *time.Time         `json:"rentEnd,omitempty"`
	Status      model.RentalStatus `json:"status,omitempty"`
}

// OrderRow is the generic joined orders listing.
type OrderRow struct {
	ID           int64     `json:"id"`
	UserName     string    `json:"name"`
	OrderType    string    `json:"orderType"`
	ProductName  string    `json:"productName"`
	Quantity     int64     `json:"quantity"`
	ProductPrice float64   `json:"productPrice"`
	TotalCost    float64   `json:"totalCost"`
	OrderDate    time.Time `json:"orderDate"`
}

// AdminRow is the order-management search shape.
type AdminRow struct {
	ID          int64     `json:"id"`
	OrderDate   time.Time `json:"orderDate"`
	ProductID   int64     `json:"productId"`
	OrderType   string    `json:"orderType"`
	ProductName string    `json:"productName"`
	RenterName  string    `json:"renterName"`
	LenderName  string    `json:"lenderName"`
}

// Detail is one order joined with both parties' identities.
type Detail struct {
	ID           int64              `json:"id"`
	ProductID    int64              `json:"productId"`
	ProductPrice float64            `json:"productPrice"`
	Quantity     int64              `json:"quantity"`
	TotalCost    float64            `json:"totalCost"`
	OrderType    string             `json:"orderType"`
	RenterName   string             `json:"renterName"`
	RenterEmail  string             `json:"renterEmail"`
	LenderName   string             `json:"lenderName"`
	LenderEmail  string             `json:"lenderEmail"`
	RentStart    *time.Time         `json:"rentStart,omitempty"`
	RentEnd      *time.Time         `json:"rentEnd,omitempty"`
	Status       model.RentalStatus `json:"status,omitempty"`
}

type Repo interface {
	// Booking path. ProductForUpdate locks the product row so concurrent
	// bookings for the same product serialize on it.
	ProductForUpdate(ctx context.Context, tx *sql.Tx, productID int64) (*model.Product, error)
	HasOverlappingRental(ctx context.Context, tx *sql.Tx, productID int64, start, end time.Time) (bool, error)
	Insert(ctx context.Context, tx *sql.Tx, o *model.Order) error

	ByID(ctx context.Context, id int64) (*model.Order, error)
	DeleteByID(ctx context.Context, id int64) (int64, error)
	CountByProduct(ctx context.Context, productID int64) (int64, error)

	ListByType(ctx context.Context, orderType string, userID, limit, page int64) ([]ListRow, error)
	ListOrders(ctx context.Context, id, userID, limit, page int64) ([]OrderRow, error)
	SearchOrders(ctx context.Context, id int64, renterName, lenderName string, productID int64, productName, sortBy string, limit, page int64) ([]AdminRow, int64, error)
	DetailByID(ctx context.Context, id int64) (*Detail, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) ProductForUpdate(ctx context.Context, tx *sql.Tx, productID int64) (*model.Product, error) {
	const q = `
		SELECT id, product_name, product_description, product_price,
			is_for_sale, is_for_rent, brand_id, category_id, owner_id, edited_by, created_at
		FROM products
		WHERE id = $1
		FOR UPDATE`
	p := &model.Product{}
	err := tx.QueryRowContext(ctx, q, productID).Scan(
		&p.ID, &p.ProductName, &p.ProductDescription, &p.ProductPrice,
		&p.IsForSale, &p.IsForRent, &p.BrandID, &p.CategoryID, &p.OwnerID, &p.EditedBy, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// HasOverlappingRental applies the closed-interval rule: [s1,e1] and [s2,e2]
// overlap iff s1 <= e2 and s2 <= e1. A shared endpoint counts as overlap.
func (r *repo) HasOverlappingRental(ctx context.Context, tx *sql.Tx, productID int64, start, end time.Time) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1
			FROM orders
			WHERE product_id = $1
			AND order_type = 'rent'
			AND rent_start <= $3
			AND $2 <= rent_end
		)`
	var found bool
	err := tx.QueryRowContext(ctx, q, productID, start, end).Scan(&found)
	return found, err
}

func (r *repo) Insert(ctx context.Context, tx *sql.Tx, o *model.Order) error {
	const q = `
		INSERT INTO orders (user_id, product_id, product_price, quantity, order_type,
			total_cost, order_date, per_day, rent_start, rent_end, total_days)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING id, created_at`
	return tx.QueryRowContext(ctx, q,
		o.UserID, o.ProductID, o.ProductPrice, o.Quantity, o.OrderType,
		o.TotalCost, o.OrderDate, o.PerDay, o.RentStart, o.RentEnd, o.TotalDays,
	).Scan(&o.ID, &o.CreatedAt)
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Order, error) {
	const q = `
		SELECT id, user_id, product_id, product_price, quantity, order_type,
			total_cost, order_date, per_day, rent_start, rent_end, total_days, created_at
		FROM orders
		WHERE id = $1`
	o := &model.Order{}
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&o.ID, &o.UserID, &o.ProductID, &o.ProductPrice, &o.Quantity, &o.OrderType,
		&o.TotalCost, &o.OrderDate, &o.PerDay, &o.RentStart, &o.RentEnd, &o.TotalDays, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *repo) DeleteByID(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *repo) CountByProduct(ctx context.Context, productID int64) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders WHERE product_id = $1`, productID).Scan(&n)
	return n, err
}

// ListByType lists buy or rent orders joined with user and product names.
// userID = 0 lists across all users.
func (r *repo) ListByType(ctx context.Context, orderType string, userID, limit, page int64) ([]ListRow, error) {
	q := `
		SELECT o.id, COALESCE(u.name, ''), COALESCE(p.product_name, ''),
			o.order_date, o.rent_start, o.rent_end
		FROM orders o
		LEFT JOIN users u ON o.user_id = u.id
		LEFT JOIN products p ON o.product_id = p.id
		WHERE o.order_type = $1`
	args := []any{orderType}
	if userID > 0 {
		args = append(args, userID)
		q += fmt.Sprintf(` AND o.user_id = $%d`, len(args))
	}
	q += ` ORDER BY o.id`
	if limit > 0 && page > 0 {
		args = append(args, limit, (page-1)*limit)
		q += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ListRow
	for rows.Next() {
		var l ListRow
		if err := rows.Scan(&l.ID, &l.UserName, &l.ProductName, &l.OrderDate, &l.RentStart, &l.RentEnd); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *repo) ListOrders(ctx context.Context, id, userID, limit, page int64) ([]OrderRow, error) {
	q := `
		SELECT o.id, COALESCE(u.name, ''), o.order_type, COALESCE(p.product_name, ''),
			o.quantity, o.product_price, o.total_cost, o.order_date
		FROM orders o
		LEFT JOIN users u ON o.user_id = u.id
		LEFT JOIN products p ON o.product_id = p.id
		WHERE 1=1`
	args := []any{}
	if id > 0 {
		args = append(args, id)
		q += fmt.Sprintf(` AND o.id = $%d`, len(args))
	}
	if userID > 0 {
		args = append(args, userID)
		q += fmt.Sprintf(` AND o.user_id = $%d`, len(args))
	}
	q += ` ORDER BY o.id`
	if limit > 0 && page > 0 {
		args = append(args, limit, (page-1)*limit)
		q += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []OrderRow
	for rows.Next() {
		var o OrderRow
		if err := rows.Scan(&o.ID, &o.UserName, &o.OrderType, &o.ProductName,
			&o.Quantity, &o.ProductPrice, &o.TotalCost, &o.OrderDate); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *repo) SearchOrders(ctx context.Context, id int64, renterName, lenderName string, productID int64, productName, sortBy string, limit, page int64) ([]AdminRow, int64, error) {
	where := ` WHERE 1=1`
	args := []any{}
	if id > 0 {
		args = append(args, id)
		where += fmt.Sprintf(` AND o.id = $%d`, len(args))
	}
	if productID > 0 {
		args = append(args, productID)
		where += fmt.Sprintf(` AND o.product_id = $%d`, len(args))
	}
	if productName != "" {
		args = append(args, "%"+productName+"%")
		where += fmt.Sprintf(` AND p.product_name ILIKE $%d`, len(args))
	}
	if renterName != "" {
		args = append(args, "%"+renterName+"%")
		where += fmt.Sprintf(` AND renter.name ILIKE $%d`, len(args))
	}
	if lenderName != "" {
		args = append(args, "%"+lenderName+"%")
		where += fmt.Sprintf(` AND lender.name ILIKE $%d`, len(args))
	}

	const from = `
		FROM orders o
		LEFT JOIN products p ON o.product_id = p.id
		LEFT JOIN users renter ON o.user_id = renter.id
		LEFT JOIN users lender ON p.owner_id = lender.id`

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(o.id)`+from+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	order := ` ORDER BY o.id ASC`
	if sortBy == "desc" {
		order = ` ORDER BY o.id DESC`
	}

	q := `
		SELECT o.id, o.order_date, o.product_id, o.order_type,
			COALESCE(p.product_name, ''), COALESCE(renter.name, ''), COALESCE(lender.name, '')` +
		from + where + order
	if limit > 0 && page > 0 {
		args = append(args, limit, (page-1)*limit)
		q += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []AdminRow
	for rows.Next() {
		var a AdminRow
		if err := rows.Scan(&a.ID, &a.OrderDate, &a.ProductID, &a.OrderType,
			&a.ProductName, &a.RenterName, &a.LenderName); err != nil {
			return nil, 0, err
		}
		out = append(out, a)
	}
	return out, total, rows.Err()
}

func (r *repo) DetailByID(ctx context.Context, id int64) (*Detail, error) {
	const q = `
		SELECT o.id, o.product_id, o.product_price, o.quantity, o.total_cost, o.order_type,
			COALESCE(renter.name, ''), COALESCE(renter.email, ''),
			COALESCE(lender.name, ''), COALESCE(lender.email, ''),
			o.rent_start, o.rent_end
		FROM orders o
		LEFT JOIN products p ON o.product_id = p.id
		LEFT JOIN users renter ON o.user_id = renter.id
		LEFT JOIN users lender ON p.owner_id = lender.id
		WHERE o.id = $1`
	d := &Detail{}
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&d.ID, &d.ProductID, &d.ProductPrice, &d.Quantity, &d.TotalCost, &d.OrderType,
		&d.RenterName, &d.RenterEmail, &d.LenderName, &d.LenderEmail,
		&d.RentStart, &d.RentEnd)
	if err != nil {
		return nil, err
	}
	return d, nil
}
