package ordersvc

import (
	"context"
	"database/sql"
	"errors"
	"time"

	orderrepo "rentmart/repository/order"

	"rentmart/model"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// errors used by controllers

type ErrCode string

const (
	ErrProductNotFound ErrCode = "PRODUCT_NOT_FOUND"
	ErrOrderNotFound   ErrCode = "ORDER_NOT_FOUND"
	ErrDateConflict    ErrCode = "DATE_CONFLICT"
	ErrNotForSale      ErrCode = "NOT_FOR_SALE"
	ErrNotForRent      ErrCode = "NOT_FOR_RENT"
	ErrInvalidDates    ErrCode = "INVALID_DATE_RANGE"
	ErrInvalidQuantity ErrCode = "INVALID_QUANTITY"
	ErrInvalidType     ErrCode = "INVALID_ORDER_TYPE"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// PerDayRate is the flat daily rental surcharge. It is not derived from the
// product price.
const PerDayRate = 50.00

type Repo interface {
	ProductForUpdate(ctx context.Context, tx *sql.Tx, productID int64) (*model.Product, error)
	HasOverlappingRental(ctx context.Context, tx *sql.Tx, productID int64, start, end time.Time) (bool, error)
	Insert(ctx context.Context, tx *sql.Tx, o *model.Order) error

	ByID(ctx context.Context, id int64) (*model.Order, error)
	DeleteByID(ctx context.Context, id int64) (int64, error)

	ListByType(ctx context.Context, orderType string, userID, limit, page int64) ([]orderrepo.ListRow, error)
	ListOrders(ctx context.Context, id, userID, limit, page int64) ([]orderrepo.OrderRow, error)
	DetailByID(ctx context.Context, id int64) (*orderrepo.Detail, error)
}

type Service interface {
	// PlaceSale records a buy order with the product price snapshotted at
	// order time. Quantity is recorded but not reconciled against stock.
	PlaceSale(ctx context.Context, userID, productID, quantity int64) (*model.Order, error)

	// PlaceRental books a product for the closed date range [rentStart, rentEnd].
	PlaceRental(ctx context.Context, userID, productID, quantity int64, rentStart, rentEnd time.Time) (*model.Order, error)

	// Delete removes an order permanently, releasing its date range.
	Delete(ctx context.Context, orderID int64) error

	ListByType(ctx context.Context, orderType string, limit, page int64) ([]orderrepo.ListRow, error)
	MyList(ctx context.Context, userID int64, orderType string, limit, page int64) ([]orderrepo.ListRow, error)
	Orders(ctx context.Context, id, userID, limit, page int64) ([]orderrepo.OrderRow, error)
	Detail(ctx context.Context, id int64) (*orderrepo.Detail, error)
}

// ----- Service implementation -----

type service struct {
	db *sql.DB
	r  Repo
}

func New(db *sql.DB, r Repo) Service { return &service{db: db, r: r} }

func (s *service) PlaceSale(ctx context.Context, userID, productID, quantity int64) (*model.Order, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	p, err := s.r.ProductForUpdate(ctx, tx, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = makeErr(ErrProductNotFound)
		}
		return nil, err
	}
	if !p.IsForSale {
		err = makeErr(ErrNotForSale)
		return nil, err
	}
	if quantity <= 0 {
		err = makeErr(ErrInvalidQuantity)
		return nil, err
	}

	o := &model.Order{
		UserID:       userID,
		ProductID:    productID,
		ProductPrice: p.ProductPrice,
		Quantity:     quantity,
		OrderType:    model.OrderBuy,
		TotalCost:    p.ProductPrice * float64(quantity),
		OrderDate:    time.Now().UTC(),
	}
	if err = s.r.Insert(ctx, tx, o); err != nil {
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return o, nil
}

// PlaceRental runs the availability check and the insert inside one
// transaction that holds the product row lock, so concurrent bookings for the
// same product serialize. The orders table additionally carries a range
// exclusion constraint; a violation surfacing from Insert is reported as the
// same conflict as a failed availability check.
func (s *service) PlaceRental(ctx context.Context, userID, productID, quantity int64, rentStart, rentEnd time.Time) (*model.Order, error) {
	rentStart = startOfDay(rentStart)
	rentEnd = startOfDay(rentEnd)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	p, err := s.r.ProductForUpdate(ctx, tx, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = makeErr(ErrProductNotFound)
		}
		return nil, err
	}

	booked, err := s.r.HasOverlappingRental(ctx, tx, productID, rentStart, rentEnd)
	if err != nil {
		return nil, err
	}
	if booked {
		err = makeErr(ErrDateConflict)
		return nil, err
	}
	if !p.IsForRent {
		err = makeErr(ErrNotForRent)
		return nil, err
	}
	if rentStart.Before(startOfDay(time.Now().UTC())) || !rentEnd.After(rentStart) {
		err = makeErr(ErrInvalidDates)
		return nil, err
	}
	if quantity <= 0 {
		err = makeErr(ErrInvalidQuantity)
		return nil, err
	}

	days, total := Quote(p.ProductPrice, quantity, rentStart, rentEnd)
	perDay := PerDayRate

	o := &model.Order{
		UserID:       userID,
		ProductID:    productID,
		ProductPrice: p.ProductPrice,
		Quantity:     quantity,
		OrderType:    model.OrderRent,
		TotalCost:    total,
		OrderDate:    time.Now().UTC(),
		PerDay:       &perDay,
		RentStart:    &rentStart,
		RentEnd:      &rentEnd,
		TotalDays:    &days,
	}
	if err = s.r.Insert(ctx, tx, o); err != nil {
		if isExclusionViolation(err) {
			err = makeErr(ErrDateConflict)
		}
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		if isExclusionViolation(err) {
			err = makeErr(ErrDateConflict)
		}
		return nil, err
	}
	return o, nil
}

func (s *service) Delete(ctx context.Context, orderID int64) error {
	if _, err := s.r.ByID(ctx, orderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return makeErr(ErrOrderNotFound)
		}
		return err
	}

	n, err := s.r.DeleteByID(ctx, orderID)
	if err != nil {
		return err
	}
	// Someone else deleted it between the read and the delete.
	if n == 0 {
		return makeErr(ErrOrderNotFound)
	}
	return nil
}

func (s *service) ListByType(ctx context.Context, orderType string, limit, page int64) ([]orderrepo.ListRow, error) {
	return s.listByType(ctx, orderType, 0, limit, page)
}

func (s *service) MyList(ctx context.Context, userID int64, orderType string, limit, page int64) ([]orderrepo.ListRow, error) {
	return s.listByType(ctx, orderType, userID, limit, page)
}

func (s *service) listByType(ctx context.Context, orderType string, userID, limit, page int64) ([]orderrepo.ListRow, error) {
	if orderType != string(model.OrderBuy) && orderType != string(model.OrderRent) {
		return nil, makeErr(ErrInvalidType)
	}
	rows, err := s.r.ListByType(ctx, orderType, userID, limit, page)
	if err != nil {
		return nil, err
	}
	if orderType == string(model.OrderRent) {
		now := time.Now().UTC()
		for i := range rows {
			if rows[i].RentStart != nil && rows[i].RentEnd != nil {
				rows[i].Status = StatusAt(now, *rows[i].RentStart, *rows[i].RentEnd)
			}
		}
	}
	return rows, nil
}

func (s *service) Orders(ctx context.Context, id, userID, limit, page int64) ([]orderrepo.OrderRow, error) {
	return s.r.ListOrders(ctx, id, userID, limit, page)
}

func (s *service) Detail(ctx context.Context, id int64) (*orderrepo.Detail, error) {
	d, err := s.r.DetailByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrOrderNotFound)
		}
		return nil, err
	}
	if d.OrderType == string(model.OrderRent) && d.RentStart != nil && d.RentEnd != nil {
		d.Status = StatusAt(time.Now().UTC(), *d.RentStart, *d.RentEnd)
	}
	return d, nil
}

func isExclusionViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ExclusionViolation
}
