// service/order/order_service_test.go
package ordersvc

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"rentmart/model"
	orderrepo "rentmart/repository/order"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// ledgerMock keeps booked orders in memory and applies the same
// closed-interval predicate the SQL layer does.
type ledgerMock struct {
	products  map[int64]*model.Product
	orders    []*model.Order
	nextID    int64
	insertErr error
}

var _ Repo = (*ledgerMock)(nil)

func newLedger(products ...*model.Product) *ledgerMock {
	m := &ledgerMock{products: map[int64]*model.Product{}, nextID: 1}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

func (m *ledgerMock) ProductForUpdate(ctx context.Context, tx *sql.Tx, productID int64) (*model.Product, error) {
	p, ok := m.products[productID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return p, nil
}

func (m *ledgerMock) HasOverlappingRental(ctx context.Context, tx *sql.Tx, productID int64, start, end time.Time) (bool, error) {
	for _, o := range m.orders {
		if o.ProductID != productID || o.OrderType != model.OrderRent {
			continue
		}
		if Overlaps(*o.RentStart, *o.RentEnd, start, end) {
			return true, nil
		}
	}
	return false, nil
}

func (m *ledgerMock) Insert(ctx context.Context, tx *sql.Tx, o *model.Order) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	o.ID = m.nextID
	m.nextID++
	m.orders = append(m.orders, o)
	return nil
}

func (m *ledgerMock) ByID(ctx context.Context, id int64) (*model.Order, error) {
	for _, o := range m.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *ledgerMock) DeleteByID(ctx context.Context, id int64) (int64, error) {
	for i, o := range m.orders {
		if o.ID == id {
			m.orders = append(m.orders[:i], m.orders[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *ledgerMock) ListByType(ctx context.Context, orderType string, userID, limit, page int64) ([]orderrepo.ListRow, error) {
	var out []orderrepo.ListRow
	for _, o := range m.orders {
		if string(o.OrderType) != orderType {
			continue
		}
		if userID > 0 && o.UserID != userID {
			continue
		}
		out = append(out, orderrepo.ListRow{
			ID: o.ID, OrderDate: o.OrderDate,
			RentStart: o.RentStart, RentEnd: o.RentEnd,
		})
	}
	return out, nil
}

func (m *ledgerMock) ListOrders(ctx context.Context, id, userID, limit, page int64) ([]orderrepo.OrderRow, error) {
	return nil, nil
}

func (m *ledgerMock) DetailByID(ctx context.Context, id int64) (*orderrepo.Detail, error) {
	o, err := m.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &orderrepo.Detail{
		ID: o.ID, ProductID: o.ProductID, OrderType: string(o.OrderType),
		RentStart: o.RentStart, RentEnd: o.RentEnd,
	}, nil
}

// newEngine wires the service to an in-memory ledger over a sqlmock
// connection that hands out transactions freely.
func newEngine(t *testing.T, products ...*model.Product) (Service, *ledgerMock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mock.MatchExpectationsInOrder(false)
	for i := 0; i < 32; i++ {
		mock.ExpectBegin()
		mock.ExpectCommit()
		mock.ExpectRollback()
	}

	ledger := newLedger(products...)
	return New(db, ledger), ledger
}

func day(offset int) time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func rentable(id int64, price float64) *model.Product {
	return &model.Product{ID: id, ProductName: "drill", ProductPrice: price, IsForRent: true, IsForSale: true}
}

// --- rental booking ---

func TestPlaceRental_Success(t *testing.T) {
	svc, ledger := newEngine(t, rentable(1, 100))

	o, err := svc.PlaceRental(context.Background(), 7, 1, 2, day(1), day(5))
	require.NoError(t, err)
	require.Equal(t, model.OrderRent, o.OrderType)
	require.Equal(t, int64(5), *o.TotalDays)
	require.Equal(t, PerDayRate, *o.PerDay)
	require.Equal(t, 100*2+50.0*5, o.TotalCost)
	require.Len(t, ledger.orders, 1)
}

func TestPlaceRental_ProductNotFound(t *testing.T) {
	svc, _ := newEngine(t)

	_, err := svc.PlaceRental(context.Background(), 7, 99, 1, day(1), day(2))
	require.Error(t, err)
	require.Equal(t, ErrProductNotFound, Code(err))
}

func TestPlaceRental_OverlapSymmetry(t *testing.T) {
	a1, a2 := day(10), day(14)
	b1, b2 := day(12), day(20)

	// book A first, then B
	svc, _ := newEngine(t, rentable(1, 100))
	_, err := svc.PlaceRental(context.Background(), 7, 1, 1, a1, a2)
	require.NoError(t, err)
	_, err = svc.PlaceRental(context.Background(), 8, 1, 1, b1, b2)
	require.Equal(t, ErrDateConflict, Code(err))

	// book B first, then A
	svc, _ = newEngine(t, rentable(1, 100))
	_, err = svc.PlaceRental(context.Background(), 8, 1, 1, b1, b2)
	require.NoError(t, err)
	_, err = svc.PlaceRental(context.Background(), 7, 1, 1, a1, a2)
	require.Equal(t, ErrDateConflict, Code(err))
}

func TestPlaceRental_SharedEndpointIsConflict(t *testing.T) {
	svc, _ := newEngine(t, rentable(1, 100))

	_, err := svc.PlaceRental(context.Background(), 7, 1, 1, day(1), day(5))
	require.NoError(t, err)

	// [day1,day5] and [day5,day10] share one endpoint; closed intervals, so
	// this is a conflict.
	_, err = svc.PlaceRental(context.Background(), 8, 1, 1, day(5), day(10))
	require.Equal(t, ErrDateConflict, Code(err))
}

func TestPlaceRental_RejectionIsIdempotent(t *testing.T) {
	svc, _ := newEngine(t, rentable(1, 100))

	_, err := svc.PlaceRental(context.Background(), 7, 1, 1, day(1), day(5))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = svc.PlaceRental(context.Background(), 8, 1, 1, day(2), day(4))
		require.Equal(t, ErrDateConflict, Code(err))
	}
}

func TestPlaceRental_PastStartRejected(t *testing.T) {
	svc, _ := newEngine(t, rentable(1, 100))

	_, err := svc.PlaceRental(context.Background(), 7, 1, 1, day(-1), day(30))
	require.Equal(t, ErrInvalidDates, Code(err))
}

func TestPlaceRental_EndNotAfterStartRejected(t *testing.T) {
	svc, _ := newEngine(t, rentable(1, 100))

	_, err := svc.PlaceRental(context.Background(), 7, 1, 1, day(3), day(3))
	require.Equal(t, ErrInvalidDates, Code(err))

	_, err = svc.PlaceRental(context.Background(), 7, 1, 1, day(3), day(2))
	require.Equal(t, ErrInvalidDates, Code(err))
}

func TestPlaceRental_NotForRent(t *testing.T) {
	p := rentable(1, 100)
	p.IsForRent = false
	svc, _ := newEngine(t, p)

	_, err := svc.PlaceRental(context.Background(), 7, 1, 1, day(1), day(2))
	require.Equal(t, ErrNotForRent, Code(err))
}

func TestPlaceRental_ZeroQuantity(t *testing.T) {
	svc, _ := newEngine(t, rentable(1, 100))

	_, err := svc.PlaceRental(context.Background(), 7, 1, 0, day(1), day(2))
	require.Equal(t, ErrInvalidQuantity, Code(err))
}

// The checks run in a fixed order and the first failure wins: a conflicting
// range on a product that is not rentable reports the conflict, not the flag.
func TestPlaceRental_CheckOrder(t *testing.T) {
	p := rentable(1, 100)
	svc, ledger := newEngine(t, p)

	_, err := svc.PlaceRental(context.Background(), 7, 1, 1, day(1), day(5))
	require.NoError(t, err)

	p.IsForRent = false
	_, err = svc.PlaceRental(context.Background(), 8, 1, 0, day(2), day(4))
	require.Equal(t, ErrDateConflict, Code(err))
	require.Len(t, ledger.orders, 1)

	// non-overlapping but invalid range on the same product: the flag check
	// comes before the date and quantity checks
	_, err = svc.PlaceRental(context.Background(), 8, 1, 0, day(40), day(39))
	require.Equal(t, ErrNotForRent, Code(err))
}

// A storage-level exclusion violation is the concurrent-writer case: the
// loser must observe the same conflict as a failed availability check.
func TestPlaceRental_ExclusionViolationIsConflict(t *testing.T) {
	svc, ledger := newEngine(t, rentable(1, 100))
	ledger.insertErr = &pgconn.PgError{Code: pgerrcode.ExclusionViolation}

	_, err := svc.PlaceRental(context.Background(), 7, 1, 1, day(1), day(5))
	require.Equal(t, ErrDateConflict, Code(err))
}

func TestPlaceRental_StorageFailurePropagates(t *testing.T) {
	svc, ledger := newEngine(t, rentable(1, 100))
	ledger.insertErr = errors.New("db down")

	_, err := svc.PlaceRental(context.Background(), 7, 1, 1, day(1), day(5))
	require.Error(t, err)
	require.Equal(t, ErrCode(""), Code(err))
}

// --- sale orders ---

func TestPlaceSale_Success(t *testing.T) {
	svc, ledger := newEngine(t, rentable(1, 250))

	o, err := svc.PlaceSale(context.Background(), 7, 1, 3)
	require.NoError(t, err)
	require.Equal(t, model.OrderBuy, o.OrderType)
	require.Equal(t, 750.0, o.TotalCost)
	require.Nil(t, o.RentStart)
	require.Nil(t, o.TotalDays)
	require.Len(t, ledger.orders, 1)
}

func TestPlaceSale_NotForSale(t *testing.T) {
	p := rentable(1, 100)
	p.IsForSale = false
	svc, _ := newEngine(t, p)

	_, err := svc.PlaceSale(context.Background(), 7, 1, 1)
	require.Equal(t, ErrNotForSale, Code(err))
}

func TestPlaceSale_ZeroQuantity(t *testing.T) {
	svc, _ := newEngine(t, rentable(1, 100))

	_, err := svc.PlaceSale(context.Background(), 7, 1, 0)
	require.Equal(t, ErrInvalidQuantity, Code(err))
}

// Sale and rental availability are independent: a product fully booked for
// rental still sells.
func TestPlaceSale_UnaffectedByRentalBookings(t *testing.T) {
	svc, _ := newEngine(t, rentable(1, 100))

	_, err := svc.PlaceRental(context.Background(), 7, 1, 1, day(1), day(365))
	require.NoError(t, err)

	_, err = svc.PlaceSale(context.Background(), 8, 1, 1)
	require.NoError(t, err)
}

// --- delete ---

func TestDelete_FreesTheSlot(t *testing.T) {
	svc, _ := newEngine(t, rentable(1, 100))

	o, err := svc.PlaceRental(context.Background(), 7, 1, 1, day(1), day(5))
	require.NoError(t, err)

	_, err = svc.PlaceRental(context.Background(), 8, 1, 1, day(1), day(5))
	require.Equal(t, ErrDateConflict, Code(err))

	require.NoError(t, svc.Delete(context.Background(), o.ID))

	_, err = svc.PlaceRental(context.Background(), 8, 1, 1, day(1), day(5))
	require.NoError(t, err)
}

func TestDelete_NotFound(t *testing.T) {
	svc, _ := newEngine(t)

	err := svc.Delete(context.Background(), 404)
	require.Equal(t, ErrOrderNotFound, Code(err))
}

// --- listings ---

func TestListByType_InvalidType(t *testing.T) {
	svc, _ := newEngine(t)

	_, err := svc.ListByType(context.Background(), "lease", 10, 1)
	require.Equal(t, ErrInvalidType, Code(err))
}

func TestListByType_DerivedStatus(t *testing.T) {
	svc, ledger := newEngine(t, rentable(1, 100))

	_, err := svc.PlaceRental(context.Background(), 7, 1, 1, day(2), day(4))
	require.NoError(t, err)

	// backdate a finished rental directly in the ledger
	s, e := day(-10), day(-5)
	rent := model.OrderRent
	ledger.orders = append(ledger.orders, &model.Order{
		ID: 99, ProductID: 1, OrderType: rent, RentStart: &s, RentEnd: &e,
	})

	rows, err := svc.ListByType(context.Background(), "rent", 10, 1)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, model.RentalUpcoming, rows[0].Status)
	require.Equal(t, model.RentalCompleted, rows[1].Status)
}
