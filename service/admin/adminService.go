// service/admin/adminService.go
//
// Management surface for the back-office: item and order search, per-product
// aggregates, brand/category renames, and category master data.
package adminsvc

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rentmart/model"
	brandrepo "rentmart/repository/brand"
	categoryrepo "rentmart/repository/category"
	orderrepo "rentmart/repository/order"
	productrepo "rentmart/repository/product"
	categorysvc "rentmart/service/category"
	ordersvc "rentmart/service/order"
)

type ErrCode string

const (
	ErrNotFound    ErrCode = "NOT_FOUND"
	ErrBadPosition ErrCode = "INVALID_POSITIONS"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// EditedItem is the response shape of EditItem: the product with its renamed
// brand and category.
type EditedItem struct {
	ID           int64  `json:"id"`
	ProductName  string `json:"productName"`
	BrandID      int64  `json:"brandId"`
	CategoryID   int64  `json:"categoryId"`
	BrandName    string `json:"brandName"`
	CategoryName string `json:"categoryName"`
}

type Service interface {
	SearchItems(ctx context.Context, id int64, ownerName, sortBy string, limit, page int64) ([]productrepo.ItemRow, categorysvc.Page, error)
	SearchOrders(ctx context.Context, id int64, renterName, lenderName string, productID int64, productName, sortBy string, limit, page int64) ([]orderrepo.AdminRow, categorysvc.Page, error)
	ItemStats(ctx context.Context, productID int64) (*productrepo.ItemStats, error)
	OrderDetail(ctx context.Context, orderID int64) (*orderrepo.Detail, error)
	EditItem(ctx context.Context, productID int64, brandName, categoryName string) (*EditedItem, error)
	MasterData(ctx context.Context, positionA, positionB int64) ([]string, error)
}

type service struct {
	pr productrepo.Repo
	or orderrepo.Repo
	br brandrepo.Repo
	cr categoryrepo.Repo
}

func New(pr productrepo.Repo, or orderrepo.Repo, br brandrepo.Repo, cr categoryrepo.Repo) Service {
	return &service{pr: pr, or: or, br: br, cr: cr}
}

func (s *service) SearchItems(ctx context.Context, id int64, ownerName, sortBy string, limit, page int64) ([]productrepo.ItemRow, categorysvc.Page, error) {
	rows, total, err := s.pr.SearchItems(ctx, id, ownerName, sortBy, limit, page)
	if err != nil {
		return nil, categorysvc.Page{}, err
	}
	return rows, categorysvc.PageOf(total, limit, page), nil
}

func (s *service) SearchOrders(ctx context.Context, id int64, renterName, lenderName string, productID int64, productName, sortBy string, limit, page int64) ([]orderrepo.AdminRow, categorysvc.Page, error) {
	rows, total, err := s.or.SearchOrders(ctx, id, renterName, lenderName, productID, productName, sortBy, limit, page)
	if err != nil {
		return nil, categorysvc.Page{}, err
	}
	return rows, categorysvc.PageOf(total, limit, page), nil
}

func (s *service) ItemStats(ctx context.Context, productID int64) (*productrepo.ItemStats, error) {
	st, err := s.pr.Stats(ctx, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	return st, nil
}

func (s *service) OrderDetail(ctx context.Context, orderID int64) (*orderrepo.Detail, error) {
	d, err := s.or.DetailByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	if d.OrderType == string(model.OrderRent) && d.RentStart != nil && d.RentEnd != nil {
		d.Status = ordersvc.StatusAt(time.Now().UTC(), *d.RentStart, *d.RentEnd)
	}
	return d, nil
}

// EditItem renames the brand and category the product points at. The product
// row itself is untouched apart from its updated_at.
func (s *service) EditItem(ctx context.Context, productID int64, brandName, categoryName string) (*EditedItem, error) {
	p, err := s.pr.ByID(ctx, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}

	if brandName != "" {
		if err := s.br.Rename(ctx, p.BrandID, brandName); err != nil {
			return nil, err
		}
	}
	if categoryName != "" {
		if err := s.cr.Rename(ctx, p.CategoryID, categoryName); err != nil {
			return nil, err
		}
	}

	b, err := s.br.ByID(ctx, p.BrandID)
	if err != nil {
		return nil, err
	}
	c, err := s.cr.ByID(ctx, p.CategoryID)
	if err != nil {
		return nil, err
	}

	return &EditedItem{
		ID:           p.ID,
		ProductName:  p.ProductName,
		BrandID:      p.BrandID,
		CategoryID:   p.CategoryID,
		BrandName:    b.BrandName,
		CategoryName: c.CategoryName,
	}, nil
}

// MasterData returns the category names with the entries at the two positions
// swapped. Positions are zero-based indexes into the id-ordered list.
func (s *service) MasterData(ctx context.Context, positionA, positionB int64) ([]string, error) {
	names, err := s.cr.Names(ctx)
	if err != nil {
		return nil, err
	}
	n := int64(len(names))
	if positionA < 0 || positionA >= n || positionB < 0 || positionB >= n {
		return nil, makeErr(ErrBadPosition)
	}
	names[positionA], names[positionB] = names[positionB], names[positionA]
	return names, nil
}
