package productsvc

import (
	"context"
	"database/sql"
	"errors"

	"rentmart/model"
	orderrepo "rentmart/repository/order"
	productrepo "rentmart/repository/product"
	categorysvc "rentmart/service/category"
)

type ErrCode string

const (
	ErrExists    ErrCode = "PRODUCT_EXISTS"
	ErrNotFound  ErrCode = "NOT_FOUND"
	ErrBadInput  ErrCode = "BAD_INPUT"
	ErrHasOrders ErrCode = "ORDERS_EXIST"
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

// CreateReq carries the fields for a new product. IsForSale and IsForRent are
// independent; both false is accepted.
type CreateReq struct {
	ProductName        string
	ProductDescription string
	ProductPrice       float64
	IsForSale          bool
	IsForRent          bool
	BrandID            int64
	CategoryID         int64
	OwnerID            int64
}

type Service interface {
	Create(ctx context.Context, req CreateReq) (*model.Product, error)
	List(ctx context.Context, id int64, name string, brandID, categoryID, limit, page int64) ([]model.Product, categorysvc.Page, error)
	Edit(ctx context.Context, id int64, u productrepo.Update) (*model.Product, error)
	// Delete hard-deletes a product. It refuses while orders still reference
	// the product, so no order is left dangling.
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, search, productName, categoryName, brandName string, limit, page int64) (map[string][]GroupedProduct, categorysvc.Page, error)
}

// GroupedProduct is one search hit inside its category group.
type GroupedProduct struct {
	ProductName string     `json:"productName"`
	Brand       BrandEntry `json:"brand"`
}

type BrandEntry struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type service struct {
	pr productrepo.Repo
	or orderrepo.Repo
}

func New(pr productrepo.Repo, or orderrepo.Repo) Service { return &service{pr: pr, or: or} }

func (s *service) Create(ctx context.Context, req CreateReq) (*model.Product, error) {
	if req.ProductName == "" || req.ProductDescription == "" || req.ProductPrice <= 0 ||
		req.BrandID <= 0 || req.CategoryID <= 0 {
		return nil, makeErr(ErrBadInput)
	}

	existing, err := s.pr.ByName(ctx, req.ProductName)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if existing != nil {
		return nil, makeErr(ErrExists)
	}

	p := &model.Product{
		ProductName:        req.ProductName,
		ProductDescription: req.ProductDescription,
		ProductPrice:       req.ProductPrice,
		IsForSale:          req.IsForSale,
		IsForRent:          req.IsForRent,
		BrandID:            req.BrandID,
		CategoryID:         req.CategoryID,
		OwnerID:            req.OwnerID,
	}
	if err := s.pr.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) List(ctx context.Context, id int64, name string, brandID, categoryID, limit, page int64) ([]model.Product, categorysvc.Page, error) {
	rows, total, err := s.pr.List(ctx, id, name, brandID, categoryID, limit, page)
	if err != nil {
		return nil, categorysvc.Page{}, err
	}
	if len(rows) == 0 {
		return nil, categorysvc.Page{}, makeErr(ErrNotFound)
	}
	return rows, categorysvc.PageOf(total, limit, page), nil
}

func (s *service) Edit(ctx context.Context, id int64, u productrepo.Update) (*model.Product, error) {
	p, err := s.pr.Edit(ctx, id, u)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	return p, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	n, err := s.or.CountByProduct(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return makeErr(ErrHasOrders)
	}

	deleted, err := s.pr.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return makeErr(ErrNotFound)
	}
	return nil
}

func (s *service) Search(ctx context.Context, search, productName, categoryName, brandName string, limit, page int64) (map[string][]GroupedProduct, categorysvc.Page, error) {
	rows, total, err := s.pr.Search(ctx, search, productName, categoryName, brandName, limit, page)
	if err != nil {
		return nil, categorysvc.Page{}, err
	}

	grouped := make(map[string][]GroupedProduct, len(rows))
	for _, r := range rows {
		grouped[r.Category] = append(grouped[r.Category], GroupedProduct{
			ProductName: r.ProductName,
			Brand:       BrandEntry{ID: r.BrandID, Name: r.BrandName},
		})
	}
	return grouped, categorysvc.PageOf(total, limit, page), nil
}
