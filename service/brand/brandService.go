package brandsvc

import (
	"context"
	"database/sql"
	"errors"

	"rentmart/model"
	brandrepo "rentmart/repository/brand"
	categoryrepo "rentmart/repository/category"
	categorysvc "rentmart/service/category"
)

type ErrCode string

const (
	ErrExists     ErrCode = "BRAND_EXISTS"
	ErrNoCategory ErrCode = "CATEGORY_NOT_FOUND"
	ErrNotFound   ErrCode = "NOT_FOUND"
	ErrBadInput   ErrCode = "BAD_INPUT"
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

type Service interface {
	Create(ctx context.Context, name string, categoryID int64) (*model.Brand, error)
	List(ctx context.Context, id int64, name string, categoryID, limit, page int64) ([]model.Brand, categorysvc.Page, error)
}

type service struct {
	br brandrepo.Repo
	cr categoryrepo.Repo
}

func New(br brandrepo.Repo, cr categoryrepo.Repo) Service { return &service{br: br, cr: cr} }

func (s *service) Create(ctx context.Context, name string, categoryID int64) (*model.Brand, error) {
	if name == "" || categoryID <= 0 {
		return nil, makeErr(ErrBadInput)
	}

	cat, err := s.cr.ByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrNoCategory)
		}
		return nil, err
	}

	existing, err := s.br.ByName(ctx, name)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if existing != nil {
		return nil, makeErr(ErrExists)
	}

	b := &model.Brand{BrandName: name, CategoryID: cat.ID}
	if err := s.br.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) List(ctx context.Context, id int64, name string, categoryID, limit, page int64) ([]model.Brand, categorysvc.Page, error) {
	rows, total, err := s.br.List(ctx, id, name, categoryID, limit, page)
	if err != nil {
		return nil, categorysvc.Page{}, err
	}
	if len(rows) == 0 {
		return nil, categorysvc.Page{}, makeErr(ErrNotFound)
	}
	return rows, categorysvc.PageOf(total, limit, page), nil
}
