package categorysvc

import (
	"context"
	"database/sql"
	"errors"

	"rentmart/model"
	categoryrepo "rentmart/repository/category"
)

type ErrCode string

const (
	ErrExists   ErrCode = "CATEGORY_EXISTS"
	ErrNotFound ErrCode = "NOT_FOUND"
	ErrBadInput ErrCode = "BAD_INPUT"
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

// Page is the pagination envelope shared by catalog listings.
type Page struct {
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int64 `json:"totalPages"`
	CurrentPage int64 `json:"currentPage"`
}

func PageOf(total, limit, page int64) Page {
	p := Page{TotalItems: total, CurrentPage: page}
	if limit > 0 {
		p.TotalPages = (total + limit - 1) / limit
	}
	return p
}

type Service interface {
	Create(ctx context.Context, name string) (*model.Category, error)
	List(ctx context.Context, id int64, name string, limit, page int64) ([]model.Category, Page, error)
}

type service struct{ r categoryrepo.Repo }

func New(r categoryrepo.Repo) Service { return &service{r: r} }

func (s *service) Create(ctx context.Context, name string) (*model.Category, error) {
	if name == "" {
		return nil, makeErr(ErrBadInput)
	}
	existing, err := s.r.ByName(ctx, name)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if existing != nil {
		return nil, makeErr(ErrExists)
	}

	c := &model.Category{CategoryName: name}
	if err := s.r.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) List(ctx context.Context, id int64, name string, limit, page int64) ([]model.Category, Page, error) {
	rows, total, err := s.r.List(ctx, id, name, limit, page)
	if err != nil {
		return nil, Page{}, err
	}
	if len(rows) == 0 {
		return nil, Page{}, makeErr(ErrNotFound)
	}
	return rows, PageOf(total, limit, page), nil
}
