// service/category/category_service_test.go
package categorysvc_test

import (
	"context"
	"database/sql"
	"testing"

	"rentmart/model"
	categorysvc "rentmart/service/category"
)

type repoMock struct {
	byNameFn func(ctx context.Context, name string) (*model.Category, error)
	createFn func(ctx context.Context, c *model.Category) error
	listFn   func(ctx context.Context, id int64, name string, limit, page int64) ([]model.Category, int64, error)
}

func (m *repoMock) Create(ctx context.Context, c *model.Category) error { return m.createFn(ctx, c) }
func (m *repoMock) ByName(ctx context.Context, name string) (*model.Category, error) {
	if m.byNameFn == nil {
		return nil, sql.ErrNoRows
	}
	return m.byNameFn(ctx, name)
}
func (m *repoMock) ByID(ctx context.Context, id int64) (*model.Category, error) {
	return nil, sql.ErrNoRows
}
func (m *repoMock) List(ctx context.Context, id int64, name string, limit, page int64) ([]model.Category, int64, error) {
	return m.listFn(ctx, id, name, limit, page)
}
func (m *repoMock) Names(ctx context.Context) ([]string, error)     { return nil, nil }
func (m *repoMock) Rename(ctx context.Context, id int64, name string) error { return nil }

func TestCreate_EmptyName(t *testing.T) {
	s := categorysvc.New(&repoMock{})
	if _, err := s.Create(context.Background(), ""); categorysvc.Code(err) != categorysvc.ErrBadInput {
		t.Fatalf("got %v; want BAD_INPUT", err)
	}
}

func TestCreate_Duplicate(t *testing.T) {
	m := &repoMock{
		byNameFn: func(ctx context.Context, name string) (*model.Category, error) {
			return &model.Category{ID: 1, CategoryName: name}, nil
		},
	}
	s := categorysvc.New(m)
	if _, err := s.Create(context.Background(), "Tools"); categorysvc.Code(err) != categorysvc.ErrExists {
		t.Fatalf("got %v; want CATEGORY_EXISTS", err)
	}
}

func TestCreate_Success(t *testing.T) {
	m := &repoMock{
		createFn: func(ctx context.Context, c *model.Category) error {
			c.ID = 5
			return nil
		},
	}
	s := categorysvc.New(m)
	c, err := s.Create(context.Background(), "Tools")
	if err != nil || c.ID != 5 {
		t.Fatalf("got %v %v; want id=5 nil", c, err)
	}
}

func TestList_Empty(t *testing.T) {
	m := &repoMock{
		listFn: func(ctx context.Context, id int64, name string, limit, page int64) ([]model.Category, int64, error) {
			return nil, 0, nil
		},
	}
	s := categorysvc.New(m)
	if _, _, err := s.List(context.Background(), 0, "", 10, 1); categorysvc.Code(err) != categorysvc.ErrNotFound {
		t.Fatalf("got %v; want NOT_FOUND", err)
	}
}

func TestList_Pagination(t *testing.T) {
	m := &repoMock{
		listFn: func(ctx context.Context, id int64, name string, limit, page int64) ([]model.Category, int64, error) {
			return []model.Category{{ID: 1}, {ID: 2}}, 11, nil
		},
	}
	s := categorysvc.New(m)
	rows, pg, err := s.List(context.Background(), 0, "", 5, 2)
	if err != nil || len(rows) != 2 {
		t.Fatalf("unexpected: %v %v", rows, err)
	}
	if pg.TotalItems != 11 || pg.TotalPages != 3 || pg.CurrentPage != 2 {
		t.Fatalf("page = %+v; want totals 11/3 page 2", pg)
	}
}
