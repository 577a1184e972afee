package usersvc

import (
	"context"
	"errors"

	"rentmart/model"
	userrepo "rentmart/repository/user"
)

type ErrCode string

const ErrNotFound ErrCode = "NOT_FOUND"

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }

func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type Service interface {
	All(ctx context.Context, limit, page int64) ([]model.User, error)
	Find(ctx context.Context, id int64, name, role string) ([]model.User, error)
}

type service struct{ r userrepo.Repo }

func New(r userrepo.Repo) Service { return &service{r: r} }

func (s *service) All(ctx context.Context, limit, page int64) ([]model.User, error) {
	return s.r.List(ctx, limit, page)
}

func (s *service) Find(ctx context.Context, id int64, name, role string) ([]model.User, error) {
	users, err := s.r.Find(ctx, id, name, role)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, codedError{code: ErrNotFound}
	}
	return users, nil
}
