// service/auth/auth_service_test.go
package authsvc

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"rentmart/model"
	"rentmart/util/hash"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	byEmailFn        func(ctx context.Context, email string) (*model.User, error)
	byEmailAndRoleFn func(ctx context.Context, email, role string) (*model.User, error)
	createFn         func(ctx context.Context, u *model.User) error
}

func (m *mockRepo) ByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.byEmailFn == nil {
		return nil, sql.ErrNoRows
	}
	return m.byEmailFn(ctx, email)
}

func (m *mockRepo) ByEmailAndRole(ctx context.Context, email, role string) (*model.User, error) {
	if m.byEmailAndRoleFn == nil {
		return nil, sql.ErrNoRows
	}
	return m.byEmailAndRoleFn(ctx, email, role)
}

func (m *mockRepo) Create(ctx context.Context, u *model.User) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, u)
}

func (m *mockRepo) ByID(ctx context.Context, id int64) (*model.User, error) {
	return nil, sql.ErrNoRows
}

func (m *mockRepo) List(ctx context.Context, limit, page int64) ([]model.User, error) {
	return nil, nil
}

func (m *mockRepo) Find(ctx context.Context, id int64, name, role string) ([]model.User, error) {
	return nil, nil
}

func mustHash(t *testing.T, plain string) string {
	t.Helper()
	h, err := hash.HashPassword(plain)
	require.NoError(t, err)
	return h
}

// --- tests ---

func TestRegister_Success(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{
		createFn: func(ctx context.Context, u *model.User) error {
			u.ID = 42
			u.Status = model.UserActive
			return nil
		},
	}
	svc := New(m, "test-secret")

	u, err := svc.Register(ctx, model.RegisterReq{
		Name:     "Monika",
		Email:    "USER@Example.COM",
		Password: "pass1!",
		Role:     "lender",
	})
	require.NoError(t, err)
	require.NotNil(t, u)
	require.Equal(t, int64(42), u.ID)
	require.Equal(t, "user@example.com", u.Email)
	require.Equal(t, model.RoleLender, u.Role)
	require.NotEmpty(t, u.PasswordHash)
	require.NotEqual(t, "pass1!", u.PasswordHash)
}

func TestRegister_BadInput(t *testing.T) {
	svc := New(&mockRepo{}, "test-secret")

	_, err := svc.Register(context.Background(), model.RegisterReq{
		Email:    " ",
		Password: "pass1!",
		Role:     "renter",
	})
	require.Error(t, err)
	require.Equal(t, ErrBadInput, Code(err))
}

func TestRegister_EmailTaken(t *testing.T) {
	m := &mockRepo{
		byEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{ID: 9, Email: email}, nil
		},
	}
	svc := New(m, "test-secret")

	_, err := svc.Register(context.Background(), model.RegisterReq{
		Name:     "x",
		Email:    "taken@example.com",
		Password: "pass1!",
		Role:     "renter",
	})
	require.Error(t, err)
	require.Equal(t, ErrEmailTaken, Code(err))
}

func TestRegister_UniqueViolationMapped(t *testing.T) {
	m := &mockRepo{
		createFn: func(ctx context.Context, u *model.User) error {
			return &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"}
		},
	}
	svc := New(m, "test-secret")

	_, err := svc.Register(context.Background(), model.RegisterReq{
		Name:     "x",
		Email:    "race@example.com",
		Password: "pass1!",
		Role:     "renter",
	})
	require.Error(t, err)
	require.Equal(t, ErrEmailTaken, Code(err))
}

func TestRegister_CreateError(t *testing.T) {
	m := &mockRepo{
		createFn: func(ctx context.Context, u *model.User) error {
			return errors.New("db down")
		},
	}
	svc := New(m, "test-secret")

	_, err := svc.Register(context.Background(), model.RegisterReq{
		Name:     "x",
		Email:    "ok@example.com",
		Password: "pass1!",
		Role:     "renter",
	})
	require.Error(t, err)
	require.Equal(t, ErrCode(""), Code(err))
}

func TestLogin_Success(t *testing.T) {
	pw := "supersecret1!"
	hashed := mustHash(t, pw)

	m := &mockRepo{
		byEmailAndRoleFn: func(ctx context.Context, email, role string) (*model.User, error) {
			require.Equal(t, "user@example.com", email)
			require.Equal(t, "renter", role)
			return &model.User{
				ID:           7,
				Name:         "Monika",
				Email:        "user@example.com",
				PasswordHash: hashed,
				Role:         model.RoleRenter,
				Status:       model.UserActive,
			}, nil
		},
	}
	svc := New(m, "test-secret")

	u, tok, err := svc.Login(context.Background(), model.LoginReq{
		Email:    "User@Example.com",
		Password: pw,
		Role:     "renter",
	})
	require.NoError(t, err)
	require.NotNil(t, u)
	require.NotEmpty(t, tok)
	require.Equal(t, int64(7), u.ID)
}

func TestLogin_UserNotFound(t *testing.T) {
	svc := New(&mockRepo{}, "test-secret")

	_, _, err := svc.Login(context.Background(), model.LoginReq{
		Email:    "missing@example.com",
		Password: "whatever",
		Role:     "renter",
	})
	require.Error(t, err)
	require.Equal(t, ErrInvalidCreds, Code(err))
}

func TestLogin_WrongPassword(t *testing.T) {
	hashed := mustHash(t, "correct-password1!")

	m := &mockRepo{
		byEmailAndRoleFn: func(ctx context.Context, email, role string) (*model.User, error) {
			return &model.User{ID: 101, Email: email, PasswordHash: hashed, Role: model.RoleRenter}, nil
		},
	}
	svc := New(m, "test-secret")

	_, _, err := svc.Login(context.Background(), model.LoginReq{
		Email:    "user@example.com",
		Password: "wrong-password",
		Role:     "renter",
	})
	require.Error(t, err)
	require.Equal(t, ErrInvalidCreds, Code(err))
}
