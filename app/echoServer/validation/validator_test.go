// app/echoServer/validation/validator_test.go
package validation

import (
	"testing"

	"rentmart/model"

	"github.com/stretchr/testify/require"
)

func registerReq(password string) model.RegisterReq {
	return model.RegisterReq{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: password,
		Role:     "renter",
	}
}

func TestPasswordRule(t *testing.T) {
	v := New()

	for _, password := range []string{
		"abcd",  // no digit, no special
		"abc1",  // no special
		"ab!@",  // no digit
		"12!@",  // no letter
		"a1!",   // too short
		"ab 1!", // space outside the allowed set
		"abc1#", // # outside the allowed set
	} {
		require.Error(t, v.Validate(registerReq(password)), "password %q should be rejected", password)
	}

	for _, password := range []string{"ab1!", "Str0ng&pass", "a1@a1@"} {
		require.NoError(t, v.Validate(registerReq(password)), "password %q should be accepted", password)
	}
}

func TestPasswordRule_AppliesToLogin(t *testing.T) {
	v := New()

	bad := model.LoginReq{Email: "ana@example.com", Password: "abcd", Role: "renter"}
	require.Error(t, v.Validate(bad))

	good := model.LoginReq{Email: "ana@example.com", Password: "ab1!", Role: "renter"}
	require.NoError(t, v.Validate(good))
}
