// repository/brand/brand_repository_test.go
package brandrepo

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestRename_TouchesUpdatedAt(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	r := New(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE brands SET brand_name = $2, updated_at = NOW()`)).
		WithArgs(int64(3), "Makita").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, r.Rename(context.Background(), 3, "Makita"))
	require.NoError(t, mock.ExpectationsWereMet())
}
