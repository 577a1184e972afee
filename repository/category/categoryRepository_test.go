// repository/category/category_repository_test.go
package categoryrepo

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

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE categories SET category_name = $2, updated_at = NOW()`)).
		WithArgs(int64(2), "Power Tools").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, r.Rename(context.Background(), 2, "Power Tools"))
	require.NoError(t, mock.ExpectationsWereMet())
}
