// repository/product/product_repository_test.go
package productrepo

import (
	"context"
	"os"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestEdit_TouchesUpdatedAt(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	r := New(db)

	name := "Drill XL"
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE products SET updated_at = NOW(), product_name = $2, edited_by = $3 WHERE id = $1`)).
		WithArgs(int64(1), name, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	editedBy := int64(7)
	mock.ExpectQuery(`FROM products`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "product_name", "product_description", "product_price",
			"is_for_sale", "is_for_rent", "brand_id", "category_id",
			"owner_id", "edited_by", "created_at",
		}).AddRow(int64(1), name, "cordless", 120.0, true, false,
			int64(1), int64(1), int64(2), editedBy, time.Now()))

	p, err := r.Edit(context.Background(), 1, Update{ProductName: &name, EditedBy: 7})
	require.NoError(t, err)
	require.Equal(t, name, p.ProductName)
	require.NoError(t, mock.ExpectationsWereMet())
}

// Every write path that stamps updated_at needs the column declared in the
// schema, or the statement dies with undefined_column before touching a row.
func TestSchemaDeclaresUpdatedAt(t *testing.T) {
	ddl, err := os.ReadFile("../../migrations/001_init.sql")
	require.NoError(t, err)

	for _, table := range []string{"users", "categories", "brands", "products", "orders"} {
		stmt := tableDDL(string(ddl), table)
		require.NotEmpty(t, stmt, "missing CREATE TABLE for %s", table)
		require.Contains(t, stmt, "updated_at", "table %s", table)
	}
}

func tableDDL(ddl, table string) string {
	marker := "CREATE TABLE IF NOT EXISTS " + table + " ("
	i := strings.Index(ddl, marker)
	if i < 0 {
		return ""
	}
	rest := ddl[i:]
	if j := strings.Index(rest, ");"); j >= 0 {
		return rest[:j]
	}
	return rest
}
