//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const DefaultCategoryTitle = "Fiction"

func CreateTestCategory(t *testing.T, db DBLike, title string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO categories (title) VALUES ($1) RETURNING id", title).Scan(&id)
	require.NoError(t, err)
	return id
}

func DefaultCategoryID(t *testing.T, db DBLike) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"SELECT id FROM categories WHERE title = $1 ORDER BY id LIMIT 1", DefaultCategoryTitle).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestBook inserts a book priced at unitPrice (e.g. "12.50").
func CreateTestBook(t *testing.T, db DBLike, categoryID int64, name, unitPrice string, inventory int) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		`INSERT INTO books (name, description, category_id, slug, inventory, unit_price)
		 VALUES ($1, '', $2, $3, $4, $5::numeric) RETURNING id`,
		name, categoryID, slug.Make(name), inventory, unitPrice).Scan(&id)
	require.NoError(t, err)
	return id
}

func SetBookPrice(t *testing.T, db DBLike, bookID int64, unitPrice string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE books SET unit_price = $2::numeric, updated_at = now() WHERE id = $1", bookID, unitPrice)
	require.NoError(t, err)
}

// CreateTestCustomer inserts a complete profile for userID.
func CreateTestCustomer(t *testing.T, db DBLike, userID uuid.UUID, first, last, email string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		`INSERT INTO customers (user_id, first_name, last_name, email)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id) DO UPDATE SET first_name = EXCLUDED.first_name
		 RETURNING id`,
		userID, first, last, email).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestCart(t *testing.T, db DBLike) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), "INSERT INTO carts (id) VALUES ($1)", id)
	require.NoError(t, err)
	return id
}

func AddTestCartItem(t *testing.T, db DBLike, cartID uuid.UUID, bookID int64, quantity int) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO cart_items (cart_id, book_id, quantity) VALUES ($1, $2, $3) RETURNING id",
		cartID, bookID, quantity).Scan(&id)
	require.NoError(t, err)
	return id
}

func CountRows(t *testing.T, db DBLike, query string, args ...any) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+query, args...).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, "INSERT INTO categories (title) VALUES ($1)", DefaultCategoryTitle)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
