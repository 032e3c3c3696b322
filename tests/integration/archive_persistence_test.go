package integration

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readme-maestro/maestro-backend/internal/documents"
)

// testDSN resolves the Postgres DSN for integration tests. Set TEST_DB_DSN
// directly, or the individual TEST_DB_HOST / TEST_DB_PORT / TEST_DB_USER /
// TEST_DB_PASSWORD / TEST_DB_NAME variables.
func testDSN(t *testing.T) string {
	t.Helper()

	if dsn := os.Getenv("TEST_DB_DSN"); dsn != "" {
		return dsn
	}

	host := os.Getenv("TEST_DB_HOST")
	port := os.Getenv("TEST_DB_PORT")
	user := os.Getenv("TEST_DB_USER")
	password := os.Getenv("TEST_DB_PASSWORD")
	dbname := os.Getenv("TEST_DB_NAME")
	if host != "" && port != "" && user != "" && dbname != "" {
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			host, port, user, password, dbname)
	}

	t.Skip("TEST_DB_DSN not set, skipping PostgreSQL integration test")
	return ""
}

func setupArchive(t *testing.T) *documents.Repo {
	t.Helper()
	dsn := testDSN(t)

	// Schema bootstrap through database/sql, repo under test through pgx.
	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
create table if not exists readme_documents (
    id          bigserial primary key,
    public_id   text unique not null,
    user_id     text not null,
    name        text not null,
    source      text not null,
    markdown    text not null,
    word_count  int  not null,
    created_at  timestamptz not null default now(),
    deleted_at  timestamptz
);`)
	require.NoError(t, err)

	_, err = db.Exec(`delete from readme_documents where user_id like 'it-%';`)
	require.NoError(t, err)

	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return documents.NewRepo(pool)
}

func TestArchive_CreateListGet(t *testing.T) {
	repo := setupArchive(t)
	ctx := context.Background()
	user := fmt.Sprintf("it-%d", time.Now().UnixNano())

	created, err := repo.Create(ctx, user, "Apex", "fallback", "## Title\n\nApex\n", 1)
	require.NoError(t, err)
	assert.Regexp(t, `^readme-\d{5}-\d{4}$`, created.PublicID)

	list, err := repo.List(ctx, user)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.PublicID, list[0].PublicID)
	assert.Empty(t, list[0].Markdown, "list omits the payload")

	got, err := repo.Get(ctx, user, created.PublicID)
	require.NoError(t, err)
	assert.Equal(t, "## Title\n\nApex\n", got.Markdown)

	_, err = repo.Get(ctx, "it-other-user", created.PublicID)
	assert.ErrorIs(t, err, documents.ErrNotFound)
}

func TestArchive_SoftDeleteAndPurge(t *testing.T) {
	repo := setupArchive(t)
	ctx := context.Background()
	user := fmt.Sprintf("it-%d", time.Now().UnixNano())

	created, err := repo.Create(ctx, user, "Apex", "ai", "md", 1)
	require.NoError(t, err)

	ok, err := repo.SoftDelete(ctx, user, created.PublicID)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = repo.Get(ctx, user, created.PublicID)
	assert.ErrorIs(t, err, documents.ErrNotFound)

	ok, err = repo.SoftDelete(ctx, user, created.PublicID)
	require.NoError(t, err)
	assert.False(t, ok, "second delete is a no-op")

	// Freshly deleted rows survive a 30-day purge window.
	_, err = repo.PurgeDeleted(ctx, 30*24*time.Hour)
	require.NoError(t, err)

	// With a zero window the row goes away for good.
	n, err := repo.PurgeDeleted(ctx, 0)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, int64(1))
}
