// Package documents is the durable Postgres archive of generated READMEs.
//
// Expected schema:
//
//	create table readme_documents (
//	    id          bigserial primary key,
//	    public_id   text unique not null,
//	    user_id     text not null,
//	    name        text not null,
//	    source      text not null,
//	    markdown    text not null,
//	    word_count  int  not null,
//	    created_at  timestamptz not null default now(),
//	    deleted_at  timestamptz
//	);
package documents

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("document not found")

// Document is one archived README.
type Document struct {
	PublicID  string    `json:"public_id"`
	Name      string    `json:"name"`
	Source    string    `json:"source"`
	Markdown  string    `json:"markdown"`
	WordCount int       `json:"word_count"`
	CreatedAt time.Time `json:"created_at"`
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// Create archives a document for the user. Public IDs are generated here;
// a collision retries with a fresh one.
func (r *Repo) Create(ctx context.Context, userID, name, source, markdown string, wordCount int) (*Document, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id required")
	}

	for i := 0; i < 5; i++ {
		publicID, err := NewPublicID("readme")
		if err != nil {
			return nil, err
		}

		const q = `
insert into readme_documents (public_id, user_id, name, source, markdown, word_count)
values ($1, $2, $3, $4, $5, $6)
returning public_id, name, source, markdown, word_count, created_at;
`
		var d Document
		err = r.db.QueryRow(ctx, q, publicID, userID, name, source, markdown, wordCount).
			Scan(&d.PublicID, &d.Name, &d.Source, &d.Markdown, &d.WordCount, &d.CreatedAt)

		if err == nil {
			return &d, nil
		}

		// unique violation on public_id → retry
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			continue
		}
		return nil, err
	}

	return nil, fmt.Errorf("failed to generate unique document id")
}

// List returns the user's non-deleted documents, newest first, without the
// Markdown payload.
func (r *Repo) List(ctx context.Context, userID string) ([]Document, error) {
	const q = `
select public_id, name, source, word_count, created_at
from readme_documents
where user_id = $1 and deleted_at is null
order by created_at desc;
`
	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Document, 0, 16)
	for rows.Next() {
		var d Document
		if err := rows.Scan(&d.PublicID, &d.Name, &d.Source, &d.WordCount, &d.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Get returns one document with its Markdown payload.
func (r *Repo) Get(ctx context.Context, userID, publicID string) (*Document, error) {
	const q = `
select public_id, name, source, markdown, word_count, created_at
from readme_documents
where user_id = $1 and public_id = $2 and deleted_at is null;
`
	var d Document
	err := r.db.QueryRow(ctx, q, userID, publicID).
		Scan(&d.PublicID, &d.Name, &d.Source, &d.Markdown, &d.WordCount, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// SoftDelete marks a document as deleted.
func (r *Repo) SoftDelete(ctx context.Context, userID, publicID string) (bool, error) {
	const q = `
update readme_documents
set deleted_at = now()
where user_id = $1 and public_id = $2 and deleted_at is null;
`
	tag, err := r.db.Exec(ctx, q, userID, publicID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// PurgeDeleted permanently removes documents soft-deleted before the cutoff.
// Returns the number of rows removed.
func (r *Repo) PurgeDeleted(ctx context.Context, olderThan time.Duration) (int64, error) {
	const q = `
delete from readme_documents
where deleted_at is not null and deleted_at < now() - $1::interval;
`
	tag, err := r.db.Exec(ctx, q, fmt.Sprintf("%d seconds", int(olderThan.Seconds())))
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
