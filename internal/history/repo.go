// Package history keeps the recent generations of each user in Redis so the
// UI history panel can list, reopen, and delete them. Entries expire after a
// week; the durable copy lives in the Postgres archive.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/readme-maestro/maestro-backend/internal/assembler"
)

const (
	docKeyPrefix  = "rm:doc:"  // rm:doc:{id} -> JSON entry
	userSetPrefix = "rm:user:" // rm:user:{user_id} -> set of entry IDs
	entryTTL      = 7 * 24 * time.Hour
)

var ErrNotFound = errors.New("history entry not found")

// Entry is one archived generation.
type Entry struct {
	ID        string                      `json:"id"`
	UserID    string                      `json:"user_id"`
	Metadata  assembler.ProjectMetadata   `json:"metadata"`
	Document  assembler.GeneratedDocument `json:"document"`
	Markdown  string                      `json:"markdown"`
	CreatedAt time.Time                   `json:"created_at"`
}

// Repo stores entries in Redis.
type Repo struct {
	client *redis.Client
}

func NewRepo(client *redis.Client) *Repo {
	return &Repo{client: client}
}

// Record stores a new entry and registers it in the user's set. Assigns an
// ID and timestamp when missing.
func (r *Repo) Record(ctx context.Context, e *Entry) error {
	if e.UserID == "" {
		return fmt.Errorf("user id required")
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal history entry: %w", err)
	}

	userKey := r.userKey(e.UserID)
	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.docKey(e.ID), data, entryTTL)
	pipe.SAdd(ctx, userKey, e.ID)
	pipe.Expire(ctx, userKey, entryTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("record history entry: %w", err)
	}
	return nil
}

// List returns the user's entries, newest first. IDs whose value already
// expired are pruned from the set as a side effect.
func (r *Repo) List(ctx context.Context, userID string) ([]Entry, error) {
	ids, err := r.client.SMembers(ctx, r.userKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("list history ids: %w", err)
	}

	out := make([]Entry, 0, len(ids))
	var stale []interface{}
	for _, id := range ids {
		data, err := r.client.Get(ctx, r.docKey(id)).Result()
		if err == redis.Nil {
			stale = append(stale, id)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("get history entry %s: %w", id, err)
		}
		var e Entry
		if err := json.Unmarshal([]byte(data), &e); err != nil {
			return nil, fmt.Errorf("unmarshal history entry %s: %w", id, err)
		}
		out = append(out, e)
	}

	if len(stale) > 0 {
		r.client.SRem(ctx, r.userKey(userID), stale...)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// Get returns one entry, scoped to the owning user.
func (r *Repo) Get(ctx context.Context, userID, id string) (*Entry, error) {
	data, err := r.client.Get(ctx, r.docKey(id)).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get history entry: %w", err)
	}

	var e Entry
	if err := json.Unmarshal([]byte(data), &e); err != nil {
		return nil, fmt.Errorf("unmarshal history entry: %w", err)
	}
	if e.UserID != userID {
		return nil, ErrNotFound
	}
	return &e, nil
}

// Delete removes one entry for the user.
func (r *Repo) Delete(ctx context.Context, userID, id string) error {
	if _, err := r.Get(ctx, userID, id); err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.docKey(id))
	pipe.SRem(ctx, r.userKey(userID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("delete history entry: %w", err)
	}
	return nil
}

// Clear drops every entry of the user.
func (r *Repo) Clear(ctx context.Context, userID string) error {
	ids, err := r.client.SMembers(ctx, r.userKey(userID)).Result()
	if err != nil {
		return fmt.Errorf("clear history: %w", err)
	}

	pipe := r.client.Pipeline()
	for _, id := range ids {
		pipe.Del(ctx, r.docKey(id))
	}
	pipe.Del(ctx, r.userKey(userID))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

func (r *Repo) docKey(id string) string      { return docKeyPrefix + id }
func (r *Repo) userKey(userID string) string { return userSetPrefix + userID }
