package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the repositories need. pgxmock satisfies
// it too, which is what the repository tests run against.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// EntityStore defines the operations every resource collection supports.
// Lookups by id return (nil, nil) when the id does not exist.
type EntityStore[T any] interface {
	Insert(ctx context.Context, entity *T) error
	FindAll(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id string) (*T, error)
	UpdateByID(ctx context.Context, id string, patch map[string]any) (*T, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// Collection is a typed document store scoped to one logical collection in
// the shared documents table. Documents are stored as JSONB with the id kept
// in its own column; reads merge the id back into the JSON before decoding,
// so T only needs an `id` field in its JSON shape.
type Collection[T any] struct {
	db   DB
	name string
}

// NewCollection creates a Collection backed by the given database
func NewCollection[T any](db DB, name string) *Collection[T] {
	return &Collection[T]{db: db, name: name}
}

// Name returns the collection name
func (c *Collection[T]) Name() string {
	return c.name
}

// Insert stores a new document and populates the entity's assigned id
func (c *Collection[T]) Insert(ctx context.Context, entity *T) error {
	data, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("failed to encode %s document: %w", c.name, err)
	}

	sql := `INSERT INTO documents (id, collection, data)
            VALUES ($1::uuid, $2, $3::jsonb - 'id')
            RETURNING data || jsonb_build_object('id', id)`
	var stored []byte
	err = c.db.QueryRow(ctx, sql, uuid.NewString(), c.name, string(data)).Scan(&stored)
	if err != nil {
		return fmt.Errorf("failed to insert %s document: %w", c.name, err)
	}
	if err := json.Unmarshal(stored, entity); err != nil {
		return fmt.Errorf("failed to decode stored %s document: %w", c.name, err)
	}
	return nil
}

// FindAll retrieves every document of the collection in insertion order
func (c *Collection[T]) FindAll(ctx context.Context) ([]T, error) {
	sql := `SELECT data || jsonb_build_object('id', id)
            FROM documents WHERE collection = $1
            ORDER BY created_at, id`
	rows, err := c.db.Query(ctx, sql, c.name)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s documents: %w", c.name, err)
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan %s document: %w", c.name, err)
		}
		var item T
		if err := json.Unmarshal(data, &item); err != nil {
			return nil, fmt.Errorf("failed to decode %s document: %w", c.name, err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s documents: %w", c.name, err)
	}
	return items, nil
}

// FindOne retrieves the oldest document of the collection, used for
// conceptually-singleton collections such as about
func (c *Collection[T]) FindOne(ctx context.Context) (*T, error) {
	sql := `SELECT data || jsonb_build_object('id', id)
            FROM documents WHERE collection = $1
            ORDER BY created_at, id LIMIT 1`
	var data []byte
	err := c.db.QueryRow(ctx, sql, c.name).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Empty collection
		}
		return nil, fmt.Errorf("failed to query %s document: %w", c.name, err)
	}
	return c.decode(data)
}

// FindByID retrieves a single document by its id
func (c *Collection[T]) FindByID(ctx context.Context, id string) (*T, error) {
	docID, err := uuid.Parse(id)
	if err != nil {
		return nil, nil // Malformed ids cannot match any document
	}

	sql := `SELECT data || jsonb_build_object('id', id)
            FROM documents WHERE id = $1::uuid AND collection = $2`
	var data []byte
	err = c.db.QueryRow(ctx, sql, docID.String(), c.name).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find %s document by id: %w", c.name, err)
	}
	return c.decode(data)
}

// UpdateByID merges the patch into the stored document and returns the
// updated entity, or (nil, nil) when the id does not exist. The id field is
// stripped from the patch so it can never be rewritten.
func (c *Collection[T]) UpdateByID(ctx context.Context, id string, patch map[string]any) (*T, error) {
	docID, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	patchJSON, err := json.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s patch: %w", c.name, err)
	}

	sql := `UPDATE documents
            SET data = data || ($3::jsonb - 'id'), updated_at = NOW()
            WHERE id = $1::uuid AND collection = $2
            RETURNING data || jsonb_build_object('id', id)`
	var data []byte
	err = c.db.QueryRow(ctx, sql, docID.String(), c.name, string(patchJSON)).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update %s document: %w", c.name, err)
	}
	return c.decode(data)
}

// DeleteByID removes a document, reporting whether it existed
func (c *Collection[T]) DeleteByID(ctx context.Context, id string) (bool, error) {
	docID, err := uuid.Parse(id)
	if err != nil {
		return false, nil
	}

	sql := `DELETE FROM documents WHERE id = $1::uuid AND collection = $2`
	cmdTag, err := c.db.Exec(ctx, sql, docID.String(), c.name)
	if err != nil {
		return false, fmt.Errorf("failed to delete %s document: %w", c.name, err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// Count returns the number of documents in the collection
func (c *Collection[T]) Count(ctx context.Context) (int64, error) {
	var count int64
	sql := `SELECT COUNT(*) FROM documents WHERE collection = $1`
	if err := c.db.QueryRow(ctx, sql, c.name).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count %s documents: %w", c.name, err)
	}
	return count, nil
}

func (c *Collection[T]) decode(data []byte) (*T, error) {
	item := new(T)
	if err := json.Unmarshal(data, item); err != nil {
		return nil, fmt.Errorf("failed to decode %s document: %w", c.name, err)
	}
	return item, nil
}
