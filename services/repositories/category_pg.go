package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v4/pgxpool"

	"ctgapi/models"
)

// Schema creates the tables Source reads. position is the serving order.
const Schema = `
CREATE TABLE IF NOT EXISTS categories (
	position   integer PRIMARY KEY,
	id         integer NOT NULL UNIQUE,
	title      text    NOT NULL,
	attributes jsonb
);
CREATE TABLE IF NOT EXISTS category_details (
	id     integer PRIMARY KEY,
	detail jsonb
);`

// Source reads both datasets from Postgres. It is only queried at startup.
type Source struct {
	p *pgxpool.Pool
}

func NewSource(p *pgxpool.Pool) *Source {
	return &Source{
		p: p,
	}
}

func Connect(ctx context.Context, url string) (*pgxpool.Pool, error) {
	p, err := pgxpool.Connect(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}
	return p, nil
}

func (src *Source) Name() string {
	return "postgres"
}

func (src *Source) Categories(ctx context.Context) ([]models.Category, error) {
	conn, err := src.p.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to acquire a database connection: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, "SELECT id, title, attributes FROM categories ORDER BY position")
	if err != nil {
		return nil, queryError("categories", err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		var category models.Category
		var attributes []byte
		if err = rows.Scan(&category.Id, &category.Title, &attributes); err != nil {
			return nil, fmt.Errorf("unable to scan category: %w", err)
		}
		if len(attributes) > 0 {
			if err = json.Unmarshal(attributes, &category.Attributes); err != nil {
				return nil, fmt.Errorf("category %d attributes must be a json object: %w", category.Id, err)
			}
			delete(category.Attributes, "id")
			delete(category.Attributes, "title")
		}
		categories = append(categories, category)
	}
	if err = rows.Err(); err != nil {
		return nil, queryError("categories", err)
	}

	return categories, nil
}

func (src *Source) Details(ctx context.Context) (map[int32]models.Detail, error) {
	conn, err := src.p.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to acquire a database connection: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, "SELECT id, detail FROM category_details")
	if err != nil {
		return nil, queryError("category_details", err)
	}
	defer rows.Close()

	details := make(map[int32]models.Detail)
	for rows.Next() {
		var id int32
		var detail []byte
		if err = rows.Scan(&id, &detail); err != nil {
			return nil, fmt.Errorf("unable to scan category detail: %w", err)
		}
		if detail == nil {
			detail = []byte("null")
		}
		details[id] = models.Detail(detail)
	}
	if err = rows.Err(); err != nil {
		return nil, queryError("category_details", err)
	}

	return details, nil
}

func queryError(table string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UndefinedTable:
			return fmt.Errorf("table %s does not exist: %w", table, err)
		case pgerrcode.UndefinedColumn:
			return fmt.Errorf("table %s has an unexpected schema: %w", table, err)
		}
	}
	return fmt.Errorf("unable to SELECT %s: %w", table, err)
}
