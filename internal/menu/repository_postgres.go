package menu

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByName(ctx context.Context, name string) (*Item, error) {
	item := &Item{}

	err := r.db.QueryRow(ctx, `
		SELECT name, price, category, description
		FROM menu_items
		WHERE name = $1
	`, name).Scan(&item.Name, &item.Price, &item.Category, &item.Description)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]Item, error) {
	rows, err := r.db.Query(ctx, `
		SELECT name, price, category, description
		FROM menu_items
		ORDER BY category, name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanItems(rows)
}

func (r *PostgresRepository) ListByCategory(ctx context.Context, category Category) ([]Item, error) {
	rows, err := r.db.Query(ctx, `
		SELECT name, price, category, description
		FROM menu_items
		WHERE category = $1
		ORDER BY name
	`, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanItems(rows)
}

// --------------------------------------------------
// UPSERT (ONE ROW PER ITEM NAME)
// --------------------------------------------------
func (r *PostgresRepository) Upsert(ctx context.Context, item *Item) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO menu_items (name, price, category, description)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO UPDATE
		SET price = EXCLUDED.price,
		    category = EXCLUDED.category,
		    description = EXCLUDED.description
	`, item.Name, item.Price, item.Category, item.Description)

	return err
}

func (r *PostgresRepository) Delete(ctx context.Context, name string) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM menu_items WHERE name = $1
	`, name)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}

func scanItems(rows pgx.Rows) ([]Item, error) {
	var items []Item
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.Name, &item.Price, &item.Category, &item.Description); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
