package order

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) SaveSubmitted(ctx context.Context, order *SubmittedOrder) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO submitted_orders
			(id, customer_id, entree, side, accompaniment, subtotal, tax, total, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		order.ID, order.CustomerID,
		order.Entree, order.Side, order.Accompaniment,
		order.Subtotal, order.Tax, order.Total, order.SubmittedAt,
	)
	return err
}

func (r *PostgresRepository) ListByCustomer(ctx context.Context, customerID string) ([]SubmittedOrder, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, customer_id, entree, side, accompaniment,
		       subtotal, tax, total, submitted_at
		FROM submitted_orders
		WHERE customer_id = $1
		ORDER BY submitted_at DESC
	`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []SubmittedOrder
	for rows.Next() {
		var o SubmittedOrder
		if err := rows.Scan(
			&o.ID, &o.CustomerID,
			&o.Entree, &o.Side, &o.Accompaniment,
			&o.Subtotal, &o.Tax, &o.Total, &o.SubmittedAt,
		); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
