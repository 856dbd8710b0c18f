package order

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository stores orders in the orders table, items and
// delivery quote as JSONB.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) Push(ctx context.Context, rec *PersistedOrder) (string, error) {
	items, err := json.Marshal(rec.Items)
	if err != nil {
		return "", err
	}
	quote, err := json.Marshal(rec.Quote)
	if err != nil {
		return "", err
	}

	id := uuid.New().String()

	_, err = r.pool.Exec(ctx, `
		INSERT INTO orders (
			id, call_id, phone_number, call_type, service_type,
			items, items_summary, delivery_address, delivery,
			subtotal, total, notes, status, raw_transcript, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)`,
		id, rec.CallID, rec.PhoneNumber, rec.CallType, rec.ServiceType,
		items, rec.ItemsSummary, rec.DeliveryAddress, quote,
		rec.Subtotal, rec.Total, rec.Notes, rec.Status, rec.RawTranscript, rec.CreatedAt,
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *PostgresRepository) Exists(ctx context.Context, callID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM orders WHERE call_id = $1)`,
		callID,
	).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) List(ctx context.Context) (map[string]PersistedOrder, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, call_id, phone_number, call_type, service_type,
		       items, items_summary, delivery_address, delivery,
		       subtotal, total, notes, status, raw_transcript, created_at
		FROM orders
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make(map[string]PersistedOrder)
	for rows.Next() {
		var (
			id    string
			rec   PersistedOrder
			items []byte
			quote []byte
		)
		if err := rows.Scan(
			&id, &rec.CallID, &rec.PhoneNumber, &rec.CallType, &rec.ServiceType,
			&items, &rec.ItemsSummary, &rec.DeliveryAddress, &quote,
			&rec.Subtotal, &rec.Total, &rec.Notes, &rec.Status, &rec.RawTranscript, &rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(items, &rec.Items); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(quote, &rec.Quote); err != nil {
			return nil, err
		}
		orders[id] = rec
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE orders SET status = $1 WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
