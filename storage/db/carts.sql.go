package db

import (
	"context"
	"database/sql"
	"time"
)

const cartColumns = `id, funnel_id, session_id, customer_name, customer_email, status, recovery_token, created_at, updated_at, abandoned_at, recovered_at`

func scanCart(row interface{ Scan(...interface{}) error }, i *Cart) error {
	return row.Scan(
		&i.ID,
		&i.FunnelID,
		&i.SessionID,
		&i.CustomerName,
		&i.CustomerEmail,
		&i.Status,
		&i.RecoveryToken,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.AbandonedAt,
		&i.RecoveredAt,
	)
}

const createCart = `
INSERT INTO carts (id, funnel_id, session_id, customer_name, customer_email, status, recovery_token, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`

type CreateCartParams struct {
	ID            string
	FunnelID      string
	SessionID     sql.NullString
	CustomerName  sql.NullString
	CustomerEmail sql.NullString
	Status        string
	RecoveryToken string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (q *Queries) CreateCart(ctx context.Context, arg CreateCartParams) (Cart, error) {
	_, err := q.db.ExecContext(ctx, createCart,
		arg.ID,
		arg.FunnelID,
		arg.SessionID,
		arg.CustomerName,
		arg.CustomerEmail,
		arg.Status,
		arg.RecoveryToken,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	if err != nil {
		return Cart{}, err
	}
	return q.GetCartByID(ctx, arg.ID)
}

const getCartByID = `SELECT ` + cartColumns + ` FROM carts WHERE id = ?`

func (q *Queries) GetCartByID(ctx context.Context, id string) (Cart, error) {
	row := q.db.QueryRowContext(ctx, getCartByID, id)
	var i Cart
	err := scanCart(row, &i)
	return i, err
}

const getCartByRecoveryToken = `SELECT ` + cartColumns + ` FROM carts WHERE recovery_token = ?`

func (q *Queries) GetCartByRecoveryToken(ctx context.Context, recoveryToken string) (Cart, error) {
	row := q.db.QueryRowContext(ctx, getCartByRecoveryToken, recoveryToken)
	var i Cart
	err := scanCart(row, &i)
	return i, err
}

const listActiveCartsWithEmail = `
SELECT ` + cartColumns + ` FROM carts
WHERE status = 'active'
  AND customer_email IS NOT NULL
  AND customer_email != ''
ORDER BY updated_at
`

func (q *Queries) ListActiveCartsWithEmail(ctx context.Context) ([]Cart, error) {
	rows, err := q.db.QueryContext(ctx, listActiveCartsWithEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Cart
	for rows.Next() {
		var i Cart
		if err := scanCart(rows, &i); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const markCartAbandoned = `
UPDATE carts SET status = 'abandoned', abandoned_at = ?
WHERE id = ? AND status = 'active'
`

type MarkCartAbandonedParams struct {
	AbandonedAt time.Time
	ID          string
}

func (q *Queries) MarkCartAbandoned(ctx context.Context, arg MarkCartAbandonedParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, markCartAbandoned, arg.AbandonedAt, arg.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const markCartRecovered = `
UPDATE carts SET status = 'recovered', recovered_at = ?, updated_at = ?
WHERE id = ? AND status != 'recovered'
`

type MarkCartRecoveredParams struct {
	RecoveredAt time.Time
	ID          string
}

func (q *Queries) MarkCartRecovered(ctx context.Context, arg MarkCartRecoveredParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, markCartRecovered, arg.RecoveredAt, arg.RecoveredAt, arg.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const listAbandonedCartsForRecovery = `
SELECT
    c.id, c.funnel_id, c.session_id, c.customer_name, c.customer_email, c.status,
    c.recovery_token, c.created_at, c.updated_at, c.abandoned_at, c.recovered_at,
    f.name AS funnel_name,
    f.slug AS funnel_slug,
    (SELECT COUNT(*) FROM cart_recovery_emails e
        WHERE e.cart_id = c.id AND e.status = 'sent') AS sent_count
FROM carts c
JOIN funnels f ON f.id = c.funnel_id
WHERE c.status = 'abandoned'
  AND c.abandoned_at IS NOT NULL
  AND c.customer_email IS NOT NULL
  AND c.customer_email != ''
ORDER BY c.abandoned_at
`

type ListAbandonedCartsForRecoveryRow struct {
	Cart       Cart
	FunnelName string
	FunnelSlug string
	SentCount  int64
}

func (q *Queries) ListAbandonedCartsForRecovery(ctx context.Context) ([]ListAbandonedCartsForRecoveryRow, error) {
	rows, err := q.db.QueryContext(ctx, listAbandonedCartsForRecovery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListAbandonedCartsForRecoveryRow
	for rows.Next() {
		var i ListAbandonedCartsForRecoveryRow
		if err := rows.Scan(
			&i.Cart.ID,
			&i.Cart.FunnelID,
			&i.Cart.SessionID,
			&i.Cart.CustomerName,
			&i.Cart.CustomerEmail,
			&i.Cart.Status,
			&i.Cart.RecoveryToken,
			&i.Cart.CreatedAt,
			&i.Cart.UpdatedAt,
			&i.Cart.AbandonedAt,
			&i.Cart.RecoveredAt,
			&i.FunnelName,
			&i.FunnelSlug,
			&i.SentCount,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
