package db

import (
	"context"
	"time"
)

const createRecoveryEmail = `
INSERT INTO cart_recovery_emails (id, cart_id, email_number, tracking_token, subject, status, sent_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
`

type CreateRecoveryEmailParams struct {
	ID            string
	CartID        string
	EmailNumber   int64
	TrackingToken string
	Subject       string
	Status        string
	SentAt        time.Time
}

func (q *Queries) CreateRecoveryEmail(ctx context.Context, arg CreateRecoveryEmailParams) error {
	_, err := q.db.ExecContext(ctx, createRecoveryEmail,
		arg.ID,
		arg.CartID,
		arg.EmailNumber,
		arg.TrackingToken,
		arg.Subject,
		arg.Status,
		arg.SentAt,
	)
	return err
}

const listRecoveryEmailsByCart = `
SELECT id, cart_id, email_number, tracking_token, subject, status, sent_at, clicked_at
FROM cart_recovery_emails
WHERE cart_id = ?
ORDER BY sent_at, email_number
`

func (q *Queries) ListRecoveryEmailsByCart(ctx context.Context, cartID string) ([]CartRecoveryEmail, error) {
	rows, err := q.db.QueryContext(ctx, listRecoveryEmailsByCart, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CartRecoveryEmail
	for rows.Next() {
		var i CartRecoveryEmail
		if err := rows.Scan(
			&i.ID,
			&i.CartID,
			&i.EmailNumber,
			&i.TrackingToken,
			&i.Subject,
			&i.Status,
			&i.SentAt,
			&i.ClickedAt,
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

const markRecoveryEmailClicked = `
UPDATE cart_recovery_emails
SET clicked_at = ?
WHERE tracking_token = ? AND cart_id = ? AND clicked_at IS NULL
`

type MarkRecoveryEmailClickedParams struct {
	ClickedAt     time.Time
	TrackingToken string
	CartID        string
}

func (q *Queries) MarkRecoveryEmailClicked(ctx context.Context, arg MarkRecoveryEmailClickedParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, markRecoveryEmailClicked, arg.ClickedAt, arg.TrackingToken, arg.CartID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
