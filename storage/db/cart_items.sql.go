package db

import (
	"context"
	"database/sql"
)

const createCartItem = `
INSERT INTO cart_items (id, cart_id, position, product_name, unit_price, quantity)
VALUES (?, ?, ?, ?, ?, ?)
`

type CreateCartItemParams struct {
	ID          string
	CartID      string
	Position    int64
	ProductName sql.NullString
	UnitPrice   sql.NullFloat64
	Quantity    int64
}

func (q *Queries) CreateCartItem(ctx context.Context, arg CreateCartItemParams) error {
	_, err := q.db.ExecContext(ctx, createCartItem,
		arg.ID,
		arg.CartID,
		arg.Position,
		arg.ProductName,
		arg.UnitPrice,
		arg.Quantity,
	)
	return err
}

const listCartItems = `
SELECT id, cart_id, position, product_name, unit_price, quantity
FROM cart_items
WHERE cart_id = ?
ORDER BY position
`

func (q *Queries) ListCartItems(ctx context.Context, cartID string) ([]CartItem, error) {
	rows, err := q.db.QueryContext(ctx, listCartItems, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CartItem
	for rows.Next() {
		var i CartItem
		if err := rows.Scan(
			&i.ID,
			&i.CartID,
			&i.Position,
			&i.ProductName,
			&i.UnitPrice,
			&i.Quantity,
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
