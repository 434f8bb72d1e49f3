package db

import (
	"context"
	"time"
)

const createFunnel = `
INSERT INTO funnels (id, name, slug, created_at)
VALUES (?, ?, ?, ?)
`

type CreateFunnelParams struct {
	ID        string
	Name      string
	Slug      string
	CreatedAt time.Time
}

func (q *Queries) CreateFunnel(ctx context.Context, arg CreateFunnelParams) (Funnel, error) {
	_, err := q.db.ExecContext(ctx, createFunnel,
		arg.ID,
		arg.Name,
		arg.Slug,
		arg.CreatedAt,
	)
	if err != nil {
		return Funnel{}, err
	}
	return q.GetFunnelByID(ctx, arg.ID)
}

const getFunnelByID = `
SELECT id, name, slug, created_at FROM funnels WHERE id = ?
`

func (q *Queries) GetFunnelByID(ctx context.Context, id string) (Funnel, error) {
	row := q.db.QueryRowContext(ctx, getFunnelByID, id)
	var i Funnel
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Slug,
		&i.CreatedAt,
	)
	return i, err
}
