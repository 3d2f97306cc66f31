package db

import "context"

const getProduct = `
SELECT id, user_id, name, description, unit_price_cents, tax_rate_bps, deleted_at
FROM products
WHERE id = $1 AND deleted_at IS NULL`

func (q *Queries) GetProduct(ctx context.Context, id int64) (Product, error) {
	var p Product
	err := q.db.QueryRow(ctx, getProduct, id).Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&p.Description,
		&p.UnitPriceCents,
		&p.TaxRateBps,
		&p.DeletedAt,
	)
	return p, err
}

const getClient = `
SELECT id, user_id, name, email
FROM clients
WHERE id = $1`

func (q *Queries) GetClient(ctx context.Context, id int64) (Client, error) {
	var c Client
	err := q.db.QueryRow(ctx, getClient, id).Scan(
		&c.ID,
		&c.UserID,
		&c.Name,
		&c.Email,
	)
	return c, err
}
