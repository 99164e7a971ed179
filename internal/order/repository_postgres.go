package order

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/zsherman2510/shop-themes-backend/internal/cart"
	"github.com/zsherman2510/shop-themes-backend/internal/listing"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	selectOrderColumns = `
		SELECT order_id, number, customer_id, customer_email, items, item_count, subtotal, shipping_price, total_price, status, created_at, updated_at
		FROM orders
	`
	getOrderByIDQuery = selectOrderColumns + ` WHERE order_id = $1`
	insertOrderQuery  = `
		INSERT INTO orders (order_id, number, customer_id, customer_email, items, item_count, subtotal, shipping_price, total_price, status, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`
	updateOrderQuery = `
		UPDATE orders
		SET customer_id = $1, customer_email = $2, status = $3, updated_at = $4
		WHERE order_id = $5
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(q listing.Query) ([]Order, int, error) {
	where := make([]string, 0, 2)
	args := make([]interface{}, 0, 3)

	if q.Search != "" {
		args = append(args, "%"+q.Search+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(number ILIKE $%d OR customer_email ILIKE $%d)", n, n))
	}
	if v := q.Filter("status"); v != "" {
		args = append(args, v)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM orders`+clause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	query := selectOrderColumns + clause +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, q.Limit, q.Offset())

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	out := make([]Order, 0, q.Limit)
	for rows.Next() {
		ord, err := scanOrder(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, ord)
	}
	return out, total, rows.Err()
}

func (r *PostgresRepository) GetByID(id string) (Order, error) {
	ord, err := scanOrder(r.db.QueryRow(getOrderByIDQuery, id))
	if err == sql.ErrNoRows {
		return Order{}, ErrNotFound
	}
	if err != nil {
		return Order{}, fmt.Errorf("get order: %w", err)
	}
	return ord, nil
}

func (r *PostgresRepository) Create(ord Order) (Order, error) {
	if ord.ID == "" {
		ord.ID = uuid.NewString()
	}
	items, err := json.Marshal(ord.Items)
	if err != nil {
		return Order{}, fmt.Errorf("encode order items: %w", err)
	}
	_, err = r.db.Exec(
		insertOrderQuery,
		ord.ID,
		ord.Number,
		nullable(ord.CustomerID),
		ord.CustomerEmail,
		items,
		ord.ItemCount,
		ord.Subtotal,
		ord.ShippingPrice,
		ord.TotalPrice,
		ord.Status,
		ord.CreatedAt,
		ord.UpdatedAt,
	)
	if err != nil {
		return Order{}, fmt.Errorf("create order: %w", err)
	}
	return ord, nil
}

// Update only touches the mutable columns; the item snapshot and price
// breakdown are immutable once the order exists.
func (r *PostgresRepository) Update(id string, ord Order) (Order, error) {
	res, err := r.db.Exec(updateOrderQuery, nullable(ord.CustomerID), ord.CustomerEmail, ord.Status, ord.UpdatedAt, id)
	if err != nil {
		return Order{}, fmt.Errorf("update order: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Order{}, ErrNotFound
	}
	ord.ID = id
	return ord, nil
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (Order, error) {
	var (
		ord        Order
		customerID sql.NullString
		rawItems   []byte
	)
	err := row.Scan(
		&ord.ID,
		&ord.Number,
		&customerID,
		&ord.CustomerEmail,
		&rawItems,
		&ord.ItemCount,
		&ord.Subtotal,
		&ord.ShippingPrice,
		&ord.TotalPrice,
		&ord.Status,
		&ord.CreatedAt,
		&ord.UpdatedAt,
	)
	if err != nil {
		return Order{}, err
	}
	if customerID.Valid {
		ord.CustomerID = customerID.String
	}
	if len(rawItems) > 0 {
		var items []cart.LineItem
		if err := json.Unmarshal(rawItems, &items); err != nil {
			return Order{}, fmt.Errorf("decode order items: %w", err)
		}
		ord.Items = items
	}
	return ord, nil
}
