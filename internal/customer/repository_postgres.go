package customer

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/zsherman2510/shop-themes-backend/internal/listing"
)

type PostgresRepository struct {
	db *sql.DB
}

// order_count is denormalized onto the row and bumped at checkout
// completion, which keeps the hasOrders filter a plain equality check.
const (
	selectCustomerColumns = `
		SELECT customer_id, email, name, order_count, created_at
		FROM customers
	`
	getCustomerByIDQuery    = selectCustomerColumns + ` WHERE customer_id = $1`
	getCustomerByEmailQuery = selectCustomerColumns + ` WHERE email = $1`
	insertCustomerQuery     = `
		INSERT INTO customers (customer_id, email, name, order_count, created_at)
		VALUES ($1,$2,$3,$4,$5)
	`
	incrementOrderCountQuery = `UPDATE customers SET order_count = order_count + 1 WHERE customer_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(q listing.Query) ([]Customer, int, error) {
	where := make([]string, 0, 2)
	args := make([]interface{}, 0, 3)

	if q.Search != "" {
		args = append(args, "%"+q.Search+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(email ILIKE $%d OR name ILIKE $%d)", n, n))
	}
	switch q.Filter("hasOrders") {
	case "true":
		where = append(where, "order_count > 0")
	case "false":
		where = append(where, "order_count = 0")
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM customers`+clause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count customers: %w", err)
	}

	query := selectCustomerColumns + clause +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, q.Limit, q.Offset())

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	out := make([]Customer, 0, q.Limit)
	for rows.Next() {
		var cust Customer
		if err := rows.Scan(&cust.ID, &cust.Email, &cust.Name, &cust.OrderCount, &cust.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan customer: %w", err)
		}
		out = append(out, cust)
	}
	return out, total, rows.Err()
}

func (r *PostgresRepository) GetByID(id string) (Customer, error) {
	return r.getOne(getCustomerByIDQuery, id)
}

func (r *PostgresRepository) GetByEmail(email string) (Customer, error) {
	return r.getOne(getCustomerByEmailQuery, email)
}

func (r *PostgresRepository) getOne(query, arg string) (Customer, error) {
	var cust Customer
	err := r.db.QueryRow(query, arg).Scan(&cust.ID, &cust.Email, &cust.Name, &cust.OrderCount, &cust.CreatedAt)
	if err == sql.ErrNoRows {
		return Customer{}, ErrNotFound
	}
	if err != nil {
		return Customer{}, fmt.Errorf("get customer: %w", err)
	}
	return cust, nil
}

func (r *PostgresRepository) Create(cust Customer) (Customer, error) {
	if cust.ID == "" {
		cust.ID = uuid.NewString()
	}
	_, err := r.db.Exec(insertCustomerQuery, cust.ID, cust.Email, cust.Name, cust.OrderCount, cust.CreatedAt)
	if err != nil {
		return Customer{}, fmt.Errorf("create customer: %w", err)
	}
	return cust, nil
}

func (r *PostgresRepository) IncrementOrderCount(id string) error {
	res, err := r.db.Exec(incrementOrderCountQuery, id)
	if err != nil {
		return fmt.Errorf("increment order count: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
