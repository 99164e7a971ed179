package product

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/zsherman2510/shop-themes-backend/internal/listing"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	selectProductColumns = `
		SELECT product_id, name, sku, description, price, images, category_id, status, created_at, updated_at
		FROM products
	`
	getProductByIDQuery = selectProductColumns + ` WHERE product_id = $1`
	insertProductQuery  = `
		INSERT INTO products (product_id, name, sku, description, price, images, category_id, status, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`
	updateProductQuery = `
		UPDATE products
		SET name = $1,
			sku = $2,
			description = $3,
			price = $4,
			images = $5,
			category_id = $6,
			status = $7,
			updated_at = $8
		WHERE product_id = $9
	`
	deleteProductQuery = `DELETE FROM products WHERE product_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List builds the predicate conjunction (search OR'd over name/sku/
// description, each filter AND'd), counts matches ignoring pagination and
// then fetches the page window ordered newest first.
func (r *PostgresRepository) List(q listing.Query) ([]Product, int, error) {
	where := make([]string, 0, 3)
	args := make([]interface{}, 0, 5)

	if q.Search != "" {
		args = append(args, "%"+q.Search+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(name ILIKE $%d OR sku ILIKE $%d OR description ILIKE $%d)", n, n, n))
	}
	if v := q.Filter("categoryId"); v != "" {
		args = append(args, v)
		where = append(where, fmt.Sprintf("category_id = $%d", len(args)))
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
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM products`+clause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	query := selectProductColumns + clause +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, q.Limit, q.Offset())

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	out := make([]Product, 0, q.Limit)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	return out, total, rows.Err()
}

func (r *PostgresRepository) GetByID(id string) (Product, error) {
	p, err := scanProduct(r.db.QueryRow(getProductByIDQuery, id))
	if err == sql.ErrNoRows {
		return Product{}, ErrNotFound
	}
	if err != nil {
		return Product{}, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) Create(p Product) (Product, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	_, err := r.db.Exec(
		insertProductQuery,
		p.ID,
		p.Name,
		p.SKU,
		p.Description,
		p.Price,
		pq.Array(p.Images),
		p.CategoryID,
		p.Status,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		return Product{}, fmt.Errorf("create product: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) Update(id string, p Product) (Product, error) {
	res, err := r.db.Exec(
		updateProductQuery,
		p.Name,
		p.SKU,
		p.Description,
		p.Price,
		pq.Array(p.Images),
		p.CategoryID,
		p.Status,
		p.UpdatedAt,
		id,
	)
	if err != nil {
		return Product{}, fmt.Errorf("update product: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Product{}, ErrNotFound
	}
	p.ID = id
	return p, nil
}

func (r *PostgresRepository) Delete(id string) error {
	res, err := r.db.Exec(deleteProductQuery, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (Product, error) {
	var (
		p        Product
		images   pq.StringArray
		category sql.NullString
	)
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.SKU,
		&p.Description,
		&p.Price,
		&images,
		&category,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return Product{}, err
	}
	p.Images = []string(images)
	if category.Valid {
		p.CategoryID = &category.String
	}
	return p, nil
}
