package category

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listCategoriesQuery = `
		SELECT category_id, name, slug, created_at
		FROM categories
		ORDER BY name
	`
	getCategoryByIDQuery = `
		SELECT category_id, name, slug, created_at
		FROM categories
		WHERE category_id = $1
	`
	insertCategoryQuery = `
		INSERT INTO categories (category_id, name, slug, created_at)
		VALUES ($1,$2,$3,$4)
	`
	updateCategoryQuery = `
		UPDATE categories SET name = $1, slug = $2 WHERE category_id = $3
	`
	deleteCategoryQuery = `DELETE FROM categories WHERE category_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Category, error) {
	rows, err := r.db.Query(listCategoriesQuery)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	out := make([]Category, 0)
	for rows.Next() {
		var cat Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Slug, &cat.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, cat)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id string) (Category, error) {
	var cat Category
	err := r.db.QueryRow(getCategoryByIDQuery, id).Scan(&cat.ID, &cat.Name, &cat.Slug, &cat.CreatedAt)
	if err == sql.ErrNoRows {
		return Category{}, ErrNotFound
	}
	if err != nil {
		return Category{}, fmt.Errorf("get category: %w", err)
	}
	return cat, nil
}

func (r *PostgresRepository) Create(cat Category) (Category, error) {
	if cat.ID == "" {
		cat.ID = uuid.NewString()
	}
	if _, err := r.db.Exec(insertCategoryQuery, cat.ID, cat.Name, cat.Slug, cat.CreatedAt); err != nil {
		return Category{}, fmt.Errorf("create category: %w", err)
	}
	return cat, nil
}

func (r *PostgresRepository) Update(id string, cat Category) (Category, error) {
	res, err := r.db.Exec(updateCategoryQuery, cat.Name, cat.Slug, id)
	if err != nil {
		return Category{}, fmt.Errorf("update category: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Category{}, ErrNotFound
	}
	cat.ID = id
	return cat, nil
}

func (r *PostgresRepository) Delete(id string) error {
	res, err := r.db.Exec(deleteCategoryQuery, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
