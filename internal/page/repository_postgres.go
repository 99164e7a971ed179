package page

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

const (
	selectPageColumns = `
		SELECT page_id, slug, title, content, published, created_at, updated_at
		FROM pages
	`
	getPageByIDQuery   = selectPageColumns + ` WHERE page_id = $1`
	getPageBySlugQuery = selectPageColumns + ` WHERE slug = $1`
	insertPageQuery    = `
		INSERT INTO pages (page_id, slug, title, content, published, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`
	updatePageQuery = `
		UPDATE pages
		SET slug = $1, title = $2, content = $3, published = $4, updated_at = $5
		WHERE page_id = $6
	`
	deletePageQuery = `DELETE FROM pages WHERE page_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(q listing.Query) ([]Page, int, error) {
	where := make([]string, 0, 2)
	args := make([]interface{}, 0, 4)

	if q.Search != "" {
		args = append(args, "%"+q.Search+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(title ILIKE $%d OR slug ILIKE $%d)", n, n))
	}
	if v := q.Filter("published"); v != "" {
		args = append(args, v == "true")
		where = append(where, fmt.Sprintf("published = $%d", len(args)))
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM pages`+clause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count pages: %w", err)
	}

	query := selectPageColumns + clause +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, q.Limit, q.Offset())

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list pages: %w", err)
	}
	defer rows.Close()

	out := make([]Page, 0, q.Limit)
	for rows.Next() {
		var p Page
		if err := rows.Scan(&p.ID, &p.Slug, &p.Title, &p.Content, &p.Published, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan page: %w", err)
		}
		out = append(out, p)
	}
	return out, total, rows.Err()
}

func (r *PostgresRepository) GetByID(id string) (Page, error) {
	return r.getOne(getPageByIDQuery, id)
}

func (r *PostgresRepository) GetBySlug(slug string) (Page, error) {
	return r.getOne(getPageBySlugQuery, slug)
}

func (r *PostgresRepository) getOne(query, arg string) (Page, error) {
	var p Page
	err := r.db.QueryRow(query, arg).Scan(&p.ID, &p.Slug, &p.Title, &p.Content, &p.Published, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return Page{}, ErrNotFound
	}
	if err != nil {
		return Page{}, fmt.Errorf("get page: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) Create(p Page) (Page, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	_, err := r.db.Exec(insertPageQuery, p.ID, p.Slug, p.Title, p.Content, p.Published, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return Page{}, fmt.Errorf("create page: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) Update(id string, p Page) (Page, error) {
	res, err := r.db.Exec(updatePageQuery, p.Slug, p.Title, p.Content, p.Published, p.UpdatedAt, id)
	if err != nil {
		return Page{}, fmt.Errorf("update page: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Page{}, ErrNotFound
	}
	p.ID = id
	return p, nil
}

func (r *PostgresRepository) Delete(id string) error {
	res, err := r.db.Exec(deletePageQuery, id)
	if err != nil {
		return fmt.Errorf("delete page: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
