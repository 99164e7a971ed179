package theme

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	selectThemeColumns = `
		SELECT theme_id, name, settings, active, created_at, updated_at
		FROM themes
	`
	listThemesQuery     = selectThemeColumns + ` ORDER BY created_at DESC`
	getActiveThemeQuery = selectThemeColumns + ` WHERE active = true`
	getThemeByIDQuery   = selectThemeColumns + ` WHERE theme_id = $1`
	insertThemeQuery    = `
		INSERT INTO themes (theme_id, name, settings, active, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`
	updateThemeQuery = `
		UPDATE themes SET name = $1, settings = $2, updated_at = $3 WHERE theme_id = $4
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Theme, error) {
	rows, err := r.db.Query(listThemesQuery)
	if err != nil {
		return nil, fmt.Errorf("list themes: %w", err)
	}
	defer rows.Close()

	out := make([]Theme, 0)
	for rows.Next() {
		t, err := scanTheme(rows)
		if err != nil {
			return nil, fmt.Errorf("scan theme: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetActive() (Theme, error) {
	t, err := scanTheme(r.db.QueryRow(getActiveThemeQuery))
	if err == sql.ErrNoRows {
		return Theme{}, ErrNoActive
	}
	if err != nil {
		return Theme{}, fmt.Errorf("get active theme: %w", err)
	}
	return t, nil
}

func (r *PostgresRepository) GetByID(id string) (Theme, error) {
	t, err := scanTheme(r.db.QueryRow(getThemeByIDQuery, id))
	if err == sql.ErrNoRows {
		return Theme{}, ErrNotFound
	}
	if err != nil {
		return Theme{}, fmt.Errorf("get theme: %w", err)
	}
	return t, nil
}

func (r *PostgresRepository) Create(t Theme) (Theme, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	_, err := r.db.Exec(insertThemeQuery, t.ID, t.Name, []byte(t.Settings), t.Active, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return Theme{}, fmt.Errorf("create theme: %w", err)
	}
	return t, nil
}

func (r *PostgresRepository) Update(id string, t Theme) (Theme, error) {
	res, err := r.db.Exec(updateThemeQuery, t.Name, []byte(t.Settings), t.UpdatedAt, id)
	if err != nil {
		return Theme{}, fmt.Errorf("update theme: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Theme{}, ErrNotFound
	}
	t.ID = id
	return t, nil
}

// SetActive flips the single active flag inside one transaction so the
// storefront never observes zero or two active themes.
func (r *PostgresRepository) SetActive(id string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("set active theme: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`UPDATE themes SET active = true WHERE theme_id = $1`, id)
	if err != nil {
		return fmt.Errorf("set active theme: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	if _, err := tx.Exec(`UPDATE themes SET active = false WHERE theme_id <> $1`, id); err != nil {
		return fmt.Errorf("deactivate themes: %w", err)
	}
	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTheme(row rowScanner) (Theme, error) {
	var (
		t   Theme
		raw []byte
	)
	if err := row.Scan(&t.ID, &t.Name, &raw, &t.Active, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return Theme{}, err
	}
	t.Settings = raw
	return t, nil
}
