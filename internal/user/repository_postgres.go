package user

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
	selectUserColumns = `
		SELECT user_id, email, password, first_name, last_name, role, created_at, updated_at
		FROM users
	`
	getUserByIDQuery    = selectUserColumns + ` WHERE user_id = $1`
	getUserByEmailQuery = selectUserColumns + ` WHERE email = $1`
	insertUserQuery     = `
		INSERT INTO users (user_id, email, password, first_name, last_name, role, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`
	updateUserQuery = `
		UPDATE users
		SET email = $1, password = $2, first_name = $3, last_name = $4, role = $5, updated_at = $6
		WHERE user_id = $7
	`
	deleteUserQuery = `DELETE FROM users WHERE user_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(q listing.Query) ([]User, int, error) {
	where := make([]string, 0, 2)
	args := make([]interface{}, 0, 3)

	if q.Search != "" {
		args = append(args, "%"+q.Search+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(email ILIKE $%d OR first_name ILIKE $%d OR last_name ILIKE $%d)", n, n, n))
	}
	if v := q.Filter("role"); v != "" {
		args = append(args, v)
		where = append(where, fmt.Sprintf("role = $%d", len(args)))
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM users`+clause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	query := selectUserColumns + clause +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, q.Limit, q.Offset())

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	out := make([]User, 0, q.Limit)
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Email, &u.Password, &u.FirstName, &u.LastName, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, u)
	}
	return out, total, rows.Err()
}

func (r *PostgresRepository) GetByID(id string) (User, error) {
	return r.getOne(getUserByIDQuery, id)
}

func (r *PostgresRepository) GetByEmail(email string) (User, error) {
	return r.getOne(getUserByEmailQuery, email)
}

func (r *PostgresRepository) getOne(query, arg string) (User, error) {
	var u User
	err := r.db.QueryRow(query, arg).Scan(&u.ID, &u.Email, &u.Password, &u.FirstName, &u.LastName, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (r *PostgresRepository) Create(u User) (User, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	_, err := r.db.Exec(insertUserQuery, u.ID, u.Email, u.Password, u.FirstName, u.LastName, u.Role, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		return User{}, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (r *PostgresRepository) Update(id string, u User) (User, error) {
	res, err := r.db.Exec(updateUserQuery, u.Email, u.Password, u.FirstName, u.LastName, u.Role, u.UpdatedAt, id)
	if err != nil {
		return User{}, fmt.Errorf("update user: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return User{}, ErrNotFound
	}
	u.ID = id
	return u, nil
}

func (r *PostgresRepository) Delete(id string) error {
	res, err := r.db.Exec(deleteUserQuery, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
