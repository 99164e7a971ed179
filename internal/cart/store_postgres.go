package cart

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// PostgresStore keeps each session's cart as a jsonb row so a shopper's
// cart survives server restarts within the cookie lifetime.
type PostgresStore struct {
	db *sql.DB
}

const (
	loadCartQuery = `SELECT data FROM carts WHERE session_id = $1`
	saveCartQuery = `
		INSERT INTO carts (session_id, data, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (session_id) DO UPDATE SET data = $2, updated_at = $3
	`
	deleteCartQuery = `DELETE FROM carts WHERE session_id = $1`
)

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Load(sessionID string) (Cart, error) {
	var raw []byte
	err := s.db.QueryRow(loadCartQuery, sessionID).Scan(&raw)
	if err == sql.ErrNoRows {
		return Cart{}, nil
	}
	if err != nil {
		return Cart{}, fmt.Errorf("load cart: %w", err)
	}
	var ct Cart
	if err := json.Unmarshal(raw, &ct); err != nil {
		return Cart{}, fmt.Errorf("decode cart: %w", err)
	}
	return ct, nil
}

func (s *PostgresStore) Save(sessionID string, ct Cart) error {
	raw, err := json.Marshal(ct)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := s.db.Exec(saveCartQuery, sessionID, raw, now); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (s *PostgresStore) Delete(sessionID string) error {
	if _, err := s.db.Exec(deleteCartQuery, sessionID); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}
