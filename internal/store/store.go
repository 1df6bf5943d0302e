package store

import (
	"context"
	"fmt"
	"time"

	"inventory-api/internal/models"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Store is a read-only catalog source backed by Postgres. It is used only
// during startup to load the product rows; the running service never
// touches the database.
type Store struct {
	db *sqlx.DB
}

// NewStore connects to the catalog database.
func NewStore(databaseURL string) (*Store, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// LoadProducts reads the full product set. It is called once before the
// server starts listening; the result seeds the immutable catalog.
func (s *Store) LoadProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := s.db.SelectContext(ctx, &products,
		"SELECT id, name, category, price, quantity, reorder_level, description FROM products ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	return products, nil
}
