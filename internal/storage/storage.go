package storage

import (
	"database/sql"
	"embed"
	"errors"

	_ "modernc.org/sqlite"

	"telegram-nutrition-bot/internal/models"
)

//go:embed schema.sql
var ddl embed.FS

// cacheTTL — сутки; данные о продукте меняются редко, но бесконечно
// держать их тоже незачем.
const cacheTTL = 86400

type DB struct{ *sql.DB }

func New(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, err
	}
	if err = migrate(db); err != nil {
		return nil, err
	}
	return &DB{db}, nil
}

func migrate(db *sql.DB) error {
	b, err := ddl.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	_, err = db.Exec(string(b))
	return err
}

// ---------- product cache ---------------------------------------------------

// GetProduct returns a cached lookup result, or (nil, nil) on a miss or
// an expired entry.
func (d *DB) GetProduct(query string) (*models.Product, error) {
	var p models.Product
	err := d.QueryRow(`
        SELECT name, kcal_per_100g FROM product_cache
        WHERE query = ? AND cached_at > strftime('%s','now') - ?`,
		query, cacheTTL,
	).Scan(&p.Name, &p.KcalPer100g)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// SaveProduct stores a successful lookup, replacing any stale entry.
func (d *DB) SaveProduct(query string, p *models.Product) error {
	_, err := d.Exec(`
        INSERT INTO product_cache (query, name, kcal_per_100g, cached_at)
        VALUES (?,?,?, strftime('%s','now'))
        ON CONFLICT(query) DO UPDATE SET name=excluded.name,
            kcal_per_100g=excluded.kcal_per_100g,
            cached_at=excluded.cached_at
    `, query, p.Name, p.KcalPer100g)
	return err
}
