package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	ent "github.com/omerfdemir/pickuptracker/ent/generated"
)

// DB bundles the two handles the application uses over one connection
// pool: the Ent client for entity access and a sqlx handle for the flat
// reporting queries.
type DB struct {
	Ent *ent.Client
	SQL *sqlx.DB
}

// Config for database connection
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Debug    bool
}

// New opens the Postgres pool and wraps it for Ent and sqlx.
func New(cfg Config) (*DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	drv := entsql.OpenDB(dialect.Postgres, db)

	opts := []ent.Option{ent.Driver(drv)}
	if cfg.Debug {
		opts = append(opts, ent.Debug())
	}

	log.Println("Connected to PostgreSQL")
	return &DB{
		Ent: ent.NewClient(opts...),
		SQL: sqlx.NewDb(db, "postgres"),
	}, nil
}

// Close closes the Ent client, which owns the underlying pool.
func (d *DB) Close() error {
	return d.Ent.Close()
}
