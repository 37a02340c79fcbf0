package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"

	"github.com/cwrk-planet/rooms-api/internal/domain"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var embeddedSchema embed.FS

// Open открывает файл БД, включает WAL и внешние ключи, накатывает схему.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	for _, pragma := range []string{`PRAGMA journal_mode=WAL;`, `PRAGMA foreign_keys=ON;`} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}

	if err := InitSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func InitSchema(ctx context.Context, db *sql.DB) error {
	b, err := embeddedSchema.ReadFile("schema.sql")
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, strings.TrimSpace(string(b))); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}
