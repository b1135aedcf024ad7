// Package migrations creates and upgrades the registry schema (employees,
// departments and the employee_department join table) from the .sql files
// embedded in FS.
package migrations

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"
	"slices"
)

const ledgerDDL = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	filename   TEXT PRIMARY KEY,
	applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// schemaFile is one embedded .sql file not yet recorded in the ledger.
type schemaFile struct {
	name string
	body string
}

// Run brings the registry schema up to date. A file and its ledger row are
// written in one transaction; a failing file stops the run and leaves the
// files before it in place.
func Run(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, ledgerDDL); err != nil {
		return fmt.Errorf("create schema ledger: %w", err)
	}

	todo, err := pending(ctx, db)
	if err != nil {
		return err
	}
	if len(todo) == 0 {
		slog.Debug("registry schema up to date")
		return nil
	}

	for _, f := range todo {
		if err := f.apply(ctx, db); err != nil {
			return fmt.Errorf("schema file %s: %w", f.name, err)
		}
		slog.Info("registry schema upgraded", "file", f.name)
	}
	return nil
}

// Applied returns the names recorded in the schema ledger, sorted.
func Applied(ctx context.Context, db *sql.DB) ([]string, error) {
	rows, err := db.QueryContext(ctx, "SELECT filename FROM schema_migrations ORDER BY filename")
	if err != nil {
		return nil, fmt.Errorf("read schema ledger: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan schema ledger: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// pending loads the embedded files missing from the ledger, in name order.
func pending(ctx context.Context, db *sql.DB) ([]schemaFile, error) {
	done, err := Applied(ctx, db)
	if err != nil {
		return nil, err
	}

	names, err := fs.Glob(FS, "*.sql")
	if err != nil {
		return nil, fmt.Errorf("list schema files: %w", err)
	}
	slices.Sort(names)

	var todo []schemaFile
	for _, name := range names {
		if slices.Contains(done, name) {
			continue
		}
		body, err := fs.ReadFile(FS, name)
		if err != nil {
			return nil, fmt.Errorf("read schema file %s: %w", name, err)
		}
		todo = append(todo, schemaFile{name: name, body: string(body)})
	}
	return todo, nil
}

func (f schemaFile) apply(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, f.body); err != nil {
		return fmt.Errorf("exec: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO schema_migrations (filename) VALUES (?)", f.name,
	); err != nil {
		return fmt.Errorf("record in ledger: %w", err)
	}
	return tx.Commit()
}
