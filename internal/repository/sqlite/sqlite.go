package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/msomdec/enterprise/internal/domain"
	"github.com/msomdec/enterprise/internal/repository/sqlite/migrations"
	_ "modernc.org/sqlite"
)

var _ domain.Database = (*DB)(nil)

// DB is the single-file relational store. It owns the connection handle
// and hands out repositories that share it.
type DB struct {
	SqlDB   *sql.DB
	metrics *Metrics
}

// Option configures a DB.
type Option func(*DB)

// WithMetrics records the outcome of every repository call in m.
func WithMetrics(m *Metrics) Option {
	return func(db *DB) { db.metrics = m }
}

// New opens a SQLite database at the given path and configures it for use.
// Foreign keys are requested through the DSN so that every connection the
// pool opens enforces the cascade rules.
func New(dbPath string, opts ...Option) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", dsn(dbPath))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := sqlDB.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	// SQLite has a single writer.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(context.Background()); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	db := &DB{SqlDB: sqlDB}
	for _, opt := range opts {
		opt(db)
	}
	return db, nil
}

func dsn(dbPath string) string {
	sep := "?"
	if strings.Contains(dbPath, "?") {
		sep = "&"
	}
	return dbPath + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// Migrate creates the schema if it does not exist yet.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, db.SqlDB)
}

func (db *DB) Close() error {
	return db.SqlDB.Close()
}

func (db *DB) Employees() domain.EmployeeRepository {
	return &employeeRepo{db: db.SqlDB, metrics: db.metrics}
}

func (db *DB) Departments() domain.DepartmentRepository {
	return &departmentRepo{db: db.SqlDB, metrics: db.metrics}
}

func (db *DB) Memberships() domain.MembershipRepository {
	return &membershipRepo{db: db.SqlDB, metrics: db.metrics}
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// insertedID extracts the identity assigned by an INSERT. It returns
// domain.InvalidID when no row was written or SQLite did not report an id.
func insertedID(result sql.Result, noun string) (int64, error) {
	rows, err := result.RowsAffected()
	if err != nil {
		return domain.InvalidID, fmt.Errorf("insert %s: rows affected: %w", noun, err)
	}
	if rows == 0 {
		return domain.InvalidID, fmt.Errorf("insert %s: %w", noun, domain.ErrNoRowsAffected)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.InvalidID, fmt.Errorf("insert %s: %w: %w", noun, domain.ErrNoIdentity, err)
	}
	if id <= 0 {
		return domain.InvalidID, fmt.Errorf("insert %s: %w", noun, domain.ErrNoIdentity)
	}
	return id, nil
}
