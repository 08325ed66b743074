package storage

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// migration is one numbered step. Files are named NNNN_name.up.sql and
// NNNN_name.down.sql.
type migration struct {
	version int
	up      string
	down    string
}

// MigrateUp applies every step above the version recorded in
// PRAGMA user_version, each in its own transaction.
func MigrateUp(ctx context.Context, db *sql.DB) error {
	steps, err := loadMigrations()
	if err != nil {
		return err
	}
	current, err := SchemaVersion(ctx, db)
	if err != nil {
		return err
	}
	for _, step := range steps {
		if step.version <= current {
			continue
		}
		if err := applyStep(ctx, db, step.up, step.version); err != nil {
			return fmt.Errorf("apply migration %04d up: %w", step.version, err)
		}
	}
	return nil
}

// MigrateDown reverts every applied step, newest first.
func MigrateDown(ctx context.Context, db *sql.DB) error {
	steps, err := loadMigrations()
	if err != nil {
		return err
	}
	current, err := SchemaVersion(ctx, db)
	if err != nil {
		return err
	}
	for i := len(steps) - 1; i >= 0; i-- {
		step := steps[i]
		if step.version > current {
			continue
		}
		prev := 0
		if i > 0 {
			prev = steps[i-1].version
		}
		if err := applyStep(ctx, db, step.down, prev); err != nil {
			return fmt.Errorf("apply migration %04d down: %w", step.version, err)
		}
	}
	return nil
}

func SchemaVersion(ctx context.Context, db *sql.DB) (int, error) {
	var version int
	if err := db.QueryRowContext(ctx, `PRAGMA user_version`).Scan(&version); err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return version, nil
}

func applyStep(ctx context.Context, db *sql.DB, script string, version int) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if strings.TrimSpace(script) != "" {
		if _, err := tx.ExecContext(ctx, script); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	// PRAGMA does not take bind parameters.
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", version)); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func loadMigrations() ([]migration, error) {
	names, err := fs.Glob(migrationFiles, "migrations/*.sql")
	if err != nil {
		return nil, fmt.Errorf("glob migrations: %w", err)
	}
	byVersion := map[int]*migration{}
	for _, name := range names {
		base := path.Base(name)
		prefix, _, ok := strings.Cut(base, "_")
		if !ok {
			return nil, fmt.Errorf("migration %s: missing version prefix", base)
		}
		version, err := strconv.Atoi(prefix)
		if err != nil || version <= 0 {
			return nil, fmt.Errorf("migration %s: bad version %q", base, prefix)
		}
		body, err := migrationFiles.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", name, err)
		}
		step := byVersion[version]
		if step == nil {
			step = &migration{version: version}
			byVersion[version] = step
		}
		switch {
		case strings.HasSuffix(base, ".up.sql"):
			step.up = string(body)
		case strings.HasSuffix(base, ".down.sql"):
			step.down = string(body)
		default:
			return nil, fmt.Errorf("migration %s: expected .up.sql or .down.sql", base)
		}
	}

	steps := make([]migration, 0, len(byVersion))
	for _, step := range byVersion {
		if step.up == "" {
			return nil, fmt.Errorf("migration %04d: missing up script", step.version)
		}
		steps = append(steps, *step)
	}
	sort.Slice(steps, func(i, j int) bool { return steps[i].version < steps[j].version })
	return steps, nil
}
