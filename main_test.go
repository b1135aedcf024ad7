package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestMigrateCommand(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cli.db")

	out, err := runCmd(t, "migrate", "--db", dbPath)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if !strings.Contains(out, "001_initial_schema.sql") {
		t.Fatalf("expected applied migration in output, got %q", out)
	}
}

func TestReportCommand_Empty(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cli.db")

	out, err := runCmd(t, "report", "departments", "--db", dbPath)
	if err != nil {
		t.Fatalf("report departments: %v", err)
	}
	if out != "Departments:\n" {
		t.Fatalf("unexpected departments report %q", out)
	}

	out, err = runCmd(t, "report", "employees", "--db", dbPath)
	if err != nil {
		t.Fatalf("report employees: %v", err)
	}
	if out != "All employees:\n" {
		t.Fatalf("unexpected employees report %q", out)
	}
}

func TestReportCommand_UnknownKind(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cli.db")

	if _, err := runCmd(t, "report", "payroll", "--db", dbPath); err == nil {
		t.Fatal("expected an error for an unknown report")
	}
}

func TestConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "enterprise.toml")
	fileDB := filepath.Join(dir, "file.db")
	if err := os.WriteFile(cfgFile, []byte("database_path = \""+filepath.ToSlash(fileDB)+"\"\nlog_level = \"nonsense\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	// The file's log level is invalid until a flag overrides it.
	if _, err := runCmd(t, "migrate", "--config", cfgFile); err == nil {
		t.Fatal("expected invalid log level from file to fail validation")
	}

	if _, err := runCmd(t, "migrate", "--config", cfgFile, "--log-level", "warn"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if _, err := os.Stat(fileDB); err != nil {
		t.Fatalf("expected database at file path: %v", err)
	}

	envDB := filepath.Join(dir, "env.db")
	t.Setenv("ENTERPRISE_DATABASE_PATH", envDB)
	if _, err := runCmd(t, "migrate", "--config", cfgFile, "--log-level", "warn"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if _, err := os.Stat(envDB); err != nil {
		t.Fatalf("expected env to override file: %v", err)
	}
}
