package database

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/juninatt/trader-journal/internal/config"
	"github.com/juninatt/trader-journal/internal/models"
)

func TestConfigDSN(t *testing.T) {
	t.Run("postgres", func(t *testing.T) {
		cfg := &Config{Driver: DriverPostgres, Host: "db", Port: "5432", User: "u", Password: "p", DBName: "journal", SSLMode: "disable"}
		want := "host=db port=5432 user=u password=p dbname=journal sslmode=disable"
		if got := cfg.DSN(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("sqlite", func(t *testing.T) {
		cfg := &Config{Driver: DriverSQLite, Path: "journal.db"}
		if got := cfg.DSN(); !strings.HasPrefix(got, "file:journal.db?") {
			t.Errorf("unexpected sqlite DSN %q", got)
		}
	})
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig(&config.Config{DBDriver: "postgres", DBHost: "h", DBName: "n"})
	if cfg.Driver != DriverPostgres || cfg.Host != "h" || cfg.DBName != "n" {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestManagerMigrate(t *testing.T) {
	m, err := NewManager(&Config{Driver: DriverSQLite, Path: filepath.Join(t.TempDir(), "journal.db")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer m.Close()

	if err := m.Migrate(); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	if !m.DB().Migrator().HasTable(&models.TradeSnapshot{}) {
		t.Error("expected trade_snapshots table")
	}
}

func TestManagerUnsupportedDriver(t *testing.T) {
	if _, err := NewManager(&Config{Driver: "oracle"}); err == nil {
		t.Error("expected an error for an unknown driver")
	}
}
